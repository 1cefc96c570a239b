package scanner

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

// ReadPunctuator reads the longest punctuator at the cursor. "?." directly
// followed by a digit is read as '?' so that `a?.5:b` stays a conditional.
func (s *Scanner) ReadPunctuator() (Token, bool) {
	start := s.src.Offset()
	kind, n := token.MatchPunctuator(s.src.str[s.src.pos:])
	if n == 0 {
		return Token{}, false
	}
	if kind == token.QuestionDot {
		if b, ok := s.src.PeekByteAt(2); ok && isDecimalDigit(b) {
			kind, n = token.QuestionMark, 1
		}
	}
	s.src.SetPosition(start + ast.Idx(n))
	return Token{Kind: kind, Idx0: start, Idx1: s.src.Offset()}, true
}
