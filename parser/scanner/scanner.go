// Package scanner splits source text into tokens.
//
// Each Read function recognizes one token kind at the cursor. On a match it
// returns the token with ok set and leaves the cursor after it; otherwise it
// returns ok=false and leaves the cursor where it was. Input that starts a
// token but is malformed produces a token of kind token.Error carrying the
// problem, so callers that only speculatively wanted a token still see it.
package scanner

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

type Scanner struct {
	src Source
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Checkpoint is a saved cursor position.
type Checkpoint struct {
	pos ast.Idx
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{pos: s.src.Offset()}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

// Slice returns the source text in [from, to).
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src.Slice(from, to)
}

// SkipTrivia consumes whitespace, line terminators and comments. It reports
// whether a line terminator was crossed, either directly or inside a block
// comment. A malformed comment is returned as an Error token.
func (s *Scanner) SkipTrivia() (newLine bool, bad *Token) {
	for {
		if _, ok := s.ReadWhitespace(); ok {
			continue
		}
		if _, ok := s.ReadLineTerminator(); ok {
			newLine = true
			continue
		}
		if tok, ok := s.ReadComment(); ok {
			if tok.Kind == token.Error {
				return newLine, &tok
			}
			if tok.Kind == token.MultiLineComment && containsLineTerminator(tok.Literal(s)) {
				newLine = true
			}
			continue
		}
		return newLine, nil
	}
}

// Next skips trivia and reads the next token. Next never reads a regular
// expression or a template continuation; the parser asks for those with
// RescanRegExp and RescanTemplateContinuation where the grammar allows them.
func (s *Scanner) Next() Token {
	newLine, bad := s.SkipTrivia()
	if bad != nil {
		bad.OnNewLine = newLine
		return *bad
	}

	start := s.src.Offset()
	b, ok := s.src.PeekByte()
	if !ok {
		return Token{Kind: token.EOF, Idx0: start, Idx1: start, OnNewLine: newLine}
	}

	tok, ok := byteHandlers[b](s)
	if !ok {
		c, _ := s.src.NextRune()
		tok, _ = errorToken(invalidCharacter(c, start, s.src.Offset()))
	}
	tok.OnNewLine = newLine
	return tok
}

// RescanRegExp rereads tok, which must be a '/' or '/=' token, as a
// regular expression literal.
func (s *Scanner) RescanRegExp(tok Token) Token {
	s.src.SetPosition(tok.Idx0)
	re, ok := s.ReadRegExp()
	if !ok {
		s.src.SetPosition(tok.Idx1)
		return tok
	}
	re.OnNewLine = tok.OnNewLine
	return re
}

// RescanTemplateContinuation rereads tok, which must be a '}' token, as the
// middle or tail of a template literal.
func (s *Scanner) RescanTemplateContinuation(tok Token) Token {
	s.src.SetPosition(tok.Idx0)
	t, ok := s.ReadTemplateContinuation()
	if !ok {
		s.src.SetPosition(tok.Idx1)
		return tok
	}
	t.OnNewLine = tok.OnNewLine
	return t
}

func containsLineTerminator(str string) bool {
	for _, r := range str {
		if isLineTerminator(r) {
			return true
		}
	}
	return false
}
