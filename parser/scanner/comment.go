package scanner

import "github.com/t14raptor/go-neo/token"

// ReadComment reads a // or /* */ comment. The terminating line break of a
// single-line comment is not part of the token.
func (s *Scanner) ReadComment() (Token, bool) {
	start := s.src.Offset()
	switch {
	case s.src.HasPrefix("//"):
		s.src.SetPosition(start + 2)
		s.skipSingleLineComment()
		return Token{Kind: token.Comment, Idx0: start, Idx1: s.src.Offset()}, true
	case s.src.HasPrefix("/*"):
		s.src.SetPosition(start + 2)
		if !s.skipMultiLineComment() {
			return errorToken(unterminatedMultiLineComment(start, s.src.Offset()))
		}
		return Token{Kind: token.MultiLineComment, Idx0: start, Idx1: s.src.Offset()}, true
	}
	return Token{}, false
}

// ReadHashbang reads a #! interpreter line. It only matches at the very
// start of the source.
func (s *Scanner) ReadHashbang() (Token, bool) {
	start := s.src.Offset()
	if start != 0 || !s.src.HasPrefix("#!") {
		return Token{}, false
	}
	s.src.SetPosition(2)
	s.skipSingleLineComment()
	return Token{Kind: token.Hashbang, Idx0: start, Idx1: s.src.Offset(), Value: s.src.FromPositionToCurrent(2)}, true
}

func (s *Scanner) skipSingleLineComment() {
	for {
		p, ok := s.src.PeekRune()
		if !ok || isLineTerminator(p) {
			return
		}
		s.src.NextRune()
	}
}

func (s *Scanner) skipMultiLineComment() bool {
	for {
		if s.src.HasPrefix("*/") {
			s.src.SetPosition(s.src.Offset() + 2)
			return true
		}
		if _, ok := s.src.NextRune(); !ok {
			return false
		}
	}
}
