package scanner

import (
	"unicode"

	"github.com/t14raptor/go-neo/token"
)

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isLineWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', ' ', '\u00a0', '\ufeff':
		return true
	case '\u000a', '\u000d', '\u2028', '\u2029', '\u0085':
		return false
	}
	return chr >= 0x80 && unicode.Is(unicode.Zs, chr)
}

// ReadWhitespace reads a run of non-terminating white space.
func (s *Scanner) ReadWhitespace() (Token, bool) {
	start := s.src.Offset()
	for {
		c, ok := s.src.PeekRune()
		if !ok || !isLineWhiteSpace(c) {
			break
		}
		s.src.NextRune()
	}
	if s.src.Offset() == start {
		return Token{}, false
	}
	return Token{Kind: token.Whitespace, Idx0: start, Idx1: s.src.Offset()}, true
}

// ReadLineTerminator reads one line terminator; "\r\n" counts as one.
func (s *Scanner) ReadLineTerminator() (Token, bool) {
	start := s.src.Offset()
	c, ok := s.src.PeekRune()
	if !ok || !isLineTerminator(c) {
		return Token{}, false
	}
	s.src.NextRune()
	if c == '\r' {
		s.src.AdvanceIfByteEquals('\n')
	}
	return Token{Kind: token.LineTerminator, Idx0: start, Idx1: s.src.Offset()}, true
}
