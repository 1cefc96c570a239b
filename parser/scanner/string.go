package scanner

import (
	"strings"

	"github.com/t14raptor/go-neo/token"
)

// ReadString reads a single or double quoted string literal. An unescaped
// line terminator, U+2028 and U+2029 included, ends the token with an error.
func (s *Scanner) ReadString() (Token, bool) {
	start := s.src.Offset()
	delim, ok := s.src.PeekByte()
	if !ok || delim != '"' && delim != '\'' {
		return Token{}, false
	}
	s.src.NextByte()
	afterOpen := s.src.Offset()

	var str *strings.Builder
	chunk := afterOpen
	for {
		c, ok := s.src.PeekRune()
		if !ok || isLineTerminator(c) {
			return errorToken(unterminatedString(start, s.src.Offset()))
		}
		switch {
		case c == rune(delim):
			value := s.src.FromPositionToCurrent(chunk)
			if str != nil {
				str.WriteString(value)
				value = str.String()
			}
			s.src.NextByte()
			return Token{
				Kind:      token.String,
				Idx0:      start,
				Idx1:      s.src.Offset(),
				Value:     value,
				HasEscape: str != nil,
			}, true
		case c == '\\':
			if str == nil {
				str = &strings.Builder{}
				str.Grow(2 * int(s.src.Offset()-afterOpen))
			}
			str.WriteString(s.src.FromPositionToCurrent(chunk))
			s.src.NextByte()
			if err := s.readEscape(str); err != nil {
				return errorToken(*err)
			}
			chunk = s.src.Offset()
		default:
			s.src.NextRune()
		}
	}
}
