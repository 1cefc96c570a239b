package scanner

import (
	"strings"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

// ReadTemplate reads a template starting at '`': either a whole template
// without substitutions or the head up to and including "${".
func (s *Scanner) ReadTemplate() (Token, bool) {
	if !s.src.AdvanceIfByteEquals('`') {
		return Token{}, false
	}
	return s.readTemplateLiteral(s.src.Offset()-1, token.TemplateHead, token.NoSubstitutionTemplate), true
}

// ReadTemplateContinuation reads the part of a template that follows a
// substitution, starting at its closing '}'.
func (s *Scanner) ReadTemplateContinuation() (Token, bool) {
	if !s.src.AdvanceIfByteEquals('}') {
		return Token{}, false
	}
	return s.readTemplateLiteral(s.src.Offset()-1, token.TemplateMiddle, token.TemplateTail), true
}

// readTemplateLiteral scans the body of a template literal after its
// opening delimiter. sub is the kind returned on "${", tail the kind
// returned on the closing '`'.
func (s *Scanner) readTemplateLiteral(start ast.Idx, sub, tail token.Token) Token {
	var raw, cooked strings.Builder
	chunk := s.src.Offset()
	flush := func() {
		text := s.src.FromPositionToCurrent(chunk)
		raw.WriteString(text)
		cooked.WriteString(text)
	}

	for {
		c, ok := s.src.PeekRune()
		if !ok {
			tok, _ := errorToken(unterminatedTemplateLiteral(start, s.src.Offset()))
			return tok
		}

		kind := token.Undetermined
		switch {
		case c == '`':
			kind = tail
		case c == '$' && s.src.HasPrefix("${"):
			kind = sub
		case c == '\r':
			// \r and \r\n are read as \n in both raw and cooked text.
			flush()
			s.src.NextByte()
			s.src.AdvanceIfByteEquals('\n')
			raw.WriteByte('\n')
			cooked.WriteByte('\n')
			chunk = s.src.Offset()
			continue
		case c == '\\':
			flush()
			escStart := s.src.Offset()
			s.src.NextByte()
			if err := s.readEscape(&cooked); err != nil {
				tok, _ := errorToken(*err)
				return tok
			}
			raw.WriteString(strings.ReplaceAll(s.src.FromPositionToCurrent(escStart), "\r\n", "\n"))
			chunk = s.src.Offset()
			continue
		default:
			s.src.NextRune()
			continue
		}

		flush()
		if kind == sub {
			s.src.SetPosition(s.src.Offset() + 2)
		} else {
			s.src.NextByte()
		}
		return Token{
			Kind:  kind,
			Idx0:  start,
			Idx1:  s.src.Offset(),
			Value: cooked.String(),
			Raw:   raw.String(),
		}
	}
}
