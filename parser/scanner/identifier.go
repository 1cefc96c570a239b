package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-neo/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return isIDStartUnicode(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return isIDContinueUnicode(chr)
}

// ReadIdentifier reads an IdentifierName, or a #PrivateName. Reserved words
// written without escapes get their keyword kind; everything else is
// token.Identifier with the decoded name in Value.
func (s *Scanner) ReadIdentifier() (Token, bool) {
	start := s.src.Offset()
	private := s.src.AdvanceIfByteEquals('#')

	name, escaped, err := s.scanIdentifierName()
	if err != nil {
		return errorToken(*err)
	}
	if name == "" {
		s.src.SetPosition(start)
		return Token{}, false
	}

	tok := Token{Kind: token.Identifier, Idx0: start, Idx1: s.src.Offset(), Value: name, HasEscape: escaped}
	switch {
	case private:
		tok.Kind = token.PrivateName
	case !escaped:
		if kw, ok := token.LiteralKeyword(name); ok {
			tok.Kind = kw
		}
	}
	return tok, true
}

// scanIdentifierName consumes identifier characters and escapes. It returns
// an empty name without consuming anything when the cursor is not at an
// identifier start.
func (s *Scanner) scanIdentifierName() (string, bool, *Error) {
	start := s.src.Offset()
	var str *strings.Builder
	chunk := start
	first := true
	for {
		c, ok := s.src.PeekRune()
		if !ok {
			break
		}
		if c == '\\' {
			if str == nil {
				str = &strings.Builder{}
			}
			str.WriteString(s.src.FromPositionToCurrent(chunk))
			escStart := s.src.Offset()
			s.src.NextByte()
			if !s.src.AdvanceIfByteEquals('u') {
				e := invalidUnicodeEscapeSequence(escStart, s.src.Offset())
				return "", true, &e
			}
			r := s.unicodeEscape()
			if first && !isIdentifierStart(r) || !first && !isIdentifierPart(r) {
				e := invalidUnicodeEscapeSequence(escStart, s.src.Offset())
				return "", true, &e
			}
			str.WriteRune(r)
			chunk = s.src.Offset()
			first = false
			continue
		}
		if first && !isIdentifierStart(c) || !first && !isIdentifierPart(c) {
			break
		}
		s.src.NextRune()
		first = false
	}
	if str == nil {
		return s.src.FromPositionToCurrent(start), false, nil
	}
	str.WriteString(s.src.FromPositionToCurrent(chunk))
	return str.String(), true, nil
}

// IsIdentifierName reports whether name is a valid IdentifierName without
// escapes.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentifierStart(r) || i > 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

// identifierFollows reports whether an identifier character or escape is
// at the cursor.
func (s *Scanner) identifierFollows() bool {
	c, ok := s.src.PeekRune()
	return ok && (isIdentifierPart(c) || c == '\\')
}
