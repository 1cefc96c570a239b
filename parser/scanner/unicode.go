package scanner

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

var idStart = []*unicode.RangeTable{
	unicode.L, unicode.Nl, unicode.Other_ID_Start,
}

var idContinue = []*unicode.RangeTable{
	unicode.L, unicode.Nl, unicode.Other_ID_Start,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
}

func isIDStartUnicode(r rune) bool {
	return unicode.In(r, idStart...) && !unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func isIDContinueUnicode(r rune) bool {
	if r == '\u200c' || r == '\u200d' {
		return true
	}
	return unicode.In(r, idContinue...) && !unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func hexValue(b byte) rune {
	return rune(digitValue(b))
}

func (s *Scanner) hexDigit() (rune, bool) {
	b, ok := s.src.PeekByte()
	if !ok || digitValue(b) >= 16 {
		return 0, false
	}
	s.src.NextByte()
	return hexValue(b), true
}

func (s *Scanner) hexFourDigits() rune {
	var val rune
	for i := 0; i < 4; i++ {
		d, ok := s.hexDigit()
		if !ok {
			return -1
		}
		val = val<<4 | d
	}
	return val
}

// codePoint reads the hex digits of a \u{...} escape up to and including
// the closing brace.
func (s *Scanner) codePoint() rune {
	val, ok := s.hexDigit()
	if !ok {
		return -1
	}
	for {
		next, ok := s.hexDigit()
		if !ok {
			break
		}
		val = val<<4 | next
		if val > utf8.MaxRune {
			return -1
		}
	}
	if !s.src.AdvanceIfByteEquals('}') {
		return -1
	}
	return val
}

// unicodeEscape reads what follows "\u". A high surrogate followed by an
// escaped low surrogate is combined into one code point.
func (s *Scanner) unicodeEscape() rune {
	if s.src.AdvanceIfByteEquals('{') {
		return s.codePoint()
	}
	high := s.hexFourDigits()
	if high < 0 || !utf16.IsSurrogate(high) || !s.src.HasPrefix("\\u") {
		return high
	}
	save := s.src.Offset()
	s.src.SetPosition(save + 2)
	low := s.hexFourDigits()
	if low < 0xdc00 || low > 0xdfff {
		s.src.SetPosition(save)
		return high
	}
	return utf16.DecodeRune(high, low)
}

// readEscape decodes one escape sequence after the backslash into str.
// Strings and templates share it, so legacy octal escapes are rejected in
// both.
func (s *Scanner) readEscape(str *strings.Builder) *Error {
	start := s.src.Offset() - 1
	chr, ok := s.src.NextRune()
	if !ok {
		e := unterminatedString(start, s.src.Offset())
		return &e
	}

	switch chr {
	case '\u000a', '\u2028', '\u2029':
	case '\u000d':
		s.src.AdvanceIfByteEquals('\n')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'n':
		str.WriteByte('\n')
	case 'r':
		str.WriteByte('\r')
	case 't':
		str.WriteByte('\t')
	case 'v':
		str.WriteByte('\v')
	case '0':
		if b, ok := s.src.PeekByte(); ok && isDecimalDigit(b) {
			e := octalEscapeSequence(start, s.src.Offset()+1)
			return &e
		}
		str.WriteByte(0)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		e := octalEscapeSequence(start, s.src.Offset())
		return &e
	case 'x':
		hi, ok1 := s.hexDigit()
		lo, ok2 := s.hexDigit()
		if !ok1 || !ok2 {
			e := invalidEscapeSequence(start, s.src.Offset())
			return &e
		}
		str.WriteRune(hi<<4 | lo)
	case 'u':
		r := s.unicodeEscape()
		if r < 0 {
			e := invalidUnicodeEscapeSequence(start, s.src.Offset())
			return &e
		}
		str.WriteRune(r)
	default:
		str.WriteRune(chr)
	}
	return nil
}
