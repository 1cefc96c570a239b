package scanner

import (
	"strings"

	"github.com/t14raptor/go-neo/token"
)

const regExpFlags = "dgimsuyv"

// ReadRegExp reads a regular expression literal at '/'. The body ends at
// the first '/' that is neither escaped nor inside a character class; the
// flags that follow must be distinct members of "dgimsuyv".
func (s *Scanner) ReadRegExp() (Token, bool) {
	start := s.src.Offset()
	if !s.src.AdvanceIfByteEquals('/') || s.src.HasPrefix("/") || s.src.HasPrefix("*") {
		s.src.SetPosition(start)
		return Token{}, false
	}

	var inEscape, inCharClass bool
	for {
		chr, ok := s.src.NextRune()
		if !ok || isLineTerminator(chr) {
			return errorToken(unterminatedRegExp(start, s.src.Offset()))
		}

		if inEscape {
			inEscape = false
		} else if chr == '/' && !inCharClass {
			break
		} else if chr == '[' {
			inCharClass = true
		} else if chr == '\\' {
			inEscape = true
		} else if chr == ']' {
			inCharClass = false
		}
	}
	body := s.src.FromPositionToCurrent(start + 1)
	pattern := body[:len(body)-1]

	flagStart := s.src.Offset()
	for {
		c, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(c) && c != '\\' {
			break
		}
		at := s.src.Offset()
		s.src.NextRune()
		if !strings.ContainsRune(regExpFlags, c) {
			return errorToken(regExpFlag(c, at, s.src.Offset()))
		}
		if strings.ContainsRune(s.src.Slice(flagStart, at), c) {
			return errorToken(regExpFlagTwice(c, at, s.src.Offset()))
		}
	}

	return Token{
		Kind:  token.RegExp,
		Idx0:  start,
		Idx1:  s.src.Offset(),
		Value: pattern,
		Raw:   s.src.FromPositionToCurrent(flagStart),
	}, true
}
