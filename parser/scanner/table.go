package scanner

import "unicode/utf8"

type byteHandler func(s *Scanner) (Token, bool)

// byteHandlers dispatches on the first byte of a token. Trivia has already
// been skipped when a handler runs.
var byteHandlers [256]byteHandler

func init() {
	for i := range byteHandlers {
		b := byte(i)
		switch {
		case b == '"' || b == '\'':
			byteHandlers[i] = (*Scanner).ReadString
		case b == '`':
			byteHandlers[i] = (*Scanner).ReadTemplate
		case isDecimalDigit(b):
			byteHandlers[i] = (*Scanner).ReadNumber
		case b == '.':
			byteHandlers[i] = readDot
		case asciiStart[b] || b == '\\' || b == '#' || b >= utf8.RuneSelf:
			byteHandlers[i] = (*Scanner).ReadIdentifier
		default:
			byteHandlers[i] = (*Scanner).ReadPunctuator
		}
	}
}

func readDot(s *Scanner) (Token, bool) {
	if tok, ok := s.ReadNumber(); ok {
		return tok, true
	}
	return s.ReadPunctuator()
}
