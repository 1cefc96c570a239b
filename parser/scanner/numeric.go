package scanner

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

// ReadNumber reads a numeric or BigInt literal. It matches at a decimal
// digit, or at '.' directly followed by one.
func (s *Scanner) ReadNumber() (Token, bool) {
	start := s.src.Offset()
	b, ok := s.src.PeekByte()
	if !ok {
		return Token{}, false
	}
	if b == '.' {
		if next, ok := s.src.PeekByteAt(1); !ok || !isDecimalDigit(next) {
			return Token{}, false
		}
	} else if !isDecimalDigit(b) {
		return Token{}, false
	}

	kind, err := s.readNumber()
	if err != nil {
		return errorToken(*err)
	}
	if s.identifierFollows() {
		s.src.NextRune()
		return errorToken(invalidNumberEnd(start, s.src.Offset()))
	}
	return Token{Kind: kind, Idx0: start, Idx1: s.src.Offset()}, true
}

func (s *Scanner) readNumber() (token.Token, *Error) {
	start := s.src.Offset()
	if s.src.AdvanceIfByteEquals('0') {
		b, _ := s.src.PeekByte()
		switch b {
		case 'b', 'B':
			return s.readNonDecimal(start, 2)
		case 'o', 'O':
			return s.readNonDecimal(start, 8)
		case 'x', 'X':
			return s.readNonDecimal(start, 16)
		case 'n':
			s.src.NextByte()
			return token.BigInt, nil
		case '_':
			e := invalidSeparator(s.src.Offset(), s.src.Offset()+1)
			return token.Error, &e
		}
		if isDecimalDigit(b) {
			e := legacyOctal(start, s.src.Offset()+1)
			return token.Error, &e
		}
	} else if isDecimalDigit(s.peek()) {
		if err := s.readDigits(10); err != nil {
			return token.Error, err
		}
		if s.src.AdvanceIfByteEquals('n') {
			return token.BigInt, nil
		}
	}

	if s.src.AdvanceIfByteEquals('.') {
		if isDecimalDigit(s.peek()) {
			if err := s.readDigits(10); err != nil {
				return token.Error, err
			}
		} else if s.peek() == '_' {
			e := invalidSeparator(s.src.Offset(), s.src.Offset()+1)
			return token.Error, &e
		}
	}

	if b := s.peek(); b == 'e' || b == 'E' {
		s.src.NextByte()
		if b := s.peek(); b == '+' || b == '-' {
			s.src.NextByte()
		}
		if !isDecimalDigit(s.peek()) {
			e := invalidNumber(start, s.src.Offset())
			return token.Error, &e
		}
		if err := s.readDigits(10); err != nil {
			return token.Error, err
		}
	}
	return token.Number, nil
}

func (s *Scanner) readNonDecimal(start ast.Idx, base int) (token.Token, *Error) {
	s.src.NextByte()
	b, ok := s.src.PeekByte()
	if !ok || digitValue(b) >= base {
		if ok && isDecimalDigit(b) {
			e := invalidDigit(b, base, s.src.Offset(), s.src.Offset()+1)
			return token.Error, &e
		}
		e := invalidNumber(start, s.src.Offset())
		return token.Error, &e
	}
	if err := s.readDigits(base); err != nil {
		return token.Error, err
	}
	if s.src.AdvanceIfByteEquals('n') {
		return token.BigInt, nil
	}
	return token.Number, nil
}

// readDigits consumes one or more digits of base with single '_'
// separators between them. The cursor must be on a digit.
func (s *Scanner) readDigits(base int) *Error {
	s.src.NextByte()
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			return nil
		}
		switch {
		case b == '_':
			s.src.NextByte()
			if next, ok := s.src.PeekByte(); !ok || digitValue(next) >= base {
				e := invalidSeparator(s.src.Offset()-1, s.src.Offset())
				return &e
			}
		case digitValue(b) < base:
			s.src.NextByte()
		case isDecimalDigit(b):
			e := invalidDigit(b, base, s.src.Offset(), s.src.Offset()+1)
			return &e
		default:
			return nil
		}
	}
}

func (s *Scanner) peek() byte {
	b, _ := s.src.PeekByte()
	return b
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

func splitRadix(raw string) (string, int) {
	if len(raw) > 2 && raw[0] == '0' {
		switch raw[1] {
		case 'x', 'X':
			return raw[2:], 16
		case 'o', 'O':
			return raw[2:], 8
		case 'b', 'B':
			return raw[2:], 2
		}
	}
	return raw, 10
}

// NumberValue converts the source text of a Number token to its value.
func NumberValue(raw string) (float64, error) {
	raw = strings.ReplaceAll(raw, "_", "")
	digits, base := splitRadix(raw)
	if base != 10 {
		if v, err := strconv.ParseUint(digits, base, 64); err == nil {
			return float64(v), nil
		}
		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return math.NaN(), strconv.ErrSyntax
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !isRangeError(err) {
		return math.NaN(), err
	}
	return v, nil
}

// BigIntValue converts the source text of a BigInt token to its value.
func BigIntValue(raw string) (*big.Int, bool) {
	raw = strings.TrimSuffix(strings.ReplaceAll(raw, "_", ""), "n")
	digits, base := splitRadix(raw)
	return new(big.Int).SetString(digits, base)
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
