package token

import (
	"strconv"
	"strings"
)

// Token is the set of lexical tokens of the language.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// LiteralKeyword returns the keyword token for a reserved word.
func LiteralKeyword(literal string) (Token, bool) {
	t, ok := keywordTable[literal]
	return t, ok
}

// IsKeyword reports whether name is one of the reserved words that can never
// be used as an identifier reference or binding.
func IsKeyword(name string) bool {
	_, ok := keywordTable[name]
	return ok
}

// Keyword reports whether t is a reserved word.
func (t Token) Keyword() bool {
	return t > firstKeyword && t < lastKeyword
}

// IdentifierName reports whether t can be used where the grammar accepts any
// IdentifierName, such as after '.' or as an object key.
func (t Token) IdentifierName() bool {
	return t == Identifier || t.Keyword()
}

// Trivia reports whether the token carries no syntax.
func (t Token) Trivia() bool {
	switch t {
	case Whitespace, LineTerminator, Comment, MultiLineComment, Hashbang:
		return true
	}
	return false
}

// Template reports whether t is one of the four template fragment kinds.
func (t Token) Template() bool {
	return t >= NoSubstitutionTemplate && t <= TemplateTail
}

// Assignment reports whether t is one of the fifteen assignment operators
// or plain '='.
func (t Token) Assignment() bool {
	switch t {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign, QuotientAssign,
		RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign, ShiftLeftAssign,
		ShiftRightAssign, UnsignedShiftRightAssign, LogicalAndAssign, LogicalOrAssign,
		CoalesceAssign:
		return true
	}
	return false
}

// BinaryOf maps a compound assignment operator to its binary operator.
// '=' and non-assignment tokens map to themselves.
func BinaryOf(t Token) Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case ExponentAssign:
		return Exponent
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	case AndAssign:
		return And
	case OrAssign:
		return Or
	case ExclusiveOrAssign:
		return ExclusiveOr
	case ShiftLeftAssign:
		return ShiftLeft
	case ShiftRightAssign:
		return ShiftRight
	case UnsignedShiftRightAssign:
		return UnsignedShiftRight
	case LogicalAndAssign:
		return LogicalAnd
	case LogicalOrAssign:
		return LogicalOr
	case CoalesceAssign:
		return Coalesce
	}
	return t
}

// MatchPunctuator returns the longest punctuator that prefixes src.
func MatchPunctuator(src string) (Token, int) {
	for _, p := range punctuators {
		lit := token2string[p]
		if strings.HasPrefix(src, lit) {
			return p, len(lit)
		}
	}
	return Undetermined, 0
}
