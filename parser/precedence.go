package parser

import "github.com/t14raptor/go-neo/token"

// Precedence numbers the expression tiers from the loosest binding (comma)
// to the tightest (primary expressions). Every tier has its own parse
// function except the binary tiers, which share one precedence-climbing
// loop driven by tokenPrecedence.
type Precedence uint8

const (
	PrecedenceLowest         Precedence = iota
	PrecedenceComma                     // ,
	PrecedenceAssign                    // yield, arrow, = += ..., ?:
	PrecedenceLogicalOr                 // || ??
	PrecedenceLogicalAnd                // &&
	PrecedenceBitwiseOr                 // |
	PrecedenceBitwiseXor                // ^
	PrecedenceBitwiseAnd                // &
	PrecedenceEquals                    // == != === !==
	PrecedenceCompare                   // < > <= >= instanceof in
	PrecedenceShift                     // << >> >>>
	PrecedenceAdd                       // + -
	PrecedenceMultiply                  // * / %
	PrecedenceExponentiation            // ** (right-assoc)
	PrecedencePrefix                    // ! ~ + - typeof void delete await ++x
	PrecedencePostfix                   // x++ x--
	PrecedenceNew                       // new without arguments
	PrecedenceCall                      // () ?. tagged templates
	PrecedenceMember                    // . []
	PrecedencePrimary
)

// tokenPrecedence maps each token kind to its binary binding power.
// Zero means the token is not a binary operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.Coalesce] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Or] = PrecedenceBitwiseOr
	tokenPrecedence[token.ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[token.And] = PrecedenceBitwiseAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.StrictEqual] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.InstanceOf] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.ShiftLeft] = PrecedenceShift
	tokenPrecedence[token.ShiftRight] = PrecedenceShift
	tokenPrecedence[token.UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
	tokenPrecedence[token.Exponent] = PrecedenceExponentiation
}

// binaryPrecedence returns the binding power of t as a binary operator.
func binaryPrecedence(t token.Token) Precedence {
	if t < 0 || int(t) >= len(tokenPrecedence) {
		return 0
	}
	return tokenPrecedence[t]
}

// ExpressionPrecedence reports the tier an expression node belongs to.
// The printer uses it to decide where parentheses are required.
func ExpressionPrecedence(op token.Token) Precedence {
	switch op {
	case token.Comma:
		return PrecedenceComma
	}
	return binaryPrecedence(op)
}
