package scanner

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

type Token struct {
	Kind token.Token

	// OnNewLine is set when a line terminator precedes the token.
	OnNewLine bool
	HasEscape bool

	Idx0, Idx1 ast.Idx

	// Value is the decoded identifier name (without '#' for private names),
	// string value, template cooked text or regular expression body.
	Value string
	// Raw is the template text between delimiters with line endings
	// normalized, or the flags of a regular expression.
	Raw string

	// Err is set for Error tokens.
	Err *Error
}

// Literal returns the source text of the token.
func (t Token) Literal(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}

func errorToken(err Error) (Token, bool) {
	return Token{Kind: token.Error, Idx0: err.Start, Idx1: err.End, Err: &err}, true
}
