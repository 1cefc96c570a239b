package parser

import (
	"fmt"
	"strings"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
	errInvalidAssignment    = "Invalid left-hand side in assignment"
)

// ErrorKind classifies parse errors.
type ErrorKind string

const SyntaxError ErrorKind = "SyntaxError"

// Error is a parse error at a source position.
type Error struct {
	Kind     ErrorKind
	Position file.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Position, e.Kind, e.Message)
}

// Snippet renders the source line holding the error with a caret under
// the offending column.
func (e *Error) Snippet(src string) string {
	if !e.Position.IsValid() {
		return ""
	}
	line := file.NewFile(e.Position.Filename, src).Line(e.Position.Line)
	line = strings.TrimRight(line, "\r\n")

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	col := 1
	for _, r := range line {
		if col >= e.Position.Column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		col++
	}
	b.WriteByte('^')
	return b.String()
}

// bailout unwinds the parser after the first committed error.
type bailout struct{}

// errorAt records the error and abandons the parse.
func (p *parser) errorAt(offset ast.Idx, msg string, msgValues ...any) {
	if p.err == nil {
		if len(msgValues) > 0 {
			msg = fmt.Sprintf(msg, msgValues...)
		}
		p.err = &Error{
			Kind:     SyntaxError,
			Position: p.file.Position(int(offset)),
			Message:  msg,
		}
	}
	panic(bailout{})
}

// errorf ...
func (p *parser) errorf(msg string, msgValues ...any) {
	p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorUnexpectedToken() {
	switch p.token.Kind {
	case token.EOF:
		p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		if p.token.HasEscape && token.IsKeyword(p.token.Value) {
			p.errorf("Keyword must not contain escaped characters")
		}
		p.errorf("Unexpected identifier '%s'", p.token.Value)
	case token.Number, token.BigInt:
		p.errorf("Unexpected number")
	case token.String:
		p.errorf("Unexpected string")
	case token.NoSubstitutionTemplate, token.TemplateHead:
		p.errorf("Unexpected template string")
	case token.PrivateName:
		p.errorf("Unexpected private name #%s", p.token.Value)
	}
	if p.token.Kind.Keyword() {
		p.errorf("Unexpected token '%s'", p.token.Kind)
	}
	p.errorf(errUnexpectedToken, p.token.Kind)
}
