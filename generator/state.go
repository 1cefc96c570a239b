package generator

import (
	"strings"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

func (s *state) write(str string) {
	s.out.WriteString(str)
}

// expr prints e, parenthesized when it binds looser than min.
func (s *state) expr(e ast.Expr, min parser.Precedence) {
	if e == nil {
		return
	}
	if precedence(e) < min {
		s.write("(")
		gen(s.wrap(e))
		s.write(")")
		return
	}
	gen(s.wrap(e))
}
