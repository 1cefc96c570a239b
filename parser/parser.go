// Package parser implements a recursive-descent parser for JavaScript
// source text. It builds the syntax tree, the scope of every lexical
// region and, through the resolver, the closure list of every function.
package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/parser/scanner"
	"github.com/t14raptor/go-neo/token"
)

// parser ...
type parser struct {
	token scanner.Token
	str   string
	file  *file.File

	scanner *scanner.Scanner

	// prevEnd is the end of the last consumed token; nodes end there.
	prevEnd ast.Idx

	scopes ast.ScopeTable
	ctx    *context
	module bool

	err *Error
}

// Option configures a parse.
type Option func(*parser)

// WithModule parses the source as a module: import and export
// declarations are allowed and await is valid at the top level.
func WithModule(module bool) Option {
	return func(p *parser) { p.module = module }
}

// WithFile reuses an existing file for position lookups.
func WithFile(f *file.File) Option {
	return func(p *parser) { p.file = f }
}

// newParser ...
func newParser(name, src string, opts ...Option) *parser {
	p := &parser{
		str:     src,
		scanner: scanner.NewScanner(src),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.file == nil {
		p.file = file.NewFile(name, src)
	}
	return p
}

// ParseFile parses the source code of a single JavaScript/ECMAScript source file and returns
// the corresponding ast.Program node. The error, if any, is a *Error.
func ParseFile(name, src string, opts ...Option) (*ast.Program, error) {
	return newParser(name, src, opts...).parse()
}

// parse ...
func (p *parser) parse() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program, err = nil, p.err
		}
	}()

	p.openContext()
	program = p.parseProgram()
	p.closeContext()
	return program, nil
}

// next consumes the current token. A malformed token from the scanner is
// a committed error.
func (p *parser) next() {
	p.prevEnd = p.token.Idx1
	p.token = p.scanner.Next()
	if p.token.Kind == token.Error {
		p.errorAt(p.token.Err.Start, p.token.Err.Message)
	}
}

type parserState struct {
	c scanner.Checkpoint

	tok     scanner.Token
	prevEnd ast.Idx
}

func (p *parser) mark() parserState {
	return parserState{
		c:       p.scanner.Checkpoint(),
		tok:     p.token,
		prevEnd: p.prevEnd,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	p.prevEnd = state.prevEnd
}

// peek returns the token after the current one without consuming
// anything. A malformed token is returned as is.
func (p *parser) peek() scanner.Token {
	c := p.scanner.Checkpoint()
	tok := p.scanner.Next()
	p.scanner.Rewind(c)
	return tok
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

// isContextual reports whether the current token is the unescaped
// identifier name.
func (p *parser) isContextual(name string) bool {
	return p.token.Kind == token.Identifier && !p.token.HasEscape && p.token.Value == name
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.EOF || p.token.OnNewLine
}

// semicolon consumes a statement terminator, inserting one where the
// grammar allows it.
func (p *parser) semicolon() {
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken()
	}
	if p.currentKind() == token.Semicolon {
		p.next()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken()
	}
	p.next()
	return idx
}

// span returns a span from start to the end of the last consumed token.
func (p *parser) span(start ast.Idx) ast.Span {
	return ast.Span{Start: start, End: p.prevEnd}
}

// declare registers name in the current scope, turning a redeclaration
// into a syntax error at the identifier.
func (p *parser) declare(id *ast.Identifier, node ast.Node, kind ast.DeclKind) {
	if err := p.scopes.Declare(id.Name, node, kind); err != nil {
		p.errorAt(id.Start, err.Error())
	}
}

// declarePattern declares every identifier bound by target.
func (p *parser) declarePattern(target ast.Pattern, kind ast.DeclKind) {
	for _, id := range boundNames(target) {
		p.declare(id, id, kind)
	}
}

// boundNames lists the identifiers a binding pattern introduces, in
// source order.
func boundNames(target ast.Pattern) []*ast.Identifier {
	var names []*ast.Identifier
	var walk func(ast.Pattern)
	walk = func(target ast.Pattern) {
		switch t := target.(type) {
		case *ast.Identifier:
			names = append(names, t)
		case *ast.ArrayPattern:
			for _, el := range t.Elements {
				if el != nil {
					walk(el.Target)
				}
			}
			if t.Rest != nil {
				walk(t.Rest)
			}
		case *ast.ObjectPattern:
			for _, prop := range t.Properties {
				walk(prop.Value)
			}
			if t.Rest != nil {
				walk(t.Rest)
			}
		}
	}
	walk(target)
	return names
}

func (p *parser) parseProgram() *ast.Program {
	program := &ast.Program{
		File:   p.file,
		Module: p.module,
	}

	program.Scope = p.scopes.Push(ast.ScopeFunction, false, p.module)
	if tok, ok := p.scanner.ReadHashbang(); ok {
		program.Interpreter = tok.Value
		p.token = tok
	}
	p.next()

	program.Directives = p.parseDirectives()
	for p.currentKind() != token.EOF {
		program.Body = append(program.Body, p.parseModuleItem())
	}
	p.scopes.Pop(program.Scope)

	program.Span = ast.Span{Start: 0, End: ast.Idx(len(p.str))}
	return program
}

// parseDirectives consumes the directive prologue of a program or
// function body.
func (p *parser) parseDirectives() []*ast.Directive {
	var list []*ast.Directive
	for p.currentKind() == token.String {
		st := p.mark()
		tok := p.token
		p.next()
		if !p.canInsertSemicolon() {
			// A string that starts an expression such as "a" + b.
			p.restore(st)
			break
		}
		p.semicolon()
		raw := tok.Literal(p.scanner)
		list = append(list, &ast.Directive{
			Span:  ast.Span{Start: tok.Idx0, End: tok.Idx1},
			Value: raw[1 : len(raw)-1],
		})
	}
	return list
}
