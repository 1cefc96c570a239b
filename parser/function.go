package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/resolver"
	"github.com/t14raptor/go-neo/token"
)

// parseFunction parses a function declaration or expression, including
// the async and generator forms. A function expression that has a name
// binds it in a scope of its own wrapped around the function scope.
func (p *parser) parseFunction(declaration, nameOptional bool) *ast.FunctionLiteral {
	start := p.currentOffset()
	node := &ast.FunctionLiteral{}
	if p.isContextual("async") {
		node.Async = true
		p.next()
	}
	p.expect(token.Function)
	if p.currentKind() == token.Multiply {
		node.Generator = true
		p.next()
	}

	if p.currentKind() == token.Identifier {
		if declaration {
			node.Name = p.parseBindingIdentifier()
		} else {
			// The name of a function expression follows the function's own
			// yield and await rules.
			scope := p.scopes.Push(ast.ScopeFunction, node.Generator, node.Async)
			node.Name = p.parseBindingIdentifier()
			p.scopes.Discard(scope)
		}
		if node.Name == nil {
			p.errorUnexpectedToken()
		}
	} else if declaration && !nameOptional {
		p.errorUnexpectedToken()
	}

	if node.Name != nil && !declaration {
		node.NameScope = p.scopes.Push(ast.ScopeBlock, false, false)
		p.declare(node.Name, node.Name, ast.DeclConst)
	}
	node.Scope = p.scopes.Push(ast.ScopeFunction, node.Generator, node.Async)
	p.openFunctionContext(false)
	node.Params = p.parseFormalParameters(false)
	p.declareParameters(node.Params)
	node.Body = p.parseFunctionBody()
	p.closeContext()
	p.scopes.Pop(node.Scope)
	if node.NameScope != nil {
		p.scopes.Pop(node.NameScope)
	}
	node.Span = p.span(start)

	resolver.ResolveFunction(node)
	return node
}

// parseMethod parses the parameter list and body of an object or class
// method, accessor or constructor. start is the offset of the key.
func (p *parser) parseMethod(start ast.Idx, kind ast.PropertyKind, async, generator, superCall bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{Async: async, Generator: generator}
	node.Scope = p.scopes.Push(ast.ScopeFunction, generator, async)
	ctx := p.openFunctionContext(false)
	ctx.allowSuperProperty = true
	ctx.allowSuperCall = superCall

	paramStart := p.currentOffset()
	node.Params = p.parseFormalParameters(false)
	switch kind {
	case ast.PropertyGet:
		if len(node.Params.List) != 0 || node.Params.Rest != nil {
			p.errorAt(paramStart, "Getter must not have any formal parameters.")
		}
	case ast.PropertySet:
		if len(node.Params.List) != 1 || node.Params.Rest != nil {
			p.errorAt(paramStart, "Setter must have exactly one formal parameter.")
		}
	}
	p.declareParameters(node.Params)
	node.Body = p.parseFunctionBody()
	p.closeContext()
	p.scopes.Pop(node.Scope)
	node.Span = p.span(start)

	resolver.ResolveFunction(node)
	return node
}

func (p *parser) parseFunctionBody() *ast.FunctionBody {
	start := p.expect(token.LeftBrace)
	node := &ast.FunctionBody{}
	node.Directives = p.parseDirectives()
	for p.currentKind() != token.RightBrace {
		node.Body = append(node.Body, p.parseStatementListItem())
	}
	p.next()
	node.Span = p.span(start)
	return node
}
