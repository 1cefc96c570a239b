package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/resolver"
	"github.com/t14raptor/go-neo/token"
)

// parseClass parses a class declaration or expression with its leading
// decorators. The class body is parsed in a function scope of its own; a
// named class also binds its name in a block scope around it.
func (p *parser) parseClass(declaration, nameOptional bool) *ast.ClassLiteral {
	start := p.currentOffset()
	node := &ast.ClassLiteral{}
	node.Decorators = p.parseDecorators()
	p.expect(token.Class)

	if p.currentKind() == token.Identifier {
		if node.Name = p.parseBindingIdentifier(); node.Name == nil {
			p.errorUnexpectedToken()
		}
	} else if declaration && !nameOptional {
		p.errorUnexpectedToken()
	}
	if node.Name != nil {
		node.NameScope = p.scopes.Push(ast.ScopeBlock, false, false)
		p.declare(node.Name, node.Name, ast.DeclConst)
	}

	if p.currentKind() == token.Extends {
		p.next()
		node.SuperClass = p.parseLeftHandSideExpression()
	}

	node.Scope = p.scopes.Push(ast.ScopeFunction, false, false)
	ctx := p.openContext()
	ctx.inClass = true

	p.expect(token.LeftBrace)
	var constructor *ast.MethodDefinition
	for p.currentKind() != token.RightBrace {
		if p.currentKind() == token.Semicolon {
			p.next()
			continue
		}
		el := p.parseClassElement(node.SuperClass != nil)
		if m, ok := el.(*ast.MethodDefinition); ok && m.Kind == ast.PropertyConstructor {
			if constructor != nil {
				p.errorAt(m.Start, "A class may only have one constructor")
			}
			constructor = m
		}
		node.Body = append(node.Body, el)
	}
	p.next()

	p.closeContext()
	p.scopes.Pop(node.Scope)
	if node.NameScope != nil {
		p.scopes.Pop(node.NameScope)
	}
	node.Span = p.span(start)

	resolver.ResolveFunction(node)
	return node
}

func (p *parser) parseDecorators() []*ast.Decorator {
	var list []*ast.Decorator
	for p.currentKind() == token.At {
		start := p.currentOffset()
		p.next()

		var expr ast.Expr
		if p.currentKind() == token.LeftParenthesis {
			expr = p.parseParenthesizedExpression()
		} else {
			exprStart := p.currentOffset()
			expr = p.parseIdentifierReference()
			for p.currentKind() == token.Period {
				p.next()
				property := p.parseMemberName()
				expr = &ast.MemberExpression{Span: p.span(exprStart), Object: expr, Property: property}
			}
			if p.currentKind() == token.LeftParenthesis {
				args := p.parseArguments()
				expr = &ast.CallExpression{Span: p.span(exprStart), Callee: expr, Arguments: args}
			}
		}
		list = append(list, &ast.Decorator{Span: p.span(start), Expression: expr})
	}
	return list
}

func (p *parser) parseClassElement(derived bool) ast.ClassElement {
	start := p.currentOffset()
	decorators := p.parseDecorators()

	static := false
	if p.currentKind() == token.Static {
		if next := p.peek().Kind; next == token.LeftBrace {
			if len(decorators) > 0 {
				p.errorf("Decorators are not valid here")
			}
			p.next()
			return p.parseStaticBlock(start)
		}
		if p.modifierFollows(true) {
			static = true
			p.next()
		}
	}

	accessor := false
	if p.isContextual("accessor") && p.modifierFollows(false) {
		accessor = true
		p.next()
	}

	kind := ast.PropertyMethod
	async, generator := false, false
	if !accessor {
		switch {
		case (p.isContextual("get") || p.isContextual("set")) && p.modifierFollows(true):
			kind = ast.PropertyGet
			if p.token.Value == "set" {
				kind = ast.PropertySet
			}
			p.next()
		case p.isContextual("async") && p.modifierFollows(false):
			async = true
			p.next()
		}
		if p.currentKind() == token.Multiply && kind == ast.PropertyMethod {
			generator = true
			p.next()
		}
	}

	keyTok := p.token
	key, computed := p.parsePropertyKey()
	if key == nil {
		p.errorUnexpectedToken()
	}
	name, _ := ast.KeyName(key)
	isConstructor := !computed && !static && name == "constructor"

	if p.currentKind() == token.LeftParenthesis && !accessor {
		if isConstructor {
			switch {
			case kind != ast.PropertyMethod:
				p.errorAt(keyTok.Idx0, "Class constructor may not be an accessor")
			case generator:
				p.errorAt(keyTok.Idx0, "Class constructor may not be a generator")
			case async:
				p.errorAt(keyTok.Idx0, "Class constructor may not be an async method")
			}
			kind = ast.PropertyConstructor
		}
		fn := p.parseMethod(keyTok.Idx0, kind, async, generator, isConstructor && derived)
		return &ast.MethodDefinition{
			Span:       p.span(start),
			Key:        key,
			Computed:   computed,
			Static:     static,
			Kind:       kind,
			Function:   fn,
			Decorators: decorators,
		}
	}

	if kind != ast.PropertyMethod || async || generator {
		p.errorUnexpectedToken()
	}
	if !computed && (name == "constructor" || name == "#constructor") {
		p.errorAt(keyTok.Idx0, "Classes may not have a field named 'constructor'")
	}
	node := &ast.FieldDefinition{
		Key:        key,
		Computed:   computed,
		Static:     static,
		Accessor:   accessor,
		Decorators: decorators,
	}
	if p.currentKind() == token.Assign {
		p.next()
		node.Initializer = p.parseFieldInitializer()
	}
	node.Span = p.span(start)
	p.semicolon()
	return node
}

// parseFieldInitializer parses the value of a class field. It runs with
// this bound to the instance (or the class for static fields).
func (p *parser) parseFieldInitializer() ast.Expr {
	ctx := p.openContext()
	ctx.inClass = true
	ctx.allowSuperProperty = true
	ctx.allowNewTarget = true
	defer p.closeContext()
	return p.parseAssignmentExpression()
}

func (p *parser) parseStaticBlock(start ast.Idx) *ast.ClassStaticBlock {
	node := &ast.ClassStaticBlock{}
	node.Scope = p.scopes.Push(ast.ScopeFunction, false, false)
	ctx := p.openFunctionContext(false)
	ctx.inFunction = false
	ctx.allowSuperProperty = true

	p.expect(token.LeftBrace)
	for p.currentKind() != token.RightBrace {
		node.Body = append(node.Body, p.parseStatementListItem())
	}
	p.next()

	p.closeContext()
	p.scopes.Pop(node.Scope)
	node.Span = p.span(start)

	resolver.ResolveFunction(node)
	return node
}
