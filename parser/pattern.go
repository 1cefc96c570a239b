package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

// Pattern parsing is speculative: every function here returns nil and
// leaves the parser where it started when the input does not form a
// pattern, so callers can fall back to expression parsing. With binding
// set only identifiers and nested patterns are accepted as targets; in
// assignment patterns member expressions are targets too.

// parseBindingIdentifier returns nil when the current token cannot name a
// binding.
func (p *parser) parseBindingIdentifier() *ast.Identifier {
	tok := p.token
	if tok.Kind != token.Identifier {
		return nil
	}
	if tok.HasEscape && token.IsKeyword(tok.Value) {
		return nil
	}
	if tok.Value == "yield" && p.scopes.IsGenerator() || tok.Value == "await" && p.scopes.IsAsync() {
		return nil
	}
	p.next()
	return &ast.Identifier{Span: ast.Span{Start: tok.Idx0, End: tok.Idx1}, Name: tok.Value}
}

func (p *parser) parsePatternTarget(binding bool) ast.Pattern {
	switch p.currentKind() {
	case token.LeftBracket:
		if pat := p.parseArrayPattern(binding); pat != nil {
			return pat
		}
		return nil
	case token.LeftBrace:
		if pat := p.parseObjectPattern(binding); pat != nil {
			return pat
		}
		return nil
	}

	if binding {
		if id := p.parseBindingIdentifier(); id != nil {
			return id
		}
		return nil
	}

	switch p.currentKind() {
	case token.Identifier, token.This, token.Super:
	default:
		return nil
	}
	st := p.mark()
	if target := simpleTarget(p.parseLeftHandSideExpression()); target != nil {
		return target.(ast.Pattern)
	}
	p.restore(st)
	return nil
}

// parsePatternElement parses a target with an optional default value.
func (p *parser) parsePatternElement(binding bool) *ast.BindingElement {
	start := p.currentOffset()
	target := p.parsePatternTarget(binding)
	if target == nil {
		return nil
	}
	node := &ast.BindingElement{Target: target}
	if p.currentKind() == token.Assign {
		p.next()
		restore := p.setAllowIn(true)
		node.Default = p.parseAssignmentExpression()
		restore()
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseArrayPattern(binding bool) *ast.ArrayPattern {
	st := p.mark()
	start := p.expect(token.LeftBracket)
	node := &ast.ArrayPattern{}
	for p.currentKind() != token.RightBracket {
		if p.currentKind() == token.Comma {
			p.next()
			node.Elements = append(node.Elements, nil)
			continue
		}
		if p.currentKind() == token.Ellipsis {
			p.next()
			rest := p.parsePatternTarget(binding)
			if rest == nil || p.currentKind() != token.RightBracket {
				p.restore(st)
				return nil
			}
			node.Rest = rest
			break
		}

		el := p.parsePatternElement(binding)
		if el == nil {
			p.restore(st)
			return nil
		}
		node.Elements = append(node.Elements, el)
		if p.currentKind() == token.RightBracket {
			break
		}
		if p.currentKind() != token.Comma {
			p.restore(st)
			return nil
		}
		p.next()
	}
	p.next()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseObjectPattern(binding bool) *ast.ObjectPattern {
	st := p.mark()
	start := p.expect(token.LeftBrace)
	node := &ast.ObjectPattern{}
	for p.currentKind() != token.RightBrace {
		if p.currentKind() == token.Ellipsis {
			p.next()
			var rest ast.Pattern
			if binding {
				if id := p.parseBindingIdentifier(); id != nil {
					rest = id
				}
			} else {
				rest = p.parsePatternTarget(false)
			}
			if rest == nil || p.currentKind() != token.RightBrace {
				p.restore(st)
				return nil
			}
			node.Rest = rest
			break
		}

		prop := p.parsePatternProperty(binding)
		if prop == nil {
			p.restore(st)
			return nil
		}
		node.Properties = append(node.Properties, prop)
		if p.currentKind() == token.RightBrace {
			break
		}
		if p.currentKind() != token.Comma {
			p.restore(st)
			return nil
		}
		p.next()
	}
	p.next()
	node.Span = p.span(start)
	return node
}

func (p *parser) parsePatternProperty(binding bool) *ast.PatternProperty {
	start := p.currentOffset()
	node := &ast.PatternProperty{}
	if p.currentKind() == token.Identifier && p.peek().Kind != token.Colon {
		id := p.parseBindingIdentifier()
		if id == nil {
			return nil
		}
		node.Key = &ast.Identifier{Span: id.Span, Name: id.Name}
		node.Value = id
		node.Shorthand = true
	} else {
		key, computed := p.parsePropertyKey()
		if key == nil || p.currentKind() != token.Colon {
			return nil
		}
		if _, private := key.(*ast.PrivateName); private {
			return nil
		}
		p.next()
		node.Key, node.Computed = key, computed
		if node.Value = p.parsePatternTarget(binding); node.Value == nil {
			return nil
		}
	}

	if p.currentKind() == token.Assign {
		p.next()
		restore := p.setAllowIn(true)
		node.Default = p.parseAssignmentExpression()
		restore()
	}
	node.Span = p.span(start)
	return node
}

// parseFormalParameters parses a parenthesized parameter list. When
// speculative is set a malformed list is a miss rather than an error.
func (p *parser) parseFormalParameters(speculative bool) *ast.ParameterList {
	st := p.mark()
	fail := func() *ast.ParameterList {
		if !speculative {
			p.errorUnexpectedToken()
		}
		p.restore(st)
		return nil
	}
	if p.currentKind() != token.LeftParenthesis {
		return fail()
	}
	start := p.currentOffset()
	p.next()
	defer p.setAllowIn(true)()

	node := &ast.ParameterList{}
	for p.currentKind() != token.RightParenthesis {
		if p.currentKind() == token.Ellipsis {
			p.next()
			rest := p.parsePatternTarget(true)
			if rest == nil {
				return fail()
			}
			if p.currentKind() != token.RightParenthesis {
				if speculative {
					return fail()
				}
				p.errorf("Rest parameter must be last formal parameter")
			}
			node.Rest = rest
			break
		}

		el := p.parsePatternElement(true)
		if el == nil {
			return fail()
		}
		node.List = append(node.List, el)
		if p.currentKind() != token.RightParenthesis {
			if p.currentKind() != token.Comma {
				return fail()
			}
			p.next()
		}
	}
	p.next()
	node.Span = p.span(start)
	return node
}

// declareParameters declares every name bound by params in the current
// function scope.
func (p *parser) declareParameters(params *ast.ParameterList) {
	for _, el := range params.List {
		p.declarePattern(el.Target, ast.DeclParam)
	}
	if params.Rest != nil {
		p.declarePattern(params.Rest, ast.DeclParam)
	}
}
