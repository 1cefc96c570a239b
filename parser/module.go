package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

func (p *parser) parseImportDeclaration() ast.Stmt {
	start := p.expect(token.Import)
	node := &ast.ImportDeclaration{}

	if p.currentKind() != token.String {
		if p.currentKind() == token.Identifier {
			local := p.parseBindingIdentifier()
			if local == nil {
				p.errorUnexpectedToken()
			}
			node.Specifiers = append(node.Specifiers, &ast.ImportDefaultSpecifier{Span: local.Span, Local: local})
			if p.currentKind() == token.Comma {
				p.next()
				if p.currentKind() != token.Multiply && p.currentKind() != token.LeftBrace {
					p.errorUnexpectedToken()
				}
			}
		}

		switch p.currentKind() {
		case token.Multiply:
			specStart := p.currentOffset()
			p.next()
			p.expectContextual("as")
			local := p.parseBindingIdentifier()
			if local == nil {
				p.errorUnexpectedToken()
			}
			node.Specifiers = append(node.Specifiers, &ast.ImportNamespaceSpecifier{Span: p.span(specStart), Local: local})
		case token.LeftBrace:
			p.next()
			for p.currentKind() != token.RightBrace {
				node.Specifiers = append(node.Specifiers, p.parseImportSpecifier())
				if p.currentKind() != token.RightBrace {
					p.expect(token.Comma)
				}
			}
			p.next()
		}
		if len(node.Specifiers) == 0 {
			p.errorUnexpectedToken()
		}
		p.expectContextual("from")
	}

	node.Source = p.parseModuleSource()
	node.Attributes = p.parseImportAttributes()
	p.semicolon()
	node.Span = p.span(start)

	for _, spec := range node.Specifiers {
		var local *ast.Identifier
		switch spec := spec.(type) {
		case *ast.ImportSpecifier:
			local = spec.Local
		case *ast.ImportDefaultSpecifier:
			local = spec.Local
		case *ast.ImportNamespaceSpecifier:
			local = spec.Local
		}
		p.declare(local, local, ast.DeclImport)
	}
	return node
}

func (p *parser) parseImportSpecifier() *ast.ImportSpecifier {
	start := p.currentOffset()
	plain := p.currentKind() == token.Identifier && !p.token.HasEscape
	imported := p.parseModuleExportName()
	node := &ast.ImportSpecifier{Imported: imported}
	if p.isContextual("as") {
		p.next()
		if node.Local = p.parseBindingIdentifier(); node.Local == nil {
			p.errorUnexpectedToken()
		}
	} else {
		if !plain || imported.Name == "yield" && p.scopes.IsGenerator() || imported.Name == "await" && p.scopes.IsAsync() {
			p.errorAt(start, "Unexpected reserved word")
		}
		node.Local = &ast.Identifier{Span: imported.Span, Name: imported.Name}
	}
	node.Span = p.span(start)
	return node
}

// parseModuleExportName parses an IdentifierName or a string naming an
// import or export.
func (p *parser) parseModuleExportName() *ast.Identifier {
	tok := p.token
	if tok.Kind != token.String && !tok.Kind.IdentifierName() {
		p.errorUnexpectedToken()
	}
	p.next()
	return &ast.Identifier{Span: ast.Span{Start: tok.Idx0, End: tok.Idx1}, Name: tok.Value}
}

func (p *parser) parseModuleSource() *ast.StringLiteral {
	tok := p.token
	if tok.Kind != token.String {
		p.errorUnexpectedToken()
	}
	p.next()
	return &ast.StringLiteral{
		Span:  ast.Span{Start: tok.Idx0, End: tok.Idx1},
		Raw:   tok.Literal(p.scanner),
		Value: tok.Value,
	}
}

// parseImportAttributes parses `with { key: "value", ... }`, also accepting
// the older assert keyword.
func (p *parser) parseImportAttributes() []*ast.ImportAttribute {
	if p.currentKind() != token.With && !(p.isContextual("assert") && !p.token.OnNewLine) {
		return nil
	}
	p.next()
	p.expect(token.LeftBrace)
	var list []*ast.ImportAttribute
	for p.currentKind() != token.RightBrace {
		start := p.currentOffset()
		key := p.parseModuleExportName()
		p.expect(token.Colon)
		value := p.parseModuleSource()
		list = append(list, &ast.ImportAttribute{Span: p.span(start), Key: key.Name, Value: value})
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.next()
	return list
}

func (p *parser) expectContextual(name string) {
	if !p.isContextual(name) {
		p.errorUnexpectedToken()
	}
	p.next()
}

func (p *parser) parseExportDeclaration() ast.Stmt {
	start := p.expect(token.Export)
	switch p.currentKind() {
	case token.Multiply:
		p.next()
		node := &ast.ExportAllDeclaration{}
		if p.isContextual("as") {
			p.next()
			node.Exported = p.parseModuleExportName()
		}
		p.expectContextual("from")
		node.Source = p.parseModuleSource()
		node.Attributes = p.parseImportAttributes()
		p.semicolon()
		node.Span = p.span(start)
		return node

	case token.Default:
		p.next()
		node := &ast.ExportDefaultDeclaration{}
		switch {
		case p.currentKind() == token.Function, p.isContextual("async") && p.peek().Kind == token.Function:
			node.Declaration = p.parseFunctionDeclaration(true)
		case p.currentKind() == token.Class || p.currentKind() == token.At:
			node.Declaration = p.parseClassDeclaration(true)
		default:
			node.Declaration = p.parseAssignmentExpression()
			p.semicolon()
		}
		node.Span = p.span(start)
		return node

	case token.LeftBrace:
		p.next()
		node := &ast.ExportNamedDeclaration{}
		var locals []*ast.Identifier
		var plain []bool
		for p.currentKind() != token.RightBrace {
			specStart := p.currentOffset()
			plain = append(plain, p.currentKind() == token.Identifier && !p.token.HasEscape)
			local := p.parseModuleExportName()
			spec := &ast.ExportSpecifier{Local: local, Exported: local}
			if p.isContextual("as") {
				p.next()
				spec.Exported = p.parseModuleExportName()
			}
			spec.Span = p.span(specStart)
			node.Specifiers = append(node.Specifiers, spec)
			locals = append(locals, local)
			if p.currentKind() != token.RightBrace {
				p.expect(token.Comma)
			}
		}
		p.next()
		if p.isContextual("from") {
			p.next()
			node.Source = p.parseModuleSource()
			node.Attributes = p.parseImportAttributes()
		} else {
			for i, local := range locals {
				if !plain[i] {
					p.errorAt(local.Start, "Unexpected reserved word")
				}
			}
		}
		p.semicolon()
		node.Span = p.span(start)
		return node
	}

	node := &ast.ExportNamedDeclaration{}
	switch {
	case p.currentKind() == token.Var || p.currentKind() == token.Let || p.currentKind() == token.Const ||
		p.startsUsingDeclaration():
		node.Declaration = p.parseVariableStatement()
	case p.currentKind() == token.Function, p.isContextual("async") && p.peek().Kind == token.Function:
		node.Declaration = p.parseFunctionDeclaration(false)
	case p.currentKind() == token.Class || p.currentKind() == token.At:
		node.Declaration = p.parseClassDeclaration(false)
	default:
		p.errorUnexpectedToken()
	}
	node.Span = p.span(start)
	return node
}
