package parser

import (
	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser/scanner"
	"github.com/t14raptor/go-neo/token"
)

func (p *parser) parseModuleItem() ast.Stmt {
	if p.module {
		switch p.currentKind() {
		case token.Import:
			if next := p.peek().Kind; next != token.LeftParenthesis && next != token.Period {
				return p.parseImportDeclaration()
			}
		case token.Export:
			return p.parseExportDeclaration()
		}
	}
	return p.parseStatementListItem()
}

// parseStatementListItem parses a statement or a declaration.
func (p *parser) parseStatementListItem() ast.Stmt {
	switch p.currentKind() {
	case token.Function:
		return p.parseFunctionDeclaration(false)
	case token.Class, token.At:
		return p.parseClassDeclaration(false)
	case token.Let, token.Const:
		return p.parseVariableStatement()
	case token.Identifier:
		if p.isContextual("async") {
			if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
				return p.parseFunctionDeclaration(false)
			}
		}
		if p.startsUsingDeclaration() {
			return p.parseVariableStatement()
		}
	}
	return p.parseStatement()
}

// peek2 returns the two tokens after the current one.
func (p *parser) peek2() (scanner.Token, scanner.Token) {
	c := p.scanner.Checkpoint()
	first := p.scanner.Next()
	second := p.scanner.Next()
	p.scanner.Rewind(c)
	return first, second
}

// startsUsingDeclaration reports whether `using x` or `await using x`
// starts at the current token.
func (p *parser) startsUsingDeclaration() bool {
	switch {
	case p.isContextual("using"):
		next := p.peek()
		return next.Kind == token.Identifier && !next.OnNewLine && next.Value != "of" && next.Value != "in"
	case p.isContextual("await") && p.scopes.IsAsync():
		first, second := p.peek2()
		return first.Kind == token.Identifier && first.Value == "using" && !first.OnNewLine &&
			second.Kind == token.Identifier && !second.OnNewLine
	}
	return false
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Var:
		return p.parseVariableStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.With:
		p.errorf("Strict mode code may not include a with statement")
	case token.Let, token.Const, token.Class, token.Function:
		p.errorf("Lexical declaration cannot appear in a single-statement context")
	}

	start := p.currentOffset()
	if p.currentKind() == token.Identifier && !p.token.HasEscape && p.peek().Kind == token.Colon {
		return p.parseLabelledStatement()
	}

	expression := p.parseExpression()
	p.semicolon()
	return &ast.ExpressionStatement{
		Span:       p.span(start),
		Expression: expression,
	}
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	start := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Span: p.span(start)}
}

func (p *parser) parseDebuggerStatement() ast.Stmt {
	start := p.expect(token.Debugger)
	p.semicolon()
	return &ast.DebuggerStatement{Span: p.span(start)}
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	start := p.expect(token.LeftBrace)
	node := &ast.BlockStatement{}
	node.Scope = p.scopes.Push(ast.ScopeBlock, false, false)
	for p.currentKind() != token.RightBrace {
		node.Body = append(node.Body, p.parseStatementListItem())
	}
	p.next()
	p.scopes.Pop(node.Scope)
	node.Span = p.span(start)
	return node
}

func (p *parser) parseLabelledStatement() ast.Stmt {
	start := p.currentOffset()
	name := p.token.Value
	if token.IsKeyword(name) || name == "yield" && p.scopes.IsGenerator() || name == "await" && p.scopes.IsAsync() {
		p.errorf("Unexpected reserved word")
	}
	id := &ast.Identifier{Span: ast.Span{Start: p.token.Idx0, End: p.token.Idx1}, Name: name}
	p.next()
	p.expect(token.Colon)

	if _, exists := p.ctx.hasLabel(name); exists {
		p.errorAt(start, "Label '%s' has already been declared", name)
	}
	loop := false
	switch p.currentKind() {
	case token.Do, token.While, token.For:
		loop = true
	}
	p.ctx.labels = append(p.ctx.labels, label{name: name, loop: loop})
	body := p.parseStatement()
	p.ctx.labels = p.ctx.labels[:len(p.ctx.labels)-1]

	return &ast.LabelledStatement{
		Span:  p.span(start),
		Label: id,
		Body:  body,
	}
}

// parseLabelReference parses the optional label of break and continue.
func (p *parser) parseLabelReference() *ast.Identifier {
	if p.currentKind() != token.Identifier || p.token.OnNewLine {
		return nil
	}
	id := &ast.Identifier{Span: ast.Span{Start: p.token.Idx0, End: p.token.Idx1}, Name: p.token.Value}
	p.next()
	return id
}

func (p *parser) parseBreakStatement() ast.Stmt {
	start := p.expect(token.Break)
	node := &ast.BreakStatement{}
	if node.Label = p.parseLabelReference(); node.Label != nil {
		if _, ok := p.ctx.hasLabel(node.Label.Name); !ok {
			p.errorAt(node.Label.Start, "Undefined label '%s'", node.Label.Name)
		}
	} else if !p.ctx.inIteration && !p.ctx.inSwitch {
		p.errorAt(start, "Illegal break statement")
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseContinueStatement() ast.Stmt {
	start := p.expect(token.Continue)
	node := &ast.ContinueStatement{}
	if node.Label = p.parseLabelReference(); node.Label != nil {
		l, ok := p.ctx.hasLabel(node.Label.Name)
		if !ok {
			p.errorAt(node.Label.Start, "Undefined label '%s'", node.Label.Name)
		}
		if !l.loop {
			p.errorAt(start, "Illegal continue statement: '%s' does not denote an iteration statement", node.Label.Name)
		}
	} else if !p.ctx.inIteration {
		p.errorAt(start, "Illegal continue statement: no surrounding iteration statement")
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	start := p.expect(token.Return)
	if !p.ctx.inFunction {
		p.errorAt(start, "Illegal return statement")
	}
	node := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	start := p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
	}
	node := &ast.ThrowStatement{Argument: p.parseExpression()}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseIfStatement() ast.Stmt {
	start := p.expect(token.If)
	p.expect(token.LeftParenthesis)
	node := &ast.IfStatement{Test: p.parseExpression()}
	p.expect(token.RightParenthesis)
	node.Consequent = p.parseStatement()
	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = p.parseStatement()
	}
	node.Span = p.span(start)
	return node
}

// parseIterationBody parses the body of a loop with break and continue
// allowed.
func (p *parser) parseIterationBody() ast.Stmt {
	prev := p.ctx.inIteration
	p.ctx.inIteration = true
	defer func() { p.ctx.inIteration = prev }()
	return p.parseStatement()
}

func (p *parser) parseWhileStatement() ast.Stmt {
	start := p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node := &ast.WhileStatement{Test: p.parseExpression()}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	start := p.expect(token.Do)
	node := &ast.DoWhileStatement{Body: p.parseIterationBody()}
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	if p.currentKind() == token.Semicolon {
		p.next()
	}
	node.Span = p.span(start)
	return node
}

// parseForStatement parses the three for forms. The head is parsed in a
// block scope so that let and const bindings are per loop.
func (p *parser) parseForStatement() ast.Stmt {
	start := p.expect(token.For)
	await := false
	if p.isContextual("await") {
		if !p.scopes.IsAsync() {
			p.errorUnexpectedToken()
		}
		await = true
		p.next()
	}
	p.expect(token.LeftParenthesis)
	scope := p.scopes.Push(ast.ScopeBlock, false, false)

	var init ast.Node
	var decl *ast.VariableDeclaration
	switch {
	case p.currentKind() == token.Semicolon:
	case p.currentKind() == token.Var || p.currentKind() == token.Let || p.currentKind() == token.Const ||
		p.startsUsingDeclaration():
		restore := p.setAllowIn(false)
		decl = p.parseVariableDeclaration()
		restore()
		init = decl
	default:
		st := p.mark()
		if target := p.parsePatternTarget(false); target != nil && (p.currentKind() == token.In || p.isContextual("of")) {
			init = target
			break
		}
		p.restore(st)
		restore := p.setAllowIn(false)
		init = p.parseExpression()
		restore()
	}

	if p.currentKind() == token.In || p.isContextual("of") {
		of := p.currentKind() != token.In
		loop := "for-in"
		if of {
			loop = "for-of"
		}
		if decl != nil {
			if len(decl.List) != 1 {
				p.errorAt(decl.Start, "Invalid left-hand side in %s loop: Must have a single binding.", loop)
			}
			if decl.List[0].Initializer != nil {
				p.errorAt(decl.Start, "%s loop variable declaration may not have an initializer.", loop)
			}
		} else if _, ok := init.(ast.Pattern); !ok {
			p.errorAt(start, "Invalid left-hand side in %s loop", loop)
		}
		if await && !of {
			p.errorUnexpectedToken()
		}
		p.next()

		var right ast.Expr
		if of {
			right = p.parseAssignmentExpression()
		} else {
			right = p.parseExpression()
		}
		p.expect(token.RightParenthesis)
		body := p.parseIterationBody()
		p.scopes.Pop(scope)

		if of {
			return &ast.ForOfStatement{Span: p.span(start), Left: init, Right: right, Body: body, Await: await, Scope: scope}
		}
		return &ast.ForInStatement{Span: p.span(start), Left: init, Right: right, Body: body, Scope: scope}
	}

	if await {
		p.errorUnexpectedToken()
	}
	if decl != nil {
		p.checkInitializers(decl)
	}
	node := &ast.ForStatement{Init: init, Scope: scope}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	p.scopes.Pop(scope)
	node.Span = p.span(start)
	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	start := p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	node := &ast.SwitchStatement{Discriminant: p.parseExpression()}
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	node.Scope = p.scopes.Push(ast.ScopeBlock, false, false)
	prev := p.ctx.inSwitch
	p.ctx.inSwitch = true

	hasDefault := false
	for p.currentKind() != token.RightBrace {
		clauseStart := p.currentOffset()
		clause := &ast.CaseClause{}
		if p.currentKind() == token.Default {
			if hasDefault {
				p.errorf("More than one default clause in switch statement")
			}
			hasDefault = true
			p.next()
		} else {
			p.expect(token.Case)
			clause.Test = p.parseExpression()
		}
		p.expect(token.Colon)

		for {
			kind := p.currentKind()
			if kind == token.Case || kind == token.Default || kind == token.RightBrace {
				break
			}
			clause.Consequent = append(clause.Consequent, p.parseStatementListItem())
		}
		clause.Span = p.span(clauseStart)
		node.Cases = append(node.Cases, clause)
	}
	p.next()

	p.ctx.inSwitch = prev
	p.scopes.Pop(node.Scope)
	node.Span = p.span(start)
	return node
}

func (p *parser) parseTryStatement() ast.Stmt {
	start := p.expect(token.Try)
	node := &ast.TryStatement{Block: p.parseBlockStatement()}

	if p.currentKind() == token.Catch {
		catchStart := p.currentOffset()
		p.next()
		clause := &ast.CatchClause{}
		clause.Scope = p.scopes.Push(ast.ScopeBlock, false, false)
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			if clause.Param = p.parsePatternTarget(true); clause.Param == nil {
				p.errorUnexpectedToken()
			}
			p.declarePattern(clause.Param, ast.DeclLet)
			p.expect(token.RightParenthesis)
		}
		p.expect(token.LeftBrace)
		for p.currentKind() != token.RightBrace {
			clause.Body = append(clause.Body, p.parseStatementListItem())
		}
		p.next()
		p.scopes.Pop(clause.Scope)
		clause.Span = p.span(catchStart)
		node.Handler = clause
	}

	if p.currentKind() == token.Finally {
		p.next()
		node.Finalizer = p.parseBlockStatement()
	}
	if node.Handler == nil && node.Finalizer == nil {
		p.errorf("Missing catch or finally after try")
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseFunctionDeclaration(nameOptional bool) ast.Stmt {
	fn := p.parseFunction(true, nameOptional)
	node := &ast.FunctionDeclaration{Span: fn.Span, Function: fn}
	if fn.Name != nil {
		p.declare(fn.Name, node, ast.DeclFunction)
	}
	return node
}

func (p *parser) parseClassDeclaration(nameOptional bool) ast.Stmt {
	class := p.parseClass(true, nameOptional)
	node := &ast.ClassDeclaration{Span: class.Span, Class: class}
	if class.Name != nil {
		p.declare(class.Name, class.Name, ast.DeclClass)
	}
	return node
}

func (p *parser) parseVariableStatement() ast.Stmt {
	decl := p.parseVariableDeclaration()
	p.checkInitializers(decl)
	p.semicolon()
	decl.Span = p.span(decl.Start)
	return decl
}

// declarationKind consumes the declaration keyword (or keywords, for
// await using).
func (p *parser) declarationKind() ast.DeclKind {
	kind := ast.DeclVar
	switch {
	case p.currentKind() == token.Let:
		kind = ast.DeclLet
	case p.currentKind() == token.Const:
		kind = ast.DeclConst
	case p.isContextual("using"):
		kind = ast.DeclUsing
	case p.isContextual("await"):
		p.next()
		kind = ast.DeclAwaitUsing
	}
	p.next()
	return kind
}

func (p *parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.currentOffset()
	node := &ast.VariableDeclaration{Kind: p.declarationKind()}
	for {
		node.List = append(node.List, p.parseVariableDeclarator(node.Kind))
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseVariableDeclarator(kind ast.DeclKind) *ast.VariableDeclarator {
	start := p.currentOffset()
	if kind == ast.DeclUsing || kind == ast.DeclAwaitUsing {
		if k := p.currentKind(); k == token.LeftBracket || k == token.LeftBrace {
			p.errorf("%s declarations may not have binding patterns", kind)
		}
	}
	target := p.parsePatternTarget(true)
	if target == nil {
		p.errorUnexpectedToken()
	}
	node := &ast.VariableDeclarator{Target: target}
	if p.currentKind() == token.Assign {
		p.next()
		node.Initializer = p.parseAssignmentExpression()
	}
	p.declarePattern(target, kind)
	node.Span = p.span(start)
	return node
}

// checkInitializers rejects declarators that need an initializer outside
// of for-in and for-of heads.
func (p *parser) checkInitializers(decl *ast.VariableDeclaration) {
	for _, d := range decl.List {
		if d.Initializer != nil {
			continue
		}
		if _, ok := d.Target.(*ast.Identifier); !ok {
			p.errorAt(d.Start, "Missing initializer in destructuring declaration")
		}
		switch decl.Kind {
		case ast.DeclConst, ast.DeclUsing, ast.DeclAwaitUsing:
			p.errorAt(d.Start, "Missing initializer in %s declaration", decl.Kind)
		}
	}
}
