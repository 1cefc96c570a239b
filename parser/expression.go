package parser

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser/scanner"
	"github.com/t14raptor/go-neo/resolver"
	"github.com/t14raptor/go-neo/token"
)

// parseExpression parses a comma sequence. Sequences nest to the right:
// a, b, c is a, (b, c).
func (p *parser) parseExpression() ast.Expr {
	left := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return left
	}
	p.next()
	right := p.parseExpression()
	return &ast.BinaryExpression{
		Span:     ast.Span{Start: left.Idx0(), End: right.Idx1()},
		Operator: token.Comma,
		Left:     left,
		Right:    right,
	}
}

// parseAssignmentExpression tries, in order, a yield expression, an arrow
// function and an assignment to a pattern, and otherwise parses a
// conditional expression. An assignment operator after a conditional
// expression is accepted only when the expression is a simple target.
func (p *parser) parseAssignmentExpression() ast.Expr {
	if p.isContextual("yield") && p.scopes.IsGenerator() {
		return p.parseYieldExpression()
	}
	if arrow := p.tryArrowFunction(); arrow != nil {
		return arrow
	}
	if assign := p.tryAssignment(); assign != nil {
		return assign
	}

	left := p.parseConditionalExpression()
	if !p.currentKind().Assignment() {
		return left
	}
	target := simpleTarget(left)
	if target == nil {
		p.errorAt(left.Idx0(), errInvalidAssignment)
	}
	op := p.currentKind()
	p.next()
	right := p.parseAssignmentExpression()
	return &ast.AssignExpression{
		Span:     ast.Span{Start: left.Idx0(), End: right.Idx1()},
		Operator: op,
		Left:     target.(ast.Pattern),
		Right:    right,
	}
}

// simpleTarget returns the identifier or member expression e denotes, with
// parentheses removed, or nil when e cannot be assigned to.
func simpleTarget(e ast.Expr) ast.Expr {
	for {
		paren, ok := e.(*ast.ParenthesizedExpression)
		if !ok {
			break
		}
		e = paren.Expression
	}
	switch e := e.(type) {
	case *ast.Identifier:
		return e
	case *ast.MemberExpression:
		if ast.IsOptionalChain(e) {
			return nil
		}
		return e
	}
	return nil
}

// tryAssignment parses `pattern op expression` where pattern is an
// identifier or a destructuring pattern. It returns nil, consuming
// nothing, when the input does not start that way.
func (p *parser) tryAssignment() ast.Expr {
	switch p.currentKind() {
	case token.Identifier, token.LeftBracket, token.LeftBrace:
	default:
		return nil
	}

	st := p.mark()
	start := p.currentOffset()
	var target ast.Pattern
	switch p.currentKind() {
	case token.Identifier:
		if id := p.parseBindingIdentifier(); id != nil {
			target = id
		}
	case token.LeftBracket:
		if pat := p.parseArrayPattern(false); pat != nil {
			target = pat
		}
	case token.LeftBrace:
		if pat := p.parseObjectPattern(false); pat != nil {
			target = pat
		}
	}
	if target == nil || !p.currentKind().Assignment() {
		p.restore(st)
		return nil
	}
	op := p.currentKind()
	if _, ok := target.(*ast.Identifier); !ok && op != token.Assign {
		p.restore(st)
		return nil
	}

	p.next()
	right := p.parseAssignmentExpression()
	return &ast.AssignExpression{
		Span:     p.span(start),
		Operator: op,
		Left:     target,
		Right:    right,
	}
}

func (p *parser) parseYieldExpression() ast.Expr {
	start := p.currentOffset()
	p.next()
	node := &ast.YieldExpression{}
	if !p.token.OnNewLine {
		if p.currentKind() == token.Multiply {
			p.next()
			node.Delegate = true
			node.Argument = p.parseAssignmentExpression()
		} else if startsOperand(p.currentKind()) {
			node.Argument = p.parseAssignmentExpression()
		}
	}
	node.Span = p.span(start)
	return node
}

// startsOperand reports whether an operand may start at t after a prefix
// keyword whose operand is optional.
func startsOperand(t token.Token) bool {
	switch t {
	case token.RightParenthesis, token.RightBracket, token.RightBrace, token.Comma,
		token.Semicolon, token.Colon, token.QuestionMark, token.In, token.EOF:
		return false
	}
	return !t.Assignment()
}

// tryArrowFunction parses an arrow function when one starts at the current
// token and returns nil, consuming nothing, otherwise. The parameter list
// is parsed inside the arrow's scope, which is discarded on a miss.
func (p *parser) tryArrowFunction() ast.Expr {
	start := p.currentOffset()
	async := false
	switch {
	case p.isContextual("async"):
		next := p.peek()
		if next.Kind == token.Arrow {
			break
		}
		if next.OnNewLine || next.Kind != token.Identifier && next.Kind != token.LeftParenthesis {
			return nil
		}
		async = true
	case p.currentKind() == token.Identifier:
		if p.peek().Kind != token.Arrow {
			return nil
		}
	case p.currentKind() == token.LeftParenthesis:
	default:
		return nil
	}

	st := p.mark()
	if async {
		p.next()
	}
	scope := p.scopes.Push(ast.ScopeFunction, false, async)
	var params *ast.ParameterList
	if p.currentKind() == token.Identifier {
		if id := p.parseBindingIdentifier(); id != nil {
			params = &ast.ParameterList{
				Span: id.Span,
				List: []*ast.BindingElement{{Span: id.Span, Target: id}},
			}
		}
	} else {
		params = p.parseFormalParameters(true)
	}
	if params == nil || p.currentKind() != token.Arrow || p.token.OnNewLine {
		p.scopes.Discard(scope)
		p.restore(st)
		return nil
	}
	p.next()

	node := &ast.ArrowFunction{Params: params, Async: async}
	p.declareParameters(params)
	p.openFunctionContext(true)
	if p.currentKind() == token.LeftBrace {
		node.Body = p.parseFunctionBody()
	} else {
		node.Expression = p.parseAssignmentExpression()
	}
	p.closeContext()
	node.Scope = p.scopes.Pop(scope)
	node.Span = p.span(start)

	resolver.ResolveFunction(node)
	return node
}

func (p *parser) parseConditionalExpression() ast.Expr {
	test := p.parseBinaryExpression(PrecedenceLogicalOr)
	if p.currentKind() != token.QuestionMark {
		return test
	}
	p.next()

	restore := p.setAllowIn(true)
	consequent := p.parseAssignmentExpression()
	restore()

	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{
		Span:       ast.Span{Start: test.Idx0(), End: alternate.Idx1()},
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

// parseBinaryExpression parses the binary tiers from min upwards by
// precedence climbing. ** is the only right associative operator.
func (p *parser) parseBinaryExpression(min Precedence) ast.Expr {
	left := p.parseUnaryExpression()
	for {
		op := p.currentKind()
		prec := binaryPrecedence(op)
		if prec == 0 || prec < min || op == token.In && !p.ctx.allowIn {
			return left
		}
		opIdx := p.currentOffset()
		if op == token.Exponent {
			switch left.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.errorf("Unary operator used immediately before exponentiation expression. " +
					"Parenthesis must be used to disambiguate operator precedence")
			}
		}
		p.next()

		next := prec + 1
		if op == token.Exponent {
			next = prec
		}
		right := p.parseBinaryExpression(next)
		if mixesCoalesce(op, left, right) {
			p.errorAt(opIdx, "Cannot mix ?? with && or || without parentheses")
		}

		left = &ast.BinaryExpression{
			Span:     ast.Span{Start: left.Idx0(), End: right.Idx1()},
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
}

// mixesCoalesce reports whether joining left and right with op combines
// ?? with && or || without parentheses.
func mixesCoalesce(op token.Token, left, right ast.Expr) bool {
	is := func(e ast.Expr, ops ...token.Token) bool {
		b, ok := e.(*ast.BinaryExpression)
		return ok && slices.Contains(ops, b.Operator)
	}
	switch op {
	case token.Coalesce:
		return is(left, token.LogicalAnd, token.LogicalOr) || is(right, token.LogicalAnd, token.LogicalOr)
	case token.LogicalAnd, token.LogicalOr:
		return is(left, token.Coalesce) || is(right, token.Coalesce)
	}
	return false
}

func (p *parser) parseUnaryExpression() ast.Expr {
	start := p.currentOffset()
	switch op := p.currentKind(); op {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		p.next()
		operand := p.parseUnaryExpression()
		if op == token.Delete {
			if m, ok := operand.(*ast.MemberExpression); ok {
				if _, private := m.Property.(*ast.PrivateName); private {
					p.errorAt(start, "Private fields can not be deleted")
				}
			}
		}
		return &ast.UnaryExpression{
			Span:     p.span(start),
			Operator: op,
			Operand:  operand,
		}
	case token.Increment, token.Decrement:
		p.next()
		operand := p.parseUnaryExpression()
		target := simpleTarget(operand)
		if target == nil {
			p.errorAt(operand.Idx0(), "Invalid left-hand side expression in prefix operation")
		}
		return &ast.UpdateExpression{
			Span:     p.span(start),
			Operator: op,
			Operand:  target,
			Prefix:   true,
		}
	}

	if p.isContextual("await") && p.scopes.IsAsync() {
		p.next()
		argument := p.parseUnaryExpression()
		return &ast.AwaitExpression{
			Span:     p.span(start),
			Argument: argument,
		}
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseUpdateExpression() ast.Expr {
	operand := p.parseLeftHandSideExpression()
	op := p.currentKind()
	if op != token.Increment && op != token.Decrement || p.token.OnNewLine {
		return operand
	}
	target := simpleTarget(operand)
	if target == nil {
		p.errorAt(operand.Idx0(), "Invalid left-hand side expression in postfix operation")
	}
	p.next()
	return &ast.UpdateExpression{
		Span:     p.span(operand.Idx0()),
		Operator: op,
		Operand:  target,
	}
}

func (p *parser) parseLeftHandSideExpression() ast.Expr {
	var left ast.Expr
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
	return p.parseChain(left, true)
}

func (p *parser) parseNewExpression() ast.Expr {
	start := p.expect(token.New)
	if p.currentKind() == token.Period {
		p.next()
		if !p.isContextual("target") {
			p.errorUnexpectedToken()
		}
		if !p.ctx.allowNewTarget {
			p.errorAt(start, "new.target expression is not allowed here")
		}
		property := &ast.Identifier{Span: ast.Span{Start: p.token.Idx0, End: p.token.Idx1}, Name: "target"}
		p.next()
		return &ast.MetaProperty{
			Span:     p.span(start),
			Meta:     &ast.Identifier{Span: ast.Span{Start: start, End: start + 3}, Name: "new"},
			Property: property,
		}
	}

	var callee ast.Expr
	switch p.currentKind() {
	case token.New:
		callee = p.parseNewExpression()
	case token.Import:
		p.errorf("Cannot use new with import")
	default:
		callee = p.parsePrimaryExpression()
	}
	callee = p.parseChain(callee, false)

	node := &ast.NewExpression{Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		node.Arguments = p.parseArguments()
	}
	node.Span = p.span(start)
	return node
}

// parseChain parses member accesses, calls, optional links and tagged
// templates following left. Without allowCall the chain stops at the
// first argument list, which belongs to an enclosing new.
func (p *parser) parseChain(left ast.Expr, allowCall bool) ast.Expr {
	start := left.Idx0()
	optional := false
	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			property := p.parseMemberName()
			left = &ast.MemberExpression{Span: p.span(start), Object: left, Property: property}
		case token.LeftBracket:
			p.next()
			restore := p.setAllowIn(true)
			property := p.parseExpression()
			restore()
			p.expect(token.RightBracket)
			left = &ast.MemberExpression{Span: p.span(start), Object: left, Property: property, Computed: true}
		case token.QuestionDot:
			if !allowCall {
				p.errorf("Invalid optional chain from new expression")
			}
			p.next()
			optional = true
			switch p.currentKind() {
			case token.LeftParenthesis:
				args := p.parseArguments()
				left = &ast.CallExpression{Span: p.span(start), Callee: left, Arguments: args, Optional: true}
			case token.LeftBracket:
				p.next()
				restore := p.setAllowIn(true)
				property := p.parseExpression()
				restore()
				p.expect(token.RightBracket)
				left = &ast.MemberExpression{Span: p.span(start), Object: left, Property: property, Computed: true, Optional: true}
			case token.NoSubstitutionTemplate, token.TemplateHead:
				p.errorf("Invalid tagged template on optional chain")
			default:
				property := p.parseMemberName()
				left = &ast.MemberExpression{Span: p.span(start), Object: left, Property: property, Optional: true}
			}
		case token.LeftParenthesis:
			if !allowCall {
				return left
			}
			args := p.parseArguments()
			left = &ast.CallExpression{Span: p.span(start), Callee: left, Arguments: args}
		case token.NoSubstitutionTemplate, token.TemplateHead:
			if optional {
				p.errorf("Invalid tagged template on optional chain")
			}
			quasi := p.parseTemplateLiteral()
			left = &ast.TaggedTemplate{Span: p.span(start), Tag: left, Quasi: quasi}
		default:
			return left
		}
	}
}

// parseMemberName parses the name after '.' or '?.'.
func (p *parser) parseMemberName() ast.Expr {
	tok := p.token
	span := ast.Span{Start: tok.Idx0, End: tok.Idx1}
	switch {
	case tok.Kind == token.PrivateName:
		if !p.ctx.inClass {
			p.errorf("Private field '#%s' must be declared in an enclosing class", tok.Value)
		}
		p.next()
		return &ast.PrivateName{Span: span, Name: tok.Value}
	case tok.Kind.IdentifierName():
		p.next()
		return &ast.Identifier{Span: span, Name: tok.Value}
	}
	p.errorUnexpectedToken()
	return nil
}

func (p *parser) parseArguments() []ast.Expr {
	p.expect(token.LeftParenthesis)
	defer p.setAllowIn(true)()

	var list []ast.Expr
	for p.currentKind() != token.RightParenthesis {
		list = append(list, p.parseSpreadOrAssignment())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	p.next()
	return list
}

func (p *parser) parseSpreadOrAssignment() ast.Expr {
	if p.currentKind() != token.Ellipsis {
		return p.parseAssignmentExpression()
	}
	start := p.currentOffset()
	p.next()
	argument := p.parseAssignmentExpression()
	return &ast.SpreadElement{Span: p.span(start), Argument: argument}
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	tok := p.token
	span := ast.Span{Start: tok.Idx0, End: tok.Idx1}
	switch tok.Kind {
	case token.Identifier:
		if p.isContextual("async") {
			if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
				return p.parseFunction(false, false)
			}
		}
		return p.parseIdentifierReference()
	case token.This:
		p.next()
		return &ast.ThisExpression{Span: span}
	case token.Super:
		return p.parseSuper()
	case token.Null:
		p.next()
		return &ast.NullLiteral{Span: span}
	case token.True, token.False:
		p.next()
		return &ast.BooleanLiteral{Span: span, Value: tok.Kind == token.True}
	case token.Number, token.BigInt:
		p.next()
		return p.numberLiteral(tok)
	case token.String:
		p.next()
		return &ast.StringLiteral{Span: span, Raw: tok.Literal(p.scanner), Value: tok.Value}
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral()
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftParenthesis:
		return p.parseParenthesizedExpression()
	case token.Function:
		return p.parseFunction(false, false)
	case token.Class, token.At:
		return p.parseClass(false, true)
	case token.Import:
		return p.parseImportExpression()
	case token.PrivateName:
		// #x in obj
		if p.ctx.inClass && p.peek().Kind == token.In {
			p.next()
			return &ast.PrivateName{Span: span, Name: tok.Value}
		}
	}
	p.errorUnexpectedToken()
	return nil
}

func (p *parser) parseIdentifierReference() ast.Expr {
	tok := p.token
	if tok.Kind != token.Identifier {
		p.errorUnexpectedToken()
	}
	if tok.HasEscape && token.IsKeyword(tok.Value) {
		p.errorf("Keyword must not contain escaped characters")
	}
	if tok.Value == "yield" && p.scopes.IsGenerator() || tok.Value == "await" && p.scopes.IsAsync() {
		p.errorf("Unexpected reserved word")
	}
	p.next()

	span := ast.Span{Start: tok.Idx0, End: tok.Idx1}
	switch tok.Value {
	case "NaN":
		return &ast.NumberLiteral{Span: span, Raw: tok.Value, Value: math.NaN()}
	case "Infinity":
		return &ast.NumberLiteral{Span: span, Raw: tok.Value, Value: math.Inf(1)}
	}
	return &ast.Identifier{Span: span, Name: tok.Value}
}

func (p *parser) parseSuper() ast.Expr {
	start := p.expect(token.Super)
	allowed := false
	switch p.currentKind() {
	case token.LeftParenthesis:
		allowed = p.ctx.allowSuperCall
	case token.Period, token.LeftBracket:
		allowed = p.ctx.allowSuperProperty
	}
	if !allowed {
		p.errorAt(start, "'super' keyword unexpected here")
	}
	return &ast.SuperExpression{Span: p.span(start)}
}

// numberLiteral converts an already consumed Number or BigInt token.
func (p *parser) numberLiteral(tok scanner.Token) ast.Expr {
	span := ast.Span{Start: tok.Idx0, End: tok.Idx1}
	raw := tok.Literal(p.scanner)
	if tok.Kind == token.BigInt {
		value, ok := scanner.BigIntValue(raw)
		if !ok {
			p.errorAt(tok.Idx0, "Invalid BigInt literal %s", raw)
		}
		return &ast.BigIntLiteral{Span: span, Raw: raw, Value: value}
	}
	value, err := scanner.NumberValue(raw)
	if err != nil {
		p.errorAt(tok.Idx0, "Invalid number %s", raw)
	}
	return &ast.NumberLiteral{Span: span, Raw: raw, Value: value}
}

func (p *parser) parseParenthesizedExpression() ast.Expr {
	start := p.expect(token.LeftParenthesis)
	restore := p.setAllowIn(true)
	expression := p.parseExpression()
	restore()
	p.expect(token.RightParenthesis)
	return &ast.ParenthesizedExpression{Span: p.span(start), Expression: expression}
}

func (p *parser) parseArrayLiteral() ast.Expr {
	start := p.expect(token.LeftBracket)
	defer p.setAllowIn(true)()

	var elements []ast.Expr
	for p.currentKind() != token.RightBracket {
		if p.currentKind() == token.Comma {
			p.next()
			elements = append(elements, nil)
			continue
		}
		elements = append(elements, p.parseSpreadOrAssignment())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.next()
	return &ast.ArrayLiteral{Span: p.span(start), Elements: elements}
}

func (p *parser) parseObjectLiteral() ast.Expr {
	start := p.expect(token.LeftBrace)
	defer p.setAllowIn(true)()

	var properties []ast.Property
	for p.currentKind() != token.RightBrace {
		properties = append(properties, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.next()
	return &ast.ObjectLiteral{Span: p.span(start), Properties: properties}
}

func (p *parser) parseObjectProperty() ast.Property {
	start := p.currentOffset()
	if p.currentKind() == token.Ellipsis {
		p.next()
		argument := p.parseAssignmentExpression()
		return &ast.SpreadElement{Span: p.span(start), Argument: argument}
	}

	kind := ast.PropertyValue
	async, generator := false, false
	switch {
	case (p.isContextual("get") || p.isContextual("set")) && p.modifierFollows(true):
		kind = ast.PropertyGet
		if p.token.Value == "set" {
			kind = ast.PropertySet
		}
		p.next()
	case p.isContextual("async") && p.modifierFollows(false):
		kind = ast.PropertyMethod
		async = true
		p.next()
	}
	if p.currentKind() == token.Multiply && (kind == ast.PropertyValue || async) {
		p.next()
		kind = ast.PropertyMethod
		generator = true
	}

	keyTok := p.token
	key, computed := p.parsePropertyKey()
	if key == nil {
		p.errorUnexpectedToken()
	}
	if _, private := key.(*ast.PrivateName); private {
		p.errorAt(keyTok.Idx0, "Unexpected private name #%s", keyTok.Value)
	}
	if kind == ast.PropertyValue && p.currentKind() == token.LeftParenthesis {
		kind = ast.PropertyMethod
	}

	if kind != ast.PropertyValue {
		fn := p.parseMethod(keyTok.Idx0, kind, async, generator, false)
		return &ast.PropertyKeyed{Span: p.span(start), Key: key, Computed: computed, Kind: kind, Value: fn}
	}
	if p.currentKind() == token.Colon {
		p.next()
		value := p.parseAssignmentExpression()
		return &ast.PropertyKeyed{Span: p.span(start), Key: key, Computed: computed, Kind: kind, Value: value}
	}

	id, ok := key.(*ast.Identifier)
	if !ok || keyTok.Kind != token.Identifier {
		p.errorUnexpectedToken()
	}
	if keyTok.HasEscape && token.IsKeyword(id.Name) ||
		id.Name == "yield" && p.scopes.IsGenerator() || id.Name == "await" && p.scopes.IsAsync() {
		p.errorAt(keyTok.Idx0, "Unexpected reserved word")
	}
	if p.currentKind() == token.Assign {
		p.errorf("Invalid shorthand property initializer")
	}
	return &ast.PropertyShort{Span: id.Span, Name: id}
}

// modifierFollows reports whether the current word (get, set, async,
// static, accessor) modifies a member key that follows it rather than
// being the key itself.
func (p *parser) modifierFollows(allowNewLine bool) bool {
	next := p.peek()
	if !allowNewLine && next.OnNewLine {
		return false
	}
	switch next.Kind {
	case token.String, token.Number, token.BigInt, token.LeftBracket, token.PrivateName, token.Multiply:
		return true
	}
	return next.Kind.IdentifierName()
}

// parsePropertyKey parses an object or class member key. It returns nil
// without consuming anything when no key starts here.
func (p *parser) parsePropertyKey() (ast.Expr, bool) {
	tok := p.token
	span := ast.Span{Start: tok.Idx0, End: tok.Idx1}
	switch {
	case tok.Kind == token.String:
		p.next()
		return &ast.StringLiteral{Span: span, Raw: tok.Literal(p.scanner), Value: tok.Value}, false
	case tok.Kind == token.Number || tok.Kind == token.BigInt:
		p.next()
		return p.numberLiteral(tok), false
	case tok.Kind == token.LeftBracket:
		p.next()
		restore := p.setAllowIn(true)
		key := p.parseAssignmentExpression()
		restore()
		p.expect(token.RightBracket)
		return key, true
	case tok.Kind == token.PrivateName:
		p.next()
		return &ast.PrivateName{Span: span, Name: tok.Value}, false
	case tok.Kind.IdentifierName():
		p.next()
		return &ast.Identifier{Span: span, Name: tok.Value}, false
	}
	return nil, false
}

func (p *parser) parseTemplateLiteral() *ast.TemplateLiteral {
	start := p.currentOffset()
	node := &ast.TemplateLiteral{}
	for {
		tok := p.token
		node.Quasis = append(node.Quasis, &ast.TemplateElement{
			Span:   ast.Span{Start: tok.Idx0, End: tok.Idx1},
			Raw:    tok.Raw,
			Cooked: tok.Value,
		})
		p.next()
		if tok.Kind == token.NoSubstitutionTemplate || tok.Kind == token.TemplateTail {
			break
		}

		restore := p.setAllowIn(true)
		node.Expressions = append(node.Expressions, p.parseExpression())
		restore()
		if p.currentKind() != token.RightBrace {
			p.errorUnexpectedToken()
		}
		p.token = p.scanner.RescanTemplateContinuation(p.token)
		if p.token.Kind == token.Error {
			p.errorAt(p.token.Err.Start, p.token.Err.Message)
		}
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseRegExpLiteral() ast.Expr {
	tok := p.scanner.RescanRegExp(p.token)
	switch tok.Kind {
	case token.Error:
		p.errorAt(tok.Err.Start, tok.Err.Message)
	case token.RegExp:
	default:
		p.errorUnexpectedToken()
	}
	p.token = tok
	p.validateRegExp(tok.Value, tok.Raw, tok.Idx0)
	p.next()
	return &ast.RegExpLiteral{
		Span:    ast.Span{Start: tok.Idx0, End: tok.Idx1},
		Raw:     tok.Literal(p.scanner),
		Pattern: tok.Value,
		Flags:   tok.Raw,
	}
}

// parseImportExpression parses import(source[, options]) and import.meta.
func (p *parser) parseImportExpression() ast.Expr {
	start := p.expect(token.Import)
	if p.currentKind() == token.Period {
		p.next()
		if !p.isContextual("meta") {
			p.errorUnexpectedToken()
		}
		if !p.module {
			p.errorAt(start, "Cannot use 'import.meta' outside a module")
		}
		property := &ast.Identifier{Span: ast.Span{Start: p.token.Idx0, End: p.token.Idx1}, Name: "meta"}
		p.next()
		return &ast.MetaProperty{
			Span:     p.span(start),
			Meta:     &ast.Identifier{Span: ast.Span{Start: start, End: start + 6}, Name: "import"},
			Property: property,
		}
	}

	p.expect(token.LeftParenthesis)
	defer p.setAllowIn(true)()
	node := &ast.ImportExpression{}
	node.Source = p.parseAssignmentExpression()
	if p.currentKind() == token.Comma {
		p.next()
		if p.currentKind() != token.RightParenthesis {
			node.Options = p.parseAssignmentExpression()
			if p.currentKind() == token.Comma {
				p.next()
			}
		}
	}
	p.expect(token.RightParenthesis)
	node.Span = p.span(start)
	return node
}
