// Package generator prints a syntax tree back to JavaScript source.
//
// The output is normalized: statement bodies of if and loop statements are
// always blocks, object literals and blocks are broken over lines with four
// space indentation, and parentheses are emitted where the tree holds a
// ParenthesizedExpression or where operator precedence requires them.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser"
	"github.com/t14raptor/go-neo/token"
)

func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:

	// Expressions.
	case *ast.Identifier:
		if n != nil {
			s.write(n.Name)
		}
	case *ast.PrivateName:
		s.write("#" + n.Name)
	case *ast.NullLiteral:
		s.write("null")
	case *ast.BooleanLiteral:
		s.write(strconv.FormatBool(n.Value))
	case *ast.NumberLiteral:
		if n.Raw != "" {
			s.write(n.Raw)
		} else {
			s.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.BigIntLiteral:
		if n.Raw != "" {
			s.write(n.Raw)
		} else {
			s.write(n.Value.String() + "n")
		}
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.write(n.Raw)
		} else {
			s.write(quote(n.Value))
		}
	case *ast.RegExpLiteral:
		if n.Raw != "" {
			s.write(n.Raw)
		} else {
			s.write("/" + n.Pattern + "/" + n.Flags)
		}
	case *ast.TemplateLiteral:
		s.write("`")
		for i, q := range n.Quasis {
			s.write(q.Raw)
			if i < len(n.Expressions) {
				s.write("${")
				s.expr(n.Expressions[i], parser.PrecedenceComma)
				s.write("}")
			}
		}
		s.write("`")
	case *ast.TaggedTemplate:
		s.expr(n.Tag, parser.PrecedenceCall)
		gen(s.wrap(n.Quasi))
	case *ast.ThisExpression:
		s.write("this")
	case *ast.SuperExpression:
		s.write("super")
	case *ast.ArrayLiteral:
		s.write("[")
		for i, el := range n.Elements {
			if el != nil {
				s.expr(el, parser.PrecedenceAssign)
			}
			if i < len(n.Elements)-1 || el == nil {
				s.write(", ")
			}
		}
		s.write("]")
	case *ast.ObjectLiteral:
		s.write("{")

		s.indent++
		for i, p := range n.Properties {
			s.lineAndPad()
			gen(s.wrap(p))
			if i < len(n.Properties)-1 {
				s.write(",")
			}
		}
		s.indent--

		if len(n.Properties) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.PropertyKeyed:
		fn, _ := n.Value.(*ast.FunctionLiteral)
		switch {
		case n.Kind == ast.PropertyGet || n.Kind == ast.PropertySet:
			s.write(n.Kind.String() + " ")
			genKey(s, n.Key, n.Computed)
			genMethodTail(s, fn)
		case n.Kind == ast.PropertyMethod && fn != nil:
			genMethodHead(s, fn)
			genKey(s, n.Key, n.Computed)
			genMethodTail(s, fn)
		default:
			genKey(s, n.Key, n.Computed)
			s.write(": ")
			s.expr(n.Value, parser.PrecedenceAssign)
		}
	case *ast.PropertyShort:
		gen(s.wrap(n.Name))
	case *ast.SpreadElement:
		s.write("...")
		s.expr(n.Argument, parser.PrecedenceAssign)
	case *ast.ParenthesizedExpression:
		s.write("(")
		s.expr(n.Expression, parser.PrecedenceComma)
		s.write(")")
	case *ast.CallExpression:
		s.expr(n.Callee, parser.PrecedenceCall)
		if n.Optional {
			s.write("?.")
		}
		genArguments(s, n.Arguments)
	case *ast.NewExpression:
		s.write("new ")
		s.expr(n.Callee, parser.PrecedenceMember)
		genArguments(s, n.Arguments)
	case *ast.MemberExpression:
		if num, ok := n.Object.(*ast.NumberLiteral); ok && !n.Computed && isInteger(num) {
			s.write("(")
			gen(s.wrap(num))
			s.write(")")
		} else {
			s.expr(n.Object, parser.PrecedenceCall)
		}
		switch {
		case n.Computed:
			if n.Optional {
				s.write("?.")
			}
			s.write("[")
			s.expr(n.Property, parser.PrecedenceComma)
			s.write("]")
		case n.Optional:
			s.write("?.")
			gen(s.wrap(n.Property))
		default:
			s.write(".")
			gen(s.wrap(n.Property))
		}
	case *ast.MetaProperty:
		gen(s.wrap(n.Meta))
		s.write(".")
		gen(s.wrap(n.Property))
	case *ast.ImportExpression:
		s.write("import(")
		s.expr(n.Source, parser.PrecedenceAssign)
		if n.Options != nil {
			s.write(", ")
			s.expr(n.Options, parser.PrecedenceAssign)
		}
		s.write(")")
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.write(op)
		if len(op) > 2 {
			s.write(" ")
		} else if inner, ok := n.Operand.(*ast.UnaryExpression); ok && signClash(n.Operator, inner.Operator) {
			s.write(" ")
		} else if inner, ok := n.Operand.(*ast.UpdateExpression); ok && inner.Prefix && signClash(n.Operator, inner.Operator) {
			s.write(" ")
		}
		s.expr(n.Operand, parser.PrecedencePrefix)
	case *ast.AwaitExpression:
		s.write("await ")
		s.expr(n.Argument, parser.PrecedencePrefix)
	case *ast.UpdateExpression:
		if n.Prefix {
			s.write(n.Operator.String())
			s.expr(n.Operand, parser.PrecedencePrefix)
		} else {
			s.expr(n.Operand, parser.PrecedenceCall)
			s.write(n.Operator.String())
		}
	case *ast.BinaryExpression:
		prec := parser.ExpressionPrecedence(n.Operator)
		left, right := prec, prec+1
		switch n.Operator {
		case token.Exponent:
			left, right = prec+1, prec
		case token.Comma:
			left, right = parser.PrecedenceAssign, parser.PrecedenceComma
		}
		genOperand(s, n, n.Left, left)
		if n.Operator == token.Comma {
			s.write(", ")
		} else {
			s.write(" " + n.Operator.String() + " ")
		}
		genOperand(s, n, n.Right, right)
	case *ast.ConditionalExpression:
		s.expr(n.Test, parser.PrecedenceLogicalOr)
		s.write(" ? ")
		s.expr(n.Consequent, parser.PrecedenceAssign)
		s.write(" : ")
		s.expr(n.Alternate, parser.PrecedenceAssign)
	case *ast.AssignExpression:
		gen(s.wrap(n.Left))
		s.write(" " + n.Operator.String() + " ")
		s.expr(n.Right, parser.PrecedenceAssign)
	case *ast.YieldExpression:
		s.write("yield")
		if n.Delegate {
			s.write("*")
		}
		if n.Argument != nil {
			s.write(" ")
			s.expr(n.Argument, parser.PrecedenceAssign)
		}
	case *ast.FunctionLiteral:
		if n.Async {
			s.write("async ")
		}
		s.write("function")
		if n.Generator {
			s.write("*")
		}
		if n.Name != nil {
			s.write(" ")
			gen(s.wrap(n.Name))
		}
		genMethodTail(s, n)
	case *ast.ArrowFunction:
		if n.Async {
			s.write("async ")
		}
		gen(s.wrap(n.Params))
		s.write(" => ")
		if n.Body != nil {
			gen(s.wrap(n.Body))
		} else if _, ok := n.Expression.(*ast.ObjectLiteral); ok {
			s.write("(")
			gen(s.wrap(n.Expression))
			s.write(")")
		} else {
			s.expr(n.Expression, parser.PrecedenceAssign)
		}
	case *ast.ClassLiteral:
		for _, d := range n.Decorators {
			gen(s.wrap(d))
			s.write(" ")
		}
		s.write("class")
		if n.Name != nil {
			s.write(" ")
			gen(s.wrap(n.Name))
		}
		if n.SuperClass != nil {
			s.write(" extends ")
			s.expr(n.SuperClass, parser.PrecedenceCall)
		}
		s.write(" {")
		s.indent++
		for _, el := range n.Body {
			s.lineAndPad()
			gen(s.wrap(el))
		}
		s.indent--
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.write("}")

	// Functions and patterns.
	case *ast.FunctionBody:
		s.write("{")
		s.indent++
		for _, d := range n.Directives {
			s.lineAndPad()
			gen(s.wrap(d))
		}
		for _, st := range n.Body {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
		if len(n.Directives)+len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.ParameterList:
		s.write("(")
		for i, p := range n.List {
			gen(s.wrap(p))
			if i < len(n.List)-1 || n.Rest != nil {
				s.write(", ")
			}
		}
		if n.Rest != nil {
			s.write("...")
			gen(s.wrap(n.Rest))
		}
		s.write(")")
	case *ast.BindingElement:
		if n == nil {
			return
		}
		gen(s.wrap(n.Target))
		if n.Default != nil {
			s.write(" = ")
			s.expr(n.Default, parser.PrecedenceAssign)
		}
	case *ast.ArrayPattern:
		s.write("[")
		for i, el := range n.Elements {
			if el != nil {
				gen(s.wrap(el))
			}
			if i < len(n.Elements)-1 || el == nil || n.Rest != nil {
				s.write(", ")
			}
		}
		if n.Rest != nil {
			s.write("...")
			gen(s.wrap(n.Rest))
		}
		s.write("]")
	case *ast.ObjectPattern:
		s.write("{")
		for i, p := range n.Properties {
			gen(s.wrap(p))
			if i < len(n.Properties)-1 || n.Rest != nil {
				s.write(", ")
			}
		}
		if n.Rest != nil {
			s.write("...")
			gen(s.wrap(n.Rest))
		}
		s.write("}")
	case *ast.PatternProperty:
		if !n.Shorthand {
			genKey(s, n.Key, n.Computed)
			s.write(": ")
		}
		gen(s.wrap(n.Value))
		if n.Default != nil {
			s.write(" = ")
			s.expr(n.Default, parser.PrecedenceAssign)
		}

	// Class members.
	case *ast.MethodDefinition:
		genDecorators(s, n.Decorators)
		if n.Static {
			s.write("static ")
		}
		switch n.Kind {
		case ast.PropertyGet, ast.PropertySet:
			s.write(n.Kind.String() + " ")
		default:
			genMethodHead(s, n.Function)
		}
		genKey(s, n.Key, n.Computed)
		genMethodTail(s, n.Function)
	case *ast.FieldDefinition:
		genDecorators(s, n.Decorators)
		if n.Static {
			s.write("static ")
		}
		if n.Accessor {
			s.write("accessor ")
		}
		genKey(s, n.Key, n.Computed)
		if n.Initializer != nil {
			s.write(" = ")
			s.expr(n.Initializer, parser.PrecedenceAssign)
		}
		s.write(";")
	case *ast.ClassStaticBlock:
		s.write("static ")
		genBlock(s, n.Body)
	case *ast.Decorator:
		s.write("@")
		s.expr(n.Expression, parser.PrecedenceCall)

	// Statements.
	case *ast.Program:
		if n != nil {
			if n.Interpreter != "" {
				s.write("#!" + n.Interpreter)
				s.line()
			}
			for _, d := range n.Directives {
				gen(s.wrap(d))
				s.line()
			}
			for _, b := range n.Body {
				gen(s.wrap(b))
				s.line()
			}
		}
	case *ast.Directive:
		s.write(`"` + n.Value + `";`)
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression) {
			s.write("(")
			s.expr(n.Expression, parser.PrecedenceComma)
			s.write(")")
		} else {
			s.expr(n.Expression, parser.PrecedenceComma)
		}
		s.write(";")
	case *ast.BlockStatement:
		genBlock(s, n.Body)
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.DebuggerStatement:
		s.write("debugger;")
	case *ast.ReturnStatement:
		if n != nil {
			s.write("return")
			if n.Argument != nil {
				s.write(" ")
				s.expr(n.Argument, parser.PrecedenceComma)
			}
			s.write(";")
		}
	case *ast.LabelledStatement:
		gen(s.wrap(n.Label))
		s.write(": ")
		gen(s.wrap(n.Body))
	case *ast.BreakStatement:
		s.write("break")
		if n.Label != nil {
			s.write(" ")
			gen(s.wrap(n.Label))
		}
		s.write(";")
	case *ast.ContinueStatement:
		s.write("continue")
		if n.Label != nil {
			s.write(" ")
			gen(s.wrap(n.Label))
		}
		s.write(";")
	case *ast.IfStatement:
		s.write("if (")
		s.expr(n.Test, parser.PrecedenceComma)
		s.write(") ")
		genBody(s, n.Consequent)

		if n.Alternate != nil {
			s.write(" else ")
			if _, ok := n.Alternate.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate))
			} else {
				genBody(s, n.Alternate)
			}
		}
	case *ast.SwitchStatement:
		s.write("switch (")
		s.expr(n.Discriminant, parser.PrecedenceComma)
		s.write(") {")

		s.indent++
		for _, c := range n.Cases {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--

		if len(n.Cases) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.CaseClause:
		if n.Test != nil {
			s.write("case ")
			s.expr(n.Test, parser.PrecedenceComma)
			s.write(":")
		} else {
			s.write("default:")
		}
		s.indent++
		for _, st := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
	case *ast.ThrowStatement:
		s.write("throw ")
		s.expr(n.Argument, parser.PrecedenceComma)
		s.write(";")
	case *ast.TryStatement:
		s.write("try ")
		gen(s.wrap(n.Block))

		if n.Handler != nil {
			s.write(" catch ")
			if n.Handler.Param != nil {
				s.write("(")
				gen(s.wrap(n.Handler.Param))
				s.write(") ")
			}
			genBlock(s, n.Handler.Body)
		}
		if n.Finalizer != nil {
			s.write(" finally ")
			gen(s.wrap(n.Finalizer))
		}
	case *ast.WhileStatement:
		s.write("while (")
		s.expr(n.Test, parser.PrecedenceComma)
		s.write(") ")
		genBody(s, n.Body)
	case *ast.DoWhileStatement:
		s.write("do ")
		genBody(s, n.Body)
		s.write(" while (")
		s.expr(n.Test, parser.PrecedenceComma)
		s.write(");")
	case *ast.ForStatement:
		s.write("for (")
		genForHead(s, n.Init)
		s.write(";")
		if n.Test != nil {
			s.write(" ")
			s.expr(n.Test, parser.PrecedenceComma)
		}
		s.write(";")
		if n.Update != nil {
			s.write(" ")
			s.expr(n.Update, parser.PrecedenceComma)
		}
		s.write(") ")
		genBody(s, n.Body)
	case *ast.ForInStatement:
		s.write("for (")
		genForHead(s, n.Left)
		s.write(" in ")
		s.expr(n.Right, parser.PrecedenceComma)
		s.write(") ")
		genBody(s, n.Body)
	case *ast.ForOfStatement:
		s.write("for ")
		if n.Await {
			s.write("await ")
		}
		s.write("(")
		genForHead(s, n.Left)
		s.write(" of ")
		s.expr(n.Right, parser.PrecedenceAssign)
		s.write(") ")
		genBody(s, n.Body)
	case *ast.VariableDeclaration:
		s.write(n.Kind.String())
		s.write(" ")
		for i, d := range n.List {
			gen(s.wrap(d))
			if i < len(n.List)-1 {
				s.write(", ")
			}
		}
		if !inForHead(s) {
			s.write(";")
		}
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.write(" = ")
			s.expr(n.Initializer, parser.PrecedenceAssign)
		}
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))

	// Modules.
	case *ast.ImportDeclaration:
		s.write("import ")
		if len(n.Specifiers) > 0 {
			braced := false
			for i, spec := range n.Specifiers {
				if i > 0 {
					s.write(", ")
				}
				if _, ok := spec.(*ast.ImportSpecifier); ok && !braced {
					s.write("{")
					braced = true
				}
				gen(s.wrap(spec))
			}
			if braced {
				s.write("}")
			}
			s.write(" from ")
		}
		gen(s.wrap(n.Source))
		genAttributes(s, n.Attributes)
		s.write(";")
	case *ast.ImportSpecifier:
		gen(s.wrap(n.Imported))
		if n.Local.Name != n.Imported.Name {
			s.write(" as ")
			gen(s.wrap(n.Local))
		}
	case *ast.ImportDefaultSpecifier:
		gen(s.wrap(n.Local))
	case *ast.ImportNamespaceSpecifier:
		s.write("* as ")
		gen(s.wrap(n.Local))
	case *ast.ExportNamedDeclaration:
		s.write("export ")
		if n.Declaration != nil {
			gen(s.wrap(n.Declaration))
			return
		}
		s.write("{")
		for i, spec := range n.Specifiers {
			gen(s.wrap(spec))
			if i < len(n.Specifiers)-1 {
				s.write(", ")
			}
		}
		s.write("}")
		if n.Source != nil {
			s.write(" from ")
			gen(s.wrap(n.Source))
			genAttributes(s, n.Attributes)
		}
		s.write(";")
	case *ast.ExportSpecifier:
		gen(s.wrap(n.Local))
		if n.Exported != n.Local && n.Exported.Name != n.Local.Name {
			s.write(" as ")
			gen(s.wrap(n.Exported))
		}
	case *ast.ExportDefaultDeclaration:
		s.write("export default ")
		switch d := n.Declaration.(type) {
		case *ast.FunctionDeclaration, *ast.ClassDeclaration:
			gen(s.wrap(d))
		case ast.Expr:
			if startsAmbiguously(d) {
				s.write("(")
				s.expr(d, parser.PrecedenceComma)
				s.write(")")
			} else {
				s.expr(d, parser.PrecedenceAssign)
			}
			s.write(";")
		}
	case *ast.ExportAllDeclaration:
		s.write("export *")
		if n.Exported != nil {
			s.write(" as ")
			gen(s.wrap(n.Exported))
		}
		s.write(" from ")
		gen(s.wrap(n.Source))
		genAttributes(s, n.Attributes)
		s.write(";")
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genArguments(s *state, args []ast.Expr) {
	s.write("(")
	for i, a := range args {
		s.expr(a, parser.PrecedenceAssign)
		if i < len(args)-1 {
			s.write(", ")
		}
	}
	s.write(")")
}

func genKey(s *state, key ast.Expr, computed bool) {
	if computed {
		s.write("[")
		s.expr(key, parser.PrecedenceAssign)
		s.write("]")
		return
	}
	gen(s.wrap(key))
}

func genMethodHead(s *state, fn *ast.FunctionLiteral) {
	if fn == nil {
		return
	}
	if fn.Async {
		s.write("async ")
	}
	if fn.Generator {
		s.write("*")
	}
}

func genMethodTail(s *state, fn *ast.FunctionLiteral) {
	if fn == nil {
		return
	}
	gen(s.wrap(fn.Params))
	s.write(" ")
	gen(s.wrap(fn.Body))
}

func genDecorators(s *state, list []*ast.Decorator) {
	for _, d := range list {
		gen(s.wrap(d))
		s.write(" ")
	}
}

func genBlock(s *state, body []ast.Stmt) {
	s.write("{")

	s.indent++
	for _, st := range body {
		s.lineAndPad()
		gen(s.wrap(st))
	}
	s.indent--

	if len(body) > 0 {
		s.lineAndPad()
	}
	s.write("}")
}

// genBody prints the body of an if or loop statement, always as a block.
func genBody(s *state, body ast.Stmt) {
	switch b := body.(type) {
	case *ast.BlockStatement:
		gen(s.wrap(b))
	case *ast.EmptyStatement:
		s.write("{}")
	default:
		genBlock(s, []ast.Stmt{body})
	}
}

func genForHead(s *state, head ast.Node) {
	if e, ok := head.(ast.Expr); ok {
		s.expr(e, parser.PrecedenceAssign)
		return
	}
	gen(s.wrap(head))
}

func genOperand(s *state, parent *ast.BinaryExpression, e ast.Expr, min parser.Precedence) {
	if child, ok := e.(*ast.BinaryExpression); ok && mixesCoalesce(parent.Operator, child.Operator) {
		s.write("(")
		gen(s.wrap(e))
		s.write(")")
		return
	}
	if parent.Operator == token.Exponent {
		switch e.(type) {
		case *ast.UnaryExpression, *ast.AwaitExpression:
			if e == parent.Left {
				s.write("(")
				gen(s.wrap(e))
				s.write(")")
				return
			}
		}
	}
	s.expr(e, min)
}

func genAttributes(s *state, list []*ast.ImportAttribute) {
	if len(list) == 0 {
		return
	}
	s.write(" with {")
	for i, a := range list {
		s.write(a.Key + ": ")
		gen(s.wrap(a.Value))
		if i < len(list)-1 {
			s.write(", ")
		}
	}
	s.write("}")
}

func inForHead(s *state) bool {
	switch s.parent.node.(type) {
	case *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement:
		return true
	}
	return false
}

func mixesCoalesce(a, b token.Token) bool {
	logical := func(t token.Token) bool { return t == token.LogicalAnd || t == token.LogicalOr }
	return a == token.Coalesce && logical(b) || logical(a) && b == token.Coalesce
}

// signClash reports whether printing outer directly before inner would
// fuse into a different token, as in "- -x" or "+ ++x".
func signClash(outer, inner token.Token) bool {
	plus := func(t token.Token) bool { return t == token.Plus || t == token.Increment }
	minus := func(t token.Token) bool { return t == token.Minus || t == token.Decrement }
	return plus(outer) && plus(inner) || minus(outer) && minus(inner)
}

func isInteger(n *ast.NumberLiteral) bool {
	raw := n.Raw
	if raw == "" {
		raw = strconv.FormatFloat(n.Value, 'g', -1, 64)
	}
	return !strings.ContainsAny(raw, ".eExXoObBn")
}

// startsAmbiguously reports whether e printed at the start of a statement
// would be read as a declaration or a block.
func startsAmbiguously(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.FunctionLiteral, *ast.ClassLiteral, *ast.ObjectLiteral:
			return true
		case *ast.MemberExpression:
			e = n.Object
		case *ast.CallExpression:
			e = n.Callee
		case *ast.TaggedTemplate:
			e = n.Tag
		case *ast.BinaryExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			e = n.Test
		case *ast.UpdateExpression:
			if n.Prefix {
				return false
			}
			e = n.Operand
		case *ast.AssignExpression:
			if _, ok := n.Left.(*ast.ObjectPattern); ok {
				return true
			}
			left, ok := n.Left.(ast.Expr)
			if !ok {
				return false
			}
			e = left
		default:
			return false
		}
	}
}

// precedence reports the tier e is printed at.
func precedence(e ast.Expr) parser.Precedence {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		return parser.ExpressionPrecedence(n.Operator)
	case *ast.AssignExpression, *ast.ConditionalExpression, *ast.ArrowFunction, *ast.YieldExpression:
		return parser.PrecedenceAssign
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return parser.PrecedencePrefix
	case *ast.UpdateExpression:
		if n.Prefix {
			return parser.PrecedencePrefix
		}
		return parser.PrecedencePostfix
	case *ast.CallExpression, *ast.TaggedTemplate:
		return parser.PrecedenceCall
	case *ast.NewExpression, *ast.MemberExpression, *ast.MetaProperty, *ast.ImportExpression:
		return parser.PrecedenceMember
	}
	return parser.PrecedencePrimary
}

func quote(str string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range str {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
