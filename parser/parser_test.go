package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/generator"
	"github.com/t14raptor/go-neo/parser"
)

func TestIssue26(t *testing.T) {
	code := `const a = {}
const c = { a: 1 }
for (a.b in c) {
  console.log(a.b)
}`
	_, err := parser.ParseFile("issue26.js", code)
	if err != nil {
		t.Fatalf("Failed to parse code: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string, opts ...parser.Option) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile("test.js", code, opts...)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and returns the parse error, failing the test if
// the parse succeeds.
func mustFail(t *testing.T, code string, opts ...parser.Option) *parser.Error {
	t.Helper()
	_, err := parser.ParseFile("test.js", code, opts...)
	if err == nil {
		t.Fatalf("expected an error parsing:\n%s", code)
	}
	perr, ok := err.(*parser.Error)
	if !ok {
		t.Fatalf("error is %T, want *parser.Error", err)
	}
	return perr
}

// roundTrip parses code, regenerates it, and returns the output with the
// layout whitespace removed.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	out := generator.Generate(p)
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(out, "\n", ""), "    ", ""))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// exprOf extracts the expression of the i-th top-level statement.
func exprOf(t *testing.T, p *ast.Program, i int) ast.Expr {
	t.Helper()
	st, ok := p.Body[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d is %T, want *ast.ExpressionStatement", i, p.Body[i])
	}
	return st.Expression
}

// shape renders the operator structure of an expression as an
// s-expression, so tests can compare how operands were grouped.
func shape(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return "nil"
	case *ast.Identifier:
		return n.Name
	case *ast.NumberLiteral:
		return n.Raw
	case *ast.StringLiteral:
		return n.Raw
	case *ast.ParenthesizedExpression:
		return "(paren " + shape(n.Expression) + ")"
	case *ast.BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", n.Operator, shape(n.Left), shape(n.Right))
	case *ast.AssignExpression:
		return fmt.Sprintf("(%s %s %s)", n.Operator, shape(n.Left), shape(n.Right))
	case *ast.ConditionalExpression:
		return fmt.Sprintf("(? %s %s %s)", shape(n.Test), shape(n.Consequent), shape(n.Alternate))
	case *ast.UnaryExpression:
		return fmt.Sprintf("(%s %s)", n.Operator, shape(n.Operand))
	case *ast.UpdateExpression:
		if n.Prefix {
			return fmt.Sprintf("(%s%s)", n.Operator, shape(n.Operand))
		}
		return fmt.Sprintf("(%s%s)", shape(n.Operand), n.Operator)
	case *ast.AwaitExpression:
		return "(await " + shape(n.Argument) + ")"
	case *ast.MemberExpression:
		op := "."
		if n.Computed {
			op = "[]"
		}
		if n.Optional {
			op = "?." + strings.TrimPrefix(op, ".")
		}
		return fmt.Sprintf("(%s %s %s)", op, shape(n.Object), shape(n.Property))
	case *ast.CallExpression:
		op := "call"
		if n.Optional {
			op = "?.call"
		}
		return "(" + op + " " + shape(n.Callee) + args(n.Arguments) + ")"
	case *ast.NewExpression:
		return "(new " + shape(n.Callee) + args(n.Arguments) + ")"
	case *ast.ArrowFunction:
		return "arrow"
	}
	return fmt.Sprintf("%T", n)
}

func args(list []ast.Expr) string {
	var b strings.Builder
	for _, a := range list {
		b.WriteString(" " + shape(a))
	}
	return b.String()
}

// variables lists the names declared directly in s.
func variables(s *ast.Scope) []string {
	names := make([]string, 0, len(s.Variables))
	for _, v := range s.Variables {
		names = append(names, v.Name)
	}
	return names
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a ** b ** c", "(** a (** b c))"},
		{"(-a) ** 2", "(** (paren (- a)) 2)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a ?? b ?? c", "(?? (?? a b) c)"},
		{"a | b ^ c & d", "(| a (^ b (& c d)))"},
		{"a == b < c << d", "(== a (< b (<< c d)))"},
		{"x in y", "(in x y)"},
		{"a, b, c", "(, a (, b c))"},
		{"a = b += c", "(= a (+= b c))"},
		{"a ? b : c ? d : e", "(? a b (? c d e))"},
		{"!a.b", "(! (. a b))"},
		{"typeof a + b", "(+ (typeof a) b)"},
		{"a++ + ++b", "(+ (a++) (++b))"},
		{"new a.b(c)", "(new (. a b) c)"},
		{"new a().b", "(. (new a) b)"},
		{"a?.b.c", "(. (?. a b) c)"},
		{"a?.[0]?.(1)", "(?.call (?.[] a 0) 1)"},
		{"a.b(c)[d]", "([] (call (. a b) c) d)"},
		{"(a, b)", "(paren (, a b))"},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if got := shape(exprOf(t, p, 0)); got != tt.want {
			t.Errorf("%s\n  got:  %s\n  want: %s", tt.code, got, tt.want)
		}
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	p := mustParse(t, "a\n++b\nc\n(d)")
	want := []string{"a", "(++b)", "(call c d)"}
	if len(p.Body) != len(want) {
		t.Fatalf("got %d statements, want %d", len(p.Body), len(want))
	}
	for i, w := range want {
		if got := shape(exprOf(t, p, i)); got != w {
			t.Errorf("statement %d = %s, want %s", i, got, w)
		}
	}

	p = mustParse(t, "function f() { return\nx }")
	body := p.Body[0].(*ast.FunctionDeclaration).Function.Body.Body
	if ret := body[0].(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return followed by a newline took an argument: %s", shape(ret.Argument))
	}
}

func TestDirectives(t *testing.T) {
	p := mustParse(t, "#!/usr/bin/env node\n'use strict'; \"x\"\na;")
	if p.Interpreter != "/usr/bin/env node" {
		t.Errorf("Interpreter = %q", p.Interpreter)
	}
	var got []string
	for _, d := range p.Directives {
		got = append(got, d.Value)
	}
	if strings.Join(got, ",") != "use strict,x" {
		t.Errorf("directives = %v", got)
	}
	if len(p.Body) != 1 {
		t.Errorf("got %d statements, want 1", len(p.Body))
	}
}

func TestLiterals(t *testing.T) {
	p := mustParse(t, "0x10; 1_000; 10n; NaN; 'a\\u0062'; `x${1}y`; /a+/gi;")
	num := exprOf(t, p, 0).(*ast.NumberLiteral)
	if num.Value != 16 {
		t.Errorf("0x10 = %v", num.Value)
	}
	if v := exprOf(t, p, 1).(*ast.NumberLiteral).Value; v != 1000 {
		t.Errorf("1_000 = %v", v)
	}
	if v := exprOf(t, p, 2).(*ast.BigIntLiteral).Value.Int64(); v != 10 {
		t.Errorf("10n = %v", v)
	}
	if _, ok := exprOf(t, p, 3).(*ast.NumberLiteral); !ok {
		t.Errorf("NaN is %T, want *ast.NumberLiteral", exprOf(t, p, 3))
	}
	if v := exprOf(t, p, 4).(*ast.StringLiteral).Value; v != "ab" {
		t.Errorf("string value = %q", v)
	}
	tpl := exprOf(t, p, 5).(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Errorf("template has %d quasis and %d expressions", len(tpl.Quasis), len(tpl.Expressions))
	}
	re := exprOf(t, p, 6).(*ast.RegExpLiteral)
	if re.Pattern != "a+" || re.Flags != "gi" {
		t.Errorf("regexp = /%s/%s", re.Pattern, re.Flags)
	}
}

func TestRegExpOrDivision(t *testing.T) {
	p := mustParse(t, "a / b / c; x = /b/;")
	if got, want := shape(exprOf(t, p, 0)), "(/ (/ a b) c)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	assign := exprOf(t, p, 1).(*ast.AssignExpression)
	if _, ok := assign.Right.(*ast.RegExpLiteral); !ok {
		t.Errorf("right side is %T, want *ast.RegExpLiteral", assign.Right)
	}
}

// ---------------------------------------------------------------------------
// Speculation
// ---------------------------------------------------------------------------

func TestSpeculationLeavesNoDeclarations(t *testing.T) {
	tests := []struct {
		code string
		want []string
	}{
		{"(a, b);", []string{}},
		{"(a, b = 1);", []string{}},
		{"[a, b];", []string{}},
		{"[a, b] = c;", []string{}},
		{"({a, b} = c);", []string{}},
		{"let f = (x, y = 1) => x;", []string{"f"}},
		{"async(a);", []string{}},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if got := variables(p.Scope); strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("%s: program declares %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestArrowOrParenthesized(t *testing.T) {
	p := mustParse(t, "(a, b); (a, b) => a; async (x) => x; async(x);")
	if _, ok := exprOf(t, p, 0).(*ast.ParenthesizedExpression); !ok {
		t.Errorf("statement 0 is %T", exprOf(t, p, 0))
	}
	arrow, ok := exprOf(t, p, 1).(*ast.ArrowFunction)
	if !ok {
		t.Fatalf("statement 1 is %T", exprOf(t, p, 1))
	}
	if got := variables(arrow.Scope); strings.Join(got, ",") != "a,b" {
		t.Errorf("arrow scope declares %v", got)
	}
	if a, ok := exprOf(t, p, 2).(*ast.ArrowFunction); !ok || !a.Async {
		t.Errorf("statement 2 is not an async arrow")
	}
	if _, ok := exprOf(t, p, 3).(*ast.CallExpression); !ok {
		t.Errorf("statement 3 is %T, want a call of async", exprOf(t, p, 3))
	}
}

func TestDestructuringAssignmentTargets(t *testing.T) {
	p := mustParse(t, "[a.b, c[0], ...d] = e; ({x: f.g = 1} = h);")
	assign := exprOf(t, p, 0).(*ast.AssignExpression)
	pat, ok := assign.Left.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("left side is %T", assign.Left)
	}
	if len(pat.Elements) != 2 || pat.Rest == nil {
		t.Errorf("pattern has %d elements, rest %v", len(pat.Elements), pat.Rest)
	}
	if _, ok := pat.Elements[0].Target.(*ast.MemberExpression); !ok {
		t.Errorf("first target is %T", pat.Elements[0].Target)
	}
}

// ---------------------------------------------------------------------------
// Statements and scopes
// ---------------------------------------------------------------------------

func TestDeclarationScopes(t *testing.T) {
	p := mustParse(t, "function f(a) { var b; { let c; var d; } } let x = 1; { const x = 2; }")
	if got := variables(p.Scope); strings.Join(got, ",") != "f,x" {
		t.Errorf("program declares %v", got)
	}
	fn := p.Body[0].(*ast.FunctionDeclaration).Function
	if got := variables(fn.Scope); strings.Join(got, ",") != "a,b,d" {
		t.Errorf("f declares %v", got)
	}
	block := fn.Body.Body[1].(*ast.BlockStatement)
	if got := variables(block.Scope); strings.Join(got, ",") != "c" {
		t.Errorf("block declares %v", got)
	}
	if block.Scope.Parent != fn.Scope {
		t.Errorf("block scope parent is not the function scope")
	}
	if fn.Scope.Parent != p.Scope {
		t.Errorf("function scope parent is not the program scope")
	}
}

func TestDeclarationKinds(t *testing.T) {
	p := mustParse(t, "var a; let b; const c = 1; function d() {} class E {} using f = g();")
	want := map[string]ast.DeclKind{
		"a": ast.DeclVar,
		"b": ast.DeclLet,
		"c": ast.DeclConst,
		"d": ast.DeclFunction,
		"E": ast.DeclClass,
		"f": ast.DeclUsing,
	}
	for name, kind := range want {
		v := p.Scope.Lookup(name)
		if v == nil {
			t.Errorf("%s is not declared", name)
			continue
		}
		if v.Kind != kind {
			t.Errorf("%s declared as %v, want %v", name, v.Kind, kind)
		}
	}
}

func TestRepeatedVarAndFunctionMerge(t *testing.T) {
	p := mustParse(t, "var a; var a; function f() {} function f() {}")
	if got := variables(p.Scope); strings.Join(got, ",") != "a,f" {
		t.Errorf("program declares %v", got)
	}
}

func TestNamedFunctionExpressionScope(t *testing.T) {
	p := mustParse(t, "let g = function f() {};")
	decl := p.Body[0].(*ast.VariableDeclaration)
	fn := decl.List[0].Initializer.(*ast.FunctionLiteral)
	if fn.NameScope == nil {
		t.Fatal("named function expression has no name scope")
	}
	if v := fn.NameScope.Lookup("f"); v == nil || v.Kind != ast.DeclConst {
		t.Errorf("name scope does not bind f as const")
	}
	if p.Scope.Lookup("f") != nil {
		t.Errorf("function expression name leaked into the program scope")
	}
	if fn.Scope.Parent != fn.NameScope {
		t.Errorf("function scope is not nested in the name scope")
	}
}

func TestCatchAndForScopes(t *testing.T) {
	p := mustParse(t, "try {} catch ({message}) { let x; } for (let i = 0;;) {}")
	try := p.Body[0].(*ast.TryStatement)
	if got := variables(try.Handler.Scope); strings.Join(got, ",") != "message,x" {
		t.Errorf("catch scope declares %v", got)
	}
	loop := p.Body[1].(*ast.ForStatement)
	if got := variables(loop.Scope); strings.Join(got, ",") != "i" {
		t.Errorf("for head scope declares %v", got)
	}
}

func TestModuleDeclarations(t *testing.T) {
	p := mustParse(t, `import a, {b as c} from "m"; import * as ns from "n"; export const d = 1; export default function () {}`,
		parser.WithModule(true))
	if got := variables(p.Scope); strings.Join(got, ",") != "a,c,ns,d" {
		t.Errorf("module declares %v", got)
	}
	if !p.Module {
		t.Errorf("program not marked as module")
	}
	if v := p.Scope.Lookup("c"); v.Kind != ast.DeclImport {
		t.Errorf("c declared as %v", v.Kind)
	}
}

func TestTopLevelAwait(t *testing.T) {
	p := mustParse(t, "await x;", parser.WithModule(true))
	if _, ok := exprOf(t, p, 0).(*ast.AwaitExpression); !ok {
		t.Errorf("module top level await is %T", exprOf(t, p, 0))
	}
	p = mustParse(t, "await(x);")
	if _, ok := exprOf(t, p, 0).(*ast.CallExpression); !ok {
		t.Errorf("script await is %T, want a call", exprOf(t, p, 0))
	}
}

func TestClassMembers(t *testing.T) {
	p := mustParse(t, `@dec class A extends B {
	@log static #count = 0;
	accessor name;
	constructor() { super(); }
	get size() { return 1; }
	set size(v) {}
	static async *gen() {}
	static { A.ready = true; }
}`)
	class := p.Body[0].(*ast.ClassDeclaration).Class
	if len(class.Decorators) != 1 || class.SuperClass == nil {
		t.Errorf("decorators %d, superclass %v", len(class.Decorators), class.SuperClass)
	}
	if len(class.Body) != 7 {
		t.Fatalf("got %d class elements, want 7", len(class.Body))
	}
	field := class.Body[0].(*ast.FieldDefinition)
	if !field.Static || len(field.Decorators) != 1 {
		t.Errorf("first field static=%v decorators=%d", field.Static, len(field.Decorators))
	}
	if _, ok := field.Key.(*ast.PrivateName); !ok {
		t.Errorf("first field key is %T", field.Key)
	}
	if !class.Body[1].(*ast.FieldDefinition).Accessor {
		t.Errorf("accessor field not marked")
	}
	if class.Constructor() == nil {
		t.Errorf("constructor not found")
	}
	gen := class.Body[5].(*ast.MethodDefinition)
	if !gen.Static || !gen.Function.Async || !gen.Function.Generator {
		t.Errorf("gen: static=%v async=%v generator=%v", gen.Static, gen.Function.Async, gen.Function.Generator)
	}
	if _, ok := class.Body[6].(*ast.ClassStaticBlock); !ok {
		t.Errorf("last element is %T", class.Body[6])
	}
}

func TestObjectPatternDeclaration(t *testing.T) {
	p := mustParse(t, "const {a, b: c = 5} = obj;")
	decl := p.Body[0].(*ast.VariableDeclaration)
	if decl.Kind != ast.DeclConst || len(decl.List) != 1 {
		t.Fatalf("kind %s, %d declarators", decl.Kind, len(decl.List))
	}
	pattern, ok := decl.List[0].Target.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("target is %T, want *ast.ObjectPattern", decl.List[0].Target)
	}
	if len(pattern.Properties) != 2 || pattern.Rest != nil {
		t.Fatalf("got %d properties, rest %v", len(pattern.Properties), pattern.Rest)
	}

	a := pattern.Properties[0]
	if !a.Shorthand || a.Default != nil {
		t.Errorf("a: shorthand=%v default=%v", a.Shorthand, a.Default)
	}
	if id, ok := a.Value.(*ast.Identifier); !ok || id.Name != "a" {
		t.Errorf("a: value is %#v", a.Value)
	}

	b := pattern.Properties[1]
	if b.Shorthand || b.Computed {
		t.Errorf("b: shorthand=%v computed=%v", b.Shorthand, b.Computed)
	}
	if key, ok := b.Key.(*ast.Identifier); !ok || key.Name != "b" {
		t.Errorf("b: key is %#v", b.Key)
	}
	if id, ok := b.Value.(*ast.Identifier); !ok || id.Name != "c" {
		t.Errorf("b: value is %#v", b.Value)
	}
	if n, ok := b.Default.(*ast.NumberLiteral); !ok || n.Value != 5 {
		t.Errorf("b: default is %#v", b.Default)
	}

	var names []string
	for _, v := range p.Scope.Variables {
		names = append(names, v.Name+":"+v.Kind.String())
	}
	if got, want := strings.Join(names, ","), "a:const,c:const"; got != want {
		t.Errorf("bindings %s, want %s", got, want)
	}
}

func TestAsyncGeneratorDeclaration(t *testing.T) {
	p := mustParse(t, "async function* f(){ yield 1; }")
	fn := p.Body[0].(*ast.FunctionDeclaration).Function
	if !fn.Async || !fn.Generator {
		t.Fatalf("async=%v generator=%v", fn.Async, fn.Generator)
	}
	if fn.Body == nil || len(fn.Body.Body) != 1 {
		t.Fatalf("body is %#v", fn.Body)
	}
	stmt, ok := fn.Body.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("body statement is %T", fn.Body.Body[0])
	}
	y, ok := stmt.Expression.(*ast.YieldExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.YieldExpression", stmt.Expression)
	}
	if y.Delegate {
		t.Errorf("yield marked as delegate")
	}
	if n, ok := y.Argument.(*ast.NumberLiteral); !ok || n.Value != 1 {
		t.Errorf("yield argument is %#v", y.Argument)
	}
	if !fn.Scope.Async || !fn.Scope.Generator {
		t.Errorf("scope async=%v generator=%v", fn.Scope.Async, fn.Scope.Generator)
	}
}

func TestWithFile(t *testing.T) {
	src := "let a = 1;\nlet b = 2;"
	f := file.NewFile("shared.js", src)
	p := mustParse(t, src, parser.WithFile(f))
	if p.File != f {
		t.Fatalf("program file was not the one passed in")
	}
	decl := p.Body[1]
	if got, want := p.File.Position(int(decl.Idx0())).String(), "shared.js:2:1"; got != want {
		t.Errorf("position %s, want %s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	assertRoundTrip(t, "for (const x of xs) f(x);", "for (const x of xs) {f(x);}")
	assertRoundTrip(t, "a\n++b", "a;++b;")
	assertRoundTrip(t, "x = a ? (b, c) : d", "x = a ? (b, c) : d;")
	assertRoundTrip(t, "async function f() { for await (const x of y) {} }", "async function f() {for await (const x of y) {}}")
	assertRoundTrip(t, "let {a: [b = 1] = []} = c", "let {a: [b = 1] = []} = c;")
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		code   string
		module bool
		want   string
	}{
		{code: "5++", want: "Invalid left-hand side expression in postfix operation"},
		{code: "++5", want: "Invalid left-hand side expression in prefix operation"},
		{code: "a ?? b || c", want: "Cannot mix ?? with && or || without parentheses"},
		{code: "a || b ?? c", want: "Cannot mix ?? with && or || without parentheses"},
		{code: "let x; let x;", want: "Identifier 'x' has already been declared"},
		{code: "var x; let x;", want: "Identifier 'x' has already been declared"},
		{code: "let x; { var x; }", want: "Identifier 'x' has already been declared"},
		{code: "(a, b) => { let a; }", want: "Identifier 'a' has already been declared"},
		{code: "1 = 2", want: "Invalid left-hand side in assignment"},
		{code: "a + b = c", want: "Invalid left-hand side in assignment"},
		{code: "function f(...a, b) {}", want: "Rest parameter must be last formal parameter"},
		{code: "({ get a(x) {} })", want: "Getter must not have any formal parameters."},
		{code: "({ set a() {} })", want: "Setter must have exactly one formal parameter."},
		{code: "try {}", want: "Missing catch or finally after try"},
		{code: "return 1", want: "Illegal return statement"},
		{code: "break;", want: "Illegal break statement"},
		{code: "while (1) { break foo; }", want: "Undefined label 'foo'"},
		{code: "label: label: x;", want: "Label 'label' has already been declared"},
		{code: "const a;", want: "Missing initializer in const declaration"},
		{code: "let [a];", want: "Missing initializer in destructuring declaration"},
		{code: "for (let a, b of c) {}", want: "Invalid left-hand side in for-of loop: Must have a single binding."},
		{code: "for (var a = 1 of b) {}", want: "for-of loop variable declaration may not have an initializer."},
		{code: "with (a) {}", want: "Strict mode code may not include a with statement"},
		{code: "x = /(/;", want: "Invalid regular expression: /(/: "},
		{code: "x = /(/im;", want: "Invalid regular expression: /(/im: "},
		{code: "class A { constructor() {} constructor() {} }", want: "A class may only have one constructor"},
		{code: "class A { constructor = 1 }", want: "Classes may not have a field named 'constructor'"},
		{code: "a?.b`c`", want: "Invalid tagged template on optional chain"},
		{code: "super.x", want: "'super' keyword unexpected here"},
		{code: "new.target", want: "new.target expression is not allowed here"},
		{code: "import.meta", want: "Cannot use 'import.meta' outside a module"},
		{code: "x = {a = 1}", want: "Invalid shorthand property initializer"},
		{code: "this.#x", want: "Private field '#x' must be declared in an enclosing class"},
		{code: "a +", want: "Unexpected end of input"},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.WithModule(tt.module))
		if err.Kind != parser.SyntaxError {
			t.Errorf("%s: kind %s", tt.code, err.Kind)
		}
		if !strings.HasPrefix(err.Message, tt.want) {
			t.Errorf("%s\n  got:  %s\n  want: %s", tt.code, err.Message, tt.want)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	err := mustFail(t, "let a = 1;\nlet b = 5++;")
	if err.Position.Line != 2 || err.Position.Column != 9 {
		t.Errorf("position = %d:%d, want 2:9", err.Position.Line, err.Position.Column)
	}
	if got, want := err.Error(), "test.js:2:9: SyntaxError: Invalid left-hand side expression in postfix operation"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if got, want := err.Snippet("let a = 1;\nlet b = 5++;"), "let b = 5++;\n        ^"; got != want {
		t.Errorf("Snippet =\n%s\nwant\n%s", got, want)
	}
}

// ---------------------------------------------------------------------------
// Spans
// ---------------------------------------------------------------------------

func TestSpanText(t *testing.T) {
	src := "let x = a + b * c;"
	p := mustParse(t, src)
	init := p.Body[0].(*ast.VariableDeclaration).List[0].Initializer.(*ast.BinaryExpression)
	if got := src[init.Idx0():init.Idx1()]; got != "a + b * c" {
		t.Errorf("initializer span = %q", got)
	}
	if got := src[init.Right.Idx0():init.Right.Idx1()]; got != "b * c" {
		t.Errorf("right operand span = %q", got)
	}
	if got := src[p.Body[0].Idx0():p.Body[0].Idx1()]; got != src {
		t.Errorf("statement span = %q", got)
	}
}

// TestSpansNest checks that every node lies within the source and within
// its parent.
func TestSpansNest(t *testing.T) {
	sources := []string{
		"function f(a, {b = 1}, ...c) { return a?.[b](...c); }",
		"class A extends B { static #x = 1; m() { return this.#x; } }",
		"for (const [k, v] of Object.entries(o)) { if (k) continue; else break; }",
		"label: while (x) { try { throw new Error(`a${b}c`); } catch (e) {} finally {} }",
		"let g = async (p) => { await p; }, h = { k: 1, [m]: 2, get n() { return 3; } };",
		"switch (v) { case 1: x++; default: --y; }",
	}
	for _, src := range sources {
		p := mustParse(t, src)
		var check func(parent ast.Node) ast.Visitor
		check = func(parent ast.Node) ast.Visitor {
			return ast.VisitorFunc(func(n ast.Node) {
				if n.Idx0() < 0 || n.Idx1() > ast.Idx(len(src)) || n.Idx0() > n.Idx1() {
					t.Errorf("%s: %T has span [%d, %d)", src, n, n.Idx0(), n.Idx1())
				}
				if n.Idx0() < parent.Idx0() || n.Idx1() > parent.Idx1() {
					t.Errorf("%s: %T [%d, %d) escapes its parent %T [%d, %d)",
						src, n, n.Idx0(), n.Idx1(), parent, parent.Idx0(), parent.Idx1())
				}
				n.VisitChildrenWith(check(n))
			})
		}
		p.VisitChildrenWith(check(p))
	}
}
