package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser"
	"github.com/t14raptor/go-neo/token"
)

func parseSource(src string, module bool) (*ast.Program, error) {
	return parser.ParseFile("test.js", src, parser.WithModule(module))
}

func generateASTNoIndent(program ast.Node) string {
	output := Generate(program)
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""))
}

func TestGen(t *testing.T) {
	p, err := parseSource(`0.0["toString"]()`, false)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := generateASTNoIndent(p), `0.0["toString"]();`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		module   bool
		expected string
	}{
		{
			name:     "parenthesized sequence as argument to new",
			input:    "new F6(((a = 1), 2));",
			expected: "new F6(((a = 1), 2));",
		},
		{
			name:     "sequence in throw statement",
			input:    "throw ((a = 1), 2);",
			expected: "throw ((a = 1), 2);",
		},
		{
			name:     "sequence in return statement",
			input:    "function g() { return (d = 4, 5); }",
			expected: "function g() {return (d = 4, 5);}",
		},
		{
			name:     "await operand",
			input:    "async function f() { await (b, 3); }",
			expected: "async function f() {await (b, 3);}",
		},
		{
			name:     "if bodies become blocks",
			input:    "if (a) b(); else c();",
			expected: "if (a) {b();} else {c();}",
		},
		{
			name:     "else if chain",
			input:    "if (a) {} else if (b) {} else {}",
			expected: "if (a) {} else if (b) {} else {}",
		},
		{
			name:     "for statement",
			input:    "for (let i = 0; i < n; i++) x += i;",
			expected: "for (let i = 0; i < n; i++) {x += i;}",
		},
		{
			name:     "empty for head",
			input:    "label: for (;;) { break label; }",
			expected: "label: for (;;) {break label;}",
		},
		{
			name:     "for of with pattern",
			input:    "for (const [k, v] of m) {}",
			expected: "for (const [k, v] of m) {}",
		},
		{
			name:     "for in with member target",
			input:    "for (a.b in c) continue;",
			expected: "for (a.b in c) {continue;}",
		},
		{
			name:     "do while",
			input:    "do x--; while (x)",
			expected: "do {x--;} while (x);",
		},
		{
			name:     "object pattern declaration",
			input:    "const {a, b: c = 1, ...r} = o;",
			expected: "const {a, b: c = 1, ...r} = o;",
		},
		{
			name:     "array holes",
			input:    "let [, x] = [1, , 2];",
			expected: "let [, x] = [1, , 2];",
		},
		{
			name:     "object literal members",
			input:    "x = {a, b: 1, [c]: 2, get d() { return 1; }, async *e() {}, ...f};",
			expected: "x = {a,b: 1,[c]: 2,get d() {return 1;},async *e() {},...f};",
		},
		{
			name:     "class members",
			input:    "class A extends B { static #x = 1; get y() { return 1; } constructor() { super(); } static { A.z = 2; } }",
			expected: "class A extends B {static #x = 1;get y() {return 1;}constructor() {super();}static {A.z = 2;}}",
		},
		{
			name:     "arrow with object body",
			input:    "x = async (a, ...b) => ({a});",
			expected: "x = async (a, ...b) => ({a});",
		},
		{
			name:     "optional chain",
			input:    "a?.b.c?.(d)?.[e];",
			expected: "a?.b.c?.(d)?.[e];",
		},
		{
			name:     "tagged template",
			input:    "tag`x${y}z`;",
			expected: "tag`x${y}z`;",
		},
		{
			name:     "immediately invoked function",
			input:    "(function () {})();",
			expected: "(function() {})();",
		},
		{
			name:     "unary operators",
			input:    "typeof void !x; delete a[b];",
			expected: "typeof void !x;delete a[b];",
		},
		{
			name:     "try without catch binding",
			input:    "try {} catch {} finally {}",
			expected: "try {} catch {} finally {}",
		},
		{
			name:     "switch",
			input:    "switch (x) { case 1: a(); break; default: }",
			expected: "switch (x) {case 1:a();break;default:}",
		},
		{
			name:     "directive prologue",
			input:    "'use strict'; a;",
			expected: "\"use strict\";a;",
		},
		{
			name:     "imports",
			input:    "import d, {a as b, c} from \"m\" with {type: \"json\"};",
			module:   true,
			expected: "import d, {a as b, c} from \"m\" with {type: \"json\"};",
		},
		{
			name:     "namespace import",
			input:    "import * as ns from \"m\";",
			module:   true,
			expected: "import * as ns from \"m\";",
		},
		{
			name:     "exports",
			input:    "export default class {} export {a as b}; export * as ns from \"m\"; export const c = 1;",
			module:   true,
			expected: "export default class {}export {a as b};export * as ns from \"m\";export const c = 1;",
		},
		{
			name:     "new target and import meta",
			input:    "function f() { return new.target; } import.meta.url;",
			module:   true,
			expected: "function f() {return new.target;}import.meta.url;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := parseSource(tt.input, tt.module)
			if err != nil {
				t.Fatalf("Failed to parse input: %v", err)
			}

			result := generateASTNoIndent(ctx)

			if result != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, result)
			}
		})
	}
}

func TestGenerateIsStable(t *testing.T) {
	inputs := []string{
		"a = b ? c : d ?? e;",
		"x = {a: [1, 2, {b}], c: () => {}};",
		"class C { #p; m() { return this.#p; } static async *g() { yield* h(); } }",
		"outer: while (true) { for (const k in o) { if (k) continue outer; } }",
		"var f = function* named(a = 1, {b} = {}, ...[c]) { yield a; };",
	}
	for _, src := range inputs {
		first, err := parseSource(src, false)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		once := Generate(first)
		second, err := parseSource(once, false)
		if err != nil {
			t.Fatalf("reparse %q: %v\n%s", src, err, once)
		}
		if twice := Generate(second); twice != once {
			t.Errorf("output of %q is not stable:\n%s\n---\n%s", src, once, twice)
		}
	}
}

func TestGeneratePrecedence(t *testing.T) {
	id := func(name string) *ast.Identifier { return &ast.Identifier{Name: name} }
	bin := func(op token.Token, l, r ast.Expr) *ast.BinaryExpression {
		return &ast.BinaryExpression{Operator: op, Left: l, Right: r}
	}

	tests := []struct {
		node ast.Node
		want string
	}{
		{bin(token.Multiply, bin(token.Plus, id("a"), id("b")), id("c")), "(a + b) * c"},
		{bin(token.Plus, id("a"), bin(token.Multiply, id("b"), id("c"))), "a + b * c"},
		{bin(token.Minus, id("a"), bin(token.Minus, id("b"), id("c"))), "a - (b - c)"},
		{bin(token.Exponent, bin(token.Exponent, id("a"), id("b")), id("c")), "(a ** b) ** c"},
		{bin(token.Exponent, &ast.UnaryExpression{Operator: token.Minus, Operand: id("a")}, id("b")), "(-a) ** b"},
		{bin(token.Coalesce, bin(token.LogicalOr, id("a"), id("b")), id("c")), "(a || b) ?? c"},
		{bin(token.Comma, bin(token.Comma, id("a"), id("b")), id("c")), "(a, b), c"},
		{&ast.UnaryExpression{Operator: token.Minus, Operand: &ast.UnaryExpression{Operator: token.Minus, Operand: id("x")}}, "- -x"},
		{&ast.MemberExpression{Object: &ast.NumberLiteral{Raw: "1"}, Property: id("toString")}, "(1).toString"},
		{&ast.CallExpression{Callee: &ast.ArrowFunction{Params: &ast.ParameterList{}, Expression: id("x")}}, "(() => x)()"},
		{&ast.NewExpression{Callee: &ast.CallExpression{Callee: id("f")}}, "new (f())()"},
		{&ast.ExpressionStatement{Expression: &ast.ObjectLiteral{}}, "({});"},
		{&ast.StringLiteral{Value: "a\"b\n"}, `"a\"b\n"`},
		{&ast.AssignExpression{Operator: token.Assign, Left: id("a"), Right: bin(token.Comma, id("b"), id("c"))}, "a = (b, c)"},
	}
	for _, tt := range tests {
		if got := Generate(tt.node); got != tt.want {
			t.Errorf("Generate(%T) = %s, want %s", tt.node, got, tt.want)
		}
	}
}
