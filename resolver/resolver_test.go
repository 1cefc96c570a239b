package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/parser"
	"github.com/t14raptor/go-neo/resolver"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseFile("test.js", src)
	require.NoError(t, err)
	return prog
}

// function finds the function-like node bound to name: a named function,
// a class, or a method key.
func function(t *testing.T, prog *ast.Program, name string) ast.FunctionLike {
	t.Helper()
	var found ast.FunctionLike
	ast.Inspect(prog, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		switch n := n.(type) {
		case *ast.FunctionLiteral:
			if n.Name != nil && n.Name.Name == name {
				found = n
			}
		case *ast.ClassLiteral:
			if n.Name != nil && n.Name.Name == name {
				found = n
			}
		case *ast.MethodDefinition:
			if key, _ := ast.KeyName(n.Key); key == name {
				found = n.Function
			}
		}
		return true
	})
	require.NotNil(t, found, "no function named %q", name)
	return found
}

func TestClosure(t *testing.T) {
	tests := []struct {
		name string
		src  string
		fn   string
		want []string
	}{
		{
			name: "captures parameter of outer function",
			src:  "function f(x) { return function g() { return x; }; }",
			fn:   "g",
			want: []string{"x"},
		},
		{
			name: "own declaration shadows outer",
			src:  "function f() { let x; function g() { let x; return x; } }",
			fn:   "g",
			want: []string{},
		},
		{
			name: "block scoped declaration inside function",
			src:  "function f() { if (a) { const y = 1; return y; } }",
			fn:   "f",
			want: []string{"a"},
		},
		{
			name: "var hoisted out of block",
			src:  "function f() { { var y = 1; } return y; }",
			fn:   "f",
			want: []string{},
		},
		{
			name: "arguments is never captured",
			src:  "function f() { return arguments.length; }",
			fn:   "f",
			want: []string{},
		},
		{
			name: "names are deduplicated",
			src:  "function f() { return y + y * y; }",
			fn:   "f",
			want: []string{"y"},
		},
		{
			name: "member names and keys are not references",
			src:  "function f() { return { k: o.p, [c]: 1 }; }",
			fn:   "f",
			want: []string{"o", "c"},
		},
		{
			name: "shorthand property is a reference",
			src:  "function f() { return { z }; }",
			fn:   "f",
			want: []string{"z"},
		},
		{
			name: "labels are not references",
			src:  "function f() { outer: for (;;) { break outer; } }",
			fn:   "f",
			want: []string{},
		},
		{
			name: "assignment target is a reference",
			src:  "function f() { [a, b.c] = d; }",
			fn:   "f",
			want: []string{"a", "b", "d"},
		},
		{
			name: "catch parameter is bound",
			src:  "function f() { try {} catch (e) { return e; } }",
			fn:   "f",
			want: []string{},
		},
		{
			name: "named function expression captures itself",
			src:  "let h = function self() { return self; };",
			fn:   "self",
			want: []string{"self"},
		},
		{
			name: "parameter defaults see parameters",
			src:  "function f(a, b = a + c) {}",
			fn:   "f",
			want: []string{"c"},
		},
		{
			name: "arrow in block sees block bindings",
			src:  "function f() { { let q; return () => q + r; } }",
			fn:   "f",
			want: []string{"r"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.src)
			got := ast.ClosureNames(function(t, prog, tt.fn))
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestClosureChainsThroughNesting(t *testing.T) {
	prog := mustParse(t, `
function a() {
	let v;
	return function b() {
		return function c() { return v + w; };
	};
}`)
	assert.Equal(t, []string{"v", "w"}, ast.ClosureNames(function(t, prog, "c")))
	assert.Equal(t, []string{"v", "w"}, ast.ClosureNames(function(t, prog, "b")))
	assert.Equal(t, []string{"w"}, ast.ClosureNames(function(t, prog, "a")))
}

func TestClassClosure(t *testing.T) {
	prog := mustParse(t, `
function f() {
	let base, b;
	class C extends base {
		[k] = 1;
		m() { return b + C; }
		static { s; }
	}
}`)
	assert.ElementsMatch(t, []string{"b", "C"}, ast.ClosureNames(function(t, prog, "m")))
	assert.ElementsMatch(t, []string{"k", "b", "C", "s"}, ast.ClosureNames(function(t, prog, "C")))
	assert.ElementsMatch(t, []string{"k", "s"}, ast.ClosureNames(function(t, prog, "f")))
}

func TestResolveProgramRecomputes(t *testing.T) {
	prog := mustParse(t, "function f(x) { return () => x + y; }")
	fn := function(t, prog, "f")
	want := ast.ClosureNames(fn)

	ast.Inspect(prog, func(n ast.Node) bool {
		if fl, ok := n.(ast.FunctionLike); ok {
			fl.Environment().Closure = nil
		}
		return true
	})
	resolver.ResolveProgram(prog)
	assert.Equal(t, want, ast.ClosureNames(fn))
	assert.Equal(t, []string{"y"}, want)
}
