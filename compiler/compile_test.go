package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/parser"
	"github.com/t14raptor/go-neo/token"
)

func mustCompile(t *testing.T, src string, opts Options) []Instruction {
	t.Helper()
	prog, err := Compile("test.js", src, opts)
	require.NoError(t, err, src)
	code, err := prog.Bytes()
	require.NoError(t, err, src)
	list, err := Decode(code)
	require.NoError(t, err, src)
	return list
}

func opcodes(list []Instruction) []Opcode {
	ops := make([]Opcode, len(list))
	for i, in := range list {
		ops[i] = in.Op
	}
	return ops
}

func count(list []Instruction, op Opcode) int {
	n := 0
	for _, in := range list {
		if in.Op == op {
			n++
		}
	}
	return n
}

var scripts = []string{
	"1 + 2 * 3",
	"x = a ? (b, c) : d",
	"a && b || c; a ?? b;",
	"x += 1; x ||= 2; o.p ??= 3; o[k] **= 2; o.c++; --o[k]; i--;",
	"if (a) b(); else if (c) d(); else e();",
	"while (i < 10) { if (i == 5) break; i++; continue; }",
	"do x--; while (x)",
	"for (let i = 0; i < n; i++) x += i;",
	"label: for (;;) { break label; }",
	"outer: while (true) { for (const k in o) { if (k) continue outer; } }",
	"for (const [k, v] of m) {}",
	"for (a.b in c) continue;",
	"async function f() { for await (const x of y) {} }",
	"switch (x) { case 1: a(); break; default: }",
	"switch (x) { case 1: a(); case 2: { let y = 1; b(y); } default: c(); case 3: d(); }",
	"try {} catch {} finally {}",
	"try { a(); } catch ({message}) { log(message); }",
	"try { a(); } finally { b(); }",
	"const {a, b: c = 1, ...r} = o;",
	"let [, x] = [1, , 2];",
	"let {a: [b = 1] = []} = c",
	"[a, b] = [b, a]; ({a, b: o.c} = d);",
	"function f(a, b = 1, {c} = {}, ...d) { return a + b + c + d.length; }",
	"x = async (a, ...b) => ({a});",
	"x = {a, b: 1, [c]: 2, get d() { return 1; }, async *e() {}, ...f};",
	"function* g() { yield 1; yield* h(); } async function* ag() { yield* h(); }",
	"class A extends B { static #x = 1; get y() { return 1; } constructor() { super(); } static { A.z = 2; } }",
	"class C { #p; m() { return this.#p; } static async *g() { yield* h(); } }",
	"class D extends C { x = 1; #y() { return super.m(); } z() { return this.#y(); } }",
	"@dec class E { @field accessor x = 1; @method m() {} }",
	"a?.b.c?.(d)?.[e];",
	"a.b?.(); super_ = (a?.b).c; delete a?.b; delete o[k];",
	"tag`x${y}z`; o.tag`a`; new F6(((a = 1), 2)); new G(...args);",
	"`a${b}c${d}e`; /re/g; 10n; NaN; Infinity; null; true; this; typeof x; void 0; ~a; -a; +a; !a;",
	"(function () {})(); (function named() { return named; })();",
	"function f() { return new.target; }",
	"'use strict'; a;",
	"label: { break label; }",
	"l1: while (x) { l2: for (;;) { if (y) continue l1; break l2; } }",
	"let f = function () {}, g = () => 1, K = class {};",
	"class P { #x; static has(o) { return #x in o; } }",
}

func TestCompilePatchesEveryJump(t *testing.T) {
	for _, src := range scripts {
		list := mustCompile(t, src, Options{})
		assertJumpsResolved(t, src, list)
	}
}

func TestCompileModule(t *testing.T) {
	sources := []string{
		"import d, {a as b, c} from \"m\" with {type: \"json\"}; d(b, c);",
		"import * as ns from \"m\";",
		"export default class {} export {a as b}; export * as ns from \"m\"; export const c = 1;",
		"export default function () {} export function named() {} export * from \"n\"; export {x as y} from \"o\";",
		"export let [p, q] = r; export default 1 + 2;",
		"await import(\"m\"); import.meta.url;",
	}
	for _, src := range sources {
		list := mustCompile(t, src, Options{Module: true})
		assertJumpsResolved(t, src, list)
	}

	list := mustCompile(t, "export * from \"n\"; export {x as y} from \"o\"; export const c = 1;", Options{Module: true})
	assert.Equal(t, 1, count(list, EXPORT_ALL))
	assert.Equal(t, 2, count(list, IMPORT))
	var exported []any
	for _, in := range list {
		if in.Op == EXPORT {
			exported = append(exported, in.Operands[0])
		}
	}
	assert.Equal(t, []any{"y", "c"}, exported)
}

// assertJumpsResolved checks that every address operand lands on an
// instruction.
func assertJumpsResolved(t *testing.T, src string, list []Instruction) {
	t.Helper()
	starts := make(map[uint64]bool, len(list))
	for _, in := range list {
		starts[uint64(in.Offset)] = true
	}
	for _, in := range list {
		for i, kind := range operands[in.Op] {
			if kind != operandAddress {
				continue
			}
			addr := in.Operands[i].(uint64)
			if in.Op == TRY_BEGIN && addr == 0 {
				continue
			}
			assert.NotZero(t, addr, "%s: %s at %d", src, in.Op, in.Offset)
			assert.True(t, starts[addr], "%s: %s at %d targets %d", src, in.Op, in.Offset, addr)
		}
	}
}

func TestOptionalChainSharesOneJump(t *testing.T) {
	list := mustCompile(t, "a?.b.c.d", Options{})
	require.Equal(t, 1, count(list, JNULL))

	var target uint64
	for _, in := range list {
		if in.Op == JNULL {
			target = in.Operands[0].(uint64)
		}
	}
	// The jump skips the three field reads and lands on the statement's SAVE.
	var landed Opcode
	fields := 0
	for _, in := range list {
		if uint64(in.Offset) == target {
			landed = in.Op
		}
		if in.Op == GET_FIELD && uint64(in.Offset) < target {
			fields++
		}
	}
	assert.Equal(t, SAVE, landed)
	assert.Equal(t, 3, fields)

	list = mustCompile(t, "a?.b?.c", Options{})
	assert.Equal(t, 2, count(list, JNULL))
	var targets []any
	for _, in := range list {
		if in.Op == JNULL {
			targets = append(targets, in.Operands[0])
		}
	}
	assert.Equal(t, targets[0], targets[1])
}

func TestOptionalMethodCall(t *testing.T) {
	list := mustCompile(t, "a?.b()", Options{})
	assert.Equal(t, []Opcode{
		PUSH_SCOPE,
		LOAD, JNULL, PUSH_VALUE, PUSH_STRING, GET_FIELD, PUSH_ARRAY, MEMBER_CALL,
		SAVE, POP,
		POP_SCOPE, HLT,
	}, opcodes(list))
	assert.Equal(t, uint64(list[8].Offset), list[2].Operands[0])
	assert.Equal(t, []any{int32(1), int32(1)}, list[7].Operands)
}

func TestDestructuringDefaultIsGuarded(t *testing.T) {
	list := mustCompile(t, "({a = 1} = {})", Options{})
	i := -1
	for j, in := range list {
		if in.Op == JNOT_UNDEFINED {
			i = j
		}
	}
	require.GreaterOrEqual(t, i, 0, "no JNOT_UNDEFINED emitted")

	// The default is evaluated only on the fall-through path.
	target := list[i].Operands[0].(uint64)
	require.Equal(t, POP, list[i+1].Op)
	require.Equal(t, PUSH_NUMBER, list[i+2].Op)
	assert.Equal(t, 1.0, list[i+2].Operands[0])
	assert.Equal(t, uint64(list[i+3].Offset), target)
	assert.Equal(t, STORE, list[i+3].Op)
}

func TestClosureEmission(t *testing.T) {
	list := mustCompile(t, "function f(x) { return function g() { return x; }; }", Options{})
	var captured []any
	for _, in := range list {
		if in.Op == SET_CLOSURE {
			captured = append(captured, in.Operands[0])
		}
	}
	assert.Equal(t, []any{"x"}, captured)
	assert.Equal(t, 2, count(list, PUSH_FUNCTION))
	assert.Equal(t, 4, count(list, SET_ADDRESS)+count(list, SET_SOURCE))
}

func TestOmitSource(t *testing.T) {
	list := mustCompile(t, "function f() {}", Options{})
	require.Equal(t, 1, count(list, SET_SOURCE))
	for _, in := range list {
		if in.Op == SET_SOURCE {
			assert.Equal(t, "function f() {}", in.Operands[0])
		}
	}

	list = mustCompile(t, "function f() {}", Options{OmitSource: true})
	assert.Zero(t, count(list, SET_SOURCE))
}

func TestScopePrologue(t *testing.T) {
	list := mustCompile(t, "var a; let b; const c = 1; function d() {}", Options{})
	var defs []any
	for _, in := range list {
		if in.Op == DEF {
			defs = append(defs, in.Operands[0])
		}
	}
	assert.Equal(t, []any{"a", "b", "c", "d"}, defs)
	ops := opcodes(list)
	assert.Equal(t, []Opcode{PUSH_SCOPE, PUSH_UNDEFINED, DEF, PUSH_UNINITIALIZED, DEF, PUSH_UNINITIALIZED, SET_CONST, DEF}, ops[:8])
	assert.Equal(t, 1, count(list, SET_CONST))
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("test.js", "let a = 1;\nlet b = 5++;", Options{})
	require.Error(t, err)
	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Invalid left-hand side expression in postfix operation", perr.Message)
	assert.Equal(t, 2, perr.Position.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "compile test.js: "))
}

func TestWriteRejectsInvalidTarget(t *testing.T) {
	src := "5++"
	program := &ast.Program{
		Span:  ast.Span{Start: 0, End: 3},
		File:  file.NewFile("test.js", src),
		Scope: &ast.Scope{Kind: ast.ScopeFunction},
		Body: []ast.Stmt{&ast.ExpressionStatement{
			Span: ast.Span{Start: 0, End: 3},
			Expression: &ast.UpdateExpression{
				Span:     ast.Span{Start: 0, End: 3},
				Operator: token.Increment,
				Operand:  &ast.NumberLiteral{Span: ast.Span{Start: 0, End: 1}, Raw: "5", Value: 5},
			},
		}},
	}
	_, err := Write(program, Options{})
	require.Error(t, err)
	var werr *Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "Invalid left-hand side expression in postfix operation", werr.Message)
	assert.Equal(t, 1, werr.Position.Line)
	assert.Equal(t, 1, werr.Position.Column)
	assert.Equal(t, "test.js:1:1: SyntaxError: Invalid left-hand side expression in postfix operation", werr.Error())
}

func TestCompileLogsPhases(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Compile("test.js", "a + b", Options{Logger: zap.New(core)})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "parse", entries[0].Message)
	assert.Equal(t, "emit", entries[1].Message)
	assert.Equal(t, "test.js", entries[0].ContextMap()["file"])

	_, err = Compile("test.js", "a +", Options{Logger: zap.New(core)})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("compile failed").Len())
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFlet x = 1;"), 0o644))
	prog, err := CompileFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, prog.Filename)

	_, err = CompileFile(filepath.Join(t.TempDir(), "missing.js"), Options{})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestDisassemble(t *testing.T) {
	prog, err := Compile("test.js", "a?.b()", Options{})
	require.NoError(t, err)
	text, err := Disassemble(prog.Code)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "000000 PUSH_SCOPE", lines[0])
	assert.Equal(t, `000002 LOAD "a"`, lines[1])
	assert.True(t, strings.HasSuffix(lines[7], "MEMBER_CALL 1 1"), lines[7])
	assert.True(t, strings.HasSuffix(lines[11], "HLT"), lines[11])

	_, err = Disassemble(prog.Code[:5])
	assert.Error(t, err)
	_, err = Disassemble([]byte{0xff, 0xff})
	assert.Error(t, err)
}
