package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-neo/compiler"
)

func source(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, status int) {
	t.Helper()
	t.Setenv("NEO_CONFIG", "")
	var out, errOut bytes.Buffer
	status = run(args, &out, &errOut)
	return out.String(), errOut.String(), status
}

func TestParseJSON(t *testing.T) {
	path := source(t, "a.js", "let a = 1;\nfunction f() { return a; }\n")
	stdout, stderr, status := execute(t, "parse", path)
	require.Equal(t, 0, status, stderr)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &tree))
	assert.Equal(t, "Program", tree["type"])
	assert.Len(t, tree["body"], 2)
}

func TestParseYAMLAndText(t *testing.T) {
	path := source(t, "a.js", "let a = 1;\n")

	stdout, stderr, status := execute(t, "parse", "--format", "yaml", path)
	require.Equal(t, 0, status, stderr)
	assert.Contains(t, stdout, "type: Program")

	stdout, stderr, status = execute(t, "parse", "-f", "text", path)
	require.Equal(t, 0, status, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Program 1:1-"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  VariableDeclaration 1:1-"), lines[1])
}

func TestCompileWritesBytecode(t *testing.T) {
	src := "const xs = [1, 2, 3];\nfor (const x of xs) { console.log(x); }\n"
	path := source(t, "loop.js", src)
	out := filepath.Join(t.TempDir(), "loop.bin")

	_, stderr, status := execute(t, "compile", "--omit-source", "-o", out, path)
	require.Equal(t, 0, status, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := compiler.Compile(path, src, compiler.Options{OmitSource: true})
	require.NoError(t, err)
	assert.Equal(t, want.Code, got)
}

func TestDisasm(t *testing.T) {
	path := source(t, "a.js", "x = 1")

	stdout, stderr, status := execute(t, "disasm", "--format", "text", path)
	require.Equal(t, 0, status, stderr)
	assert.Contains(t, stdout, "PUSH_NUMBER 1")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stdout), "HLT"), stdout)

	stdout, stderr, status = execute(t, "disasm", path)
	require.Equal(t, 0, status, stderr)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &list))
	require.NotEmpty(t, list)
	assert.Equal(t, "PUSH_SCOPE", list[0]["op"])
	assert.Equal(t, "HLT", list[len(list)-1]["op"])
}

func TestFmt(t *testing.T) {
	path := source(t, "a.js", "for (let i = 0; i < n; i++) x += i;")
	stdout, stderr, status := execute(t, "fmt", path)
	require.Equal(t, 0, status, stderr)
	flat := strings.ReplaceAll(strings.ReplaceAll(stdout, "\n", ""), "    ", "")
	assert.Equal(t, "for (let i = 0; i < n; i++) {x += i;}", flat)
}

func TestModuleFlag(t *testing.T) {
	path := source(t, "m.js", "export const a = 1;")

	_, stderr, status := execute(t, "compile", path)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "SyntaxError")

	_, stderr, status = execute(t, "compile", "--module", "-o", filepath.Join(t.TempDir(), "m.bin"), path)
	assert.Equal(t, 0, status, stderr)
}

func TestSyntaxErrorSnippet(t *testing.T) {
	path := source(t, "bad.js", "let a = 1;\nlet a = 2;\n")
	_, stderr, status := execute(t, "parse", path)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "Identifier 'a' has already been declared")
	assert.Contains(t, stderr, "let a = 2;\n")
	assert.Contains(t, stderr, "^")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "neo.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[output]\nformat = \"yaml\"\n"), 0o644))
	path := source(t, "a.js", "1")

	stdout, stderr, status := execute(t, "--config", cfg, "parse", path)
	require.Equal(t, 0, status, stderr)
	assert.Contains(t, stdout, "type: Program")

	// Flags override the file.
	stdout, stderr, status = execute(t, "--config", cfg, "--format", "text", "parse", path)
	require.Equal(t, 0, status, stderr)
	assert.True(t, strings.HasPrefix(stdout, "Program "), stdout)
}

func TestUsageErrors(t *testing.T) {
	path := source(t, "a.js", "1")

	_, stderr, status := execute(t, "parse", "--format", "xml", path)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, `unknown output format "xml"`)

	_, stderr, status = execute(t, "parse", filepath.Join(t.TempDir(), "missing.js"))
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "read source")

	_, _, status = execute(t, "parse")
	assert.Equal(t, 1, status)
}
