package scanner_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-neo/parser/scanner"
	"github.com/t14raptor/go-neo/token"
)

func kinds(src string) []token.Token {
	s := scanner.NewScanner(src)
	var out []token.Token
	for {
		tok := s.Next()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF || tok.Kind == token.Error {
			return out
		}
	}
}

func single(t *testing.T, src string) scanner.Token {
	t.Helper()
	s := scanner.NewScanner(src)
	tok := s.Next()
	require.Equal(t, token.EOF, s.Next().Kind, "trailing input after first token of %q", src)
	return tok
}

func TestPunctuatorsLongestMatch(t *testing.T) {
	assert.Equal(t, []token.Token{
		token.UnsignedShiftRightAssign, token.Ellipsis, token.CoalesceAssign,
		token.ExponentAssign, token.StrictNotEqual, token.Arrow, token.QuestionDot, token.EOF,
	}, kinds(">>>= ... ??= **= !== => ?."))

	assert.Equal(t, []token.Token{
		token.Identifier, token.QuestionMark, token.Number, token.Colon, token.Identifier, token.EOF,
	}, kinds("a?.5:b"))
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tok := single(t, "instanceof")
	assert.Equal(t, token.InstanceOf, tok.Kind)

	tok = single(t, "yield")
	assert.Equal(t, token.Identifier, tok.Kind)

	tok = single(t, `\u0069f`)
	assert.Equal(t, token.Identifier, tok.Kind)
	assert.Equal(t, "if", tok.Value)
	assert.True(t, tok.HasEscape)

	tok = single(t, `a\u{62}c`)
	assert.Equal(t, "abc", tok.Value)

	tok = single(t, "#secret")
	assert.Equal(t, token.PrivateName, tok.Kind)
	assert.Equal(t, "secret", tok.Value)

	tok = single(t, "ünïcödé")
	assert.Equal(t, token.Identifier, tok.Kind)
	assert.Equal(t, "ünïcödé", tok.Value)

	tok = scanner.NewScanner(`0abc`).Next()
	assert.Equal(t, token.Error, tok.Kind)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src   string
		kind  token.Token
		value float64
	}{
		{"0", token.Number, 0},
		{"42", token.Number, 42},
		{"1_000_000", token.Number, 1e6},
		{"0x1F", token.Number, 31},
		{"0o17", token.Number, 15},
		{"0b101", token.Number, 5},
		{".5", token.Number, 0.5},
		{"5.", token.Number, 5},
		{"1.5e3", token.Number, 1500},
		{"2E-2", token.Number, 0.02},
	}
	for _, tt := range tests {
		tok := single(t, tt.src)
		require.Equal(t, tt.kind, tok.Kind, tt.src)
		v, err := scanner.NumberValue(tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.value, v, tt.src)
	}

	tok := single(t, "123n")
	assert.Equal(t, token.BigInt, tok.Kind)
	v, ok := scanner.BigIntValue("0xffn")
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(big.NewInt(255)))
}

func TestNumberErrors(t *testing.T) {
	for _, src := range []string{"0o8", "0b2", "0x", "1_", "1__0", "1e", "3in", "012", "1.5n", "0_1"} {
		tok := scanner.NewScanner(src).Next()
		assert.Equal(t, token.Error, tok.Kind, src)
		require.NotNil(t, tok.Err, src)
	}
	tok := scanner.NewScanner("0o8").Next()
	assert.Equal(t, "Invalid digit `8` in base 8 literal", tok.Err.Message)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src, value string
	}{
		{`"plain"`, "plain"},
		{`'it\'s'`, "it's"},
		{`"\x41B\u{43}"`, "ABC"},
		{`"😀"`, "\U0001F600"},
		{`"tab\there"`, "tab\there"},
		{"\"line\\\ncontinued\"", "linecontinued"},
		{`"\0"`, "\x00"},
	}
	for _, tt := range tests {
		tok := single(t, tt.src)
		require.Equal(t, token.String, tok.Kind, tt.src)
		assert.Equal(t, tt.value, tok.Value, tt.src)
	}
}

func TestStringErrors(t *testing.T) {
	for _, src := range []string{`"open`, "\"a\nb\"", "'a\u2028b'", `"\x4"`, `"\u{110000}"`, `"\01"`, `"\7"`} {
		tok := scanner.NewScanner(src).Next()
		assert.Equal(t, token.Error, tok.Kind, src)
	}
}

func TestTemplates(t *testing.T) {
	s := scanner.NewScanner("`a${x}b${y}c`")
	head := s.Next()
	require.Equal(t, token.TemplateHead, head.Kind)
	assert.Equal(t, "a", head.Value)

	assert.Equal(t, token.Identifier, s.Next().Kind)
	brace := s.Next()
	require.Equal(t, token.RightBrace, brace.Kind)
	mid := s.RescanTemplateContinuation(brace)
	require.Equal(t, token.TemplateMiddle, mid.Kind)
	assert.Equal(t, "b", mid.Value)

	assert.Equal(t, token.Identifier, s.Next().Kind)
	tail := s.RescanTemplateContinuation(s.Next())
	require.Equal(t, token.TemplateTail, tail.Kind)
	assert.Equal(t, "c", tail.Value)
	assert.Equal(t, token.EOF, s.Next().Kind)

	tok := single(t, "`x\\ny\r\nz`")
	assert.Equal(t, token.NoSubstitutionTemplate, tok.Kind)
	assert.Equal(t, "x\ny\nz", tok.Value)
	assert.Equal(t, `x\ny`+"\nz", tok.Raw)

	assert.Equal(t, token.Error, scanner.NewScanner("`abc").Next().Kind)
}

func TestRegExp(t *testing.T) {
	s := scanner.NewScanner(`/[/]\/x/gi;`)
	slash := s.Next()
	require.Equal(t, token.Slash, slash.Kind)
	re := s.RescanRegExp(slash)
	require.Equal(t, token.RegExp, re.Kind)
	assert.Equal(t, `[/]\/x`, re.Value)
	assert.Equal(t, "gi", re.Raw)
	assert.Equal(t, token.Semicolon, s.Next().Kind)

	for _, src := range []string{"/abc", "/a/gg", "/a/q", "/a\n/"} {
		s := scanner.NewScanner(src)
		tok := s.RescanRegExp(s.Next())
		assert.Equal(t, token.Error, tok.Kind, src)
	}
}

func TestTrivia(t *testing.T) {
	s := scanner.NewScanner("a // note\n/* multi\nline */ b /* same */ c")
	a := s.Next()
	assert.False(t, a.OnNewLine)
	b := s.Next()
	assert.Equal(t, "b", b.Value)
	assert.True(t, b.OnNewLine)
	c := s.Next()
	assert.False(t, c.OnNewLine)

	assert.Equal(t, token.Error, scanner.NewScanner("/* open").Next().Kind)
}

func TestReadFunctionsDoNotAdvanceOnMismatch(t *testing.T) {
	s := scanner.NewScanner("abc")
	reads := map[string]func() (scanner.Token, bool){
		"whitespace": s.ReadWhitespace,
		"newline":    s.ReadLineTerminator,
		"comment":    s.ReadComment,
		"number":     s.ReadNumber,
		"string":     s.ReadString,
		"template":   s.ReadTemplate,
		"regexp":     s.ReadRegExp,
		"punctuator": s.ReadPunctuator,
		"hashbang":   s.ReadHashbang,
	}
	for name, read := range reads {
		_, ok := read()
		assert.False(t, ok, name)
		assert.EqualValues(t, 0, s.Offset(), name)
	}
}

func TestHashbang(t *testing.T) {
	s := scanner.NewScanner("#!/usr/bin/env neo\nx")
	tok, ok := s.ReadHashbang()
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/env neo", tok.Value)
	assert.Equal(t, "x", s.Next().Value)
}

func TestCheckpoint(t *testing.T) {
	s := scanner.NewScanner("a b c")
	s.Next()
	cp := s.Checkpoint()
	assert.Equal(t, "b", s.Next().Value)
	s.Rewind(cp)
	assert.Equal(t, "b", s.Next().Value)
}

func TestInvalidCharacter(t *testing.T) {
	tok := scanner.NewScanner("@@ \u0001").Next()
	assert.Equal(t, token.At, tok.Kind)

	tok = scanner.NewScanner("\u0001").Next()
	assert.Equal(t, token.Error, tok.Kind)
	assert.EqualValues(t, 1, tok.Idx1)
}
