package compiler

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramPatch(t *testing.T) {
	p := NewProgram("test.js")
	p.AddCode(JMP)
	slot := p.Reserve()
	require.Equal(t, []int{slot}, p.Unpatched())

	p.AddCode(POP)
	p.Patch(slot)
	assert.Empty(t, p.Unpatched())
	assert.Equal(t, uint64(p.Len()), binary.LittleEndian.Uint64(p.Code[slot:]))

	code, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, p.Code, code)
}

func TestProgramPatchMisuse(t *testing.T) {
	p := NewProgram("test.js")
	slot := p.Reserve()
	p.Patch(slot)
	assert.Panics(t, func() { p.Patch(slot) })
	assert.Panics(t, func() { p.Patch(slot + 1) })
}

func TestProgramUnpatched(t *testing.T) {
	p := NewProgram("test.js")
	a := p.Reserve()
	b := p.Reserve()
	c := p.Reserve()
	p.Patch(b)
	assert.Equal(t, []int{a, c}, p.Unpatched())

	_, err := p.Bytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 unpatched jump address(es)")
}

func TestProgramOperands(t *testing.T) {
	p := &Program{}
	p.AddCode(PUSH_STRING)
	p.AddString("hi")
	p.AddInteger(-2)
	p.AddBoolean(true)

	want := []byte{byte(PUSH_STRING), 0, 2, 0, 0, 0, 'h', 'i', 0xfe, 0xff, 0xff, 0xff, 1}
	assert.Equal(t, want, p.Code)
}

func TestOpcodeNames(t *testing.T) {
	for op := Opcode(0); op < opcodeCount; op++ {
		name := op.String()
		require.NotEmpty(t, name, "opcode %d has no name", op)
		got, ok := LookupOpcode(name)
		require.True(t, ok, name)
		assert.Equal(t, op, got)
	}
	assert.Equal(t, "UNKNOWN", opcodeCount.String())
	assert.Len(t, Mnemonics(), int(opcodeCount))
	assert.True(t, isJump(JNOT_UNDEFINED))
	assert.False(t, isJump(SET_ADDRESS))
}
