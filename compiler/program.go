package compiler

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Program is the emitted instruction stream of one source file. Opcodes are
// little endian uint16 values followed by their operands:
//
//	address  uint64
//	integer  int32
//	number   float64 bits
//	boolean  one byte
//	string   uint32 byte length, then the bytes
type Program struct {
	Filename string
	Code     []byte

	// pending maps each reserved address slot to whether it has been
	// patched.
	pending map[int]bool
}

func NewProgram(filename string) *Program {
	return &Program{Filename: filename, pending: make(map[int]bool)}
}

func (p *Program) Len() int { return len(p.Code) }

func (p *Program) AddCode(op Opcode) {
	p.Code = binary.LittleEndian.AppendUint16(p.Code, uint16(op))
}

func (p *Program) AddAddress(addr uint64) {
	p.Code = binary.LittleEndian.AppendUint64(p.Code, addr)
}

func (p *Program) AddInteger(n int32) {
	p.Code = binary.LittleEndian.AppendUint32(p.Code, uint32(n))
}

func (p *Program) AddNumber(f float64) {
	p.Code = binary.LittleEndian.AppendUint64(p.Code, math.Float64bits(f))
}

func (p *Program) AddBoolean(b bool) {
	if b {
		p.Code = append(p.Code, 1)
	} else {
		p.Code = append(p.Code, 0)
	}
}

// AddString appends s inline. Strings are not deduplicated.
func (p *Program) AddString(s string) {
	p.Code = binary.LittleEndian.AppendUint32(p.Code, uint32(len(s)))
	p.Code = append(p.Code, s...)
}

// Reserve appends a zero address and returns its offset for a later Patch.
func (p *Program) Reserve() int {
	if p.pending == nil {
		p.pending = make(map[int]bool)
	}
	slot := len(p.Code)
	p.AddAddress(0)
	p.pending[slot] = false
	return slot
}

// Patch writes the current end of the program into the reserved slot. Each
// slot is patched exactly once.
func (p *Program) Patch(slot int) {
	patched, ok := p.pending[slot]
	if !ok {
		panic(fmt.Sprintf("compiler: patch of unreserved slot %d", slot))
	}
	if patched {
		panic(fmt.Sprintf("compiler: slot %d patched twice", slot))
	}
	binary.LittleEndian.PutUint64(p.Code[slot:], uint64(len(p.Code)))
	p.pending[slot] = true
}

// Unpatched returns the reserved slots still waiting for a Patch, in
// ascending order.
func (p *Program) Unpatched() []int {
	var slots []int
	for _, slot := range maps.Keys(p.pending) {
		if !p.pending[slot] {
			slots = append(slots, slot)
		}
	}
	slices.Sort(slots)
	return slots
}

// Bytes returns the finished code. It fails while any reserved address is
// still unpatched.
func (p *Program) Bytes() ([]byte, error) {
	if slots := p.Unpatched(); len(slots) > 0 {
		return nil, errors.Errorf("%s: %d unpatched jump address(es), first at offset %d", p.Filename, len(slots), slots[0])
	}
	return p.Code, nil
}
