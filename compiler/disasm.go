package compiler

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Instruction is one decoded instruction. Operands hold uint64 addresses,
// int32 integers, float64 numbers and strings, in stream order.
type Instruction struct {
	Offset   int
	Op       Opcode
	Operands []any
}

// Decode splits code into instructions.
func Decode(code []byte) ([]Instruction, error) {
	var list []Instruction
	r := reader{code: code}
	for r.pos < len(code) {
		offset := r.pos
		raw, err := r.uint16()
		if err != nil {
			return list, err
		}
		op := Opcode(raw)
		if op >= opcodeCount {
			return list, errors.Errorf("unknown opcode %d at offset %d", raw, offset)
		}
		in := Instruction{Offset: offset, Op: op}
		for _, kind := range operands[op] {
			v, err := r.operand(kind)
			if err != nil {
				return list, errors.Wrapf(err, "%s at offset %d", op, offset)
			}
			in.Operands = append(in.Operands, v)
		}
		list = append(list, in)
	}
	return list, nil
}

// Disassemble renders code one instruction per line.
func Disassemble(code []byte) (string, error) {
	list, err := Decode(code)
	var b strings.Builder
	for _, in := range list {
		fmt.Fprintf(&b, "%06d %s", in.Offset, in.Op)
		for _, v := range in.Operands {
			b.WriteByte(' ')
			switch v := v.(type) {
			case string:
				b.WriteString(strconv.Quote(v))
			case float64:
				b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			default:
				fmt.Fprint(&b, v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), err
}

type reader struct {
	code []byte
	pos  int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.code) {
		return nil, errors.Errorf("truncated operand at offset %d", r.pos)
	}
	b := r.code[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) operand(kind operandKind) (any, error) {
	switch kind {
	case operandAddress:
		b, err := r.take(8)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.Uint64(b), nil
	case operandInteger:
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return int32(binary.LittleEndian.Uint32(b)), nil
	case operandNumber:
		b, err := r.take(8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
	default:
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		s, err := r.take(int(binary.LittleEndian.Uint32(b)))
		if err != nil {
			return nil, err
		}
		return string(s), nil
	}
}
