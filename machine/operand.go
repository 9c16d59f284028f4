// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"

	"github.com/ezrec/zvm/cpu"
)

// operandKind selects where an instruction operand lives.
//
//go:generate go tool stringer -linecomment -type=operandKind
type operandKind int

const (
	OPERAND_NONE  = operandKind(0) // none
	OPERAND_REG   = operandKind(1) // reg
	OPERAND_IND   = operandKind(2) // ind
	OPERAND_IMM8  = operandKind(3) // imm8
	OPERAND_ABS8  = operandKind(4) // abs8
	OPERAND_PAIR  = operandKind(5) // pair
	OPERAND_IMM16 = operandKind(6) // imm16
	OPERAND_ABS16 = operandKind(7) // abs16
)

// operand is a selector interpreted by the generic accessors.
type operand struct {
	kind operandKind
	reg  cpu.Register
	pair cpu.Pair
}

func reg(r cpu.Register) operand {
	return operand{kind: OPERAND_REG, reg: r}
}

func ind(p cpu.Pair) operand {
	return operand{kind: OPERAND_IND, pair: p}
}

func pair(p cpu.Pair) operand {
	return operand{kind: OPERAND_PAIR, pair: p}
}

var (
	imm8  = operand{kind: OPERAND_IMM8}
	abs8  = operand{kind: OPERAND_ABS8}
	imm16 = operand{kind: OPERAND_IMM16}
	abs16 = operand{kind: OPERAND_ABS16}
)

func (o operand) String() string {
	switch o.kind {
	case OPERAND_REG:
		return o.reg.String()
	case OPERAND_IND:
		return "(" + o.pair.String() + ")"
	case OPERAND_IMM8:
		return "n"
	case OPERAND_PAIR:
		return o.pair.String()
	case OPERAND_IMM16:
		return "nn"
	case OPERAND_ABS8, OPERAND_ABS16:
		return "(nn)"
	}
	return "-"
}

// read8 reads an 8-bit operand. Immediate and absolute operands are
// fetched from the instruction stream.
func (m *Machine) read8(o operand) (value byte) {
	switch o.kind {
	case OPERAND_REG:
		value = m.Get(o.reg)
	case OPERAND_IND:
		value = m.Ram.ReadByte(m.Word(o.pair))
	case OPERAND_IMM8:
		value = m.nextByte()
	case OPERAND_ABS8:
		value = m.Ram.ReadByte(m.nextWord())
	default:
		panic(fmt.Sprintf("machine: %v operand %v is not an 8-bit source", o.kind, o))
	}
	return
}

// write8 writes an 8-bit operand.
func (m *Machine) write8(o operand, value byte) {
	switch o.kind {
	case OPERAND_REG:
		m.Set(o.reg, value)
	case OPERAND_IND:
		m.Ram.WriteByte(m.Word(o.pair), value)
	case OPERAND_ABS8:
		m.Ram.WriteByte(m.nextWord(), value)
	default:
		panic(fmt.Sprintf("machine: %v operand %v is not an 8-bit target", o.kind, o))
	}
}

// read16 reads a 16-bit operand.
func (m *Machine) read16(o operand) (value uint16) {
	switch o.kind {
	case OPERAND_PAIR:
		value = m.Word(o.pair)
	case OPERAND_IMM16:
		value = m.nextWord()
	case OPERAND_ABS16:
		value = m.Ram.ReadWord(m.nextWord())
	default:
		panic(fmt.Sprintf("machine: %v operand %v is not a 16-bit source", o.kind, o))
	}
	return
}

// write16 writes a 16-bit operand.
func (m *Machine) write16(o operand, value uint16) {
	switch o.kind {
	case OPERAND_PAIR:
		m.SetWord(o.pair, value)
	case OPERAND_ABS16:
		m.Ram.WriteWord(m.nextWord(), value)
	default:
		panic(fmt.Sprintf("machine: %v operand %v is not a 16-bit target", o.kind, o))
	}
}
