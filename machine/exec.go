// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"math/bits"

	"github.com/ezrec/zvm/alu"
	"github.com/ezrec/zvm/cpu"
)

// arithmeticFlags returns the status of an adder result.
func arithmeticFlags[T uint8 | uint16](op alu.Operation, result alu.Result[T]) (flags cpu.Flag) {
	sign := ^(^T(0) >> 1)

	flags = flags.With(cpu.FLAG_S, result.Value&sign != 0)
	flags = flags.With(cpu.FLAG_Z, result.Value == 0)
	flags = flags.With(cpu.FLAG_H, result.HalfCarry)
	flags = flags.With(cpu.FLAG_PV, result.Overflow)
	flags = flags.With(cpu.FLAG_N, op == alu.OP_SUBTRACT)
	flags = flags.With(cpu.FLAG_C, result.Carry)
	return
}

// logicFlags returns the status of a logic result.
func logicFlags(value byte, halfCarry bool) (flags cpu.Flag) {
	flags = flags.With(cpu.FLAG_S, value&0x80 != 0)
	flags = flags.With(cpu.FLAG_Z, value == 0)
	flags = flags.With(cpu.FLAG_H, halfCarry)
	flags = flags.With(cpu.FLAG_PV, bits.OnesCount8(value)%2 == 0)
	return
}

// operateOnRegister applies an 8-bit operation to target, updating the affected flags.
// The target is a register, or memory addressed by a register pair.
func (m *Machine) operateOnRegister(op alu.Operation, target operand, value byte, carry bool, affected cpu.Flag) (result alu.Result[uint8]) {
	result = op.Octets(m.read8(target), value, carry)
	m.write8(target, result.Value)
	m.Apply(affected, arithmeticFlags(op, result))
	return
}

// operateOnRegisterPair applies a 16-bit operation to a register pair, updating the affected flags.
func (m *Machine) operateOnRegisterPair(op alu.Operation, target cpu.Pair, value uint16, affected cpu.Flag) (result alu.Result[uint16]) {
	result = op.Words(m.Word(target), value, false)
	m.SetWord(target, result.Value)
	m.Apply(affected, arithmeticFlags(op, result))
	return
}

func execNop(m *Machine, op *operation) int {
	return op.cycles
}

func execHalt(m *Machine, op *operation) int {
	m.Halt()
	return op.cycles
}

func execLoad8(m *Machine, op *operation) int {
	m.write8(op.dst, m.read8(op.src))
	return op.cycles
}

func execLoad16(m *Machine, op *operation) int {
	m.write16(op.dst, m.read16(op.src))
	return op.cycles
}

func execAlu8(m *Machine, op *operation) int {
	value := m.read8(op.src)
	carry := m.Flag(cpu.FLAG_C)

	switch op.alu {
	case ALU_ADD:
		m.operateOnRegister(alu.OP_ADD, op.dst, value, false, op.flags)
	case ALU_ADC:
		m.operateOnRegister(alu.OP_ADD, op.dst, value, carry, op.flags)
	case ALU_SUB:
		m.operateOnRegister(alu.OP_SUBTRACT, op.dst, value, false, op.flags)
	case ALU_SBC:
		m.operateOnRegister(alu.OP_SUBTRACT, op.dst, value, carry, op.flags)
	case ALU_CP:
		result := alu.OP_SUBTRACT.Octets(m.read8(op.dst), value, false)
		m.Apply(op.flags, arithmeticFlags(alu.OP_SUBTRACT, result))
	case ALU_AND:
		result := m.read8(op.dst) & value
		m.write8(op.dst, result)
		m.Apply(op.flags, logicFlags(result, true))
	case ALU_XOR:
		result := m.read8(op.dst) ^ value
		m.write8(op.dst, result)
		m.Apply(op.flags, logicFlags(result, false))
	case ALU_OR:
		result := m.read8(op.dst) | value
		m.write8(op.dst, result)
		m.Apply(op.flags, logicFlags(result, false))
	default:
		panic(fmt.Sprintf("machine: %v is not an accumulator operation", op.alu))
	}

	return op.cycles
}

func execIncDec8(m *Machine, op *operation) int {
	if op.alu == ALU_DEC {
		m.operateOnRegister(alu.OP_SUBTRACT, op.dst, 1, false, op.flags)
	} else {
		m.operateOnRegister(alu.OP_ADD, op.dst, 1, false, op.flags)
	}
	return op.cycles
}

func execIncDec16(m *Machine, op *operation) int {
	if op.alu == ALU_DEC {
		m.operateOnRegisterPair(alu.OP_SUBTRACT, op.dst.pair, 1, op.flags)
	} else {
		m.operateOnRegisterPair(alu.OP_ADD, op.dst.pair, 1, op.flags)
	}
	return op.cycles
}

// execAdd16 is ADD HL,rr.
func execAdd16(m *Machine, op *operation) int {
	m.operateOnRegisterPair(alu.OP_ADD, cpu.PAIR_HL, m.read16(op.src), FLAGS_ADD16)
	return op.cycles
}

func execRotate(m *Machine, op *operation) int {
	value := m.read8(op.dst)
	carry := m.Flag(cpu.FLAG_C)

	var out bool
	switch op.alu {
	case ALU_RLC:
		out = value&0x80 != 0
		value = bits.RotateLeft8(value, 1)
	case ALU_RRC:
		out = value&0x01 != 0
		value = bits.RotateLeft8(value, -1)
	case ALU_RL:
		out = value&0x80 != 0
		value <<= 1
		if carry {
			value |= 0x01
		}
	case ALU_RR:
		out = value&0x01 != 0
		value >>= 1
		if carry {
			value |= 0x80
		}
	default:
		panic(fmt.Sprintf("machine: %v is not a rotate", op.alu))
	}

	m.write8(op.dst, value)
	m.Apply(op.flags, cpu.Flag(0).With(cpu.FLAG_C, out))
	return op.cycles
}

// execComplement is CPL.
func execComplement(m *Machine, op *operation) int {
	m.write8(op.dst, ^m.read8(op.dst))
	m.Apply(op.flags, cpu.FLAG_H|cpu.FLAG_N)
	return op.cycles
}

// execSetCarry is SCF.
func execSetCarry(m *Machine, op *operation) int {
	m.Apply(op.flags, cpu.FLAG_C)
	return op.cycles
}

// execComplementCarry is CCF. The previous carry moves into the half carry.
func execComplementCarry(m *Machine, op *operation) int {
	carry := m.Flag(cpu.FLAG_C)
	m.Apply(op.flags, cpu.Flag(0).With(cpu.FLAG_H, carry).With(cpu.FLAG_C, !carry))
	return op.cycles
}

// cost returns the cycles of a conditional instruction.
func (op *operation) cost(taken bool) int {
	if taken {
		return op.taken
	}
	return op.cycles
}

func execJump(m *Machine, op *operation) int {
	target := m.nextWord()
	taken := op.cond.Holds(m.Status())
	if taken {
		m.Goto(target)
	}
	return op.cost(taken)
}

func execJumpHL(m *Machine, op *operation) int {
	m.Goto(m.Word(cpu.PAIR_HL))
	return op.cycles
}

func execJumpRelative(m *Machine, op *operation) int {
	offset := int8(m.nextByte())
	taken := op.cond.Holds(m.Status())
	if taken {
		m.Goto(m.Pc + uint16(offset))
	}
	return op.cost(taken)
}

func execDjnz(m *Machine, op *operation) int {
	offset := int8(m.nextByte())
	m.B--
	taken := m.B != 0
	if taken {
		m.Goto(m.Pc + uint16(offset))
	}
	return op.cost(taken)
}

func execCall(m *Machine, op *operation) int {
	target := m.nextWord()
	taken := op.cond.Holds(m.Status())
	if taken {
		m.push16(m.Pc)
		m.Goto(target)
	}
	return op.cost(taken)
}

func execReturn(m *Machine, op *operation) int {
	taken := op.cond.Holds(m.Status())
	if taken {
		m.Goto(m.pop16())
	}
	return op.cost(taken)
}

func execRestart(m *Machine, op *operation) int {
	m.push16(m.Pc)
	m.Goto(op.vector)
	return op.cycles
}

func execPush(m *Machine, op *operation) int {
	m.push16(m.read16(op.src))
	return op.cycles
}

func execPop(m *Machine, op *operation) int {
	m.write16(op.dst, m.pop16())
	return op.cycles
}

// execExchangeShadow is EX AF,AF'.
func execExchangeShadow(m *Machine, op *operation) int {
	m.Processor.Registers.Exchange(&m.Shadow, cpu.PAIR_AF)
	return op.cycles
}

// execExchangeAll is EXX.
func execExchangeAll(m *Machine, op *operation) int {
	m.Processor.Registers.Exchange(&m.Shadow, cpu.PAIR_BC, cpu.PAIR_DE, cpu.PAIR_HL)
	return op.cycles
}

// execExchangeDEHL is EX DE,HL.
func execExchangeDEHL(m *Machine, op *operation) int {
	m.Swap(cpu.PAIR_DE, cpu.PAIR_HL)
	return op.cycles
}

// execExchangeStack is EX (SP),HL.
func execExchangeStack(m *Machine, op *operation) int {
	sp := m.Word(cpu.PAIR_SP)
	value := m.Ram.ReadWord(sp)
	m.Ram.WriteWord(sp, m.Word(cpu.PAIR_HL))
	m.SetWord(cpu.PAIR_HL, value)
	return op.cycles
}
