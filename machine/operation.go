// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"github.com/ezrec/zvm/cpu"
)

// aluKind is the operation performed by an arithmetic or logic instruction.
//
//go:generate go tool stringer -linecomment -type=aluKind
type aluKind int

const (
	ALU_NONE = aluKind(0)  // none
	ALU_ADD  = aluKind(1)  // add
	ALU_ADC  = aluKind(2)  // adc
	ALU_SUB  = aluKind(3)  // sub
	ALU_SBC  = aluKind(4)  // sbc
	ALU_AND  = aluKind(5)  // and
	ALU_XOR  = aluKind(6)  // xor
	ALU_OR   = aluKind(7)  // or
	ALU_CP   = aluKind(8)  // cp
	ALU_INC  = aluKind(9)  // inc
	ALU_DEC  = aluKind(10) // dec
	ALU_RLC  = aluKind(11) // rlca
	ALU_RRC  = aluKind(12) // rrca
	ALU_RL   = aluKind(13) // rla
	ALU_RR   = aluKind(14) // rra
)

// aluOrder is the encoding order of the accumulator operations.
var aluOrder = [8]aluKind{ALU_ADD, ALU_ADC, ALU_SUB, ALU_SBC, ALU_AND, ALU_XOR, ALU_OR, ALU_CP}

// Flags changed by each group of instructions.
const (
	FLAGS_ARITH  = cpu.FLAG_S | cpu.FLAG_Z | cpu.FLAG_H | cpu.FLAG_PV | cpu.FLAG_N | cpu.FLAG_C
	FLAGS_INCDEC = cpu.FLAG_S | cpu.FLAG_Z | cpu.FLAG_H | cpu.FLAG_PV | cpu.FLAG_N
	FLAGS_ADD16  = cpu.FLAG_H | cpu.FLAG_N | cpu.FLAG_C
	FLAGS_ROTATE = cpu.FLAG_H | cpu.FLAG_N | cpu.FLAG_C
)

// operation describes how to execute one opcode.
type operation struct {
	exec   func(m *Machine, op *operation) int // Handler, returns the cycles taken.
	alu    aluKind
	dst    operand
	src    operand
	cond   cpu.Condition
	flags  cpu.Flag // Flags the instruction may change.
	cycles int      // Cycles, or cycles when the condition fails.
	taken  int      // Cycles when the condition holds.
	vector uint16   // Restart address.
}

// operations is the dispatch table, indexed by opcode.
var operations [256]*operation

func define(op cpu.Opcode, desc operation) {
	if operations[op] != nil {
		panic("machine: opcode " + op.String() + " defined twice")
	}
	operations[op] = &desc
}

// r8 are the 8-bit operands, in encoding order.
var r8 = [8]operand{
	reg(cpu.REG_B), reg(cpu.REG_C), reg(cpu.REG_D), reg(cpu.REG_E),
	reg(cpu.REG_H), reg(cpu.REG_L), ind(cpu.PAIR_HL), reg(cpu.REG_A),
}

// rp are the register pairs of the 16-bit arithmetic and load instructions.
var rp = [4]cpu.Pair{cpu.PAIR_BC, cpu.PAIR_DE, cpu.PAIR_HL, cpu.PAIR_SP}

// rp2 are the register pairs of the stack instructions.
var rp2 = [4]cpu.Pair{cpu.PAIR_BC, cpu.PAIR_DE, cpu.PAIR_HL, cpu.PAIR_AF}

// costs returns the cost of an instruction, using slow when it accesses (HL).
func costs(o operand, fast, slow int) int {
	if o.kind == OPERAND_IND {
		return slow
	}
	return fast
}

func init() {
	regA := reg(cpu.REG_A)

	// Control
	define(cpu.NOP, operation{exec: execNop, cycles: 4})
	define(cpu.HALT, operation{exec: execHalt, cycles: 4})
	define(cpu.JP_NN, operation{exec: execJump, cond: cpu.COND_ALWAYS, cycles: 10, taken: 10})
	define(cpu.JP_IHL, operation{exec: execJumpHL, cycles: 4})
	define(cpu.JR, operation{exec: execJumpRelative, cond: cpu.COND_ALWAYS, cycles: 12, taken: 12})
	define(cpu.DJNZ, operation{exec: execDjnz, cycles: 8, taken: 13})
	define(cpu.CALL_NN, operation{exec: execCall, cond: cpu.COND_ALWAYS, cycles: 17, taken: 17})
	define(cpu.RET, operation{exec: execReturn, cond: cpu.COND_ALWAYS, cycles: 10, taken: 10})
	for y, cond := range cpu.CONDITIONS {
		define(cpu.Opcode(0xC2+8*y), operation{exec: execJump, cond: cond, cycles: 10, taken: 10})
		define(cpu.Opcode(0xC4+8*y), operation{exec: execCall, cond: cond, cycles: 10, taken: 17})
		define(cpu.Opcode(0xC0+8*y), operation{exec: execReturn, cond: cond, cycles: 5, taken: 11})
		define(cpu.Opcode(0xC7+8*y), operation{exec: execRestart, cycles: 11, vector: uint16(8 * y)})
		if y < 4 {
			define(cpu.Opcode(0x20+8*y), operation{exec: execJumpRelative, cond: cond, cycles: 7, taken: 12})
		}
	}

	// 8-bit loads
	for y, dst := range r8 {
		for z, src := range r8 {
			if dst.kind == OPERAND_IND && src.kind == OPERAND_IND {
				continue
			}
			define(cpu.Opcode(0x40+8*y+z), operation{exec: execLoad8, dst: dst, src: src,
				cycles: costs(dst, costs(src, 4, 7), 7)})
		}
		define(cpu.Opcode(0x06+8*y), operation{exec: execLoad8, dst: dst, src: imm8, cycles: costs(dst, 7, 10)})
	}
	define(cpu.LD_IBC_A, operation{exec: execLoad8, dst: ind(cpu.PAIR_BC), src: regA, cycles: 7})
	define(cpu.LD_IDE_A, operation{exec: execLoad8, dst: ind(cpu.PAIR_DE), src: regA, cycles: 7})
	define(cpu.LD_A_IBC, operation{exec: execLoad8, dst: regA, src: ind(cpu.PAIR_BC), cycles: 7})
	define(cpu.LD_A_IDE, operation{exec: execLoad8, dst: regA, src: ind(cpu.PAIR_DE), cycles: 7})
	define(cpu.LD_INN_A, operation{exec: execLoad8, dst: abs8, src: regA, cycles: 13})
	define(cpu.LD_A_INN, operation{exec: execLoad8, dst: regA, src: abs8, cycles: 13})

	// 16-bit loads, arithmetic and stack
	for p := range rp {
		define(cpu.Opcode(0x01+16*p), operation{exec: execLoad16, dst: pair(rp[p]), src: imm16, cycles: 10})
		define(cpu.Opcode(0x09+16*p), operation{exec: execAdd16, dst: pair(rp[p]), src: pair(rp[p]), cycles: 11})
		define(cpu.Opcode(0x03+16*p), operation{exec: execIncDec16, alu: ALU_INC, dst: pair(rp[p]), cycles: 6})
		define(cpu.Opcode(0x0B+16*p), operation{exec: execIncDec16, alu: ALU_DEC, dst: pair(rp[p]), cycles: 6})
		define(cpu.Opcode(0xC5+16*p), operation{exec: execPush, src: pair(rp2[p]), cycles: 11})
		define(cpu.Opcode(0xC1+16*p), operation{exec: execPop, dst: pair(rp2[p]), cycles: 10})
	}
	define(cpu.LD_INN_HL, operation{exec: execLoad16, dst: abs16, src: pair(cpu.PAIR_HL), cycles: 16})
	define(cpu.LD_HL_INN, operation{exec: execLoad16, dst: pair(cpu.PAIR_HL), src: abs16, cycles: 16})
	define(cpu.LD_SP_HL, operation{exec: execLoad16, dst: pair(cpu.PAIR_SP), src: pair(cpu.PAIR_HL), cycles: 6})

	// 8-bit arithmetic and logic
	for y, kind := range aluOrder {
		for z, src := range r8 {
			define(cpu.Opcode(0x80+8*y+z), operation{exec: execAlu8, alu: kind, dst: regA, src: src,
				flags: FLAGS_ARITH, cycles: costs(src, 4, 7)})
		}
		define(cpu.Opcode(0xC6+8*y), operation{exec: execAlu8, alu: kind, dst: regA, src: imm8,
			flags: FLAGS_ARITH, cycles: 7})
	}
	for y, dst := range r8 {
		define(cpu.Opcode(0x04+8*y), operation{exec: execIncDec8, alu: ALU_INC, dst: dst,
			flags: FLAGS_INCDEC, cycles: costs(dst, 4, 11)})
		define(cpu.Opcode(0x05+8*y), operation{exec: execIncDec8, alu: ALU_DEC, dst: dst,
			flags: FLAGS_INCDEC, cycles: costs(dst, 4, 11)})
	}
	for n, kind := range [4]aluKind{ALU_RLC, ALU_RRC, ALU_RL, ALU_RR} {
		define(cpu.Opcode(0x07+8*n), operation{exec: execRotate, alu: kind, dst: regA,
			flags: FLAGS_ROTATE, cycles: 4})
	}
	define(cpu.CPL, operation{exec: execComplement, dst: regA, flags: cpu.FLAG_H | cpu.FLAG_N, cycles: 4})
	define(cpu.SCF, operation{exec: execSetCarry, flags: cpu.FLAG_H | cpu.FLAG_N | cpu.FLAG_C, cycles: 4})
	define(cpu.CCF, operation{exec: execComplementCarry, flags: cpu.FLAG_H | cpu.FLAG_N | cpu.FLAG_C, cycles: 4})

	// Exchanges
	define(cpu.EX_AF_AF, operation{exec: execExchangeShadow, cycles: 4})
	define(cpu.EXX, operation{exec: execExchangeAll, cycles: 4})
	define(cpu.EX_DE_HL, operation{exec: execExchangeDEHL, cycles: 4})
	define(cpu.EX_ISP_HL, operation{exec: execExchangeStack, cycles: 19})
}
