// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Register selects one 8-bit register.
//
//go:generate go tool stringer -linecomment -type=Register
type Register int

const (
	REG_A = Register(0) // a
	REG_F = Register(1) // f
	REG_B = Register(2) // b
	REG_C = Register(3) // c
	REG_D = Register(4) // d
	REG_E = Register(5) // e
	REG_H = Register(6) // h
	REG_L = Register(7) // l
	// S and P are the high and low bytes of the stack pointer.
	REG_S = Register(8) // s
	REG_P = Register(9) // p
)

// Pair selects two 8-bit registers used as one 16-bit register.
type Pair int

const (
	PAIR_AF = Pair(0) // af
	PAIR_BC = Pair(1) // bc
	PAIR_DE = Pair(2) // de
	PAIR_HL = Pair(3) // hl
	PAIR_SP = Pair(4) // sp
)

var pairRegisters = [...][2]Register{
	PAIR_AF: {REG_A, REG_F},
	PAIR_BC: {REG_B, REG_C},
	PAIR_DE: {REG_D, REG_E},
	PAIR_HL: {REG_H, REG_L},
	PAIR_SP: {REG_S, REG_P},
}

// Registers returns the high and low registers of the pair.
func (pair Pair) Registers() (hi, lo Register) {
	regs := pairRegisters[pair]
	hi, lo = regs[0], regs[1]
	return
}

func (pair Pair) String() string {
	hi, lo := pair.Registers()
	if pair == PAIR_SP {
		return "sp"
	}
	return hi.String() + lo.String()
}

// Registers is one set of the register file.
type Registers struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte
	S, P byte
}

// ref returns the storage of a register.
func (regs *Registers) ref(reg Register) *byte {
	switch reg {
	case REG_A:
		return &regs.A
	case REG_F:
		return &regs.F
	case REG_B:
		return &regs.B
	case REG_C:
		return &regs.C
	case REG_D:
		return &regs.D
	case REG_E:
		return &regs.E
	case REG_H:
		return &regs.H
	case REG_L:
		return &regs.L
	case REG_S:
		return &regs.S
	case REG_P:
		return &regs.P
	}
	panic(fmt.Sprintf("cpu: invalid register %d", int(reg)))
}

// Get the value of a register.
func (regs *Registers) Get(reg Register) byte {
	return *regs.ref(reg)
}

// Set the value of a register.
func (regs *Registers) Set(reg Register, value byte) {
	*regs.ref(reg) = value
}

// Word gets the value of a register pair, high register first.
func (regs *Registers) Word(pair Pair) uint16 {
	hi, lo := pair.Registers()
	return uint16(regs.Get(hi))<<8 | uint16(regs.Get(lo))
}

// SetWord sets the value of a register pair.
func (regs *Registers) SetWord(pair Pair, value uint16) {
	hi, lo := pair.Registers()
	regs.Set(hi, byte(value>>8))
	regs.Set(lo, byte(value))
}

// Exchange swaps the selected pairs with another register set.
func (regs *Registers) Exchange(other *Registers, pairs ...Pair) {
	for _, pair := range pairs {
		hi, lo := pair.Registers()
		for _, reg := range [2]Register{hi, lo} {
			mine, theirs := regs.ref(reg), other.ref(reg)
			*mine, *theirs = *theirs, *mine
		}
	}
}

// Swap exchanges the values of two pairs of the set.
func (regs *Registers) Swap(p, q Pair) {
	pv, qv := regs.Word(p), regs.Word(q)
	regs.SetWord(p, qv)
	regs.SetWord(q, pv)
}

// String shows all of the registers.
func (regs *Registers) String() string {
	return fmt.Sprintf("af=%04x bc=%04x de=%04x hl=%04x sp=%04x",
		regs.Word(PAIR_AF), regs.Word(PAIR_BC), regs.Word(PAIR_DE),
		regs.Word(PAIR_HL), regs.Word(PAIR_SP))
}
