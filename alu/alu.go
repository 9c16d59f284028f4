// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package alu implements the adders of the processor.
//
// AddOctets and AddWords are the only adders. Carry-in, subtraction,
// increment and decrement are all chains of calls to them.
package alu

// Result of an adder.
type Result[T uint8 | uint16] struct {
	Value     T    // Truncated sum.
	HalfCarry bool // Carry out of bit 3 (octets) or bit 11 (words).
	Carry     bool // Carry out of the most significant bit.
	Overflow  bool // Signed overflow.
}

// AddOctets adds two bytes, nibble by nibble.
func AddOctets(a, b uint8) (result Result[uint8]) {
	low := a&0xf + b&0xf
	high := a>>4 + b>>4 + low>>4

	result.Value = high<<4 | low&0xf
	result.HalfCarry = low > 0xf
	result.Carry = high > 0xf
	result.Overflow = (a^b)&0x80 == 0 && (a^result.Value)&0x80 != 0

	return
}

// AddWords adds two words. The low bytes are added first, and the
// carry out of them is added into the high bytes.
func AddWords(a, b uint16) (result Result[uint16]) {
	lo := AddOctets(uint8(a), uint8(b))
	hi := AddOctets(uint8(a>>8), uint8(b>>8))
	if lo.Carry {
		in := AddOctets(hi.Value, 1)
		hi.Value = in.Value
		hi.HalfCarry = hi.HalfCarry || in.HalfCarry
		hi.Carry = hi.Carry || in.Carry
	}

	result.Value = uint16(hi.Value)<<8 | uint16(lo.Value)
	result.HalfCarry = hi.HalfCarry
	result.Carry = hi.Carry
	result.Overflow = (a^b)&0x8000 == 0 && (a^result.Value)&0x8000 != 0

	return
}

// Negate returns the two's complement of value.
func Negate[T uint8 | uint16](value T) T {
	return ^value + 1
}

// chain merges the result of adding a carry into an earlier result.
func chain[T uint8 | uint16](first, second Result[T]) Result[T] {
	return Result[T]{
		Value:     second.Value,
		HalfCarry: first.HalfCarry || second.HalfCarry,
		Carry:     first.Carry || second.Carry,
		Overflow:  first.Overflow != second.Overflow,
	}
}

// borrow converts the carries of a complemented addition into borrows.
func borrow[T uint8 | uint16](result Result[T]) Result[T] {
	result.HalfCarry = !result.HalfCarry
	result.Carry = !result.Carry
	return result
}

// Operation is an arithmetic operation of the ALU.
//
//go:generate go tool stringer -linecomment -type=Operation
type Operation int

const (
	OP_ADD      = Operation(0) // add
	OP_SUBTRACT = Operation(1) // sub
)

// Octets performs the operation on two bytes with a carry (or borrow) in.
//
// Subtraction computes a + Negate(b) - carry as the single addition
// a + ^b + !carry, and reports Carry and HalfCarry as borrows.
func (op Operation) Octets(a, b uint8, carry bool) (result Result[uint8]) {
	if op == OP_SUBTRACT {
		result = borrow(addOctets(a, ^b, !carry))
		return
	}

	result = addOctets(a, b, carry)
	return
}

// Words performs the operation on two words with a carry (or borrow) in.
func (op Operation) Words(a, b uint16, carry bool) (result Result[uint16]) {
	if op == OP_SUBTRACT {
		result = borrow(addWords(a, ^b, !carry))
		return
	}

	result = addWords(a, b, carry)
	return
}

func addOctets(a, b uint8, carry bool) (result Result[uint8]) {
	result = AddOctets(a, b)
	if carry {
		result = chain(result, AddOctets(result.Value, 1))
	}
	return
}

func addWords(a, b uint16, carry bool) (result Result[uint16]) {
	result = AddWords(a, b)
	if carry {
		result = chain(result, AddWords(result.Value, 1))
	}
	return
}
