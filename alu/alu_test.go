package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// expectOctets computes the result with plain integer arithmetic.
func expectOctets(op Operation, a, b uint8, carry bool) (result Result[uint8]) {
	c := b2i(carry)
	var sum, half, signed int
	if op == OP_SUBTRACT {
		sum = int(a) - int(b) - c
		half = int(a&0xf) - int(b&0xf) - c
		signed = int(int8(a)) - int(int8(b)) - c
		result.Carry = sum < 0
		result.HalfCarry = half < 0
	} else {
		sum = int(a) + int(b) + c
		half = int(a&0xf) + int(b&0xf) + c
		signed = int(int8(a)) + int(int8(b)) + c
		result.Carry = sum > 0xff
		result.HalfCarry = half > 0xf
	}
	result.Value = uint8(sum)
	result.Overflow = signed < -128 || signed > 127
	return
}

func expectWords(op Operation, a, b uint16, carry bool) (result Result[uint16]) {
	c := b2i(carry)
	var sum, half, signed int
	if op == OP_SUBTRACT {
		sum = int(a) - int(b) - c
		half = int(a&0xfff) - int(b&0xfff) - c
		signed = int(int16(a)) - int(int16(b)) - c
		result.Carry = sum < 0
		result.HalfCarry = half < 0
	} else {
		sum = int(a) + int(b) + c
		half = int(a&0xfff) + int(b&0xfff) + c
		signed = int(int16(a)) + int(int16(b)) + c
		result.Carry = sum > 0xffff
		result.HalfCarry = half > 0xfff
	}
	result.Value = uint16(sum)
	result.Overflow = signed < -32768 || signed > 32767
	return
}

func TestAddOctets(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		a, b   uint8
		result Result[uint8]
	}{
		{0x7e, 0x01, Result[uint8]{Value: 0x7f}},
		{0x7f, 0x01, Result[uint8]{Value: 0x80, HalfCarry: true, Overflow: true}},
		{0x80, 0x01, Result[uint8]{Value: 0x81}},
		{0xff, 0x01, Result[uint8]{Value: 0x00, HalfCarry: true, Carry: true}},
		{0x80, 0x80, Result[uint8]{Value: 0x00, Carry: true, Overflow: true}},
		{0x0f, 0x0f, Result[uint8]{Value: 0x1e, HalfCarry: true}},
	}

	for _, entry := range table {
		assert.Equal(entry.result, AddOctets(entry.a, entry.b), "%#x + %#x", entry.a, entry.b)
	}
}

func TestOctetsSweep(t *testing.T) {
	for _, op := range []Operation{OP_ADD, OP_SUBTRACT} {
		for _, carry := range []bool{false, true} {
			for a := range 256 {
				for b := range 256 {
					expect := expectOctets(op, uint8(a), uint8(b), carry)
					got := op.Octets(uint8(a), uint8(b), carry)
					if expect != got {
						t.Fatalf("%v %#x %#x carry %v: expected %+v, got %+v", op, a, b, carry, expect, got)
					}
				}
			}
		}
	}
}

func TestAddOctetsSweep(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			expect := expectOctets(OP_ADD, uint8(a), uint8(b), false)
			got := AddOctets(uint8(a), uint8(b))
			if expect != got {
				t.Fatalf("%#x + %#x: expected %+v, got %+v", a, b, expect, got)
			}
		}
	}
}

func TestWordsSweep(t *testing.T) {
	for _, op := range []Operation{OP_ADD, OP_SUBTRACT} {
		for _, carry := range []bool{false, true} {
			for a := 0; a <= 0xffff; a += 0xff {
				for b := 0; b <= 0xffff; b += 0x101 {
					expect := expectWords(op, uint16(a), uint16(b), carry)
					got := op.Words(uint16(a), uint16(b), carry)
					if expect != got {
						t.Fatalf("%v %#x %#x carry %v: expected %+v, got %+v", op, a, b, carry, expect, got)
					}
				}
			}
		}
	}
}

func TestWordsIncrement(t *testing.T) {
	for a := range 0x10000 {
		expect := expectWords(OP_ADD, uint16(a), 1, false)
		got := AddWords(uint16(a), 1)
		if expect != got {
			t.Fatalf("%#x + 1: expected %+v, got %+v", a, expect, got)
		}
		expect = expectWords(OP_SUBTRACT, uint16(a), 1, false)
		got = OP_SUBTRACT.Words(uint16(a), 1, false)
		if expect != got {
			t.Fatalf("%#x - 1: expected %+v, got %+v", a, expect, got)
		}
	}
}

func TestNegate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0xff), Negate(uint8(1)))
	assert.Equal(uint8(0x80), Negate(uint8(0x80)))
	assert.Equal(uint8(0), Negate(uint8(0)))
	assert.Equal(uint16(0xfffe), Negate(uint16(2)))

	for a := range 256 {
		assert.Equal(uint8(0), AddOctets(uint8(a), Negate(uint8(a))).Value)
	}
}

func TestSubtractNegated(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		for b := range 256 {
			for _, carry := range []bool{false, true} {
				var in uint8
				if carry {
					in = 1
				}
				expect := uint8(a) + Negate(uint8(b)) - in
				got := OP_SUBTRACT.Octets(uint8(a), uint8(b), carry)
				if expect != got.Value {
					t.Fatalf("%#x - %#x - %v: expected %#x, got %#x", a, b, carry, expect, got.Value)
				}
				assert.Equal(a < b+int(in), got.Carry)
			}
		}
	}

	assert.False(OP_SUBTRACT.Octets(5, 0, false).Carry)
	assert.False(OP_SUBTRACT.Octets(5, 3, false).Carry)
	assert.Equal(uint16(0x1234), OP_SUBTRACT.Words(0x1234, 0, false).Value)
	assert.False(OP_SUBTRACT.Words(0x1234, 0, false).Carry)
}

func TestOperationString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("sub", OP_SUBTRACT.String())
	assert.Equal("Operation(7)", Operation(7).String())
}

func FuzzAddWords(f *testing.F) {
	f.Add(uint16(0x0fff), uint16(0x0001), false, false)
	f.Add(uint16(0x7fff), uint16(0x0001), false, true)
	f.Add(uint16(0x0000), uint16(0xffff), true, true)

	f.Fuzz(func(t *testing.T, a, b uint16, carry bool, subtract bool) {
		assert := assert.New(t)

		op := OP_ADD
		if subtract {
			op = OP_SUBTRACT
		}
		assert.Equal(expectWords(op, a, b, carry), op.Words(a, b, carry))
		if !carry && !subtract {
			assert.Equal(expectWords(op, a, b, false), AddWords(a, b))
		}
	})
}
