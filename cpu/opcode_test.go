package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	missing := []byte{0x27, 0xCB, 0xD3, 0xDB, 0xDD, 0xED, 0xF3, 0xFB, 0xFD}

	for b := range 256 {
		op, err := Decode(byte(b))
		assert.Equal(Opcode(b), op)
		if err != nil {
			assert.Contains(missing, byte(b))
			assert.True(errors.Is(err, ErrOpcodeDecode), "%#02x", b)
			assert.ErrorIs(err, ErrOpcode(0))
			assert.False(op.Valid())
			assert.Equal(1, op.Size())
			continue
		}
		assert.NotContains(missing, byte(b))
		assert.True(op.Valid())
	}

	assert.Equal(247, len(Opcodes()))
	assert.Equal("bad opcode 0xcb", ErrOpcode(0xCB).Error())
}

func TestOpcodeMnemonic(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		op       Opcode
		mnemonic string
		size     int
	}{
		{NOP, "nop", 1},
		{LD_BC_NN, "ld bc,nn", 3},
		{LD_E_N, "ld e,n", 2},
		{LD_IHL_N, "ld (hl),n", 2},
		{LD_A_INN, "ld a,(nn)", 3},
		{LD_INN_HL, "ld (nn),hl", 3},
		{EX_AF_AF, "ex af,af'", 1},
		{DJNZ, "djnz e", 2},
		{JR_NC, "jr nc,e", 2},
		{LD_E_E, "ld e,e", 1},
		{LD_IHL_A, "ld (hl),a", 1},
		{HALT, "halt", 1},
		{ADD_A_B, "add a,b", 1},
		{SUB_IHL, "sub (hl)", 1},
		{CP_N, "cp n", 2},
		{JP_PE_NN, "jp pe,nn", 3},
		{CALL_NN, "call nn", 3},
		{RST_38, "rst 0x38", 1},
		{EX_ISP_HL, "ex (sp),hl", 1},
		{Opcode(0xED), "db 0xed", 1},
	}

	for _, entry := range table {
		assert.Equal(entry.mnemonic, entry.op.String())
		assert.Equal(entry.size, entry.op.Size(), entry.mnemonic)
	}

	assert.Equal(Opcode(0x80), ADD_A_B)
	assert.Equal(Opcode(0x76), HALT)
	assert.Equal(Opcode(0xC2), JP_NZ_NN)
	assert.Equal(Opcode(0xCA), JP_Z_NN)
	assert.Equal([]string{"a", "(nn)"}, LD_A_INN.Operands())
	assert.Nil(NOP.Operands())
}

func TestOpcodeUnique(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]Opcode{}
	for _, op := range Opcodes() {
		other, ok := seen[op.String()]
		assert.False(ok, "%v: %#02x and %#02x", op, uint8(op), uint8(other))
		seen[op.String()] = op
	}
}
