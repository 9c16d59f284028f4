// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/zvm/cpu"
)

// Program is an append-only sequence of instruction bytes.
type Program struct {
	data []byte
}

// Add appends an opcode without operands.
func (prog *Program) Add(op cpu.Opcode) *Program {
	prog.data = append(prog.data, byte(op))
	return prog
}

// AddParam appends an opcode with an 8-bit operand.
func (prog *Program) AddParam(op cpu.Opcode, param byte) *Program {
	prog.data = append(prog.data, byte(op), param)
	return prog
}

// AddParams appends an opcode with two 8-bit operands, in order.
func (prog *Program) AddParams(op cpu.Opcode, param1, param2 byte) *Program {
	prog.data = append(prog.data, byte(op), param1, param2)
	return prog
}

// AddParamWord appends an opcode with a 16-bit operand, low byte first.
func (prog *Program) AddParamWord(op cpu.Opcode, param uint16) *Program {
	return prog.AddParams(op, byte(param), byte(param>>8))
}

// AddBytes appends raw bytes.
func (prog *Program) AddBytes(data ...byte) *Program {
	prog.data = append(prog.data, data...)
	return prog
}

// Bytes returns the program bytes.
func (prog *Program) Bytes() []byte {
	return prog.data
}

// Len returns the number of program bytes.
func (prog *Program) Len() int {
	return len(prog.data)
}

// WriteTo writes the raw program image.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	count, err := w.Write(prog.data)
	n = int64(count)
	return
}

// ReadFrom appends a raw program image.
func (prog *Program) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(r)
	n = int64(len(data))
	prog.data = append(prog.data, data...)
	return
}

// Listing iterates over the disassembled instructions of the program,
// as if the program was loaded at origin.
func (prog *Program) Listing(origin uint16) iter.Seq2[uint16, string] {
	return func(yield func(address uint16, text string) bool) {
		for offset := 0; offset < len(prog.data); {
			address := origin + uint16(offset)
			text, size := Disassemble(address, prog.data[offset:])
			if !yield(address, text) {
				return
			}
			offset += size
		}
	}
}

// Disassemble the instruction at the start of data, located at address.
// Missing operand bytes read as zero.
func Disassemble(address uint16, data []byte) (text string, size int) {
	if len(data) == 0 {
		return
	}

	op := cpu.Opcode(data[0])
	size = op.Size()
	if !op.Valid() {
		text = op.String()
		return
	}

	operand := func(n int) uint16 {
		if n < len(data) {
			return uint16(data[n])
		}
		return 0
	}

	mnemonic, _, _ := strings.Cut(op.String(), " ")
	args := op.Operands()
	for n, arg := range args {
		switch {
		case arg == "n":
			args[n] = fmt.Sprintf("0x%02x", operand(1))
		case arg == "nn":
			args[n] = fmt.Sprintf("0x%04x", operand(1)|operand(2)<<8)
		case arg == "(nn)":
			args[n] = fmt.Sprintf("(0x%04x)", operand(1)|operand(2)<<8)
		case arg == "e" && op.Relative():
			target := address + 2 + uint16(int8(operand(1)))
			args[n] = fmt.Sprintf("0x%04x", target)
		}
	}

	text = mnemonic
	if len(args) > 0 {
		text += " " + strings.Join(args, ",")
	}

	if size > len(data) {
		size = len(data)
	}

	return
}
