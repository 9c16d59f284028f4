// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the flat 64KiB address space of the emulator.
package memory

import (
	"fmt"
	"iter"
	"maps"
)

const (
	SIZE = 0x10000 // Number of addressable bytes.
)

var _memory_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("0x%x", SIZE),
}

// Memory is the byte addressable RAM. Addresses wrap modulo SIZE.
type Memory struct {
	Data [SIZE]byte
}

// Defines for the memory
func Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// Reset zeros the memory.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
}

// ReadByte reads the byte at address.
func (mem *Memory) ReadByte(address uint16) byte {
	return mem.Data[address]
}

// WriteByte writes value at address.
func (mem *Memory) WriteByte(address uint16, value byte) {
	mem.Data[address] = value
}

// ReadWord reads a little-endian word: low byte at address, high byte at address+1.
func (mem *Memory) ReadWord(address uint16) (value uint16) {
	lo := mem.Data[address]
	hi := mem.Data[address+1]
	value = uint16(hi)<<8 | uint16(lo)
	return
}

// WriteWord writes a little-endian word.
func (mem *Memory) WriteWord(address uint16, value uint16) {
	mem.Data[address] = byte(value)
	mem.Data[address+1] = byte(value >> 8)
}

// Fits returns true if length bytes starting at address lie inside the memory.
func Fits(address uint16, length int) bool {
	return length >= 0 && int(address)+length <= SIZE
}

// Load copies data into memory at address.
// Either all of data is copied, or nothing is and ok is false.
func (mem *Memory) Load(address uint16, data []byte) (ok bool) {
	if !Fits(address, len(data)) {
		return
	}

	copy(mem.Data[address:], data)
	ok = true
	return
}

// Slice returns a copy of length bytes at address, wrapping at the end of memory.
func (mem *Memory) Slice(address uint16, length int) (data []byte) {
	data = make([]byte, length)
	for n := range data {
		data[n] = mem.Data[address+uint16(n)]
	}
	return
}
