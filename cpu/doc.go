// Package cpu implements the architectural state of an 8-bit Z80 family processor.
//
// The processor has an accumulator (A), a status register (F) and six
// general-purpose 8-bit registers (B, C, D, E, H, L) that pair up as BC,
// DE and HL, a 16-bit stack pointer (SP), a program counter, and a shadow
// copy of the register file used by the exchange instructions.
//
// The opcode table names every implemented single byte instruction with
// its encoding and mnemonic. Bytes without an implementation fail to decode.
package cpu
