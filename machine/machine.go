// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine executes programs on the processor and memory.
package machine

import (
	"log"

	"github.com/ezrec/zvm/cpu"
	"github.com/ezrec/zvm/memory"
	"github.com/ezrec/zvm/program"
)

// ClockFunc is called once for every executed instruction,
// with the number of clock cycles the instruction takes.
type ClockFunc func(cycles int)

// Machine state. Processor + memory.
type Machine struct {
	Verbose        bool           // If set, enables verbose logging.
	*cpu.Processor                // Reference to the processor state.
	Ram            *memory.Memory // Reference to the memory.

	Clock ClockFunc // Cycle hook, may be nil.
	Ticks int       // Cycles since the last reset.
}

// NewMachine creates a new machine, with a halted processor and zeroed memory.
func NewMachine() (m *Machine) {
	m = &Machine{
		Processor: cpu.NewProcessor(),
		Ram:       &memory.Memory{},
	}

	return
}

// Reset the processor and memory to their power-on state.
func (m *Machine) Reset() {
	m.Processor.Verbose = m.Verbose
	m.Processor.Reset()
	m.Ram.Reset()
	m.Ticks = 0
}

// Load a program at address 0.
func (m *Machine) Load(prog *program.Program) (ok bool) {
	return m.LoadAt(prog, 0)
}

// LoadAt loads a program at address.
// Nothing is loaded, and ok is false, if the program does not fit.
func (m *Machine) LoadAt(prog *program.Program, address uint16) (ok bool) {
	ok = m.Ram.Load(address, prog.Bytes())

	if m.Verbose {
		if ok {
			log.Printf("machine: load %d bytes at %04x", prog.Len(), address)
		} else {
			log.Printf("machine: %d bytes do not fit at %04x", prog.Len(), address)
		}
	}

	return
}

// Run executes from address 0 until the processor halts.
func (m *Machine) Run() (err error) {
	return m.RunAt(0)
}

// RunAt executes from address until the processor halts,
// or an instruction fails.
func (m *Machine) RunAt(address uint16) (err error) {
	m.Processor.Verbose = m.Verbose
	m.Restart(address)

	for !m.Halted() {
		_, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// Step fetches and executes a single instruction, regardless of the
// run state of the processor.
func (m *Machine) Step() (cycles int, err error) {
	address := m.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, Err: err}
		}
	}()

	if m.Verbose {
		text, _ := program.Disassemble(address, m.Ram.Slice(address, 3))
		log.Printf("machine: %04x: %v", address, text)
	}

	op, err := cpu.Decode(m.nextByte())
	if err != nil {
		return
	}

	desc := operations[op]
	cycles = desc.exec(m, desc)

	m.Ticks += cycles
	if m.Clock != nil {
		m.Clock(cycles)
	}

	return
}

// nextByte fetches the byte at the program counter.
// Fetching from the last address of memory halts the processor,
// and leaves the program counter unchanged.
func (m *Machine) nextByte() (value byte) {
	value = m.Ram.ReadByte(m.Pc)
	if m.Pc == 0xffff {
		m.Halt()
		return
	}
	m.Pc++
	return
}

// nextWord fetches a little-endian word at the program counter.
func (m *Machine) nextWord() uint16 {
	lo := m.nextByte()
	hi := m.nextByte()
	return uint16(hi)<<8 | uint16(lo)
}

// push16 pushes a word, high byte first.
func (m *Machine) push16(value uint16) {
	sp := m.Word(cpu.PAIR_SP)
	sp--
	m.Ram.WriteByte(sp, byte(value>>8))
	sp--
	m.Ram.WriteByte(sp, byte(value))
	m.SetWord(cpu.PAIR_SP, sp)
}

// pop16 pops a word, low byte first.
func (m *Machine) pop16() uint16 {
	sp := m.Word(cpu.PAIR_SP)
	lo := m.Ram.ReadByte(sp)
	sp++
	hi := m.Ram.ReadByte(sp)
	sp++
	m.SetWord(cpu.PAIR_SP, sp)
	return uint16(hi)<<8 | uint16(lo)
}
