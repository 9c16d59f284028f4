// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	STACK_TOP = uint16(0xffff) // Stack pointer after a reset.
)

var _cpu_defines = map[string]string{
	"FLAG_C":    fmt.Sprintf("0x%02x", uint8(FLAG_C)),
	"FLAG_N":    fmt.Sprintf("0x%02x", uint8(FLAG_N)),
	"FLAG_PV":   fmt.Sprintf("0x%02x", uint8(FLAG_PV)),
	"FLAG_H":    fmt.Sprintf("0x%02x", uint8(FLAG_H)),
	"FLAG_Z":    fmt.Sprintf("0x%02x", uint8(FLAG_Z)),
	"FLAG_S":    fmt.Sprintf("0x%02x", uint8(FLAG_S)),
	"STACK_TOP": fmt.Sprintf("0x%04x", STACK_TOP),
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// RunState is the execution state of the processor.
//
//go:generate go tool stringer -linecomment -type=RunState
type RunState int

const (
	STATE_HALTED  = RunState(0) // halted
	STATE_RUNNING = RunState(1) // running
)

// Processor is the architectural state of the CPU.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	Registers           // Main register set. F is the status register.
	Shadow    Registers // Alternate register set, for the exchange instructions.
	Pc        uint16    // Program counter.

	state RunState
}

// NewProcessor creates a halted processor in its reset state.
func NewProcessor() (proc *Processor) {
	proc = &Processor{}
	proc.Reset()

	return
}

// Reset clears all registers, sets the stack pointer to STACK_TOP, and halts.
func (proc *Processor) Reset() {
	if proc.Verbose {
		log.Printf("cpu: reset")
	}

	proc.Registers = Registers{}
	proc.Shadow = Registers{}
	proc.SetWord(PAIR_SP, STACK_TOP)
	proc.Pc = 0
	proc.state = STATE_HALTED
}

// State returns the run state.
func (proc *Processor) State() RunState {
	return proc.state
}

// Halted returns true if the processor is halted.
func (proc *Processor) Halted() bool {
	return proc.state == STATE_HALTED
}

// Halt stops the processor.
func (proc *Processor) Halt() {
	if proc.Verbose && proc.state == STATE_RUNNING {
		log.Printf("cpu: halt at %04x", proc.Pc)
	}
	proc.state = STATE_HALTED
}

// Goto sets the program counter.
func (proc *Processor) Goto(address uint16) {
	proc.Pc = address
}

// Restart halts the processor, sets the program counter, and resumes running.
func (proc *Processor) Restart(address uint16) {
	proc.Halt()
	proc.Goto(address)
	proc.state = STATE_RUNNING

	if proc.Verbose {
		log.Printf("cpu: run from %04x", address)
	}
}

// Status returns the status register.
func (proc *Processor) Status() Flag {
	return Flag(proc.F)
}

// Flag returns true if all of the flags are set.
func (proc *Processor) Flag(flag Flag) bool {
	return proc.Status().Has(flag)
}

// SetFlag sets or clears flags.
func (proc *Processor) SetFlag(flag Flag, set bool) {
	proc.F = byte(proc.Status().With(flag, set))
}

// Apply copies the flags of values selected by affected into the status
// register. Flags outside of affected are unchanged.
func (proc *Processor) Apply(affected Flag, values Flag) {
	for _, entry := range flagOrder {
		if affected&entry.flag == 0 {
			continue
		}
		proc.SetFlag(entry.flag, values&entry.flag != 0)
	}
}

// String returns the processor state.
func (proc *Processor) String() string {
	return fmt.Sprintf("pc=%04x %v %v [%v]", proc.Pc, proc.Registers.String(), proc.Status(), proc.state)
}
