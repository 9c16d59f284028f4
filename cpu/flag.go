// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Flag is a bit of the status (F) register.
type Flag uint8

const (
	FLAG_C  = Flag(1 << 0) // Carry, or borrow after a subtraction.
	FLAG_N  = Flag(1 << 1) // Last arithmetic operation was a subtraction.
	FLAG_PV = Flag(1 << 2) // Parity of logic results, overflow of arithmetic results.
	FLAG_X  = Flag(1 << 3) // Unused.
	FLAG_H  = Flag(1 << 4) // Half carry, out of bit 3.
	FLAG_Y  = Flag(1 << 5) // Unused.
	FLAG_Z  = Flag(1 << 6) // Zero.
	FLAG_S  = Flag(1 << 7) // Sign.
)

// FLAG_ALL is the mask of every flag.
const FLAG_ALL = Flag(0xff)

// flagOrder is the order in which flags are shown and applied.
var flagOrder = [8]struct {
	flag Flag
	name byte
}{
	{FLAG_S, 'S'},
	{FLAG_Z, 'Z'},
	{FLAG_Y, 'Y'},
	{FLAG_H, 'H'},
	{FLAG_X, 'X'},
	{FLAG_PV, 'P'},
	{FLAG_N, 'N'},
	{FLAG_C, 'C'},
}

// Has returns true if all of the flags of mask are set.
func (flags Flag) Has(mask Flag) bool {
	return flags&mask == mask
}

// With returns flags with mask set or cleared.
func (flags Flag) With(mask Flag, set bool) Flag {
	if set {
		return flags | mask
	}
	return flags &^ mask
}

// String shows the flags as 'SZYHXPNC', with '-' for clear flags.
func (flags Flag) String() string {
	text := make([]byte, 0, len(flagOrder))
	for _, entry := range flagOrder {
		if flags&entry.flag != 0 {
			text = append(text, entry.name)
		} else {
			text = append(text, '-')
		}
	}
	return string(text)
}

// Condition is a test of the status flags. PO holds when P/V is clear
// (odd parity), PE when it is set.
//
//go:generate go tool stringer -linecomment -type=Condition
type Condition int

const (
	COND_ALWAYS = Condition(0) // .
	COND_NZ     = Condition(1) // nz
	COND_Z      = Condition(2) // z
	COND_NC     = Condition(3) // nc
	COND_C      = Condition(4) // c
	COND_PO     = Condition(5) // po
	COND_PE     = Condition(6) // pe
	COND_P      = Condition(7) // p
	COND_M      = Condition(8) // m
)

// CONDITIONS are the eight tests, in encoding order.
var CONDITIONS = [8]Condition{COND_NZ, COND_Z, COND_NC, COND_C, COND_PO, COND_PE, COND_P, COND_M}

// Holds returns true if the condition is true for the status flags.
func (cond Condition) Holds(status Flag) (ok bool) {
	switch cond {
	case COND_ALWAYS:
		ok = true
	case COND_NZ:
		ok = !status.Has(FLAG_Z)
	case COND_Z:
		ok = status.Has(FLAG_Z)
	case COND_NC:
		ok = !status.Has(FLAG_C)
	case COND_C:
		ok = status.Has(FLAG_C)
	case COND_PO:
		ok = !status.Has(FLAG_PV)
	case COND_PE:
		ok = status.Has(FLAG_PV)
	case COND_P:
		ok = !status.Has(FLAG_S)
	case COND_M:
		ok = status.Has(FLAG_S)
	}
	return
}
