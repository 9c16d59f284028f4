package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessorReset(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor()

	assert.True(proc.Halted())
	assert.Equal(STATE_HALTED, proc.State())
	assert.Equal(uint16(0xffff), proc.Word(PAIR_SP))
	assert.Equal(uint16(0), proc.Pc)
	for _, pair := range []Pair{PAIR_AF, PAIR_BC, PAIR_DE, PAIR_HL} {
		assert.Equal(uint16(0), proc.Word(pair), pair.String())
		assert.Equal(uint16(0), proc.Shadow.Word(pair), pair.String())
	}
}

func TestProcessorState(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor()

	proc.Restart(0x1234)
	assert.False(proc.Halted())
	assert.Equal(uint16(0x1234), proc.Pc)

	proc.Goto(0x2000)
	assert.Equal(uint16(0x2000), proc.Pc)
	assert.Equal(STATE_RUNNING, proc.State())

	proc.Halt()
	assert.True(proc.Halted())
	proc.Halt()
	assert.True(proc.Halted())

	proc.Restart(0)
	assert.Equal("running", proc.State().String())
}

func TestProcessorApply(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor()

	proc.F = byte(FLAG_C | FLAG_Z)
	proc.Apply(FLAG_S|FLAG_Z|FLAG_PV, FLAG_S|FLAG_PV|FLAG_C)
	assert.Equal(FLAG_S|FLAG_PV|FLAG_C, proc.Status())

	proc.Apply(0, FLAG_ALL)
	assert.Equal(FLAG_S|FLAG_PV|FLAG_C, proc.Status())

	proc.Apply(FLAG_ALL, FLAG_H)
	assert.Equal(FLAG_H, proc.Status())

	assert.True(proc.Flag(FLAG_H))
	assert.False(proc.Flag(FLAG_H | FLAG_C))
	proc.SetFlag(FLAG_C, true)
	assert.True(proc.Flag(FLAG_H | FLAG_C))
	proc.SetFlag(FLAG_H, false)
	assert.Equal(byte(FLAG_C), proc.F)
}

func TestFlagString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("--------", Flag(0).String())
	assert.Equal("SZYHXPNC", FLAG_ALL.String())
	assert.Equal("-Z---P-C", (FLAG_Z | FLAG_PV | FLAG_C).String())
}

func TestConditionHolds(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		cond  Condition
		flag  Flag
		isSet bool
	}{
		{COND_NZ, FLAG_Z, false},
		{COND_Z, FLAG_Z, true},
		{COND_NC, FLAG_C, false},
		{COND_C, FLAG_C, true},
		{COND_PO, FLAG_PV, false},
		{COND_PE, FLAG_PV, true},
		{COND_P, FLAG_S, false},
		{COND_M, FLAG_S, true},
	}

	for n, entry := range table {
		assert.Equal(CONDITIONS[n], entry.cond)
		assert.Equal(entry.isSet, entry.cond.Holds(FLAG_ALL), entry.cond.String())
		assert.Equal(!entry.isSet, entry.cond.Holds(0), entry.cond.String())
		assert.Equal(entry.isSet, entry.cond.Holds(entry.flag), entry.cond.String())
		assert.Equal(!entry.isSet, entry.cond.Holds(FLAG_ALL&^entry.flag), entry.cond.String())
	}

	assert.True(COND_ALWAYS.Holds(0))
	assert.True(COND_ALWAYS.Holds(FLAG_ALL))
}

func TestConditionString(t *testing.T) {
	assert := assert.New(t)

	names := []string{"nz", "z", "nc", "c", "po", "pe", "p", "m"}
	for n, cond := range CONDITIONS {
		assert.Equal(names[n], cond.String())
	}
	assert.Equal(".", COND_ALWAYS.String())
	assert.Equal("Condition(9)", Condition(9).String())

	assert.Equal("halted", STATE_HALTED.String())
	assert.Equal("running", STATE_RUNNING.String())
	assert.Equal("RunState(2)", RunState(2).String())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := map[string]string{}
	for key, value := range Defines() {
		defs[key] = value
	}
	assert.Equal("0x01", defs["FLAG_C"])
	assert.Equal("0x80", defs["FLAG_S"])
	assert.Equal("0xffff", defs["STACK_TOP"])
}
