package cpu

import (
	"errors"

	"github.com/ezrec/zvm/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
)

// ErrOpcode is a byte that does not decode to an implemented opcode.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeDecode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}
