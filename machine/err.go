package machine

import (
	"github.com/ezrec/zvm/translate"
)

var f = translate.From

// ErrRuntime indicates the address of the instruction that failed.
type ErrRuntime struct {
	Address uint16
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("address %04x %v", err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
