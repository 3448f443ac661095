package emulator

import (
	"errors"

	"github.com/numpad/neumann-vm/translate"
)

var f = translate.From

var (
	ErrStepLimit     = errors.New(f("step limit reached"))
	ErrConditionType = errors.New(f("condition is not a boolean"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return err.Err.Error()
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
