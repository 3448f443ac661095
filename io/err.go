package io

import (
	"errors"

	"github.com/numpad/neumann-vm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull  = errors.New(f("channel full"))
	ErrChannelEmpty = errors.New(f("channel empty"))
	ErrTapeInput    = errors.New(f("tape has no input"))
	ErrTapeOutput   = errors.New(f("tape has no output"))
)

// ErrParseWord is an input token that is not a hexadecimal word.
type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a hexadecimal word", string(err))
}
