package cpu

import (
	"errors"

	"github.com/numpad/neumann-vm/translate"
)

var f = translate.From

var (
	// Machine faults
	ErrOutOfBounds   = errors.New(f("address out of bounds"))
	ErrUnknownOpcode = errors.New(f("unknown opcode"))
	ErrArithmetic    = errors.New(f("division by zero"))
	ErrIo            = errors.New(f("io"))
	ErrFaulted       = errors.New(f("machine faulted, reset required"))
	ErrChannelNone   = errors.New(f("no channel attached"))

	// Image errors
	ErrImageSize = errors.New(f("image size invalid"))

	// Assembler errors
	ErrParse           = errors.New(f("parse"))
	ErrAddressMissing  = errors.New(f("address missing"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
	ErrOperandMissing  = errors.New(f("operand missing"))
)

// ErrAddress is an access outside of memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%x out of bounds", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrOutOfBounds
}

// ErrFault reports the machine state at the instruction that failed.
type ErrFault struct {
	Pc   int
	Code Code
	Err  error
}

func (err *ErrFault) Error() string {
	op, arg := err.Code.Decode()
	return f("pc 0x%02x code 0x%04x (%v 0x%02x) %v", err.Pc, uint16(err.Code), op, arg, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

func (err ErrSyntax) Is(target error) bool {
	return target == ErrParse
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hexadecimal byte", string(err))
}

type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a hexadecimal word", string(err))
}
