package cpu

// Flag is the comparison flag, derived from the accumulator after every
// arithmetic, logic or shift operation.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_UNINITIALIZED = Flag(0) // uninitialized
	FLAG_EQUAL         = Flag(1) // equal
	FLAG_NOT_EQUAL     = Flag(2) // notequal
	FLAG_LESS_EQUAL    = Flag(3) // lessequal
	FLAG_UNDEFINED     = Flag(4) // undefined
)

// FlagOf classifies a signed accumulator value.
// Zero is equal, negative is less-or-equal, positive is not-equal.
func FlagOf(acc int16) Flag {
	switch {
	case acc == 0:
		return FLAG_EQUAL
	case acc < 0:
		return FLAG_LESS_EQUAL
	default:
		return FLAG_NOT_EQUAL
	}
}
