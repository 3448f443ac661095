// Package io provides the I/O channel implementations used by the IN and
// OUT instructions. A channel moves whole 16-bit words, tagged with the
// memory address they were read into or written from.
package io

// Input is the word source for the IN instruction.
type Input interface {
	// Fetch returns the next word to be stored at addr.
	Fetch(addr uint8) (value uint16, err error)
}

// Output is the word sink for the OUT instruction.
type Output interface {
	// Store delivers the word read from addr.
	Store(addr uint8, value uint16) error
}

// Channel defines a bidirectional word channel.
type Channel interface {
	Input
	Output
	// Rewind resets the channel to its initial state.
	Rewind()
}
