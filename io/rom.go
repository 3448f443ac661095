package io

// Rom is a read-only, fixed sequence of input words.
type Rom struct {
	Data []uint16

	index int
}

var _ Channel = (*Rom)(nil)

// Rewind restarts the sequence from the first word.
func (rc *Rom) Rewind() {
	rc.index = 0
}

// Fetch returns the next word, or ErrChannelEmpty once all words are used.
func (rc *Rom) Fetch(addr uint8) (value uint16, err error) {
	if rc.index >= len(rc.Data) {
		err = ErrChannelEmpty
		return
	}

	value = rc.Data[rc.index]
	rc.index++
	return
}

// Remaining returns the number of words not yet fetched.
func (rc *Rom) Remaining() int {
	return len(rc.Data) - rc.index
}

// Store always fails; a Rom cannot be written.
func (rc *Rom) Store(addr uint8, value uint16) error {
	return ErrChannelFull
}
