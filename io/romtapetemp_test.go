package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Fetch(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint16{0x0001, 0x8000, 0xffff}}
	assert.Equal(3, rom.Remaining())

	for _, expected := range rom.Data {
		value, err := rom.Fetch(0xa0)
		assert.NoError(err)
		assert.Equal(expected, value)
	}
	assert.Equal(0, rom.Remaining())

	_, err := rom.Fetch(0xa0)
	assert.Equal(ErrChannelEmpty, err)

	rom.Rewind()
	value, err := rom.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(0x0001), value)

	assert.Equal(ErrChannelFull, rom.Store(0, 1))
}

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}

	_, err := temp.Fetch(0)
	assert.Equal(ErrChannelEmpty, err)

	assert.NoError(temp.Store(0x10, 0x1111))
	assert.NoError(temp.Store(0x11, 0x2222))
	assert.Equal(ErrChannelFull, temp.Store(0x12, 0x3333))

	assert.Equal([]Record{{0x10, 0x1111}, {0x11, 0x2222}}, temp.Data)
	assert.Equal([]uint16{0x1111, 0x2222}, temp.Values())

	value, err := temp.Fetch(0x20)
	assert.NoError(err)
	assert.Equal(uint16(0x1111), value)
	value, err = temp.Fetch(0x20)
	assert.NoError(err)
	assert.Equal(uint16(0x2222), value)
	_, err = temp.Fetch(0x20)
	assert.Equal(ErrChannelEmpty, err)

	temp.Rewind()
	assert.Empty(temp.Data)
	assert.Equal(0, temp.ReadIndex)
}

func TestTemporary_Unbounded(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{}
	for n := range 1000 {
		assert.NoError(temp.Store(uint8(n), uint16(n)))
	}
	assert.Len(temp.Data, 1000)
}

func TestTape_Fetch(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("14  0x1F\n\tffff\r\nBEEF")}

	for _, expected := range []uint16{0x14, 0x1f, 0xffff, 0xbeef} {
		value, err := tape.Fetch(0xa0)
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := tape.Fetch(0xa0)
	assert.Error(err)
}

func TestTape_FetchInvalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12345 xyz")}

	_, err := tape.Fetch(0)
	assert.Equal(ErrParseWord("12345"), err)
	_, err = tape.Fetch(0)
	assert.Equal(ErrParseWord("xyz"), err)

	tape = &Tape{}
	_, err = tape.Fetch(0)
	assert.Equal(ErrTapeInput, err)
}

func TestTape_Prompt(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("5\n"),
		Output: output,
		Prompt: true,
	}

	value, err := tape.Fetch(0xa0)
	assert.NoError(err)
	assert.Equal(uint16(5), value)
	assert.Equal("<< [A0] = ", output.String())
}

func TestTape_Store(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Store(0xa0, 0x5))
	assert.NoError(tape.Store(0x0f, 0xbeef))
	assert.Equal(">> [A0] = 0x5\n>> [F] = 0xBEEF\n", output.String())

	tape = &Tape{}
	assert.Equal(ErrTapeOutput, tape.Store(0, 0))
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1 2")}
	value, err := tape.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(1), value)

	// A new input stream replaces the buffered one.
	tape.Input = strings.NewReader("7")
	value, err = tape.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(7), value)

	tape.Rewind()
	_, err = tape.Fetch(0)
	assert.Error(err)
}

func TestTape_RewindKeepsInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1 2 3")}
	value, err := tape.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(1), value)

	// Words read ahead into the buffer survive a rewind.
	tape.Rewind()
	value, err = tape.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(2), value)

	tape.Rewind()
	tape.Rewind()
	value, err = tape.Fetch(0)
	assert.NoError(err)
	assert.Equal(uint16(3), value)
}

func TestIsTerminal(t *testing.T) {
	assert := assert.New(t)

	assert.False(IsTerminal(strings.NewReader("")))
	assert.False(IsTerminal(nil))
}
