package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numpad/neumann-vm/emulator"
)

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word string
		addr int
		ok   bool
	}){
		{"00", 0x00, true},
		{"a5", 0xa5, true},
		{"0xFF", 0xff, true},
		{" 7 ", 0x07, true},
		{"100", 0, false},
		{"zz", 0, false},
		{"", 0, false},
	}

	for _, entry := range table {
		addr, err := parseAddress(entry.word)
		if entry.ok {
			assert.NoError(err, entry.word)
			assert.Equal(entry.addr, addr, entry.word)
		} else {
			assert.Error(err, entry.word)
		}
	}
}

func TestHexList(t *testing.T) {
	assert := assert.New(t)

	var hl hexList
	assert.NoError(hl.Set("a0,3"))
	assert.NoError(hl.Set("ff"))
	assert.Equal(hexList{0xa0, 0x03, 0xff}, hl)
	assert.Equal("A0,03,FF", hl.String())

	assert.Error(hl.Set("1,fff"))
}

func TestParseArgs(t *testing.T) {
	assert := assert.New(t)

	c := parseArgs([]string{"assemble", "prog.asm"})
	assert.Equal("assemble", c.Command)
	assert.Equal("prog.asm", c.Input)
	assert.Equal("prog.bin", c.Output)

	c = parseArgs([]string{"assemble", "-v", "prog.asm", "out.img"})
	assert.True(c.Verbose)
	assert.Equal("out.img", c.Output)

	c = parseArgs([]string{"run", "-start", "a0", "-break", "a2,a4", "-until", "acc > 3", "prog.bin"})
	assert.Equal("run", c.Command)
	assert.Equal(0xa0, c.Start)
	assert.Equal([]int{0xa2, 0xa4}, c.Breakpoints)
	assert.Equal("acc > 3", c.Until)
	assert.Equal(emulator.STEP_LIMIT, c.Steps)
	assert.Equal("-", c.TapeInput)
	assert.Equal("-", c.TapeOutput)

	c = parseArgs([]string{"list", "prog.bin"})
	assert.Equal("prog.bin", c.Input)
	assert.Equal(0, c.Start)
}

func TestOutputPath(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		args   []string
		output string
		err    error
	}){
		{[]string{"prog.asm"}, "prog.bin", nil},
		{[]string{"dir/prog"}, "dir/prog.bin", nil},
		{[]string{"prog.asm", "out.img"}, "out.img", nil},
		{[]string{"prog.bin"}, "", ErrOutputIsInput},
		{[]string{"prog.asm", "./prog.asm"}, "", ErrOutputIsInput},
	}

	for _, entry := range table {
		output, err := outputPath(entry.args)
		assert.Equal(entry.err, err, entry.args)
		assert.Equal(entry.output, output, entry.args)
	}
}

func TestIsListing(t *testing.T) {
	assert := assert.New(t)

	assert.True(isListing("prog.asm"))
	assert.True(isListing("PROG.S"))
	assert.True(isListing("notes.txt"))
	assert.False(isListing("prog.bin"))
	assert.False(isListing("prog"))
}
