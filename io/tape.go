package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/numpad/neumann-vm/translate"
)

// Tape provides console I/O as hexadecimal text.
// It wraps an io.Reader for input and io.Writer for output.
//
// Input words are whitespace separated hexadecimal numbers, with an
// optional 0x prefix. Output words are written one per line as
// '>> [A0] = 0x5'.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt bool // If set, '<< [A0] = ' is written before each input is read.

	reader *bufio.Reader
	source io.Reader
}

var _ Channel = (*Tape)(nil)

// NewConsole returns a tape on stdin/stdout, prompting only when stdin
// is an interactive terminal.
func NewConsole() *Tape {
	return &Tape{
		Input:  os.Stdin,
		Output: os.Stdout,
		Prompt: IsTerminal(os.Stdin),
	}
}

// IsTerminal returns true if the reader is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Rewind restarts the tape. The underlying streams are not seekable, so
// input already buffered from an unchanged Input is kept for the next Fetch.
// Assigning a new Input drops the buffer.
func (tc *Tape) Rewind() {
	if tc.source != tc.Input {
		tc.reader = nil
		tc.source = nil
	}
}

// token reads the next whitespace delimited word of input.
func (tc *Tape) token() (word string, err error) {
	if tc.Input == nil {
		err = ErrTapeInput
		return
	}

	if tc.reader == nil || tc.source != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}

	var text strings.Builder
	for {
		var c byte
		c, err = tc.reader.ReadByte()
		if err != nil {
			if err == io.EOF && text.Len() > 0 {
				err = nil
				break
			}
			return
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if text.Len() > 0 {
				break
			}
			continue
		}
		text.WriteByte(c)
	}

	word = text.String()
	return
}

// Fetch reads the next hexadecimal word from the input.
func (tc *Tape) Fetch(addr uint8) (value uint16, err error) {
	if tc.Prompt && tc.Output != nil {
		_, err = translate.Fprintf(tc.Output, "<< [%X] = ", addr)
		if err != nil {
			return
		}
	}

	word, err := tc.token()
	if err != nil {
		return
	}

	value, err = ParseWord(word)
	return
}

// Store writes the word, and its source address, as a line of output.
func (tc *Tape) Store(addr uint8, value uint16) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = translate.Fprintf(tc.Output, ">> [%X] = 0x%X\n", addr, value)
	return
}

// ParseWord parses a hexadecimal word, with an optional 0x prefix.
func ParseWord(word string) (value uint16, err error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(word, "0x"), "0X")
	v64, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		err = ErrParseWord(word)
		return
	}

	value = uint16(v64)
	return
}
