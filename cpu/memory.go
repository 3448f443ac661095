package cpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

const (
	MEMORY_SIZE = 256             // Words of memory, shared by code and data.
	IMAGE_SIZE  = MEMORY_SIZE * 2 // Bytes in a binary memory image.
)

// Memory is the word store of the machine. Instructions and data share it.
type Memory struct {
	Cell [MEMORY_SIZE]uint16
}

// NewMemory returns a zeroed memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the word at addr.
func (mem *Memory) Read(addr int) (value uint16, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
		return
	}

	value = mem.Cell[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint16) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
		return
	}

	mem.Cell[addr] = value
	return
}

// Reset zeros all cells.
func (mem *Memory) Reset() {
	clear(mem.Cell[:])
}

// All iterates over every cell, in address order.
func (mem *Memory) All() iter.Seq2[int, Code] {
	return func(yield func(addr int, code Code) bool) {
		for addr, value := range mem.Cell {
			if !yield(addr, Code(value)) {
				return
			}
		}
	}
}

// String returns a hex dump, eight words per line.
func (mem *Memory) String() (text string) {
	for addr := 0; addr < MEMORY_SIZE; addr += 8 {
		text += fmt.Sprintf("%02X:", addr)
		for _, value := range mem.Cell[addr : addr+8] {
			text += fmt.Sprintf(" %04X", value)
		}
		text += "\n"
	}
	return
}

// MarshalBinary packs the memory as IMAGE_SIZE bytes, big-endian words.
func (mem *Memory) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	buf.Grow(IMAGE_SIZE)

	err = struc.PackWithOrder(&buf, mem, binary.BigEndian)
	if err != nil {
		err = errors.Wrapf(err, "image pack")
		return
	}

	data = buf.Bytes()
	return
}

// UnmarshalBinary replaces the memory contents with a binary image.
// The image must be exactly IMAGE_SIZE bytes.
func (mem *Memory) UnmarshalBinary(data []byte) (err error) {
	if len(data) != IMAGE_SIZE {
		err = errors.Wrapf(ErrImageSize, "%d bytes, expected %d", len(data), IMAGE_SIZE)
		return
	}

	var image Memory
	err = struc.UnpackWithOrder(bytes.NewReader(data), &image, binary.BigEndian)
	if err != nil {
		err = errors.Wrapf(err, "image unpack")
		return
	}

	*mem = image
	return
}

// WriteTo writes the binary image to w.
func (mem *Memory) WriteTo(w io.Writer) (n int64, err error) {
	data, err := mem.MarshalBinary()
	if err != nil {
		return
	}

	wrote, err := w.Write(data)
	n = int64(wrote)
	return
}

// ReadFrom reads a binary image from r, until EOF.
func (mem *Memory) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(io.LimitReader(r, IMAGE_SIZE+1))
	n = int64(len(data))
	if err != nil {
		return
	}

	err = mem.UnmarshalBinary(data)
	return
}
