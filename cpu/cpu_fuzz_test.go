package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numpad/neumann-vm/io"
)

func FuzzCode(f *testing.F) {
	f.Add(uint8(OP_LDA), uint8(0x05))
	f.Add(uint8(0xff), uint8(0xff))

	f.Fuzz(func(t *testing.T, op uint8, arg uint8) {
		gotOp, gotArg := MakeCode(Opcode(op), arg).Decode()
		if gotOp != Opcode(op) || gotArg != arg {
			t.Fatalf("0x%02x 0x%02x decoded as %v 0x%02x", op, arg, gotOp, gotArg)
		}
	})
}

func FuzzCpu(f *testing.F) {
	for op := range opcodeMnemonic {
		f.Add(uint16(MakeCode(op, 0x80)), uint16(0x0003), int16(-2), uint8(FLAG_EQUAL))
	}
	f.Add(uint16(0), uint16(0x100), int16(0), uint8(FLAG_UNINITIALIZED))

	f.Fuzz(func(t *testing.T, word uint16, cell uint16, acc int16, flag uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.Input = &io.Rom{Data: []uint16{0x1234}}
		cpu.Output = &io.Temporary{}
		cpu.Pc = 0x10
		cpu.Acc = acc
		cpu.Flag = Flag(flag % 5)
		op, arg := Code(word).Decode()
		if arg == 0x10 {
			t.Skip("operand overlaps the instruction")
		}
		cpu.Memory.Cell[0x10] = word
		cpu.Memory.Cell[arg] = cell

		err := cpu.Tick()
		if err != nil {
			known := errors.Is(err, ErrUnknownOpcode) ||
				errors.Is(err, ErrArithmetic) ||
				errors.Is(err, ErrOutOfBounds)
			assert.True(known, "%v: %v", Code(word), err)
			assert.Equal(0x10, cpu.Pc)
			assert.Equal(0, cpu.Ticks)
			return
		}

		assert.True(op.Valid())
		assert.Equal(1, cpu.Ticks)
		assert.True(cpu.Pc >= 0 && cpu.Pc < MEMORY_SIZE)
		if op.Class() != OP_CLASS_FLOW {
			assert.Equal(0x11, cpu.Pc)
		}
		if op.Class() == OP_CLASS_ALU {
			assert.Equal(FlagOf(cpu.Acc), cpu.Flag)
		} else {
			assert.Equal(Flag(flag%5), cpu.Flag)
		}
	})
}
