package cpu

import (
	"errors"
)

// opExec performs one opcode against the CPU.
// The program counter is advanced by Execute unless the opcode jumps.
type opExec func(cpu *Cpu, arg uint8) error

// opTable dispatches every opcode of the instruction set.
var opTable = map[Opcode]opExec{
	// transfer
	OP_NOP: func(cpu *Cpu, arg uint8) error { return nil },
	OP_LDM: func(cpu *Cpu, arg uint8) (err error) {
		cpu.Acc, err = cpu.load(int(arg))
		return
	},
	OP_LDI: func(cpu *Cpu, arg uint8) (err error) {
		addr, err := cpu.indirect(int(arg))
		if err != nil {
			return
		}
		cpu.Acc, err = cpu.load(addr)
		return
	},
	OP_LDA: func(cpu *Cpu, arg uint8) error {
		cpu.Acc = int16(arg)
		return nil
	},
	OP_STI: func(cpu *Cpu, arg uint8) (err error) {
		addr, err := cpu.indirect(int(arg))
		if err != nil {
			return
		}
		return cpu.Memory.Write(addr, uint16(cpu.Acc))
	},
	OP_STM: func(cpu *Cpu, arg uint8) error {
		return cpu.Memory.Write(int(arg), uint16(cpu.Acc))
	},

	// arithmetic, logic and shift
	OP_ADD: aluMemory(func(acc, value int16) (int16, error) { return acc + value, nil }),
	OP_SUB: aluMemory(func(acc, value int16) (int16, error) { return acc - value, nil }),
	OP_MUL: aluMemory(func(acc, value int16) (int16, error) { return acc * value, nil }),
	OP_DIV: aluMemory(func(acc, value int16) (int16, error) {
		if value == 0 {
			return acc, ErrArithmetic
		}
		return acc / value, nil
	}),
	OP_AND: aluMemory(func(acc, value int16) (int16, error) { return acc & value, nil }),
	OP_OR:  aluMemory(func(acc, value int16) (int16, error) { return acc | value, nil }),
	OP_XOR: aluMemory(func(acc, value int16) (int16, error) { return acc ^ value, nil }),
	OP_NOT: aluImmediate(func(acc int16, _ uint8) int16 { return ^acc }),
	OP_INC: aluImmediate(func(acc int16, _ uint8) int16 { return acc + 1 }),
	OP_DEC: aluImmediate(func(acc int16, _ uint8) int16 { return acc - 1 }),
	// Shifts beyond the word width saturate to 0 (left) or the sign (right).
	OP_LEFT: aluImmediate(func(acc int16, arg uint8) int16 { return acc << arg }),
	OP_RIGT: aluImmediate(func(acc int16, arg uint8) int16 { return acc >> arg }),

	// flow control
	OP_JM:  jumpTo(true),
	OP_JA:  jumpTo(false),
	OP_JZM: jumpIf(FLAG_EQUAL, true),
	OP_JNM: jumpIf(FLAG_NOT_EQUAL, true),
	OP_JLM: jumpIf(FLAG_LESS_EQUAL, true),
	OP_JZA: jumpIf(FLAG_EQUAL, false),
	OP_JNA: jumpIf(FLAG_NOT_EQUAL, false),
	OP_JLA: jumpIf(FLAG_LESS_EQUAL, false),

	// io
	OP_IN: func(cpu *Cpu, arg uint8) (err error) {
		if cpu.Input == nil {
			return errors.Join(ErrIo, ErrChannelNone)
		}
		value, err := cpu.Input.Fetch(arg)
		if err != nil {
			return errors.Join(ErrIo, err)
		}
		return cpu.Memory.Write(int(arg), value)
	},
	OP_OUT: func(cpu *Cpu, arg uint8) (err error) {
		if cpu.Output == nil {
			return errors.Join(ErrIo, ErrChannelNone)
		}
		value, err := cpu.Memory.Read(int(arg))
		if err != nil {
			return
		}
		err = cpu.Output.Store(arg, value)
		if err != nil {
			return errors.Join(ErrIo, err)
		}
		return
	},
}

// aluMemory builds an operation of the accumulator with memory[arg].
func aluMemory(fn func(acc, value int16) (int16, error)) opExec {
	return func(cpu *Cpu, arg uint8) (err error) {
		value, err := cpu.load(int(arg))
		if err != nil {
			return
		}
		acc, err := fn(cpu.Acc, value)
		if err != nil {
			return
		}
		cpu.Acc = acc
		return
	}
}

// aluImmediate builds an operation of the accumulator with the operand itself.
func aluImmediate(fn func(acc int16, arg uint8) int16) opExec {
	return func(cpu *Cpu, arg uint8) error {
		cpu.Acc = fn(cpu.Acc, arg)
		return nil
	}
}

// jumpTo builds an unconditional jump.
// An indirect jump targets memory[arg], a direct jump targets arg.
func jumpTo(indirect bool) opExec {
	return func(cpu *Cpu, arg uint8) (err error) {
		target := int(arg)
		if indirect {
			target, err = cpu.indirect(target)
			if err != nil {
				return
			}
		}

		return cpu.jump(target)
	}
}

// jumpIf builds a jump taken only when the comparison flag matches.
func jumpIf(flag Flag, indirect bool) opExec {
	taken := jumpTo(indirect)
	return func(cpu *Cpu, arg uint8) error {
		if cpu.Flag != flag {
			return nil
		}
		return taken(cpu, arg)
	}
}
