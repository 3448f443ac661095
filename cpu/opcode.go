package cpu

import (
	"fmt"
)

// Opcode selects the operation of an instruction word.
type Opcode uint8

const (
	// data transfer
	OP_NOP = Opcode(0x10) // no operation
	OP_LDM = Opcode(0x11) // acc = [arg]
	OP_LDI = Opcode(0x12) // acc = [[arg]]
	OP_LDA = Opcode(0x18) // acc = arg
	OP_STI = Opcode(0x21) // [[arg]] = acc
	OP_STM = Opcode(0x28) // [arg] = acc

	// arithmetic, logic and shift
	OP_ADD  = Opcode(0x30) // acc = acc + [arg]
	OP_SUB  = Opcode(0x31) // acc = acc - [arg]
	OP_MUL  = Opcode(0x32) // acc = acc * [arg]
	OP_DIV  = Opcode(0x33) // acc = acc / [arg]
	OP_AND  = Opcode(0x34) // acc = acc & [arg]
	OP_OR   = Opcode(0x35) // acc = acc | [arg]
	OP_NOT  = Opcode(0x36) // acc = ~acc
	OP_XOR  = Opcode(0x37) // acc = acc ^ [arg]
	OP_INC  = Opcode(0x38) // acc = acc + 1
	OP_DEC  = Opcode(0x39) // acc = acc - 1
	OP_LEFT = Opcode(0x3c) // acc = acc << arg
	OP_RIGT = Opcode(0x3d) // acc = acc >> arg

	// flow control
	OP_JM  = Opcode(0x41) // jump [arg]
	OP_JA  = Opcode(0x48) // jump arg
	OP_JZM = Opcode(0x51) // if equal: jump [arg]
	OP_JNM = Opcode(0x52) // if not equal: jump [arg]
	OP_JLM = Opcode(0x53) // if less or equal: jump [arg]
	OP_JZA = Opcode(0x58) // if equal: jump arg
	OP_JNA = Opcode(0x59) // if not equal: jump arg
	OP_JLA = Opcode(0x5a) // if less or equal: jump arg

	// io
	OP_IN  = Opcode(0x61) // [arg] = fetch
	OP_OUT = Opcode(0x71) // store [arg]
)

// CodeClass is the group an opcode belongs to.
type CodeClass int

const (
	OP_CLASS_INVALID  = CodeClass(0)
	OP_CLASS_TRANSFER = CodeClass(1)
	OP_CLASS_ALU      = CodeClass(2)
	OP_CLASS_FLOW     = CodeClass(3)
	OP_CLASS_IO       = CodeClass(4)
)

// opcodeMnemonic maps opcodes to their assembler names.
var opcodeMnemonic = map[Opcode]string{
	OP_NOP:  "NOP",
	OP_LDM:  "LDM",
	OP_LDI:  "LDI",
	OP_LDA:  "LDA",
	OP_STI:  "STI",
	OP_STM:  "STM",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_NOT:  "NOT",
	OP_XOR:  "XOR",
	OP_INC:  "INC",
	OP_DEC:  "DEC",
	OP_LEFT: "LEFT",
	OP_RIGT: "RIGT",
	OP_JM:   "JM",
	OP_JA:   "JA",
	OP_JZM:  "JZM",
	OP_JNM:  "JNM",
	OP_JLM:  "JLM",
	OP_JZA:  "JZA",
	OP_JNA:  "JNA",
	OP_JLA:  "JLA",
	OP_IN:   "IN",
	OP_OUT:  "OUT",
}

// mnemonicMap maps assembler names to opcodes.
var mnemonicMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(opcodeMnemonic))
	for op, name := range opcodeMnemonic {
		mnemonics[name] = op
	}
	return mnemonics
}()

// LookupMnemonic returns the opcode for an exact, case-sensitive mnemonic.
func LookupMnemonic(name string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[name]
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeMnemonic[op]
	return ok
}

// Class returns the instruction group of the opcode.
func (op Opcode) Class() CodeClass {
	if !op.Valid() {
		return OP_CLASS_INVALID
	}

	switch op >> 4 {
	case 0x1, 0x2:
		return OP_CLASS_TRANSFER
	case 0x3:
		return OP_CLASS_ALU
	case 0x4, 0x5:
		return OP_CLASS_FLOW
	default:
		return OP_CLASS_IO
	}
}

// HasOperand returns false for opcodes that ignore their operand.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_NOP, OP_NOT, OP_INC, OP_DEC:
		return false
	}
	return true
}

func (op Opcode) String() string {
	name, ok := opcodeMnemonic[op]
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return name
}

// Code is a single 16-bit instruction or data word.
// The opcode is in the high byte, the operand in the low byte.
type Code uint16

// MakeCode packs an opcode and operand into an instruction word.
func MakeCode(op Opcode, arg uint8) Code {
	return Code(uint16(op)<<8 | uint16(arg))
}

// Decode splits the instruction word. Any word decodes, though the opcode
// may not be Valid().
func (code Code) Decode() (op Opcode, arg uint8) {
	word := uint16(code)
	op = Opcode((word >> 8) & 0xff)
	arg = uint8(word & 0xff)
	return
}

// Opcode returns the opcode of the instruction word.
func (code Code) Opcode() Opcode {
	op, _ := code.Decode()
	return op
}

// Operand returns the operand of the instruction word.
func (code Code) Operand() uint8 {
	_, arg := code.Decode()
	return arg
}

// String returns the assembler form of the word, without address.
// Words that are not instructions are rendered as .word data.
func (code Code) String() string {
	op, arg := code.Decode()
	if !op.Valid() {
		return fmt.Sprintf(".word %04X", uint16(code))
	}
	if !op.HasOperand() && arg == 0 {
		return op.String()
	}
	return fmt.Sprintf("%v %02X", op, arg)
}
