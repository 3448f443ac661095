// Package cpu implements the accumulator machine and assembler for the
// neumann system.
//
// The machine consists of 256 words of memory shared by instructions and
// data, a 16-bit signed accumulator, a program counter, and a comparison
// flag set by every arithmetic, logic or shift instruction. Instructions
// are one word: an 8-bit opcode in the high byte and an 8-bit operand in
// the low byte.
//
// The assembler translates a listing of 'ADDRESS:MNEMONIC OPERAND' lines
// into a memory image, which can be stored as a 512 byte big-endian file.
package cpu
