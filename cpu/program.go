package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Statement is a single assembled line of a program listing.
type Statement struct {
	LineNo  int      // Source line number.
	Address uint8    // Memory address the code is placed at.
	Words   []string // Source words, after the address.
	Code    Code     // Assembled word.
}

// Program is an assembled listing, in source order.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
}

// Debug returns the statement that defines the word at addr.
// Later statements override earlier ones at the same address.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n := len(prog.Statements) - 1; n >= 0; n-- {
		if int(prog.Statements[n].Address) == addr {
			dbg = Debug{Statement: &prog.Statements[n]}
			break
		}
	}

	return
}

// Codes iterates over the placed words, in source order.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(addr uint8, code Code) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Code) {
				return
			}
		}
	}
}

// Image returns a memory image with every statement placed.
func (prog *Program) Image() (mem *Memory) {
	mem = NewMemory()
	for addr, code := range prog.Codes() {
		mem.Cell[addr] = uint16(code)
	}

	return
}

// Disassemble renders every non-zero cell of the memory as a listing that
// the Assembler accepts, reproducing the same image.
func Disassemble(mem *Memory) string {
	var text strings.Builder
	for addr, code := range mem.All() {
		if code == 0 {
			continue
		}
		fmt.Fprintf(&text, "%02X:%v\n", addr, code)
	}
	return text.String()
}
