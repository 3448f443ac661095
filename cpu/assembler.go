package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Assembler turns a program listing into memory words.
//
// Each line is 'ADDRESS:MNEMONIC OPERAND', with the address and operand as
// one hexadecimal byte each. A line may instead place a raw data word with
// 'ADDRESS:.word XXXX'. Text after ';' is a comment. Lines may appear in
// any order; a later line at the same address replaces an earlier one.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Statements []Statement // List of generated statements.
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statements = asm.Statements[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(text_comment)
		if len(line) == 0 {
			continue
		}

		var stmt Statement
		stmt, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		asm.Statements = append(asm.Statements, stmt)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statements),
	}

	return
}

// Assemble parses a listing straight into a memory image.
func (asm *Assembler) Assemble(input io.Reader) (mem *Memory, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	mem = prog.Image()
	return
}

// parseLine parses a single, non-empty line as a statement.
func (asm *Assembler) parseLine(line string, lineno int) (stmt Statement, err error) {
	addr_text, rest, ok := strings.Cut(line, ":")
	if !ok {
		err = ErrAddressMissing
		return
	}

	addr, err := parseByte(strings.TrimSpace(addr_text))
	if err != nil {
		return
	}

	words := strings.Fields(rest)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}
	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	stmt = Statement{LineNo: lineno, Address: addr, Words: words}

	// .word XXXX
	if words[0] == ".word" {
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		var value uint16
		value, err = parseWord(words[1])
		if err != nil {
			return
		}
		stmt.Code = Code(value)
		return
	}

	op, ok := LookupMnemonic(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	var arg uint8
	switch {
	case len(words) == 2:
		arg, err = parseByte(words[1])
		if err != nil {
			return
		}
	case op.HasOperand():
		err = ErrOperandMissing
		return
	}

	stmt.Code = MakeCode(op, arg)
	return
}

// parseByte parses one or two hexadecimal digits.
func parseByte(word string) (value uint8, err error) {
	if len(word) == 0 || len(word) > 2 {
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseUint(word, 16, 8)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// parseWord parses up to four hexadecimal digits.
func parseWord(word string) (value uint16, err error) {
	if len(word) == 0 || len(word) > 4 {
		err = ErrParseWord(word)
		return
	}

	v64, err := strconv.ParseUint(word, 16, 16)
	if err != nil {
		err = ErrParseWord(word)
		return
	}

	value = uint16(v64)
	return
}
