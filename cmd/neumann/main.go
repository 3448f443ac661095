package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/numpad/neumann-vm/cpu"
	"github.com/numpad/neumann-vm/emulator"
	"github.com/numpad/neumann-vm/io"
)

func main() {
	c := parseArgs(os.Args[1:])

	var err error
	switch c.Command {
	case "assemble":
		err = assemble(c)
	case "list":
		err = list(c)
	case "run":
		err = run(c)
	}
	if err != nil {
		log.Fatalf("%v: %v", c.Input, err)
	}
}

// isListing returns true for files that hold assembler text.
func isListing(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asm", ".s", ".txt":
		return true
	}
	return false
}

// parseListing assembles the listing file.
func parseListing(path string, verbose bool) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err = asm.Parse(inf)
	return
}

// loadImage reads a binary memory image file.
func loadImage(path string) (image *cpu.Memory, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	image = cpu.NewMemory()
	err = image.UnmarshalBinary(data)
	if err != nil {
		err = pkgerrors.Wrapf(err, "load %v", path)
	}
	return
}

// saveImage writes a binary memory image file.
func saveImage(path string, image *cpu.Memory) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	_, err = image.WriteTo(ouf)
	err = errors.Join(err, ouf.Close())
	if err != nil {
		err = pkgerrors.Wrapf(err, "save %v", path)
	}
	return
}

func assemble(c *Config) (err error) {
	prog, err := parseListing(c.Input, c.Verbose)
	if err != nil {
		return
	}

	err = saveImage(c.Output, prog.Image())
	if err != nil {
		return
	}

	if c.Verbose {
		log.Printf("%v: %d statements, wrote %v", c.Input, len(prog.Statements), c.Output)
	}
	return
}

func list(c *Config) (err error) {
	image, err := loadImage(c.Input)
	if err != nil {
		return
	}

	fmt.Print(cpu.Disassemble(image))
	return
}

func run(c *Config) (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = c.Verbose
	emu.Breakpoints = c.Breakpoints

	if isListing(c.Input) {
		var prog *cpu.Program
		prog, err = parseListing(c.Input, c.Verbose)
		if err != nil {
			return
		}
		emu.SetProgram(prog)
	} else {
		var image *cpu.Memory
		image, err = loadImage(c.Input)
		if err != nil {
			return
		}
		emu.SetImage(image)
	}

	if len(c.Until) != 0 {
		emu.Condition, err = emulator.NewCondition(c.Until)
		if err != nil {
			return pkgerrors.Wrapf(err, "-until")
		}
	}

	if c.TapeInput == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(c.TapeInput)
		if err != nil {
			return pkgerrors.Wrapf(err, "tape input")
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if c.TapeOutput == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(c.TapeOutput)
		if err != nil {
			return pkgerrors.Wrapf(err, "tape output")
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}
	emu.Tape.Prompt = io.IsTerminal(emu.Tape.Input)

	err = emu.Reset(c.Start)
	if err != nil {
		return
	}

	steps, err := emu.Run(c.Steps)
	if errors.Is(err, emulator.ErrStepLimit) {
		log.Printf("%v: stopped after %d steps", c.Input, steps)
		err = nil
	}
	if err != nil {
		if c.Verbose {
			log.Print(emu.Cpu.String())
		}
		return
	}

	if c.Verbose {
		log.Printf("%v: %d steps\n%v", c.Input, steps, emu.Cpu.String())
	}

	if len(c.Dump) != 0 {
		err = saveImage(c.Dump, &emu.Cpu.Memory)
	}

	return
}
