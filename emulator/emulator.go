package emulator

import (
	"log"
	"slices"

	"github.com/numpad/neumann-vm/cpu"
	"github.com/numpad/neumann-vm/io"
)

const (
	STEP_LIMIT = 65536 // Default number of instructions Run executes.
)

// Emulator state. CPU + program listing + IO channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the loaded image, for line numbers.
	Image    *cpu.Memory  // Memory image installed on Reset.

	Tape io.Tape // Tape IO channel.

	Breakpoints []int      // Addresses that stop Run when reached.
	Condition   *Condition // Stop condition, evaluated after every tick.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Input = &emu.Tape
	emu.Cpu.Output = &emu.Tape

	return
}

// SetProgram installs an assembled program as the image to run.
func (emu *Emulator) SetProgram(prog *cpu.Program) {
	emu.Program = prog
	emu.Image = prog.Image()
}

// SetImage installs a binary memory image, without a listing.
func (emu *Emulator) SetImage(image *cpu.Memory) {
	emu.Program = &cpu.Program{}
	emu.Image = image
}

// Reset the CPU, install the image, and start execution at start.
func (emu *Emulator) Reset(start int) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Tape.Rewind()

	err = emu.Cpu.Load(emu.Image, start)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: start at %02x", start)
	}

	return
}

// LineNo returns the listing line number for the current instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
//
// done is set when the machine can make no further progress: a jump to its
// own address, a breakpoint reached, or the stop condition satisfied.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if emu.Cpu.Pc == pc {
		if emu.Verbose {
			log.Printf("emulator: halt at %02x", pc)
		}
		done = true
		return
	}

	if slices.Contains(emu.Breakpoints, emu.Cpu.Pc) {
		if emu.Verbose {
			log.Printf("emulator: breakpoint at %02x", emu.Cpu.Pc)
		}
		done = true
		return
	}

	if emu.Condition != nil {
		done, err = emu.Condition.Eval(emu.Cpu)
		if err != nil {
			return
		}
	}

	return
}

// Run ticks until done, or until limit instructions have executed.
// A limit of zero or less runs without bound.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		steps++
		if done {
			return
		}
	}

	err = ErrStepLimit
	return
}
