package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/numpad/neumann-vm/io"
)

// Input is the word source for IN.
type Input io.Input

// Output is the word sink for OUT.
type Output io.Output

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Program and data memory.
	Pc     int    // Program counter.
	Acc    int16  // Accumulator, two's complement.
	Flag   Flag   // Comparison flag.

	Ticks int // Executed instruction counter.

	Input  Input  // Source for IN.
	Output Output // Sink for OUT.

	next  int   // Program counter after the current instruction.
	fault error // Set once a fault stops the machine.
}

// NewCpu creates a new CPU with zeroed memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset the CPU state.
// - Zeros the memory, accumulator and program counter.
// - Clears the comparison flag to uninitialized.
// - Zeros statistics counters and clears any fault.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Pc = 0
	cpu.Acc = 0
	cpu.Flag = FLAG_UNINITIALIZED
	cpu.Ticks = 0
	cpu.next = 0
	cpu.fault = nil
}

// Load resets the CPU, installs a copy of the image, and sets the program
// counter to start.
func (cpu *Cpu) Load(image *Memory, start int) (err error) {
	cpu.Reset()

	if start < 0 || start >= MEMORY_SIZE {
		err = ErrAddress(start)
		return
	}

	if image != nil {
		cpu.Memory = *image
	}
	cpu.Pc = start

	return
}

// Fault returns the error that stopped the machine, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg, value := range cpu.Registers() {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", value)
		case "acc":
			strval = fmt.Sprintf("%04X (%d)", uint16(value), value)
		case "flag":
			strval = Flag(value).String()
		default:
			strval = fmt.Sprintf("%d", value)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Registers iterates over the register names and values.
func (cpu *Cpu) Registers() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		_ = yield("pc", cpu.Pc) &&
			yield("acc", int(cpu.Acc)) &&
			yield("flag", int(cpu.Flag)) &&
			yield("ticks", cpu.Ticks)
	}
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	code = Code(value)
	return
}

// Tick executes a single fetch-decode-execute cycle.
// A faulted CPU refuses to tick until it is reset.
func (cpu *Cpu) Tick() (err error) {
	if cpu.fault != nil {
		err = errors.Join(ErrFaulted, cpu.fault)
		return
	}

	defer func() {
		if err != nil {
			cpu.fault = err
		}
	}()

	code, err := cpu.FetchCode()
	if err != nil {
		err = &ErrFault{Pc: cpu.Pc, Err: err}
		return
	}

	err = cpu.Execute(code)
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: cpu.Pc, Code: code, Err: err}
		}
	}()

	op, arg := code.Decode()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	exec, ok := opTable[op]
	if !ok {
		err = ErrUnknownOpcode
		return
	}

	cpu.next = cpu.Pc + 1

	err = exec(cpu, arg)
	if err != nil {
		return
	}

	if op.Class() == OP_CLASS_ALU {
		cpu.Flag = FlagOf(cpu.Acc)
	}

	// Running off the end of memory is not a wrap.
	if cpu.next >= MEMORY_SIZE {
		err = ErrAddress(cpu.next)
		return
	}

	cpu.Pc = cpu.next
	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("   acc=%04X flag=%v", uint16(cpu.Acc), cpu.Flag)
	}

	return
}

// jump sets the program counter for the next instruction.
func (cpu *Cpu) jump(target int) (err error) {
	if target < 0 || target >= MEMORY_SIZE {
		err = ErrAddress(target)
		return
	}

	cpu.next = target
	return
}

// load reads a memory word as an operand.
func (cpu *Cpu) load(addr int) (value int16, err error) {
	word, err := cpu.Memory.Read(addr)
	value = int16(word)
	return
}

// indirect returns the address stored at addr.
func (cpu *Cpu) indirect(addr int) (target int, err error) {
	word, err := cpu.Memory.Read(addr)
	target = int(word)
	return
}
