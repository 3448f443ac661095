package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/numpad/neumann-vm/emulator"
	"github.com/numpad/neumann-vm/translate"
)

var f = translate.From

var (
	ErrOutputIsInput = errors.New(f("output would overwrite the input"))
)

// Config defines program configuration.
type Config struct {
	Command string // Subcommand: help, assemble, run or list.
	Input   string // Path to the listing or image to read.
	Output  string // Path to write the assembled image to.
	Verbose bool   // Enable verbose logging.

	Start       int      // Address execution starts at.
	Steps       int      // Instruction limit, zero for unbounded.
	Breakpoints []int    // Addresses that stop the run.
	Until       string   // Starlark stop condition.
	TapeInput   string   // IN source, '-' for stdin.
	TapeOutput  string   // OUT sink, '-' for stdout.
	Dump        string   // Path to write the final memory image to.
	Args        []string // Remaining positional arguments.
}

const usage = `usage: %[1]s <command> [options] <file>

commands:
  help                    show this text
  assemble <in> [out]     assemble a listing into a binary image
  run <in>                run a binary image (or a .asm listing)
  list <in>               disassemble a binary image
`

func printUsage() {
	fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
}

// hexList is a comma separated list of hexadecimal addresses.
type hexList []int

func (hl *hexList) String() string {
	var words []string
	for _, addr := range *hl {
		words = append(words, fmt.Sprintf("%02X", addr))
	}
	return strings.Join(words, ",")
}

func (hl *hexList) Set(value string) error {
	for _, word := range strings.Split(value, ",") {
		addr, err := parseAddress(word)
		if err != nil {
			return err
		}
		*hl = append(*hl, addr)
	}
	return nil
}

func parseAddress(word string) (addr int, err error) {
	v64, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(word), "0x"), 16, 8)
	if err != nil {
		return
	}
	addr = int(v64)
	return
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs(args []string) *Config {
	var c Config
	c.Steps = emulator.STEP_LIMIT
	c.TapeInput = "-"
	c.TapeOutput = "-"

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c.Command = args[0]

	fs := flag.NewFlagSet(c.Command, flag.ExitOnError)
	fs.Usage = printUsage
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Verbose mode")

	var start string
	var breakpoints hexList
	switch c.Command {
	case "help", "-h", "--help":
		printUsage()
		os.Exit(0)
	case "assemble", "list":
	case "run":
		fs.StringVar(&start, "start", "00", "Start address (hex)")
		fs.IntVar(&c.Steps, "steps", c.Steps, "Instruction limit, 0 for unbounded")
		fs.Var(&breakpoints, "break", "Breakpoint addresses (hex, comma separated)")
		fs.StringVar(&c.Until, "until", "", "Stop condition, e.g. 'pc == 0xa5'")
		fs.StringVar(&c.TapeInput, "i", c.TapeInput, "Tape input")
		fs.StringVar(&c.TapeOutput, "o", c.TapeOutput, "Tape output")
		fs.StringVar(&c.Dump, "dump", "", "Write final memory image to file")
	default:
		fmt.Fprintf(os.Stderr, "%v: unknown command '%v'\n", filepath.Base(os.Args[0]), c.Command)
		printUsage()
		os.Exit(1)
	}

	fs.Parse(args[1:])
	c.Args = fs.Args()
	c.Breakpoints = breakpoints

	if start != "" {
		var err error
		c.Start, err = parseAddress(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-start %v: not a hexadecimal address\n", start)
			os.Exit(1)
		}
	}

	maxArgs := 1
	if c.Command == "assemble" {
		maxArgs = 2
	}
	if len(c.Args) == 0 || len(c.Args) > maxArgs {
		printUsage()
		os.Exit(1)
	}

	c.Input = c.Args[0]
	if c.Command == "assemble" {
		var err error
		c.Output, err = outputPath(c.Args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", c.Input, err)
			os.Exit(1)
		}
	}

	return &c
}

// outputPath returns the image path for 'assemble <in> [out]'.
// Without an explicit output the input extension is replaced by '.bin'.
func outputPath(args []string) (output string, err error) {
	input := args[0]
	if len(args) > 1 {
		output = args[1]
	} else {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}

	if filepath.Clean(output) == filepath.Clean(input) {
		output = ""
		err = ErrOutputIsInput
	}

	return
}
