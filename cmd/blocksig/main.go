// blocksig writes the block checksum signature of a file: one 4-byte
// little-endian CRC-32 record per fixed-size block of the input.
//
// Usage:
//
//	blocksig -i INPUT -o OUTPUT [--block-size SIZE] [-j N]
//	blocksig INPUT OUTPUT [BLOCK-SIZE]
//
// SIZE is a byte count with an optional 1024-based k/m/g suffix
// (default 1m). Jobs default to the hardware parallelism plus one.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/dacapoday/blocksig/internal/units"
	"github.com/dacapoday/blocksig/signature"
)

const defaultBlockSize = 1 << 20

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	flagSet := newFlagSet(&opts)
	flagSet.SetOutput(os.Stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blocksig [options...] [INPUT OUTPUT [BLOCK-SIZE]]\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		// pflag has already reported the error and usage
		return 1
	}

	if err := applyPositionals(flagSet, &opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flagSet.Usage()
		return 1
	}

	if opts.inputPath == "" || opts.outputPath == "" {
		fmt.Fprintln(os.Stderr, "error: input and output files are required")
		flagSet.Usage()
		return 1
	}

	blockSize, err := units.ParseSize(opts.blockSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: block size: %v\n", err)
		return 1
	}

	if err := generate(opts.inputPath, opts.outputPath, blockSize, opts.jobs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the parsed command-line options.
type options struct {
	inputPath  string
	outputPath string
	blockSize  string
	jobs       int
}

func newFlagSet(options *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("blocksig", pflag.ContinueOnError)
	flagSet.StringVarP(&options.inputPath, "input", "i", "", "input file")
	flagSet.StringVarP(&options.outputPath, "output", "o", "", "output file")
	flagSet.StringVar(&options.blockSize, "block-size", units.FormatSize(defaultBlockSize), "block size in bytes, k/m/g suffix allowed")
	flagSet.IntVarP(&options.jobs, "jobs", "j", runtime.NumCPU()+1, "number of concurrent jobs")
	return flagSet
}

// applyPositionals fills options not given as flags from the
// positional arguments, in the order INPUT OUTPUT BLOCK-SIZE. Giving
// the same option both ways is rejected, like a repeated flag.
func applyPositionals(flagSet *pflag.FlagSet, options *options) error {
	targets := []struct {
		name  string
		value *string
	}{
		{"input", &options.inputPath},
		{"output", &options.outputPath},
		{"block-size", &options.blockSize},
	}

	for i, positional := range flagSet.Args() {
		if i >= len(targets) {
			return fmt.Errorf("unexpected argument %q", positional)
		}
		if flagSet.Changed(targets[i].name) {
			return fmt.Errorf("option --%s given both as a flag and positionally", targets[i].name)
		}
		*targets[i].value = positional
	}
	return nil
}

func generate(inputPath, outputPath string, blockSize int64, jobs int) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}

	if err := signature.Generate(input, output, blockSize, jobs); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}
