package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/msa86/assembler"
	"github.com/Urethramancer/msa86/internal/logging"
	"github.com/Urethramancer/msa86/output"
)

// Exit codes.
const (
	exitOK = iota
	exitWarnings
	exitErrors
	exitFatal
)

// ErrSource is returned when the source file cannot be read.
var ErrSource = errors.New("cannot read source")

type options struct {
	input     string
	output    string
	format    string
	start     string
	buffer    int
	verbosity int
	passes    int
	maxErrors int
	listing   string
	symbols   bool
}

// exitCode is set by the command and returned to the shell.
var exitCode = exitOK

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitFatal)
	}
	os.Exit(exitCode)
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "asm86 [file.asm]",
		Short: "Two-pass 8086 assembler",
		Long: `asm86 assembles 8086 source into flat binaries, DOS .COM files,
tiny single-segment .EXE files and overlays with an export table.`,
		Example: `
# Build a .COM file
asm86 hello.asm -o hello.com

# Build a raw image for a boot sector
asm86 boot.asm -f bin -s 0x7c00
  `,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			code, err := run(opts, logging.New(cmd.ErrOrStderr()), cmd.OutOrStdout())
			exitCode = code
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default: input name with the format's extension)")
	flags.StringVarP(&opts.format, "format", "f", "com", "Output format: bin, com, texe, ovl")
	flags.StringVarP(&opts.start, "start", "s", "0x100", "Origin for bin output")
	flags.IntVarP(&opts.buffer, "buffer", "b", 0x1000, "Output buffer size in bytes")
	flags.IntVarP(&opts.verbosity, "messages", "m", 2, "Message level: 0 errors, 1 warnings, 2 all")
	flags.IntVarP(&opts.passes, "passes", "p", 2, "Number of passes")
	flags.IntVar(&opts.maxErrors, "max-errors", 0, "Stop a pass after this many errors (0: no limit)")
	flags.StringVar(&opts.listing, "listing", "", "Write a listing to this file")
	flags.BoolVar(&opts.symbols, "symbols", false, "Print the symbol table")
	return cmd
}

// outputName derives the default output file from the input.
func outputName(input string, f output.Format) string {
	ext := "." + f.String()
	if f == output.FormatTEXE {
		ext = ".exe"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// parseNumber reads a flag value in the notation the source accepts.
func parseNumber(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return uint16(v), nil
}

// run assembles one file and returns the exit code. Errors are fatal.
func run(opts options, lg *log.Logger, stdout io.Writer) (int, error) {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return exitFatal, err
	}
	start, err := parseNumber(opts.start)
	if err != nil {
		return exitFatal, err
	}

	src, err := os.ReadFile(opts.input)
	if err != nil {
		return exitFatal, fmt.Errorf("%w: %w", ErrSource, err)
	}

	cfg := assembler.Config{
		Origin:     format.Origin(start),
		Passes:     opts.passes,
		BufferSize: opts.buffer,
		Verbosity:  opts.verbosity,
		MaxErrors:  opts.maxErrors,
		Preamble:   format.Preamble(),
		Listing:    opts.listing != "",
	}
	if logging.IsDebug() {
		cfg.Logger = lg
	}
	s, err := assembler.New(cfg)
	if err != nil {
		return exitFatal, err
	}

	name := opts.output
	if name == "" {
		name = outputName(opts.input, format)
	}
	f, err := os.Create(name)
	if err != nil {
		return exitFatal, err
	}

	res, code, err := build(s, string(src), f, format, lg, opts.input)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil || code == exitErrors {
		os.Remove(name)
	}
	if err != nil {
		return exitFatal, err
	}
	if code != exitErrors {
		lg.Debug("output written", "file", name, "format", format, "bytes", res.Size)
	}

	if opts.listing != "" {
		if err := writeListing(opts.listing, res); err != nil {
			return exitFatal, err
		}
	}
	if opts.symbols {
		printSymbols(stdout, res.Symbols)
	}
	return code, nil
}

// build streams the final pass into f and finishes the file layout.
func build(s *assembler.Session, src string, f io.WriteSeeker, format output.Format, lg *log.Logger, file string) (*assembler.Result, int, error) {
	w, err := output.NewWriter(f, format)
	if err != nil {
		return nil, exitFatal, err
	}
	res, err := s.Run(src, w)
	if err != nil {
		return nil, exitFatal, err
	}

	for _, d := range res.Diagnostics {
		switch d.Severity {
		case assembler.SevError:
			lg.Error(d.Text, "file", file, "line", d.Line)
		default:
			lg.Warn(d.Text, "file", file, "line", d.Line)
		}
	}

	errs := res.Errors
	entry, defined := res.EntryPoint, res.EntryDefined
	if !defined {
		entry, defined = format.DefaultEntry()
	}
	for _, problem := range output.CheckEntry(format, entry, defined) {
		lg.Error(problem, "file", file)
		errs++
	}

	var exports []output.Export
	for _, sym := range res.Exports {
		exports = append(exports, output.Export{Name: sym.Name, Offset: uint16(sym.Value)})
	}
	if err := w.Finish(entry, exports); err != nil {
		return nil, exitFatal, err
	}

	switch {
	case errs > 0:
		lg.Error("assembly failed", "file", file, "errors", errs, "warnings", res.Warnings)
		return res, exitErrors, nil
	case res.Warnings > 0:
		return res, exitWarnings, nil
	}
	return res, exitOK, nil
}
