package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/msa86/disassembler"
	"github.com/Urethramancer/msa86/internal/logging"
	"github.com/Urethramancer/msa86/output"
)

type options struct {
	input  string
	output string
	origin string
	linear bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "dis86 <inputfile> [outputfile]",
		Short: "8086 disassembler",
		Long: `dis86 disassembles flat binaries and .COM files into source that asm86
can assemble again. MZ files have their header skipped.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			if len(args) == 2 {
				opts.output = args[1]
			}
			return run(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.origin, "origin", "s", "0x100", "Load address of the first byte")
	cmd.Flags().BoolVarP(&opts.linear, "linear", "l", false, "Decode every byte in order instead of following jumps")
	return cmd
}

func run(opts options, stdout io.Writer) error {
	lg := logging.New(os.Stderr)

	origin, err := strconv.ParseUint(opts.origin, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid origin %q: %w", opts.origin, err)
	}

	code, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	if len(code) >= output.HeaderSize && code[0] == 'M' && code[1] == 'Z' {
		lg.Debug("skipping MZ header", "file", opts.input)
		code = code[output.HeaderSize:]
		origin = 0
	}

	text, err := disassemble(code, uint16(origin), opts.linear)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(stdout, text)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	lg.Info("disassembly written", "file", opts.output)
	return nil
}

func disassemble(code []byte, origin uint16, linear bool) (string, error) {
	if !linear {
		return disassembler.Disassemble(code, origin)
	}

	var out strings.Builder
	for _, in := range disassembler.DecodeLinear(code, origin) {
		fmt.Fprintf(&out, "    %-32s ; %04X: % X\n", in.Text, in.Address, in.Bytes)
	}
	return out.String(), nil
}
