package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Urethramancer/msa86/assembler"
	"github.com/Urethramancer/msa86/disassembler"
)

// bytesColumn is how many bytes fit in the listing's hex column.
const bytesColumn = 6

// formatListing renders one row per source line: line number, address,
// bytes and source. Instruction rows also show how the bytes decode.
func formatListing(w io.Writer, lines []assembler.ListingLine) {
	for _, l := range lines {
		hex := fmt.Sprintf("% X", l.Bytes)
		if len(l.Bytes) > bytesColumn {
			hex = fmt.Sprintf("% X+", l.Bytes[:bytesColumn])
		}

		source := strings.TrimRight(l.Source, " \t")
		if l.Code && len(l.Bytes) > 0 {
			var decoded []string
			for _, in := range disassembler.DecodeLinear(l.Bytes, l.Address) {
				decoded = append(decoded, in.Text)
			}
			fmt.Fprintf(w, "%5d  %04X  %-19s %-40s ; %s\n", l.Line, l.Address, hex, source, strings.Join(decoded, " / "))
			continue
		}
		fmt.Fprintf(w, "%5d  %04X  %-19s %s\n", l.Line, l.Address, hex, source)
	}
}

func writeListing(name string, res *assembler.Result) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	formatListing(f, res.Lines)
	return f.Close()
}

// printSymbols writes the symbol table in definition order.
func printSymbols(w io.Writer, symbols []assembler.Symbol) {
	for _, sym := range symbols {
		mark := ""
		if sym.Exported {
			mark = " export"
		}
		fmt.Fprintf(w, "%-16s %-6s %04X%s\n", sym.Name, sym.Kind, uint16(sym.Value), mark)
	}
}
