package disassembler

import (
	"fmt"
	"strings"
)

const (
	bytesPerRow = 8
	minStrLen   = 4
)

// isPrintableASCII checks if a byte can sit inside a quoted DB string.
func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7E && b != '\'' && b != '"'
}

// dataRows splits unreached bytes into db rows. Printable runs of at least
// minStrLen bytes become quoted strings.
func dataRows(data []byte, base uint16) []*Instruction {
	var rows []*Instruction
	i := 0
	for i < len(data) {
		end := i
		for end < len(data) && isPrintableASCII(data[end]) {
			end++
		}
		if end-i >= minStrLen {
			rows = append(rows, &Instruction{
				Address: base + uint16(i),
				Bytes:   data[i:end],
				Text:    fmt.Sprintf("db '%s'", data[i:end]),
			})
			i = end
			continue
		}

		// Hex bytes up to the next string or the end of the row.
		start := i
		for i < len(data) && i-start < bytesPerRow {
			if printableRun(data[i:]) >= minStrLen {
				break
			}
			i++
		}
		rows = append(rows, &Instruction{
			Address: base + uint16(start),
			Bytes:   data[start:i],
			Text:    "db " + formatHexBytes(data[start:i]),
		})
	}
	return rows
}

func printableRun(data []byte) int {
	n := 0
	for n < len(data) && isPrintableASCII(data[n]) {
		n++
	}
	return n
}

// formatHexBytes joins bytes as comma-separated hex literals.
func formatHexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, ",")
}
