package output

import (
	"strings"

	"github.com/Urethramancer/msa86/cpu"
)

const (
	// ExportMagic opens the export table.
	ExportMagic = 0xFE33
	// ExportNameLength is the fixed, zero-padded name field width.
	ExportNameLength = 8
	// ExportEntrySize is the size of one table entry.
	ExportEntrySize = ExportNameLength + 4
)

// Export is one exported symbol.
type Export struct {
	Name   string
	Offset uint16
}

// ExportTable serialises exports: magic, count, byte length of the entries,
// then name, flags and offset per entry. Longer names are cut to fit.
func ExportTable(exports []Export) []byte {
	n := uint16(len(exports))
	out := cpu.WordsToBytes([]uint16{ExportMagic, n, n * ExportEntrySize})

	for _, e := range exports {
		var name [ExportNameLength]byte
		copy(name[:], strings.ToUpper(e.Name))
		out = append(out, name[:]...)
		out = cpu.AppendWord(out, 0)
		out = cpu.AppendWord(out, e.Offset)
	}
	return out
}

// OverlayBoot is the DOS stub at the start of an overlay. Run directly, it
// prints a notice and exits.
var OverlayBoot = []byte{
	0x0E,             // push cs
	0x1F,             // pop ds
	0xBA, 0x0D, 0x00, // mov dx,msg
	0xB4, 0x09,       // mov ah,9
	0xCD, 0x21,       // int 0x21
	0xB4, 0x4C,       // mov ah,0x4c
	0xCD, 0x21,       // int 0x21
	'T', 'h', 'i', 's', ' ', 'i', 's', ' ', 'o', 'v', 'e', 'r', 'l', 'a', 'y', ' ',
	'f', 'i', 'l', 'e', '.', '\r', '\n', '$',
}
