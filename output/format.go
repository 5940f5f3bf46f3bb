// Package output lays out assembled images as flat binaries or small DOS
// executables.
package output

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is returned for an unknown format name.
var ErrFormat = errors.New("unknown output format")

// Format is an output file layout.
type Format int

const (
	// FormatBIN is the raw image at the configured origin.
	FormatBIN Format = iota
	// FormatCOM is a DOS .COM image loaded at 0x100.
	FormatCOM
	// FormatTEXE is a tiny MZ executable with a single segment.
	FormatTEXE
	// FormatOVL is an MZ overlay with a boot stub and an export table.
	FormatOVL
)

var formatNames = map[Format]string{
	FormatBIN:  "bin",
	FormatCOM:  "com",
	FormatTEXE: "texe",
	FormatOVL:  "ovl",
}

// ParseFormat reads a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return FormatBIN, fmt.Errorf("%w: %q", ErrFormat, s)
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Origin returns the load address the format requires. Only BIN keeps the
// caller's choice.
func (f Format) Origin(requested uint16) uint16 {
	switch f {
	case FormatCOM:
		return 0x100
	case FormatTEXE, FormatOVL:
		return 0
	}
	return requested
}

// DefaultEntry returns the entry point assumed when the source has none.
func (f Format) DefaultEntry() (uint16, bool) {
	if f == FormatCOM {
		return 0x100, true
	}
	return 0, false
}

// HasHeader reports whether the format starts with an MZ header.
func (f Format) HasHeader() bool {
	return f == FormatTEXE || f == FormatOVL
}

// HasExports reports whether an export table follows the image.
func (f Format) HasExports() bool {
	return f == FormatTEXE || f == FormatOVL
}

// Preamble returns bytes the image must start with.
func (f Format) Preamble() []byte {
	if f == FormatOVL {
		return append([]byte(nil), OverlayBoot...)
	}
	return nil
}

// CheckEntry returns the problems with an entry point for the format.
func CheckEntry(f Format, entry uint16, defined bool) []string {
	var problems []string
	switch f {
	case FormatCOM:
		if !defined || entry != 0x100 {
			problems = append(problems, fmt.Sprintf("entry point of a COM file must be 0x100, not %#x", entry))
		}
	case FormatTEXE:
		if !defined {
			problems = append(problems, "entry point is not defined")
		}
	case FormatOVL:
		if defined {
			problems = append(problems, "an overlay must not define an entry point")
		}
	}
	return problems
}
