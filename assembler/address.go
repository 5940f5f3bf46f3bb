package assembler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Urethramancer/msa86/cpu"
)

var (
	// ErrNotAddress is returned for an operand that is neither a register nor bracketed.
	ErrNotAddress = errors.New("not a register or memory operand")
	// ErrBadSegment is returned for an unknown segment in [XS:...].
	ErrBadSegment = errors.New("invalid segment override")
	// ErrUnclosedBracket is returned when ']' is missing.
	ErrUnclosedBracket = errors.New("missing ]")
	// ErrTrailingText is returned for text after the closing ']'.
	ErrTrailingText = errors.New("unexpected text after ]")
)

// Address is a resolved ModRM operand.
type Address struct {
	Mod     uint8
	Reg     uint8
	RM      uint8
	Disp    int32
	Segment byte // override prefix from [XS:...], 0 if none
}

// Bytes returns the ModRM byte followed by any displacement.
func (a Address) Bytes() []byte {
	out := []byte{cpu.ModRM(a.Mod, a.Reg, a.RM)}
	switch {
	case a.Mod == cpu.ModNoDisp && a.RM == cpu.RMDirect, a.Mod == cpu.ModDisp16:
		out = cpu.AppendWord(out, uint16(a.Disp))
	case a.Mod == cpu.ModDisp8:
		out = append(out, byte(a.Disp))
	}
	return out
}

// Size returns the encoded length of the address.
func (a Address) Size() int {
	switch {
	case a.Mod == cpu.ModNoDisp && a.RM == cpu.RMDirect, a.Mod == cpu.ModDisp16:
		return 3
	case a.Mod == cpu.ModDisp8:
		return 2
	}
	return 1
}

// baseForms are tried in order; two-register forms come first.
var baseForms = []struct {
	text string
	rm   uint8
}{
	{"BX+SI", cpu.RMBXSI},
	{"BX+DI", cpu.RMBXDI},
	{"BP+SI", cpu.RMBPSI},
	{"BP+DI", cpu.RMBPDI},
	{"SI", cpu.RMSI},
	{"DI", cpu.RMDI},
	{"BP", cpu.RMBP},
	{"BX", cpu.RMBX},
}

// ResolveAddress turns a register name or a bracketed memory operand into
// ModRM fields. The reg field is left for the caller.
func (s *Session) ResolveAddress(text string) (Address, error) {
	var a Address
	if r, ok := cpu.Reg8(text); ok {
		a.Mod, a.RM = cpu.ModRegister, r
		return a, nil
	}
	if r, ok := cpu.Reg16(text); ok {
		a.Mod, a.RM = cpu.ModRegister, r
		return a, nil
	}

	open := strings.IndexByte(text, '[')
	if open < 0 {
		return a, fmt.Errorf("%w: %s", ErrNotAddress, text)
	}
	inner := text[open+1:]
	end := strings.LastIndexByte(inner, ']')
	if end < 0 {
		return a, fmt.Errorf("%w: %s", ErrUnclosedBracket, text)
	}
	if rest := strings.TrimSpace(inner[end+1:]); rest != "" {
		return a, fmt.Errorf("%w: %s", ErrTrailingText, rest)
	}
	inner = strings.TrimSpace(inner[:end])

	if len(inner) >= 3 && inner[2] == ':' {
		seg, ok := cpu.Seg(inner[:2])
		if !ok {
			return a, fmt.Errorf("%w: %s", ErrBadSegment, inner[:2])
		}
		a.Segment = cpu.SegmentPrefix(seg)
		inner = inner[3:]
	}

	rm, n, ok := matchBase(inner)
	if !ok {
		a.Mod, a.RM = cpu.ModNoDisp, cpu.RMDirect
		a.Disp = s.Evaluate(inner)
		return a, nil
	}

	a.RM = rm
	if rest := inner[n:]; rest != "" {
		a.Disp = s.Evaluate(rest)
		if a.Disp >= -128 && a.Disp <= 127 {
			a.Mod = cpu.ModDisp8
		} else {
			a.Mod = cpu.ModDisp16
		}
	}

	// mod 00 with rm 110 means a direct address, so [BP] needs a zero disp8.
	if a.RM == cpu.RMBP && a.Mod == cpu.ModNoDisp {
		a.Mod = cpu.ModDisp8
		a.Disp = 0
	}
	return a, nil
}

// matchBase finds the base/index form at the start of s. It must be followed
// by the end of s or an operator.
func matchBase(s string) (uint8, int, bool) {
	for _, f := range baseForms {
		if len(s) < len(f.text) || !equalFold(s[:len(f.text)], f.text) {
			continue
		}
		if len(s) == len(f.text) {
			return f.rm, len(f.text), true
		}
		switch s[len(f.text)] {
		case '+', '-', '*', '/', '%', ' ':
			return f.rm, len(f.text), true
		}
	}
	return 0, 0, false
}
