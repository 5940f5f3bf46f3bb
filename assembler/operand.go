package assembler

import (
	"regexp"

	"github.com/Urethramancer/msa86/cpu"
)

// OperandType classifies an operand. The low values are operand classes used
// in instruction signatures; the high ones name specific registers.
type OperandType uint8

const (
	TypeImm    OperandType = 0x00
	TypeReg8   OperandType = 0x01
	TypeReg16  OperandType = 0x02
	TypeRegSeg OperandType = 0x03
	TypeMem8   OperandType = 0x04
	TypeMem16  OperandType = 0x05
	TypeRM8    OperandType = 0x06
	TypeRM16   OperandType = 0x07
)

const (
	TypeAL OperandType = 0x10 + iota
	TypeCL
	TypeDL
	TypeBL
	TypeAH
	TypeCH
	TypeDH
	TypeBH
)

const (
	TypeAX OperandType = 0x20 + iota
	TypeCX
	TypeDX
	TypeBX
	TypeSP
	TypeBP
	TypeSI
	TypeDI
)

const (
	TypeES OperandType = 0x30 + iota
	TypeCS
	TypeSS
	TypeDS
)

// IsReg8 reports whether t names an 8-bit register.
func (t OperandType) IsReg8() bool { return t >= TypeAL && t <= TypeBH }

// IsReg16 reports whether t names a 16-bit register.
func (t OperandType) IsReg16() bool { return t >= TypeAX && t <= TypeDI }

// IsSeg reports whether t names a segment register.
func (t OperandType) IsSeg() bool { return t >= TypeES && t <= TypeDS }

// Index returns the register number of a register type.
func (t OperandType) Index() uint8 { return uint8(t & 0x0f) }

// Operand is one classified operand.
type Operand struct {
	Text string
	Type OperandType
	// Sized is set when BYTE or WORD fixed the width of a memory operand.
	Sized bool
}

var (
	reSizedMemory = regexp.MustCompile(`^(BYTE|WORD)(PTR)?\[`)
	reOuterSeg    = regexp.MustCompile(`^([A-Z]{2}):\[(.*)$`)
)

// ClassifyOperand compacts an operand and works out its type. A bare
// bracketed operand is a word access.
func ClassifyOperand(text string) Operand {
	op := Operand{Text: compact(text)}

	if r, ok := cpu.Reg8(op.Text); ok {
		op.Type = TypeAL + OperandType(r)
		return op
	}
	if r, ok := cpu.Reg16(op.Text); ok {
		op.Type = TypeAX + OperandType(r)
		return op
	}
	if r, ok := cpu.Seg(op.Text); ok {
		op.Type = TypeES + OperandType(r)
		return op
	}

	// ES:[BX] is the same operand as [ES:BX].
	if m := reOuterSeg.FindStringSubmatch(op.Text); m != nil {
		if _, ok := cpu.Seg(m[1]); ok {
			op.Text = "[" + m[1] + ":" + m[2]
		}
	}

	if m := reSizedMemory.FindStringSubmatch(op.Text); m != nil {
		if m[1] == "BYTE" {
			op.Type = TypeMem8
		} else {
			op.Type = TypeMem16
		}
		op.Text = op.Text[len(m[0])-1:]
		op.Sized = true
		return op
	}
	if op.Text != "" && op.Text[0] == '[' {
		op.Type = TypeMem16
		return op
	}

	op.Type = TypeImm
	return op
}

// accepts reports whether an operand of type got fits a signature slot.
func accepts(want, got OperandType) bool {
	switch want {
	case TypeRM8:
		return got == TypeMem8 || got.IsReg8()
	case TypeRM16:
		return got == TypeMem16 || got.IsReg16()
	case TypeReg8:
		return got.IsReg8()
	case TypeReg16:
		return got.IsReg16()
	case TypeRegSeg:
		return got.IsSeg()
	}
	return want == got
}

// inferWidths retypes an unsized memory operand as a byte access when the
// other operand is an 8-bit register. It reports whether anything changed.
func inferWidths(operands []Operand) bool {
	if len(operands) != 2 {
		return false
	}

	changed := false
	for i := range operands {
		m, other := &operands[i], operands[1-i]
		if m.Type == TypeMem16 && !m.Sized && other.Type.IsReg8() {
			m.Type = TypeMem8
			changed = true
		}
	}
	return changed
}
