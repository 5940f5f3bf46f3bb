package assembler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Urethramancer/msa86/cpu"
)

// ErrExpectedRegister is returned when a register-field command gets a
// non-register operand.
var ErrExpectedRegister = errors.New("register expected")

// ErrFarPointer is returned for a far immediate target without a segment.
var ErrFarPointer = errors.New("far target needs SEGMENT:OFFSET")

// encoder runs one template program.
type encoder struct {
	s        *Session
	operands []Operand
	start    int32 // address of the first instruction byte
	segment  byte  // override requested by a memory operand
	body     []byte
}

// assembleInstruction matches the line against the table and emits it.
func (s *Session) assembleInstruction(ln *Line) {
	operands := make([]Operand, len(ln.Operands))
	for i, text := range ln.Operands {
		operands[i] = ClassifyOperand(text)
	}

	t := Match(ln.Command, ln.Qualifier, operands)
	if t == nil && inferWidths(operands) {
		t = Match(ln.Command, ln.Qualifier, operands)
	}
	if t == nil {
		s.errorf("syntax error: %s", describe(ln))
		return
	}

	e := encoder{s: s, operands: operands, start: s.pc()}
	err := e.run(t.Program)
	s.out.write(e.bytes()...)
	if err != nil {
		s.errorf("syntax error: %v", err)
	}
}

// describe formats a line's instruction for messages.
func describe(ln *Line) string {
	var b strings.Builder
	b.WriteString(ln.Mnemonic)
	if ln.Qualifier != TokNone {
		b.WriteByte(' ')
		b.WriteString(ln.Qualifier.String())
	}
	if len(ln.Operands) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(ln.Operands, ","))
	}
	return b.String()
}

// bytes returns the instruction with any segment override in front.
func (e *encoder) bytes() []byte {
	if e.segment == 0 {
		return e.body
	}
	return append([]byte{e.segment}, e.body...)
}

// here returns the address the next emitted byte will have.
func (e *encoder) here() int32 {
	n := int32(len(e.body))
	if e.segment != 0 {
		n++
	}
	return e.start + n
}

func (e *encoder) run(program []Emit) error {
	for _, cmd := range program {
		switch cmd.Kind {
		case EmitOp:
			e.body = append(e.body, cmd.Value)

		case EmitImm8:
			e.body = append(e.body, byte(e.value(cmd.Operand)))

		case EmitImm16:
			e.body = cpu.AppendWord(e.body, uint16(e.value(cmd.Operand)))

		case EmitPlusReg8, EmitPlusReg16:
			r, err := e.register(cmd.Kind, cmd.Operand)
			if err != nil {
				return err
			}
			e.body = append(e.body, cmd.Value+r)

		case EmitPlusRegSeg:
			r, err := e.register(cmd.Kind, cmd.Operand)
			if err != nil {
				return err
			}
			e.body = append(e.body, cmd.Value+r<<3)

		case EmitRM8, EmitRM16, EmitRMSeg:
			r, err := e.register(cmd.Kind, cmd.Reg)
			if err != nil {
				return err
			}
			if err := e.address(cmd.Operand, r); err != nil {
				return err
			}

		case EmitRMConst:
			if err := e.address(cmd.Operand, cmd.Value); err != nil {
				return err
			}

		case EmitRel8:
			target := e.value(cmd.Operand)
			d := target - (e.here() + 1)
			if (d < -128 || d > 127) && e.s.finalPass() {
				e.s.warnf("too long jump (%d bytes)", d)
			}
			e.body = append(e.body, byte(d))

		case EmitRel16:
			target := e.value(cmd.Operand)
			d := target - (e.here() + 2)
			e.body = cpu.AppendWord(e.body, uint16(d))

		case EmitFarPtr:
			text := e.operands[cmd.Operand].Text
			i := strings.LastIndexByte(text, ':')
			if i < 0 {
				return fmt.Errorf("%w: %s", ErrFarPointer, text)
			}
			seg, off := e.s.Evaluate(text[:i]), e.s.Evaluate(text[i+1:])
			e.body = cpu.AppendWord(e.body, uint16(off))
			e.body = cpu.AppendWord(e.body, uint16(seg))
		}
	}
	return nil
}

func (e *encoder) value(n int) int32 {
	return e.s.Evaluate(e.operands[n].Text)
}

// register checks that operand n is a register of the class the command
// needs and returns its number.
func (e *encoder) register(kind EmitKind, n int) (uint8, error) {
	t := e.operands[n].Type
	var ok bool
	var class string
	switch kind {
	case EmitPlusReg8, EmitRM8:
		ok, class = t.IsReg8(), "8-bit"
	case EmitPlusReg16, EmitRM16:
		ok, class = t.IsReg16(), "16-bit"
	default:
		ok, class = t.IsSeg(), "segment"
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s %s", ErrExpectedRegister, class, e.operands[n].Text)
	}
	return t.Index(), nil
}

// address appends the ModRM and displacement for operand n.
func (e *encoder) address(n int, reg uint8) error {
	a, err := e.s.ResolveAddress(e.operands[n].Text)
	if err != nil {
		return err
	}
	a.Reg = reg
	if a.Segment != 0 {
		e.segment = a.Segment
	}
	e.body = append(e.body, a.Bytes()...)
	return nil
}
