package assembler

// EmitKind is one step of an encoding program.
type EmitKind uint8

const (
	// EmitOp writes Value.
	EmitOp EmitKind = iota + 1
	// EmitImm8 writes the low byte of operand Operand.
	EmitImm8
	// EmitImm16 writes operand Operand as a little-endian word.
	EmitImm16
	// EmitPlusReg8 writes Value plus the number of 8-bit register Operand.
	EmitPlusReg8
	// EmitPlusReg16 writes Value plus the number of 16-bit register Operand.
	EmitPlusReg16
	// EmitPlusRegSeg writes Value plus segment register Operand shifted left by 3.
	EmitPlusRegSeg
	// EmitRM8 writes a ModRM for Operand with 8-bit register Reg in the reg field.
	EmitRM8
	// EmitRM16 writes a ModRM for Operand with 16-bit register Reg in the reg field.
	EmitRM16
	// EmitRMSeg writes a ModRM for Operand with segment register Reg in the reg field.
	EmitRMSeg
	// EmitRMConst writes a ModRM for Operand with Value in the reg field.
	EmitRMConst
	// EmitRel8 writes the 8-bit distance to operand Operand.
	EmitRel8
	// EmitRel16 writes the 16-bit distance to operand Operand.
	EmitRel16
	// EmitFarPtr writes operand Operand, SEG:OFF, as offset then segment.
	EmitFarPtr
)

// Emit is one command of a Template's program.
type Emit struct {
	Kind    EmitKind
	Value   byte
	Operand int
	Reg     int
}

// Template is one instruction form: a mnemonic, an optional qualifier, an
// operand signature and the program that encodes it.
type Template struct {
	Command   Token
	Qualifier Token
	Operands  []OperandType
	Program   []Emit
}

var templates = buildTemplates()

func buildTemplates() []Template {
	var list []Template
	for _, family := range [][]Template{
		moveTemplates(),
		mathsTemplates(),
		logicalTemplates(),
		compareTemplates(),
		bitsTemplates(),
		flowTemplates(),
		trapTemplates(),
		stackTemplates(),
		stringTemplates(),
		statusTemplates(),
		miscTemplates(),
		bcdTemplates(),
	} {
		list = append(list, family...)
	}
	return list
}

// Templates returns the instruction table in match order. Callers must not
// modify it.
func Templates() []Template {
	return templates
}

// Match returns the first template for the command that accepts the
// qualifier and operands, or nil.
func Match(cmd, qual Token, operands []Operand) *Template {
next:
	for i := range templates {
		t := &templates[i]
		if t.Command != cmd || len(t.Operands) != len(operands) {
			continue
		}
		if t.Qualifier != TokNone && t.Qualifier != qual {
			continue
		}
		for k, want := range t.Operands {
			if !accepts(want, operands[k].Type) {
				continue next
			}
		}
		return t
	}
	return nil
}

// Table builders.

func form(cmd Token, sig []OperandType, prog ...Emit) Template {
	return Template{Command: cmd, Operands: sig, Program: prog}
}

func qualified(cmd, qual Token, sig []OperandType, prog ...Emit) Template {
	return Template{Command: cmd, Qualifier: qual, Operands: sig, Program: prog}
}

func sig(types ...OperandType) []OperandType { return types }

func op(b byte) Emit                   { return Emit{Kind: EmitOp, Value: b} }
func imm8(n int) Emit                  { return Emit{Kind: EmitImm8, Operand: n} }
func imm16(n int) Emit                 { return Emit{Kind: EmitImm16, Operand: n} }
func plusReg8(base byte, n int) Emit   { return Emit{Kind: EmitPlusReg8, Value: base, Operand: n} }
func plusReg16(base byte, n int) Emit  { return Emit{Kind: EmitPlusReg16, Value: base, Operand: n} }
func plusRegSeg(base byte, n int) Emit { return Emit{Kind: EmitPlusRegSeg, Value: base, Operand: n} }
func rm8(addr, reg int) Emit           { return Emit{Kind: EmitRM8, Operand: addr, Reg: reg} }
func rm16(addr, reg int) Emit          { return Emit{Kind: EmitRM16, Operand: addr, Reg: reg} }
func rmSeg(addr, reg int) Emit         { return Emit{Kind: EmitRMSeg, Operand: addr, Reg: reg} }
func rmConst(ext byte, addr int) Emit  { return Emit{Kind: EmitRMConst, Value: ext, Operand: addr} }
func rel8(n int) Emit                  { return Emit{Kind: EmitRel8, Operand: n} }
func rel16(n int) Emit                 { return Emit{Kind: EmitRel16, Operand: n} }
func farPtr(n int) Emit                { return Emit{Kind: EmitFarPtr, Operand: n} }

func single(cmd Token, opcodes ...byte) Template {
	prog := make([]Emit, len(opcodes))
	for i, b := range opcodes {
		prog[i] = op(b)
	}
	return form(cmd, nil, prog...)
}
