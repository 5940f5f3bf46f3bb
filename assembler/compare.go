package assembler

import "github.com/Urethramancer/msa86/cpu"

// compareTemplates covers CMP and TEST.
func compareTemplates() []Template {
	list := aluGroup(TokCMP, cpu.OPCMP, cpu.ExtCMP)

	// --- TEST ---
	// TEST has no direction bit; both operand orders use the same opcode.
	return append(list,
		form(TokTEST, sig(TypeAL, TypeImm), op(cpu.OPTESTAL), imm8(1)),
		form(TokTEST, sig(TypeAX, TypeImm), op(cpu.OPTESTAX), imm16(1)),
		form(TokTEST, sig(TypeRM8, TypeReg8), op(cpu.OPTESTRM8), rm8(0, 1)),
		form(TokTEST, sig(TypeReg8, TypeRM8), op(cpu.OPTESTRM8), rm8(1, 0)),
		form(TokTEST, sig(TypeRM16, TypeReg16), op(cpu.OPTESTRM16), rm16(0, 1)),
		form(TokTEST, sig(TypeReg16, TypeRM16), op(cpu.OPTESTRM16), rm16(1, 0)),
		form(TokTEST, sig(TypeRM8, TypeImm), op(cpu.OPGroup3Byte), rmConst(cpu.ExtTEST, 0), imm8(1)),
		form(TokTEST, sig(TypeRM16, TypeImm), op(cpu.OPGroup3Word), rmConst(cpu.ExtTEST, 0), imm16(1)),
	)
}
