package assembler

import "github.com/Urethramancer/msa86/cpu"

// moveTemplates covers MOV, XCHG and the address loads.
func moveTemplates() []Template {
	return []Template{
		// --- MOV ---
		form(TokMOV, sig(TypeRM8, TypeReg8), op(cpu.OPMOVRM8), rm8(0, 1)),
		form(TokMOV, sig(TypeRM16, TypeReg16), op(cpu.OPMOVRM16), rm16(0, 1)),
		form(TokMOV, sig(TypeReg8, TypeRM8), op(cpu.OPMOVReg8), rm8(1, 0)),
		form(TokMOV, sig(TypeReg16, TypeRM16), op(cpu.OPMOVReg16), rm16(1, 0)),
		form(TokMOV, sig(TypeRM16, TypeRegSeg), op(cpu.OPMOVFromSR), rmSeg(0, 1)),
		form(TokMOV, sig(TypeRegSeg, TypeRM16), op(cpu.OPMOVToSR), rmSeg(1, 0)),
		form(TokMOV, sig(TypeReg8, TypeImm), plusReg8(cpu.OPMOVImm8, 0), imm8(1)),
		form(TokMOV, sig(TypeReg16, TypeImm), plusReg16(cpu.OPMOVImm16, 0), imm16(1)),
		form(TokMOV, sig(TypeRM8, TypeImm), op(cpu.OPMOVRMImm8), rmConst(0, 0), imm8(1)),
		form(TokMOV, sig(TypeRM16, TypeImm), op(cpu.OPMOVRMImm), rmConst(0, 0), imm16(1)),

		// --- XCHG ---
		form(TokXCHG, sig(TypeAX, TypeReg16), plusReg16(cpu.OPXCHGAX, 1)),
		form(TokXCHG, sig(TypeReg16, TypeAX), plusReg16(cpu.OPXCHGAX, 0)),
		form(TokXCHG, sig(TypeRM8, TypeReg8), op(cpu.OPXCHG8), rm8(0, 1)),
		form(TokXCHG, sig(TypeReg8, TypeRM8), op(cpu.OPXCHG8), rm8(1, 0)),
		form(TokXCHG, sig(TypeRM16, TypeReg16), op(cpu.OPXCHG16), rm16(0, 1)),
		form(TokXCHG, sig(TypeReg16, TypeRM16), op(cpu.OPXCHG16), rm16(1, 0)),

		// --- LEA / LDS / LES ---
		form(TokLEA, sig(TypeReg16, TypeMem16), op(cpu.OPLEA), rm16(1, 0)),
		form(TokLDS, sig(TypeReg16, TypeMem16), op(cpu.OPLDS), rm16(1, 0)),
		form(TokLES, sig(TypeReg16, TypeMem16), op(cpu.OPLES), rm16(1, 0)),

		single(TokXLATB, cpu.OPXLATB),
	}
}
