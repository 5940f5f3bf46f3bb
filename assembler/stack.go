package assembler

import "github.com/Urethramancer/msa86/cpu"

// stackTemplates covers PUSH, POP and the frame instructions.
func stackTemplates() []Template {
	return []Template{
		form(TokPUSH, sig(TypeReg16), plusReg16(cpu.OPPUSHReg, 0)),
		form(TokPUSH, sig(TypeRegSeg), plusRegSeg(cpu.OPPUSHSeg, 0)),
		form(TokPUSH, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtPUSH, 0)),
		form(TokPUSH, sig(TypeImm), op(cpu.OPPUSHImm), imm16(0)),

		form(TokPOP, sig(TypeReg16), plusReg16(cpu.OPPOPReg, 0)),
		form(TokPOP, sig(TypeRegSeg), plusRegSeg(cpu.OPPOPSeg, 0)),
		form(TokPOP, sig(TypeRM16), op(cpu.OPPOPRM), rmConst(0, 0)),

		single(TokPUSHA, cpu.OPPUSHA),
		single(TokPOPA, cpu.OPPOPA),
		single(TokPUSHF, cpu.OPPUSHF),
		single(TokPOPF, cpu.OPPOPF),

		form(TokENTER, sig(TypeImm, TypeImm), op(cpu.OPENTER), imm16(0), imm8(1)),
		single(TokLEAVE, cpu.OPLEAVE),
		form(TokBOUND, sig(TypeReg16, TypeMem16), op(cpu.OPBOUND), rm16(1, 0)),
	}
}
