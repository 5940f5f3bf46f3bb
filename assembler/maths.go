package assembler

import "github.com/Urethramancer/msa86/cpu"

// aluGroup builds the eight forms shared by ADD, OR, ADC, SBB, AND, SUB,
// XOR and CMP. base is the family's first opcode, ext its group 1 extension.
func aluGroup(cmd Token, base, ext byte) []Template {
	return []Template{
		form(cmd, sig(TypeAL, TypeImm), op(base+4), imm8(1)),
		form(cmd, sig(TypeAX, TypeImm), op(base+5), imm16(1)),
		form(cmd, sig(TypeRM8, TypeReg8), op(base), rm8(0, 1)),
		form(cmd, sig(TypeRM16, TypeReg16), op(base+1), rm16(0, 1)),
		form(cmd, sig(TypeReg8, TypeRM8), op(base+2), rm8(1, 0)),
		form(cmd, sig(TypeReg16, TypeRM16), op(base+3), rm16(1, 0)),
		form(cmd, sig(TypeRM8, TypeImm), op(cpu.OPGroup1Byte), rmConst(ext, 0), imm8(1)),
		form(cmd, sig(TypeRM16, TypeImm), op(cpu.OPGroup1Word), rmConst(ext, 0), imm16(1)),
	}
}

// unaryGroup builds the r/m8 and r/m16 forms of a group 3 instruction.
func unaryGroup(cmd Token, ext byte) []Template {
	return []Template{
		form(cmd, sig(TypeRM8), op(cpu.OPGroup3Byte), rmConst(ext, 0)),
		form(cmd, sig(TypeRM16), op(cpu.OPGroup3Word), rmConst(ext, 0)),
	}
}

// mathsTemplates covers addition, subtraction, multiply and divide.
func mathsTemplates() []Template {
	var list []Template
	list = append(list, aluGroup(TokADD, cpu.OPADD, cpu.ExtADD)...)
	list = append(list, aluGroup(TokADC, cpu.OPADC, cpu.ExtADC)...)
	list = append(list, aluGroup(TokSUB, cpu.OPSUB, cpu.ExtSUB)...)
	list = append(list, aluGroup(TokSBB, cpu.OPSBB, cpu.ExtSBB)...)

	list = append(list,
		form(TokINC, sig(TypeReg16), plusReg16(cpu.OPINCReg, 0)),
		form(TokINC, sig(TypeRM8), op(cpu.OPGroup4), rmConst(cpu.ExtINC, 0)),
		form(TokINC, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtINC, 0)),
		form(TokDEC, sig(TypeReg16), plusReg16(cpu.OPDECReg, 0)),
		form(TokDEC, sig(TypeRM8), op(cpu.OPGroup4), rmConst(cpu.ExtDEC, 0)),
		form(TokDEC, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtDEC, 0)),
	)

	list = append(list, unaryGroup(TokNEG, cpu.ExtNEG)...)
	list = append(list, unaryGroup(TokMUL, cpu.ExtMUL)...)
	list = append(list, unaryGroup(TokIMUL, cpu.ExtIMUL)...)
	list = append(list, unaryGroup(TokDIV, cpu.ExtDIV)...)
	list = append(list, unaryGroup(TokIDIV, cpu.ExtIDIV)...)

	return append(list,
		single(TokCBW, cpu.OPCBW),
		single(TokCWD, cpu.OPCWD),
	)
}
