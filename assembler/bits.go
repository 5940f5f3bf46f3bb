package assembler

import "github.com/Urethramancer/msa86/cpu"

//
// Shift and rotate tables
//

// shiftGroup builds the by-one, by-CL and by-immediate forms. The by-one
// forms have their own mnemonic (SHL1 and friends).
func shiftGroup(byOne, cmd Token, ext byte) []Template {
	return []Template{
		form(byOne, sig(TypeRM8), op(cpu.OPShift1Byte), rmConst(ext, 0)),
		form(byOne, sig(TypeRM16), op(cpu.OPShift1Word), rmConst(ext, 0)),
		form(cmd, sig(TypeRM8, TypeCL), op(cpu.OPShiftCLByte), rmConst(ext, 0)),
		form(cmd, sig(TypeRM16, TypeCL), op(cpu.OPShiftCLWord), rmConst(ext, 0)),
		form(cmd, sig(TypeRM8, TypeImm), op(cpu.OPShiftIByte), rmConst(ext, 0), imm8(1)),
		form(cmd, sig(TypeRM16, TypeImm), op(cpu.OPShiftIWord), rmConst(ext, 0), imm8(1)),
	}
}

func bitsTemplates() []Template {
	var list []Template
	for _, g := range []struct {
		byOne, cmd Token
		ext        byte
	}{
		{TokROL1, TokROL, cpu.ExtROL},
		{TokROR1, TokROR, cpu.ExtROR},
		{TokRCL1, TokRCL, cpu.ExtRCL},
		{TokRCR1, TokRCR, cpu.ExtRCR},
		{TokSHL1, TokSHL, cpu.ExtSHL},
		{TokSHR1, TokSHR, cpu.ExtSHR},
		{TokSAR1, TokSAR, cpu.ExtSAR},
	} {
		list = append(list, shiftGroup(g.byOne, g.cmd, g.ext)...)
	}
	return list
}
