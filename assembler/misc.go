package assembler

import "github.com/Urethramancer/msa86/cpu"

// stringTemplates covers the string instructions, used with REP prefixes.
func stringTemplates() []Template {
	return []Template{
		single(TokMOVSB, cpu.OPMOVSB),
		single(TokMOVSW, cpu.OPMOVSW),
		single(TokCMPSB, cpu.OPCMPSB),
		single(TokCMPSW, cpu.OPCMPSW),
		single(TokSTOSB, cpu.OPSTOSB),
		single(TokSTOSW, cpu.OPSTOSW),
		single(TokLODSB, cpu.OPLODSB),
		single(TokLODSW, cpu.OPLODSW),
		single(TokSCASB, cpu.OPSCASB),
		single(TokSCASW, cpu.OPSCASW),
		single(TokINSB, cpu.OPINSB),
		single(TokINSW, cpu.OPINSW),
		single(TokOUTSB, cpu.OPOUTSB),
		single(TokOUTSW, cpu.OPOUTSW),
	}
}

// miscTemplates covers port I/O and processor control.
func miscTemplates() []Template {
	return []Template{
		form(TokIN, sig(TypeAL, TypeDX), op(cpu.OPINALDX)),
		form(TokIN, sig(TypeAX, TypeDX), op(cpu.OPINAXDX)),
		form(TokIN, sig(TypeAL, TypeImm), op(cpu.OPINALImm), imm8(1)),
		form(TokIN, sig(TypeAX, TypeImm), op(cpu.OPINAXImm), imm8(1)),
		form(TokOUT, sig(TypeDX, TypeAL), op(cpu.OPOUTDXAL)),
		form(TokOUT, sig(TypeDX, TypeAX), op(cpu.OPOUTDXAX)),
		form(TokOUT, sig(TypeImm, TypeAL), op(cpu.OPOUTImmAL), imm8(0)),
		form(TokOUT, sig(TypeImm, TypeAX), op(cpu.OPOUTImmAX), imm8(0)),

		single(TokNOP, cpu.OPNOP),
		single(TokHLT, cpu.OPHLT),
		single(TokWAIT, cpu.OPWAIT),
		single(TokCLTS, cpu.OPTwo, cpu.OPCLTS2),
	}
}
