package assembler

import "github.com/Urethramancer/msa86/cpu"

// conditionalJumps lists the Jcc tokens with their condition suffix.
var conditionalJumps = []struct {
	tok  Token
	cond string
}{
	{TokJO, "O"}, {TokJNO, "NO"}, {TokJB, "B"}, {TokJAE, "AE"},
	{TokJE, "E"}, {TokJNE, "NE"}, {TokJBE, "BE"}, {TokJA, "A"},
	{TokJS, "S"}, {TokJNS, "NS"}, {TokJP, "P"}, {TokJNP, "NP"},
	{TokJL, "L"}, {TokJGE, "GE"}, {TokJLE, "LE"}, {TokJG, "G"},
}

// flowTemplates covers jumps, calls, loops and returns. Qualified forms come
// before the unqualified defaults so that SHORT, NEAR and FAR are honoured.
func flowTemplates() []Template {
	list := []Template{
		// --- JMP ---
		qualified(TokJMP, TokSHORT, sig(TypeImm), op(cpu.OPJMPS), rel8(0)),
		qualified(TokJMP, TokNEAR, sig(TypeImm), op(cpu.OPJMP), rel16(0)),
		qualified(TokJMP, TokFAR, sig(TypeImm), op(cpu.OPJMPFar), farPtr(0)),
		qualified(TokJMP, TokFAR, sig(TypeMem16), op(cpu.OPGroup5), rmConst(cpu.ExtJMPFar, 0)),
		qualified(TokJMP, TokNEAR, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtJMP, 0)),
		form(TokJMP, sig(TypeImm), op(cpu.OPJMP), rel16(0)),
		form(TokJMP, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtJMP, 0)),

		// --- CALL ---
		qualified(TokCALL, TokNEAR, sig(TypeImm), op(cpu.OPCALL), rel16(0)),
		qualified(TokCALL, TokFAR, sig(TypeImm), op(cpu.OPCALLFar), farPtr(0)),
		qualified(TokCALL, TokFAR, sig(TypeMem16), op(cpu.OPGroup5), rmConst(cpu.ExtCALLFar, 0)),
		qualified(TokCALL, TokNEAR, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtCALL, 0)),
		form(TokCALL, sig(TypeImm), op(cpu.OPCALL), rel16(0)),
		form(TokCALL, sig(TypeRM16), op(cpu.OPGroup5), rmConst(cpu.ExtCALL, 0)),

		// --- Loops ---
		form(TokJCXZ, sig(TypeImm), op(cpu.OPJCXZ), rel8(0)),
		form(TokLOOP, sig(TypeImm), op(cpu.OPLOOP), rel8(0)),
		form(TokLOOPE, sig(TypeImm), op(cpu.OPLOOPE), rel8(0)),
		form(TokLOOPNE, sig(TypeImm), op(cpu.OPLOOPNE), rel8(0)),

		// --- Returns ---
		single(TokRET, cpu.OPRET),
		form(TokRET, sig(TypeImm), op(cpu.OPRETImm), imm16(0)),
		single(TokRETF, cpu.OPRETF),
		form(TokRETF, sig(TypeImm), op(cpu.OPRETFI), imm16(0)),
	}

	for _, j := range conditionalJumps {
		list = append(list, form(j.tok, sig(TypeImm), op(cpu.OPJcc+cpu.ConditionCodes[j.cond]), rel8(0)))
	}
	return list
}
