package assembler

import "github.com/Urethramancer/msa86/cpu"

// bcdTemplates covers the decimal adjust instructions. AAM and AAD take an
// optional base, 10 by default.
func bcdTemplates() []Template {
	return []Template{
		single(TokAAA, cpu.OPAAA),
		single(TokAAS, cpu.OPAAS),
		single(TokDAA, cpu.OPDAA),
		single(TokDAS, cpu.OPDAS),
		single(TokAAM, cpu.OPAAM, 10),
		form(TokAAM, sig(TypeImm), op(cpu.OPAAM), imm8(0)),
		single(TokAAD, cpu.OPAAD, 10),
		form(TokAAD, sig(TypeImm), op(cpu.OPAAD), imm8(0)),
	}
}
