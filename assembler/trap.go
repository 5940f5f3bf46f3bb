package assembler

import "github.com/Urethramancer/msa86/cpu"

// trapTemplates covers software interrupts.
func trapTemplates() []Template {
	return []Template{
		form(TokINT, sig(TypeImm), op(cpu.OPINT), imm8(0)),
		single(TokINT3, cpu.OPINT3),
		single(TokINTO, cpu.OPINTO),
		single(TokIRET, cpu.OPIRET),
	}
}
