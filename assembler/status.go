package assembler

import "github.com/Urethramancer/msa86/cpu"

// statusTemplates covers the flag instructions.
func statusTemplates() []Template {
	return []Template{
		single(TokCLC, cpu.OPCLC),
		single(TokSTC, cpu.OPSTC),
		single(TokCMC, cpu.OPCMC),
		single(TokCLI, cpu.OPCLI),
		single(TokSTI, cpu.OPSTI),
		single(TokCLD, cpu.OPCLD),
		single(TokSTD, cpu.OPSTD),
		single(TokLAHF, cpu.OPLAHF),
		single(TokSAHF, cpu.OPSAHF),
		single(TokSALC, cpu.OPSALC),
	}
}
