package assembler

import "github.com/Urethramancer/msa86/cpu"

// logicalTemplates covers AND, OR, XOR and NOT.
func logicalTemplates() []Template {
	var list []Template
	list = append(list, aluGroup(TokAND, cpu.OPAND, cpu.ExtAND)...)
	list = append(list, aluGroup(TokOR, cpu.OPOR, cpu.ExtOR)...)
	list = append(list, aluGroup(TokXOR, cpu.OPXOR, cpu.ExtXOR)...)
	return append(list, unaryGroup(TokNOT, cpu.ExtNOT)...)
}
