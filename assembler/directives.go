package assembler

import (
	"strings"

	"github.com/Urethramancer/msa86/cpu"
)

// dataItem is one comma-separated value of a DB/DW/DD line.
type dataItem struct {
	Text   string // the item as written, quotes included
	Value  string // the quoted contents when Quoted
	Quoted bool
}

// splitDataItems splits a data field on unquoted commas, dropping empty
// items. An item is a quoted run only when one quoted span covers all of it.
func splitDataItems(s string) []dataItem {
	var items []dataItem
	for _, text := range splitItems(s) {
		if text == "" {
			continue
		}
		it := dataItem{Text: text}
		if q := text[0]; len(text) >= 2 && (q == '\'' || q == '"') && strings.IndexByte(text[1:], q) == len(text)-2 {
			it.Quoted = true
			it.Value = text[1 : len(text)-1]
		}
		items = append(items, it)
	}
	return items
}

// assembleData emits DB, DW or DD values.
func (s *Session) assembleData(ln *Line) {
	for _, it := range splitDataItems(ln.Raw) {
		if it.Quoted && ln.Data == 1 {
			s.out.write([]byte(it.Value)...)
			continue
		}

		v := s.Evaluate(it.Text)
		switch ln.Data {
		case 1:
			s.out.write(byte(v))
		case 2:
			s.out.write(cpu.AppendWord(nil, uint16(v))...)
		case 4:
			s.out.write(cpu.AppendDword(nil, uint32(v))...)
		}
	}
}

// assembleDirective handles ORG, END, CONST and EXPORT.
func (s *Session) assembleDirective(ln *Line) {
	switch ln.Command {
	case TokORG:
		if len(ln.Operands) != 1 {
			s.errorf("syntax error: ORG needs one address")
			return
		}
		s.origin = uint16(s.Evaluate(ln.Operands[0]))
		s.symbols.SetReserved("$$", int32(s.origin))

	case TokEND:
		if len(ln.Operands) > 0 {
			s.entry = uint16(s.Evaluate(ln.Operands[0]))
			s.entryDefined = true
		}
		s.stop = true

	case TokCONST:
		var name, expr string
		switch len(ln.Operands) {
		case 1:
			name, expr = nextWord(ln.Operands[0])
		case 2:
			name, expr = ln.Operands[0], ln.Operands[1]
		}
		if name == "" || identLen(name) != len(name) || strings.TrimSpace(expr) == "" {
			s.errorf("syntax error: CONST needs a name and a value")
			return
		}
		s.define(name, KindExpression, s.Evaluate(expr))

	case TokEXPORT:
		if len(ln.Operands) == 0 {
			s.errorf("syntax error: EXPORT needs a name")
			return
		}
		for _, name := range ln.Operands {
			if !s.symbols.MarkExported(name) && s.pass > 0 {
				s.errorf("unknown constant %s", foldName(name))
			}
		}
	}
}

// define sets a symbol. It reports a changed value within the pass and,
// on the final pass, a value that differs from the pass before.
func (s *Session) define(name string, kind Kind, value int32) {
	if s.symbols.Moved(name, value, s.pass) {
		s.moved++
		if s.final {
			s.warnf("%s %s changed between passes, increase passes", kind, foldName(name))
		}
	}
	if _, changed := s.symbols.Define(name, kind, value, s.pass); changed {
		s.noticef("constant %s changed", foldName(name))
	}
}
