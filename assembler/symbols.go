package assembler

// Kind says where a symbol's value came from.
type Kind int

const (
	// KindExpression is a constant from EQU or CONST.
	KindExpression Kind = iota
	// KindLabel is the address of a source line.
	KindLabel
	// KindText is reserved for textual constants.
	KindText
	// KindReserved marks the assembler's own symbols, $ and $$.
	KindReserved
)

func (k Kind) String() string {
	switch k {
	case KindExpression:
		return "const"
	case KindLabel:
		return "label"
	case KindText:
		return "text"
	default:
		return "reserved"
	}
}

// Symbol is one named value.
type Symbol struct {
	Name     string
	Kind     Kind
	Value    int32
	Exported bool

	// pass is the last pass that defined the symbol.
	pass int
	// first is the value given by the first definition in that pass.
	first int32
}

// SymbolTable keeps symbols in definition order with case-insensitive lookup.
type SymbolTable struct {
	index   map[string]int
	entries []*Symbol
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// foldName upper-cases ASCII letters so lookups ignore case.
func foldName(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= 'a' && c <= 'z' {
			b := []byte(name)
			for j := i; j < len(b); j++ {
				if b[j] >= 'a' && b[j] <= 'z' {
					b[j] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return name
}

// Lookup returns the symbol with the given name.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	i, ok := st.index[foldName(name)]
	if !ok {
		return nil, false
	}
	return st.entries[i], true
}

// Define sets a symbol's kind and value. The second return is true when the
// symbol was already defined earlier in the same pass with another value.
// The new value replaces the old one either way.
func (st *SymbolTable) Define(name string, kind Kind, value int32, pass int) (*Symbol, bool) {
	key := foldName(name)
	if i, ok := st.index[key]; ok {
		sym := st.entries[i]
		conflict := sym.Kind != KindReserved && sym.pass == pass && sym.Value != value
		if sym.pass != pass {
			sym.first = value
		}
		sym.Kind = kind
		sym.Value = value
		sym.pass = pass
		return sym, conflict
	}

	sym := &Symbol{Name: key, Kind: kind, Value: value, pass: pass, first: value}
	st.index[key] = len(st.entries)
	st.entries = append(st.entries, sym)
	return sym, false
}

// SetReserved updates one of the assembler-maintained symbols.
func (st *SymbolTable) SetReserved(name string, value int32) {
	st.Define(name, KindReserved, value, -1)
}

// MarkExported flags a symbol for the export table.
func (st *SymbolTable) MarkExported(name string) bool {
	sym, ok := st.Lookup(name)
	if !ok {
		return false
	}
	sym.Exported = true
	return true
}

// Exports returns copies of the exported symbols in definition order.
func (st *SymbolTable) Exports() []Symbol {
	var list []Symbol
	for _, sym := range st.entries {
		if sym.Exported {
			list = append(list, *sym)
		}
	}
	return list
}

// All returns copies of every user symbol in definition order.
func (st *SymbolTable) All() []Symbol {
	list := make([]Symbol, 0, len(st.entries))
	for _, sym := range st.entries {
		if sym.Kind != KindReserved {
			list = append(list, *sym)
		}
	}
	return list
}

// Moved reports whether the first definition of name in pass differs from
// the first definition in the pass before.
func (st *SymbolTable) Moved(name string, value int32, pass int) bool {
	sym, ok := st.Lookup(name)
	return ok && sym.Kind != KindReserved && sym.pass == pass-1 && sym.first != value
}

// Len returns the number of symbols, reserved ones included.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}
