package assembler

import (
	"github.com/Urethramancer/msa86/cpu"
)

// RepPrefix selects a string-repeat prefix.
type RepPrefix int

const (
	RepNone RepPrefix = iota
	Rep
	RepNZ
)

// Line is one source line split into its parts.
type Line struct {
	Label     string
	Lock      bool
	Rep       RepPrefix
	Segment   byte // segment override prefix byte, 0 if none
	Mnemonic  string
	Command   Token
	Qualifier Token
	Operands  []string
	Data      int // element size of DB/DW/DD, 0 otherwise

	// Raw is the unsplit operand field of data and EQU lines.
	Raw string
	// Name is the constant defined by an EQU line.
	Name string
}

// IsEqu reports whether the line is a NAME EQU expression.
func (ln *Line) IsEqu() bool {
	return ln.Name != ""
}

// IsEmpty reports whether the line holds nothing past an optional label.
func (ln *Line) IsEmpty() bool {
	return ln.Mnemonic == "" && ln.Name == "" && !ln.Lock && ln.Rep == RepNone && ln.Segment == 0
}

// ParseLine splits a raw source line. On error the returned Line still holds
// whatever was read before the problem, the label in particular.
func ParseLine(raw string) (Line, error) {
	var ln Line
	s, err := normalize(raw)
	if err != nil {
		return ln, err
	}

	if n := identLen(s); n > 0 && n < len(s) && s[n] == ':' {
		if _, seg := cpu.Seg(s[:n]); !seg {
			ln.Label = s[:n]
			s = trimLeft(s[n+1:])
		}
	}

	first, rest := nextWord(s)
	if second, value := nextWord(rest); Lookup(second) == TokEQU && identLen(first) == len(first) && first != "" {
		ln.Name = first
		ln.Raw = value
		return ln, nil
	}

	s = ln.parsePrefixes(s)
	if s == "" {
		return ln, nil
	}

	ln.Mnemonic, rest = nextWord(s)
	ln.Command = Lookup(ln.Mnemonic)
	if ln.Data = dataSize(ln.Mnemonic); ln.Data != 0 {
		ln.Raw = rest
		return ln, nil
	}

	if word, after := nextWord(rest); Lookup(word).IsQualifier() {
		ln.Qualifier = Lookup(word)
		rest = after
	}

	ln.Operands, err = splitOperands(rest)
	return ln, err
}

// parsePrefixes consumes LOCK, REP forms and segment shorthands in any order.
func (ln *Line) parsePrefixes(s string) string {
	for s != "" {
		if len(s) >= 3 && s[2] == ':' {
			if seg, ok := cpu.Seg(s[:2]); ok {
				ln.Segment = cpu.SegmentPrefix(seg)
				s = trimLeft(s[3:])
				continue
			}
		}

		word, rest := nextWord(s)
		switch Lookup(word) {
		case TokLOCK:
			ln.Lock = true
		case TokREP:
			ln.Rep = Rep
		case TokREPNZ:
			ln.Rep = RepNZ
		default:
			return s
		}
		s = rest
	}
	return s
}

// dataSize recognises DB, DW and DD by shape and returns the element size.
func dataSize(word string) int {
	if len(word) != 2 || word[0] != 'D' {
		return 0
	}
	switch word[1] {
	case 'B':
		return 1
	case 'W':
		return 2
	case 'D':
		return 4
	}
	return 0
}

// Prefixes returns the prefix bytes the line asks for, in emission order.
func (ln *Line) Prefixes() []byte {
	var out []byte
	if ln.Segment != 0 {
		out = append(out, ln.Segment)
	}
	if ln.Lock {
		out = append(out, cpu.PrefixLock)
	}
	switch ln.Rep {
	case Rep:
		out = append(out, cpu.PrefixRep)
	case RepNZ:
		out = append(out, cpu.PrefixRepNZ)
	}
	return out
}

func trimLeft(s string) string {
	for s != "" && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
