package assembler

// Evaluate reads an expression of terms joined by + - * / %, applied strictly
// left to right. Terms are numbers, quoted characters and symbol names.
// Problems are reported as diagnostics; a failed term makes the result 0.
func (s *Session) Evaluate(text string) int32 {
	var value int32
	i := 0
	for {
		i = skipSpaces(text, i)
		if i >= len(text) {
			return value
		}

		op := byte('+')
		switch text[i] {
		case '+', '-', '*', '/', '%':
			op = text[i]
			i = skipSpaces(text, i+1)
		}

		x, n, ok := s.term(text[i:])
		if !ok {
			return 0
		}
		i += n
		value = s.apply(value, op, x)
	}
}

// term evaluates the term at the start of text and returns its length.
func (s *Session) term(text string) (int32, int, bool) {
	if text == "" {
		s.errorf("missing operand in expression")
		return 0, 0, false
	}

	c := text[0]
	switch {
	case c == '\'' || c == '"':
		for i := 1; i < len(text); i++ {
			if text[i] == c {
				if i == 1 {
					return 0, 2, true
				}
				return int32(text[1]), i + 1, true
			}
		}
		s.errorf("%v in expression", ErrUnterminatedQuote)
		return 0, 0, false

	case c >= '0' && c <= '9':
		n := 0
		for n < len(text) && isIdentChar(text[n]) {
			n++
		}
		return s.parseNumber(text[:n]), n, true

	case isIdentChar(c):
		n := 0
		for n < len(text) && isIdentChar(text[n]) {
			n++
		}
		name := text[:n]
		if sym, ok := s.symbols.Lookup(name); ok {
			return sym.Value, n, true
		}
		s.unresolved++
		if s.pass > 0 {
			s.errorf("unknown constant %s", foldName(name))
		}
		return 0, n, false
	}

	s.errorf("unexpected character %q in expression", c)
	return 0, 0, false
}

func (s *Session) apply(value int32, op byte, x int32) int32 {
	switch op {
	case '-':
		return value - x
	case '*':
		return value * x
	case '/', '%':
		if x == 0 {
			s.errorf("division by zero")
			return 0
		}
		if op == '/' {
			return value / x
		}
		return value % x
	}
	return value + x
}

// parseNumber reads 0x hex, 0b binary or decimal digits. A bad digit is
// reported and counts as zero.
func (s *Session) parseNumber(tok string) int32 {
	base := int32(10)
	if len(tok) >= 2 && tok[0] == '0' {
		switch toUpper(tok[1]) {
		case 'X':
			base, tok = 16, tok[2:]
		case 'B':
			base, tok = 2, tok[2:]
		}
	}

	var value int32
	for i := 0; i < len(tok); i++ {
		d := digitValue(tok[i])
		if d < 0 || d >= base {
			s.errorf("invalid digit %q in number", tok[i])
			d = 0
		}
		value = value*base + d
	}
	return value
}

func digitValue(c byte) int32 {
	switch c = toUpper(c); {
	case c >= '0' && c <= '9':
		return int32(c - '0')
	case c >= 'A' && c <= 'F':
		return int32(c-'A') + 10
	}
	return -1
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
