package assembler

import (
	"errors"
	"strings"
)

var (
	// ErrTooManyOperands is reported for instruction lines with more than two operands.
	ErrTooManyOperands = errors.New("too many operands")
	// ErrMissingOperand is reported for an empty operand between commas.
	ErrMissingOperand = errors.New("missing operand")
	// ErrUnterminatedQuote is reported when a line ends inside a quoted string.
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// maxOperands is the most operands any instruction form takes.
const maxOperands = 2

// normalize strips the comment, folds unquoted letters to upper case and
// collapses runs of unquoted whitespace into one space.
func normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	var quote byte
	space := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if quote != 0 {
			b.WriteByte(c)
			if c == quote {
				quote = 0
			}
			continue
		}

		switch {
		case c == ';':
			i = len(raw)
			continue
		case c <= ' ':
			space = true
			continue
		case c == '\'' || c == '"':
			quote = c
		}

		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteByte(toUpper(c))
	}

	if quote != 0 {
		return b.String(), ErrUnterminatedQuote
	}
	return b.String(), nil
}

func isIdentChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
		c == '_' || c == '$' || c == '.' || c == '@' || c == '?'
}

// identLen returns the length of the identifier at the start of s, or 0 if
// s does not start with one. Identifiers may not begin with a digit.
func identLen(s string) int {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return 0
	}
	n := 0
	for n < len(s) && isIdentChar(s[n]) {
		n++
	}
	return n
}

// nextWord splits off the first space-delimited word of a normalized line.
func nextWord(s string) (string, string) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// splitItems splits on commas outside quotes and trims each item.
func splitItems(s string) []string {
	var items []string
	var quote byte
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			items = append(items, strings.TrimSpace(s[last:i]))
			last = i + 1
		}
	}
	return append(items, strings.TrimSpace(s[last:]))
}

// splitOperands splits an instruction's operand field.
func splitOperands(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	ops := splitItems(s)
	if len(ops) > maxOperands {
		return nil, ErrTooManyOperands
	}
	for _, op := range ops {
		if op == "" {
			return nil, ErrMissingOperand
		}
	}
	return ops, nil
}

// compact removes spaces outside quotes.
func compact(s string) string {
	if !strings.ContainsRune(s, ' ') {
		return s
	}

	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ' ':
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
