package assembler

import "fmt"

// Severity grades a diagnostic. Its numeric value is the verbosity level
// from which it is reported.
type Severity int

const (
	// SevError marks a line that could not be assembled as written.
	SevError Severity = iota
	// SevWarning marks suspicious but encodable input.
	SevWarning
	// SevNotice marks informational warnings, such as a redefined constant.
	SevNotice
)

// String names the severity as printed. Notices are minor warnings and
// print as such; they differ only in the verbosity level that shows them.
func (s Severity) String() string {
	if s == SevError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a message tied to a source line.
type Diagnostic struct {
	Line     int
	Severity Severity
	Text     string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Text)
}

// report counts a diagnostic and keeps it if the verbosity allows.
func (s *Session) report(sev Severity, format string, args ...any) {
	if sev == SevError {
		s.errors++
	} else {
		s.warnings++
	}

	if int(sev) <= s.cfg.Verbosity {
		s.diags = append(s.diags, Diagnostic{
			Line:     s.line,
			Severity: sev,
			Text:     fmt.Sprintf(format, args...),
		})
	}

	if sev == SevError && s.cfg.MaxErrors > 0 && s.errors >= s.cfg.MaxErrors {
		s.stop = true
	}
}

func (s *Session) errorf(format string, args ...any) {
	s.report(SevError, format, args...)
}

func (s *Session) warnf(format string, args ...any) {
	s.report(SevWarning, format, args...)
}

func (s *Session) noticef(format string, args ...any) {
	s.report(SevNotice, format, args...)
}
