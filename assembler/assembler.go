package assembler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrConfig is returned for an unusable configuration.
	ErrConfig = errors.New("invalid configuration")
	// ErrOutput is returned when the output sink fails.
	ErrOutput = errors.New("output failed")
)

// Config holds the settings of one assembly run.
type Config struct {
	// Origin is the address of the first emitted byte.
	Origin uint16
	// Passes is the minimum number of passes; only the last one writes
	// output. Trial passes are added while symbol values still move.
	Passes int
	// BufferSize is the output buffer capacity in bytes.
	BufferSize int
	// Verbosity selects which diagnostics are returned: 0 errors,
	// 1 adds warnings, 2 adds notices.
	Verbosity int
	// MaxErrors stops a pass after that many errors. 0 means no limit.
	MaxErrors int
	// Preamble is emitted at the start of every pass, before the source.
	Preamble []byte
	// Listing records address, bytes and source for each line of the final pass.
	Listing bool
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// DefaultConfig returns the settings of a COM-style run.
func DefaultConfig() Config {
	return Config{
		Origin:     0x100,
		Passes:     2,
		BufferSize: 0x1000,
		Verbosity:  2,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Passes < 1 {
		return fmt.Errorf("%w: passes must be at least 1, got %d", ErrConfig, c.Passes)
	}
	if c.BufferSize < MinBufferSize {
		return fmt.Errorf("%w: buffer size must be at least %d, got %d", ErrConfig, MinBufferSize, c.BufferSize)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("%w: verbosity must be 0..2, got %d", ErrConfig, c.Verbosity)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("%w: max errors must not be negative", ErrConfig)
	}
	return nil
}

// ListingLine is one row of the listing.
type ListingLine struct {
	Line    int
	Address uint16
	Bytes   []byte
	Source  string
	// Code is set for instruction lines, as opposed to data and directives.
	Code bool
}

// Result is what a run produced, taken from its final pass.
type Result struct {
	Errors       int
	Warnings     int
	Diagnostics  []Diagnostic
	EntryPoint   uint16
	EntryDefined bool
	Exports      []Symbol
	Symbols      []Symbol
	Size         int
	Lines        []ListingLine
}

// Session holds the state for the assembly process.
type Session struct {
	cfg     Config
	log     *log.Logger
	symbols *SymbolTable
	out     *outBuffer

	pass   int
	line   int
	origin uint16
	stop   bool

	errors   int
	warnings int
	diags    []Diagnostic

	entry        uint16
	entryDefined bool
	listing      []ListingLine

	final bool
	// moved counts symbols whose value differs from the previous pass.
	moved int
	// unresolved counts lookups of symbols not defined yet.
	unresolved int
}

// New creates a session for the given configuration.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lg := cfg.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}

	return &Session{
		cfg:     cfg,
		log:     lg,
		symbols: NewSymbolTable(),
		out:     newOutBuffer(cfg.BufferSize),
	}, nil
}

// Assemble runs a fresh session over src and returns the machine code.
func Assemble(src string, cfg Config) ([]byte, *Result, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	res, err := s.Run(src, &buf)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), res, nil
}

// maxExtraPasses bounds the trial passes added while symbol values settle.
const maxExtraPasses = 8

// Run assembles src with all passes in order. The final pass streams its
// bytes to sink. Each run starts from an empty symbol table.
//
// Passes before the final one are trial runs. When the last trial pass still
// moved a symbol, or the only trial pass met forward references, another
// trial pass is added, up to maxExtraPasses. A symbol that still moves on the
// final pass gets a warning.
func (s *Session) Run(src string, sink io.Writer) (*Result, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	s.symbols = NewSymbolTable()
	s.final = false

	for s.pass = 0; !s.settled(); s.pass++ {
		if err := s.runPass(lines, nil); err != nil {
			return nil, err
		}
		s.logPass()
	}

	s.final = true
	if err := s.runPass(lines, sink); err != nil {
		return nil, err
	}
	s.logPass()

	return &Result{
		Errors:       s.errors,
		Warnings:     s.warnings,
		Diagnostics:  s.diags,
		EntryPoint:   s.entry,
		EntryDefined: s.entryDefined,
		Exports:      s.symbols.Exports(),
		Symbols:      s.symbols.All(),
		Size:         s.out.Offset(),
		Lines:        s.listing,
	}, nil
}

func (s *Session) runPass(lines []string, sink io.Writer) error {
	s.out.reset(sink)
	s.origin = s.cfg.Origin
	s.stop = false
	s.errors, s.warnings = 0, 0
	s.diags = nil
	s.entry, s.entryDefined = 0, false
	s.listing = nil
	s.moved, s.unresolved = 0, 0

	s.out.write(s.cfg.Preamble...)
	for i, raw := range lines {
		if s.stop {
			break
		}
		s.line = i + 1
		if err := s.out.maybeFlush(); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		s.symbols.SetReserved("$", s.pc())
		s.symbols.SetReserved("$$", int32(s.origin))
		s.assembleLine(raw)
	}

	if err := s.out.flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

// assembleLine parses one line and emits its bytes.
func (s *Session) assembleLine(raw string) {
	addr := s.pc()
	mark := s.out.mark()
	code := false
	if s.cfg.Listing && s.finalPass() {
		defer func() {
			s.listing = append(s.listing, ListingLine{
				Line:    s.line,
				Address: uint16(addr),
				Bytes:   bytes.Clone(s.out.since(mark)),
				Source:  raw,
				Code:    code,
			})
		}()
	}

	ln, err := ParseLine(raw)
	if ln.Label != "" {
		s.define(ln.Label, KindLabel, addr)
	}
	if err != nil {
		s.errorf("syntax error: %v", err)
		return
	}

	if ln.IsEqu() {
		s.define(ln.Name, KindExpression, s.Evaluate(ln.Raw))
		return
	}

	if !ln.IsEmpty() {
		s.out.write(ln.Prefixes()...)
		code = s.assembleCommand(&ln)
	}
}

// assembleCommand dispatches on the command word. It reports whether the
// line was an instruction.
func (s *Session) assembleCommand(ln *Line) bool {
	switch {
	case ln.Mnemonic == "":
		return true
	case ln.Data != 0:
		s.assembleData(ln)
		return false
	}

	switch ln.Command {
	case TokORG, TokEND, TokCONST, TokEXPORT:
		s.assembleDirective(ln)
		return false
	case TokNone:
		s.errorf("syntax error: unknown instruction %s", ln.Mnemonic)
		return false
	}

	s.assembleInstruction(ln)
	return true
}

// pc returns the address of the next byte to be emitted.
func (s *Session) pc() int32 {
	return int32(s.origin) + int32(s.out.Offset())
}

func (s *Session) finalPass() bool {
	return s.final
}

// settled reports whether the trial passes run so far leave the symbol
// values stable enough for the final pass.
func (s *Session) settled() bool {
	switch {
	case s.pass < s.cfg.Passes-1:
		return false
	case s.pass == 0, s.pass >= s.cfg.Passes-1+maxExtraPasses:
		return true
	case s.pass == 1:
		// Pass 0 saw every forward reference as 0.
		return s.unresolved == 0
	}
	return s.moved == 0
}

func (s *Session) logPass() {
	s.log.Debug("pass complete", "pass", s.pass+1, "final", s.final, "bytes", s.out.Offset(),
		"symbols", s.symbols.Len(), "moved", s.moved, "errors", s.errors, "warnings", s.warnings)
}
