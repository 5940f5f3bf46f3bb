package assembler_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/msa86/assembler"
)

func mustAssemble(t *testing.T, src string, cfg assembler.Config) ([]byte, *assembler.Result) {
	t.Helper()
	code, res, err := assembler.Assemble(src, cfg)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	return code, res
}

func countContaining(diags []assembler.Diagnostic, text string) int {
	n := 0
	for _, d := range diags {
		if strings.Contains(d.Text, text) {
			n++
		}
	}
	return n
}

func TestRedefinedConstant(t *testing.T) {
	code, res := mustAssemble(t, "foo equ 1\nfoo equ 2\ndb foo", assembler.DefaultConfig())
	if !bytes.Equal(code, []byte{2}) {
		t.Fatalf("expected 02, got % X", code)
	}
	if res.Warnings != 1 || res.Errors != 0 {
		t.Fatalf("expected 1 warning and no errors, got %d/%d", res.Warnings, res.Errors)
	}
	if n := countContaining(res.Diagnostics, "constant FOO changed"); n != 1 {
		t.Fatalf("expected one redefinition diagnostic, got %d: %v", n, res.Diagnostics)
	}
	if res.Diagnostics[0].Severity != assembler.SevNotice || res.Diagnostics[0].Line != 2 {
		t.Errorf("unexpected diagnostic %v", res.Diagnostics[0])
	}
	if got := res.Diagnostics[0].String(); got != "2: warning: constant FOO changed" {
		t.Errorf("notice printed as %q", got)
	}
}

func TestDuplicateLabel(t *testing.T) {
	_, res := mustAssemble(t, "a: nop\na: nop", assembler.DefaultConfig())
	if res.Warnings != 1 {
		t.Fatalf("expected a duplicate label warning, got %v", res.Diagnostics)
	}
}

func TestVerbosityFiltersButCounts(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.Verbosity = 0
	_, res := mustAssemble(t, "foo equ 1\nfoo equ 2\nbogus", cfg)
	if res.Warnings != 1 || res.Errors != 1 {
		t.Fatalf("expected 1 warning and 1 error, got %d/%d", res.Warnings, res.Errors)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Severity != assembler.SevError {
		t.Fatalf("expected only the error to be returned, got %v", res.Diagnostics)
	}
}

func TestShortJumpRange(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		warnings int
	}{
		{"Ahead_127", "jmp short $+129", 0},
		{"Ahead_128", "jmp short $+130", 1},
		{"Behind_128", "jmp short $-126", 0},
		{"Behind_129", "jmp short $-127", 1},
		{"Jcc_Ahead_128", "jne $+130", 1},
	}
	for _, tc := range tests {
		_, res := mustAssemble(t, tc.src, assembler.DefaultConfig())
		if res.Warnings != tc.warnings {
			t.Errorf("[%s] expected %d warnings, got %d: %v", tc.name, tc.warnings, res.Warnings, res.Diagnostics)
		}
		if tc.warnings > 0 && countContaining(res.Diagnostics, "too long jump") != 1 {
			t.Errorf("[%s] expected a too long jump diagnostic, got %v", tc.name, res.Diagnostics)
		}
	}
}

// A forward short jump is out of range on the trial pass only.
func TestForwardShortJumpNoTrialWarning(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.Passes = 3
	_, res := mustAssemble(t, "jmp short l\nl: ret", cfg)
	if res.Warnings != 0 || res.Errors != 0 {
		t.Fatalf("expected a clean result, got %v", res.Diagnostics)
	}
}

// A forward displacement grows on the second pass and moves every later
// label; the jump must still land on the final address.
func TestForwardDisplacementMovesLabels(t *testing.T) {
	code, res := mustAssemble(t, "mov ax,[bx+fwd]\njmp l\nfwd equ 0x200\nl: nop", assembler.DefaultConfig())
	want := []byte{0x8B, 0x87, 0x00, 0x02, 0xE9, 0x00, 0x00, 0x90}
	if !bytes.Equal(code, want) {
		t.Fatalf("expected % X, got % X", want, code)
	}
	if res.Warnings != 0 || res.Errors != 0 {
		t.Errorf("expected a clean result, got %v", res.Diagnostics)
	}
}

// A value that never settles is reported on the final pass.
func TestUnsettledSymbolWarns(t *testing.T) {
	_, res := mustAssemble(t, "x equ x+1\ndw x", assembler.DefaultConfig())
	if res.Errors != 0 {
		t.Fatalf("expected no errors, got %v", res.Diagnostics)
	}
	if n := countContaining(res.Diagnostics, "const X changed between passes"); n != 1 || res.Warnings != 1 {
		t.Fatalf("expected one unsettled symbol warning, got %v", res.Diagnostics)
	}
	if res.Diagnostics[0].Severity != assembler.SevWarning || res.Diagnostics[0].Line != 1 {
		t.Errorf("unexpected diagnostic %v", res.Diagnostics[0])
	}
}

func TestUnknownConstant(t *testing.T) {
	code, res := mustAssemble(t, "mov ax,nowhere+1", assembler.DefaultConfig())
	if res.Errors != 1 || countContaining(res.Diagnostics, "unknown constant NOWHERE") != 1 {
		t.Fatalf("expected an unknown constant error, got %v", res.Diagnostics)
	}
	if !bytes.Equal(code, []byte{0xB8, 0, 0}) {
		t.Errorf("expected the expression to evaluate to 0, got % X", code)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name, src string
		size      int
	}{
		{"Unknown_Instruction", "frob ax", 0},
		{"Too_Many_Operands", "mov ax,bx,cx", 0},
		{"Missing_Operand", "mov ax,", 0},
		{"No_Template", "mov cs", 0},
		{"Unterminated_Quote", "db 'abc", 0},
		{"Prefix_Kept", "rep frob", 1},
		{"Bad_Segment", "mov ax,[xs:bx]", 1},
		{"Text_After_Bracket", "mov ax,[bx]+4", 1},
		{"Far_Without_Segment", "jmp far 0x1234", 1},
		{"Bad_Digit", "db 0x1g", 1},
	}
	for _, tc := range tests {
		code, res := mustAssemble(t, tc.src, assembler.DefaultConfig())
		if res.Errors != 1 {
			t.Errorf("[%s] expected 1 error, got %d: %v", tc.name, res.Errors, res.Diagnostics)
		}
		if len(code) != tc.size {
			t.Errorf("[%s] expected %d bytes, got % X", tc.name, tc.size, code)
		}
	}
}

func TestLabelSurvivesBadLine(t *testing.T) {
	code, res := mustAssemble(t, "nop\nhere: mov ax,bx,cx\ndw here", assembler.DefaultConfig())
	if res.Errors != 1 {
		t.Fatalf("expected 1 error, got %v", res.Diagnostics)
	}
	if !bytes.Equal(code, []byte{0x90, 0x01, 0x01}) {
		t.Fatalf("expected label at 0x101, got % X", code)
	}
}

func TestMaxErrorsStopsPass(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.MaxErrors = 1
	code, res := mustAssemble(t, "frob\nnop\nfrob", cfg)
	if res.Errors != 1 || len(code) != 0 {
		t.Fatalf("expected the pass to stop after one error, got %d errors and % X", res.Errors, code)
	}
}

func TestIdempotentRuns(t *testing.T) {
	src := "start: mov si,data\nlodsb\njmp start\ndata: db 'xyz',0"
	first, _ := mustAssemble(t, src, assembler.DefaultConfig())
	second, _ := mustAssemble(t, src, assembler.DefaultConfig())
	if !bytes.Equal(first, second) {
		t.Fatalf("runs differ:\n% X\n% X", first, second)
	}

	s, err := assembler.New(assembler.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var a, b bytes.Buffer
	if _, err := s.Run(src, &a); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(src, &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), first) || !bytes.Equal(b.Bytes(), first) {
		t.Fatalf("reused session differs:\n% X\n% X", a.Bytes(), b.Bytes())
	}
}

func TestEntryPoint(t *testing.T) {
	_, res := mustAssemble(t, "nop\nstart: ret\nend start", assembler.DefaultConfig())
	if !res.EntryDefined || res.EntryPoint != 0x101 {
		t.Fatalf("expected entry 0x101, got %v %#x", res.EntryDefined, res.EntryPoint)
	}

	_, res = mustAssemble(t, "nop\nend", assembler.DefaultConfig())
	if res.EntryDefined {
		t.Fatalf("END without an address defined an entry point")
	}
}

func TestExports(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.Origin = 0
	src := "export second\nfirst: nop\nsecond: nop\nexport first\n"
	_, res := mustAssemble(t, src, cfg)
	if res.Errors != 0 {
		t.Fatalf("unexpected errors: %v", res.Diagnostics)
	}
	if len(res.Exports) != 2 || res.Exports[0].Name != "FIRST" || res.Exports[1].Name != "SECOND" {
		t.Fatalf("unexpected exports %+v", res.Exports)
	}
	if res.Exports[1].Value != 1 {
		t.Errorf("expected SECOND at 1, got %d", res.Exports[1].Value)
	}

	_, res = mustAssemble(t, "export missing", cfg)
	if res.Errors != 1 {
		t.Fatalf("expected unknown export to be an error, got %v", res.Diagnostics)
	}
}

func TestBufferFlushKeepsOffsets(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.BufferSize = assembler.MinBufferSize
	src := strings.Repeat("nop\n", 600) + "dw $"

	code, res := mustAssemble(t, src, cfg)
	if len(code) != 602 || res.Size != 602 {
		t.Fatalf("expected 602 bytes, got %d (size %d)", len(code), res.Size)
	}
	for i := 0; i < 600; i++ {
		if code[i] != 0x90 {
			t.Fatalf("byte %d is %02X", i, code[i])
		}
	}
	// 0x100 + 600 = 0x358
	if code[600] != 0x58 || code[601] != 0x03 {
		t.Fatalf("expected $ = 0x358, got % X", code[600:])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSinkFailureIsFatal(t *testing.T) {
	s, err := assembler.New(assembler.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Run("nop", failingWriter{})
	if !errors.Is(err, assembler.ErrOutput) {
		t.Fatalf("expected ErrOutput, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		edit func(*assembler.Config)
	}{
		{"Passes", func(c *assembler.Config) { c.Passes = 0 }},
		{"Buffer", func(c *assembler.Config) { c.BufferSize = 100 }},
		{"Verbosity", func(c *assembler.Config) { c.Verbosity = 3 }},
		{"MaxErrors", func(c *assembler.Config) { c.MaxErrors = -1 }},
	}
	for _, tc := range tests {
		cfg := assembler.DefaultConfig()
		tc.edit(&cfg)
		if _, err := assembler.New(cfg); !errors.Is(err, assembler.ErrConfig) {
			t.Errorf("[%s] expected ErrConfig, got %v", tc.name, err)
		}
	}
}

func TestPreamble(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.Preamble = []byte{0xAA}
	code, _ := mustAssemble(t, "dw $", cfg)
	if !bytes.Equal(code, []byte{0xAA, 0x01, 0x01}) {
		t.Fatalf("expected preamble before code, got % X", code)
	}
}

func TestListing(t *testing.T) {
	cfg := assembler.DefaultConfig()
	cfg.Listing = true
	_, res := mustAssemble(t, "nop\n\nmov ax,1\ndb 7", cfg)
	if len(res.Lines) != 4 {
		t.Fatalf("expected 4 listing lines, got %d", len(res.Lines))
	}
	ln := res.Lines[2]
	if ln.Line != 3 || ln.Address != 0x101 || !bytes.Equal(ln.Bytes, []byte{0xB8, 0x01, 0x00}) || !ln.Code {
		t.Errorf("unexpected listing line %+v", ln)
	}
	if res.Lines[3].Code || !bytes.Equal(res.Lines[3].Bytes, []byte{7}) {
		t.Errorf("unexpected data line %+v", res.Lines[3])
	}
}

func TestSymbolsSnapshot(t *testing.T) {
	_, res := mustAssemble(t, "one equ 1\nstart: nop", assembler.DefaultConfig())
	if len(res.Symbols) != 2 {
		t.Fatalf("expected 2 user symbols, got %+v", res.Symbols)
	}
	if res.Symbols[0].Name != "ONE" || res.Symbols[0].Kind != assembler.KindExpression {
		t.Errorf("unexpected first symbol %+v", res.Symbols[0])
	}
	if res.Symbols[1].Name != "START" || res.Symbols[1].Kind != assembler.KindLabel || res.Symbols[1].Value != 0x100 {
		t.Errorf("unexpected second symbol %+v", res.Symbols[1])
	}
}
