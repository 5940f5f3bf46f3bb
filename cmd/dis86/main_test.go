package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Urethramancer/msa86/output"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.com")
	if err := os.WriteFile(in, []byte{0xB4, 0x4C, 0xCD, 0x21}, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(options{input: in, origin: "0x100"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"org 0x0100", "; 0100: B4 4C", "; 0102: CD 21"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}

	name := filepath.Join(dir, "prog.asm")
	if err := run(options{input: in, output: name, origin: "0x100", linear: true}, &out); err != nil {
		t.Fatal(err)
	}
	text, err := os.ReadFile(name)
	if err != nil || strings.Contains(string(text), "org") || !strings.Contains(string(text), "; 0100: B4 4C") {
		t.Errorf("linear output = %q, %v", text, err)
	}
}

func TestRun_SkipsHeader(t *testing.T) {
	in := filepath.Join(t.TempDir(), "prog.exe")
	file := append(output.Header(output.FormatTEXE, 0, 1, 0), 0xC3)
	if err := os.WriteFile(in, file, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(options{input: in, origin: "0x100"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "; 0000: C3") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run(options{input: "does-not-exist", origin: "0"}, &bytes.Buffer{}); err == nil {
		t.Error("missing input accepted")
	}
	if err := run(options{input: "x", origin: "zz"}, &bytes.Buffer{}); err == nil {
		t.Error("bad origin accepted")
	}
}
