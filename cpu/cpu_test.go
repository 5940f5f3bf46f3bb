package cpu

import (
	"bytes"
	"testing"
)

func TestModRM(t *testing.T) {
	cases := []struct {
		mod, reg, rm uint8
		want         byte
	}{
		{ModRegister, 0, 3, 0xC3},
		{ModNoDisp, 1, RMDirect, 0x0E},
		{ModDisp8, 7, RMBP, 0x7E},
		{ModDisp16, 2, RMBX, 0x97},
	}
	for _, c := range cases {
		got := ModRM(c.mod, c.reg, c.rm)
		if got != c.want {
			t.Errorf("ModRM(%d,%d,%d) = %#02x, want %#02x", c.mod, c.reg, c.rm, got, c.want)
		}
		mod, reg, rm := SplitModRM(got)
		if mod != c.mod || reg != c.reg || rm != c.rm {
			t.Errorf("SplitModRM(%#02x) = %d,%d,%d", got, mod, reg, rm)
		}
	}
}

func TestSegmentPrefix(t *testing.T) {
	want := []byte{PrefixES, PrefixCS, PrefixSS, PrefixDS}
	for i, w := range want {
		if got := SegmentPrefix(uint8(i)); got != w {
			t.Errorf("SegmentPrefix(%d) = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestRegisters(t *testing.T) {
	if r, ok := Reg8("bh"); !ok || r != 7 {
		t.Errorf("Reg8(bh) = %d, %v", r, ok)
	}
	if r, ok := Reg16("Sp"); !ok || r != 4 {
		t.Errorf("Reg16(Sp) = %d, %v", r, ok)
	}
	if r, ok := Seg("ds"); !ok || r != 3 {
		t.Errorf("Seg(ds) = %d, %v", r, ok)
	}
	for _, name := range []string{"", "A", "AXX", "AL", "EAX"} {
		if _, ok := Reg16(name); ok {
			t.Errorf("Reg16(%q) accepted", name)
		}
	}
}

func TestEndian(t *testing.T) {
	b := AppendWord(nil, 0x1234)
	b = AppendDword(b, 0xAABBCCDD)
	if !bytes.Equal(b, []byte{0x34, 0x12, 0xDD, 0xCC, 0xBB, 0xAA}) {
		t.Errorf("appended = % X", b)
	}
	if got := WordsToBytes([]uint16{0x5A4D, 1}); !bytes.Equal(got, []byte{'M', 'Z', 1, 0}) {
		t.Errorf("WordsToBytes = % X", got)
	}
}

func TestConditionCodes(t *testing.T) {
	if len(ConditionCodes) == 0 {
		t.Fatal("no condition codes")
	}
	for name, cc := range ConditionCodes {
		if cc > 15 {
			t.Errorf("condition %s = %d", name, cc)
		}
	}
	if len(ConditionCodes) != 16 || ConditionCodes["NE"] != 5 || ConditionCodes["G"] != 15 {
		t.Errorf("unexpected table %v", ConditionCodes)
	}
}
