// Package disassembler turns 8086 machine code back into source text.
package disassembler

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is for a jump or loop target.
	JumpTarget LabelType = iota
	// SubroutineEntry is for a CALL target.
	SubroutineEntry
)

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	Address uint16
	Bytes   []byte
	// Op is zero for bytes that did not decode.
	Op   x86asm.Op
	Text string
	// Target is the destination of a relative jump or call.
	Target    uint16
	HasTarget bool
	IsCode    bool // reached from the entry point
	inst      x86asm.Inst
}

// Len returns the instruction length in bytes.
func (i *Instruction) Len() int {
	return len(i.Bytes)
}

// decodeAt decodes one instruction, falling back to a single data byte.
func decodeAt(code []byte, off int, origin uint16) *Instruction {
	addr := origin + uint16(off)
	inst, err := x86asm.Decode(code[off:], 16)
	if err != nil || inst.Len == 0 || inst.Op == 0 {
		return &Instruction{
			Address: addr,
			Bytes:   code[off : off+1],
			Text:    fmt.Sprintf("db 0x%02x", code[off]),
		}
	}

	in := &Instruction{
		Address: addr,
		Bytes:   code[off : off+inst.Len],
		Op:      inst.Op,
		inst:    inst,
	}
	if rel, ok := inst.Args[0].(x86asm.Rel); ok {
		in.Target = addr + uint16(inst.Len) + uint16(int16(rel))
		in.HasTarget = true
	}
	return in
}

// DecodeLinear decodes every byte of code in order, one instruction after
// another.
func DecodeLinear(code []byte, origin uint16) []*Instruction {
	var out []*Instruction
	for off := 0; off < len(code); {
		in := decodeAt(code, off, origin)
		in.IsCode = in.Op != 0
		out = append(out, in)
		off += in.Len()
	}
	for _, in := range out {
		render(in, nil)
	}
	return out
}

// Decode follows control flow from the first byte of code. Bytes never
// reached are returned as data in db rows.
func Decode(code []byte, origin uint16) ([]*Instruction, map[uint16]LabelType) {
	// Stage 1: walk the flow graph.
	found := make(map[int]*Instruction)
	covered := make([]bool, len(code))
	labels := make(map[uint16]LabelType)
	q := newQueue()
	if len(code) > 0 {
		q.push(0)
	}

	for {
		off, ok := q.pop()
		if !ok {
			break
		}
		if off < 0 || off >= len(code) || covered[off] {
			continue
		}

		in := decodeAt(code, off, origin)
		if in.Op == 0 {
			continue
		}
		overlaps := false
		for i := off; i < off+in.Len(); i++ {
			if covered[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := off; i < off+in.Len(); i++ {
			covered[i] = true
		}
		in.IsCode = true
		found[off] = in

		if !isTerminal(in.Op) {
			q.push(off + in.Len())
		}
		if in.HasTarget {
			target := int(in.Target - origin)
			q.push(target)
			if isCall(in.Op) {
				labels[in.Target] = SubroutineEntry
			} else if _, exists := labels[in.Target]; !exists {
				labels[in.Target] = JumpTarget
			}
		}
	}

	// Stage 2: fill the gaps with data.
	var out []*Instruction
	for off := 0; off < len(code); {
		if in, ok := found[off]; ok {
			out = append(out, in)
			off += in.Len()
			continue
		}
		end := off
		for end < len(code) && !covered[end] {
			end++
		}
		out = append(out, dataRows(code[off:end], origin+uint16(off))...)
		off = end
	}

	// Labels pointing inside an instruction or into data are dropped.
	starts := make(map[uint16]bool, len(out))
	for _, in := range out {
		if in.IsCode {
			starts[in.Address] = true
		}
	}
	for addr := range labels {
		if !starts[addr] {
			delete(labels, addr)
		}
	}

	lookup := func(addr uint64) (string, uint64) {
		if t, ok := labels[uint16(addr)]; ok {
			return labelName(uint16(addr), t), addr
		}
		return "", 0
	}
	for _, in := range out {
		render(in, lookup)
	}
	return out, labels
}

// render fills in Text for decoded instructions.
func render(in *Instruction, lookup x86asm.SymLookup) {
	if in.Op == 0 || in.Text != "" {
		return
	}
	if lookup == nil {
		lookup = func(uint64) (string, uint64) { return "", 0 }
	}
	if in.HasTarget {
		target := fmt.Sprintf("0x%04x", in.Target)
		if name, _ := lookup(uint64(in.Target)); name != "" {
			target = name
		}
		in.Text = strings.ToLower(in.Op.String()) + " " + target
		return
	}
	in.Text = strings.ToLower(x86asm.IntelSyntax(in.inst, uint64(in.Address), lookup))
}

// Disassemble returns source text for code loaded at origin. Each row carries
// its address and bytes in a trailing comment.
func Disassemble(code []byte, origin uint16) (string, error) {
	if len(code) == 0 {
		return "", nil
	}

	instructions, labels := Decode(code, origin)

	var out strings.Builder
	if origin != 0 {
		fmt.Fprintf(&out, "    org 0x%04x\n", origin)
	}
	for _, in := range instructions {
		if t, ok := labels[in.Address]; ok && in.IsCode {
			fmt.Fprintf(&out, "%s:\n", labelName(in.Address, t))
		}
		fmt.Fprintf(&out, "    %-32s ; %04X: % X\n", in.Text, in.Address, in.Bytes)
	}
	return out.String(), nil
}

// isTerminal checks if an instruction unconditionally stops linear execution.
func isTerminal(op x86asm.Op) bool {
	switch op {
	case x86asm.JMP, x86asm.LJMP, x86asm.RET, x86asm.LRET, x86asm.IRET, x86asm.HLT:
		return true
	}
	return false
}

func isCall(op x86asm.Op) bool {
	return op == x86asm.CALL || op == x86asm.LCALL
}

func labelName(addr uint16, t LabelType) string {
	if t == SubroutineEntry {
		return fmt.Sprintf("sub_%04x", addr)
	}
	return fmt.Sprintf("loc_%04x", addr)
}

// addrQueue is a simple worklist queue for offsets to decode.
type addrQueue struct {
	items []int
	seen  map[int]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[int]bool)}
}

func (q *addrQueue) push(off int) {
	if !q.seen[off] {
		q.items = append(q.items, off)
		q.seen[off] = true
	}
}

func (q *addrQueue) pop() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	off := q.items[0]
	q.items = q.items[1:]
	return off, true
}
