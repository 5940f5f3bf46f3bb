package cpu

// ModRM mod field values.
const (
	// 00: memory, no displacement (rm 110 is a direct 16-bit address)
	ModNoDisp uint8 = 0

	// 01: memory with signed 8-bit displacement
	ModDisp8 uint8 = 1

	// 10: memory with 16-bit displacement
	ModDisp16 uint8 = 2

	// 11: register operand
	ModRegister uint8 = 3
)

// ModRM rm field values for memory operands.
const (
	RMBXSI uint8 = 0 // [BX+SI]
	RMBXDI uint8 = 1 // [BX+DI]
	RMBPSI uint8 = 2 // [BP+SI]
	RMBPDI uint8 = 3 // [BP+DI]
	RMSI   uint8 = 4 // [SI]
	RMDI   uint8 = 5 // [DI]
	RMBP   uint8 = 6 // [BP], or a direct address when mod is 00
	RMBX   uint8 = 7 // [BX]

	// RMDirect is the rm value selecting a bare 16-bit address with mod 00.
	RMDirect = RMBP
)

// Prefix bytes.
const (
	PrefixES    byte = 0x26
	PrefixCS    byte = 0x2E
	PrefixSS    byte = 0x36
	PrefixDS    byte = 0x3E
	PrefixLock  byte = 0xF0
	PrefixRepNZ byte = 0xF2
	PrefixRep   byte = 0xF3
)

// ModRM packs the three ModRM fields into one byte.
func ModRM(mod, reg, rm uint8) byte {
	return (mod&3)<<6 | (reg&7)<<3 | rm&7
}

// SplitModRM unpacks a ModRM byte.
func SplitModRM(b byte) (mod, reg, rm uint8) {
	return b >> 6, (b >> 3) & 7, b & 7
}

// SegmentPrefix returns the override prefix for a segment register index
// (ES=0, CS=1, SS=2, DS=3).
func SegmentPrefix(seg uint8) byte {
	return 0x26 | (seg&3)<<3
}
