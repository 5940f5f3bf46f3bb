package cpu

// Register names in encoding order.
var (
	Reg8Names  = [8]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}
	Reg16Names = [8]string{"AX", "CX", "DX", "BX", "SP", "BP", "SI", "DI"}
	SegNames   = [4]string{"ES", "CS", "SS", "DS"}
)

// Reg8 returns the encoding of an 8-bit register name, ignoring case.
func Reg8(name string) (uint8, bool) {
	return lookup(Reg8Names[:], name)
}

// Reg16 returns the encoding of a 16-bit register name, ignoring case.
func Reg16(name string) (uint8, bool) {
	return lookup(Reg16Names[:], name)
}

// Seg returns the encoding of a segment register name, ignoring case.
func Seg(name string) (uint8, bool) {
	return lookup(SegNames[:], name)
}

func lookup(names []string, name string) (uint8, bool) {
	if len(name) != 2 {
		return 0, false
	}

	a, b := upper(name[0]), upper(name[1])
	for i, n := range names {
		if n[0] == a && n[1] == b {
			return uint8(i), true
		}
	}

	return 0, false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
