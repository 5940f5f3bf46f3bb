package output

import "github.com/Urethramancer/msa86/cpu"

// HeaderSize is the MZ header length: 16 words, two paragraphs.
const HeaderSize = 0x20

// mzMagic is "MZ" read as a little-endian word.
const mzMagic = 0x5A4D

// paragraphs rounds a byte count up to 16-byte paragraphs.
func paragraphs(n uint16) uint16 {
	p := n >> 4
	if n&0x0f != 0 {
		p++
	}
	return p
}

// Header builds the MZ header for an image of imageSize bytes followed by
// bssSize bytes of uninitialised data.
func Header(f Format, entry, imageSize, bssSize uint16) []byte {
	var w [HeaderSize / 2]uint16

	extra := paragraphs(bssSize)
	if f == FormatTEXE {
		// Claim the rest of the 64 KiB segment for the stack.
		extra = paragraphs(0xFFFF - (imageSize + bssSize))
	}

	w[0] = mzMagic
	w[1] = imageSize % 512
	w[2] = imageSize / 512
	if w[1] != 0 {
		w[2]++
	}
	w[4] = HeaderSize / 16
	w[5] = extra  // minimum extra paragraphs
	w[6] = extra  // maximum extra paragraphs
	w[8] = 0xFFFE // SP
	w[10] = entry // IP

	return cpu.WordsToBytes(w[:])
}
