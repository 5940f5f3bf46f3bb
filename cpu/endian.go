package cpu

import (
	"encoding/binary"
)

// AppendWord appends a little-endian 16-bit word.
func AppendWord(b []byte, w uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, w)
}

// AppendDword appends a little-endian 32-bit value.
func AppendDword(b []byte, d uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, d)
}

// WordsToBytes converts a slice of 16-bit words to a little-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.LittleEndian.PutUint16(out[i*2:], w)
	}
	return out
}
