package snuffle

import (
	"encoding/binary"
	"encoding/hex"
)

// leWord assembles one 32-bit word from four little-endian bytes.
func leWord(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// putLEWord splits a 32-bit word into four little-endian bytes.
func putLEWord(dst []byte, w uint32) {
	binary.LittleEndian.PutUint32(dst, w)
}

// wordFromASCII reads the four characters at s[pos:pos+4] as raw bytes.
func wordFromASCII(s string, pos int) uint32 {
	return leWord([]byte(s[pos : pos+4]))
}

// wordFromHex reads the eight hex digits at s[pos:pos+8] as four
// little-endian bytes.
func wordFromHex(s string, pos int) (uint32, error) {
	var b [4]byte
	if _, err := hex.Decode(b[:], []byte(s[pos:pos+8])); err != nil {
		return 0, err
	}
	return leWord(b[:]), nil
}
