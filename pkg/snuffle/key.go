package snuffle

import "encoding/hex"

// expandKey turns a 16- or 32-byte key into the eight matrix key words,
// little-endian. A 16-byte key is duplicated into words 4-7 so every key
// fills the matrix like a 32-byte one. The original length is returned
// as well because it selects the constant words later.
func expandKey(key []byte) (words [8]uint32, origKeyLen int, err error) {
	switch len(key) {
	case KeySizeShort, KeySize:
	default:
		return words, 0, ErrKeyLength
	}
	for i := 0; i < len(key)/4; i++ {
		words[i] = leWord(key[i*4 : i*4+4])
	}
	if len(key) == KeySizeShort {
		copy(words[4:], words[:4])
	}
	return words, len(key), nil
}

// expandHexKey decodes a 32- or 64-digit hex key and expands it.
func expandHexKey(key string) ([8]uint32, int, error) {
	if len(key) != 2*KeySizeShort && len(key) != 2*KeySize {
		return [8]uint32{}, 0, ErrKeyLength
	}
	raw, err := hex.DecodeString(key)
	if err != nil {
		return [8]uint32{}, 0, ErrKeyFormat
	}
	return expandKey(raw)
}
