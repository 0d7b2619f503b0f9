package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"snuffle-go/pkg/snuffle"
)

func parseVariant(name string) (snuffle.Variant, error) {
	switch name {
	case "salsa20":
		return snuffle.Salsa20, nil
	case "chacha20":
		return snuffle.ChaCha20, nil
	}
	return 0, fmt.Errorf("unknown variant %q (use salsa20 or chacha20)", name)
}

// buildCipher assembles a keyed and nonced cipher from flag values.
func buildCipher(variant, key, keyFormat, nonce string) (*snuffle.Cipher, error) {
	v, err := parseVariant(variant)
	if err != nil {
		return nil, err
	}

	var c *snuffle.Cipher
	switch keyFormat {
	case "hex":
		c, err = snuffle.NewCipherFromHex(v, key)
	case "ascii":
		c, err = snuffle.NewCipherFromASCII(v, key)
	default:
		return nil, fmt.Errorf("unknown key format %q (use hex or ascii)", keyFormat)
	}
	if err != nil {
		return nil, err
	}

	if err := c.SetNonceHex(nonce); err != nil {
		return nil, err
	}
	return c, nil
}

// rawKey decodes the key flag to the raw bytes the transformer layer
// expects.
func rawKey(key, keyFormat string) ([]byte, error) {
	switch keyFormat {
	case "hex":
		raw, err := hex.DecodeString(key)
		if err != nil {
			return nil, snuffle.ErrKeyFormat
		}
		return raw, nil
	case "ascii":
		return []byte(key), nil
	}
	return nil, fmt.Errorf("unknown key format %q (use hex or ascii)", keyFormat)
}

// nonceValue converts a 16-hex-digit nonce into the 64-bit form, so the
// transformer layer loads the same nonce words as SetNonceHex would.
func nonceValue(nonce string) (uint64, error) {
	if len(nonce) != 2*snuffle.NonceSize {
		return 0, snuffle.ErrNonceLength
	}
	raw, err := hex.DecodeString(nonce)
	if err != nil {
		return 0, snuffle.ErrNonceFormat
	}
	w0 := binary.LittleEndian.Uint32(raw[0:4])
	w1 := binary.LittleEndian.Uint32(raw[4:8])
	return uint64(w0)<<32 | uint64(w1), nil
}
