package snuffle

import "errors"

var (
	// ErrKeyLength reports a key that is not 16 or 32 bytes (32 or 64
	// digits in hex form).
	ErrKeyLength = errors.New("snuffle: key must be 16 or 32 bytes")

	// ErrKeyFormat reports a non-hex character in a hex key.
	ErrKeyFormat = errors.New("snuffle: hex key must contain only hex digits, no 0x prefix")

	// ErrNonceLength reports a hex nonce that is not exactly 16 digits.
	ErrNonceLength = errors.New("snuffle: nonce must be 8 bytes (16 hex digits)")

	// ErrNonceFormat reports a non-hex character in a hex nonce.
	ErrNonceFormat = errors.New("snuffle: hex nonce must contain only hex digits, no 0x prefix")

	// ErrCounterExhausted reports that the 64-bit block counter wrapped.
	// Producing more keystream under the same key and nonce would reuse
	// it, so generation halts instead.
	ErrCounterExhausted = errors.New("snuffle: block counter exhausted, set a fresh nonce")
)
