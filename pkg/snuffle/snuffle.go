// Package snuffle implements the Salsa20 and ChaCha20 additive stream
// ciphers from D. J. Bernstein's Snuffle family, with the classic 64-bit
// nonce and 64-bit block counter. A cipher instance expands a 16- or
// 32-byte key into a 4x4 matrix of 32-bit words, derives 64-byte
// keystream blocks from it with 20 rounds of ARX mixing, and XORs that
// keystream against caller buffers. The same call encrypts and decrypts.
//
// More info at http://cr.yp.to/snuffle.html and https://cr.yp.to/chacha.html.
//
// A Cipher is not safe for concurrent use: the matrix counter and the
// intra-block position mutate on every byte processed. Distinct
// instances are fully independent, even when they share a key.
package snuffle

import "math"

const (
	// BlockSize is the size of one keystream block in bytes.
	BlockSize = 64

	// KeySize and KeySizeShort are the two accepted key lengths.
	KeySize      = 32
	KeySizeShort = 16

	// NonceSize is the nonce length in bytes.
	NonceSize = 8

	rounds = 20

	constants16 = "expand 16-byte k"
	constants32 = "expand 32-byte k"
)

// constantsFor selects the constant string from the original key length.
// This is the only place key-length information affects the keystream.
func constantsFor(origKeyLen int) string {
	if origKeyLen == KeySizeShort {
		return constants16
	}
	return constants32
}

// Variant selects a member of the cipher family. The set is closed;
// no further layouts or round functions exist.
type Variant uint8

const (
	Salsa20 Variant = iota
	ChaCha20
)

func (v Variant) String() string {
	switch v {
	case Salsa20:
		return "salsa20"
	case ChaCha20:
		return "chacha20"
	}
	return "unknown"
}

// variantOps is the capability surface a variant must provide: matrix
// layout, the quarter-round formula and its double-round composition,
// and the location of the nonce and counter words.
type variantOps interface {
	buildMatrix(m *[16]uint32, key *[8]uint32, origKeyLen int)
	quarterRound(a, b, c, d *uint32)
	doubleRound(s *[16]uint32)
	setNonce(m *[16]uint32, w0, w1 uint32)
	counter(m *[16]uint32) uint64
	setCounter(m *[16]uint32, ctr uint64)
	incrementCounter(m *[16]uint32) bool
}

func (v Variant) ops() variantOps {
	if v == Salsa20 {
		return salsa20{}
	}
	return chacha20{}
}

// Cipher is a single keystream instance. The key and variant are fixed
// at construction; the nonce starts a logical stream and resets the
// block counter; the counter is the only matrix component that mutates
// while streaming.
type Cipher struct {
	variant Variant
	ops     variantOps
	matrix  [16]uint32

	// Current keystream block and how many of its bytes have been
	// consumed. Owned by the instance, never shared.
	block [BlockSize]byte
	pos   int

	exhausted bool
}

// NewCipher creates a cipher from a raw 16- or 32-byte key.
func NewCipher(v Variant, key []byte) (*Cipher, error) {
	words, origLen, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return newCipher(v, &words, origLen), nil
}

// NewCipherFromASCII creates a cipher from a 16- or 32-character key
// string whose character codes are used as raw key bytes.
func NewCipherFromASCII(v Variant, key string) (*Cipher, error) {
	return NewCipher(v, []byte(key))
}

// NewCipherFromHex creates a cipher from a 32- or 64-digit hex key
// string (no 0x prefix).
func NewCipherFromHex(v Variant, key string) (*Cipher, error) {
	words, origLen, err := expandHexKey(key)
	if err != nil {
		return nil, err
	}
	return newCipher(v, &words, origLen), nil
}

func newCipher(v Variant, words *[8]uint32, origKeyLen int) *Cipher {
	c := &Cipher{variant: v, ops: v.ops()}
	c.ops.buildMatrix(&c.matrix, words, origKeyLen)
	return c
}

// Variant reports which cipher family member this instance runs.
func (c *Cipher) Variant() Variant { return c.variant }

// SetNonce loads an 8-byte nonce from a 64-bit value and resets the
// block counter to zero, starting a new logical stream under the same
// key. The high 32 bits land in the first nonce word.
func (c *Cipher) SetNonce(nonce uint64) {
	c.ops.setNonce(&c.matrix, uint32(nonce>>32), uint32(nonce))
	c.pos = 0
	c.exhausted = false
}

// SetNonceHex loads the nonce from exactly 16 hex digits (no 0x
// prefix), each pair read as one little-endian byte. On error the
// instance keeps its previous nonce and counter.
func (c *Cipher) SetNonceHex(nonce string) error {
	if len(nonce) != 2*NonceSize {
		return ErrNonceLength
	}
	w0, err := wordFromHex(nonce, 0)
	if err != nil {
		return ErrNonceFormat
	}
	w1, err := wordFromHex(nonce, 8)
	if err != nil {
		return ErrNonceFormat
	}
	c.ops.setNonce(&c.matrix, w0, w1)
	c.pos = 0
	c.exhausted = false
	return nil
}

// keystreamBlock derives the next 64 keystream bytes into out and
// advances the block counter by one: ten double rounds over a working
// copy of the matrix, word-wise addition of the pre-round matrix, then
// little-endian serialization in row-major order.
func (c *Cipher) keystreamBlock(out *[BlockSize]byte) error {
	if c.exhausted {
		return ErrCounterExhausted
	}
	working := c.matrix
	for i := 0; i < rounds; i += 2 {
		c.ops.doubleRound(&working)
	}
	for i := range working {
		working[i] += c.matrix[i]
	}
	for i, w := range working {
		putLEWord(out[i*4:], w)
	}
	if c.ops.incrementCounter(&c.matrix) {
		// Counter wrapped past 2^64 blocks. The block just produced is
		// still valid; everything after it would reuse keystream.
		c.exhausted = true
	}
	return nil
}

// KeystreamBlock writes the next 64-byte keystream block into dst and
// advances the counter, without consuming any plaintext. It draws from
// the same counter schedule as Transform. Panics if dst is shorter than
// BlockSize.
func (c *Cipher) KeystreamBlock(dst []byte) error {
	if len(dst) < BlockSize {
		panic("snuffle: keystream destination shorter than one block")
	}
	var b [BlockSize]byte
	if err := c.keystreamBlock(&b); err != nil {
		return err
	}
	copy(dst, b[:])
	return nil
}

// Transform XORs src against the keystream into dst, continuing at the
// current stream position. dst must be at least as long as src and may
// be exactly src for an in-place transform; any other overlap is a
// precondition violation. A zero-length src generates no keystream.
// The operation is an involution: transforming twice from the same
// key/nonce/counter position returns the original bytes.
func (c *Cipher) Transform(dst, src []byte) error {
	if len(dst) < len(src) {
		panic("snuffle: output buffer shorter than input")
	}
	for len(src) > 0 {
		if c.pos == 0 {
			if err := c.keystreamBlock(&c.block); err != nil {
				return err
			}
		}
		n := BlockSize - c.pos
		if n > len(src) {
			n = len(src)
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ c.block[c.pos+i]
		}
		c.pos = (c.pos + n) % BlockSize
		src = src[n:]
		dst = dst[n:]
	}
	return nil
}

// TransformInPlace XORs buf against the keystream, overwriting it.
func (c *Cipher) TransformInPlace(buf []byte) error {
	return c.Transform(buf, buf)
}

// SkipBlocks advances the block counter by n without emitting bytes, so
// the next transform starts at byte offset n*64 of the keystream. Use
// it on a fresh stream, right after setting the nonce, to decrypt a
// slice of a large stream without walking the keystream up to it.
func (c *Cipher) SkipBlocks(n uint64) error {
	if c.exhausted {
		return ErrCounterExhausted
	}
	if n == 0 {
		return nil
	}
	cur := c.ops.counter(&c.matrix)
	if n > math.MaxUint64-cur {
		c.exhausted = true
		return ErrCounterExhausted
	}
	c.ops.setCounter(&c.matrix, cur+n)
	return nil
}
