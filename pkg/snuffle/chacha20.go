package snuffle

import "math/bits"

// ChaCha20 matrix layout, row-major: row 0 holds the four constant
// words, rows 1-2 the eight key words in order, row 3 the block counter
// followed by the nonce.
const (
	chachaCounter0 = 12
	chachaCounter1 = 13
	chachaNonce0   = 14
	chachaNonce1   = 15
)

type chacha20 struct{}

func (chacha20) buildMatrix(m *[16]uint32, key *[8]uint32, origKeyLen int) {
	c := constantsFor(origKeyLen)
	m[0] = wordFromASCII(c, 0)
	m[1] = wordFromASCII(c, 4)
	m[2] = wordFromASCII(c, 8)
	m[3] = wordFromASCII(c, 12)
	for i, w := range key {
		m[4+i] = w
	}
	m[chachaCounter0], m[chachaCounter1] = 0, 0
	m[chachaNonce0], m[chachaNonce1] = 0, 0
}

// quarterRound mutates four words with ChaCha20's add-rotate-XOR chain
// and its 16/12/8/7 rotation schedule.
func (chacha20) quarterRound(a, b, c, d *uint32) {
	*a += *b
	*d ^= *a
	*d = bits.RotateLeft32(*d, 16)
	*c += *d
	*b ^= *c
	*b = bits.RotateLeft32(*b, 12)
	*a += *b
	*d ^= *a
	*d = bits.RotateLeft32(*d, 8)
	*c += *d
	*b ^= *c
	*b = bits.RotateLeft32(*b, 7)
}

func (v chacha20) columnRound(s *[16]uint32) {
	v.quarterRound(&s[0], &s[4], &s[8], &s[12])
	v.quarterRound(&s[1], &s[5], &s[9], &s[13])
	v.quarterRound(&s[2], &s[6], &s[10], &s[14])
	v.quarterRound(&s[3], &s[7], &s[11], &s[15])
}

// diagonalRound runs the quarter round along the four left-to-right
// diagonals of the matrix.
func (v chacha20) diagonalRound(s *[16]uint32) {
	v.quarterRound(&s[0], &s[5], &s[10], &s[15])
	v.quarterRound(&s[1], &s[6], &s[11], &s[12])
	v.quarterRound(&s[2], &s[7], &s[8], &s[13])
	v.quarterRound(&s[3], &s[4], &s[9], &s[14])
}

// doubleRound is one column round followed by one diagonal round.
func (v chacha20) doubleRound(s *[16]uint32) {
	v.columnRound(s)
	v.diagonalRound(s)
}

func (chacha20) setNonce(m *[16]uint32, w0, w1 uint32) {
	m[chachaCounter0] = 0
	m[chachaCounter1] = 0
	m[chachaNonce0] = w0
	m[chachaNonce1] = w1
}

func (chacha20) counter(m *[16]uint32) uint64 {
	return uint64(m[chachaCounter1])<<32 | uint64(m[chachaCounter0])
}

func (chacha20) setCounter(m *[16]uint32, ctr uint64) {
	m[chachaCounter0] = uint32(ctr)
	m[chachaCounter1] = uint32(ctr >> 32)
}

// incrementCounter advances the 64-bit block counter by one, carrying
// into the high word. The returned carry reports a wrap past 2^64-1.
func (chacha20) incrementCounter(m *[16]uint32) bool {
	m[chachaCounter0]++
	if m[chachaCounter0] != 0 {
		return false
	}
	m[chachaCounter1]++
	return m[chachaCounter1] == 0
}
