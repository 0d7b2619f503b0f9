package snuffle

import "math/bits"

// Salsa20 matrix layout, row-major. The four constant words sit on the
// diagonal; the key words fill the remaining edge positions; the nonce
// occupies words 6-7 and the block counter words 8-9.
const (
	salsaNonce0   = 6
	salsaNonce1   = 7
	salsaCounter0 = 8
	salsaCounter1 = 9
)

type salsa20 struct{}

func (salsa20) buildMatrix(m *[16]uint32, key *[8]uint32, origKeyLen int) {
	c := constantsFor(origKeyLen)
	m[0] = wordFromASCII(c, 0)
	m[1], m[2], m[3] = key[0], key[1], key[2]
	m[4] = key[3]
	m[5] = wordFromASCII(c, 4)
	m[salsaNonce0], m[salsaNonce1] = 0, 0
	m[salsaCounter0], m[salsaCounter1] = 0, 0
	m[10] = wordFromASCII(c, 8)
	m[11] = key[4]
	m[12], m[13], m[14] = key[5], key[6], key[7]
	m[15] = wordFromASCII(c, 12)
}

// quarterRound mutates four words with Salsa20's XOR-rotate chain.
// All arithmetic is modulo 2^32; wraparound is defined, not a fault.
func (salsa20) quarterRound(a, b, c, d *uint32) {
	*b ^= bits.RotateLeft32(*a+*d, 7)
	*c ^= bits.RotateLeft32(*b+*a, 9)
	*d ^= bits.RotateLeft32(*c+*b, 13)
	*a ^= bits.RotateLeft32(*d+*c, 18)
}

// columnRound runs the quarter round down each column, starting each
// column's operand sequence on the diagonal element.
func (v salsa20) columnRound(s *[16]uint32) {
	v.quarterRound(&s[0], &s[4], &s[8], &s[12])
	v.quarterRound(&s[5], &s[9], &s[13], &s[1])
	v.quarterRound(&s[10], &s[14], &s[2], &s[6])
	v.quarterRound(&s[15], &s[3], &s[7], &s[11])
}

// rowRound runs the quarter round across each row, again starting on
// the diagonal element.
func (v salsa20) rowRound(s *[16]uint32) {
	v.quarterRound(&s[0], &s[1], &s[2], &s[3])
	v.quarterRound(&s[5], &s[6], &s[7], &s[4])
	v.quarterRound(&s[10], &s[11], &s[8], &s[9])
	v.quarterRound(&s[15], &s[12], &s[13], &s[14])
}

// doubleRound is one column round followed by one row round.
func (v salsa20) doubleRound(s *[16]uint32) {
	v.columnRound(s)
	v.rowRound(s)
}

func (salsa20) setNonce(m *[16]uint32, w0, w1 uint32) {
	m[salsaNonce0] = w0
	m[salsaNonce1] = w1
	m[salsaCounter0] = 0
	m[salsaCounter1] = 0
}

func (salsa20) counter(m *[16]uint32) uint64 {
	return uint64(m[salsaCounter1])<<32 | uint64(m[salsaCounter0])
}

func (salsa20) setCounter(m *[16]uint32, ctr uint64) {
	m[salsaCounter0] = uint32(ctr)
	m[salsaCounter1] = uint32(ctr >> 32)
}

// incrementCounter advances the 64-bit block counter by one, carrying
// into the high word. The returned carry reports a wrap past 2^64-1.
func (salsa20) incrementCounter(m *[16]uint32) bool {
	m[salsaCounter0]++
	if m[salsaCounter0] != 0 {
		return false
	}
	m[salsaCounter1]++
	return m[salsaCounter1] == 0
}
