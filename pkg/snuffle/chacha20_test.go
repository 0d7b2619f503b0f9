package snuffle

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	refchacha "golang.org/x/crypto/chacha20"
)

func TestChaChaQuarterRound(t *testing.T) {
	a, b, c, d := uint32(0x11111111), uint32(0x01020304), uint32(0x9b8d6f43), uint32(0x01234567)
	chacha20{}.quarterRound(&a, &b, &c, &d)
	want := [4]uint32{0xea2a92f4, 0xcb1cf8ce, 0x4581472e, 0x5881c4bb}
	if got := [4]uint32{a, b, c, d}; got != want {
		t.Errorf("quarterRound = %08x, want %08x", got, want)
	}
}

// TestChaCha20ZeroKeyFirstBlock checks the well-known first keystream
// block for an all-zero key and nonce.
func TestChaCha20ZeroKeyFirstBlock(t *testing.T) {
	want, err := hex.DecodeString(
		"76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7" +
			"da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586")
	if err != nil {
		t.Fatal(err)
	}

	c, err := NewCipher(ChaCha20, make([]byte, KeySize))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	got := make([]byte, BlockSize)
	if err := c.KeystreamBlock(got); err != nil {
		t.Fatalf("KeystreamBlock: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("first block mismatch:\n got %x\nwant %x", got, want)
	}
}

// TestChaCha20MatchesReference pins the keystream against
// golang.org/x/crypto/chacha20. The reference takes a 12-byte IETF
// nonce with a 32-bit counter; with the first nonce word zero both
// layouts agree as long as fewer than 2^32 blocks are produced.
func TestChaCha20MatchesReference(t *testing.T) {
	for _, n := range []int{1, 63, 64, 65, 517, 4096} {
		key := make([]byte, KeySize)
		nonce := make([]byte, NonceSize)
		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(nonce); err != nil {
			t.Fatal(err)
		}

		c, err := NewCipher(ChaCha20, key)
		if err != nil {
			t.Fatalf("NewCipher: %v", err)
		}
		if err := c.SetNonceHex(hex.EncodeToString(nonce)); err != nil {
			t.Fatalf("SetNonceHex: %v", err)
		}

		src := make([]byte, n)
		got := make([]byte, n)
		if err := c.Transform(got, src); err != nil {
			t.Fatalf("Transform: %v", err)
		}

		ref, err := refchacha.NewUnauthenticatedCipher(key, append(make([]byte, 4), nonce...))
		if err != nil {
			t.Fatalf("reference cipher: %v", err)
		}
		want := make([]byte, n)
		ref.XORKeyStream(want, src)
		if !bytes.Equal(got, want) {
			t.Fatalf("keystream diverges from x/crypto/chacha20 at length %d", n)
		}
	}
}

func BenchmarkChaCha20(b *testing.B) {
	benchmarkVariant(b, ChaCha20)
}
