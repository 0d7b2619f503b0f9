package filecrypt

import (
	"bytes"
	"crypto/rand"
	"testing"

	"snuffle-go/pkg/snuffle"
)

func newCipher(t *testing.T, key []byte, nonce uint64) *snuffle.Cipher {
	t.Helper()
	c, err := snuffle.NewCipher(snuffle.ChaCha20, key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	c.SetNonce(nonce)
	return c
}

func TestProcessRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	plaintext := make([]byte, 100_000)
	if _, err := rand.Read(plaintext); err != nil {
		t.Fatal(err)
	}

	var ciphertext bytes.Buffer
	n, err := Process(newCipher(t, key, 1), bytes.NewReader(plaintext), &ciphertext, Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n != int64(len(plaintext)) {
		t.Fatalf("wrote %d bytes, want %d", n, len(plaintext))
	}
	if bytes.Equal(ciphertext.Bytes(), plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	var decrypted bytes.Buffer
	if _, err := Process(newCipher(t, key, 1), &ciphertext, &decrypted, Options{}); err != nil {
		t.Fatalf("Process (decrypt): %v", err)
	}
	if !bytes.Equal(decrypted.Bytes(), plaintext) {
		t.Fatal("round trip mismatch")
	}
}

func TestProcessEmptyInput(t *testing.T) {
	key := make([]byte, 32)
	var out bytes.Buffer
	n, err := Process(newCipher(t, key, 1), bytes.NewReader(nil), &out, Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n != 0 || out.Len() != 0 {
		t.Fatalf("empty input produced %d bytes", out.Len())
	}
}

// Decrypting from a block-aligned offset with SkipBlocks must agree
// with decrypting the whole stream and slicing.
func TestProcessSkipBlocks(t *testing.T) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	plaintext := make([]byte, 1000)
	if _, err := rand.Read(plaintext); err != nil {
		t.Fatal(err)
	}

	var ciphertext bytes.Buffer
	if _, err := Process(newCipher(t, key, 9), bytes.NewReader(plaintext), &ciphertext, Options{}); err != nil {
		t.Fatal(err)
	}

	const skip = 3
	offset := skip * snuffle.BlockSize
	var tail bytes.Buffer
	_, err := Process(newCipher(t, key, 9),
		bytes.NewReader(ciphertext.Bytes()[offset:]), &tail, Options{SkipBlocks: skip})
	if err != nil {
		t.Fatalf("Process with skip: %v", err)
	}
	if !bytes.Equal(tail.Bytes(), plaintext[offset:]) {
		t.Fatal("offset decryption mismatch")
	}
}
