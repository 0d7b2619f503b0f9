package transform

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestCipherTransformerRoundTrip(t *testing.T) {
	for _, name := range []string{"salsa20", "chacha20"} {
		tr, err := NewTransformer(name, randomKey(t), 77)
		if err != nil {
			t.Fatalf("NewTransformer(%s): %v", name, err)
		}
		data := []byte("The quick brown fox jumps over the lazy dog")

		enc, err := tr.Transform(data)
		if err != nil {
			t.Fatalf("%s: Transform: %v", name, err)
		}
		if bytes.Equal(enc, data) {
			t.Errorf("%s: ciphertext equals plaintext", name)
		}
		dec, err := tr.InverseTransform(enc)
		if err != nil {
			t.Fatalf("%s: InverseTransform: %v", name, err)
		}
		if !bytes.Equal(dec, data) {
			t.Errorf("%s: round trip mismatch, got %q", name, dec)
		}
	}
}

func TestCipherTransformerBadKey(t *testing.T) {
	if _, err := NewTransformer("chacha20", make([]byte, 5), 0); err == nil {
		t.Error("expected error for a 5-byte key")
	}
	if _, err := NewTransformer("chacha20", nil, 0); err == nil {
		t.Error("expected error for a nil key")
	}
}

func TestZstdRoundTrip(t *testing.T) {
	tr, err := NewTransformer("zstd", nil, 0)
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	data := bytes.Repeat([]byte("compressible "), 500)

	packed, err := tr.Transform(data)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(packed) >= len(data) {
		t.Errorf("zstd did not shrink repetitive input: %d -> %d", len(data), len(packed))
	}
	unpacked, err := tr.InverseTransform(packed)
	if err != nil {
		t.Fatalf("InverseTransform: %v", err)
	}
	if !bytes.Equal(unpacked, data) {
		t.Error("zstd round trip mismatch")
	}
}

func TestUnknownTransformer(t *testing.T) {
	if _, err := NewTransformer("rot13", nil, 0); err == nil {
		t.Error("expected error for unknown transformer")
	}
}

func TestChainCompressThenEncrypt(t *testing.T) {
	key := randomKey(t)
	comp, err := NewTransformer("zstd", nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := NewTransformer("chacha20", key, 5)
	if err != nil {
		t.Fatal(err)
	}
	chain := NewChain(comp, enc)

	data := bytes.Repeat([]byte("snuffle "), 1000)
	sealed, err := chain.Transform(data)
	if err != nil {
		t.Fatalf("chain Transform: %v", err)
	}
	opened, err := chain.InverseTransform(sealed)
	if err != nil {
		t.Fatalf("chain InverseTransform: %v", err)
	}
	if !bytes.Equal(opened, data) {
		t.Error("chain round trip mismatch")
	}
}
