// Package transform provides whole-message transformations for the
// snuffle command: stream-cipher encryption, zstd compression, and a
// Chain composing them.
package transform

import (
	"errors"
	"fmt"

	"snuffle-go/pkg/snuffle"

	"github.com/klauspost/compress/zstd"
)

// Transformer applies a reversible transformation to a whole message.
type Transformer interface {
	Transform(data []byte) ([]byte, error)
	InverseTransform(data []byte) ([]byte, error)
}

// NewTransformer creates a transformer by name. key and nonce are used
// by the cipher transformers and ignored by the others.
func NewTransformer(name string, key []byte, nonce uint64) (Transformer, error) {
	switch name {
	case "null":
		return &NullTransformer{}, nil
	case "salsa20":
		return newCipherTransformer(snuffle.Salsa20, key, nonce)
	case "chacha20":
		return newCipherTransformer(snuffle.ChaCha20, key, nonce)
	case "zstd":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		return &ZstdTransformer{encoder: enc, decoder: dec}, nil
	default:
		return nil, fmt.Errorf("unknown transformer: %s", name)
	}
}

// NullTransformer is a pass-through transformer.
type NullTransformer struct{}

func (n *NullTransformer) Transform(data []byte) ([]byte, error) {
	return data, nil
}
func (n *NullTransformer) InverseTransform(data []byte) ([]byte, error) {
	return data, nil
}

// CipherTransformer XORs each message against a fresh keystream derived
// from a fixed key and nonce, so Transform and InverseTransform are the
// same operation and each message stands alone. Callers must not reuse
// one configured nonce for more than one distinct message.
type CipherTransformer struct {
	variant snuffle.Variant
	key     []byte
	nonce   uint64
}

func newCipherTransformer(v snuffle.Variant, key []byte, nonce uint64) (*CipherTransformer, error) {
	if key == nil {
		return nil, errors.New("cipher transformer requires a key")
	}
	// Fail on bad keys at construction, not per message.
	if _, err := snuffle.NewCipher(v, key); err != nil {
		return nil, err
	}
	return &CipherTransformer{
		variant: v,
		key:     append([]byte(nil), key...),
		nonce:   nonce,
	}, nil
}

func (t *CipherTransformer) apply(data []byte) ([]byte, error) {
	c, err := snuffle.NewCipher(t.variant, t.key)
	if err != nil {
		return nil, err
	}
	c.SetNonce(t.nonce)
	out := make([]byte, len(data))
	if err := c.Transform(out, data); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *CipherTransformer) Transform(data []byte) ([]byte, error) {
	return t.apply(data)
}

// InverseTransform is the same XOR as Transform.
func (t *CipherTransformer) InverseTransform(data []byte) ([]byte, error) {
	return t.apply(data)
}

// ZstdTransformer compresses data using Zstandard.
type ZstdTransformer struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdTransformer) Transform(data []byte) ([]byte, error) {
	return z.encoder.EncodeAll(data, nil), nil
}

func (z *ZstdTransformer) InverseTransform(data []byte) ([]byte, error) {
	return z.decoder.DecodeAll(data, nil)
}

// Chain applies transformers in order and inverts them in reverse, so
// compress-then-encrypt round-trips as decrypt-then-decompress.
type Chain struct {
	steps []Transformer
}

func NewChain(steps ...Transformer) *Chain {
	return &Chain{steps: steps}
}

func (c *Chain) Transform(data []byte) ([]byte, error) {
	var err error
	for _, s := range c.steps {
		if data, err = s.Transform(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (c *Chain) InverseTransform(data []byte) ([]byte, error) {
	var err error
	for i := len(c.steps) - 1; i >= 0; i-- {
		if data, err = c.steps[i].InverseTransform(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}
