// Package filecrypt streams data from a reader to a writer through a
// snuffle cipher, XORing it chunk by chunk. Since the transform is an
// involution the same call encrypts and decrypts.
package filecrypt

import (
	"fmt"
	"io"

	"snuffle-go/pkg/buffers"
	"snuffle-go/pkg/snuffle"
)

var chunkPool = buffers.NewBufferPool(buffers.DefaultBufferSize)

// Options controls a single streaming pass.
type Options struct {
	// SkipBlocks advances the keystream before any data is processed,
	// starting the transform at byte offset SkipBlocks*64. Use it to
	// decrypt a 64-byte-aligned slice of a large stream.
	SkipBlocks uint64
}

// Process XORs everything read from r through c into w and reports the
// number of bytes written. The cipher must already be keyed and nonced;
// Process continues at its current stream position.
func Process(c *snuffle.Cipher, r io.Reader, w io.Writer, opts Options) (int64, error) {
	if opts.SkipBlocks > 0 {
		if err := c.SkipBlocks(opts.SkipBlocks); err != nil {
			return 0, fmt.Errorf("filecrypt: skip %d blocks: %w", opts.SkipBlocks, err)
		}
	}

	buf := chunkPool.Get()
	defer chunkPool.Put(buf)

	var written int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if err := c.TransformInPlace(buf[:n]); err != nil {
				return written, fmt.Errorf("filecrypt: transform: %w", err)
			}
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, fmt.Errorf("filecrypt: write: %w", werr)
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, fmt.Errorf("filecrypt: read: %w", rerr)
		}
	}
}
