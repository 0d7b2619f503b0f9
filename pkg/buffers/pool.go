// Package buffers maintains pooled byte slices so repeated streaming
// transforms reuse their chunk buffers instead of reallocating them.
package buffers

import "sync"

// DefaultBufferSize is the default chunk size handed out by the pool.
// It is a multiple of the 64-byte keystream block size so chunk
// boundaries stay aligned with cipher blocks.
const DefaultBufferSize = 32 * 1024

// BufferPool maintains a pool of byte slices of a fixed size.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a pool handing out buffers of the given size.
func NewBufferPool(size int) *BufferPool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool.
func (p *BufferPool) Get() []byte {
	buf := *(p.pool.Get().(*[]byte))
	if cap(buf) < p.size {
		buf = make([]byte, p.size)
	}
	return buf[:p.size]
}

// Put returns a buffer to the pool. The buffer must not be used after
// it is returned.
func (p *BufferPool) Put(buf []byte) {
	if cap(buf) < p.size {
		return
	}
	p.pool.Put(&buf)
}

// Size reports the length of buffers handed out by the pool.
func (p *BufferPool) Size() int { return p.size }
