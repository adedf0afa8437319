package buffer

import "sync"

// Pool hands out zeroed scratch Buffers. The fourier transforms stage their
// Forward input and Inverse bit-reversed spectrum in pooled buffers, so one
// Pool is shared by every transform instance. Safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	p := &Pool{}
	p.pool.New = func() any { return New(0) }

	return p
}

// Get returns a zeroed Buffer of the given length, reusing a released one
// when available. Release it with Put once the scratch data is consumed.
func (p *Pool) Get(length int) *Buffer {
	b, _ := p.pool.Get().(*Buffer)
	if b == nil {
		b = New(0)
	}

	b.Resize(length)
	b.Zero()

	return b
}

// Put releases b for reuse. b must not be touched afterwards; nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b != nil {
		p.pool.Put(b)
	}
}
