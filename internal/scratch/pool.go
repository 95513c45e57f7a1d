// Package scratch provides pooled float64 work buffers for the rebinners.
//
// Buffers handed out by [Get] are owned by the caller until returned with
// [Put]; they never escape the call that borrowed them.
package scratch

import "sync"

// Buffer is a reusable float64 work area.
type Buffer struct {
	data []float64
}

// Data returns the borrowed slice.
func (b *Buffer) Data() []float64 {
	return b.data
}

var pool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// Get returns a zeroed buffer of length n.
func Get(n int) *Buffer {
	b := pool.Get().(*Buffer)
	if n < 0 {
		n = 0
	}

	if cap(b.data) < n {
		b.data = make([]float64, n)
		return b
	}

	b.data = b.data[:n]
	clear(b.data)

	return b
}

// Put returns b to the pool. The caller must not touch b afterwards.
func Put(b *Buffer) {
	if b == nil {
		return
	}
	pool.Put(b)
}
