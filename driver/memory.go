// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package driver

// BufferAlignment is the boundary every operand block inside a pool or value
// blob is rounded up to, so mixed-width constants stay individually aligned.
const BufferAlignment = 8

// AlignedSize rounds size up to the next BufferAlignment boundary.
func AlignedSize(size uint32) uint32 {
	return (size + BufferAlignment - 1) / BufferAlignment * BufferAlignment
}

// Pool is a contiguous block of shared memory referenced by offset/length
// from operands and request arguments.
type Pool interface {
	// Size returns the pool capacity in bytes. Allocators signal failure by
	// returning a pool of size zero for a nonzero request.
	Size() uint32

	// Map returns the pool's writable bytes, or nil if mapping failed.
	Map() []byte
}

// Allocator allocates shared memory pools. It never returns nil: allocation
// failure is reported as a zero-sized pool.
type Allocator interface {
	Allocate(size uint32) Pool
}

// HeapAllocator allocates pools on the Go heap, the in-process stand-in for a
// shared-memory allocator.
type HeapAllocator struct{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(size uint32) Pool {
	return &heapPool{data: make([]byte, size)}
}

type heapPool struct {
	data []byte
}

func (p *heapPool) Size() uint32 { return uint32(len(p.data)) }
func (p *heapPool) Map() []byte  { return p.data }
