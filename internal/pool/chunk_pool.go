package pool

import (
	"sync"
	"sync/atomic"
)

// Allocator hands out and takes back fixed-size chunks of element storage.
//
// Alloc must return a slice whose length equals size with every slot holding
// the zero value. Free receives chunks previously returned by Alloc; callers
// never touch a chunk after freeing it.
type Allocator[T any] interface {
	Alloc(size int) ([]T, error)
	Free(chunk []T)
}

// HeapAllocator allocates every chunk with make and leaves freed chunks to the GC.
type HeapAllocator[T any] struct{}

var _ Allocator[int] = HeapAllocator[int]{}

// Alloc allocates a new zeroed chunk.
func (HeapAllocator[T]) Alloc(size int) ([]T, error) {
	return make([]T, size), nil
}

// Free is a no-op; the chunk becomes garbage once the caller drops it.
func (HeapAllocator[T]) Free([]T) {}

// ChunkPool recycles chunks of a single size through a sync.Pool.
//
// Freed chunks are cleared before they are pooled so that values they used to
// hold do not stay reachable. Requests for a size other than the pool's size
// bypass the pool.
type ChunkPool[T any] struct {
	size  int
	pool  sync.Pool
	stats poolCounters
}

type poolCounters struct {
	allocs atomic.Int64
	reused atomic.Int64
	frees  atomic.Int64
}

// ChunkPoolStats is a point-in-time view of a ChunkPool's counters.
type ChunkPoolStats struct {
	Allocs int64 // chunks handed out by Alloc
	Reused int64 // Allocs that were satisfied from the pool
	Frees  int64 // chunks returned through Free
}

var _ Allocator[int] = (*ChunkPool[int])(nil)

// NewChunkPool creates a pool for chunks of the given size.
//
// Parameters:
//   - size: Number of element slots per chunk
//
// Returns:
//   - *ChunkPool[T]: Pool ready for use as an Allocator
func NewChunkPool[T any](size int) *ChunkPool[T] {
	return &ChunkPool[T]{size: size}
}

// Size returns the chunk size served by the pool.
func (p *ChunkPool[T]) Size() int {
	return p.size
}

// Alloc returns a zeroed chunk, reusing a pooled one when available.
func (p *ChunkPool[T]) Alloc(size int) ([]T, error) {
	p.stats.allocs.Add(1)
	if size != p.size {
		return make([]T, size), nil
	}

	if ptr, ok := p.pool.Get().(*[]T); ok && ptr != nil && len(*ptr) == size {
		p.stats.reused.Add(1)
		return *ptr, nil
	}

	return make([]T, size), nil
}

// Free clears the chunk and returns it to the pool.
func (p *ChunkPool[T]) Free(chunk []T) {
	if chunk == nil {
		return
	}
	p.stats.frees.Add(1)
	clear(chunk)
	if len(chunk) != p.size {
		return
	}
	p.pool.Put(&chunk)
}

// Stats returns the pool counters.
func (p *ChunkPool[T]) Stats() ChunkPoolStats {
	return ChunkPoolStats{
		Allocs: p.stats.allocs.Load(),
		Reused: p.stats.reused.Load(),
		Frees:  p.stats.frees.Load(),
	}
}
