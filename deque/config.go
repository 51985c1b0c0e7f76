package deque

import (
	"fmt"
	"math"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/options"
	"github.com/arloliu/segdeque/internal/pool"
)

// DefaultChunkSize is the number of element slots per chunk unless WithChunkSize is given.
const DefaultChunkSize = 32

// Allocator hands out and takes back fixed-size chunks of element storage.
//
// Alloc must return a zeroed slice of exactly size elements. Returning an error
// makes the calling operation roll back and return that error unchanged.
type Allocator[T any] = pool.Allocator[T]

// Cloner is implemented by element types that must be deep-copied when stored.
//
// When no copier is configured with WithCopier, values implementing Cloner are
// copied through Clone on every push, fill and container copy. A Clone error
// aborts the operation and leaves the container unchanged.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Config holds the construction parameters of a Deque.
type Config[T any] struct {
	chunkSize int
	maxRows   int
	recycle   bool
	alloc     Allocator[T]
	copier    func(T) (T, error)
}

// Option configures a Deque at construction time.
type Option[T any] = options.Option[*Config[T]]

// WithChunkSize sets the number of elements per chunk. It must be positive.
func WithChunkSize[T any](size int) Option[T] {
	return options.New(func(c *Config[T]) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidChunkSize, size)
		}
		c.chunkSize = size

		return nil
	})
}

// WithMaxRows caps the block directory at the given number of rows.
//
// A push that would grow the directory past the cap fails with
// errs.ErrCapacityExceeded and leaves the container unchanged. Zero removes the cap.
func WithMaxRows[T any](rows int) Option[T] {
	return options.New(func(c *Config[T]) error {
		if rows < 0 {
			return fmt.Errorf("%w: max rows %d", errs.ErrCapacityExceeded, rows)
		}
		c.maxRows = rows

		return nil
	})
}

// WithChunkRecycling makes the container recycle freed chunks through a sync.Pool.
// It is ignored when WithAllocator is also given.
func WithChunkRecycling[T any]() Option[T] {
	return options.NoError(func(c *Config[T]) {
		c.recycle = true
	})
}

// WithAllocator sets the chunk allocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return options.New(func(c *Config[T]) error {
		if alloc == nil {
			return errs.ErrNilAllocator
		}
		c.alloc = alloc

		return nil
	})
}

// WithCopier sets the function used to copy values into the container.
// It takes precedence over a Cloner implementation on the element type.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return options.New(func(c *Config[T]) error {
		if fn == nil {
			return errs.ErrNilCopier
		}
		c.copier = fn

		return nil
	})
}

func newConfig[T any](opts []Option[T]) (Config[T], error) {
	cfg := Config[T]{chunkSize: DefaultChunkSize}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config[T]{}, err
	}
	if err := options.Validate(&cfg, checkAddressable[T]); err != nil {
		return Config[T]{}, err
	}

	if cfg.alloc == nil {
		if cfg.recycle {
			cfg.alloc = pool.NewChunkPool[T](cfg.chunkSize)
		} else {
			cfg.alloc = pool.HeapAllocator[T]{}
		}
	}

	return cfg, nil
}

// checkAddressable rejects a row cap whose flattened index space overflows int.
func checkAddressable[T any](c *Config[T]) error {
	if c.maxRows > math.MaxInt/c.chunkSize {
		return fmt.Errorf("%w: %d rows of %d elements overflow the index space",
			errs.ErrCapacityExceeded, c.maxRows, c.chunkSize)
	}

	return nil
}

// ChunkSize returns the configured chunk size.
func (c Config[T]) ChunkSize() int {
	return c.chunkSize
}

// MaxRows returns the directory row cap, zero when unbounded.
func (c Config[T]) MaxRows() int {
	return c.maxRows
}

// copyValue copies v into a form the container may own.
func (c Config[T]) copyValue(v T) (T, error) {
	if c.copier != nil {
		return c.copier(v)
	}
	if cl, ok := any(v).(Cloner[T]); ok {
		return cl.Clone()
	}

	return v, nil
}
