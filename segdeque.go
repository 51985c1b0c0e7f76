// Package segdeque provides a double-ended sequence container stored in
// fixed-size chunks addressed through a growable block directory.
//
// Pushing or popping at either end is amortized O(1) and never moves existing
// elements; growing the container only reallocates the small directory of
// chunk handles. Element access by index is O(1).
//
// # Core Features
//
//   - Generic container over any element type
//   - Checked and unchecked element access
//   - Random-access iterators with read-only and reverse variants
//   - Insert and erase at arbitrary positions
//   - Failure safety: a failed operation leaves the container unchanged
//   - Optional chunk recycling through a sync.Pool
//
// # Basic Usage
//
//	d, _ := segdeque.New[int]()
//	_ = d.PushBack(1)
//	_ = d.PushFront(0)
//	v, _ := d.At(1) // 1
//
//	for i, v := range d.All() {
//	    fmt.Println(i, v)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the deque package,
// simplifying the most common use cases. For advanced configuration, iterators
// and helpers, use the deque package directly.
package segdeque

import (
	"github.com/arloliu/segdeque/deque"
)

// DefaultChunkSize is the number of elements per chunk unless configured otherwise.
const DefaultChunkSize = deque.DefaultChunkSize

// New creates an empty container.
//
// Parameters:
//   - opts: Optional configuration (see deque.Option)
//
// Returns:
//   - *deque.Deque[T]: The created container.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - deque.WithChunkSize(n)
//   - deque.WithMaxRows(n)
//   - deque.WithChunkRecycling()
//   - deque.WithAllocator(alloc)
//   - deque.WithCopier(fn)
//
// Example:
//
//	d, err := segdeque.New(deque.WithChunkSize[string](64))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New[T any](opts ...deque.Option[T]) (*deque.Deque[T], error) {
	return deque.New(opts...)
}

// NewRecycling creates an empty container that recycles freed chunks.
//
// Use this for queues that repeatedly fill and drain, where reusing chunks
// avoids steady allocation churn.
func NewRecycling[T any](opts ...deque.Option[T]) (*deque.Deque[T], error) {
	return deque.New(append([]deque.Option[T]{deque.WithChunkRecycling[T]()}, opts...)...)
}

// NewWithCount creates a container holding count zero values.
func NewWithCount[T any](count int, opts ...deque.Option[T]) (*deque.Deque[T], error) {
	return deque.NewWithCount(count, opts...)
}

// NewFilled creates a container holding count copies of value.
//
// Returns an error if count is negative, the configuration is invalid, or
// copying a value fails. Nothing is retained on failure.
func NewFilled[T any](count int, value T, opts ...deque.Option[T]) (*deque.Deque[T], error) {
	return deque.NewFilled(count, value, opts...)
}

// FromSlice creates a container holding copies of values in order.
func FromSlice[T any](values []T, opts ...deque.Option[T]) (*deque.Deque[T], error) {
	return deque.FromSlice(values, opts...)
}
