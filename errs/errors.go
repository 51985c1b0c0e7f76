// Package errs defines the sentinel errors returned by segdeque.
//
// Errors are wrapped with context at the failure site using fmt.Errorf("%w: ...")
// so callers should match them with errors.Is rather than by equality.
package errs

import "errors"

var (
	// ErrOutOfRange is returned by checked accessors when the index is outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned when popping or peeking an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrInvalidChunkSize is returned when a chunk size option is not positive.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrInvalidCount is returned when a sizing constructor receives a negative count.
	ErrInvalidCount = errors.New("invalid element count")

	// ErrCapacityExceeded is returned when the block directory would grow past its row limit.
	ErrCapacityExceeded = errors.New("directory capacity exceeded")

	// ErrStaleIterator is raised when an iterator outlived the directory or chunk it points into.
	ErrStaleIterator = errors.New("stale iterator")

	// ErrForeignIterator is returned when an iterator from another container is passed in.
	ErrForeignIterator = errors.New("iterator belongs to another container")

	// ErrNilAllocator is returned when a nil chunk allocator is configured.
	ErrNilAllocator = errors.New("nil chunk allocator")

	// ErrNilCopier is returned when a nil element copier is configured.
	ErrNilCopier = errors.New("nil element copier")
)
