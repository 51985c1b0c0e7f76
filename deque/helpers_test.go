package deque

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/segdeque/internal/pool"
)

var (
	errCopy  = errors.New("copy failed")
	errAlloc = errors.New("alloc failed")
)

// checkInvariants verifies the chunk layout of d against its cursors.
func checkInvariants[T any](t *testing.T, d *Deque[T]) {
	t.Helper()

	require.LessOrEqual(t, d.front, d.back, "front must not pass back")
	if d.dir == nil {
		require.Zero(t, d.Len())
		return
	}
	require.False(t, d.dir.Retired(), "live directory must not be retired")

	cs := d.cfg.chunkSize
	allocated := 0
	for row := range d.dir.Rows() {
		if chunk := d.dir.Chunk(row); chunk != nil {
			require.Len(t, chunk, cs, "row %d", row)
			allocated++
		}
	}
	require.Equal(t, d.dir.InUse(), allocated, "in-use counter")

	if d.Empty() {
		require.LessOrEqual(t, allocated, 1)
		if allocated == 1 {
			require.NotNil(t, d.dir.Chunk(d.front/cs))
		}

		return
	}

	first, last := d.front/cs, (d.back-1)/cs
	require.Less(t, last, d.dir.Rows())
	require.Equal(t, last-first+1, allocated, "only rows holding live elements are allocated")
	for row := first; row <= last; row++ {
		require.NotNil(t, d.dir.Chunk(row), "row %d", row)
	}
}

// requireContents checks the elements of d and its invariants.
func requireContents[T any](t *testing.T, d *Deque[T], want []T) {
	t.Helper()

	checkInvariants(t, d)
	require.Equal(t, len(want), d.Len())
	got := d.ToSlice()
	if len(want) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, want, got)
}

// mustNew is New for tests.
func mustNew[T any](t *testing.T, opts ...Option[T]) *Deque[T] {
	t.Helper()

	d, err := New(opts...)
	require.NoError(t, err)

	return d
}

// countingAllocator tracks live chunks and can be told to fail.
type countingAllocator[T any] struct {
	heap   pool.HeapAllocator[T]
	live   int
	allocs int
	failAt int // fail the n-th Alloc call (1-based); 0 never fails
}

func (a *countingAllocator[T]) Alloc(size int) ([]T, error) {
	a.allocs++
	if a.failAt > 0 && a.allocs == a.failAt {
		return nil, errAlloc
	}
	a.live++

	return a.heap.Alloc(size)
}

func (a *countingAllocator[T]) Free(chunk []T) {
	a.live--
	a.heap.Free(chunk)
}

// failingCopier returns a copier that succeeds n times and then fails.
func failingCopier[T any](n int) (func(T) (T, error), *int) {
	calls := 0
	return func(v T) (T, error) {
		calls++
		if calls > n {
			var zero T
			return zero, errCopy
		}

		return v, nil
	}, &calls
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

// requirePanicIs checks that fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
