package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/pool"
)

// ==============================================================================
// Construction
// ==============================================================================

func TestNew_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d := mustNew[int](t)
		require.Equal(t, DefaultChunkSize, d.ChunkSize())
		require.True(t, d.Empty())
		require.Nil(t, d.dir, "no storage before the first push")
		requireContents(t, d, nil)
	})

	t.Run("chunk size", func(t *testing.T) {
		d := mustNew(t, WithChunkSize[int](3))
		require.Equal(t, 3, d.ChunkSize())
	})

	t.Run("invalid chunk size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			_, err := New(WithChunkSize[int](size))
			require.ErrorIs(t, err, errs.ErrInvalidChunkSize)
		}
	})

	t.Run("negative max rows", func(t *testing.T) {
		_, err := New(WithMaxRows[int](-1))
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})

	t.Run("nil allocator", func(t *testing.T) {
		_, err := New(WithAllocator[int](nil))
		require.ErrorIs(t, err, errs.ErrNilAllocator)
	})

	t.Run("nil copier", func(t *testing.T) {
		_, err := New(WithCopier[int](nil))
		require.ErrorIs(t, err, errs.ErrNilCopier)
	})

	t.Run("recycling uses chunk pool", func(t *testing.T) {
		d := mustNew(t, WithChunkSize[int](4), WithChunkRecycling[int]())
		cp, ok := d.cfg.alloc.(*pool.ChunkPool[int])
		require.True(t, ok)
		require.Equal(t, 4, cp.Size())
	})
}

func TestNewWithCount(t *testing.T) {
	d, err := NewWithCount[int](10, WithChunkSize[int](4))
	require.NoError(t, err)
	requireContents(t, d, make([]int, 10))

	st := d.Stats()
	require.Equal(t, 3, st.Rows)
	require.Equal(t, 3, st.RowsInUse)
	require.Equal(t, 0, st.Front)
	require.Equal(t, 10, st.Back)

	empty, err := NewWithCount[int](0)
	require.NoError(t, err)
	requireContents(t, empty, nil)

	_, err = NewWithCount[int](-1)
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}

func TestNewFilled(t *testing.T) {
	d, err := NewFilled(5, "x", WithChunkSize[string](2))
	require.NoError(t, err)
	requireContents(t, d, []string{"x", "x", "x", "x", "x"})

	t.Run("row limit", func(t *testing.T) {
		_, err := NewFilled(9, 1, WithChunkSize[int](2), WithMaxRows[int](4))
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]int{1, 2, 3, 4, 5}, WithChunkSize[int](2))
	require.NoError(t, err)
	requireContents(t, d, []int{1, 2, 3, 4, 5})

	empty, err := FromSlice[int](nil)
	require.NoError(t, err)
	requireContents(t, empty, nil)
}

// ==============================================================================
// Element access
// ==============================================================================

func TestAccess(t *testing.T) {
	d, err := FromSlice(seq(0, 10), WithChunkSize[int](3))
	require.NoError(t, err)

	for i := range 10 {
		v, err := d.At(i)
		require.NoError(t, err)
		require.Equal(t, i, v)
		require.Equal(t, i, *d.Index(i))
	}

	for _, i := range []int{-1, 10, 100} {
		_, err := d.At(i)
		require.ErrorIs(t, err, errs.ErrOutOfRange)
		_, err = d.AtPtr(i)
		require.ErrorIs(t, err, errs.ErrOutOfRange)
		require.ErrorIs(t, d.Set(i, 0), errs.ErrOutOfRange)
	}

	p, err := d.AtPtr(4)
	require.NoError(t, err)
	*p = 40
	require.NoError(t, d.Set(5, 50))
	require.Equal(t, 40, *d.Index(4))
	require.Equal(t, 50, *d.Index(5))

	require.NoError(t, d.Swap(0, 9))
	require.Equal(t, 9, *d.Index(0))
	require.Equal(t, 0, *d.Index(9))
	require.ErrorIs(t, d.Swap(0, 10), errs.ErrOutOfRange)
}

// ==============================================================================
// Copy, assign, release
// ==============================================================================

func TestClone(t *testing.T) {
	d := mustNew(t, WithChunkSize[int](4))
	for i := range 10 {
		require.NoError(t, d.PushFront(i))
	}
	want := d.ToSlice()

	c, err := d.Clone()
	require.NoError(t, err)
	requireContents(t, c, want)
	require.Equal(t, d.Stats().Front, c.Stats().Front, "clone keeps the layout")

	require.NoError(t, c.Set(0, -1))
	require.NoError(t, c.PushBack(100))
	requireContents(t, d, want)

	t.Run("empty", func(t *testing.T) {
		e, err := mustNew[int](t).Clone()
		require.NoError(t, err)
		requireContents(t, e, nil)
		require.NoError(t, e.PushBack(1))
		requireContents(t, e, []int{1})
	})
}

type node struct {
	vals []int
}

func (n *node) Clone() (*node, error) {
	return &node{vals: append([]int(nil), n.vals...)}, nil
}

func TestClone_DeepCopiesCloners(t *testing.T) {
	d := mustNew[*node](t, WithChunkSize[*node](2))
	orig := &node{vals: []int{1, 2}}
	require.NoError(t, d.PushBack(orig))

	stored := *d.Index(0)
	require.NotSame(t, orig, stored, "push clones the value")
	require.Equal(t, orig.vals, stored.vals)

	c, err := d.Clone()
	require.NoError(t, err)
	require.NotSame(t, stored, *c.Index(0))

	(*c.Index(0)).vals[0] = 42
	require.Equal(t, 1, (*d.Index(0)).vals[0])
}

func TestAssign(t *testing.T) {
	src, err := FromSlice(seq(0, 7), WithChunkSize[int](2))
	require.NoError(t, err)
	dst, err := FromSlice([]int{9, 9}, WithChunkSize[int](5))
	require.NoError(t, err)

	require.NoError(t, dst.Assign(src))
	requireContents(t, dst, seq(0, 7))
	require.Equal(t, 2, dst.ChunkSize())

	require.NoError(t, dst.PushBack(7))
	requireContents(t, src, seq(0, 7))

	t.Run("self", func(t *testing.T) {
		require.NoError(t, dst.Assign(dst))
		requireContents(t, dst, seq(0, 8))
	})
}

func TestRelease(t *testing.T) {
	alloc := &countingAllocator[int]{}
	d := mustNew(t, WithChunkSize[int](3), WithAllocator[int](alloc))
	for i := range 20 {
		require.NoError(t, d.PushBack(i))
	}
	require.Equal(t, 7, alloc.live)

	it := d.Begin()
	d.Release()
	require.Zero(t, alloc.live)
	require.False(t, it.Valid())
	requireContents(t, d, nil)

	require.NoError(t, d.PushFront(1))
	requireContents(t, d, []int{1})
}

func TestStats_Growth(t *testing.T) {
	d := mustNew(t, WithChunkSize[int](4))
	require.Equal(t, Stats{ChunkSize: 4}, d.Stats())

	for i := range 4 {
		require.NoError(t, d.PushBack(i))
	}
	st := d.Stats()
	require.Equal(t, 1, st.Rows)
	require.Equal(t, 1, st.Growths)

	// The fifth element runs past the single row: 1 + 6*ceil(1/2) rows,
	// active rows moved to row 3.
	require.NoError(t, d.PushBack(4))
	st = d.Stats()
	require.Equal(t, 7, st.Rows)
	require.Equal(t, 2, st.RowsInUse)
	require.Equal(t, 12, st.Front)
	require.Equal(t, 17, st.Back)
	require.Equal(t, 5, st.Len)
	require.Equal(t, 2, st.Growths)
	requireContents(t, d, seq(0, 5))
}
