package deque

import (
	"fmt"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/segment"
)

// Deque is a double-ended sequence stored in fixed-size chunks.
//
// Logical element i lives at flattened position front+i; position p maps to
// row p/chunkSize and column p%chunkSize of the block directory.
type Deque[T any] struct {
	cfg     Config[T]
	dir     *segment.Directory[T]
	front   int
	back    int
	growths int
}

// Stats is a snapshot of a Deque's internal layout.
type Stats struct {
	ChunkSize int // elements per chunk
	Rows      int // directory row capacity
	RowsInUse int // rows holding an allocated chunk
	Front     int // flattened position of the first element
	Back      int // flattened position one past the last element
	Len       int // number of elements
	Growths   int // directory reallocations so far
}

// New creates an empty Deque. No storage is allocated until the first push.
//
// Parameters:
//   - opts: Optional configuration (WithChunkSize, WithAllocator, WithCopier, ...)
//
// Returns:
//   - *Deque[T]: The empty container
//   - error: An option error, e.g. errs.ErrInvalidChunkSize
func New[T any](opts ...Option[T]) (*Deque[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Deque[T]{cfg: cfg}, nil
}

// NewWithCount creates a Deque holding count zero values.
func NewWithCount[T any](count int, opts ...Option[T]) (*Deque[T], error) {
	return newSized(count, opts, func(Config[T]) (T, error) {
		var zero T
		return zero, nil
	})
}

// NewFilled creates a Deque holding count copies of value.
//
// Each element is produced by the configured copier. If a copy fails, every
// element and chunk built so far is released and the copier's error is returned.
//
// Parameters:
//   - count: Number of elements, must not be negative
//   - value: Value to copy into every slot
//   - opts: Optional configuration
//
// Returns:
//   - *Deque[T]: The filled container
//   - error: errs.ErrInvalidCount, an option error, or a copy/allocation error
func NewFilled[T any](count int, value T, opts ...Option[T]) (*Deque[T], error) {
	return newSized(count, opts, func(cfg Config[T]) (T, error) {
		return cfg.copyValue(value)
	})
}

// FromSlice creates a Deque holding copies of values in order.
func FromSlice[T any](values []T, opts ...Option[T]) (*Deque[T], error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := d.PushBack(v); err != nil {
			d.Release()
			return nil, err
		}
	}

	return d, nil
}

// newSized builds a container of count elements, each produced by next.
func newSized[T any](count int, opts []Option[T], next func(Config[T]) (T, error)) (*Deque[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCount, count)
	}

	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return d, nil
	}

	cs := d.cfg.chunkSize
	rows := segment.RowsFor(count, cs)
	if d.cfg.maxRows > 0 && rows > d.cfg.maxRows {
		return nil, fmt.Errorf("%w: need %d rows, limit is %d", errs.ErrCapacityExceeded, rows, d.cfg.maxRows)
	}

	dir := segment.NewDirectory[T](rows)
	committed := false
	defer func() {
		if !committed {
			dir.ReleaseAll(d.cfg.alloc)
		}
	}()

	var chunk []T
	for p := range count {
		row, col := p/cs, p%cs
		if col == 0 {
			if chunk, err = dir.Allocate(row, cs, d.cfg.alloc); err != nil {
				return nil, err
			}
		}
		if chunk[col], err = next(d.cfg); err != nil {
			return nil, err
		}
	}
	committed = true

	d.dir = dir
	d.back = count

	return d, nil
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.back - d.front
}

// Empty reports whether the container holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.back == d.front
}

// ChunkSize returns the number of elements per chunk.
func (d *Deque[T]) ChunkSize() int {
	return d.cfg.chunkSize
}

// Index returns a pointer to element i without bounds checking.
//
// An index outside [0, Len()) either panics or yields a vacant slot; use At or
// AtPtr when the index is not known to be valid.
func (d *Deque[T]) Index(i int) *T {
	p := d.front + i
	cs := d.cfg.chunkSize

	return &d.dir.Chunk(p / cs)[p%cs]
}

// At returns element i.
//
// Returns errs.ErrOutOfRange when i is outside [0, Len()).
func (d *Deque[T]) At(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return *d.Index(i), nil
}

// AtPtr returns a pointer to element i for in-place mutation.
//
// Returns errs.ErrOutOfRange when i is outside [0, Len()).
func (d *Deque[T]) AtPtr(i int) (*T, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, err
	}

	return d.Index(i), nil
}

// Set overwrites element i with v as is, without going through the copier.
func (d *Deque[T]) Set(i int, v T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	*d.Index(i) = v

	return nil
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.Len() {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrOutOfRange, i, d.Len())
	}

	return nil
}

// Clone returns a deep copy of the container.
//
// Elements are copied through the configured copier into freshly allocated
// chunks laid out like the source. On failure every chunk built for the copy is
// released and the copier or allocator error is returned unchanged; the source
// is never modified.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	c := &Deque[T]{cfg: d.cfg}
	if d.Empty() {
		return c, nil
	}

	cs := d.cfg.chunkSize
	dir := segment.NewDirectory[T](d.dir.Rows())
	committed := false
	defer func() {
		if !committed {
			dir.ReleaseAll(d.cfg.alloc)
		}
	}()

	for p := d.front; p < d.back; p++ {
		row, col := p/cs, p%cs
		dst := dir.Chunk(row)
		if dst == nil {
			var err error
			if dst, err = dir.Allocate(row, cs, d.cfg.alloc); err != nil {
				return nil, err
			}
		}
		v, err := d.cfg.copyValue(d.dir.Chunk(row)[col])
		if err != nil {
			return nil, err
		}
		dst[col] = v
	}
	committed = true

	c.dir = dir
	c.front, c.back = d.front, d.back

	return c, nil
}

// Assign replaces the contents of d with a deep copy of src.
//
// The copy is built first and swapped in only once complete, so d is left
// untouched if copying fails. Assigning a container to itself is a no-op.
// d also takes over src's configuration.
func (d *Deque[T]) Assign(src *Deque[T]) error {
	if d == src {
		return nil
	}

	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	d.swap(tmp)
	tmp.Release()

	return nil
}

// swap exchanges the complete state of d and o.
func (d *Deque[T]) swap(o *Deque[T]) {
	*d, *o = *o, *d
}

// Release drops every element and chunk and leaves an empty, reusable container.
// Iterators created before the call become stale.
func (d *Deque[T]) Release() {
	if d.dir != nil {
		for row := range d.dir.Rows() {
			clear(d.dir.Chunk(row))
		}
		d.dir.ReleaseAll(d.cfg.alloc)
	}
	d.dir = nil
	d.front, d.back = 0, 0
}

// Stats returns a snapshot of the internal layout.
func (d *Deque[T]) Stats() Stats {
	return Stats{
		ChunkSize: d.cfg.chunkSize,
		Rows:      d.dir.Rows(),
		RowsInUse: d.dir.InUse(),
		Front:     d.front,
		Back:      d.back,
		Len:       d.Len(),
		Growths:   d.growths,
	}
}
