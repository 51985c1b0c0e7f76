package deque

import (
	"fmt"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/segment"
)

// PushBack appends a copy of v.
//
// Amortized O(1). Allocates a chunk when the back crosses into a new row and
// reallocates the directory when no row is left behind the last chunk. On any
// error the container is unchanged.
func (d *Deque[T]) PushBack(v T) error {
	return d.push(v, true)
}

// PushFront prepends a copy of v. It mirrors PushBack at the other end.
func (d *Deque[T]) PushFront(v T) error {
	return d.push(v, false)
}

// push places a copy of v next to the back or front element.
//
// Everything that can fail happens against a staging view: the directory to
// write into (the current one or a recentered replacement), the target chunk
// (existing or freshly allocated) and the copied value. Cursors and the
// directory pointer are only updated once the value is stored.
func (d *Deque[T]) push(v T, atBack bool) error {
	cs := d.cfg.chunkSize
	dir, front, back := d.dir, d.front, d.back

	if d.needsGrowth(atBack) {
		var err error
		if dir, front, back, err = d.recentered(atBack); err != nil {
			return err
		}
	}

	pos := back
	if !atBack {
		pos = front - 1
	}
	row, col := pos/cs, pos%cs

	chunk := dir.Chunk(row)
	fresh := chunk == nil
	if fresh {
		var err error
		if chunk, err = dir.Allocate(row, cs, d.cfg.alloc); err != nil {
			return err
		}
	}

	committed := false
	defer func() {
		if !committed && fresh {
			dir.Release(row, d.cfg.alloc)
		}
	}()

	val, err := d.cfg.copyValue(v)
	if err != nil {
		return err
	}
	chunk[col] = val
	committed = true

	if dir != d.dir {
		d.dir.Retire()
		d.dir = dir
		d.growths++
	}
	if atBack {
		d.front, d.back = front, back+1
	} else {
		d.front, d.back = front-1, back
	}

	return nil
}

// needsGrowth reports whether the next push at the given end runs past the directory.
func (d *Deque[T]) needsGrowth(atBack bool) bool {
	if d.dir == nil {
		return true
	}
	if atBack {
		return d.back/d.cfg.chunkSize >= d.dir.Rows()
	}

	return d.front == 0
}

// recentered builds the grown directory and the cursors mapped into it.
// The current directory is not modified.
func (d *Deque[T]) recentered(atBack bool) (*segment.Directory[T], int, int, error) {
	cs := d.cfg.chunkSize
	plan, err := segment.PlanGrowth(d.dir.Rows(), d.dir.InUse(), d.cfg.maxRows)
	if err != nil {
		return nil, 0, 0, err
	}

	if d.dir == nil {
		// First push: the front end starts at the last column so the next
		// push in the same direction still fits in the chunk.
		next := d.dir.Recenter(plan, 0)
		if atBack {
			return next, 0, 0, nil
		}

		return next, cs, cs, nil
	}

	firstRow := d.front / cs
	next := d.dir.Recenter(plan, firstRow)
	front := plan.FirstRow*cs + d.front%cs

	return next, front, front + d.Len(), nil
}

// PopBack removes and returns the last element.
//
// The vacated slot is zeroed and its chunk is freed when it held the chunk's
// last element. Returns errs.ErrEmpty when the container is empty.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.Empty() {
		return zero, fmt.Errorf("%w: pop back", errs.ErrEmpty)
	}

	cs := d.cfg.chunkSize
	pos := d.back - 1
	row, col := pos/cs, pos%cs
	chunk := d.dir.Chunk(row)
	v := chunk[col]
	chunk[col] = zero
	if col == 0 {
		d.dir.Release(row, d.cfg.alloc)
	}
	d.back--

	return v, nil
}

// PopFront removes and returns the first element. It mirrors PopBack.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.Empty() {
		return zero, fmt.Errorf("%w: pop front", errs.ErrEmpty)
	}

	cs := d.cfg.chunkSize
	row, col := d.front/cs, d.front%cs
	chunk := d.dir.Chunk(row)
	v := chunk[col]
	chunk[col] = zero
	if col == cs-1 {
		d.dir.Release(row, d.cfg.alloc)
	}
	d.front++

	return v, nil
}

// Front returns the first element, or errs.ErrEmpty.
func (d *Deque[T]) Front() (T, error) {
	if d.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: front", errs.ErrEmpty)
	}

	return *d.Index(0), nil
}

// Back returns the last element, or errs.ErrEmpty.
func (d *Deque[T]) Back() (T, error) {
	if d.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: back", errs.ErrEmpty)
	}

	return *d.Index(d.Len() - 1), nil
}
