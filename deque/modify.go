package deque

import (
	"fmt"

	"github.com/arloliu/segdeque/errs"
)

// Insert places a copy of v before the element it points at, or at the back
// when it equals End().
//
// The value is pushed at the back and then swapped down to its position, so
// the cost is O(Len()-pos). The position is resolved before the push, which
// means it may be stale afterwards if the push reallocated the directory.
//
// Returns errs.ErrForeignIterator or errs.ErrStaleIterator for an iterator
// that does not belong to the current directory, errs.ErrOutOfRange for a
// position outside [0, Len()], or the push error.
func (d *Deque[T]) Insert(it Iterator[T], v T) error {
	pos, err := d.position(it.c)
	if err != nil {
		return err
	}

	return d.InsertAt(pos, v)
}

// InsertAt places a copy of v so that it becomes element i.
// i may equal Len(), which appends.
func (d *Deque[T]) InsertAt(i int, v T) error {
	if i < 0 || i > d.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", errs.ErrOutOfRange, i, d.Len())
	}
	if err := d.PushBack(v); err != nil {
		return err
	}
	for j := d.Len() - 1; j > i; j-- {
		d.exchange(j, j-1)
	}

	return nil
}

// Erase removes the element it points at.
func (d *Deque[T]) Erase(it Iterator[T]) error {
	pos, err := d.position(it.c)
	if err != nil {
		return err
	}

	return d.EraseAt(pos)
}

// EraseAt removes element i, shifting later elements one position forward.
func (d *Deque[T]) EraseAt(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	for j := i; j < d.Len()-1; j++ {
		d.exchange(j, j+1)
	}
	_, err := d.PopBack()

	return err
}

// Swap exchanges elements i and j.
func (d *Deque[T]) Swap(i, j int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if err := d.checkIndex(j); err != nil {
		return err
	}
	d.exchange(i, j)

	return nil
}

func (d *Deque[T]) exchange(i, j int) {
	a, b := d.Index(i), d.Index(j)
	*a, *b = *b, *a
}

// position converts a cursor into a logical index in [0, Len()].
func (d *Deque[T]) position(c cursor[T]) (int, error) {
	if c.owner != d {
		return 0, errs.ErrForeignIterator
	}
	if c.dir != d.dir {
		return 0, fmt.Errorf("%w: directory was reallocated", errs.ErrStaleIterator)
	}

	pos := c.index - d.front
	if pos < 0 || pos > d.Len() {
		return 0, fmt.Errorf("%w: iterator position %d, length %d", errs.ErrOutOfRange, pos, d.Len())
	}

	return pos, nil
}
