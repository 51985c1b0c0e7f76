package deque

import (
	"cmp"
	"fmt"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/segment"
)

// cursor is the position logic shared by every iterator type: the directory it
// was created against, the chunk size and a flattened index.
type cursor[T any] struct {
	owner     *Deque[T]
	dir       *segment.Directory[T]
	chunkSize int
	index     int
}

func (d *Deque[T]) cursorAt(index int) cursor[T] {
	return cursor[T]{owner: d, dir: d.dir, chunkSize: d.cfg.chunkSize, index: index}
}

func (c cursor[T]) moved(n int) cursor[T] {
	c.index += n
	return c
}

func (c cursor[T]) distance(o cursor[T]) int {
	return c.index - o.index
}

func (c cursor[T]) compare(o cursor[T]) int {
	return cmp.Compare(c.index, o.index)
}

// live reports whether index+off names a live element of the directory the
// cursor was created against.
func (c cursor[T]) live(off int) bool {
	d := c.owner
	if d == nil || c.dir == nil || c.dir != d.dir || c.dir.Retired() {
		return false
	}
	p := c.index + off

	return p >= d.front && p < d.back
}

func (c cursor[T]) slot(off int) *T {
	if !c.live(off) {
		panic(fmt.Errorf("%w: no element at position %d", errs.ErrStaleIterator, c.index+off))
	}
	p := c.index + off

	return &c.dir.Chunk(p / c.chunkSize)[p%c.chunkSize]
}

func (c cursor[T]) pos() int {
	if c.owner == nil {
		return c.index
	}

	return c.index - c.owner.front
}

// Iterator is a mutable random-access cursor over a Deque.
//
// Iterators are values; arithmetic returns a new iterator. The zero Iterator
// is not dereferenceable.
type Iterator[T any] struct {
	c cursor[T]
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{c: d.cursorAt(d.front)}
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{c: d.cursorAt(d.back)}
}

// Value returns the element the iterator points at.
// It panics with errs.ErrStaleIterator when the iterator is not dereferenceable.
func (it Iterator[T]) Value() T { return *it.c.slot(0) }

// Ptr returns a pointer to the element the iterator points at.
func (it Iterator[T]) Ptr() *T { return it.c.slot(0) }

// Set overwrites the element the iterator points at.
func (it Iterator[T]) Set(v T) { *it.c.slot(0) = v }

// Valid reports whether the iterator points at a live element of its container.
func (it Iterator[T]) Valid() bool { return it.c.live(0) }

// Pos returns the logical index the iterator points at.
func (it Iterator[T]) Pos() int { return it.c.pos() }

func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.c.moved(1)} }
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.c.moved(-1)} }
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.c.moved(n)} }
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.c.moved(-n)} }
func (it Iterator[T]) Distance(o Iterator[T]) int { return it.c.distance(o.c) }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) int { return it.c.compare(o.c) }
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.c.compare(o.c) == 0 }
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.c.compare(o.c) < 0 }
func (it Iterator[T]) LessEq(o Iterator[T]) bool { return it.c.compare(o.c) <= 0 }
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.c.compare(o.c) > 0 }
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return it.c.compare(o.c) >= 0 }

// Const converts the iterator to a read-only one at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.c} }

// ConstIterator is a read-only random-access cursor over a Deque.
type ConstIterator[T any] struct {
	c cursor[T]
}

// CBegin returns a read-only iterator at the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{c: d.cursorAt(d.front)}
}

// CEnd returns a read-only iterator one past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{c: d.cursorAt(d.back)}
}

// Value returns the element the iterator points at.
// It panics with errs.ErrStaleIterator when the iterator is not dereferenceable.
func (it ConstIterator[T]) Value() T { return *it.c.slot(0) }

// Valid reports whether the iterator points at a live element of its container.
func (it ConstIterator[T]) Valid() bool { return it.c.live(0) }

// Pos returns the logical index the iterator points at.
func (it ConstIterator[T]) Pos() int { return it.c.pos() }

func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.c.moved(1)} }
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.c.moved(-1)} }
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it.c.moved(n)} }
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it.c.moved(-n)} }
func (it ConstIterator[T]) Distance(o ConstIterator[T]) int { return it.c.distance(o.c) }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ConstIterator[T]) Compare(o ConstIterator[T]) int { return it.c.compare(o.c) }
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.c.compare(o.c) == 0 }
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool { return it.c.compare(o.c) < 0 }
func (it ConstIterator[T]) LessEq(o ConstIterator[T]) bool { return it.c.compare(o.c) <= 0 }
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool { return it.c.compare(o.c) > 0 }
func (it ConstIterator[T]) GreaterEq(o ConstIterator[T]) bool { return it.c.compare(o.c) >= 0 }
