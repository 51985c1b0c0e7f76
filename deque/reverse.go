package deque

// ReverseIterator walks a Deque from back to front.
//
// It wraps a base Iterator and dereferences the element just before it, so
// RBegin wraps End and REnd wraps Begin. Stepping forward moves the base backward.
type ReverseIterator[T any] struct {
	base cursor[T]
}

// RBegin returns a reverse iterator at the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.cursorAt(d.back)}
}

// REnd returns a reverse iterator one before the first element.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.cursorAt(d.front)}
}

// Base returns the underlying forward iterator, which points one past the
// element the reverse iterator dereferences.
func (it ReverseIterator[T]) Base() Iterator[T] { return Iterator[T]{it.base} }

func (it ReverseIterator[T]) Value() T { return *it.base.slot(-1) }
func (it ReverseIterator[T]) Ptr() *T { return it.base.slot(-1) }
func (it ReverseIterator[T]) Set(v T) { *it.base.slot(-1) = v }
func (it ReverseIterator[T]) Valid() bool { return it.base.live(-1) }

func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it.base.moved(-1)} }
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it.base.moved(1)} }
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] { return ReverseIterator[T]{it.base.moved(-n)} }
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return ReverseIterator[T]{it.base.moved(n)} }

// Distance returns the number of Next steps from o to it.
func (it ReverseIterator[T]) Distance(o ReverseIterator[T]) int { return o.base.distance(it.base) }

// Compare orders reverse iterators by traversal order, the opposite of their bases.
func (it ReverseIterator[T]) Compare(o ReverseIterator[T]) int { return o.base.compare(it.base) }
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.Compare(o) == 0 }
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool { return it.Compare(o) < 0 }
func (it ReverseIterator[T]) LessEq(o ReverseIterator[T]) bool { return it.Compare(o) <= 0 }
func (it ReverseIterator[T]) Greater(o ReverseIterator[T]) bool { return it.Compare(o) > 0 }
func (it ReverseIterator[T]) GreaterEq(o ReverseIterator[T]) bool { return it.Compare(o) >= 0 }

// Const converts the iterator to a read-only reverse iterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base}
}

// ConstReverseIterator is the read-only counterpart of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base cursor[T]
}

// CRBegin returns a read-only reverse iterator at the last element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: d.cursorAt(d.back)}
}

// CREnd returns a read-only reverse iterator one before the first element.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: d.cursorAt(d.front)}
}

// Base returns the underlying read-only forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return ConstIterator[T]{it.base} }

func (it ConstReverseIterator[T]) Value() T { return *it.base.slot(-1) }
func (it ConstReverseIterator[T]) Valid() bool { return it.base.live(-1) }

func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.moved(-1)}
}

func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.moved(1)}
}

func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.moved(-n)}
}

func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.moved(n)}
}

func (it ConstReverseIterator[T]) Distance(o ConstReverseIterator[T]) int {
	return o.base.distance(it.base)
}

func (it ConstReverseIterator[T]) Compare(o ConstReverseIterator[T]) int { return o.base.compare(it.base) }
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return it.Compare(o) == 0 }
func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool { return it.Compare(o) < 0 }
func (it ConstReverseIterator[T]) LessEq(o ConstReverseIterator[T]) bool { return it.Compare(o) <= 0 }
func (it ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool {
	return it.Compare(o) > 0
}

func (it ConstReverseIterator[T]) GreaterEq(o ConstReverseIterator[T]) bool {
	return it.Compare(o) >= 0
}
