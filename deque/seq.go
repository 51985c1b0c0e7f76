package deque

import (
	"iter"
	"sort"
)

// All returns an iterator over index/value pairs from front to back.
//
// The sequence reads the container live; mutating it during the range loop is
// not supported.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range d.Len() {
			if !yield(i, *d.Index(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, *d.Index(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.Len() {
			if !yield(*d.Index(i)) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, 0, d.Len())
	for v := range d.Values() {
		out = append(out, v)
	}

	return out
}

type sorter[T any] struct {
	d    *Deque[T]
	less func(a, b T) bool
}

func (s sorter[T]) Len() int           { return s.d.Len() }
func (s sorter[T]) Less(i, j int) bool { return s.less(*s.d.Index(i), *s.d.Index(j)) }
func (s sorter[T]) Swap(i, j int)      { s.d.exchange(i, j) }

// Sorter adapts d to sort.Interface ordered by less.
func Sorter[T any](d *Deque[T], less func(a, b T) bool) sort.Interface {
	return sorter[T]{d: d, less: less}
}

// SortFunc sorts d in place by cmp. The sort is not stable.
func SortFunc[T any](d *Deque[T], cmp func(a, b T) int) {
	sort.Sort(Sorter(d, func(a, b T) bool { return cmp(a, b) < 0 }))
}

// IsSortedUntil returns the length of the longest sorted prefix of d under cmp.
func IsSortedUntil[T any](d *Deque[T], cmp func(a, b T) int) int {
	n := d.Len()
	for i := 1; i < n; i++ {
		if cmp(*d.Index(i), *d.Index(i - 1)) < 0 {
			return i
		}
	}

	return n
}
