// Package refmodel provides a trivially correct double-ended sequence backed by
// a single slice. It is the oracle that segmented containers are checked against.
package refmodel

import (
	"iter"
	"slices"
)

// Deque is a slice-backed double-ended sequence.
type Deque[T any] struct {
	items []T
}

// New creates an empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return len(d.items) }

// At returns element i; it panics when i is out of range.
func (d *Deque[T]) At(i int) T { return d.items[i] }

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) { d.items = append(d.items, v) }

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) { d.items = slices.Insert(d.items, 0, v) }

// PopBack removes the last element; ok is false when empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]

	return v, true
}

// PopFront removes the first element; ok is false when empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[0]
	d.items = slices.Delete(d.items, 0, 1)

	return v, true
}

// Insert places v at index i, shifting later elements back.
func (d *Deque[T]) Insert(i int, v T) { d.items = slices.Insert(d.items, i, v) }

// Erase removes element i.
func (d *Deque[T]) Erase(i int) { d.items = slices.Delete(d.items, i, i+1) }

// Values iterates the elements front to back.
func (d *Deque[T]) Values() iter.Seq[T] { return slices.Values(d.items) }

// Slice returns a copy of the elements.
func (d *Deque[T]) Slice() []T { return slices.Clone(d.items) }
