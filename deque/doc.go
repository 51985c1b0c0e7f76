// Package deque provides Deque, a segmented double-ended sequence.
//
// Elements live in fixed-size chunks referenced from a block directory, so
// pushing or popping at either end is amortized O(1) and never moves existing
// elements, while indexed access stays O(1) through row/column arithmetic on a
// flattened index space.
//
// # Basic Usage
//
//	d, _ := deque.New[int]()
//	_ = d.PushBack(1)
//	_ = d.PushFront(0)
//	v, err := d.At(1) // 1, nil
//	_, err = d.At(5)  // errs.ErrOutOfRange
//
//	for i, v := range d.All() {
//	    fmt.Println(i, v)
//	}
//
// # Failure Safety
//
// Every mutating operation either completes or leaves the container exactly as
// it was. Values are copied in through the configured copier (WithCopier, or
// the element's Clone method when it implements Cloner) and chunks come from
// the configured Allocator; an error from either is returned unchanged after
// any chunk or directory built for the call has been released. A panic raised
// by a copier unwinds through the same cleanup.
//
// Popping or peeking an empty container returns errs.ErrEmpty.
//
// # Iterators
//
// Iterator, ConstIterator and their reverse counterparts are random-access
// cursors. They capture the block directory they were created from: pushes and
// pops that do not reallocate the directory keep them usable, while a directory
// reallocation makes every earlier cursor stale even though elements do not
// move. Pointers obtained from Ptr or AtPtr stay valid until the element is
// removed, including across reallocation, unless chunk recycling reuses the
// chunk after it was freed.
//
// # Thread Safety
//
// A Deque is not safe for concurrent use without external synchronization.
package deque
