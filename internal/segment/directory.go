package segment

import (
	"fmt"

	"github.com/arloliu/segdeque/errs"
	"github.com/arloliu/segdeque/internal/pool"
)

// Directory owns the chunks of a deque, addressed by row.
type Directory[T any] struct {
	rows    [][]T
	inUse   int
	retired bool
}

// NewDirectory creates a directory with the given number of empty rows.
func NewDirectory[T any](rows int) *Directory[T] {
	return &Directory[T]{rows: make([][]T, rows)}
}

// Rows returns the total row capacity.
func (d *Directory[T]) Rows() int {
	if d == nil {
		return 0
	}

	return len(d.rows)
}

// InUse returns the number of rows holding an allocated chunk.
func (d *Directory[T]) InUse() int {
	if d == nil {
		return 0
	}

	return d.inUse
}

// Retired reports whether the directory has been replaced or released.
func (d *Directory[T]) Retired() bool {
	return d == nil || d.retired
}

// Chunk returns the chunk at row, or nil when the row is unallocated or out of bounds.
func (d *Directory[T]) Chunk(row int) []T {
	if d == nil || row < 0 || row >= len(d.rows) {
		return nil
	}

	return d.rows[row]
}

// Allocate obtains a chunk from alloc and attaches it to an empty row.
//
// On failure the row stays empty and the allocator error is returned as-is.
func (d *Directory[T]) Allocate(row, size int, alloc pool.Allocator[T]) ([]T, error) {
	if d.rows[row] != nil {
		panic(fmt.Sprintf("segment: row %d already allocated", row))
	}

	chunk, err := alloc.Alloc(size)
	if err != nil {
		return nil, err
	}
	d.rows[row] = chunk
	d.inUse++

	return chunk, nil
}

// Release detaches the chunk at row and hands it back to alloc.
func (d *Directory[T]) Release(row int, alloc pool.Allocator[T]) {
	chunk := d.rows[row]
	if chunk == nil {
		return
	}
	d.rows[row] = nil
	d.inUse--
	alloc.Free(chunk)
}

// ReleaseAll frees every allocated chunk and retires the directory.
func (d *Directory[T]) ReleaseAll(alloc pool.Allocator[T]) {
	if d == nil {
		return
	}
	for row := range d.rows {
		d.Release(row, alloc)
	}
	d.retired = true
}

// Recenter builds a new directory following plan and moves the handles of the
// inUse rows starting at firstRow into it. The receiver is left untouched;
// call Retire once the new directory has been committed.
func (d *Directory[T]) Recenter(plan GrowthPlan, firstRow int) *Directory[T] {
	next := NewDirectory[T](plan.NewRows)
	if d == nil {
		return next
	}

	copy(next.rows[plan.FirstRow:plan.FirstRow+d.inUse], d.rows[firstRow:firstRow+d.inUse])
	next.inUse = d.inUse

	return next
}

// Retire drops every chunk handle without freeing the chunks, which are now
// owned by the directory that replaced this one.
func (d *Directory[T]) Retire() {
	if d == nil {
		return
	}
	clear(d.rows)
	d.inUse = 0
	d.retired = true
}

// GrowthPlan describes a directory reallocation.
type GrowthPlan struct {
	OldRows  int // row capacity before growth
	NewRows  int // row capacity after growth
	FirstRow int // row where the first active chunk lands in the new directory
}

// PlanGrowth computes the next directory size.
//
// The new directory holds inUse + 6*ceil(rows/2) rows and the active rows start
// at 3*ceil(rows/2), leaving comparable room at both ends. An empty directory
// grows to a single row. A positive maxRows caps the result; exceeding it fails
// with errs.ErrCapacityExceeded.
//
// Parameters:
//   - rows: Current row capacity
//   - inUse: Rows currently holding a chunk
//   - maxRows: Row limit, or zero for unbounded
//
// Returns:
//   - GrowthPlan: Sizing and placement of the new directory
//   - error: errs.ErrCapacityExceeded when the limit would be passed
func PlanGrowth(rows, inUse, maxRows int) (GrowthPlan, error) {
	plan := GrowthPlan{OldRows: rows, NewRows: 1}
	if rows > 0 {
		half := ceilDiv(rows, 2)
		plan.NewRows = inUse + 6*half
		plan.FirstRow = 3 * half
	}

	if maxRows > 0 && plan.NewRows > maxRows {
		return GrowthPlan{}, fmt.Errorf("%w: need %d rows, limit is %d", errs.ErrCapacityExceeded, plan.NewRows, maxRows)
	}

	return plan, nil
}

// RowsFor returns the number of chunks needed to hold count elements.
func RowsFor(count, chunkSize int) int {
	return ceilDiv(count, chunkSize)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
