package engine

import "github.com/yousemazhar/crashboard/dataset"

// ============================================================================
// VIEW — Zero-Copy Access to the Immutable Table
// ============================================================================
// A View is the table plus an optional index list. Filtering produces a new
// View holding indices into the same table — no record is ever copied and
// the base table is never mutated. Views are ephemeral: created per report
// request, discarded after use.
// ============================================================================

// View is a read-only, order-preserving subset of the base table.
// The zero View is empty.
type View struct {
	table   *dataset.Table
	indices []int // nil on the identity view over the whole table
}

// NewView returns the identity view over a table.
func NewView(t *dataset.Table) View {
	return View{table: t}
}

// Len returns the number of records in the view.
func (v View) Len() int {
	if v.table == nil {
		return 0
	}
	if v.indices == nil {
		return v.table.Len()
	}
	return len(v.indices)
}

// At returns the i-th record of the view. Read-only.
func (v View) At(i int) *dataset.Record {
	if v.indices == nil {
		return v.table.At(i)
	}
	return v.table.At(v.indices[i])
}

// subset returns a view over the given positions within v, preserving order.
func (v View) subset(positions []int) View {
	indices := make([]int, len(positions))
	for i, p := range positions {
		if v.indices == nil {
			indices[i] = p
		} else {
			indices[i] = v.indices[p]
		}
	}
	return View{table: v.table, indices: indices}
}
