package colgo

// Visitor is the lifecycle contract shared by every column visitor.
//
// Pre resets all mutable state, including any lazily cached derived
// results. Post finalizes the visitor after one or more Fit calls. Both
// are idempotent and never fail.
type Visitor interface {
	Pre()
	Post()
}

// ColumnVisitor consumes one value column paired with an index sequence.
//
// The index values are opaque keys; only their positional pairing with the
// values is used. The visitor reads the column, it never mutates it.
type ColumnVisitor interface {
	Visitor
	Fit(index []uint64, values []float64) error
}

// PairVisitor consumes two positionally paired value columns, such as the
// (x, y) inputs of a regression or the (actual, model) inputs of a loss
// function. Fit fails with *LengthMismatchError when the columns differ in
// length.
type PairVisitor interface {
	Visitor
	Fit(index []uint64, x, y []float64) error
}

// ColSize returns the effective size of a column: the smaller of the index
// and value sequence lengths. A nil index sequence imposes no limit, for
// callers that have no meaningful index.
func ColSize(index []uint64, values []float64) int {
	if index == nil || len(values) < len(index) {
		return len(values)
	}
	return len(index)
}

// Run drives the full lifecycle of v over a single column.
func Run(v ColumnVisitor, index []uint64, values []float64) error {
	v.Pre()
	if err := v.Fit(index, values); err != nil {
		return err
	}
	v.Post()
	return nil
}

// RunPair drives the full lifecycle of v over a pair of columns.
func RunPair(v PairVisitor, index []uint64, x, y []float64) error {
	v.Pre()
	if err := v.Fit(index, x, y); err != nil {
		return err
	}
	v.Post()
	return nil
}
