package window

import (
	"math"

	"github.com/hupe1980/colgo"
)

// Aggregator is the contract a streaming visitor must satisfy to be slid
// over a window: incremental add and remove plus a scalar result.
//
// stats.Sum satisfies it directly; stats.MeanView and stats.StdView adapt
// the online accumulator.
type Aggregator interface {
	Pre()
	Post()
	Add(v float64)
	Remove(v float64)
	Result() float64
}

// Roller applies an Aggregator over a fixed-size moving window. Each slide
// adds the entering value and removes the expiring one instead of
// recomputing the window, so a full pass costs O(n) aggregator updates.
type Roller struct {
	w      int
	agg    Aggregator
	result []float64
}

// NewRoller creates a Roller sliding agg over windows of size w.
func NewRoller(agg Aggregator, w int) *Roller {
	return &Roller{w: w, agg: agg}
}

// Pre resets the roller and its aggregator.
func (r *Roller) Pre() {
	r.result = nil
	r.agg.Pre()
}

// Post finalizes the roller. It is a no-op.
func (r *Roller) Post() {}

// Fit slides the aggregator over the column. A window of 0 or one larger
// than the column leaves the result empty; this is a silent no-op, not an
// error.
func (r *Roller) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	if r.w == 0 || r.w > n {
		return nil
	}

	result := make([]float64, n)
	for i := 0; i < r.w-1; i++ {
		result[i] = math.NaN()
	}

	r.agg.Pre()
	for i := 0; i < n; i++ {
		r.agg.Add(values[i])
		if i >= r.w {
			r.agg.Remove(values[i-r.w])
		}
		if i >= r.w-1 {
			result[i] = r.agg.Result()
		}
	}
	r.agg.Post()

	r.result = result
	return nil
}

// Result returns one value per input position; the first w-1 positions are
// NaN. It is nil until Fit has consumed a column at least w long.
func (r *Roller) Result() []float64 { return r.result }
