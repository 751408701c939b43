package stats

import (
	"math"

	"github.com/hupe1980/colgo"
)

// Regression computes simple linear regression of y on x in a single
// pass. The cross-product sum is updated incrementally from the pre-update
// means, scaled by n/(n+1), so no second pass over the data is needed and
// the naive sum-of-products cancellation is avoided.
//
// Degenerate inputs (fewer than two points, constant x) yield NaN or Inf
// results rather than errors.
type Regression struct {
	skipNaN bool
	n       int
	sxy     float64
	xStats  *Accumulator
	yStats  *Accumulator
}

// NewRegression creates a Regression visitor. With skipNaN set, a pair is
// skipped entirely when either value is NaN.
func NewRegression(skipNaN bool) *Regression {
	return &Regression{
		skipNaN: skipNaN,
		xStats:  NewAccumulator(skipNaN),
		yStats:  NewAccumulator(skipNaN),
	}
}

// Pre resets all running state.
func (r *Regression) Pre() {
	r.n = 0
	r.sxy = 0
	r.xStats.Pre()
	r.yStats.Pre()
}

// Post finalizes the regression. It is a no-op.
func (r *Regression) Post() {}

// Fit consumes two positionally paired columns. It fails with
// *colgo.LengthMismatchError when the columns differ in length.
func (r *Regression) Fit(index []uint64, x, y []float64) error {
	if len(x) != len(y) {
		return colgo.NewLengthMismatchError(len(x), len(y))
	}

	n := colgo.ColSize(index, x)
	for i := 0; i < n; i++ {
		r.Add(x[i], y[i])
	}
	return nil
}

// Add incorporates a single (x, y) pair.
func (r *Regression) Add(x, y float64) {
	if r.skipNaN && (math.IsNaN(x) || math.IsNaN(y)) {
		return
	}

	// Pre-update means, scaled by n/(n+1).
	r.sxy += (r.xStats.Mean() - x) * (r.yStats.Mean() - y) *
		float64(r.n) / float64(r.n+1)

	r.xStats.Add(x)
	r.yStats.Add(y)
	r.n++
}

// Count returns the number of pairs incorporated so far.
func (r *Regression) Count() int { return r.n }

// Slope returns the regression slope Sxy/Sxx.
func (r *Regression) Slope() float64 {
	// Sum of the squares of the difference between each x and the mean x.
	sxx := r.xStats.Variance() * float64(r.n-1)

	return r.sxy / sxx
}

// Intercept returns the regression intercept.
func (r *Regression) Intercept() float64 {
	return r.yStats.Mean() - r.Slope()*r.xStats.Mean()
}

// Corr returns the Pearson correlation coefficient.
func (r *Regression) Corr() float64 {
	t := r.xStats.StdDev() * r.yStats.StdDev()

	return r.sxy / (float64(r.n-1) * t)
}
