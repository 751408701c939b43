package stats

import (
	"math"

	"github.com/hupe1980/colgo"
)

// Accumulator maintains running count, mean and variance over a one-by-one
// value stream using Welford's update, which avoids the catastrophic
// cancellation of the naive sum-of-squares formula.
//
// Removal reverses the update, so a fixed-size window can slide an
// Accumulator in O(1) per step instead of recomputing the window.
type Accumulator struct {
	skipNaN bool
	count   int
	mean    float64
	m2      float64
}

// NewAccumulator creates an Accumulator. With skipNaN set, NaN values are
// ignored entirely: they change neither the count nor the running moments.
func NewAccumulator(skipNaN bool) *Accumulator {
	return &Accumulator{skipNaN: skipNaN}
}

// Pre resets all running state.
func (a *Accumulator) Pre() {
	a.count = 0
	a.mean = 0
	a.m2 = 0
}

// Post finalizes the accumulator. It is a no-op.
func (a *Accumulator) Post() {}

// Fit consumes a column one value at a time.
func (a *Accumulator) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	for i := 0; i < n; i++ {
		a.Add(values[i])
	}
	return nil
}

// Add incorporates a single value into the running statistics.
func (a *Accumulator) Add(v float64) {
	if a.skipNaN && math.IsNaN(v) {
		return
	}

	a.count++
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (v - a.mean)
}

// Remove reverses a previous Add of v. Removing below a count of zero is
// undefined; the window package never does.
func (a *Accumulator) Remove(v float64) {
	if a.skipNaN && math.IsNaN(v) {
		return
	}

	if a.count <= 1 {
		a.Pre()
		return
	}

	oldMean := (float64(a.count)*a.mean - v) / float64(a.count-1)
	a.m2 -= (v - a.mean) * (v - oldMean)
	a.mean = oldMean
	a.count--
}

// Count returns the number of values incorporated so far.
func (a *Accumulator) Count() int { return a.count }

// Mean returns the running mean, or 0 when no values were seen.
func (a *Accumulator) Mean() float64 { return a.mean }

// Variance returns the sample variance (n-1 denominator), or NaN when
// fewer than two values were seen.
func (a *Accumulator) Variance() float64 {
	if a.count < 2 {
		return math.NaN()
	}
	return a.m2 / float64(a.count-1)
}

// StdDev returns the sample standard deviation.
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// MeanView adapts an Accumulator so its mean is the single result value,
// for use as a sliding-window aggregator.
type MeanView struct{ *Accumulator }

// Result returns the running mean.
func (v MeanView) Result() float64 { return v.Mean() }

// StdView adapts an Accumulator so its sample standard deviation is the
// single result value, for use as a sliding-window aggregator.
type StdView struct{ *Accumulator }

// Result returns the running sample standard deviation.
func (v StdView) Result() float64 { return v.StdDev() }
