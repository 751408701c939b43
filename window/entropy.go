package window

import (
	"math"

	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/stats"
)

type entropyOptions struct {
	logBase float64
}

// EntropyOption configures the Entropy visitor.
type EntropyOption func(*entropyOptions)

// WithLogBase sets the logarithm base used by Entropy. The default is 2.
func WithLogBase(base float64) EntropyOption {
	return func(o *entropyOptions) {
		o.logBase = base
	}
}

// Entropy computes a rolling Shannon entropy of the window's value
// distribution: each value is normalized by the windowed sum ending at its
// position, and -v·log(v) of the normalized values is summed over a second
// pass of the same window.
//
// Entropy of a window of W equal positive values is log_base(W).
type Entropy struct {
	w       int
	logBase float64
	result  []float64
}

// NewEntropy creates an Entropy visitor over windows of size w.
func NewEntropy(w int, optFns ...EntropyOption) *Entropy {
	o := entropyOptions{logBase: 2}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Entropy{w: w, logBase: o.logBase}
}

// Pre resets the result.
func (e *Entropy) Pre() { e.result = nil }

// Post finalizes the visitor. It is a no-op.
func (e *Entropy) Post() {}

// Fit computes the rolling entropy of the column. A window of 0 or one
// larger than the column is a silent no-op.
func (e *Entropy) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	if e.w == 0 || e.w > n {
		return nil
	}

	// Windowed sums ending at each position.
	sums := NewRoller(stats.NewSum(false), e.w)
	sums.Pre()
	if err := sums.Fit(index, values[:n]); err != nil {
		return err
	}
	sums.Post()

	// Per-position share of its window sum, in -v*log(v) form. Positions
	// without a full window inherit NaN from the sum sequence; logs of
	// non-positive shares propagate NaN/Inf silently.
	transformed := make([]float64, n)
	logBase := math.Log(e.logBase)
	for i, s := range sums.Result() {
		v := values[i] / s
		transformed[i] = -v * math.Log(v) / logBase
	}

	result := make([]float64, n)
	for i := range result {
		result[i] = math.NaN()
	}

	// Second rolling sum over the transformed sequence, offset past the
	// NaN prefix of the first pass.
	agg := NewRoller(stats.NewSum(false), e.w)
	agg.Pre()
	if err := agg.Fit(nil, transformed[e.w-1:]); err != nil {
		return err
	}
	agg.Post()

	copy(result[e.w-1:], agg.Result())

	e.result = result
	return nil
}

// Result returns one entropy value per input position. Positions before
// the first full window are NaN.
func (e *Entropy) Result() []float64 { return e.result }
