package stats

import (
	"math"
	"testing"

	"github.com/hupe1980/colgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegression_ExactLine(t *testing.T) {
	// y = 3x + 2 with no noise.
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	idx := make([]uint64, 50)
	for i := range xs {
		idx[i] = uint64(i)
		xs[i] = float64(i)
		ys[i] = 3*float64(i) + 2
	}

	r := NewRegression(true)
	require.NoError(t, colgo.RunPair(r, idx, xs, ys))

	assert.Equal(t, 50, r.Count())
	assert.InDelta(t, 3.0, r.Slope(), 1e-9)
	assert.InDelta(t, 2.0, r.Intercept(), 1e-9)
	assert.InDelta(t, 1.0, r.Corr(), 1e-9)
}

func TestRegression_NegativeCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{10, 8, 6, 4, 2}

	r := NewRegression(true)
	require.NoError(t, colgo.RunPair(r, nil, xs, ys))

	assert.InDelta(t, -2.0, r.Slope(), 1e-9)
	assert.InDelta(t, 12.0, r.Intercept(), 1e-9)
	assert.InDelta(t, -1.0, r.Corr(), 1e-9)
}

func TestRegression_SkipNaN(t *testing.T) {
	withNaN := NewRegression(true)
	require.NoError(t, colgo.RunPair(withNaN, nil,
		[]float64{1, math.NaN(), 2, 3},
		[]float64{5, 7, 7, math.NaN()},
	))

	// NaN in either column drops the whole pair; the last pair has NaN y.
	without := NewRegression(true)
	require.NoError(t, colgo.RunPair(without, nil,
		[]float64{1, 2},
		[]float64{5, 7},
	))

	assert.Equal(t, without.Count(), withNaN.Count())
	assert.InDelta(t, without.Slope(), withNaN.Slope(), 1e-12)
	assert.InDelta(t, without.Intercept(), withNaN.Intercept(), 1e-12)
}

func TestRegression_LengthMismatch(t *testing.T) {
	r := NewRegression(true)
	err := colgo.RunPair(r, nil, []float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)

	var lme *colgo.LengthMismatchError
	require.ErrorAs(t, err, &lme)
	assert.Equal(t, 3, lme.Expected)
	assert.Equal(t, 2, lme.Actual)
}

func TestRegression_Degenerate(t *testing.T) {
	// Constant x: zero variance, slope must not be a finite number.
	r := NewRegression(true)
	require.NoError(t, colgo.RunPair(r, nil,
		[]float64{5, 5, 5},
		[]float64{1, 2, 3},
	))
	slope := r.Slope()
	assert.True(t, math.IsNaN(slope) || math.IsInf(slope, 0))

	// A single point is equally degenerate.
	r = NewRegression(true)
	require.NoError(t, colgo.RunPair(r, nil, []float64{1}, []float64{2}))
	assert.True(t, math.IsNaN(r.Slope()))
}
