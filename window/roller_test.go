package window

import (
	"math"
	"testing"

	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveWindow(values []float64, w int, f func(win []float64) float64) []float64 {
	result := make([]float64, len(values))
	for i := range result {
		if i < w-1 {
			result[i] = math.NaN()
			continue
		}
		result[i] = f(values[i-w+1 : i+1])
	}
	return result
}

func assertSeqInDelta(t *testing.T, expected, actual []float64, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "position %d: want NaN, got %v", i, actual[i])
			continue
		}
		assert.InDelta(t, expected[i], actual[i], delta, "position %d", i)
	}
}

func TestRoller_Sum(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	r := NewRoller(stats.NewSum(false), 3)
	require.NoError(t, colgo.Run(r, nil, values))

	expected := naiveWindow(values, 3, func(win []float64) float64 {
		s := 0.0
		for _, v := range win {
			s += v
		}
		return s
	})
	assertSeqInDelta(t, expected, r.Result(), 1e-9)
}

func TestRoller_Mean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}

	r := NewRoller(stats.MeanView{Accumulator: stats.NewAccumulator(true)}, 4)
	require.NoError(t, colgo.Run(r, nil, values))

	expected := naiveWindow(values, 4, func(win []float64) float64 {
		s := 0.0
		for _, v := range win {
			s += v
		}
		return s / float64(len(win))
	})
	assertSeqInDelta(t, expected, r.Result(), 1e-9)
}

func TestRoller_Std(t *testing.T) {
	values := []float64{2, 8, 1, 9, 4, 7, 3, 6}

	r := NewRoller(stats.StdView{Accumulator: stats.NewAccumulator(true)}, 5)
	require.NoError(t, colgo.Run(r, nil, values))

	expected := naiveWindow(values, 5, func(win []float64) float64 {
		mean := 0.0
		for _, v := range win {
			mean += v
		}
		mean /= float64(len(win))
		ss := 0.0
		for _, v := range win {
			ss += (v - mean) * (v - mean)
		}
		return math.Sqrt(ss / float64(len(win)-1))
	})
	assertSeqInDelta(t, expected, r.Result(), 1e-9)
}

func TestRoller_WindowLargerThanColumn(t *testing.T) {
	r := NewRoller(stats.NewSum(false), 10)
	require.NoError(t, colgo.Run(r, nil, []float64{1, 2, 3}))
	assert.Nil(t, r.Result())
}

func TestRoller_ZeroWindow(t *testing.T) {
	r := NewRoller(stats.NewSum(false), 0)
	require.NoError(t, colgo.Run(r, nil, []float64{1, 2, 3}))
	assert.Nil(t, r.Result())
}

func TestRoller_PreClearsResult(t *testing.T) {
	r := NewRoller(stats.NewSum(false), 2)
	require.NoError(t, colgo.Run(r, nil, []float64{1, 2, 3}))
	require.NotNil(t, r.Result())

	r.Pre()
	assert.Nil(t, r.Result())
}
