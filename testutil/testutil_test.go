package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.UniformColumn(100), b.UniformColumn(100))
	assert.Equal(t, a.GaussianColumn(100), b.GaussianColumn(100))
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)

	first := r.UniformColumn(50)
	r.Reset()

	assert.Equal(t, first, r.UniformColumn(50))
	assert.Equal(t, int64(7), r.Seed())
}

func TestClusteredColumn(t *testing.T) {
	r := NewRNG(1)

	centers := []float64{0, 100}
	col := r.ClusteredColumn(1000, centers, 0.5)
	require.Len(t, col, 1000)

	near := func(v, center float64) bool { return math.Abs(v-center) < 10 }

	for i, v := range col {
		assert.True(t, near(v, centers[i%2]), "value %f at %d far from both centers", v, i)
	}
}

func TestWithNaN(t *testing.T) {
	r := NewRNG(3)

	col := r.WithNaN(r.UniformColumn(1000), 0.25)

	nans := 0
	for _, v := range col {
		if math.IsNaN(v) {
			nans++
		}
	}

	assert.InDelta(t, 250, nans, 75)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, []uint64{0, 1, 2}, Index(3))
	assert.Empty(t, Index(0))
}
