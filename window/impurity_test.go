package window

import (
	"math"
	"testing"

	"github.com/hupe1980/colgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpurity_SingleCategory(t *testing.T) {
	values := []float64{7, 7, 7, 7, 7, 7}

	for _, m := range []Measure{GiniIndex, InfoEntropy} {
		t.Run(m.String(), func(t *testing.T) {
			im := NewImpurity(3, m)
			require.NoError(t, colgo.Run(im, nil, values))

			result := im.Result()
			require.Len(t, result, len(values))
			for i := 0; i < 2; i++ {
				assert.True(t, math.IsNaN(result[i]), "position %d", i)
			}
			for i := 2; i < len(result); i++ {
				assert.InDelta(t, 0.0, result[i], 1e-12, "position %d", i)
			}
		})
	}
}

func TestImpurity_KnownWindows(t *testing.T) {
	// Window [1,1,2,2]: p = (1/2, 1/2).
	values := []float64{1, 1, 2, 2}

	gini := NewImpurity(4, GiniIndex)
	require.NoError(t, colgo.Run(gini, nil, values))
	assert.InDelta(t, 0.5, gini.Result()[3], 1e-12)

	ent := NewImpurity(4, InfoEntropy)
	require.NoError(t, colgo.Run(ent, nil, values))
	assert.InDelta(t, 1.0, ent.Result()[3], 1e-12)
}

func TestImpurity_MatchesNaiveRecompute(t *testing.T) {
	values := []float64{1, 2, 2, 3, 1, 1, 2, 3, 3, 3, 1, 2}
	const w = 4

	im := NewImpurity(w, GiniIndex)
	require.NoError(t, colgo.Run(im, nil, values))

	expected := naiveWindow(values, w, func(win []float64) float64 {
		counts := map[float64]int{}
		for _, v := range win {
			counts[v]++
		}
		sum := 0.0
		for _, c := range counts {
			p := float64(c) / float64(len(win))
			sum += p * p
		}
		return 1 - sum
	})
	assertSeqInDelta(t, expected, im.Result(), 1e-12)
}

func TestImpurity_GiniBounds(t *testing.T) {
	values := []float64{4, 1, 3, 1, 2, 4, 2, 1, 3, 4, 2, 2}
	const w = 5

	im := NewImpurity(w, GiniIndex)
	require.NoError(t, colgo.Run(im, nil, values))

	for i, v := range im.Result() {
		if math.IsNaN(v) {
			continue
		}
		distinct := map[float64]struct{}{}
		for _, x := range values[i-w+1 : i+1] {
			distinct[x] = struct{}{}
		}
		upper := 1.0 - 1.0/float64(len(distinct))
		assert.GreaterOrEqual(t, v, 0.0, "position %d", i)
		assert.LessOrEqual(t, v, upper+1e-12, "position %d", i)
	}
}

func TestImpurity_NaNExcluded(t *testing.T) {
	im := NewImpurity(3, GiniIndex)
	require.NoError(t, colgo.Run(im, nil, []float64{1, math.NaN(), 1, 1}))

	result := im.Result()
	// Window [1, NaN, 1] holds a single live category.
	assert.InDelta(t, 0.0, result[2], 1e-12)
	assert.InDelta(t, 0.0, result[3], 1e-12)
}

func TestImpurity_WindowLargerThanColumn(t *testing.T) {
	im := NewImpurity(9, GiniIndex)
	require.NoError(t, colgo.Run(im, nil, []float64{1, 2, 3}))
	assert.Nil(t, im.Result())
}
