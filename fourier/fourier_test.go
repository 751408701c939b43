package fourier

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/hupe1980/colgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertComplexSeqInDelta(t *testing.T, expected, actual []complex128, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, real(expected[i]), real(actual[i]), delta, "position %d (real)", i)
		assert.InDelta(t, imag(expected[i]), imag(actual[i]), delta, "position %d (imag)", i)
	}
}

// naiveDFT is the O(N²) definition, used as the reference.
func naiveDFT(values []float64) []complex128 {
	n := len(values)
	result := make([]complex128, n)
	for k := 0; k < n; k++ {
		sum := complex(0, 0)
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += complex(values[j], 0) * cmplx.Rect(1, angle)
		}
		result[k] = sum
	}
	return result
}

func TestTransform_MatchesNaiveDFT(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"PowerOfTwo", 16},
		{"Bluestein", 13},
		{"BluesteinSmall", 3},
		{"PowerOfTwoSmall", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, tt.length)
			for i := range values {
				values[i] = math.Sin(float64(i)) + 0.5*float64(i%3)
			}

			tr := NewTransform()
			require.NoError(t, colgo.Run(tr, nil, values))

			assertComplexSeqInDelta(t, naiveDFT(values), tr.Result(), 1e-9)
		})
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	for _, length := range []int{1, 2, 13, 16, 27, 64} {
		values := make([]float64, length)
		for i := range values {
			values[i] = float64(i*i%7) - 2.5
		}

		fwd := NewTransform()
		require.NoError(t, colgo.Run(fwd, nil, values))
		require.Len(t, fwd.Result(), length)

		inv := NewTransform(WithInverse())
		inv.Pre()
		require.NoError(t, inv.FitComplex(nil, fwd.Result()))
		inv.Post()

		result := inv.Result()
		require.Len(t, result, length)
		for i := range values {
			assert.InDelta(t, values[i], real(result[i]), 1e-9, "length %d position %d", length, i)
			assert.InDelta(t, 0, imag(result[i]), 1e-9, "length %d position %d", length, i)
		}
	}
}

func TestTransform_ConstantSequence(t *testing.T) {
	// All spectral energy of a constant sequence sits at bin 0.
	values := []float64{3, 3, 3, 3, 3, 3, 3, 3}

	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, values))

	mag := tr.Magnitude()
	require.Len(t, mag, len(values))
	assert.InDelta(t, 24, mag[0], 1e-9)
	for i := 1; i < len(mag); i++ {
		assert.InDelta(t, 0, mag[i], 1e-9, "bin %d", i)
	}
}

func TestTransform_AllZero(t *testing.T) {
	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, make([]float64, 11)))

	for i, v := range tr.Result() {
		assert.InDelta(t, 0, cmplx.Abs(v), 1e-12, "bin %d", i)
	}
}

func TestTransform_LengthOneIdentity(t *testing.T) {
	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, []float64{42}))
	assertComplexSeqInDelta(t, []complex128{complex(42, 0)}, tr.Result(), 1e-12)

	inv := NewTransform(WithInverse())
	require.NoError(t, colgo.Run(inv, nil, []float64{42}))
	assertComplexSeqInDelta(t, []complex128{complex(42, 0)}, inv.Result(), 1e-12)
}

func TestTransform_Empty(t *testing.T) {
	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, nil))
	assert.Nil(t, tr.Result())
	assert.Nil(t, tr.Magnitude())
	assert.Nil(t, tr.Angle())
}

func TestTransform_KnownImpulse(t *testing.T) {
	// DFT of a shifted impulse [0,1,0,0] is (1, -i, -1, i).
	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, []float64{0, 1, 0, 0}))

	expected := []complex128{1, complex(0, -1), -1, complex(0, 1)}
	assertComplexSeqInDelta(t, expected, tr.Result(), 1e-12)

	angle := tr.Angle()
	assert.InDelta(t, 0, angle[0], 1e-12)
	assert.InDelta(t, -math.Pi/2, angle[1], 1e-12)
}

func TestTransform_LazyCacheInvalidation(t *testing.T) {
	tr := NewTransform()
	require.NoError(t, colgo.Run(tr, nil, []float64{1, 2, 3, 4}))

	first := tr.Magnitude()
	require.NotNil(t, first)
	// Cached: same backing slice on repeat access.
	assert.Same(t, &first[0], &tr.Magnitude()[0])

	tr.Pre()
	assert.Nil(t, tr.Magnitude())

	require.NoError(t, colgo.Run(tr, nil, []float64{5, 5}))
	assert.Len(t, tr.Magnitude(), 2)
}

func BenchmarkTransform(b *testing.B) {
	for _, length := range []int{64, 61} {
		name := "PowerOfTwo"
		if length&(length-1) != 0 {
			name = "Bluestein"
		}
		values := make([]float64, length)
		for i := range values {
			values[i] = math.Sin(float64(i))
		}

		b.Run(name, func(b *testing.B) {
			tr := NewTransform()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr.Pre()
				_ = tr.Fit(nil, values)
				tr.Post()
			}
		})
	}
}
