package fourier

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/colgo"
)

type options struct {
	inverse bool
}

// Option configures the Transform visitor.
type Option func(*options)

// WithInverse configures the visitor to compute the inverse transform.
func WithInverse() Option {
	return func(o *options) {
		o.inverse = true
	}
}

// Transform computes the discrete Fourier transform of a column. The
// result is a complex sequence of the input's length; magnitude and phase
// are derived lazily on first access and cached until the next Pre.
type Transform struct {
	inverse   bool
	result    []complex128
	magnitude []float64
	angle     []float64
}

// NewTransform creates a Transform visitor. The direction is fixed at
// construction; see WithInverse.
func NewTransform(optFns ...Option) *Transform {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Transform{inverse: o.inverse}
}

// Pre resets the result and invalidates the cached magnitude and phase.
func (t *Transform) Pre() {
	t.result = nil
	t.magnitude = nil
	t.angle = nil
}

// Post finalizes the visitor. It is a no-op.
func (t *Transform) Post() {}

// Fit transforms a real-valued column, lifting it to complex with zero
// imaginary parts. An empty column is a silent no-op.
func (t *Transform) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	buf := make([]complex128, n)
	for i := 0; i < n; i++ {
		buf[i] = complex(values[i], 0)
	}
	t.fit(buf)
	return nil
}

// FitComplex transforms a column that is already complex-valued.
func (t *Transform) FitComplex(index []uint64, values []complex128) error {
	n := len(values)
	if index != nil && len(index) < n {
		n = len(index)
	}
	buf := make([]complex128, n)
	copy(buf, values[:n])
	t.fit(buf)
	return nil
}

func (t *Transform) fit(buf []complex128) {
	if len(buf) == 0 {
		return
	}
	if t.inverse {
		inverseTransform(buf)
	} else {
		transform(buf, false)
	}
	t.result = buf
	t.magnitude = nil
	t.angle = nil
}

// Result returns the complex spectrum (or reconstructed sequence, in
// inverse mode). It is nil until Fit has consumed a column.
func (t *Transform) Result() []complex128 { return t.result }

// Magnitude returns the modulus of each result element, computed on first
// access and cached until the next Pre or Fit.
func (t *Transform) Magnitude() []float64 {
	if t.magnitude == nil && t.result != nil {
		t.magnitude = make([]float64, len(t.result))
		for i, v := range t.result {
			t.magnitude[i] = cmplx.Abs(v)
		}
	}
	return t.magnitude
}

// Angle returns the argument of each result element, computed on first
// access and cached until the next Pre or Fit.
func (t *Transform) Angle() []float64 {
	if t.angle == nil && t.result != nil {
		t.angle = make([]float64, len(t.result))
		for i, v := range t.result {
			t.angle[i] = cmplx.Phase(v)
		}
	}
	return t.angle
}

// transform dispatches on length: radix-2 for powers of two, Bluestein
// otherwise. reverse flips the twiddle angle sign (used by convolution to
// run the un-normalized inverse).
func transform(buf []complex128, reverse bool) {
	n := len(buf)
	if n == 0 {
		return
	}
	if n&(n-1) == 0 {
		radix2(buf, reverse)
	} else {
		bluestein(buf, reverse)
	}
}

// inverseTransform computes the inverse DFT as conjugate → forward →
// conjugate → scale, which is algebraically the direct inverse but reuses
// the forward kernels.
func inverseTransform(buf []complex128) {
	for i, v := range buf {
		buf[i] = cmplx.Conj(v)
	}

	transform(buf, false)

	scale := complex(float64(len(buf)), 0)
	for i, v := range buf {
		buf[i] = cmplx.Conj(v) / scale
	}
}

// reverseBits reverses the lowest width bits of v.
func reverseBits(v, width int) int {
	result := 0
	for i := 0; i < width; i, v = i+1, v>>1 {
		result = result<<1 | v&1
	}
	return result
}

// radix2 is the iterative Cooley-Tukey decimation-in-time FFT. len(buf)
// must be a power of two.
func radix2(buf []complex128, reverse bool) {
	n := len(buf)

	levels := 0 // floor(log2(n))
	for i := n; i > 1; i >>= 1 {
		levels++
	}

	// Trigonometric table: the n/2 roots of unity.
	twoPi := -2 * math.Pi
	if reverse {
		twoPi = 2 * math.Pi
	}
	expTable := make([]complex128, n/2)
	for i := range expTable {
		expTable[i] = cmplx.Rect(1, twoPi*float64(i)/float64(n))
	}

	// Bit-reversed addressing permutation.
	for i := 0; i < n; i++ {
		if rb := reverseBits(i, levels); rb > i {
			buf[i], buf[rb] = buf[rb], buf[i]
		}
	}

	// Butterfly stages.
	for size := 2; size <= n; size *= 2 {
		halfSize := size / 2
		tableStep := n / size

		for i := 0; i < n; i += size {
			for j, k := i, 0; j < i+halfSize; j, k = j+1, k+tableStep {
				temp := buf[j+halfSize] * expTable[k]
				buf[j+halfSize] = buf[j] - temp
				buf[j] += temp
			}
		}
	}
}

// bluestein computes the DFT of an arbitrary-length sequence as a single
// power-of-two convolution of two chirp-modulated sequences.
func bluestein(buf []complex128, reverse bool) {
	n := len(buf)

	// Chirp table: exp(±iπ k²/n), with k² reduced mod 2n to keep the
	// angle argument small.
	pi := -math.Pi
	if reverse {
		pi = math.Pi
	}
	expTable := make([]complex128, n)
	for i := range expTable {
		sq := i * i % (2 * n)
		expTable[i] = cmplx.Rect(1, pi*float64(sq)/float64(n))
	}

	// Convolution length: a power of two m with m/2 > n.
	m := 1
	for m/2 <= n {
		m *= 2
	}

	xvec := make([]complex128, m)
	for i := 0; i < n; i++ {
		xvec[i] = buf[i] * expTable[i]
	}

	yvec := make([]complex128, m)
	yvec[0] = expTable[0]
	for i := 1; i < n; i++ {
		c := cmplx.Conj(expTable[i])
		yvec[i] = c
		yvec[m-i] = c
	}

	conv := convolve(xvec, yvec)

	for i := 0; i < n; i++ {
		buf[i] = expTable[i] * conv[i]
	}
}

// convolve computes the circular convolution of x and y in place over x:
// forward transform both, multiply pointwise, inverse transform, scale.
func convolve(x, y []complex128) []complex128 {
	transform(x, false)
	transform(y, false)

	for i := range x {
		x[i] *= y[i]
	}

	transform(x, true)

	scale := complex(float64(len(x)), 0)
	for i := range x {
		x[i] /= scale
	}
	return x
}
