package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformColumn generates a column with values in range [0, 1).
func (r *RNG) UniformColumn(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	col := make([]float64, n)
	for i := range col {
		col[i] = r.rand.Float64()
	}

	return col
}

// GaussianColumn generates a column with values from a standard normal
// distribution.
func (r *RNG) GaussianColumn(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	col := make([]float64, n)
	for i := range col {
		col[i] = r.rand.NormFloat64()
	}

	return col
}

// ClusteredColumn generates a column whose values scatter around the
// given centers with Gaussian noise. Useful for exercising clustering
// on non-uniform data.
func (r *RNG) ClusteredColumn(n int, centers []float64, noise float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	col := make([]float64, n)
	for i := range col {
		center := centers[i%len(centers)]
		col[i] = center + r.rand.NormFloat64()*noise
	}

	return col
}

// WithNaN replaces values with NaN at the given rate, in place, and
// returns the column.
func (r *RNG) WithNaN(col []float64, rate float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range col {
		if r.rand.Float64() < rate {
			col[i] = math.NaN()
		}
	}

	return col
}

// Index generates a sequential index column of length n starting at 0.
func Index(n int) []uint64 {
	index := make([]uint64, n)
	for i := range index {
		index[i] = uint64(i)
	}

	return index
}
