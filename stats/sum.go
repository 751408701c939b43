package stats

import (
	"math"

	"github.com/hupe1980/colgo"
)

// Sum maintains a running sum with O(1) add and remove.
type Sum struct {
	skipNaN bool
	sum     float64
}

// NewSum creates a Sum. With skipNaN set, NaN values are ignored.
func NewSum(skipNaN bool) *Sum {
	return &Sum{skipNaN: skipNaN}
}

// Pre resets the running sum.
func (s *Sum) Pre() { s.sum = 0 }

// Post finalizes the sum. It is a no-op.
func (s *Sum) Post() {}

// Fit consumes a column one value at a time.
func (s *Sum) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	for i := 0; i < n; i++ {
		s.Add(values[i])
	}
	return nil
}

// Add incorporates a single value.
func (s *Sum) Add(v float64) {
	if s.skipNaN && math.IsNaN(v) {
		return
	}
	s.sum += v
}

// Remove reverses a previous Add of v.
func (s *Sum) Remove(v float64) {
	if s.skipNaN && math.IsNaN(v) {
		return
	}
	s.sum -= v
}

// Result returns the running sum.
func (s *Sum) Result() float64 { return s.sum }
