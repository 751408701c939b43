package window

import (
	"fmt"
	"math"

	"github.com/hupe1980/colgo"
)

// Measure selects the impurity measure.
type Measure int

const (
	// GiniIndex is 1 - Σ p², over the window's category proportions.
	GiniIndex Measure = iota
	// InfoEntropy is -Σ p·log2(p), over the window's category proportions.
	InfoEntropy
)

func (m Measure) String() string {
	switch m {
	case GiniIndex:
		return "GiniIndex"
	case InfoEntropy:
		return "InfoEntropy"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Impurity computes a rolling impurity of a categorical column: how mixed
// the categories inside the current window are. A window holding a single
// category has impurity 0 under both measures.
//
// The visitor maintains a frequency table of the current window; each
// slide removes the expiring value's count (dropping the entry at zero)
// and adds the entering value's count, so a slide is O(1) amortized
// instead of O(W).
type Impurity struct {
	w       int
	measure Measure
	result  []float64
}

// NewImpurity creates an Impurity visitor over windows of size w.
func NewImpurity(w int, measure Measure) *Impurity {
	return &Impurity{w: w, measure: measure}
}

// Pre resets the result.
func (im *Impurity) Pre() { im.result = nil }

// Post finalizes the visitor. It is a no-op.
func (im *Impurity) Post() {}

// Fit computes the rolling impurity of the column. A window of 0 or one
// larger than the column is a silent no-op. NaN values are excluded from
// the frequency table but keep their positions in the result.
func (im *Impurity) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	if im.w == 0 || im.w > n {
		return nil
	}

	table := make(map[float64]int, im.w/2+1)
	total := 0

	add := func(v float64) {
		if math.IsNaN(v) {
			return
		}
		table[v]++
		total++
	}
	remove := func(v float64) {
		if math.IsNaN(v) {
			return
		}
		// The entry must exist; deleting at zero keeps the table at the
		// window's distinct-category size.
		table[v]--
		if table[v] == 0 {
			delete(table, v)
		}
		total--
	}

	for i := 0; i < im.w; i++ {
		add(values[i])
	}

	result := make([]float64, n)
	for i := 0; i < im.w-1; i++ {
		result[i] = math.NaN()
	}

	for i := im.w - 1; ; i++ {
		result[i] = im.measureOf(table, total)

		if i+1 >= n {
			break
		}
		remove(values[i-im.w+1])
		add(values[i+1])
	}

	im.result = result
	return nil
}

func (im *Impurity) measureOf(table map[float64]int, total int) float64 {
	if total == 0 {
		return math.NaN()
	}

	sum := 0.0
	if im.measure == GiniIndex {
		for _, count := range table {
			p := float64(count) / float64(total)
			sum += p * p
		}
		return 1.0 - sum
	}

	for _, count := range table {
		p := float64(count) / float64(total)
		sum += p * math.Log2(p)
	}
	return -sum
}

// Result returns one impurity value per input position. Positions before
// the first full window are NaN.
func (im *Impurity) Result() []float64 { return im.result }
