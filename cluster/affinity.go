package cluster

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/distance"
)

// AffinityPropagation selects a data-driven set of exemplars (cluster
// centers chosen from the data itself) by iterative message passing over
// responsibility and availability tables.
//
// Both tables are dense N×N over the non-NaN points and are rebuilt on
// every Fit; the engine is intended for column sizes where N² tables are
// affordable.
type AffinityPropagation struct {
	maxIter int
	dist    distance.Func
	damping float64
	logger  *colgo.Logger

	positions []uint32
	exemplars []float64
}

// NewAffinityPropagation creates an AffinityPropagation visitor.
func NewAffinityPropagation(optFns ...Option) *AffinityPropagation {
	o := applyOptions(optFns)
	return &AffinityPropagation{
		maxIter: o.maxIterations,
		dist:    o.dist,
		damping: o.damping,
		logger:  o.logger,
	}
}

// Pre resets the exemplar set.
func (ap *AffinityPropagation) Pre() {
	ap.positions = nil
	ap.exemplars = nil
}

// Post finalizes the visitor. It is a no-op.
func (ap *AffinityPropagation) Post() {}

// Fit selects the exemplars of the column. The number of exemplars is
// data-dependent, possibly zero. An empty column is a silent no-op.
func (ap *AffinityPropagation) Fit(index []uint64, values []float64) error {
	if ap.damping < 0 || ap.damping >= 1 {
		return ErrInvalidDamping
	}

	n := colgo.ColSize(index, values)

	// Only non-NaN positions participate; the tables are built over the
	// compacted live points.
	live := make([]int, 0, n)
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(values[i]) {
			continue
		}
		live = append(live, i)
		vals = append(vals, values[i])
	}
	if len(vals) == 0 {
		return nil
	}

	// A constant column has an all-zero similarity matrix and the message
	// passing fixed point selects nothing; every point is the same, so
	// the first occurrence stands as the single exemplar.
	if allEqual(vals) {
		ap.positions = []uint32{uint32(live[0])}
		ap.exemplars = []float64{vals[0]}
		return nil
	}

	m := len(vals)
	sim := similarity(vals, ap.dist)
	avail := make([]float64, m*m)
	respon := make([]float64, m*m)

	ap.propagate(sim, m, avail, respon)

	for i := 0; i < m; i++ {
		if respon[i*m+i]+avail[i*m+i] > 0 {
			ap.positions = append(ap.positions, uint32(live[i]))
			ap.exemplars = append(ap.exemplars, vals[i])
		}
	}

	ap.logger.Debug("affinity propagation done",
		"points", m, "exemplars", len(ap.exemplars), "iterations", ap.maxIter)

	return nil
}

// simAt reads the packed upper-triangular similarity table; the packing
// makes sim(i,j) and sim(j,i) the same cell, so the matrix is symmetric
// by construction.
func simAt(sim []float64, m, i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return sim[i*m+j-(i*(i+1))/2]
}

// similarity builds the packed pairwise similarity table: the negated
// distance for every unordered pair, with every self-similarity set to the
// minimum pairwise similarity observed. That preference value steers the
// solution away from the degenerate all-singleton and single-cluster
// extremes.
func similarity(vals []float64, dist distance.Func) []float64 {
	m := len(vals)
	sim := make([]float64, m*(m+1)/2)
	minSim := math.MaxFloat64

	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			s := -dist(vals[i], vals[j])
			sim[i*m+j-(i*(i+1))/2] = s
			if s < minSim {
				minSim = s
			}
		}
	}

	for i := 0; i < m; i++ {
		sim[i*m+i-(i*(i+1))/2] = minSim
	}

	return sim
}

// propagate runs the damped responsibility/availability updates up to the
// iteration cap. Tables are indexed [candidate*m + point]. Each iteration
// is O(m²): the inner maxima and sums are precomputed per point and per
// candidate instead of rescanned per cell.
func (ap *AffinityPropagation) propagate(sim []float64, m int, avail, respon []float64) {
	oneMinus := 1 - ap.damping

	best := make([]float64, m)    // per point: max over candidates of sim+avail
	second := make([]float64, m)  // per point: runner-up of the same
	bestArg := make([]int, m)     // per point: arg max
	sumPos := make([]float64, m)  // per candidate: Σ max(0, responsibility)

	for iter := 0; iter < ap.maxIter; iter++ {
		// Responsibility: how well suited candidate j is as an exemplar
		// for point i, normalized by the strongest competing candidate.
		for i := 0; i < m; i++ {
			best[i] = -math.MaxFloat64
			second[i] = -math.MaxFloat64
			bestArg[i] = -1

			for j := 0; j < m; j++ {
				v := simAt(sim, m, i, j) + avail[j*m+i]
				if v > best[i] {
					second[i] = best[i]
					best[i] = v
					bestArg[i] = j
				} else if v > second[i] {
					second[i] = v
				}
			}
		}

		for j := 0; j < m; j++ {
			for i := 0; i < m; i++ {
				maxDiff := best[i]
				if bestArg[i] == j {
					maxDiff = second[i]
				}

				respon[j*m+i] = oneMinus*(simAt(sim, m, i, j)-maxDiff) +
					ap.damping*respon[j*m+i]
			}
		}

		// Availability: how appropriate it is for point i to choose
		// candidate j, accumulated from positive responsibilities sent to
		// j by the other points. Diagonals first.
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := 0; i < m; i++ {
				if r := respon[j*m+i]; r > 0 {
					sum += r
				}
			}
			sumPos[j] = sum
		}

		for i := 0; i < m; i++ {
			sum := sumPos[i] - math.Max(0, respon[i*m+i])
			avail[i*m+i] = oneMinus*sum + ap.damping*avail[i*m+i]
		}

		for j := 0; j < m; j++ {
			diag := respon[j*m+j]
			for i := 0; i < m; i++ {
				if i == j {
					continue
				}

				sum := sumPos[j] - math.Max(0, respon[j*m+i]) - math.Max(0, diag)
				cand := math.Min(0, diag+sum)
				avail[j*m+i] = oneMinus*cand + ap.damping*avail[j*m+i]
			}
		}
	}
}

func allEqual(vals []float64) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// Result returns the exemplar values. It is nil until Fit has consumed a
// column, and stays nil when no exemplar emerged.
func (ap *AffinityPropagation) Result() []float64 { return ap.exemplars }

// Positions returns the exemplar positions in the source column, paired
// with Result.
func (ap *AffinityPropagation) Positions() []uint32 { return ap.positions }

// Clusters partitions the column's non-NaN points around the nearest
// exemplar, using the same distance function, and returns one view per
// exemplar. With zero exemplars the cluster set is empty.
func (ap *AffinityPropagation) Clusters(index []uint64, values []float64) []Cluster {
	if len(ap.exemplars) == 0 {
		return nil
	}

	clusters := make([]Cluster, len(ap.exemplars))
	for i := range clusters {
		clusters[i] = Cluster{Center: ap.exemplars[i], Members: roaring.New()}
	}

	n := colgo.ColSize(index, values)
	for pos := 0; pos < n; pos++ {
		v := values[pos]
		if math.IsNaN(v) {
			continue
		}

		best := 0
		bestDist := math.MaxFloat64
		for c, center := range ap.exemplars {
			if d := ap.dist(v, center); d < bestDist {
				bestDist = d
				best = c
			}
		}

		clusters[best].Members.Add(uint32(pos))
	}

	return clusters
}
