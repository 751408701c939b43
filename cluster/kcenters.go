package cluster

import (
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/distance"
)

// convergenceTol is the center movement (under the distance function)
// below which refinement stops early.
const convergenceTol = 1e-7

// KCenters partitions the non-NaN values of a column into exactly k
// clusters by Lloyd-style iterative refinement of k representative
// centers.
//
// Center seeding is randomized per Fit; reproducibility requires WithSeed.
type KCenters struct {
	k           int
	maxIter     int
	dist        distance.Func
	seed        int64
	hasSeed     bool
	materialize bool
	logger      *colgo.Logger

	centers  []float64
	clusters []Cluster
}

// NewKCenters creates a KCenters visitor producing k clusters.
func NewKCenters(k int, optFns ...Option) *KCenters {
	o := applyOptions(optFns)
	return &KCenters{
		k:           k,
		maxIter:     o.maxIterations,
		dist:        o.dist,
		seed:        o.seed,
		hasSeed:     o.hasSeed,
		materialize: o.materialize,
		logger:      o.logger,
	}
}

// Pre resets the centers and any materialized clusters.
func (kc *KCenters) Pre() {
	kc.centers = nil
	kc.clusters = nil
}

// Post finalizes the visitor. It is a no-op.
func (kc *KCenters) Post() {}

// Fit trains k centers over the column and, unless WithoutClusters was
// given, materializes the cluster views in one extra assignment pass.
// An empty column is a silent no-op.
func (kc *KCenters) Fit(index []uint64, values []float64) error {
	if kc.k <= 0 {
		return ErrInvalidK
	}

	n := colgo.ColSize(index, values)
	if n == 0 {
		return nil
	}

	kc.train(values[:n])
	if kc.materialize {
		kc.clusters = kc.assign(values[:n])
	}
	return nil
}

func (kc *KCenters) train(values []float64) {
	intn := rand.Intn
	if kc.hasSeed {
		intn = rand.New(rand.NewSource(kc.seed)).Intn
	}

	// Seed centers with values sampled uniformly at random. A NaN sample
	// leaves the slot as is; re-sampling is not required.
	centers := make([]float64, kc.k)
	for i := range centers {
		v := values[intn(len(values))]
		if math.IsNaN(v) {
			continue
		}
		centers[i] = v
	}

	sums := make([]float64, kc.k)
	counts := make([]float64, kc.k)

	for iter := 0; iter < kc.maxIter; iter++ {
		for i := range sums {
			sums[i] = 0
			counts[i] = 0
		}

		// Assign every point to its nearest center; ties go to the
		// lowest cluster index.
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}

			best := 0
			bestDist := math.MaxFloat64
			for c, center := range centers {
				if d := kc.dist(v, center); d < bestDist {
					bestDist = d
					best = c
				}
			}

			sums[best] += v
			counts[best]++
		}

		done := true
		for c := range centers {
			// Zero-count guard: an empty cluster keeps its center.
			if counts[c] == 0 {
				continue
			}

			next := sums[c] / counts[c]
			if kc.dist(next, centers[c]) > convergenceTol {
				done = false
				centers[c] = next
			}
		}

		if done {
			kc.logger.Debug("k-centers converged", "k", kc.k, "iterations", iter)
			break
		}
	}

	kc.centers = centers
}

// assign performs one extra pass over the column, emitting per-cluster
// position views.
func (kc *KCenters) assign(values []float64) []Cluster {
	clusters := make([]Cluster, kc.k)
	for i := range clusters {
		clusters[i] = Cluster{Center: kc.centers[i], Members: roaring.New()}
	}

	for pos, v := range values {
		if math.IsNaN(v) {
			continue
		}

		best := 0
		bestDist := math.MaxFloat64
		for c, center := range kc.centers {
			if d := kc.dist(v, center); d < bestDist {
				bestDist = d
				best = c
			}
		}

		clusters[best].Members.Add(uint32(pos))
	}

	return clusters
}

// Result returns the k trained centers. It is nil until Fit has consumed
// a column.
func (kc *KCenters) Result() []float64 { return kc.centers }

// Clusters returns the materialized cluster views, nil when
// WithoutClusters was configured or Fit has not run.
func (kc *KCenters) Clusters() []Cluster { return kc.clusters }
