package cluster

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/distance"
)

var (
	// ErrInvalidK is returned when the configured cluster count is not positive.
	ErrInvalidK = errors.New("cluster: k must be positive")
	// ErrInvalidDamping is returned when the damping factor is outside [0, 1).
	ErrInvalidDamping = errors.New("cluster: damping factor must be in [0, 1)")
)

// Cluster is a view over one cluster of a column: the representative
// center value plus the member positions, referencing the caller's column
// storage by position rather than by copy. Ownership of the column stays
// with the caller for the visitor's whole lifetime.
type Cluster struct {
	Center  float64
	Members *roaring.Bitmap
}

// Values gathers the member values from the source column. It allocates;
// iterate Members directly to avoid the copy.
func (c *Cluster) Values(values []float64) []float64 {
	out := make([]float64, 0, c.Members.GetCardinality())
	c.Members.Iterate(func(pos uint32) bool {
		out = append(out, values[pos])
		return true
	})
	return out
}

type options struct {
	maxIterations int
	dist          distance.Func
	damping       float64
	seed          int64
	hasSeed       bool
	materialize   bool
	logger        *colgo.Logger
}

// Option configures a clustering visitor. Options that do not apply to an
// engine are ignored by it (WithSeed by AffinityPropagation, WithDamping
// by KCenters).
type Option func(*options)

// WithMaxIterations sets the iteration cap. The cap is the only bound on
// runtime; choose it to bound latency. The default is 1000.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithDistanceFunc sets the distance function shared by all iterations.
// The default is squared Euclidean distance.
func WithDistanceFunc(f distance.Func) Option {
	return func(o *options) {
		if f != nil {
			o.dist = f
		}
	}
}

// WithDamping sets the affinity-propagation damping factor in [0, 1).
// The default is 0.9. Undamped message passing oscillates; values near 1
// converge slowly but stably.
func WithDamping(d float64) Option {
	return func(o *options) {
		o.damping = d
	}
}

// WithSeed pins the random seed used by KCenters center seeding, making a
// run reproducible. By default every Fit draws from a fresh source and
// repeated runs are not reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithoutClusters skips the cluster-materialization pass of KCenters; only
// the centers are computed.
func WithoutClusters() Option {
	return func(o *options) {
		o.materialize = false
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(logger *colgo.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = colgo.NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: 1000,
		dist:          distance.Default,
		damping:       0.9,
		materialize:   true,
		logger:        colgo.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
