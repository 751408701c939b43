// Package colgo provides stateful, composable column visitors for Go.
//
// A visitor consumes one column of a tabular dataset (an ordered index
// sequence paired with an ordered value sequence of equal length) and
// produces a derived artifact: a statistic, a transformed sequence, a
// clustering, or a scalar loss. All visitors share one lifecycle so an
// orchestrator can apply them uniformly:
//
//	v.Pre()                  // reset state
//	v.Fit(index, values)     // consume a column (may be called more than once)
//	v.Post()                 // finalize
//	v.Result()               // or a specialized accessor: Slope(), Magnitude(), ...
//
// The Run helpers drive the full lifecycle in one call:
//
//	reg := stats.NewRegression(false)
//	if err := colgo.RunPair(reg, index, xs, ys); err != nil { ... }
//	fmt.Println(reg.Slope(), reg.Intercept())
//
// # Packages
//
//   - distance: pluggable scalar distance functions (squared L2 by default)
//   - stats: online accumulator, online sum, single-pass linear regression
//   - window: sliding-window aggregation, rolling entropy, rolling impurity
//   - fourier: forward/inverse discrete Fourier transform, any length
//   - cluster: k-centers and affinity-propagation clustering
//   - elementwise: sigmoid/rectifier mappers and loss functions
//   - snapshot: persistence of trained cluster models
//
// # Numeric Edge Cases
//
// Degenerate numerics (zero variance, empty clusters, logs of non-positive
// values) never raise errors; guard clauses substitute neutral values and
// NaN/Inf propagates to the result. The only fatal precondition is a length
// mismatch between paired sequences, reported as *LengthMismatchError.
//
// With skip-NaN enabled (the default where it applies), NaN inputs are
// excluded from all statistics but keep their positions in any result
// sequence of the input's length.
//
// # Concurrency
//
// A visitor instance is not safe for concurrent use. Distinct instances
// over distinct columns are independent; RunAll applies a batch of jobs
// with bounded parallelism.
package colgo
