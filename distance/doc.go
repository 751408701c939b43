// Package distance provides pluggable scalar distance functions.
//
// Every clustering engine takes a distance.Func fixed at construction and
// shared by all iterations. The default everywhere is squared Euclidean
// distance on scalars.
//
// # Supported Metrics
//
//   - MetricSquaredL2: squared Euclidean distance (default)
//   - MetricAbsolute: absolute difference
//   - MetricEuclidean: Euclidean distance
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	f, err := distance.Provider(distance.MetricAbsolute)
package distance
