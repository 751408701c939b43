// Package cluster provides the two unsupervised clustering visitors:
// KCenters (iterative refinement of a fixed number of centers) and
// AffinityPropagation (exemplar selection via damped message passing, no
// fixed cluster count).
//
// Both engines take a pluggable distance function, fixed at construction,
// with squared Euclidean distance as the default. Cluster membership is
// exposed as roaring bitmaps of column positions, views into the
// caller-owned column rather than value copies.
package cluster
