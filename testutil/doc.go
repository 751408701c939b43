// Package testutil provides deterministic column generators for tests
// and benchmarks.
package testutil
