// Package stats provides the online summation primitives and the
// single-pass linear regression visitor.
//
// Accumulator and Sum consume values one at a time and support removal,
// which lets the window package slide them over a column without
// recomputing each window from scratch. Regression recovers slope,
// intercept and correlation of two paired columns in a single pass.
package stats
