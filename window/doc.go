// Package window provides sliding-window application of streaming
// aggregators plus the rolling information statistics built on top of it.
//
// Roller slides any add/remove-capable aggregator over a fixed-size window
// in O(1) per step. Entropy computes a rolling Shannon entropy of the
// window's value distribution; Impurity computes a rolling Gini index or
// information entropy over the window's category proportions.
//
// Every rolling result sequence has the input column's length; positions
// before the first full window are NaN.
package window
