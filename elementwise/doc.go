// Package elementwise provides the one-line-per-element mapping visitors:
// the sigmoid family, the rectifier family, and the loss visitors. They
// carry no windowed state; each Fit maps or reduces the column in a single
// pass through the shared visitor lifecycle.
package elementwise
