// Package fourier provides a discrete Fourier transform visitor for
// columns of any length.
//
// Power-of-two lengths use an iterative radix-2 Cooley-Tukey kernel;
// every other length goes through Bluestein's chirp-z algorithm, which
// expresses the transform as a single power-of-two convolution. Both paths
// are O(N log N).
//
// The inverse transform is computed as conjugate → forward → conjugate →
// scale by 1/N, reusing the forward kernels.
package fourier
