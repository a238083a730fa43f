// Package wavelet provides an orthogonal, decimating, in-place discrete
// wavelet transform over dyadic-length buffers.
//
// The package provides:
//
//   - Kernel — a narrow capability interface: one decimating filter-bank
//     level over an even-length block.
//   - Haar — the orthonormal Haar kernel used for multifractal analysis.
//   - Forward / Inverse — multi-level pyramid drivers that transform a
//     buffer in place and partition it into one scaling block followed by
//     detail blocks ordered coarsest to finest.
//
// After Forward(buf, k, S) on a buffer of length n = B·2^S, buf[0:B] holds
// the scaling (coarse) coefficients and buf[B·2^(i-1):B·2^i] holds the
// detail coefficients of scale i for i = 1..S. Inverse reverses the pyramid
// exactly (up to floating-point roundoff).
//
// Both drivers are O(n) time and O(n) scratch space, single-threaded, and
// never panic; invalid geometry is reported via sentinel errors.
package wavelet
