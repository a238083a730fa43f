// Package mwm fits the multifractal wavelet model (MWM) to positive-valued,
// long-range-dependent series and synthesizes surrogate sample paths from
// the fitted parameters.
//
// The model represents a process by a coarse Gaussian level (μ, σ) plus one
// symmetric Beta shape parameter β_i per dyadic scale, estimated from the
// per-scale mean-square energies of an orthonormal Haar decomposition:
//
//	β_i = 0.5·(E_i/E_{i+1})·(β_{i-1} + 1) − 0.5,  β_{-1} = 0
//
// Synthesis runs the recursion in reverse: a scaled Gaussian root value is
// repeatedly split into two children by multiplying with (1±a) for random
// multipliers a drawn from Beta(β_i, β_i) rescaled to [−1, 1], doubling the
// path length at every level.
//
// Entry points:
//
//   - Fit / FitWithScales — estimate a Model from data; O(n) time.
//   - Model.Sample        — synthesize one path of length 2^S; O(2^S) time.
//   - Energies            — per-scale energy signature of a series.
//   - NewSource / DeriveSource — deterministic randomness streams.
//
// Concurrency:
//
//	A Model is immutable after construction and safe to share read-only.
//	A randomness source is NOT safe for concurrent use; each concurrent
//	Sample call must own its source for the duration of the call (use
//	DeriveSource for decorrelated per-worker streams).
//
// Errors are sentinel values (ErrInvalidConfig, ErrInsufficientData,
// ErrModelMismatch) suitable for errors.Is; no operation returns a partial
// result on failure.
package mwm
