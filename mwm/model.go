package mwm

import (
	"fmt"
	"math"
)

// Model is a fitted multifractal wavelet model: a coarse Gaussian level
// (μ, σ) plus one Beta shape parameter per scale, ordered coarse to fine.
//
// Invariants (enforced by Fit/FitWithScales and New):
//   - at least one scale;
//   - every β_i > 0;
//   - σ ≥ 0.
//
// A Model is immutable after construction and safe for concurrent
// read-only use.
type Model struct {
	mu    float64
	sigma float64
	betas []float64
}

// New builds a Model from explicit parameters, enforcing the invariants
// above. The betas slice is copied; the caller keeps ownership of its
// argument.
//
// Errors:
//   - ErrInvalidConfig — no scales, or σ < 0 (or non-finite μ/σ).
//   - ErrModelMismatch — a non-positive or non-finite β_i.
func New(mu, sigma float64, betas []float64) (*Model, error) {
	if len(betas) == 0 {
		return nil, fmt.Errorf("New: no scales: %w", ErrInvalidConfig)
	}
	if !(sigma >= 0) || !isFinite(mu) || !isFinite(sigma) {
		return nil, fmt.Errorf("New: bad Gaussian level (mu=%v, sigma=%v): %w", mu, sigma, ErrInvalidConfig)
	}
	for i, b := range betas {
		// !(b > 0) also rejects NaN.
		if !(b > 0) || !isFinite(b) {
			return nil, fmt.Errorf("New: beta[%d]=%v: %w", i, b, ErrModelMismatch)
		}
	}

	return &Model{mu: mu, sigma: sigma, betas: append([]float64(nil), betas...)}, nil
}

// Mu returns the mean of the coarse Gaussian level.
func (m *Model) Mu() float64 { return m.mu }

// Sigma returns the standard deviation of the coarse Gaussian level.
func (m *Model) Sigma() float64 { return m.sigma }

// Scales returns the number of dyadic scales S.
func (m *Model) Scales() int { return len(m.betas) }

// PathLen returns the length 2^S of one synthesized path.
func (m *Model) PathLen() int { return 1 << uint(len(m.betas)) }

// Betas returns a copy of the per-scale Beta shape parameters, ordered
// coarse to fine.
func (m *Model) Betas() []float64 {
	return append([]float64(nil), m.betas...)
}

// String renders a compact summary, handy in logs and test failures.
func (m *Model) String() string {
	return fmt.Sprintf("mwm.Model{mu: %.6g, sigma: %.6g, scales: %d}", m.mu, m.sigma, len(m.betas))
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
