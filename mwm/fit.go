package mwm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/selivand/fractal/wavelet"
)

// MinBlocks is the smallest admissible number of coarse scaling
// coefficients. Two are required for the sample standard deviation of the
// Gaussian level to be defined.
const MinBlocks = 2

// Fit estimates a multifractal wavelet model from data.
//
// blocks is the minimal number of scaling coefficients desired at the
// coarsest level; Fit derives the scale count S = ⌊log2(n/blocks)⌋ and the
// effective block count B = ⌊n/2^S⌋ (B ≥ blocks), truncates the series to
// its first B·2^S samples, and estimates (μ, σ) plus one Beta shape per
// scale from the Haar decomposition.
//
// Errors:
//   - ErrInvalidConfig    — blocks < 2.
//   - ErrInsufficientData — the derived scale count is below one (n < 2·blocks).
//   - ErrModelMismatch    — a derived Beta shape is not strictly positive.
//
// Fit is deterministic and O(n); identical inputs yield identical Models.
func Fit(data []float64, blocks int) (*Model, error) {
	scales, err := deriveScales("Fit", len(data), blocks)
	if err != nil {
		return nil, err
	}

	return fit(data, len(data)>>uint(scales), scales)
}

// FitWithScales estimates the same model with the scale count fixed by the
// caller; the block count B = ⌊n/2^scales⌋ is derived instead.
//
// Errors:
//   - ErrInvalidConfig    — scales < 1.
//   - ErrInsufficientData — the derived block count is below two.
//   - ErrModelMismatch    — a derived Beta shape is not strictly positive.
//
// For any (data, blocks) accepted by Fit, FitWithScales(data, S) with the
// scale count S derived by Fit produces the identical Model.
func FitWithScales(data []float64, scales int) (*Model, error) {
	if scales < 1 {
		return nil, fmt.Errorf("FitWithScales: scales=%d: %w", scales, ErrInvalidConfig)
	}

	blocks := 0
	if scales < 63 {
		blocks = len(data) >> uint(scales)
	}
	if blocks < MinBlocks {
		return nil, fmt.Errorf("FitWithScales: %d samples leave %d coarse blocks at %d scales: %w",
			len(data), blocks, scales, ErrInsufficientData)
	}

	return fit(data, blocks, scales)
}

// Energies returns the per-scale mean-square energy sequence E_0..E_S of
// the series under the same truncation and decomposition Fit uses: E_0 over
// the scaling block, E_k over the detail block of scale k, coarse to fine.
//
// Shares Fit's validation; a series that Fit rejects is rejected here with
// the same sentinel.
func Energies(data []float64, blocks int) ([]float64, error) {
	scales, err := deriveScales("Energies", len(data), blocks)
	if err != nil {
		return nil, err
	}

	buf, err := decompose(data, len(data)>>uint(scales), scales)
	if err != nil {
		return nil, err
	}

	return energies(buf, len(data)>>uint(scales), scales), nil
}

// deriveScales validates blocks and computes S = ⌊log2(n/blocks)⌋, the
// deepest decomposition that still leaves at least blocks coarse
// coefficients. op names the caller for error context.
func deriveScales(op string, n, blocks int) (int, error) {
	if blocks < MinBlocks {
		return 0, fmt.Errorf("%s: blocks=%d (minimum %d): %w", op, blocks, MinBlocks, ErrInvalidConfig)
	}
	// S ≥ 1 requires n/blocks ≥ 2; guarding here keeps the log argument
	// off the degenerate n=0 branch as well.
	if n < 2*blocks {
		return 0, fmt.Errorf("%s: %d samples cannot carve %d blocks across one scale: %w",
			op, n, blocks, ErrInsufficientData)
	}

	return int(math.Floor(math.Log2(float64(n) / float64(blocks)))), nil
}

// fit runs the estimator on validated geometry: B coarse blocks, S scales.
func fit(data []float64, blocks, scales int) (*Model, error) {
	buf, err := decompose(data, blocks, scales)
	if err != nil {
		return nil, err
	}

	energy := energies(buf, blocks, scales)

	// First-order recursion linking adjacent-scale energy ratios to the
	// symmetric Beta shape, coarse to fine, with β_{-1} = 0. Any
	// non-positive (or NaN, from a degenerate 0/0 ratio) shape means the
	// cascade model cannot reproduce the data.
	betas := make([]float64, scales)
	prev := 0.0
	for i := 0; i < scales; i++ {
		b := 0.5*(energy[i]/energy[i+1])*(prev+1) - 0.5
		if !(b > 0) {
			return nil, fmt.Errorf("fit: beta[%d]=%v: %w", i, b, ErrModelMismatch)
		}
		betas[i] = b
		prev = b
	}

	coarse := buf[:blocks]

	return &Model{
		mu:    stat.Mean(coarse, nil),
		sigma: math.Sqrt(stat.Variance(coarse, nil)),
		betas: betas,
	}, nil
}

// decompose truncates data to B·2^S leading samples and runs the Haar
// pyramid over a private copy, returning the partitioned coefficient
// buffer.
func decompose(data []float64, blocks, scales int) ([]float64, error) {
	n := blocks << uint(scales)
	buf := make([]float64, n)
	copy(buf, data[:n])

	if err := wavelet.Forward(buf, wavelet.Haar{}, scales); err != nil {
		// Unreachable for geometry produced by Fit/FitWithScales; kept so
		// the collaborator contract stays visible.
		return nil, fmt.Errorf("decompose: %w", err)
	}

	return buf, nil
}

// energies reduces the partitioned coefficient buffer to E_0..E_S.
func energies(buf []float64, blocks, scales int) []float64 {
	energy := make([]float64, scales+1)
	energy[0] = meanSquare(buf[:blocks])
	for k := 1; k <= scales; k++ {
		energy[k] = meanSquare(buf[blocks<<uint(k-1) : blocks<<uint(k)])
	}

	return energy
}

// meanSquare is the average of squared values.
func meanSquare(x []float64) float64 {
	return floats.Dot(x, x) / float64(len(x))
}
