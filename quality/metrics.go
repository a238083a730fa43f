package quality

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/selivand/fractal/mwm"
)

// ErrShortInput indicates a series with fewer than two samples; the
// unbiased variance, and with it every signal in a Report, is undefined
// below that.
// Usage: if errors.Is(err, ErrShortInput) { /* supply a longer series */ }.
var ErrShortInput = errors.New("quality: need at least two samples")

// Moments summarizes the first four moments of one series.
type Moments struct {
	Mean     float64
	Variance float64 // unbiased sample variance
	Skewness float64
	Kurtosis float64 // excess kurtosis (0 for a Gaussian)
}

// MomentsOf computes the moment summary of x. Defined for len(x) ≥ 2.
//
// Complexity: O(n).
func MomentsOf(x []float64) Moments {
	return Moments{
		Mean:     stat.Mean(x, nil),
		Variance: stat.Variance(x, nil),
		Skewness: stat.Skew(x, nil),
		Kurtosis: stat.ExKurtosis(x, nil),
	}
}

// Report pairs the moment summaries of an observed series and its surrogate
// with two distributional signals.
type Report struct {
	Original  Moments
	Synthetic Moments

	// KS is the two-sample Kolmogorov–Smirnov statistic over the empirical
	// distributions, in [0, 1]; 0 means identical empirical laws.
	KS float64

	// WarpDistance is the dynamic-time-warping distance between the raw
	// series shapes; 0 means one series is an exact time-warp of the other.
	WarpDistance float64
}

// Compare scores synthetic against original. The two series may differ in
// length (a surrogate path is dyadic, the observed series rarely is).
//
// Errors:
//   - ErrShortInput — either series has fewer than two samples.
//
// Complexity: O(n·m) time (warp evaluation), O(n+m) extra space.
func Compare(original, synthetic []float64) (*Report, error) {
	if len(original) < 2 {
		return nil, fmt.Errorf("Compare: original has %d samples: %w", len(original), ErrShortInput)
	}
	if len(synthetic) < 2 {
		return nil, fmt.Errorf("Compare: synthetic has %d samples: %w", len(synthetic), ErrShortInput)
	}

	return &Report{
		Original:     MomentsOf(original),
		Synthetic:    MomentsOf(synthetic),
		KS:           ksStatistic(original, synthetic),
		WarpDistance: warpDistance(original, synthetic),
	}, nil
}

// ScaleEnergies returns the per-scale mean-square wavelet energy signature
// of data under blocks coarse blocks, E_0..E_S coarse to fine. Comparing
// the signatures of an observed series and a surrogate checks the
// multiscale statistics directly.
//
// Validation and sentinels are mwm's: ErrInvalidConfig for blocks < 2,
// ErrInsufficientData for a series too short to decompose.
func ScaleEnergies(data []float64, blocks int) ([]float64, error) {
	return mwm.Energies(data, blocks)
}

// ksStatistic computes the two-sample KS statistic over sorted copies.
func ksStatistic(x, y []float64) float64 {
	xs := append([]float64(nil), x...)
	ys := append([]float64(nil), y...)
	sort.Float64s(xs)
	sort.Float64s(ys)

	return stat.KolmogorovSmirnov(xs, nil, ys, nil)
}
