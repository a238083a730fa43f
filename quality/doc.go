// Package quality scores a synthesized surrogate series against the
// observed series it was modeled on.
//
// The package provides:
//
//   - MomentsOf — mean, unbiased variance, skewness and excess kurtosis of
//     one series.
//   - Compare — a Report pairing both moment sets with two distributional
//     signals: the Kolmogorov–Smirnov statistic over the empirical
//     distributions and a dynamic-time-warping distance over the raw
//     shapes.
//   - ScaleEnergies — the per-scale wavelet energy signature, for checking
//     that a surrogate reproduces the original's multiscale statistics.
//
// A good surrogate shows moment ratios near one, a small KS statistic and a
// warp distance small relative to the series' amplitude; none of the
// signals is a hypothesis test, they are comparative diagnostics.
//
// All functions are pure and single-threaded. Compare is O(n·m) time in the
// two lengths (the warp evaluation dominates); MomentsOf and ScaleEnergies
// are O(n).
package quality
