// Package fractal fits multifractal wavelet models (MWM) to positive-valued,
// long-range-dependent series and synthesizes surrogate paths with matching
// multiscale statistics.
//
// 🚀 What is fractal?
//
//	A compact parametric toolkit for traffic-like and fractal time series:
//		• Fit: wavelet-driven estimation of a coarse Gaussian level plus
//		  per-scale Beta multiplier shapes
//		• Sample: top-down multiplicative cascade synthesis of new paths
//		• Diagnostics: per-scale energy signatures and surrogate-quality
//		  comparison of observed vs. synthesized series
//
// Everything is organized under three subpackages:
//
//	mwm/     — Model, Fit/FitWithScales, Sample, energy diagnostics, RNG helpers
//	wavelet/ — orthonormal decimating Haar transform (forward & inverse, in place)
//	quality/ — moment, distribution and warp-distance comparison of surrogates
//
// Quick example:
//
//	model, err := mwm.Fit(series, 16)
//	if err != nil {
//	    // ErrInvalidConfig / ErrInsufficientData / ErrModelMismatch
//	}
//	path, err := model.Sample(mwm.NewSource(42))
//
// Models are immutable and safe to share across goroutines; randomness
// sources are not — give each concurrent sampler its own stream via
// mwm.DeriveSource.
//
//	go get github.com/selivand/fractal/mwm
package fractal
