// errors.go — sentinel errors for the mwm package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Fallible operations wrap sentinels with operation context via %w.
//   - Algorithms never panic; every failure path returns an error and
//     leaves no partial Model or partial sample behind.

package mwm

import "errors"

// ErrInvalidConfig indicates a meaningless resolution request: fewer than
// two coarse blocks, or fewer than one decomposition scale.
// Classification: validation error (parameters). Non-retryable as-is;
// callers should pick a different blocks/scales value.
// Usage: if errors.Is(err, ErrInvalidConfig) { /* fix blocks/scales */ }.
var ErrInvalidConfig = errors.New("mwm: invalid block/scale configuration")

// ErrInsufficientData indicates that the input series is too short to
// support the requested block/scale combination (the derived scale count
// would fall below one, or the derived block count below two).
// Usage: if errors.Is(err, ErrInsufficientData) { /* more data or fewer blocks */ }.
var ErrInsufficientData = errors.New("mwm: not enough data for requested resolution")

// ErrModelMismatch indicates that the multifractal cascade model is not
// appropriate for the data: a non-positive Beta shape parameter was derived
// during fitting, or a negative root value was drawn during sampling.
// Fitting failures are terminal for the given (data, blocks); sampling
// failures may be retried with a fresh randomness draw.
// Usage: if errors.Is(err, ErrModelMismatch) { /* model does not apply */ }.
var ErrModelMismatch = errors.New("mwm: the model is not appropriate for the data")
