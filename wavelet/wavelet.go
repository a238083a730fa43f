package wavelet

import "errors"

var (
	// ErrBadLevels indicates a non-positive decomposition depth.
	// Usage: if errors.Is(err, ErrBadLevels) { /* fix levels */ }.
	ErrBadLevels = errors.New("wavelet: levels must be positive")

	// ErrBadLength indicates a buffer whose length is zero or not divisible
	// by 2^levels, so the dyadic pyramid cannot be formed.
	// Usage: if errors.Is(err, ErrBadLength) { /* truncate or pad input */ }.
	ErrBadLength = errors.New("wavelet: length not divisible by 2^levels")
)

// Kernel is one decimating filter-bank level applied to an even-length block.
//
// ForwardStep reads block, writes the scaling half to scratch[0:len/2] and
// the detail half to scratch[len/2:len], then copies scratch back into
// block. InverseStep undoes one such step. Implementations must not retain
// either slice.
//
// Complexity: O(len(block)) time, no allocations.
type Kernel interface {
	ForwardStep(block, scratch []float64)
	InverseStep(block, scratch []float64)
}

// Forward applies k for the given number of levels, in place.
//
// Level l (l = 0..levels-1) transforms the prefix of length n/2^l, so the
// scaling output of each level becomes the input of the next. The resulting
// layout is [scaling | detail_coarsest | ... | detail_finest].
//
// Errors:
//   - ErrBadLevels — levels < 1.
//   - ErrBadLength — len(buf) is zero or not divisible by 2^levels.
//
// Complexity: O(n) time, O(n) scratch space.
func Forward(buf []float64, k Kernel, levels int) error {
	if err := checkGeometry(len(buf), levels); err != nil {
		return err
	}

	scratch := make([]float64, len(buf))
	for size := len(buf); levels > 0; levels, size = levels-1, size/2 {
		k.ForwardStep(buf[:size], scratch)
	}

	return nil
}

// Inverse undoes Forward with the same kernel and depth, in place.
//
// Errors mirror Forward. Reconstruction is exact up to roundoff for any
// orthonormal Kernel.
//
// Complexity: O(n) time, O(n) scratch space.
func Inverse(buf []float64, k Kernel, levels int) error {
	if err := checkGeometry(len(buf), levels); err != nil {
		return err
	}

	scratch := make([]float64, len(buf))
	for l := levels - 1; l >= 0; l-- {
		k.InverseStep(buf[:len(buf)>>uint(l)], scratch)
	}

	return nil
}

// checkGeometry validates the (length, levels) pair shared by both drivers.
func checkGeometry(n, levels int) error {
	if levels < 1 {
		return ErrBadLevels
	}
	// levels of this magnitude cannot divide any addressable buffer; the
	// guard also keeps the shift below well defined.
	if levels > 62 {
		return ErrBadLength
	}
	if n == 0 || n%(1<<uint(levels)) != 0 {
		return ErrBadLength
	}

	return nil
}
