package wavelet

import "math"

// invSqrt2 is 1/√2, the orthonormal Haar filter tap. Halving math.Sqrt2 is
// exact, so this is the correctly rounded value.
const invSqrt2 = math.Sqrt2 / 2

// Haar is the orthonormal Haar kernel:
//
//	s_i = (x_{2i} + x_{2i+1}) / √2
//	d_i = (x_{2i} - x_{2i+1}) / √2
//
// The ×1/√2 normalization preserves energy, which is what makes per-scale
// mean-square statistics comparable across levels.
type Haar struct{}

// ForwardStep performs one decimating Haar level over block.
func (Haar) ForwardStep(block, scratch []float64) {
	half := len(block) / 2
	for i := 0; i < half; i++ {
		a, b := block[2*i], block[2*i+1]
		scratch[i] = (a + b) * invSqrt2
		scratch[half+i] = (a - b) * invSqrt2
	}
	copy(block, scratch[:len(block)])
}

// InverseStep undoes one decimating Haar level over block.
func (Haar) InverseStep(block, scratch []float64) {
	half := len(block) / 2
	for i := 0; i < half; i++ {
		s, d := block[i], block[half+i]
		scratch[2*i] = (s + d) * invSqrt2
		scratch[2*i+1] = (s - d) * invSqrt2
	}
	copy(block, scratch[:len(block)])
}
