package mwm

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample synthesizes one sample path of length 2^S from the model via
// top-down multiplicative cascade expansion.
//
// The root value z = 2^(−S/2)·N(μ,σ) seeds a single-node path; each level
// i = 0..S−1 then splits every node x into children (1+a)·x and (1−a)·x,
// with a drawn from Beta(β_i, β_i) rescaled to [−1, 1]. Nodes are expanded
// in descending index order, so the one 2^S buffer can hold both the
// pending parents and the freshly written children.
//
// Since the root is non-negative and every multiplier lies in [−1, 1],
// every produced value is non-negative.
//
// src is owned exclusively for the duration of the call; concurrent Sample
// calls must each hold their own source (see DeriveSource). A nil src falls
// back to a fixed-seed deterministic source.
//
// Errors:
//   - ErrModelMismatch — the root draw is negative; the process is defined
//     as positive-valued, so a negative root invalidates the expansion.
//     Retry with a fresh draw if desired. No partial path is returned.
//
// Complexity: O(2^S) time, O(2^S) space.
func (m *Model) Sample(src rand.Source) ([]float64, error) {
	if src == nil {
		src = NewSource(0)
	}

	scales := len(m.betas)
	gaussian := distuv.Normal{Mu: m.mu, Sigma: m.sigma, Src: src}

	// The fitted (μ, σ) live in coarse-coefficient units; 2^(−S/2) undoes
	// the orthonormal scaling accumulated over S levels.
	root := math.Exp2(-float64(scales)/2) * gaussian.Rand()
	if root < 0 {
		return nil, fmt.Errorf("Sample: negative root draw %v: %w", root, ErrModelMismatch)
	}

	path := make([]float64, 1<<uint(scales))
	path[0] = root
	for i := 0; i < scales; i++ {
		multiplier := distuv.Beta{Alpha: m.betas[i], Beta: m.betas[i], Src: src}
		for j := 1<<uint(i) - 1; j >= 0; j-- {
			x := path[j]
			a := 2*multiplier.Rand() - 1
			path[2*j] = (1 + a) * x
			path[2*j+1] = (1 - a) * x
		}
	}

	return path, nil
}
