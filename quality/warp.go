package quality

import "math"

// warpDistance computes the dynamic-time-warping distance between a and b
// with absolute-difference cost and unconstrained alignment.
//
// Only the distance is needed for surrogate scoring, so the DP keeps two
// rolling rows instead of the full matrix and never backtracks a path.
//
// Complexity: O(n·m) time, O(m) space.
func warpDistance(a, b []float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + math.Min(prev[j-1], math.Min(prev[j], curr[j-1]))
		}
		prev, curr = curr, prev
	}

	// The swap leaves the last computed row in prev.
	return prev[m]
}
