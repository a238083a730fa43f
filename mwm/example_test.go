package mwm_test

import (
	"fmt"

	"github.com/selivand/fractal/mwm"
)

// ExampleFit fits the 42-sample reference series with five coarse blocks.
// Three dyadic scales are derived, each carrying one Beta shape.
func ExampleFit() {
	model, err := mwm.Fit(referenceSeries, 5)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Printf("scales=%d\n", model.Scales())
	fmt.Printf("mu=%.4f sigma=%.4f\n", model.Mu(), model.Sigma())
	fmt.Printf("beta[0]=%.4f\n", model.Betas()[0])
	// Output:
	// scales=3
	// mu=1.1843 sigma=0.4467
	// beta[0]=16.3515
}

// ExampleModel_Sample synthesizes one surrogate path from a fitted model.
// The path length is fixed by the scale count: 2^3 = 8.
func ExampleModel_Sample() {
	model, err := mwm.Fit(referenceSeries, 5)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	// A draw may legitimately fail with ErrModelMismatch when the Gaussian
	// root comes out negative; retry on a fresh stream.
	var path []float64
	for stream := uint64(0); ; stream++ {
		path, err = model.Sample(mwm.DeriveSource(42, stream))
		if err == nil {
			break
		}
	}

	fmt.Println(len(path))
	// Output:
	// 8
}
