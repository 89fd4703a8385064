package rpca_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/rpca"
	"github.com/katalvlaran/vpca/synth"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleDecomposer_FitTransform
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 30×30 rank-2 signal (σ = 10) with 5 % of entries corrupted by ±5.
//	A small trade-off t = 0.2 isolates the corruptions in A.
//
// Complexity: O(I·m·n·min(m, n))
func ExampleDecomposer_FitTransform() {
	C, _, _, err := synth.Corrupted(30, 30, 2, synth.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d := rpca.New(rpca.WithTradeoff(0.2))
	A, B, err := d.FitTransform(C)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, c := A.Dims()
	fmt.Printf("A: %dx%d\n", r, c)
	r, c = B.Dims()
	fmt.Printf("B: %dx%d\n", r, c)
	fmt.Println("relative residual below 1e-2:", d.Error()/mat.Norm(C, 2) < 1e-2)
	// Output:
	// A: 30x30
	// B: 30x30
	// relative residual below 1e-2: true
}

// ExampleDecomposer_Beta shows the scale derived from the input's L1 norm.
func ExampleDecomposer_Beta() {
	C := mat.NewDense(2, 3, []float64{
		1, -2, 3,
		0, 4, -2,
	})
	d := rpca.New(rpca.WithMaxIter(10))
	if _, _, err := d.FitTransform(C); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("beta=%.3f gamma=%.1f\n", d.Beta(), d.Gamma())
	// Output:
	// beta=0.125 gamma=1.0
}
