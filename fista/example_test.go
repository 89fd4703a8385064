package fista_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/fista"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleSolver_FitTransform
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Orthonormal design (identity), b = [10, 0, −10, 0].
//	With λ = λ̄ = 1 the first iteration lands on soft(b, 1) and the second
//	confirms the fixed point, so the relative-change test stops the loop.
//
// Complexity: O(I·m·n)
func ExampleSolver_FitTransform() {
	A := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	b := []float64{10, 0, -10, 0}

	s := fista.New(fista.WithLambda(1), fista.WithLambdaBar(1), fista.WithTol(1e-9))
	x, err := s.FitTransform(A, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%v iters=%d converged=%t\n", x, s.Iterations(), s.Converged())
	// Output:
	// x=[9 0 -9 0] iters=2 converged=true
}

// ExampleSolver_State shows the annealed penalty carried between calls and
// how Reset starts a new session.
func ExampleSolver_State() {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := []float64{1, -1}

	s := fista.New(fista.WithMaxIter(2), fista.WithTol(0))
	_, _ = s.FitTransform(A, b)
	fmt.Printf("after 1st call: lambda=%.4f\n", s.State().Lambda)
	_, _ = s.FitTransform(A, b)
	fmt.Printf("after 2nd call: lambda=%.4f\n", s.State().Lambda)
	s.Reset()
	fmt.Printf("after Reset:    lambda=%.4f\n", s.State().Lambda)
	// Output:
	// after 1st call: lambda=0.0025
	// after 2nd call: lambda=0.0010
	// after Reset:    lambda=0.0100
}
