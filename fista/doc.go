// Package fista finds sparse solutions of linear systems with the Fast
// Iterative Shrinkage-Thresholding Algorithm.
//
// 🚀 What is FISTA?
//
//	FISTA is an accelerated proximal-gradient method for L1-regularized
//	least squares:
//
//	  argmin_x  (1/2)·‖b − A·x‖₂² + λ·‖x‖₁
//
//	Each iteration extrapolates a look-ahead point with Nesterov momentum,
//	takes a gradient step on the least-squares term and applies the
//	soft-threshold (proximal) operator, which zeroes small coefficients.
//
// ✨ Key features:
//   - annealed penalty: λ decays geometrically (λ ← max(β·λ, λ̄)) toward a floor
//   - resumable schedule: momentum and penalty are carried between calls on
//     the same Solver (see State, Resume, Reset)
//   - optional early stop on the relative change between iterates (WithTol),
//     checked once the annealed penalty has settled
//   - per-iteration history for convergence plots
//
// ⚙️ Usage:
//
//	s := fista.New(fista.WithLambda(0.01), fista.WithMaxIter(100))
//	x, err := s.FitTransform(A, b)
//	if err != nil {
//	  // handle matrix.ErrDimensionMismatch, matrix.ErrNaNInf, ...
//	}
//	fmt.Println(s.State().Lambda, s.Iterations())
//
// Step size:
//
//	λ is used both as the gradient step and as the shrinkage threshold, so
//	the fixed point satisfies x = soft(x − λ·∇f(x), λ). The step is stable
//	when λ ≤ 1/‖A‖₂²; for orthonormal columns λ = 1 reaches soft(Aᵀb, 1)
//	in a single iteration.
//
// Performance:
//
//   - Time:   O(I·m·n) for I iterations (two mat-vec products per iteration)
//   - Memory: O(m + n) beyond the inputs
//
// A Solver is not safe for concurrent use; distinct Solvers are independent.
package fista
