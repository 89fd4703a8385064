// Package rpca splits a data matrix into a sparse part and a low-rank part
// (robust principal component analysis) with the alternating direction
// method of multipliers.
//
// 🚀 What is robust PCA?
//
//	Given an observed m×n matrix C, robust PCA looks for
//
//	  min  t·‖A‖₁ + (1 − t)·‖B‖_*    subject to   A + B = C
//
//	where ‖A‖₁ is the entry-wise L1 norm (sparse outliers, artifacts, spikes)
//	and ‖B‖_* is the nuclear norm (a low-dimensional population signal).
//	Plain PCA on C is dominated by a handful of large outliers; robust PCA
//	isolates them in A first.
//
// ✨ Key features:
//   - single trade-off knob t ∈ (0, 1); γ = t/(1 − t) scales the L1 threshold
//   - scale β = 0.25·m·n/‖C‖₁ derived from every input, nothing to tune
//   - early stop on the Frobenius residual ‖C − A − B‖ (WithTol)
//   - retained diagnostics: residual, β, rank of B, per-iteration history
//
// ⚙️ Usage:
//
//	d := rpca.New(rpca.WithTradeoff(0.2))
//	A, B, err := d.FitTransform(C)
//	if errors.Is(err, rpca.ErrDegenerateInput) {
//	  // C is all zeros
//	}
//	fmt.Println(d.Error(), d.Rank(), d.Iterations())
//
// Iteration (k = 1..MaxIter):
//
//	D = Z/β − B + C
//	A = D − clip(D, −γ/β, γ/β)          (entry-wise soft threshold)
//	B = shrink(C − A + Z/β, 1/β)        (singular-value soft threshold)
//	Z = Z − β·(A + B − C)               (dual ascent)
//
// Performance:
//
//   - Time:   O(I·m·n·min(m, n)), one thin SVD per iteration
//   - Memory: O(m·n)
//
// A Decomposer is not safe for concurrent use; distinct Decomposers are independent.
package rpca
