// Package vpca collects small numerical building blocks for cleaning and
// reducing neural population recordings before further analysis (jPCA and
// other rotational or dynamical methods).
//
// 🚀 What is vpca?
//
//	A gonum-based library with two iterative solvers at its heart:
//		• FISTA: sparse solutions of A·x ≈ b with an annealed L1 penalty
//		• Robust PCA: C = A + B with sparse outliers A and a low-rank signal B,
//		  solved by ADMM
//	and the glue around them:
//		• classical PCA of the cleaned signal
//		• per-trial datasets persisted as gob files
//		• seeded synthetic fixtures (orthonormal, low-rank, sparse, corrupted)
//
// ✨ Why choose vpca?
//
//   - Explicit state: FISTA's carried schedule is visible (State, Resume, Reset)
//   - Predictable failures: sentinel errors, never NaN results from bad input
//   - Inspectable runs: per-iteration histories and leveled progress logs
//   - Pure Go on gonum: no cgo
//
// Packages:
//
//	fista/   — sparse solver (accelerated proximal gradient)
//	rpca/    — robust PCA decomposer (ADMM)
//	pca/     — column-centered truncated SVD
//	matrix/  — validators, norms and proximal operators on gonum matrices
//	trace/   — leveled iteration logger shared by the solvers
//	dataset/ — Trial/Set types, gob persistence, "ensure local copy"
//	synth/   — deterministic test and demo data
//	cmd/vpca — command-line demo with convergence plots
//
// Quick example:
//
//	C, _, _, _ := synth.Corrupted(50, 40, 2, synth.WithSeed(1))
//	A, B, err := rpca.New(rpca.WithTradeoff(0.2)).FitTransform(C)
//	scores, err := pca.Reduce(B, 2)
//
//	go get github.com/katalvlaran/vpca
package vpca
