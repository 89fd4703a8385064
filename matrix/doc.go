// Package matrix offers the dense numeric kernels shared by the vpca solvers.
//
// The matrix package works directly on gonum's mat.Matrix / *mat.Dense and
// provides:
//
//   - Validators (ValidateNotNil, ValidateNonEmpty, ValidateFinite, ...) that
//     return package sentinels, so every solver reports the same failures.
//   - Proximal operators: Clip (box projection), Soft / SoftThresholdVecTo
//     (L1 shrinkage) and ShrinkSingular (nuclear-norm shrinkage).
//   - Spectral summaries: SingularValues, NumericalRank.
//   - Scalar summaries: L1Norm (entry-wise), Frobenius, ResidualNorm,
//     CountNearZero.
//   - Column statistics for PCA (CenterColumns).
//
// Inputs are never mutated (the *To helpers write into dst); results are freshly allocated *mat.Dense values.
// Errors wrap sentinels from errors.go with an operation tag, e.g.
// "ShrinkSingular: matrix: threshold must be finite and non-negative".
package matrix
