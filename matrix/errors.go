// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solvers built on top of it (fista, rpca, pca). Kernels
// return these sentinels wrapped with an operation tag; callers match them via
// errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never formatted at definition
// site; context is attached with fmt.Errorf("op: %w", ErrX) at the boundary.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty shape -> NaN/Inf -> dimension mismatch -> factorization failure.

var (
	// ErrNilMatrix indicates that a nil matrix or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrBadShape is returned when an input has zero rows or zero columns.
	// gonum refuses to allocate empty Dense values, so kernels reject them early.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., different shapes for element-wise work or len(b) != rows(A).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadThreshold indicates a shrinkage threshold that is negative or not finite.
	ErrBadThreshold = errors.New("matrix: threshold must be finite and non-negative")

	// ErrSVDFailed indicates that the singular value decomposition did not
	// converge for the given input.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")
)
