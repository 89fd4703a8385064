// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and solvers minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite is O(r*c); every other check is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NonEmpty → ...).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: mat.Matrix interface value (typed nil gonum pointers are also rejected).
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil pointer hidden in the interface would panic on Dims().
	if isTypedNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty – Composite: NotNil → rows>0 && cols>0.
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(1).
func ValidateNonEmpty(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	// A zero-value mat.Dense reports 0×0 and must not reach gonum kernels.
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrBadShape)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Return: nil, wrapped ErrNilMatrix or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry of m.
//
// Implementation:
//   - Stage 1: fast path over the raw backing slice for *mat.Dense.
//   - Stage 2: fallback via At for any other mat.Matrix.
//
// Errors: ErrNaNInf on the first offending entry (row-major scan order).
// Complexity: O(r*c) time, O(1) space.
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			for _, v := range row {
				if isNonFinite(v) {
					return validatorErrorf("ValidateFinite", ErrNaNInf)
				}
			}
		}
		return nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if isNonFinite(m.At(i, j)) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec is the vector counterpart of ValidateFinite.
func ValidateFiniteVec(x []float64) error {
	for _, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFiniteVec", ErrNaNInf)
		}
	}
	return nil
}

// ValidateInput – Composite used by every solver entry point:
// NotNil → NonEmpty → Finite.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf (in that priority).
// Complexity: O(r*c).
func ValidateInput(m mat.Matrix) error {
	if err := ValidateNonEmpty(m); err != nil {
		return validatorErrorf("ValidateInput", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateInput", err)
	}
	return nil
}

// isTypedNil reports a nil gonum concrete matrix stored in a non-nil interface.
func isTypedNil(m mat.Matrix) bool {
	switch v := m.(type) {
	case *mat.Dense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.TriDense:
		return v == nil
	case *mat.DiagDense:
		return v == nil
	case *mat.BandDense:
		return v == nil
	case *mat.SymBandDense:
		return v == nil
	case *mat.TriBandDense:
		return v == nil
	}
	return false
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
