// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - Clamp and soft-threshold dense matrices and vectors.
//   - These are the proximal building blocks of the sparse solvers:
//     soft(x, τ) = x − clip(x, −τ, τ) = sign(x)·max(|x| − τ, 0).
//
// Contract:
//   - Inputs are never mutated unless the function name says "InPlace"/"To".
//   - Thresholds and bounds must be finite; thresholds must be ≥ 0.
//   - Loop order is row-major i→j; results are deterministic.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for uniform error wrapping.
const (
	opClip          = "Clip"
	opAllClose      = "AllClose"
	opShrink        = "ShrinkSingular"
	opCenterColumns = "CenterColumns"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Clip copies X clamping each entry into [lo, hi].
//
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty) and finite bounds.
//   - Stage 2: normalize bound order (lo > hi ⇒ swap).
//   - Stage 3: allocate the result through Dense.Apply.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape from validation.
//   - ErrNaNInf if lo or hi is NaN/±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - This is the Euclidean projection onto the box [lo, hi]^(r×c).
func Clip(X mat.Matrix, lo, hi float64) (*mat.Dense, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return clamp(v, lo, hi)
	}, X)
	return &out, nil
}

// SoftThresholdVecTo writes soft(x_i, tau) into dst and returns dst.
// dst and x may alias. Lengths must match (panics otherwise, like floats.*To).
// tau is not validated here; callers on the hot path validate once.
func SoftThresholdVecTo(dst, x []float64, tau float64) []float64 {
	if len(dst) != len(x) {
		panic("matrix: SoftThresholdVecTo length mismatch")
	}
	for i, v := range x {
		dst[i] = Soft(v, tau)
	}
	return dst
}

// Soft is the scalar soft-threshold operator sign(v)·max(|v| − tau, 0).
// Entries with |v| ≤ tau collapse to exactly zero.
func Soft(v, tau float64) float64 {
	a := math.Abs(v)
	if a <= tau {
		return 0
	}
	return math.Copysign(a-tau, v)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b mat.Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			bv := b.At(i, j)
			// Early-exit on first violation.
			if math.Abs(a.At(i, j)-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}
	return true, nil
}

// clamp returns v limited to [lo, hi]; assumes lo ≤ hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
