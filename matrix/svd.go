// SPDX-License-Identifier: MIT
// Package: matrix
//
// svd.go — singular-value soft thresholding, the proximal operator of the
// nuclear norm:
//
//	shrink(X, τ) = U · diag(max(σ − τ, 0)) · Vᵀ,   X = U · diag(σ) · Vᵀ (thin SVD)
//
// Singular vectors are reused unchanged; only the spectrum is shrunk.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ShrinkSingular returns shrink(X, tau) together with the number of singular
// values that survived the threshold (the rank of the result).
//
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty) and tau (finite, ≥ 0).
//   - Stage 2: thin SVD via gonum (mat.SVDThin); gonum sorts σ descending,
//     so the surviving values form a prefix of length rank.
//   - Stage 3: rebuild from the leading rank columns only:
//     out = (U_k · diag(σ_k − τ)) · V_kᵀ.
//
// Behavior highlights:
//   - rank == 0 ⇒ an all-zero r×c matrix (no multiplication performed).
//   - tau == 0 ⇒ reconstruction of X up to rounding.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape from validation.
//   - ErrBadThreshold for negative or non-finite tau.
//   - ErrSVDFailed when gonum reports a failed factorization.
//
// Complexity:
//   - Time O(r·c·min(r,c)) for the SVD plus O(r·c·rank) for the rebuild.
//   - Space O(r·c).
func ShrinkSingular(X mat.Matrix, tau float64) (*mat.Dense, int, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, 0, matrixErrorf(opShrink, err)
	}
	if isNonFinite(tau) || tau < 0 {
		return nil, 0, matrixErrorf(opShrink, ErrBadThreshold)
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, 0, matrixErrorf(opShrink, ErrSVDFailed)
	}
	s := svd.Values(nil)

	// Shrink the spectrum; values are descending so we can stop early.
	rank := 0
	for i := range s {
		s[i] -= tau
		if s[i] <= 0 {
			break
		}
		rank++
	}

	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	if rank == 0 {
		return out, 0, nil
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Scale the leading columns of U by the shrunk singular values.
	us := mat.DenseCopyOf(u.Slice(0, r, 0, rank))
	us.Apply(func(_, j int, x float64) float64 {
		return x * s[j]
	}, us)

	out.Mul(us, v.Slice(0, c, 0, rank).T())
	return out, rank, nil
}

// SingularValues returns the singular values of X in descending order.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrSVDFailed.
func SingularValues(X mat.Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf("SingularValues", err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDNone); !ok {
		return nil, matrixErrorf("SingularValues", ErrSVDFailed)
	}
	return svd.Values(nil), nil
}

// NumericalRank counts singular values above tol·σ_max.
//
// Errors: see SingularValues.
func NumericalRank(X mat.Matrix, tol float64) (int, error) {
	s, err := SingularValues(X)
	if err != nil {
		return 0, err
	}
	if len(s) == 0 || s[0] == 0 {
		return 0, nil
	}
	cut := tol * s[0]
	rank := 0
	for _, v := range s {
		if v > cut {
			rank++
		}
	}
	return rank, nil
}
