// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_statistics.go — column statistics used by the PCA helper.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// CenterColumns subtracts the per-column mean from every element (column-wise
// centering) and returns the centered copy together with the means.
//
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Accumulate column sums in a fixed i→j order, divide by r.
//   - Stage 3: Broadcast-subtract the means over rows via Dense.Apply.
//
// Returns:
//   - *mat.Dense: centered copy (r×c); X is not modified.
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
//
// Notes:
//   - Reuse the returned means to un-center scores later.
func CenterColumns(X mat.Matrix) (*mat.Dense, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Dims()
	means := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			means[j] += X.At(i, j)
		}
	}
	invR := 1.0 / float64(r)
	for j := range means {
		means[j] *= invR
	}

	var out mat.Dense
	out.Apply(func(_, j int, v float64) float64 {
		return v - means[j]
	}, X)
	return &out, means, nil
}
