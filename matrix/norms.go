// SPDX-License-Identifier: MIT
// Package: matrix
//
// norms.go — scalar summaries of dense matrices used by the solvers:
// entry-wise L1 norm (robust PCA scale), Frobenius norm (residuals) and
// near-zero counting (sparsity reports).
//
// All functions assume a validated, non-nil input (see ValidateInput).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultZeroTol is the magnitude under which an entry counts as zero
// in sparsity reports.
const DefaultZeroTol = 1e-6

// L1Norm returns the entry-wise L1 norm Σ_ij |m_ij|.
//
// Notes:
//   - This is NOT the induced 1-norm (max column sum) returned by mat.Norm(m, 1).
//
// Complexity: O(r*c) time, O(1) space.
func L1Norm(m mat.Matrix) float64 {
	r, c := m.Dims()
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		var sum float64
		for i := 0; i < r; i++ {
			sum += floats.Norm(raw.Data[i*raw.Stride:i*raw.Stride+c], 1)
		}
		return sum
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(m.At(i, j))
		}
	}
	return sum
}

// Frobenius returns ‖m‖_F.
func Frobenius(m mat.Matrix) float64 {
	return mat.Norm(m, 2)
}

// ResidualNorm returns ‖c − a − b‖_F without allocating a temporary matrix.
// Shapes must already be validated as identical.
//
// Complexity: O(r*c) time, O(1) space.
func ResidualNorm(c, a, b mat.Matrix) float64 {
	r, n := c.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			d := c.At(i, j) - a.At(i, j) - b.At(i, j)
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// CountNearZero returns the number of entries with |v| < tol.
// A negative tol is normalized to its absolute value.
//
// Complexity: O(r*c) time, O(1) space.
func CountNearZero(m mat.Matrix, tol float64) int {
	if tol < 0 {
		tol = -tol
	}
	r, c := m.Dims()
	var n int
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(m.At(i, j)) < tol {
				n++
			}
		}
	}
	return n
}
