// SPDX-License-Identifier: MIT
// Package: vpca/rpca
//
// errors.go — sentinel errors for the robust PCA decomposer.
//
// Input validation failures are reported with the matrix package sentinels
// (matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf); only the
// conditions specific to the decomposition live here.

package rpca

import "errors"

// ErrDegenerateInput indicates an input whose entry-wise L1 norm is zero or
// overflows, or for which the scale β = 0.25·m·n/‖C‖₁ is not finite and positive.
var ErrDegenerateInput = errors.New("rpca: degenerate input (L1 norm gives no finite scale)")
