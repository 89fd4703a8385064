// SPDX-License-Identifier: MIT
// Package: vpca/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach context with %w (method tag and offending values).

package synth

import "errors"

// ErrTooSmall indicates that a size parameter (rows, cols, length) is smaller
// than the allowed minimum of 1.
var ErrTooSmall = errors.New("synth: parameter too small")

// ErrBadRank indicates a rank or support size outside [0, min(rows, cols)]
// (or [1, rows] for orthonormal factors).
var ErrBadRank = errors.New("synth: rank out of range")

// ErrFactorFailed indicates the QR orthonormalization could not be computed.
var ErrFactorFailed = errors.New("synth: orthonormalization failed")
