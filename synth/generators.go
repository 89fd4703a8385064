// SPDX-License-Identifier: MIT
// Package: vpca/synth
//
// generators.go — Orthonormal, LowRank, Sparse, SparseVector, Corrupted.
//
// Determinism:
//   - Draw order is fixed (row-major for matrices, factor U before V).
//   - Sharing an RNG across calls (WithRand) yields a reproducible sequence.

package synth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	methodOrthonormal  = "Orthonormal"
	methodLowRank      = "LowRank"
	methodSparse       = "Sparse"
	methodSparseVector = "SparseVector"
	methodCorrupted    = "Corrupted"
)

// Orthonormal returns an m×r matrix with orthonormal columns (QᵀQ = I_r).
//
// Implementation:
//   - Stage 1: validate 1 ≤ r ≤ m.
//   - Stage 2: draw an m×r Gaussian matrix.
//   - Stage 3: thin Q of its QR factorization.
//
// Errors: ErrTooSmall (m < 1), ErrBadRank (r < 1 or r > m), ErrFactorFailed.
// Complexity: O(m·r²).
func Orthonormal(m, r int, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)
	return orthonormal(m, r, cfg)
}

func orthonormal(m, r int, cfg config) (*mat.Dense, error) {
	if m < 1 {
		return nil, fmt.Errorf("%s: m=%d: %w", methodOrthonormal, m, ErrTooSmall)
	}
	if r < 1 || r > m {
		return nil, fmt.Errorf("%s: r=%d not in [1,%d]: %w", methodOrthonormal, r, m, ErrBadRank)
	}

	g := mat.NewDense(m, r, gaussianData(m*r, cfg.rng))
	var qr mat.QR
	qr.Factorize(g)
	if math.IsInf(qr.Cond(), 1) {
		return nil, fmt.Errorf("%s: %w", methodOrthonormal, ErrFactorFailed)
	}
	var q mat.Dense
	qr.QTo(&q)
	return mat.DenseCopyOf(q.Slice(0, m, 0, r)), nil
}

// LowRank returns an m×n matrix of rank r built as U·diag(σ)·Vᵀ with
// orthonormal U (m×r), V (n×r). σ comes from WithSingular (default
// DefaultSingular for every component). r == 0 yields the zero matrix.
//
// Errors: ErrTooSmall, ErrBadRank (r < 0 or r > min(m, n)), ErrFactorFailed.
func LowRank(m, n, r int, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)
	return lowRank(m, n, r, cfg)
}

func lowRank(m, n, r int, cfg config) (*mat.Dense, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodLowRank, m, n, ErrTooSmall)
	}
	if r < 0 || r > min(m, n) {
		return nil, fmt.Errorf("%s: r=%d not in [0,%d]: %w", methodLowRank, r, min(m, n), ErrBadRank)
	}
	out := mat.NewDense(m, n, nil)
	if r == 0 {
		return out, nil
	}

	u, err := orthonormal(m, r, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: U: %w", methodLowRank, err)
	}
	v, err := orthonormal(n, r, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: V: %w", methodLowRank, err)
	}

	// Scale the columns of U by σ_k.
	u.Apply(func(_, k int, x float64) float64 {
		return x * cfg.singularAt(k)
	}, u)
	out.Mul(u, v.T())
	return out, nil
}

// Sparse returns an m×n matrix whose entries are independently non-zero with
// probability WithDensity, each non-zero being ±WithMagnitude with a random
// sign. The number of non-zeros is returned alongside.
//
// Errors: ErrTooSmall.
func Sparse(m, n int, opts ...Option) (*mat.Dense, int, error) {
	cfg := newConfig(opts...)
	return sparse(m, n, cfg)
}

func sparse(m, n int, cfg config) (*mat.Dense, int, error) {
	if m < 1 || n < 1 {
		return nil, 0, fmt.Errorf("%s: %dx%d: %w", methodSparse, m, n, ErrTooSmall)
	}
	out := mat.NewDense(m, n, nil)
	nnz := 0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			// One Bernoulli draw per entry keeps the stream layout fixed.
			if cfg.rng.Float64() < cfg.density {
				out.Set(i, j, randomSign(cfg.rng)*cfg.magnitude)
				nnz++
			}
		}
	}
	return out, nnz, nil
}

// SparseVector returns a length-n vector with exactly k non-zeros at distinct
// random positions, each ±WithMagnitude.
//
// Errors: ErrTooSmall (n < 1), ErrBadRank (k < 0 or k > n).
func SparseVector(n, k int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodSparseVector, n, ErrTooSmall)
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("%s: k=%d not in [0,%d]: %w", methodSparseVector, k, n, ErrBadRank)
	}
	cfg := newConfig(opts...)
	x := make([]float64, n)
	for _, idx := range cfg.rng.Perm(n)[:k] {
		x[idx] = randomSign(cfg.rng) * cfg.magnitude
	}
	return x, nil
}

// Corrupted returns C = A + B where A is Sparse(m, n) and B is LowRank(m, n, r),
// drawn in that order from the same RNG stream.
//
// Errors: those of Sparse and LowRank, tagged with the method name.
func Corrupted(m, n, r int, opts ...Option) (c, a, b *mat.Dense, err error) {
	cfg := newConfig(opts...)
	a, _, err = sparse(m, n, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodCorrupted, err)
	}
	b, err = lowRank(m, n, r, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodCorrupted, err)
	}
	c = mat.NewDense(m, n, nil)
	c.Add(a, b)
	return c, a, b, nil
}
