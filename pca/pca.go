// SPDX-License-Identifier: MIT
// Package: vpca/pca
//
// pca.go — classical PCA by one thin SVD of the column-centered data.
//
// Layout:
//   - rows of X are observations (time bins, trials), columns are features
//     (neurons, channels);
//   - scores = U[:, :k] · diag(S[:k]) = (X − mean) · V[:, :k].

package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
)

// DefaultComponents is the number of components kept by the command-line tool
// and by callers that have no better choice.
const DefaultComponents = 2

// ErrBadComponents indicates a non-positive number of components.
var ErrBadComponents = errors.New("pca: number of components must be > 0")

// ErrNotFitted indicates Transform was called before a successful fit.
var ErrNotFitted = errors.New("pca: model is not fitted")

const (
	opFitTransform = "FitTransform"
	opTransform    = "Transform"
)

// PCA projects data onto its K leading principal directions.
// K is clamped to min(rows, cols) at fit time; the value actually used is
// reported by Components().
type PCA struct {
	// K is the requested number of components.
	K int

	means      []float64
	components *mat.Dense // cols × k, orthonormal columns
	singular   []float64  // all singular values, descending
	k          int
}

// FitTransform centers X column-wise, factorizes it and returns the m×k scores.
// X is not modified.
//
// Errors:
//   - ErrBadComponents if K <= 0.
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf for X.
//   - matrix.ErrSVDFailed if the factorization does not converge.
func (p *PCA) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if p.K <= 0 {
		return nil, fmt.Errorf("%s: K=%d: %w", opFitTransform, p.K, ErrBadComponents)
	}
	if err := matrix.ValidateInput(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opFitTransform, err)
	}
	centered, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFitTransform, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%s: %w", opFitTransform, matrix.ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := X.Dims()
	k := min(p.K, r, c)

	scores := mat.DenseCopyOf(u.Slice(0, r, 0, k))
	scores.Apply(func(_, j int, x float64) float64 {
		return x * s[j]
	}, scores)

	p.means = means
	p.components = mat.DenseCopyOf(v.Slice(0, c, 0, k))
	p.singular = s
	p.k = k

	return scores, nil
}

// Transform projects new observations with the fitted means and directions.
//
// Errors: ErrNotFitted, matrix.ErrDimensionMismatch when X has a different
// number of columns than the fitted data, and the validation sentinels.
func (p *PCA) Transform(X mat.Matrix) (*mat.Dense, error) {
	if p.components == nil {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNotFitted)
	}
	if err := matrix.ValidateInput(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	r, c := X.Dims()
	if c != len(p.means) {
		return nil, fmt.Errorf("%s: %d columns, fitted %d: %w", opTransform, c, len(p.means), matrix.ErrDimensionMismatch)
	}

	var centered mat.Dense
	centered.Apply(func(_, j int, x float64) float64 {
		return x - p.means[j]
	}, X)
	out := mat.NewDense(r, p.k, nil)
	out.Mul(&centered, p.components)
	return out, nil
}

// Means returns a copy of the column means removed during the last fit.
func (p *PCA) Means() []float64 { return append([]float64(nil), p.means...) }

// Components returns a copy of the principal directions (one per column).
func (p *PCA) Components() *mat.Dense {
	if p.components == nil {
		return nil
	}
	return mat.DenseCopyOf(p.components)
}

// Singular returns a copy of all singular values of the centered data.
func (p *PCA) Singular() []float64 { return append([]float64(nil), p.singular...) }

// ExplainedVarianceRatio returns σ_i² / Σσ² for each kept component.
func (p *PCA) ExplainedVarianceRatio() []float64 {
	if p.k == 0 {
		return nil
	}
	var total float64
	for _, v := range p.singular {
		total += v * v
	}
	out := make([]float64, p.k)
	if total == 0 {
		return out
	}
	for i := range out {
		out[i] = p.singular[i] * p.singular[i] / total
	}
	return out
}

// Reduce is shorthand for (&PCA{K: k}).FitTransform(X).
func Reduce(X mat.Matrix, k int) (*mat.Dense, error) {
	p := PCA{K: k}
	return p.FitTransform(X)
}
