package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
	"github.com/katalvlaran/vpca/pca"
	"github.com/katalvlaran/vpca/synth"
)

// TestReduce_KnownLine checks scores of points on a single line.
func TestReduce_KnownLine(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	p := &pca.PCA{K: 1}
	scores, err := p.FitTransform(X)
	require.NoError(t, err)

	r, c := scores.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	// Centered rows are (−2,−2), (0,0), (2,2); sign of a direction is arbitrary.
	want := []float64{2 * math.Sqrt2, 0, 2 * math.Sqrt2}
	for i, w := range want {
		assert.InDelta(t, w, math.Abs(scores.At(i, 0)), 1e-12, "row %d", i)
	}
	assert.Equal(t, []float64{3, 4}, p.Means())
	assert.InDelta(t, 4, p.Singular()[0], 1e-12)
	assert.InDeltaSlice(t, []float64{1}, p.ExplainedVarianceRatio(), 1e-12)

	comp := p.Components()
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(comp.At(0, 0)), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(comp.At(1, 0)), 1e-12)
}

// TestFitTransform_MatchesTransform checks U·S equals the projection (X − mean)·V.
func TestFitTransform_MatchesTransform(t *testing.T) {
	X, err := synth.LowRank(12, 6, 3, synth.WithSeed(4), synth.WithSingular(9, 5, 2))
	require.NoError(t, err)

	p := &pca.PCA{K: 3}
	scores, err := p.FitTransform(X)
	require.NoError(t, err)

	proj, err := p.Transform(X)
	require.NoError(t, err)
	ok, err := matrix.AllClose(proj, scores, 0, 1e-10)
	require.NoError(t, err)
	assert.True(t, ok)

	// Score columns are orthogonal with squared norms σ_i².
	var gram mat.Dense
	gram.Mul(scores.T(), scores)
	s := p.Singular()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = s[i] * s[i]
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-9, "gram[%d,%d]", i, j)
		}
	}

	ratios := p.ExplainedVarianceRatio()
	require.Len(t, ratios, 3)
	assert.InDelta(t, 1, ratios[0]+ratios[1]+ratios[2], 1e-9, "rank-3 data is fully explained")
	assert.GreaterOrEqual(t, ratios[0], ratios[1])
}

// TestFitTransform_ClampsK checks K beyond min(rows, cols) is reduced.
func TestFitTransform_ClampsK(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 1})
	scores, err := pca.Reduce(X, 10)
	require.NoError(t, err)
	_, c := scores.Dims()
	assert.Equal(t, 2, c)
}

// TestFitTransform_Errors covers the sentinel surface.
func TestFitTransform_Errors(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := pca.Reduce(X, 0)
	assert.ErrorIs(t, err, pca.ErrBadComponents)

	_, err = pca.Reduce(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = pca.Reduce(mat.NewDense(1, 2, []float64{math.Inf(-1), 0}), 1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	p := &pca.PCA{K: 1}
	_, err = p.Transform(X)
	assert.ErrorIs(t, err, pca.ErrNotFitted)
	assert.Nil(t, p.Components())
	assert.Nil(t, p.ExplainedVarianceRatio())

	_, err = p.FitTransform(X)
	require.NoError(t, err)
	_, err = p.Transform(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFitTransform_DoesNotMutateInput guards the caller's matrix.
func TestFitTransform_DoesNotMutateInput(t *testing.T) {
	X := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	orig := mat.DenseCopyOf(X)
	_, err := pca.Reduce(X, 2)
	require.NoError(t, err)
	assert.True(t, mat.Equal(orig, X))
}
