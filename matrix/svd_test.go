// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
)

// diag3 is diag(5, 2, 0.5) embedded in a 3×4 matrix.
func diag3() *mat.Dense {
	return mat.NewDense(3, 4, []float64{
		5, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 0.5, 0,
	})
}

func TestShrinkSingular_Diagonal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tau      float64
		wantRank int
		wantDiag []float64
	}{
		{"no shrink", 0, 3, []float64{5, 2, 0.5}},
		{"drop smallest", 1, 2, []float64{4, 1, 0}},
		{"keep one", 2, 1, []float64{3, 0, 0}},
		{"all gone", 6, 0, []float64{0, 0, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, rank, err := matrix.ShrinkSingular(diag3(), tc.tau)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRank, rank)

			r, c := got.Dims()
			require.Equal(t, 3, r)
			require.Equal(t, 4, c)
			for i := 0; i < 3; i++ {
				for j := 0; j < 4; j++ {
					want := 0.0
					if i == j {
						want = tc.wantDiag[i]
					}
					assert.InDelta(t, want, got.At(i, j), 1e-12, "(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestShrinkSingular_ShrinksSpectrum(t *testing.T) {
	t.Parallel()

	X := mat.NewDense(3, 3, []float64{
		4, 1, 2,
		1, 3, 0,
		2, 0, 5,
	})
	before, err := matrix.SingularValues(X)
	require.NoError(t, err)

	const tau = 1.5
	got, rank, err := matrix.ShrinkSingular(X, tau)
	require.NoError(t, err)
	after, err := matrix.SingularValues(got)
	require.NoError(t, err)

	kept := 0
	for i, s := range before {
		want := math.Max(s-tau, 0)
		if want > 0 {
			kept++
		}
		assert.InDelta(t, want, after[i], 1e-9, "σ_%d", i)
	}
	assert.Equal(t, kept, rank)
}

func TestShrinkSingular_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.ShrinkSingular(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.ShrinkSingular(diag3(), -0.1)
	require.ErrorIs(t, err, matrix.ErrBadThreshold)
	_, _, err = matrix.ShrinkSingular(diag3(), math.NaN())
	require.ErrorIs(t, err, matrix.ErrBadThreshold)
}

func TestNumericalRank(t *testing.T) {
	t.Parallel()

	r, err := matrix.NumericalRank(diag3(), 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	r, err = matrix.NumericalRank(diag3(), 0.2)
	require.NoError(t, err)
	assert.Equal(t, 2, r, "0.5 ≤ 0.2·5")

	r, err = matrix.NumericalRank(mat.NewDense(2, 2, nil), 1e-9)
	require.NoError(t, err)
	assert.Zero(t, r)
}
