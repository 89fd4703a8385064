// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) mat.Matrix { return mat.NewDense(r, c, nil) }
	var typedNil *mat.Dense

	tests := []struct {
		name    string
		a, b    mat.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"transposed view", zeros(3, 2).T(), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNotNil_TypedNils covers nil gonum pointers of every concrete kind.
func TestValidateNotNil_TypedNils(t *testing.T) {
	t.Parallel()

	var (
		dense *mat.Dense
		vec   *mat.VecDense
		sym   *mat.SymDense
		tri   *mat.TriDense
		diag  *mat.DiagDense
		band  *mat.BandDense
	)
	for name, m := range map[string]mat.Matrix{
		"*Dense":     dense,
		"*VecDense":  vec,
		"*SymDense":  sym,
		"*TriDense":  tri,
		"*DiagDense": diag,
		"*BandDense": band,
	} {
		require.NotPanics(t, func() {
			require.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix, name)
			require.ErrorIs(t, matrix.ValidateInput(m), matrix.ErrNilMatrix, name)
		}, name)
	}

	require.NoError(t, matrix.ValidateNotNil(mat.NewVecDense(2, nil)))
	require.NoError(t, matrix.ValidateInput(mat.NewSymDense(2, []float64{1, 2, 2, 1})))
}

// TestValidateInput checks the NotNil → NonEmpty → Finite priority.
func TestValidateInput(t *testing.T) {
	t.Parallel()

	var typedNil *mat.Dense
	tests := []struct {
		name    string
		m       mat.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"zero value", &mat.Dense{}, matrix.ErrBadShape},
		{"NaN", mat.NewDense(1, 2, []float64{0, math.NaN()}), matrix.ErrNaNInf},
		{"-Inf in view", mat.NewDense(2, 2, []float64{1, 2, math.Inf(-1), 4}).T(), matrix.ErrNaNInf},
		{"finite", mat.NewDense(2, 2, []float64{1, 2, 3, 4}), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateInput(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFinite_SubMatrixStride ensures only the visible window is scanned.
func TestValidateFinite_SubMatrixStride(t *testing.T) {
	t.Parallel()

	full := mat.NewDense(2, 3, []float64{
		1, 2, math.NaN(),
		4, 5, math.NaN(),
	})
	view := full.Slice(0, 2, 0, 2)
	require.NoError(t, matrix.ValidateFinite(view))
	require.ErrorIs(t, matrix.ValidateFinite(full), matrix.ErrNaNInf)
}

// TestValidateVecLen covers nil, mismatched and matching vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{}, 0))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{1, math.Inf(1)}), matrix.ErrNaNInf)
}
