package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/dataset"
	"github.com/katalvlaran/vpca/synth"
)

func baseOptions() options {
	return options{
		mode: "rpca", m: 20, n: 20, rank: 2, density: 0.05, seed: 1,
		t: 0.2, tol: -1, verbose: 0, every: 10,
	}
}

func TestRun_RPCAWithPlotAndPCA(t *testing.T) {
	o := baseOptions()
	o.k = 2
	o.plot = filepath.Join(t.TempDir(), "rpca.png")

	var out, logs bytes.Buffer
	require.NoError(t, run(o, &out, &logs))

	assert.Contains(t, out.String(), "rpca: 20x20")
	assert.Contains(t, out.String(), "nnz(A_true)")
	assert.Contains(t, out.String(), "numrank(B)")
	assert.Contains(t, out.String(), "A+B≈C")
	assert.Contains(t, out.String(), "pca(B) explained")
	assert.Contains(t, logs.String(), "rpca: done")

	st, err := os.Stat(o.plot)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRun_FISTA(t *testing.T) {
	o := baseOptions()
	o.mode = "fista"
	o.m, o.n = 30, 10
	o.tol = 0
	o.maxIter = 5
	o.verbose = -1

	var out, logs bytes.Buffer
	require.NoError(t, run(o, &out, &logs))
	assert.Contains(t, out.String(), "iterations  5 (converged=false)")
	assert.Empty(t, logs.String())

	o.data = "trials.gob"
	assert.ErrorIs(t, run(o, &out, &logs), errDataUnsupported)
}

func TestRun_PCAFromDataset(t *testing.T) {
	X, err := synth.LowRank(8, 5, 2, synth.WithSeed(2))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "trials.gob")
	require.NoError(t, dataset.Set{3: {Data: X}}.Save(path))

	o := baseOptions()
	o.mode = "pca"
	o.data = path
	o.trial = 3

	var out bytes.Buffer
	require.NoError(t, run(o, &out, &out))
	assert.Contains(t, out.String(), "pca: scores 8x2")

	o.trial = 4
	assert.ErrorIs(t, run(o, &out, &out), dataset.ErrNoTrial)
}

func TestRun_BadFlags(t *testing.T) {
	var out bytes.Buffer

	o := baseOptions()
	o.mode = "svd"
	assert.Error(t, run(o, &out, &out))

	o = baseOptions()
	o.t = 1
	assert.Error(t, run(o, &out, &out))

	o = baseOptions()
	o.density = 2
	assert.Error(t, run(o, &out, &out))

	// Non-finite values must be rejected before the option constructors see them.
	for _, mutate := range []func(*options){
		func(o *options) { o.t = math.NaN() },
		func(o *options) { o.density = math.NaN() },
		func(o *options) { o.tol = math.Inf(1) },
		func(o *options) { o.tol = math.NaN() },
		func(o *options) { o.mode = "fista"; o.tol = math.Inf(1) },
	} {
		o = baseOptions()
		mutate(&o)
		assert.NotPanics(t, func() {
			assert.Error(t, run(o, &out, &out))
		})
	}
}

func TestSavePlot_EmptyAndLinear(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, savePlot(filepath.Join(dir, "a.png"), "x", "y", nil), errEmptyHistory)

	// A zero in the history forces a linear axis.
	require.NoError(t, savePlot(filepath.Join(dir, "b.svg"), "x", "y", []float64{1, 0.5, 0}))
}

func TestRelErr(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{3, 4})
	assert.InDelta(t, 1, relErr(mat.NewDense(1, 2, nil), a), 1e-15)
	assert.InDelta(t, 5, relErr(a, mat.NewDense(1, 2, nil)), 1e-15)
	assert.Equal(t, "[0.500 0.250]", formatRatios([]float64{0.5, 0.25}))
}
