package fista_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/fista"
	"github.com/katalvlaran/vpca/synth"
)

// benchmarkFitTransform runs a full-budget solve on an m×n orthonormal design.
func benchmarkFitTransform(b *testing.B, m, n int) {
	A, err := synth.Orthonormal(m, n, synth.WithSeed(1))
	if err != nil {
		b.Fatalf("Orthonormal failed: %v", err)
	}
	x, err := synth.SparseVector(n, n/10+1, synth.WithSeed(2))
	if err != nil {
		b.Fatalf("SparseVector failed: %v", err)
	}
	bv := mat.NewVecDense(m, nil)
	bv.MulVec(A, mat.NewVecDense(n, x))
	rhs := bv.RawVector().Data

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		s := fista.New(fista.WithTol(0))
		if _, err := s.FitTransform(A, rhs); err != nil {
			b.Fatalf("FitTransform failed: %v", err)
		}
	}
}

// BenchmarkFitTransform_Small benchmarks 100 iterations on a 64×32 system.
func BenchmarkFitTransform_Small(b *testing.B) { benchmarkFitTransform(b, 64, 32) }

// BenchmarkFitTransform_Medium benchmarks 100 iterations on a 512×256 system.
func BenchmarkFitTransform_Medium(b *testing.B) { benchmarkFitTransform(b, 512, 256) }
