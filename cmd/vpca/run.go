package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/dataset"
	"github.com/katalvlaran/vpca/fista"
	"github.com/katalvlaran/vpca/matrix"
	"github.com/katalvlaran/vpca/pca"
	"github.com/katalvlaran/vpca/rpca"
	"github.com/katalvlaran/vpca/synth"
	"github.com/katalvlaran/vpca/trace"
)

var errDataUnsupported = errors.New("-data is not supported with -mode fista")

const (
	rankTol  = 1e-9 // relative cut for the numerical rank of B
	reconTol = 1e-3 // element-wise A+B ≈ C check, relative to ‖C‖_∞
)

// logger maps -v onto a trace.Logger writing to w.
func (o options) logger(w io.Writer) *trace.Logger {
	lvl := trace.Level(o.verbose)
	if o.verbose >= 2 {
		lvl = trace.LevelTrace
	}
	l := trace.New(w, lvl)
	l.Every = o.every
	return l
}

func (o options) synthOpts() []synth.Option {
	return []synth.Option{synth.WithSeed(o.seed), synth.WithDensity(o.density)}
}

// input returns the matrix to decompose and, for synthetic input, its true parts.
func (o options) input() (c, a, b *mat.Dense, err error) {
	if o.data == "" {
		return synth.Corrupted(o.m, o.n, o.rank, o.synthOpts()...)
	}
	set, err := dataset.Load(o.data)
	if err != nil {
		return nil, nil, nil, err
	}
	tr, err := set.Trial(o.trial)
	if err != nil {
		return nil, nil, nil, err
	}
	return tr.Data, nil, nil, nil
}

func runRPCA(o options, out, logw io.Writer) error {
	C, Atrue, Btrue, err := o.input()
	if err != nil {
		return err
	}

	opts := []rpca.Option{rpca.WithTradeoff(o.t), rpca.WithLogger(o.logger(logw))}
	if o.maxIter > 0 {
		opts = append(opts, rpca.WithMaxIter(o.maxIter))
	}
	if o.tol >= 0 {
		opts = append(opts, rpca.WithTol(o.tol))
	}
	d := rpca.New(opts...)
	A, B, err := d.FitTransform(C)
	if err != nil {
		return err
	}

	r, c := C.Dims()
	fmt.Fprintf(out, "rpca: %dx%d t=%.3g beta=%.4g gamma=%.4g\n", r, c, o.t, d.Beta(), d.Gamma())
	fmt.Fprintf(out, "  iterations  %d (converged=%t)\n", d.Iterations(), d.Converged())
	fmt.Fprintf(out, "  residual    %.3e (relative %.3e)\n", d.Error(), d.Error()/matrix.Frobenius(C))
	fmt.Fprintf(out, "  rank(B)     %d\n", d.Rank())
	numRank, err := matrix.NumericalRank(B, rankTol)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  numrank(B)  %d (σ > %.0e·σ_max)\n", numRank, rankTol)

	var sum mat.Dense
	sum.Add(A, B)
	atol := reconTol * mat.Norm(C, math.Inf(1))
	ok, err := matrix.AllClose(&sum, C, 0, atol)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  A+B≈C       %t (atol %.2e)\n", ok, atol)
	fmt.Fprintf(out, "  nnz(A)      %d\n", r*c-matrix.CountNearZero(A, matrix.DefaultZeroTol))
	if Atrue != nil {
		fmt.Fprintf(out, "  nnz(A_true) %d\n", r*c-matrix.CountNearZero(Atrue, matrix.DefaultZeroTol))
		fmt.Fprintf(out, "  ‖A−A_true‖/‖A_true‖ %.3e\n", relErr(A, Atrue))
		fmt.Fprintf(out, "  ‖B−B_true‖/‖B_true‖ %.3e\n", relErr(B, Btrue))
	}

	if o.k > 0 {
		p := &pca.PCA{K: o.k}
		if _, err := p.FitTransform(B); err != nil {
			return err
		}
		fmt.Fprintf(out, "  pca(B) explained %s\n", formatRatios(p.ExplainedVarianceRatio()))
	}

	if o.plot != "" {
		return savePlot(o.plot, "robust PCA", "‖C − A − B‖_F", d.History())
	}
	return nil
}

func runFISTA(o options, out, logw io.Writer) error {
	if o.data != "" {
		return errDataUnsupported
	}
	A, err := synth.Orthonormal(o.m, o.n, synth.WithSeed(o.seed))
	if err != nil {
		return err
	}
	k := max(1, int(math.Round(o.density*float64(o.n))))
	xTrue, err := synth.SparseVector(o.n, k, synth.WithSeed(o.seed+1), synth.WithMagnitude(10))
	if err != nil {
		return err
	}
	bv := mat.NewVecDense(o.m, nil)
	bv.MulVec(A, mat.NewVecDense(o.n, xTrue))

	// Orthonormal columns have Lipschitz constant 1, so λ = 1 is a stable step.
	opts := []fista.Option{fista.WithLambda(1), fista.WithLambdaBar(1), fista.WithLogger(o.logger(logw))}
	if o.maxIter > 0 {
		opts = append(opts, fista.WithMaxIter(o.maxIter))
	}
	if o.tol >= 0 {
		opts = append(opts, fista.WithTol(o.tol))
	}
	s := fista.New(opts...)
	x, err := s.FitTransform(A, bv.RawVector().Data)
	if err != nil {
		return err
	}

	st := s.State()
	fmt.Fprintf(out, "fista: %dx%d, %d non-zero coefficients\n", o.m, o.n, k)
	fmt.Fprintf(out, "  iterations  %d (converged=%t)\n", s.Iterations(), s.Converged())
	fmt.Fprintf(out, "  lambda      %.4g  t=(%.4g, %.4g)\n", st.Lambda, st.T0, st.T1)
	fmt.Fprintf(out, "  ‖x−x_true‖/‖x_true‖ %.3e\n", floats.Distance(x, xTrue, 2)/floats.Norm(xTrue, 2))

	if o.plot != "" {
		return savePlot(o.plot, "FISTA", "‖x_k − x_{k−1}‖ / ‖x_k‖", s.History())
	}
	return nil
}

func runPCA(o options, out io.Writer) error {
	C, _, _, err := o.input()
	if err != nil {
		return err
	}
	k := o.k
	if k <= 0 {
		k = pca.DefaultComponents
	}
	p := &pca.PCA{K: k}
	scores, err := p.FitTransform(C)
	if err != nil {
		return err
	}
	r, c := scores.Dims()
	fmt.Fprintf(out, "pca: scores %dx%d\n", r, c)
	fmt.Fprintf(out, "  explained %s\n", formatRatios(p.ExplainedVarianceRatio()))
	return nil
}

func relErr(x, ref mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(x, ref)
	if n := matrix.Frobenius(ref); n > 0 {
		return matrix.Frobenius(&d) / n
	}
	return matrix.Frobenius(&d)
}

func formatRatios(r []float64) string {
	s := "["
	for i, v := range r {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.3f", v)
	}
	return s + "]"
}
