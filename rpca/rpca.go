package rpca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
	"github.com/katalvlaran/vpca/trace"
)

const opFitTransform = "FitTransform"

// Decomposer splits matrices into sparse and low-rank parts.
//
// Only the configuration survives between FitTransform calls; β and every
// working matrix are re-derived from each new input. The results of the
// last successful fit stay available through the accessors.
type Decomposer struct {
	cfg  config
	last *Result
}

// Result is the outcome of one FitTransform call.
type Result struct {
	Sparse    *mat.Dense // A
	LowRank   *mat.Dense // B
	Error     float64    // ‖C − A − B‖_F after the last iteration
	Beta      float64    // 0.25·m·n/‖C‖₁
	Rank      int        // singular values of B that survived the shrink
	Iters     int
	Converged bool
	History   []float64 // residual per iteration
}

// New builds a Decomposer from the given options (see Default* constants).
func New(opts ...Option) *Decomposer {
	return &Decomposer{cfg: newConfig(opts...)}
}

// FitTransform decomposes C into a sparse A and a low-rank B with A + B ≈ C.
// C itself is never modified; A and B are fresh matrices owned by the caller.
//
// Non-convergence within MaxIter is not an error: inspect Error or Converged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf for C.
//   - ErrDegenerateInput when C is all zeros, or its L1 norm is so small or
//     so large that β is not a finite positive number.
//   - matrix.ErrSVDFailed when the singular-value shrink fails.
func (d *Decomposer) FitTransform(C mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := matrix.ValidateInput(C); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFitTransform, err)
	}
	c := mat.DenseCopyOf(C)

	res, err := d.run(c)
	if err != nil {
		return nil, nil, err
	}
	d.last = res

	return mat.DenseCopyOf(res.Sparse), mat.DenseCopyOf(res.LowRank), nil
}

// run is the ADMM loop on a private copy c of the input.
func (d *Decomposer) run(c *mat.Dense) (*Result, error) {
	m, n := c.Dims()
	l1 := matrix.L1Norm(c)
	beta := 0.25 * float64(m*n) / l1
	if l1 == 0 || math.IsInf(l1, 0) || beta == 0 || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%s: %w", opFitTransform, ErrDegenerateInput)
	}

	var (
		cfg = d.cfg
		log = cfg.logger
		inv = 1 / beta
		p   = cfg.gamma / beta

		a  = mat.NewDense(m, n, nil) // sparse part
		b  = mat.NewDense(m, n, nil) // low-rank part
		z  = mat.NewDense(m, n, nil) // dual variable
		zs = mat.NewDense(m, n, nil) // Z/β
		w  = mat.NewDense(m, n, nil) // scratch

		res = &Result{Beta: beta, History: make([]float64, 0, min(cfg.maxIter, 64))}
	)

	log.Printf(trace.LevelTrace, "rpca: %dx%d beta=%.6e gamma=%.6e p=%.6e\n", m, n, beta, cfg.gamma, p)

	for k := 1; k <= cfg.maxIter; k++ {
		zs.Scale(inv, z)

		// 1–2. A = D − clip(D, −p, p) with D = Z/β − B + C.
		w.Sub(zs, b)
		w.Add(w, c)
		clipped, err := matrix.Clip(w, -p, p)
		if err != nil {
			return nil, fmt.Errorf("%s: iter %d: %w", opFitTransform, k, err)
		}
		a.Sub(w, clipped)

		// 3. B = shrink(C − A + Z/β, 1/β).
		w.Sub(c, a)
		w.Add(w, zs)
		shrunk, rank, err := matrix.ShrinkSingular(w, inv)
		if err != nil {
			return nil, fmt.Errorf("%s: iter %d: %w", opFitTransform, k, err)
		}
		b = shrunk

		// 4. Z = Z − β·(A + B − C).
		w.Add(a, b)
		w.Sub(w, c)
		z.Sub(z, scaled(w, beta))

		// 5. Residual.
		e := matrix.ResidualNorm(c, a, b)
		res.History = append(res.History, e)
		res.Error = e
		res.Rank = rank
		res.Iters = k

		if log.Iter(k) {
			log.Printf(trace.LevelIter, "rpca: iter %4d  err=%.3e  rank=%d\n", k, e, rank)
		}
		if cfg.tol > 0 && e < cfg.tol {
			res.Converged = true
			break
		}
	}

	res.Sparse, res.LowRank = a, b
	log.Printf(trace.LevelSummary, "rpca: done iter=%d err=%.3e rank=%d converged=%t\n",
		res.Iters, res.Error, res.Rank, res.Converged)

	return res, nil
}

// scaled scales x in place by f and returns it.
func scaled(x *mat.Dense, f float64) *mat.Dense {
	x.Scale(f, x)
	return x
}

// Gamma returns the derived weight t/(1 − t).
func (d *Decomposer) Gamma() float64 { return d.cfg.gamma }

// Tradeoff returns the configured t.
func (d *Decomposer) Tradeoff() float64 { return d.cfg.t }

// Sparse returns a copy of the last sparse component (nil before any fit).
func (d *Decomposer) Sparse() *mat.Dense {
	if d.last == nil {
		return nil
	}
	return mat.DenseCopyOf(d.last.Sparse)
}

// LowRank returns a copy of the last low-rank component (nil before any fit).
func (d *Decomposer) LowRank() *mat.Dense {
	if d.last == nil {
		return nil
	}
	return mat.DenseCopyOf(d.last.LowRank)
}

// Error returns the residual ‖C − A − B‖_F of the last fit.
func (d *Decomposer) Error() float64 {
	if d.last == nil {
		return 0
	}
	return d.last.Error
}

// Beta returns the scale derived for the last fit.
func (d *Decomposer) Beta() float64 {
	if d.last == nil {
		return 0
	}
	return d.last.Beta
}

// Rank returns the rank of the last low-rank component.
func (d *Decomposer) Rank() int {
	if d.last == nil {
		return 0
	}
	return d.last.Rank
}

// Iterations returns the number of iterations the last fit ran.
func (d *Decomposer) Iterations() int {
	if d.last == nil {
		return 0
	}
	return d.last.Iters
}

// Converged reports whether the last fit stopped on the residual tolerance.
func (d *Decomposer) Converged() bool {
	return d.last != nil && d.last.Converged
}

// History returns a copy of the per-iteration residuals of the last fit.
func (d *Decomposer) History() []float64 {
	if d.last == nil {
		return nil
	}
	return append([]float64(nil), d.last.History...)
}

// Result returns a deep copy of the last fit, or false before any fit.
func (d *Decomposer) Result() (Result, bool) {
	if d.last == nil {
		return Result{}, false
	}
	r := *d.last
	r.Sparse = mat.DenseCopyOf(r.Sparse)
	r.LowRank = mat.DenseCopyOf(r.LowRank)
	r.History = append([]float64(nil), r.History...)
	return r, true
}
