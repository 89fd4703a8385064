package fista

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vpca/matrix"
	"github.com/katalvlaran/vpca/trace"
)

const opFitTransform = "FitTransform"

// Solver computes sparse approximate solutions of A·x ≈ b.
//
// The configuration passed to New is immutable. The evolving schedule
// (momentum and penalty, see State) starts from that configuration and is
// carried over between FitTransform calls: a second call resumes the
// annealed penalty and momentum exactly where the first stopped. Use Reset
// to start over, Resume to continue from an explicit State, or
// FitTransformFrom to run without touching the carried state at all.
type Solver struct {
	cfg   config
	state State

	x         []float64
	iters     int
	change    float64
	converged bool
	history   []float64
}

// New builds a Solver from the given options (see Default* constants).
func New(opts ...Option) *Solver {
	cfg := newConfig(opts...)
	return &Solver{cfg: cfg, state: cfg.initialState()}
}

// result bundles everything one run of the iteration produces.
type result struct {
	x         []float64
	state     State
	iters     int
	change    float64
	converged bool
	history   []float64
}

// FitTransform solves for a sparse x with A·x ≈ b, continuing the schedule
// carried by the Solver, and returns x.
//
// On success the Solver retains x (Solution), the end-of-loop State, the
// number of iterations run and the per-iteration history. On error nothing
// on the Solver changes.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf for A or b.
//   - matrix.ErrDimensionMismatch when len(b) != rows(A).
func (s *Solver) FitTransform(A mat.Matrix, b []float64) ([]float64, error) {
	res, err := s.run(A, b, s.state)
	if err != nil {
		return nil, err
	}

	s.state = res.state
	s.x = res.x
	s.iters = res.iters
	s.change = res.change
	s.converged = res.converged
	s.history = res.history

	return floats.ScaleTo(make([]float64, len(res.x)), 1, res.x), nil
}

// FitTransformFrom runs the iteration from the explicit state st and returns
// the solution together with the end-of-loop state. The Solver's carried
// state and diagnostics are left untouched, so the same Solver may serve
// several independent sessions.
//
// Errors: as FitTransform, plus ErrBadState for an invalid st.
func (s *Solver) FitTransformFrom(A mat.Matrix, b []float64, st State) ([]float64, State, error) {
	if err := st.Validate(); err != nil {
		return nil, st, fmt.Errorf("%s: %w", "FitTransformFrom", err)
	}
	res, err := s.run(A, b, st)
	if err != nil {
		return nil, st, err
	}
	return res.x, res.state, nil
}

// run is the FISTA iteration.
//
// Algorithm outline (k = 1..MaxIter):
//  1. y = x0 + ((t0 − 1)/t1)·(x1 − x0)           (Nesterov extrapolation)
//  2. u = y − λ·Aᵀ(A·y − b)                        (gradient step, step size λ)
//  3. t0, t1 = t1, (1 + sqrt(1 + 4·t1²))/2        (momentum recurrence)
//  4. x0, x1 = x1, soft(u, λ)                      (proximal step)
//  5. λ = max(β·λ, λ̄)                              (annealing)
//  6. stop early when tol > 0, λ no longer moves and ‖x1 − x0‖/‖x1‖ < tol
//
// The tolerance is only consulted once the schedule has settled, so the
// carried λ always equals max(l·β^k, λ̄) for the iterations actually run and
// an early stop never leaves λ above its floor.
func (s *Solver) run(A mat.Matrix, b []float64, st State) (result, error) {
	if err := matrix.ValidateInput(A); err != nil {
		return result{}, fmt.Errorf("%s: %w", opFitTransform, err)
	}
	m, n := A.Dims()
	if err := matrix.ValidateVecLen(b, m); err != nil {
		return result{}, fmt.Errorf("%s: b: %w", opFitTransform, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return result{}, fmt.Errorf("%s: b: %w", opFitTransform, err)
	}

	var (
		cfg    = s.cfg
		log    = cfg.logger
		t0, t1 = st.T0, st.T1
		lambda = st.Lambda

		x0 = make([]float64, n) // previous iterate
		x1 = make([]float64, n) // current iterate
		y  = make([]float64, n) // look-ahead point
		u  = make([]float64, n) // gradient-step output

		bv   = mat.NewVecDense(m, b)
		yv   = mat.NewVecDense(n, y)
		resv = mat.NewVecDense(m, nil)
		grad = mat.NewVecDense(n, nil)

		res = result{history: make([]float64, 0, cfg.maxIter)}
	)

	for k := 1; k <= cfg.maxIter; k++ {
		// 1. Extrapolate from the two most recent iterates.
		w := (t0 - 1) / t1
		for i := range y {
			y[i] = x0[i] + w*(x1[i]-x0[i])
		}

		// 2. Gradient of (1/2)‖A·y − b‖² is Aᵀ(A·y − b).
		resv.MulVec(A, yv)
		resv.SubVec(resv, bv)
		grad.MulVec(A.T(), resv)
		floats.AddScaledTo(u, y, -lambda, grad.RawVector().Data)

		// 3. Momentum recurrence.
		t0, t1 = t1, nextMomentum(t1)

		// 4. Proximal step into the stale buffer.
		x0, x1 = x1, x0
		matrix.SoftThresholdVecTo(x1, u, lambda)

		// 5. Geometric decay toward the floor.
		prev := lambda
		lambda = max(cfg.beta*lambda, cfg.lambdaBar)

		change := relativeChange(x1, x0)
		res.history = append(res.history, change)
		res.iters = k
		res.change = change

		if log.Iter(k) {
			log.Printf(trace.LevelIter, "fista: iter %4d  lambda=%.3e  change=%.3e\n", k, lambda, change)
		}
		if log.Enabled(trace.LevelTrace) {
			log.Printf(trace.LevelTrace, "fista:   t0=%.6f t1=%.6f nnz=%d\n", t0, t1, countNonZero(x1))
		}

		// 6. Optional early stop, only on a settled penalty.
		if cfg.tol > 0 && lambda == prev && change < cfg.tol {
			res.converged = true
			break
		}
	}

	res.x = x1
	res.state = State{T0: t0, T1: t1, Lambda: lambda}
	log.Printf(trace.LevelSummary, "fista: done iter=%d lambda=%.3e change=%.3e converged=%t\n",
		res.iters, lambda, res.change, res.converged)

	return res, nil
}

// State returns the schedule the next FitTransform will start from.
func (s *Solver) State() State { return s.state }

// Resume replaces the carried schedule with st.
//
// Errors: ErrBadState if st is invalid (the carried state is then unchanged).
func (s *Solver) Resume(st State) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("Resume: %w", err)
	}
	s.state = st
	return nil
}

// Reset restores the configured initial schedule and forgets the last fit.
func (s *Solver) Reset() {
	s.state = s.cfg.initialState()
	s.x = nil
	s.iters = 0
	s.change = 0
	s.converged = false
	s.history = nil
}

// Solution returns a copy of the last FitTransform result (nil before any fit).
func (s *Solver) Solution() []float64 {
	if s.x == nil {
		return nil
	}
	return append([]float64(nil), s.x...)
}

// Iterations returns the number of iterations the last FitTransform ran.
func (s *Solver) Iterations() int { return s.iters }

// Change returns the final relative change ‖x_k − x_{k−1}‖/‖x_k‖.
func (s *Solver) Change() float64 { return s.change }

// Converged reports whether the last FitTransform stopped on the tolerance.
func (s *Solver) Converged() bool { return s.converged }

// History returns a copy of the per-iteration relative changes of the last fit.
func (s *Solver) History() []float64 {
	return append([]float64(nil), s.history...)
}

// relativeChange returns ‖cur − prev‖/‖cur‖, or the absolute change when cur is zero.
func relativeChange(cur, prev []float64) float64 {
	d := floats.Distance(cur, prev, 2)
	if nrm := floats.Norm(cur, 2); nrm > 0 {
		return d / nrm
	}
	return d
}

func countNonZero(x []float64) int {
	n := 0
	for _, v := range x {
		if v != 0 {
			n++
		}
	}
	return n
}
