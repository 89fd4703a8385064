// SPDX-License-Identifier: MIT
// Package: vpca/fista
//
// options.go — functional options for the FISTA solver.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error). FitTransform itself never panics on user data.
//   • Defaults live in the Default* constants below (single source of truth).

package fista

import (
	"math"

	"github.com/katalvlaran/vpca/trace"
)

// Defaults.
const (
	// DefaultT0 is the initial "previous" momentum scalar.
	DefaultT0 = 1.0

	// DefaultT1 is the initial "current" momentum scalar.
	DefaultT1 = 1.0

	// DefaultLambda is the initial penalty weight λ (also the gradient step).
	DefaultLambda = 0.01

	// DefaultLambdaBar is the floor λ̄ the penalty anneals toward.
	DefaultLambdaBar = 0.001

	// DefaultBeta is the per-iteration decay multiplier applied to λ.
	DefaultBeta = 0.5

	// DefaultMaxIter is the iteration budget.
	DefaultMaxIter = 100

	// DefaultTol is the relative-change threshold for early stopping. It is
	// consulted only after λ has stopped changing (reached λ̄, or β = 1).
	DefaultTol = 1e-3
)

const (
	panicMomentumInvalid  = "fista: WithMomentum: t0, t1 must be finite and t1 > 0"
	panicLambdaInvalid    = "fista: WithLambda: lambda must be finite, non-negative"
	panicLambdaBarInvalid = "fista: WithLambdaBar: floor must be finite, non-negative"
	panicBetaInvalid      = "fista: WithBeta: beta must be in (0, 1]"
	panicMaxIterInvalid   = "fista: WithMaxIter: n must be > 0"
	panicTolInvalid       = "fista: WithTol: tol must be finite"
)

// Option customizes a Solver at construction time.
type Option func(*config)

// config is the resolved solver configuration.
type config struct {
	t0, t1    float64
	lambda    float64
	lambdaBar float64
	beta      float64
	maxIter   int
	tol       float64
	logger    *trace.Logger
}

// newConfig applies opts over the documented defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		t0:        DefaultT0,
		t1:        DefaultT1,
		lambda:    DefaultLambda,
		lambdaBar: DefaultLambdaBar,
		beta:      DefaultBeta,
		maxIter:   DefaultMaxIter,
		tol:       DefaultTol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// initialState is the schedule a fresh (or Reset) Solver starts from.
func (c config) initialState() State {
	return State{T0: c.t0, T1: c.t1, Lambda: c.lambda}
}

// WithMomentum sets the initial momentum-recurrence scalars (t0, t1).
// Panics unless both are finite and t1 > 0 (t1 divides the extrapolation weight).
func WithMomentum(t0, t1 float64) Option {
	if !finite(t0) || !finite(t1) || t1 <= 0 {
		panic(panicMomentumInvalid)
	}
	return func(c *config) { c.t0, c.t1 = t0, t1 }
}

// WithLambda sets the initial penalty weight λ ≥ 0.
func WithLambda(lambda float64) Option {
	if !finite(lambda) || lambda < 0 {
		panic(panicLambdaInvalid)
	}
	return func(c *config) { c.lambda = lambda }
}

// WithLambdaBar sets the penalty floor λ̄ ≥ 0.
func WithLambdaBar(floor float64) Option {
	if !finite(floor) || floor < 0 {
		panic(panicLambdaBarInvalid)
	}
	return func(c *config) { c.lambdaBar = floor }
}

// WithBeta sets the decay multiplier β ∈ (0, 1]. β = 1 keeps λ constant.
func WithBeta(beta float64) Option {
	if !finite(beta) || beta <= 0 || beta > 1 {
		panic(panicBetaInvalid)
	}
	return func(c *config) { c.beta = beta }
}

// WithMaxIter sets the iteration budget.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(c *config) { c.maxIter = n }
}

// WithTol sets the early-stop threshold on ‖x_k − x_{k−1}‖ / ‖x_k‖.
// The check applies only once λ has settled; before that the annealing always
// runs. tol <= 0 disables early stopping; the solver then always runs MaxIter
// iterations.
func WithTol(tol float64) Option {
	if !finite(tol) {
		panic(panicTolInvalid)
	}
	return func(c *config) { c.tol = tol }
}

// WithLogger attaches a progress logger. nil keeps the solver silent.
func WithLogger(l *trace.Logger) Option {
	return func(c *config) { c.logger = l }
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
