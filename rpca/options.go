// SPDX-License-Identifier: MIT
// Package: vpca/rpca
//
// options.go — functional options for the robust PCA decomposer.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • γ = t/(1 − t) is derived once, in newConfig.

package rpca

import (
	"math"

	"github.com/katalvlaran/vpca/trace"
)

// Defaults.
const (
	// DefaultTradeoff weighs the L1 term against the nuclear-norm term.
	DefaultTradeoff = 0.5

	// DefaultMaxIter is the iteration budget.
	DefaultMaxIter = 1000

	// DefaultTol is the residual threshold ‖C − A − B‖_F for early stopping.
	DefaultTol = 1e-6
)

const (
	panicTradeoffInvalid = "rpca: WithTradeoff: t must be in (0, 1)"
	panicMaxIterInvalid  = "rpca: WithMaxIter: n must be > 0"
	panicTolInvalid      = "rpca: WithTol: tol must be finite and non-negative"
)

// Option customizes a Decomposer at construction time.
type Option func(*config)

type config struct {
	t       float64
	gamma   float64
	maxIter int
	tol     float64
	logger  *trace.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		t:       DefaultTradeoff,
		maxIter: DefaultMaxIter,
		tol:     DefaultTol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.gamma = cfg.t / (1 - cfg.t)
	return cfg
}

// WithTradeoff sets t ∈ (0, 1). Larger t penalizes the sparse part harder,
// pushing more of C into the low-rank part.
func WithTradeoff(t float64) Option {
	if math.IsNaN(t) || t <= 0 || t >= 1 {
		panic(panicTradeoffInvalid)
	}
	return func(c *config) { c.t = t }
}

// WithMaxIter sets the iteration budget.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(c *config) { c.maxIter = n }
}

// WithTol sets the residual threshold. 0 disables early stopping.
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}
	return func(c *config) { c.tol = tol }
}

// WithLogger attaches a progress logger. nil keeps the decomposer silent.
func WithLogger(l *trace.Logger) Option {
	return func(c *config) { c.logger = l }
}
