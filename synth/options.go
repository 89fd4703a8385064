// SPDX-License-Identifier: MIT
// Package: vpca/synth
//
// options.go — functional options for the synth generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand;
//     without either, the fixed defaultSeed stream is used.

package synth

import (
	"math"
	"math/rand"
)

// Defaults.
const (
	// DefaultDensity is the probability that an entry of a sparse matrix is non-zero.
	DefaultDensity = 0.05

	// DefaultMagnitude is the absolute value of every non-zero sparse entry.
	DefaultMagnitude = 5.0

	// DefaultSingular is the singular value used for every low-rank component
	// when WithSingular is not supplied.
	DefaultSingular = 10.0
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	density   float64
	magnitude float64
	singular  []float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		density:   DefaultDensity,
		magnitude: DefaultMagnitude,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// singularAt returns σ_k: the k-th supplied value, the last supplied value
// for k beyond the list, or DefaultSingular.
func (c config) singularAt(k int) float64 {
	if len(c.singular) == 0 {
		return DefaultSingular
	}
	if k < len(c.singular) {
		return c.singular[k]
	}
	return c.singular[len(c.singular)-1]
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
// Successive generator calls sharing one RNG draw independent matrices.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithDensity sets the non-zero probability p ∈ [0, 1] for Sparse.
func WithDensity(p float64) Option {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic("synth: WithDensity(p not in [0,1])")
	}
	return func(c *config) { c.density = p }
}

// WithMagnitude sets |v| > 0 of every non-zero sparse entry.
func WithMagnitude(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic("synth: WithMagnitude(v<=0)")
	}
	return func(c *config) { c.magnitude = v }
}

// WithSingular sets the singular values σ_1, σ_2, ... of low-rank parts.
// Panics on an empty list or any non-positive / non-finite value.
func WithSingular(values ...float64) Option {
	if len(values) == 0 {
		panic("synth: WithSingular()")
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			panic("synth: WithSingular(v<=0)")
		}
	}
	vs := append([]float64(nil), values...)
	return func(c *config) { c.singular = vs }
}
