package fista

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadState indicates a State that cannot drive the iteration:
// non-finite scalars, T1 <= 0 or a negative Lambda.
var ErrBadState = errors.New("fista: invalid solver state")

// State is the part of the schedule that evolves across iterations and is
// carried from one fit to the next on the same Solver.
//
// Fields:
//   - T0, T1: previous/current momentum scalars of the recurrence
//     t ← (1 + sqrt(1 + 4t²)) / 2.
//   - Lambda: current penalty weight; non-increasing, bounded below by the
//     configured floor.
type State struct {
	T0, T1 float64
	Lambda float64
}

// Validate reports ErrBadState for states the solver must not start from.
func (s State) Validate() error {
	if !finite(s.T0) || !finite(s.T1) || !finite(s.Lambda) {
		return fmt.Errorf("Validate: non-finite scalar: %w", ErrBadState)
	}
	if s.T1 <= 0 {
		return fmt.Errorf("Validate: T1=%g: %w", s.T1, ErrBadState)
	}
	if s.Lambda < 0 {
		return fmt.Errorf("Validate: Lambda=%g: %w", s.Lambda, ErrBadState)
	}
	return nil
}

// nextMomentum advances the momentum recurrence one step.
func nextMomentum(t float64) float64 {
	return 0.5 * (1 + math.Sqrt(1+4*t*t))
}
