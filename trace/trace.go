// Package trace provides the leveled iteration logger used by the vpca solvers.
//
// Solvers stay silent by default. Passing a *Logger through a solver option
// enables a one-line summary per fit (LevelSummary), per-iteration progress
// lines (LevelIter, every Every-th iteration) or full traces (LevelTrace).
//
// A nil *Logger is valid and disables all output, so call sites never need
// to guard against it.
//
// Writers must be safe for the caller's use; a single Logger may be shared
// by several solver instances only if its Out is goroutine-safe.
package trace

import (
	"fmt"
	"io"
	"os"
)

// Level controls the amount of logger output.
type Level int

const (
	// LevelNone produces no output.
	LevelNone Level = -1
	// LevelSummary prints one line when a fit finishes.
	LevelSummary Level = 0
	// LevelIter also prints progress every Every iterations.
	LevelIter Level = 1
	// LevelTrace prints every iteration, including internal scalars.
	LevelTrace Level = 99
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelSummary:
		return "summary"
	case LevelIter:
		return "iter"
	case LevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Logger handles logging output for the solvers.
type Logger struct {
	Level Level     // verbosity threshold
	Every int       // stride for LevelIter lines; <=1 means every iteration
	Out   io.Writer // destination; os.Stderr when nil
}

// New returns a Logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{Level: level, Out: w}
}

// Enabled reports whether messages at level should be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.Level >= level
}

// Iter reports whether iteration iter (1-based) should be logged at LevelIter.
func (l *Logger) Iter(iter int) bool {
	if !l.Enabled(LevelIter) {
		return false
	}
	if l.Level >= LevelTrace || l.Every <= 1 {
		return true
	}
	return iter%l.Every == 0
}

// Printf writes a formatted message when the logger is enabled at level.
func (l *Logger) Printf(level Level, format string, a ...any) {
	if !l.Enabled(level) {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, format, a...)
}
