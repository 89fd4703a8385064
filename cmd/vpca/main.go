// Command vpca runs the vpca solvers on synthetic data or on one trial of a
// saved dataset and prints a short report.
//
// Modes:
//
//	-mode rpca: split the input into sparse + low-rank parts; with -k > 0 the
//	            low-rank part is then reduced with PCA
//	-mode fista: recover a sparse vector from b = A·x (synthetic input only)
//	-mode pca:  plain PCA of the input
//
// Input:
//
//	-data file.gob -trial i  use trial i of a dataset written by package dataset
//	otherwise                 -m, -n, -rank, -density, -seed build a corrupted
//	                          low-rank matrix (rpca, pca) or an m×n orthonormal
//	                          design with a sparse signal (fista)
//
// Output:
//
//	-v level     solver log level (-1 none, 0 summary, 1 iterations, 2 trace)
//	-every k     log every k-th iteration at level 1
//	-plot f.png  render the per-iteration history with gonum/plot
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
)

// options holds the parsed command line.
type options struct {
	mode string

	data  string
	trial int

	m, n    int
	rank    int
	density float64
	seed    int64

	t       float64
	maxIter int
	tol     float64
	k       int

	verbose int
	every   int
	plot    string
}

func main() {
	var o options
	flag.StringVar(&o.mode, "mode", "rpca", "rpca | fista | pca")
	flag.StringVar(&o.data, "data", "", "gob dataset to read instead of synthetic input")
	flag.IntVar(&o.trial, "trial", 0, "trial index within -data")
	flag.IntVar(&o.m, "m", 50, "rows of the synthetic input")
	flag.IntVar(&o.n, "n", 40, "columns of the synthetic input")
	flag.IntVar(&o.rank, "rank", 2, "rank of the synthetic low-rank part")
	flag.Float64Var(&o.density, "density", 0.05, "fraction of corrupted entries (fista: of non-zero coefficients)")
	flag.Int64Var(&o.seed, "seed", 1, "random seed for synthetic input")
	flag.Float64Var(&o.t, "t", 0.5, "rpca trade-off in (0, 1)")
	flag.IntVar(&o.maxIter, "iter", 0, "iteration budget (0 = solver default)")
	flag.Float64Var(&o.tol, "tol", -1, "stopping tolerance (<0 = solver default, 0 = disabled)")
	flag.IntVar(&o.k, "k", 0, "PCA components (rpca: reduce B; pca: default 2)")
	flag.IntVar(&o.verbose, "v", 0, "log level: -1 none, 0 summary, 1 iterations, 2 trace")
	flag.IntVar(&o.every, "every", 10, "iteration stride at -v 1")
	flag.StringVar(&o.plot, "plot", "", "write the convergence history to this PNG/SVG/PDF file")
	flag.Parse()

	if err := run(o, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("vpca: %v", err)
	}
}

// validate rejects flag values the solver options would panic on.
func (o options) validate() error {
	switch {
	case !(o.t > 0 && o.t < 1):
		return fmt.Errorf("-t %v not in (0, 1)", o.t)
	case !(o.density >= 0 && o.density <= 1):
		return fmt.Errorf("-density %v not in [0, 1]", o.density)
	case math.IsNaN(o.tol) || math.IsInf(o.tol, 0):
		return fmt.Errorf("-tol %v is not finite", o.tol)
	case o.maxIter < 0:
		return fmt.Errorf("-iter %d is negative", o.maxIter)
	}
	return nil
}

// run dispatches on the mode; the report goes to out and solver logs to logw.
func run(o options, out, logw io.Writer) error {
	if err := o.validate(); err != nil {
		return err
	}
	switch o.mode {
	case "rpca":
		return runRPCA(o, out, logw)
	case "fista":
		return runFISTA(o, out, logw)
	case "pca":
		return runPCA(o, out)
	default:
		return fmt.Errorf("unknown -mode %q", o.mode)
	}
}
