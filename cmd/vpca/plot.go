package main

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var errEmptyHistory = errors.New("no iterations to plot")

// savePlot renders a per-iteration history as a line chart. The y axis is
// logarithmic when every value is positive. The file format follows the
// extension of path (png, svg, pdf, ...).
func savePlot(path, title, ylabel string, history []float64) error {
	if len(history) == 0 {
		return errEmptyHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = ylabel

	pts := make(plotter.XYs, len(history))
	positive := true
	for i, v := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
		positive = positive && v > 0
	}
	if positive {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := plotutil.AddLines(p, ylabel, pts); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
