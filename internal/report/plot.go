// Package report renders the solver comparison chart.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one solver's timing curve.
type Series struct {
	Label string
	Times []float64 // seconds, aligned with the element counts
}

// Comparison renders the timing series on log-log axes against the
// requested element counts and writes the chart to path. The x axis is the
// target element count, not the derived mesh size.
func Comparison(elements []float64, series []Series, path string) error {
	for _, s := range series {
		if len(s.Times) != len(elements) {
			return fmt.Errorf("series %q has %d points, want %d", s.Label, len(s.Times), len(elements))
		}
	}

	p := plot.New()
	p.X.Label.Text = "Number of Elements"
	p.Y.Label.Text = "Time [s]"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter

	// Brewer qualitative palettes start at three colors.
	paletteSize := len(series)
	if paletteSize < 3 {
		paletteSize = 3
	}
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", paletteSize)
	if err != nil {
		return err
	}
	colors := palette.Colors()

	plotted := 0
	for i, s := range series {
		// The wrapper reports 0.00user for sub-resolution runs; log axes
		// cannot place those, so non-positive points are masked and the
		// rest of the curve still renders.
		xys := make(plotter.XYs, 0, len(elements))
		for j := range elements {
			if elements[j] <= 0 || s.Times[j] <= 0 {
				slog.Warn("dropping non-positive point from log-log chart",
					"series", s.Label, "elements", elements[j], "seconds", s.Times[j])
				continue
			}
			xys = append(xys, plotter.XY{X: elements[j], Y: s.Times[j]})
		}
		plotted += len(xys)

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		points.Color = colors[i]

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	if plotted == 0 {
		return fmt.Errorf("no positive measurements to plot")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
