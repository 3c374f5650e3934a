// Package render draws a dataset histogram overlaid with class breaks.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/classbreaks/breaks"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("render: no values")

// Options controls the chart.
type Options struct {
	Title  string
	Bins   int
	Width  vg.Length
	Height vg.Length
	Format string // png, svg, pdf…
}

// DefaultOptions returns a 10×5 inch PNG with 20 bins.
func DefaultOptions() Options {
	return Options{
		Bins:   20,
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
		Format: "png",
	}
}

// Histogram writes a histogram of values with a vertical line at each break.
func Histogram(w io.Writer, values []float64, b breaks.Breaks[float64], opts Options) error {
	if len(values) == 0 {
		return ErrNoData
	}
	if opts.Bins < 1 {
		opts.Bins = DefaultOptions().Bins
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), opts.Bins)
	if err != nil {
		return fmt.Errorf("render: histogram: %w", err)
	}
	p.Add(h)

	top := 0.0
	for _, bin := range h.Bins {
		top = max(top, bin.Weight)
	}
	for _, x := range b {
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
		if err != nil {
			return fmt.Errorf("render: break line at %v: %w", x, err)
		}
		line.Color = color.RGBA{R: 200, A: 255}
		line.Width = vg.Points(1)
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", opts.Format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}
