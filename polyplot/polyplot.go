// SPDX-License-Identifier: MIT

package polyplot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvpoly/poly"
)

var (
	// ErrNoPolynomials indicates that nothing was passed to draw.
	ErrNoPolynomials = errors.New("polyplot: no polynomials to plot")

	// ErrEmptyPolynomial indicates an empty polynomial (degree -1) among the inputs.
	ErrEmptyPolynomial = errors.New("polyplot: cannot plot the empty polynomial")

	// ErrBadRange indicates XMin >= XMax or a non-finite bound.
	ErrBadRange = errors.New("polyplot: invalid x range")

	// ErrBadSamples indicates fewer than two samples per curve.
	ErrBadSamples = errors.New("polyplot: samples must be >= 2")

	// ErrNonFinite indicates a curve overflowed to ±Inf or NaN inside the range.
	ErrNonFinite = errors.New("polyplot: curve is not finite on the range")
)

// Options configures a chart.
//
// Fields:
//   - Title         : chart title, empty for none.
//   - XMin, XMax    : sampled interval, XMin < XMax.
//   - Samples       : points per curve, ≥ 2.
//   - Width, Height : canvas size.
//   - Labels        : optional legend labels by position; missing or empty
//     entries fall back to the polynomial's String form.
type Options struct {
	Title         string
	XMin, XMax    float64
	Samples       int
	Width, Height vg.Length
	Labels        []string
}

// DefaultOptions returns a 6×4 inch chart over [-10, 10] with 200 samples.
func DefaultOptions() Options {
	return Options{
		XMin:    -10,
		XMax:    10,
		Samples: 200,
		Width:   6 * vg.Inch,
		Height:  4 * vg.Inch,
	}
}

// validate checks opts and the inputs, in that order.
func (o Options) validate(polys []*poly.Poly) error {
	if math.IsNaN(o.XMin) || math.IsNaN(o.XMax) || math.IsInf(o.XMin, 0) || math.IsInf(o.XMax, 0) || o.XMin >= o.XMax {
		return ErrBadRange
	}
	if o.Samples < 2 {
		return ErrBadSamples
	}
	if len(polys) == 0 {
		return ErrNoPolynomials
	}
	for _, p := range polys {
		if p.IsEmpty() {
			return ErrEmptyPolynomial
		}
	}

	return nil
}

// label picks the legend text for the i-th curve.
func (o Options) label(i int, p *poly.Poly) string {
	if i < len(o.Labels) && o.Labels[i] != "" {
		return o.Labels[i]
	}

	return "p(x) = " + p.String()
}

// New builds a chart with one curve per polynomial.
//
// Implementation:
//   - Stage 1: validate options and inputs.
//   - Stage 2: sample every curve on an even grid to find the Y span.
//   - Stage 3: add a plotter.Function per curve plus a grid and legend.
func New(opts Options, polys ...*poly.Poly) (*plot.Plot, error) {
	if err := opts.validate(polys); err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, opts.Samples), opts.XMin, opts.XMax)
	ys := make([]float64, len(xs))
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range polys {
		for i, x := range xs {
			ys[i] = p.Eval(x)
		}
		if floats.HasNaN(ys) {
			return nil, ErrNonFinite
		}
		lo, hi := floats.Min(ys), floats.Max(ys)
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, ErrNonFinite
		}
		yMin, yMax = math.Min(yMin, lo), math.Max(yMax, hi)
	}
	if yMin == yMax {
		yMin, yMax = yMin-1, yMax+1 // constant curve: give it a visible band
	}

	plt := plot.New()
	plt.Title.Text = opts.Title
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "p(x)"
	plt.X.Min, plt.X.Max = opts.XMin, opts.XMax
	plt.Y.Min, plt.Y.Max = yMin, yMax
	plt.Add(plotter.NewGrid())

	for i, p := range polys {
		fn := plotter.NewFunction(p.Func())
		fn.XMin, fn.XMax = opts.XMin, opts.XMax
		fn.Samples = opts.Samples
		fn.Color = plotutil.Color(i)
		fn.Width = vg.Points(1.5)
		plt.Add(fn)
		plt.Legend.Add(opts.label(i, p), fn)
	}
	plt.Legend.Top = true

	return plt, nil
}

// Save renders the chart to path; the extension selects the format.
func Save(path string, opts Options, polys ...*poly.Poly) error {
	plt, err := New(opts, polys...)
	if err != nil {
		return err
	}
	if err := plt.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("polyplot: save %s: %w", path, err)
	}

	return nil
}

// Render writes the chart to w in the given format ("png", "svg", "pdf", ...).
func Render(w io.Writer, format string, opts Options, polys ...*poly.Poly) error {
	plt, err := New(opts, polys...)
	if err != nil {
		return err
	}
	wt, err := plt.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("polyplot: render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("polyplot: render %s: %w", format, err)
	}

	return nil
}
