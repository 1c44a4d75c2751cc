// Package polyplot draws polynomial curves with gonum/plot.
//
// One chart holds one curve per polynomial, each with its own colour and a
// legend entry (the polynomial's String form unless Options.Labels says
// otherwise). The Y range is computed from the sampled values so the curve
// always fits the frame.
//
//	opts := polyplot.DefaultOptions()
//	opts.XMin, opts.XMax = -3, 3
//	err := polyplot.Save("curve.png", opts, p, q)
//
// The output format follows the file extension (png, svg, pdf, eps, jpg, tif).
package polyplot
