// SPDX-License-Identifier: MIT

// Package poly: functional configuration for the coefficient policy.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - A resolved *Options is immutable once attached to a Poly, so clones and
//     arithmetic results share the same pointer safely.
//   - A Poly with no attached Options behaves as if built with the defaults;
//     this keeps the zero value Poly{} usable.
package poly

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLeadingFill is written into index d by New(d) for d > 0.
	// 1.0 produces a monic x^d; use WithZeroFill for an all-zero buffer.
	// The degree-0 polynomial is always filled with 0.0 regardless.
	DefaultLeadingFill = 1.0

	// DefaultStrictLeading rejects states where a positive-degree polynomial
	// carries a leading coefficient of exactly 0.0: SetCoef refuses the write,
	// Decode refuses the data and Scan re-prompts.
	DefaultStrictLeading = true
)

const panicLeadingFillInvalid = "poly: WithLeadingFill: value must be finite"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective policy after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	leadingFill   float64 // DefaultLeadingFill
	strictLeading bool    // DefaultStrictLeading
}

// defaultPolicy is shared by every Poly that was built without options.
var defaultPolicy = &Options{
	leadingFill:   DefaultLeadingFill,
	strictLeading: DefaultStrictLeading,
}

// WithLeadingFill sets the value New writes into the leading slot of a
// positive-degree polynomial.
//
// Panics when v is NaN or ±Inf.
func WithLeadingFill(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicLeadingFillInvalid)
	}

	return func(o *Options) { o.leadingFill = v }
}

// WithZeroFill makes New allocate an all-zero coefficient buffer.
func WithZeroFill() Option {
	return func(o *Options) { o.leadingFill = 0 }
}

// WithStrictLeading enables the leading-coefficient guard. This is the default.
func WithStrictLeading() Option {
	return func(o *Options) { o.strictLeading = true }
}

// WithLenientLeading disables the leading-coefficient guard: SetCoef may zero
// the leading slot, Decode accepts a zero leading coefficient and Scan never
// re-prompts.
func WithLenientLeading() Option {
	return func(o *Options) { o.strictLeading = false }
}

// LeadingFill reports the configured leading fill value.
func (o *Options) LeadingFill() float64 { return o.leadingFill }

// StrictLeading reports whether the leading-coefficient guard is enabled.
func (o *Options) StrictLeading() bool { return o.strictLeading }

// gatherOptions resolves opts on top of the defaults. With no options the
// shared default policy is returned to avoid an allocation per polynomial.
func gatherOptions(opts ...Option) *Options {
	if len(opts) == 0 {
		return defaultPolicy
	}
	o := *defaultPolicy
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &o
}
