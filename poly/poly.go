// SPDX-License-Identifier: MIT

// Package poly - Poly storage & lifecycle.
//
// Purpose:
//   - Own a contiguous coefficient buffer in ascending exponent order (index i ↔ x^i).
//   - Represent the empty polynomial as a nil buffer; degree is always len(coef)-1.
//   - Provide explicit copy (Clone/Assign) and destructive move (Take/MoveFrom),
//     since a plain struct copy would alias the buffer.
//
// Complexity quicksheet:
//   - NewEmpty: O(1); New: O(d); Clone/Assign: O(d); Take/MoveFrom: O(1).

package poly

// Poly is a dense univariate polynomial with float64 coefficients.
//   - coef is nil for the empty polynomial (Degree() == -1).
//   - otherwise len(coef) == Degree()+1 and coef[i] multiplies x^i.
//   - policy is shared and never mutated; nil means defaultPolicy.
//
// A Poly is not internally synchronized. Distinct instances may be used from
// different goroutines; concurrent mutation of one instance must be
// serialized by the caller.
type Poly struct {
	coef   []float64 // exclusively owned; never aliased by another Poly
	policy *Options  // immutable coefficient policy
}

// NewEmpty returns the empty polynomial (degree -1, no storage).
// Complexity: O(1).
func NewEmpty(opts ...Option) *Poly {
	return &Poly{policy: gatherOptions(opts...)}
}

// New allocates a polynomial of the given degree.
//
// Behavior highlights:
//   - degree < 0 yields the empty polynomial; it is never an error.
//   - degree == 0 yields the zero polynomial [0].
//   - degree > 0 yields zeros with the configured leading fill at index
//     degree (DefaultLeadingFill, i.e. x^degree).
//
// Complexity: O(degree).
func New(degree int, opts ...Option) *Poly {
	p := &Poly{policy: gatherOptions(opts...)}
	p.coef = allocate(degree, p.options().leadingFill)

	return p
}

// FromCoefficients builds a polynomial from coefficients given in ascending
// exponent order (c[0] is the constant term). The slice is copied verbatim,
// without normalization; an empty argument list yields the empty polynomial.
//
// Example:
//
//	p := FromCoefficients(1, 3, 2) // 2x^2+3x+1
func FromCoefficients(c ...float64) *Poly {
	p := &Poly{policy: defaultPolicy}
	if len(c) > 0 {
		p.coef = append(make([]float64, 0, len(c)), c...)
	}

	return p
}

// allocate builds the buffer for New/Recreate.
func allocate(degree int, leadingFill float64) []float64 {
	if degree < 0 {
		return nil
	}
	buf := make([]float64, degree+1) // make zero-fills
	if degree > 0 {
		buf[degree] = leadingFill
	}

	return buf
}

// options returns the effective policy, tolerating nil receivers and zero values.
func (p *Poly) options() *Options {
	if p == nil || p.policy == nil {
		return defaultPolicy
	}

	return p.policy
}

// Options returns the policy attached to p. The result must not be modified.
func (p *Poly) Options() *Options { return p.options() }

// Clone returns a deep copy with an independent buffer and the same policy.
// Cloning a nil *Poly yields an empty polynomial.
// Complexity: O(d).
func (p *Poly) Clone() *Poly {
	out := &Poly{policy: p.options()}
	if p != nil && p.coef != nil {
		out.coef = append(make([]float64, 0, len(p.coef)), p.coef...)
	}

	return out
}

// Take moves p's contents into a new Poly and leaves p empty.
// No coefficients are copied; p keeps its policy and may be reused.
// Complexity: O(1).
func (p *Poly) Take() *Poly {
	out := &Poly{coef: p.coef, policy: p.options()}
	p.coef = nil

	return out
}

// Assign replaces p's contents with a copy of src (copy assignment).
// The previous buffer is released first; src == p is a no-op.
// The policy of p is kept.
func (p *Poly) Assign(src *Poly) {
	if p == src {
		return
	}
	p.coef = nil
	if src != nil && src.coef != nil {
		p.coef = append(make([]float64, 0, len(src.coef)), src.coef...)
	}
}

// MoveFrom adopts src's buffer (move assignment) and leaves src empty.
// src == p is a no-op. The policy of p is kept.
func (p *Poly) MoveFrom(src *Poly) {
	if p == src {
		return
	}
	p.coef = nil
	if src == nil {
		return
	}
	p.coef, src.coef = src.coef, nil
}

// Recreate discards the current coefficients and reallocates p exactly as
// New(degree) would under p's policy.
func (p *Poly) Recreate(degree int) {
	p.coef = allocate(degree, p.options().leadingFill)
}
