// SPDX-License-Identifier: MIT

// Package poly: read-side accessors, guarded writes, evaluation & comparison.
//
// Read accessors accept a nil *Poly and treat it as the empty polynomial,
// so arithmetic on optional operands never needs a nil check upstream.

package poly

import (
	"gonum.org/v1/gonum/floats"
)

const (
	ctxSetCoef = "SetCoef" // method tag used in error wrappers
)

// Degree returns the highest exponent with a coefficient slot, or -1 if empty.
// Complexity: O(1).
func (p *Poly) Degree() int {
	if p == nil {
		return -1
	}

	return len(p.coef) - 1
}

// IsEmpty reports whether p is the empty polynomial (no storage at all).
func (p *Poly) IsEmpty() bool { return p.Degree() < 0 }

// IsZero reports whether p is exactly the zero polynomial [0].
// It is false for the empty polynomial and for any higher-degree value,
// even one whose coefficients are all zero; IsZero never renormalizes.
func (p *Poly) IsZero() bool {
	return p.Degree() == 0 && p.coef[0] == 0
}

// Coef returns the coefficient of x^i. Indices outside [0, Degree()] read
// as 0, so every polynomial behaves as if zero-extended to infinity.
// Complexity: O(1).
func (p *Poly) Coef(i int) float64 {
	if i < 0 || i > p.Degree() {
		return 0
	}

	return p.coef[i]
}

// Coefficients returns a copy of the coefficients in ascending exponent order,
// or nil for the empty polynomial.
func (p *Poly) Coefficients() []float64 {
	if p.IsEmpty() {
		return nil
	}

	return append([]float64(nil), p.coef...)
}

// SetCoef writes v into the coefficient of x^i.
//
// Errors (p is left unchanged):
//   - ErrOutOfRange when i is outside [0, Degree()].
//   - ErrZeroLeading when the strict policy is on, Degree() > 0, i is the
//     leading index and v == 0.
//
// Complexity: O(1).
func (p *Poly) SetCoef(i int, v float64) error {
	d := p.Degree()
	if i < 0 || i > d {
		return polyErrorf(ctxSetCoef, ErrOutOfRange)
	}
	if i == d && d > 0 && v == 0 && p.options().strictLeading {
		return polyErrorf(ctxSetCoef, ErrZeroLeading)
	}
	p.coef[i] = v

	return nil
}

// Eval returns p(x). The empty polynomial evaluates to 0.
//
// Implementation:
//   - Ascending pass accumulating x^i by repeated multiplication
//     (pow starts at 1 and is multiplied by x after each term).
//     This is not Horner's scheme and not math.Pow; rounding for high
//     degrees follows the accumulated power.
//
// Complexity: O(d).
func (p *Poly) Eval(x float64) float64 {
	if p.IsEmpty() {
		return 0
	}
	sum, pow := 0.0, 1.0
	for _, c := range p.coef {
		sum += c * pow
		pow *= x
	}

	return sum
}

// Func returns p as a plain function of x, backed by a snapshot of the
// current coefficients. Later mutations of p do not affect it.
func (p *Poly) Func() func(x float64) float64 {
	snap := p.Clone()

	return snap.Eval
}

// Equal reports whether p and q have the same degree and bitwise-equal
// (==) coefficients. No tolerance is applied; two empty polynomials are equal,
// while the empty and the zero polynomial are not. Policies are ignored.
// Complexity: O(d).
func (p *Poly) Equal(q *Poly) bool {
	if p.Degree() != q.Degree() {
		return false
	}
	for i := 0; i <= p.Degree(); i++ {
		if p.coef[i] != q.coef[i] {
			return false
		}
	}

	return true
}

// EqualApprox is Equal with a tolerance: degrees must match exactly and each
// coefficient pair must agree within tol, absolutely or relatively.
func (p *Poly) EqualApprox(q *Poly, tol float64) bool {
	if p.Degree() != q.Degree() {
		return false
	}
	if p.IsEmpty() {
		return true
	}

	return floats.EqualApprox(p.coef, q.coef, tol)
}
