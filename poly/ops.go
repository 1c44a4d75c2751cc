// SPDX-License-Identifier: MIT
// Package: poly
//
// Purpose:
//   - Arithmetic that always returns a NEW polynomial; operands are never mutated.
//   - Add/Sub share one zero-extension kernel (combine) followed by normalize.
//
// Determinism & Performance:
//   - Fixed ascending loop order; Mul is the plain O(n·m) convolution.
//
// Results inherit the receiver's policy.

package poly

// Neg returns -p. The empty polynomial negates to the empty polynomial.
// Complexity: O(d).
func (p *Poly) Neg() *Poly {
	out := &Poly{policy: p.options()}
	if p.IsEmpty() {
		return out
	}
	out.coef = make([]float64, len(p.coef))
	for i, c := range p.coef {
		out.coef[i] = -c
	}

	return out
}

// Add returns p + q.
//
// Implementation:
//   - Stage 1: allocate max(deg p, deg q)+1 slots.
//   - Stage 2: out[i] = p.Coef(i) + q.Coef(i); Coef zero-extends, so an empty
//     operand contributes nothing and two empty operands give empty.
//   - Stage 3: normalize trailing zero leading terms down to degree 0.
//
// Example: (x+1) + (-x-1) == [0] (the zero polynomial, not degree 1).
//
// Complexity: O(max(n, m)).
func (p *Poly) Add(q *Poly) *Poly {
	return p.combine(q, 1)
}

// Sub returns p - q, a true coefficient-wise difference with the same
// zero-extension and normalization rules as Add. p.Sub(p) is [0] for any
// non-empty p; empty minus q is -q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.combine(q, -1)
}

// combine computes p + sign·q followed by normalize.
func (p *Poly) combine(q *Poly, sign float64) *Poly {
	out := &Poly{policy: p.options()}
	d := max(p.Degree(), q.Degree())
	if d < 0 {
		return out
	}
	out.coef = make([]float64, d+1)
	for i := 0; i <= d; i++ {
		out.coef[i] = p.Coef(i) + sign*q.Coef(i)
	}
	out.normalize()

	return out
}

// normalize drops leading coefficients that are exactly 0 while degree > 0.
// The kept prefix has its capacity clipped to its length.
func (p *Poly) normalize() {
	d := len(p.coef) - 1
	for d > 0 && p.coef[d] == 0 {
		d--
	}
	p.coef = p.coef[: d+1 : d+1]
}

// Mul returns p · q.
//
// Behavior highlights:
//   - either operand empty ⇒ empty.
//   - either operand the zero polynomial [0] ⇒ [0] (not empty).
//   - otherwise degree = deg p + deg q and out[i+j] += p[i]·q[j] over all pairs.
//   - the result is NOT normalized: the leading slot is p[n]·q[m], which is
//     non-zero whenever both leading coefficients are.
//
// Complexity: O(n·m) time, O(n+m) space.
func (p *Poly) Mul(q *Poly) *Poly {
	out := &Poly{policy: p.options()}
	if p.IsEmpty() || q.IsEmpty() {
		return out
	}
	if p.IsZero() || q.IsZero() {
		out.coef = []float64{0}
		return out
	}
	out.coef = make([]float64, len(p.coef)+len(q.coef)-1)
	for i, a := range p.coef {
		for j, b := range q.coef {
			out.coef[i+j] += a * b
		}
	}

	return out
}
