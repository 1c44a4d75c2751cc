// Package poly implements Poly, a dense univariate polynomial with float64
// coefficients and strict value semantics.
//
// 🚀 What is a Poly?
//
//	A Poly owns one coefficient buffer in ascending exponent order:
//	  Coef(0) + Coef(1)·x + … + Coef(d)·x^d,  d = Degree()
//
//	Two distinguished values exist and are never confused:
//	  • the EMPTY polynomial: Degree() == -1, no storage at all;
//	  • the ZERO polynomial:  Degree() == 0, coefficients [0].
//
// ✨ Key features:
//   - construction by degree (New), from literals (FromCoefficients) or empty (NewEmpty)
//   - explicit deep copy (Clone, Assign) and destructive move (Take, MoveFrom)
//   - zero-extended reads: Coef(i) is 0 for any i outside [0, Degree()]
//   - guarded writes: SetCoef rejects bad indices and, under the strict
//     policy, zeroing the leading coefficient of a positive-degree value
//   - arithmetic (Neg, Add, Sub, Mul) returning fresh values; Add/Sub
//     normalize leading zeros away, Mul is a plain convolution
//   - exact Equal and tolerant EqualApprox
//   - text persistence (Encode/Decode, Save/Load, encoding.TextMarshaler)
//     and interactive coefficient entry (Scan)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpoly/poly"
//
//	p := poly.FromCoefficients(1, 3, 2)    // 2x^2+3x+1
//	q := poly.FromCoefficients(-1, 1)      // x-1
//	fmt.Println(p.Mul(q), p.Eval(2))       // 2x^3+x^2-2x-1 15
//
// Policy (see options.go):
//
//	New(d) fills the leading slot with DefaultLeadingFill (1.0, monic) and
//	every other slot with 0; New(0) is always [0]. WithZeroFill switches to an
//	all-zero buffer. DefaultStrictLeading guards the leading coefficient;
//	WithLenientLeading turns the guard off.
//
// Concurrency:
//
//	Poly is not internally synchronized. Distinct values are independent;
//	concurrent mutation of the same value must be serialized by the caller.
//
// Performance:
//
//   - Eval, Add, Sub, Neg, Clone: O(d)
//   - Mul: O(n·m)
package poly
