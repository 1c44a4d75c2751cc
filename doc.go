// Package lvpoly is a small numeric library around one value type: a dense
// univariate polynomial with float64 coefficients.
//
// 🚀 What is in here?
//
//	poly/     : the Poly value type (construction, copy & move, guarded
//	            coefficient access, Add/Sub/Mul/Neg, evaluation, exact and
//	            tolerant equality, text persistence, interactive entry)
//	polyplot/ : curve charts for one or more polynomials (gonum/plot)
//	cmd/poly/ : console front-end tying the two together
//
// ✨ Guarantees
//
//   - The empty polynomial (degree -1) and the zero polynomial ([0]) are
//     distinct values and stay distinct through every operation.
//   - Arithmetic never mutates an operand; Add/Sub normalize leading zeros.
//   - No public call panics on user input; errors are sentinels matched
//     with errors.Is.
//
//	go get github.com/katalvlaran/lvpoly/poly
package lvpoly
