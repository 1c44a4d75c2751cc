// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Poly)(nil)

// String renders p for display, highest exponent first, e.g. "2x^2+3x+1".
//
// Rules:
//   - zero coefficients are skipped;
//   - every term after the first carries its sign ("+" or "-"), the first
//     term only a "-" when negative;
//   - a magnitude of exactly 1 is omitted except on the constant term,
//     so -1·x^2 renders as "-x^2";
//   - "x" is appended for exponent ≥ 1 and "^<exp>" for exponent ≥ 2.
//
// The empty polynomial renders as "" and an all-zero polynomial as "0".
// The output is not meant to round-trip; use Encode for that.
func (p *Poly) String() string {
	if p.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p.coef[i]
		if c == 0 {
			continue
		}
		switch {
		case c < 0:
			sb.WriteByte('-')
		case sb.Len() > 0:
			sb.WriteByte('+')
		}
		mag := math.Abs(c)
		if i == 0 || mag != 1 {
			sb.WriteString(formatFloat(mag))
		}
		if i >= 1 {
			sb.WriteByte('x')
		}
		if i >= 2 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// formatFloat is the shortest decimal form that parses back to v exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
