// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// Every exported method returns one of these sentinels, wrapped with the
// method context ("Poly.<Method>: ..."). Tests and callers MUST match them
// via errors.Is. No exported method panics on user-triggered conditions;
// panics are reserved for nonsensical Option values (programmer error).

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a coefficient index outside [0, Degree()].
	// Reads never return it (they yield 0); writes do and leave p untouched.
	ErrOutOfRange = errors.New("poly: coefficient index out of range")

	// ErrZeroLeading signals that a positive-degree polynomial would end up
	// with a leading coefficient of exactly 0.0 under the strict policy.
	ErrZeroLeading = errors.New("poly: leading coefficient must be non-zero")

	// ErrBadHeader is returned by Decode when the first token is not "POLY".
	ErrBadHeader = errors.New("poly: missing POLY header")

	// ErrBadDegree is returned by Decode when the degree token is not an integer.
	ErrBadDegree = errors.New("poly: invalid degree")

	// ErrBadCoefficient is returned when a coefficient token is not a float.
	ErrBadCoefficient = errors.New("poly: invalid coefficient")

	// ErrShortData is returned when fewer than degree+1 coefficients are present.
	ErrShortData = errors.New("poly: not enough coefficients")

	// ErrNoInput is returned by Scan when the input ends before every
	// coefficient has been entered.
	ErrNoInput = errors.New("poly: input exhausted")
)

// polyErrorf attaches the method tag to a sentinel, preserving it for errors.Is.
func polyErrorf(method string, err error) error {
	return fmt.Errorf("Poly.%s: %w", method, err)
}
