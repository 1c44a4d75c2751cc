// Package poly_test contains unit tests for Poly construction, copy and move.
package poly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpoly/poly"
	"github.com/stretchr/testify/require"
)

// TestNewDegreeAndFill verifies degree and default monic fill for d = 0..6.
func TestNewDegreeAndFill(t *testing.T) {
	for d := 0; d <= 6; d++ {
		p := poly.New(d)                // default policy: monic leading slot
		require.Equal(t, d, p.Degree()) // degree is exactly what was requested
		for i := 0; i < d; i++ {
			require.Equal(t, 0.0, p.Coef(i)) // every non-leading slot is zero
		}
		if d == 0 {
			require.True(t, p.IsZero()) // degree 0 is never auto-filled
		} else {
			require.Equal(t, poly.DefaultLeadingFill, p.Coef(d))
		}
	}
}

// TestNewNegativeDegree ensures negative degrees normalize to the empty polynomial.
func TestNewNegativeDegree(t *testing.T) {
	for _, d := range []int{-1, -5, math.MinInt32} {
		p := poly.New(d)
		require.Equal(t, -1, p.Degree())
		require.True(t, p.IsEmpty())
		require.Nil(t, p.Coefficients())
	}
}

// TestNewFillOptions checks WithZeroFill and WithLeadingFill.
func TestNewFillOptions(t *testing.T) {
	z := poly.New(3, poly.WithZeroFill())
	require.Equal(t, []float64{0, 0, 0, 0}, z.Coefficients())

	f := poly.New(2, poly.WithLeadingFill(2.5))
	require.Equal(t, []float64{0, 0, 2.5}, f.Coefficients())

	// degree 0 ignores the fill entirely
	require.True(t, poly.New(0, poly.WithLeadingFill(7)).IsZero())

	require.Panics(t, func() { poly.WithLeadingFill(math.NaN()) })
	require.Panics(t, func() { poly.WithLeadingFill(math.Inf(-1)) })
}

// TestZeroValueIsEmpty ensures Poly{} and NewEmpty behave as the empty polynomial.
func TestZeroValueIsEmpty(t *testing.T) {
	var zv poly.Poly
	require.Equal(t, -1, zv.Degree())
	require.True(t, zv.Options().StrictLeading()) // zero value falls back to defaults
	require.True(t, zv.Equal(poly.NewEmpty()))

	var nilPoly *poly.Poly
	require.Equal(t, -1, nilPoly.Degree()) // nil reads as empty
	require.Equal(t, 0.0, nilPoly.Eval(3))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	src := poly.FromCoefficients(5, 2, 3) // 3x^2+2x+5
	cp := src.Clone()
	require.True(t, cp.Equal(src)) // equal by value

	require.NoError(t, cp.SetCoef(0, 42)) // mutate the copy only
	require.Equal(t, 5.0, src.Coef(0))    // source untouched
	require.Equal(t, 42.0, cp.Coef(0))

	require.True(t, poly.NewEmpty().Clone().IsEmpty())
}

// TestTakeLeavesSourceEmpty verifies destructive move semantics.
func TestTakeLeavesSourceEmpty(t *testing.T) {
	src := poly.FromCoefficients(1, 2, 3)
	want := src.Clone()

	dst := src.Take()
	require.True(t, src.IsEmpty()) // source is empty after the move
	require.True(t, dst.Equal(want))

	// the moved-from value is reusable
	src.Recreate(1)
	require.Equal(t, 1, src.Degree())
	require.True(t, dst.Equal(want))
}

// TestAssign covers copy assignment, including self-assignment.
func TestAssign(t *testing.T) {
	a := poly.FromCoefficients(1, 2)
	b := poly.FromCoefficients(9, 8, 7)

	a.Assign(b)
	require.True(t, a.Equal(b))
	require.NoError(t, a.SetCoef(0, -1))
	require.Equal(t, 9.0, b.Coef(0)) // independent buffers

	before := a.Clone()
	a.Assign(a) // self-assignment is a no-op
	require.True(t, a.Equal(before))

	a.Assign(poly.NewEmpty())
	require.True(t, a.IsEmpty())
}

// TestMoveFrom covers move assignment, including self-move.
func TestMoveFrom(t *testing.T) {
	a := poly.FromCoefficients(1)
	b := poly.FromCoefficients(4, 0, 1)
	want := b.Clone()

	a.MoveFrom(b)
	require.True(t, a.Equal(want))
	require.True(t, b.IsEmpty())

	a.MoveFrom(a) // self-move keeps the value
	require.True(t, a.Equal(want))

	a.MoveFrom(nil)
	require.True(t, a.IsEmpty())
}

// TestRecreate ensures Recreate behaves like New under the receiver's policy.
func TestRecreate(t *testing.T) {
	p := poly.FromCoefficients(1, 2, 3, 4)
	p.Recreate(2)
	require.True(t, p.Equal(poly.New(2)))

	p.Recreate(-3)
	require.True(t, p.IsEmpty())

	z := poly.New(1, poly.WithZeroFill())
	z.Recreate(3)
	require.Equal(t, []float64{0, 0, 0, 0}, z.Coefficients())
}
