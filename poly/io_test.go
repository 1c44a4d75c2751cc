package poly_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpoly/poly"
	"github.com/stretchr/testify/require"
)

// TestEncodeFormat pins the exact persisted layout.
func TestEncodeFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, poly.FromCoefficients(1, -2.5, 3).Encode(&buf))
	require.Equal(t, "POLY 2\n1 -2.5 3\n", buf.String())

	buf.Reset()
	require.NoError(t, poly.NewEmpty().Encode(&buf))
	require.Equal(t, "POLY -1\n\n", buf.String())
}

// TestSaveLoadRoundTrip ensures save→load reproduces an equal value.
func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cases := []*poly.Poly{
		poly.New(0),
		poly.New(5),
		poly.FromCoefficients(0.1, 0.2, 0.3),
		poly.FromCoefficients(-1e-300, 12345.678901234567, 1e300),
		poly.FromCoefficients(5, 2, 3).Mul(poly.FromCoefficients(1, 1)),
	}
	for i, p := range cases {
		path := filepath.Join(dir, "p"+string(rune('a'+i))+".poly")
		require.NoError(t, p.Save(path))

		got := poly.NewEmpty()
		require.NoError(t, got.Load(path))
		require.True(t, got.Equal(p), "case %d: got %v want %v", i, got.Coefficients(), p.Coefficients())
	}
}

// TestLoadEmpty round-trips the empty polynomial.
func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.poly")
	require.NoError(t, poly.NewEmpty().Save(path))

	got := poly.FromCoefficients(1, 2)
	require.NoError(t, got.Load(path))
	require.True(t, got.IsEmpty())
}

// TestLoadMissingFile ensures an open failure is reported and p is unchanged.
func TestLoadMissingFile(t *testing.T) {
	p := poly.FromCoefficients(3, 4)
	err := p.Load(filepath.Join(t.TempDir(), "nope.poly"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, []float64{3, 4}, p.Coefficients())
}

// TestSaveUnwritable ensures a create failure is reported.
func TestSaveUnwritable(t *testing.T) {
	err := poly.New(1).Save(filepath.Join(t.TempDir(), "missing-dir", "p.poly"))
	require.Error(t, err)
}

// TestDecodeErrors covers every malformed-input path; the target stays unchanged.
func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", poly.ErrBadHeader},
		{"wrong header", "POLX 1\n1 2\n", poly.ErrBadHeader},
		{"lowercase header", "poly 1\n1 2\n", poly.ErrBadHeader},
		{"missing degree", "POLY\n", poly.ErrBadDegree},
		{"bad degree", "POLY one\n1\n", poly.ErrBadDegree},
		{"float degree", "POLY 1.5\n1 2\n", poly.ErrBadDegree},
		{"short data", "POLY 2\n1 2\n", poly.ErrShortData},
		{"no data", "POLY 0\n", poly.ErrShortData},
		{"bad coefficient", "POLY 1\n1 abc\n", poly.ErrBadCoefficient},
		{"zero leading", "POLY 1\n1 0\n", poly.ErrZeroLeading},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := poly.FromCoefficients(7, 8, 9)
			err := p.Decode(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, []float64{7, 8, 9}, p.Coefficients())
		})
	}
}

// TestDecodeLenient accepts a zero leading coefficient when the guard is off.
func TestDecodeLenient(t *testing.T) {
	p := poly.NewEmpty(poly.WithLenientLeading())
	require.NoError(t, p.Decode(strings.NewReader("POLY 1\n1 0\n")))
	require.Equal(t, []float64{1, 0}, p.Coefficients())
}

// TestDecodeWhitespaceAndNegativeDegree checks tolerant token layout.
func TestDecodeWhitespaceAndNegativeDegree(t *testing.T) {
	p := poly.NewEmpty()
	require.NoError(t, p.Decode(strings.NewReader("POLY 2 1 2 3 trailing tokens")))
	require.Equal(t, []float64{1, 2, 3}, p.Coefficients())

	require.NoError(t, p.Decode(strings.NewReader("POLY -7\n")))
	require.True(t, p.IsEmpty())

	require.NoError(t, p.Decode(strings.NewReader("POLY 0\n0\n")))
	require.True(t, p.IsZero())
}

// TestDecodeFromFile exercises Load against a hand-written file.
func TestDecodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.poly")
	require.NoError(t, os.WriteFile(path, []byte("POLY 2\n1 3 2 \n"), 0o600))

	p := poly.NewEmpty()
	require.NoError(t, p.Load(path))
	require.Equal(t, 15.0, p.Eval(2))
}

// TestTextMarshaling exercises the encoding.TextMarshaler pair.
func TestTextMarshaling(t *testing.T) {
	src := poly.FromCoefficients(-1, 0, 0.5)
	text, err := src.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "POLY 2\n-1 0 0.5\n", string(text))

	var dst poly.Poly
	require.NoError(t, dst.UnmarshalText(text))
	require.True(t, dst.Equal(src))

	require.ErrorIs(t, dst.UnmarshalText([]byte("nonsense")), poly.ErrBadHeader)
}

// TestScan covers interactive entry, prompts and the leading re-prompt.
func TestScan(t *testing.T) {
	p := poly.New(2)
	var out bytes.Buffer
	require.NoError(t, p.Scan(strings.NewReader("2\n3\n1\n"), &out))
	require.Equal(t, []float64{1, 3, 2}, p.Coefficients())
	require.Equal(t, "x^2: x^1: x^0: ", out.String())

	out.Reset()
	require.NoError(t, p.Scan(strings.NewReader("0 -2 0 4"), &out))
	require.Equal(t, []float64{4, 0, -2}, p.Coefficients())
	require.Contains(t, out.String(), "leading coefficient cannot be 0")
	require.Equal(t, 2, strings.Count(out.String(), "x^2: ")) // asked twice
}

// TestScanLenientAndEmpty checks the lenient policy and the empty no-op.
func TestScanLenientAndEmpty(t *testing.T) {
	p := poly.New(1, poly.WithLenientLeading())
	require.NoError(t, p.Scan(strings.NewReader("0 5"), nil))
	require.Equal(t, []float64{5, 0}, p.Coefficients())

	e := poly.NewEmpty()
	require.NoError(t, e.Scan(strings.NewReader(""), nil))
	require.True(t, e.IsEmpty())
}

// TestScanFailures ensures early EOF and bad tokens leave p unchanged.
func TestScanFailures(t *testing.T) {
	p := poly.New(2)
	err := p.Scan(strings.NewReader("2\n"), nil)
	require.ErrorIs(t, err, poly.ErrNoInput)
	require.True(t, p.Equal(poly.New(2)))

	err = p.Scan(strings.NewReader("2 abc 1"), nil)
	require.ErrorIs(t, err, poly.ErrBadCoefficient)
	require.True(t, p.Equal(poly.New(2)))
}
