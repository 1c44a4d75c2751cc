// SPDX-License-Identifier: MIT

// Package poly - text persistence & interactive entry.
//
// Persisted format (whitespace separated, line layout is advisory):
//
//	POLY <degree>
//	<c0> <c1> ... <c_degree>
//
// The empty polynomial is written as "POLY -1" followed by an empty line.
// Coefficients use the shortest decimal form that parses back bit-exactly.
//
// Every reader here (Decode, Load, UnmarshalText, Scan) commits to the
// receiver only after all input has been validated; on any error the
// receiver is left exactly as it was.

package poly

import (
	"bufio"
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	ctxEncode = "Encode"
	ctxDecode = "Decode"
	ctxSave   = "Save"
	ctxLoad   = "Load"
	ctxScan   = "Scan"

	// header is the magic first token of the persisted format.
	header = "POLY"

	// maxPrealloc caps the initial capacity for a decoded degree; the buffer
	// grows only as coefficients arrive.
	maxPrealloc = 1 << 16
)

var (
	_ encoding.TextMarshaler   = (*Poly)(nil)
	_ encoding.TextUnmarshaler = (*Poly)(nil)
)

// Encode writes p in the persisted format to w.
func (p *Poly) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(p.Degree()))
	bw.WriteByte('\n')
	for i := 0; i <= p.Degree(); i++ {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatFloat(p.coef[i]))
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return polyErrorf(ctxEncode, err)
	}

	return nil
}

// Decode reads one polynomial in the persisted format from r into p.
//
// Errors (p is left unchanged):
//   - ErrBadHeader: first token missing or not exactly "POLY".
//   - ErrBadDegree: degree token missing or not an integer.
//   - ErrShortData: fewer than degree+1 coefficient tokens.
//   - ErrBadCoefficient: a coefficient token is not a float.
//   - ErrZeroLeading: strict policy and a positive degree with leading 0.
//   - any error returned by r.
//
// A negative degree decodes to the empty polynomial, mirroring New.
// Tokens after the last coefficient are ignored.
func (p *Poly) Decode(r io.Reader) error {
	coef, err := decode(r, p.options().strictLeading)
	if err != nil {
		return polyErrorf(ctxDecode, err)
	}
	p.coef = coef

	return nil
}

// decode parses the token stream and returns the validated buffer.
func decode(r io.Reader, strict bool) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(missing error) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", missing
	}

	tok, err := next(ErrBadHeader)
	if err != nil {
		return nil, err
	}
	if tok != header {
		return nil, ErrBadHeader
	}
	if tok, err = next(ErrBadDegree); err != nil {
		return nil, err
	}
	degree, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadDegree, tok)
	}
	if degree < 0 {
		return nil, nil
	}

	coef := make([]float64, 0, min(degree, maxPrealloc-1)+1)
	for i := 0; i <= degree; i++ {
		if tok, err = next(ErrShortData); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoefficient, tok)
		}
		coef = append(coef, v)
	}
	if strict && degree > 0 && coef[degree] == 0 {
		return nil, ErrZeroLeading
	}

	return coef, nil
}

// Save writes p to the named file, creating or truncating it.
func (p *Poly) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return polyErrorf(ctxSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = polyErrorf(ctxSave, cerr)
		}
	}()

	return p.Encode(f)
}

// Load replaces p with the polynomial stored in the named file.
// On any error p is left unchanged; see Decode for the error set.
func (p *Poly) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return polyErrorf(ctxLoad, err)
	}
	defer f.Close()

	if err := p.Decode(f); err != nil {
		return polyErrorf(ctxLoad, err)
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler using the persisted format.
func (p *Poly) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see Decode.
func (p *Poly) UnmarshalText(text []byte) error {
	return p.Decode(bytes.NewReader(text))
}

// Scan reads the coefficients of p interactively, from x^Degree() down to
// x^0, writing a "x^i: " prompt to prompt before each value (prompt may be nil).
//
// Behavior highlights:
//   - the degree is not changed; an empty polynomial reads nothing.
//   - under the strict policy a 0 for the leading coefficient of a
//     positive-degree polynomial is rejected and asked for again.
//   - in is consumed token by token via fmt.Fscan; pass a bufio.Reader
//     for efficiency, it will not be read past the last value.
//
// Errors (p is left unchanged):
//   - ErrNoInput when in ends early.
//   - ErrBadCoefficient when a token is not a number.
func (p *Poly) Scan(in io.Reader, prompt io.Writer) error {
	d := p.Degree()
	if d < 0 {
		return nil
	}
	if prompt == nil {
		prompt = io.Discard
	}
	strict := p.options().strictLeading

	buf := make([]float64, d+1)
	for i := d; i >= 0; i-- {
		for {
			fmt.Fprintf(prompt, "x^%d: ", i)
			var v float64
			if _, err := fmt.Fscan(in, &v); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return polyErrorf(ctxScan, ErrNoInput)
				}

				return polyErrorf(ctxScan, fmt.Errorf("%w: %v", ErrBadCoefficient, err))
			}
			if strict && i == d && d > 0 && v == 0 {
				fmt.Fprintln(prompt, "leading coefficient cannot be 0, try again")
				continue
			}
			buf[i] = v

			break
		}
	}
	p.coef = buf

	return nil
}
