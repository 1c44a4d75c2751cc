// Command poly is a console front-end for the poly package: enter a
// polynomial interactively or load it from disk, combine it with another
// stored polynomial, evaluate it, save it and plot it.
//
// Usage:
//
//	poly -degree 2 -out p.poly            # prompt for 3 coefficients, save
//	poly -in p.poly -eval 0,1,2.5         # show and evaluate
//	poly -in p.poly -mul q.poly -out pq.poly
//	poly -in p.poly -plot p.png -xmin -3 -xmax 3
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpoly/poly"
	"github.com/katalvlaran/lvpoly/polyplot"
)

const version = "0.1.0"

var errNoSource = errors.New("poly: one of -in or -degree is required")

// config holds parsed flags.
type config struct {
	degree   int
	in       string
	add      string
	sub      string
	mul      string
	neg      bool
	eval     []float64
	out      string
	plot     string
	xmin     float64
	xmax     float64
	lenient  bool
	zeroFill bool
	version  bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("poly: ")

	if err := run(os.Args[1:], bufio.NewReader(os.Stdin), os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}

// parseFlags parses args into a config; usage and flag errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("poly", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&cfg.degree, "degree", -1, "create a polynomial of this degree and enter its coefficients")
	fs.StringVar(&cfg.in, "in", "", "load the polynomial from this file")
	fs.StringVar(&cfg.add, "add", "", "add the polynomial stored in this file")
	fs.StringVar(&cfg.sub, "sub", "", "subtract the polynomial stored in this file")
	fs.StringVar(&cfg.mul, "mul", "", "multiply by the polynomial stored in this file")
	fs.BoolVar(&cfg.neg, "neg", false, "negate the result")
	evalList := fs.String("eval", "", "comma-separated x values to evaluate at")
	fs.StringVar(&cfg.out, "out", "", "save the result to this file")
	fs.StringVar(&cfg.plot, "plot", "", "draw the result to this image file (png, svg, pdf)")
	fs.Float64Var(&cfg.xmin, "xmin", -10, "plot range start")
	fs.Float64Var(&cfg.xmax, "xmax", 10, "plot range end")
	fs.BoolVar(&cfg.lenient, "lenient", false, "allow a zero leading coefficient")
	fs.BoolVar(&cfg.zeroFill, "zero-fill", false, "start new polynomials from all-zero coefficients")
	fs.BoolVar(&cfg.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  poly -degree N | -in FILE [-add|-sub|-mul FILE] [-neg] [-eval X,...] [-out FILE] [-plot FILE]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	xs, err := parseList(*evalList)
	if err != nil {
		return nil, err
	}
	cfg.eval = xs

	return cfg, nil
}

// parseList parses "1, 2.5,-3" into floats; an empty string yields nil.
func parseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	xs := make([]float64, 0, len(parts))
	for _, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("-eval: %w", err)
		}
		xs = append(xs, x)
	}

	return xs, nil
}

// options maps flags onto the poly policy.
func (c *config) options() []poly.Option {
	var opts []poly.Option
	if c.lenient {
		opts = append(opts, poly.WithLenientLeading())
	}
	if c.zeroFill {
		opts = append(opts, poly.WithZeroFill())
	}

	return opts
}

// load reads a stored polynomial under the configured policy.
func (c *config) load(path string) (*poly.Poly, error) {
	p := poly.NewEmpty(c.options()...)
	if err := p.Load(path); err != nil {
		return nil, err
	}

	return p, nil
}

// run is main without process exits, so it can be driven from tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		fmt.Fprintf(stdout, "poly %s\n", version)
		return nil
	}

	var p *poly.Poly
	switch {
	case cfg.in != "":
		if p, err = cfg.load(cfg.in); err != nil {
			return err
		}
	case cfg.degree >= 0:
		p = poly.New(cfg.degree, cfg.options()...)
		fmt.Fprintf(stdout, "enter %d coefficient(s), highest exponent first\n", cfg.degree+1)
		if err := p.Scan(stdin, stdout); err != nil {
			return err
		}
	default:
		return errNoSource
	}

	steps := []struct {
		path string
		op   func(a, b *poly.Poly) *poly.Poly
	}{
		{cfg.add, (*poly.Poly).Add},
		{cfg.sub, (*poly.Poly).Sub},
		{cfg.mul, (*poly.Poly).Mul},
	}
	for _, st := range steps {
		if st.path == "" {
			continue
		}
		q, err := cfg.load(st.path)
		if err != nil {
			return err
		}
		p = st.op(p, q)
	}
	if cfg.neg {
		p = p.Neg()
	}

	fmt.Fprintf(stdout, "p(x) = %s\n", p)
	fmt.Fprintf(stdout, "degree = %d\n", p.Degree())
	for _, x := range cfg.eval {
		fmt.Fprintf(stdout, "p(%g) = %g\n", x, p.Eval(x))
	}

	if cfg.out != "" {
		if err := p.Save(cfg.out); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved %s\n", cfg.out)
	}
	if cfg.plot != "" {
		opts := polyplot.DefaultOptions()
		opts.XMin, opts.XMax = cfg.xmin, cfg.xmax
		if err := polyplot.Save(cfg.plot, opts, p); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "plotted %s\n", cfg.plot)
	}

	return nil
}
