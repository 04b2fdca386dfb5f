// Command approxpi prints how close several series get to π.
//
// Usage:
//
//	approxpi [flags] [n]
//
// n is the truncation parameter shared by every method (default 5):
// the polygon side count for Archimedes, the term or factor count for the
// others (truncated toward zero). For each method the value and its squared
// error against π are printed; a method that rejects n prints its error and
// the report goes on with the next one. Archimedes is printed with 8
// decimals and the series with 10 unless -digits says otherwise.
//
// Examples:
//
//	approxpi
//	approxpi 12
//	approxpi -method bellard -prec 256 -digits 60 20
//	approxpi -method wallis,madhava -sweep 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvconst/convergence"
	"github.com/katalvlaran/lvconst/pi"
)

// defaultParam is used when no positional argument is given.
const defaultParam = 5.0

// Decimals printed when -digits is left at its default.
const (
	archimedesDigits = 8
	seriesDigits     = 10
)

// config is everything main needs, parsed once from the command line.
type config struct {
	methods   []pi.Method
	param     float64
	defaulted bool
	digits    int
	sweep     int
	workers   int
	verbose   bool
	opts      pi.Options
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("approxpi: ")

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// parseArgs turns command-line arguments into a config. Usage and flag
// errors are written to stderr.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("approxpi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	methods := fs.String("method", "all", "comma-separated methods, or \"all\"")
	prec := fs.Uint("prec", uint(pi.DefaultPrecision), "working precision in mantissa bits (>= 64)")
	digits := fs.Int("digits", -1, "decimals printed for each value (-1 = 8 for archimedes, 10 for the series)")
	sweep := fs.Int("sweep", 0, "also print a convergence table for parameters 1..N")
	workers := fs.Int("workers", 0, "concurrent evaluations in a sweep (0 = one per CPU)")
	verbose := fs.Bool("v", false, "trace every sweep evaluation")
	degenerate := fs.Bool("degenerate", false, "skip parameter validation, as the original exercises did")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: approxpi [flags] [n]\n\n")
		fmt.Fprintf(stderr, "Compares series approximations of Pi at truncation parameter n (default 5).\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nMethods: %s\n", strings.Join(methodNames(), ", "))
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		param:   defaultParam,
		digits:  *digits,
		sweep:   *sweep,
		workers: *workers,
		verbose: *verbose,
		opts:    pi.Options{Precision: *prec, AllowDegenerate: *degenerate},
	}

	switch fs.NArg() {
	case 0:
		cfg.defaulted = true
	case 1:
		n, err := strconv.ParseFloat(fs.Arg(0), 64)
		if err != nil {
			return config{}, fmt.Errorf("invalid n %q: %w", fs.Arg(0), err)
		}
		cfg.param = n
	default:
		fs.Usage()
		return config{}, fmt.Errorf("expected at most one argument, got %d", fs.NArg())
	}

	if cfg.digits < -1 {
		return config{}, fmt.Errorf("invalid -digits %d", cfg.digits)
	}
	if cfg.sweep < 0 {
		return config{}, fmt.Errorf("invalid -sweep %d", cfg.sweep)
	}

	ms, err := resolveMethods(*methods)
	if err != nil {
		return config{}, err
	}
	cfg.methods = ms

	return cfg, nil
}

// resolveMethods parses the -method flag.
func resolveMethods(list string) ([]pi.Method, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return pi.Methods(), nil
	}

	var out []pi.Method
	for _, name := range strings.Split(list, ",") {
		m, err := pi.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// decimals returns the number of decimals printed for m.
func (c config) decimals(m pi.Method) int {
	switch {
	case c.digits >= 0:
		return c.digits
	case m == pi.MethodArchimedes:
		return archimedesDigits
	default:
		return seriesDigits
	}
}

func methodNames() []string {
	ms := pi.Methods()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = strings.ToLower(m.String())
	}

	return names
}

// run evaluates every selected method and writes the report to w.
// Per-method errors are reported inline and joined into the returned error;
// the sweep runs only when every method succeeded.
func run(ctx context.Context, cfg config, w io.Writer) error {
	ref := pi.Reference(cfg.opts.Precision)

	fmt.Fprintf(w, "\n  Accuracy of different methods to approximate to Pi\n\n")
	if cfg.defaulted {
		fmt.Fprintf(w, "No input given. Using default n=%g.\n\n", defaultParam)
	}

	var errs []error
	for _, m := range cfg.methods {
		v, err := pi.Approximate(m, cfg.param, &cfg.opts)
		if err != nil {
			fmt.Fprintf(w, "   %s(%.1f) failed: %v\n\n", m, cfg.param, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "   %s(%.1f) = %s\n", m, cfg.param, v.Text('f', cfg.decimals(m)))
		fmt.Fprintf(w, "   Squared error = %s\n\n", convergence.SquaredError(v, ref).Text('e', 5))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if cfg.sweep == 0 {
		return nil
	}

	return printSweeps(ctx, cfg, ref, w)
}

// printSweeps writes one convergence table per method for n = 1..cfg.sweep.
func printSweeps(ctx context.Context, cfg config, ref *big.Float, w io.Writer) error {
	params := make([]float64, cfg.sweep)
	for i := range params {
		params[i] = float64(i + 1)
	}
	sweepOpts := convergence.Options{Workers: cfg.workers, Verbose: cfg.verbose}

	for _, m := range cfg.methods {
		res, err := convergence.Sweep(ctx, m.Evaluator(&cfg.opts), ref, params, &sweepOpts)
		if err != nil {
			return fmt.Errorf("sweep %s: %w", m, err)
		}

		fmt.Fprintf(w, "%s convergence (monotone: %t)\n", m, convergence.Monotone(res.SquaredErrors))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "n\tvalue\tsquared error\tdigits\t")
		for _, p := range res.Points {
			fmt.Fprintf(tw, "%g\t%s\t%s\t%.1f\t\n",
				p.Param,
				p.Value.Text('f', cfg.decimals(m)),
				convergence.SquaredError(p.Value, ref).Text('e', 3),
				convergence.Digits(p.Value, ref))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return nil
}
