// Command expe approximates Euler's number e.
//
// Usage:
//
//	expe [flags] n
//
// With the default limit method, n is the exponent in (1 + 1/n)^n; with
// -method series it is the last factorial term of Σ 1/k!. The -terms flag
// lists k, k! and 1/k! for the first terms of that series (at most 40).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvconst/convergence"
	"github.com/katalvlaran/lvconst/euler"
	"github.com/katalvlaran/lvconst/factorial"
)

// maxTermRows caps the -terms listing; 1/40! is already below 2^-159.
const maxTermRows = 40

type config struct {
	method euler.Method
	param  float64
	digits int
	terms  bool
	opts   euler.Options
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("expe: ")

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("expe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	method := fs.String("method", "limit", "approximation: limit or series")
	prec := fs.Uint("prec", uint(euler.DefaultPrecision), "working precision in mantissa bits (>= 64)")
	digits := fs.Int("digits", 6, "decimals printed")
	degenerate := fs.Bool("degenerate", false, "skip parameter validation")
	terms := fs.Bool("terms", false, "list k, k! and 1/k! of the factorial series")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: expe [flags] n\n")
		fmt.Fprintf(stderr, "\twhere n is a positive definite integer\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected exactly one argument, got %d", fs.NArg())
	}

	n, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return config{}, fmt.Errorf("invalid n %q: %w", fs.Arg(0), err)
	}
	m, err := euler.ParseMethod(*method)
	if err != nil {
		return config{}, err
	}
	if *digits < 0 {
		return config{}, fmt.Errorf("invalid -digits %d", *digits)
	}

	return config{
		method: m,
		param:  n,
		digits: *digits,
		terms:  *terms,
		opts:   euler.Options{Precision: *prec, AllowDegenerate: *degenerate},
	}, nil
}

func run(cfg config, w io.Writer) error {
	v, err := euler.Approximate(cfg.method, cfg.param, &cfg.opts)
	if err != nil {
		return err
	}
	ref := euler.Reference(cfg.opts.Precision)

	if cfg.terms {
		if err := printTerms(cfg, w); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "e ~= %s\n", v.Text('f', cfg.digits))
	fmt.Fprintf(w, "Squared error = %s\n", convergence.SquaredError(v, ref).Text('e', 5))

	return nil
}

// printTerms writes the factorial table behind euler.Series, one row per
// term k = 0..min(n, maxTermRows).
func printTerms(cfg config, w io.Writer) error {
	n := int(cfg.param)
	if n > maxTermRows {
		n = maxTermRows
	}
	if n < 0 {
		return nil
	}
	facts, err := factorial.Table(n)
	if err != nil {
		return err
	}

	prec := cfg.opts.Precision
	if prec == 0 {
		prec = euler.DefaultPrecision
	}
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tk!\t1/k!\t")
	for k, f := range facts {
		inv := new(big.Float).SetPrec(prec).SetInt(f)
		inv.Quo(one, inv)
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", k, f.String(), inv.Text('e', 5))
	}

	return tw.Flush()
}
