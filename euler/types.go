package euler

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

var (
	// ErrInvalidParameter indicates n ≤ 0, NaN, ±Inf, or k < 0.
	ErrInvalidParameter = errors.New("euler: invalid parameter")

	// ErrNonFinite indicates a NaN or ±Inf result under AllowDegenerate.
	ErrNonFinite = errors.New("euler: non-finite result")

	// ErrBadPrecision indicates Options.Precision below 64 bits.
	ErrBadPrecision = errors.New("euler: precision below extended minimum")

	// ErrUnknownMethod indicates a Method not in the registry.
	ErrUnknownMethod = errors.New("euler: unknown method")
)

// DefaultPrecision is used when Options.Precision is zero.
const DefaultPrecision = bigmath.DefaultPrecision

// Options configures Limit and Series; see pi.Options for field semantics.
type Options struct {
	Precision       uint
	AllowDegenerate bool
}

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if !bigmath.ValidPrecision(o.Precision) {
		return o, ErrBadPrecision
	}

	return o, nil
}

// Reference returns e rounded to prec bits (zero means DefaultPrecision).
func Reference(prec uint) *big.Float {
	if prec == 0 {
		prec = DefaultPrecision
	}

	return bigmath.E(prec)
}

// Method identifies one approximation of e.
type Method int

const (
	// MethodLimit selects Limit.
	MethodLimit Method = iota
	// MethodSeries selects Series.
	MethodSeries
)

// String returns "Limit", "Series" or "Method(n)".
func (m Method) String() string {
	switch m {
	case MethodLimit:
		return "Limit"
	case MethodSeries:
		return "Series"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods returns every method in declaration order.
func Methods() []Method {
	return []Method{MethodLimit, MethodSeries}
}

// ParseMethod resolves a case-insensitive method name.
func ParseMethod(name string) (Method, error) {
	name = strings.TrimSpace(name)
	for _, m := range Methods() {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Approximate runs m with a float64 parameter. Series truncates it toward
// zero; Limit takes it as is.
func Approximate(m Method, param float64, opts *Options) (*big.Float, error) {
	switch m {
	case MethodLimit:
		return Limit(param, opts)
	case MethodSeries:
		if math.IsNaN(param) || param >= math.MaxInt32 || param <= math.MinInt32 {
			return nil, fmt.Errorf("%s(%v): %w", m, param, ErrInvalidParameter)
		}

		return Series(int(param), opts)
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}
}

// Evaluator binds m and opts into a one-parameter function.
func (m Method) Evaluator(opts *Options) func(float64) (*big.Float, error) {
	return func(param float64) (*big.Float, error) {
		return Approximate(m, param, opts)
	}
}
