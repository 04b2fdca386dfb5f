package pi

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

var (
	// ErrInvalidParameter indicates a truncation parameter outside the
	// method's domain (K < 0, n ≤ 0, NaN, ±Inf).
	ErrInvalidParameter = errors.New("pi: invalid truncation parameter")

	// ErrNonFinite indicates the computation produced NaN or ±Inf, which
	// only happens when AllowDegenerate lets a bad parameter through.
	ErrNonFinite = errors.New("pi: non-finite result")

	// ErrBadPrecision indicates Options.Precision below the 64-bit minimum.
	ErrBadPrecision = errors.New("pi: precision below extended minimum")

	// ErrUnknownMethod indicates a Method value or name not in the registry.
	ErrUnknownMethod = errors.New("pi: unknown method")
)

// DefaultPrecision is the working precision, in mantissa bits, used when
// Options.Precision is zero.
const DefaultPrecision = bigmath.DefaultPrecision

// MinPrecision is the smallest accepted Options.Precision.
const MinPrecision = bigmath.MinPrecision

// Options configures every approximation in this package.
//
// Fields:
//   - Precision       — mantissa bits of the accumulator and the result.
//     Zero means DefaultPrecision; values below MinPrecision are rejected.
//   - AllowDegenerate — skip domain checks. Negative K gives the empty sum
//     (0) or empty product (2); parameters that drive the result to NaN or
//     ±Inf still fail with ErrNonFinite: NaN has no big.Float form and an
//     infinite value is never returned as an approximation.
type Options struct {
	Precision       uint
	AllowDegenerate bool
}

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// resolve applies defaults to opts (nil allowed) and validates precision.
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

// Reference returns π rounded to prec bits, for error measurement only.
// A zero prec means DefaultPrecision.
func Reference(prec uint) *big.Float {
	if prec == 0 {
		prec = DefaultPrecision
	}

	return bigmath.Pi(prec)
}

// methodErrorf prefixes err with the method call, e.g. "Madhava(-1): pi: …".
func methodErrorf(m Method, param interface{}, err error) error {
	return fmt.Errorf("%s(%v): %w", m, param, err)
}
