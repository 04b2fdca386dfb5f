// SPDX-License-Identifier: MIT
// Package: lvconst/internal/bigmath
//
// bigmath.go — shared big.Float helpers for the approximation packages.
//
// Contract:
//   • Every constructor takes the working precision explicitly; nothing
//     reads a package-level default behind the caller's back.
//   • Rounding mode is big.ToNearestEven throughout (the big.Float default).
//   • Powers of two are exact (mantissa 1, shifted exponent).
//   • Helpers never panic on finite input; 0/0 is the only big.Float panic
//     and no helper here divides a zero by a zero.

package bigmath

import (
	"math"
	"math/big"
)

const (
	// DefaultPrecision is the mantissa width, in bits, used when the caller
	// does not choose one. 128 bits is double-double territory.
	DefaultPrecision uint = 128

	// MinPrecision is the narrowest accepted mantissa: the 64 bits of the
	// x87 80-bit extended format.
	MinPrecision uint = 64
)

// ValidPrecision reports whether prec is an accepted working precision.
func ValidPrecision(prec uint) bool {
	return prec >= MinPrecision && prec <= big.MaxPrec
}

// New returns a zero-valued Float with precision prec.
func New(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// Int returns v as a Float of precision prec. Exact for prec ≥ 64.
func Int(prec uint, v int64) *big.Float {
	return New(prec).SetInt64(v)
}

// Ratio returns num/den rounded once to precision prec.
// den must be non-zero unless num is non-zero too (x/0 yields ±Inf).
func Ratio(prec uint, num, den int64) *big.Float {
	return New(prec).Quo(Int(prec, num), Int(prec, den))
}

// Pow2 returns 2^exp exactly at precision prec.
func Pow2(prec uint, exp int) *big.Float {
	return New(prec).SetMantExp(Int(prec, 1), exp)
}

// PowInt returns x^n by binary powering at x's precision.
// PowInt(x, 0) is 1 for every x, including 0.
func PowInt(x *big.Float, n uint64) *big.Float {
	prec := x.Prec()
	result := Int(prec, 1)
	base := New(prec).Set(x)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
		}
	}

	return result
}

// Sqrt returns √v at precision prec. v must be ≥ 0.
func Sqrt(prec uint, v int64) *big.Float {
	return New(prec).Sqrt(Int(prec, v))
}

// FromFloat64 lifts f into a Float of precision prec.
// It reports false for NaN, which SetFloat64 rejects, and for ±Inf, which
// no approximation in this module accepts as a result.
func FromFloat64(prec uint, f float64) (*big.Float, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}

	return New(prec).SetFloat64(f), true
}

// Finite reports whether x is neither nil nor ±Inf.
func Finite(x *big.Float) bool {
	return x != nil && !x.IsInf()
}

// Negligible reports whether adding term to sum at precision prec is
// guaranteed to leave sum unchanged, i.e. |term| < ulp(sum)/4.
// A zero term is negligible; nothing is negligible against a zero sum.
func Negligible(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}

	// |term| < 2^te and ulp(sum) = 2^(se-prec).
	te := term.MantExp(nil)
	se := sum.MantExp(nil)

	return te <= se-int(prec)-2
}

// SquaredError returns (approx − ref)² at approx's precision.
func SquaredError(approx, ref *big.Float) *big.Float {
	prec := approx.Prec()
	d := New(prec).Sub(approx, ref)

	return d.Mul(d, d)
}

// Digits returns the number of correct decimal digits of approx against
// ref, −log10|approx − ref|. An exact match yields +Inf.
func Digits(approx, ref *big.Float) float64 {
	d := New(approx.Prec()).Sub(approx, ref)
	if d.Sign() == 0 {
		return math.Inf(1)
	}
	d.Abs(d)

	// Split into mantissa·2^exp so tiny differences do not underflow float64.
	mant := New(d.Prec())
	exp := d.MantExp(mant)
	m, _ := mant.Float64()

	return -(math.Log10(m) + float64(exp)*math.Log10(2))
}
