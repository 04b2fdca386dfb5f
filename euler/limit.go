package euler

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// maxExactInt is the largest integer every float64 below it represents exactly.
const maxExactInt = 1 << 53

// Limit evaluates (1 + 1/n)^n.
//
// For integral n in [1, 2^53] the base (n+1)/n is rounded once and raised
// by binary powering in opts.Precision, so the result is accurate to a few
// ulps of the working precision: Limit(1) is exactly 2. Any other n is
// evaluated with float64 math.Pow and lifted, as the exercise did; those
// results lose digits once 1/n drops below float64 resolution.
//
// The sequence increases towards e with error ≈ e/(2n).
//
// Errors:
//   - ErrBadPrecision     — opts.Precision below 64 bits.
//   - ErrInvalidParameter — n ≤ 0, NaN or ±Inf (unless AllowDegenerate).
//   - ErrNonFinite        — NaN/±Inf result under AllowDegenerate
//     (e.g. n = −1 gives 0^−1).
func Limit(n float64, opts *Options) (*big.Float, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", MethodLimit, n, err)
	}
	if !o.AllowDegenerate && (math.IsNaN(n) || n <= 0 || math.IsInf(n, 1)) {
		return nil, fmt.Errorf("%s(%v): %w", MethodLimit, n, ErrInvalidParameter)
	}

	if n >= 1 && n <= maxExactInt && n == math.Trunc(n) {
		p := o.Precision
		num := new(big.Int).SetUint64(uint64(n) + 1)
		den := new(big.Int).SetUint64(uint64(n))
		base := bigmath.New(p).Quo(bigmath.New(p).SetInt(num), bigmath.New(p).SetInt(den))

		return bigmath.PowInt(base, uint64(n)), nil
	}

	z, ok := bigmath.FromFloat64(o.Precision, math.Pow(1+1/n, n))
	if !ok {
		return nil, fmt.Errorf("%s(%v): %w", MethodLimit, n, ErrNonFinite)
	}

	return z, nil
}
