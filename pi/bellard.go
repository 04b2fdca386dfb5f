package pi

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// bellardTerm is one weighted reciprocal w/(a·j+b) of Bellard's formula.
type bellardTerm struct {
	w    int64
	a, b int64
}

// bellardTerms lists the seven reciprocals with their signs folded into w.
var bellardTerms = [...]bellardTerm{
	{-32, 4, 1},
	{-1, 4, 3},
	{256, 10, 1},
	{-64, 10, 3},
	{-4, 10, 5},
	{-4, 10, 7},
	{1, 10, 9},
}

// Bellard evaluates Fabrice Bellard's BBP-style formula:
//
//	π ≈ 1/64 · Σ_{j=0}^{k} (−1)^j / 2^{10j} · [ −32/(4j+1) − 1/(4j+3)
//	      + 256/(10j+1) − 64/(10j+3) − 4/(10j+5) − 4/(10j+7) + 1/(10j+9) ]
//
// The 2^{−10j} scale makes every term about 1024× smaller than the last,
// i.e. slightly more than three hexadecimal digits per term; Bellard(3)
// is already within 1e-13 of π. The signed scale and the
// final 1/64 are exact powers of two. Summation ends once a term drops
// below the working precision of the sum.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (k < 0).
func Bellard(k int, opts *Options) (*big.Float, error) {
	o, err := prepareSeries(MethodBellard, k, opts)
	if err != nil {
		return nil, err
	}
	p := o.Precision

	sum := bigmath.New(p)
	inner := bigmath.New(p)
	for j := 0; j <= k; j++ {
		inner.SetInt64(0)
		for _, t := range bellardTerms {
			inner.Add(inner, bigmath.Ratio(p, t.w, t.a*int64(j)+t.b))
		}
		inner.Mul(inner, bigmath.Pow2(p, -10*j))
		if j%2 == 1 {
			inner.Neg(inner)
		}
		if bigmath.Negligible(inner, sum, p) {
			break
		}
		sum.Add(sum, inner)
	}

	return sum.Mul(sum, bigmath.Pow2(p, -6)), nil
}
