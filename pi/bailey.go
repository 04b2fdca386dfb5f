package pi

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Bailey evaluates the Bailey–Borwein–Plouffe series:
//
//	π ≈ Σ_{j=0}^{k} 16^{−j} · [4/(8j+1) − 2/(8j+4) − 1/(8j+5) − 1/(8j+6)]
//
// Every term is positive and about 16× smaller than the previous one, so
// each added term contributes roughly one hexadecimal digit. The 16^{−j}
// scale is an exact power of two. Terms past the working precision are
// skipped, so very large k cost no more than the precision requires.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (k < 0).
func Bailey(k int, opts *Options) (*big.Float, error) {
	o, err := prepareSeries(MethodBailey, k, opts)
	if err != nil {
		return nil, err
	}
	p := o.Precision

	sum := bigmath.New(p)
	inner := bigmath.New(p)
	for j := 0; j <= k; j++ {
		j8 := 8 * int64(j)
		inner.Set(bigmath.Ratio(p, 4, j8+1))
		inner.Sub(inner, bigmath.Ratio(p, 2, j8+4))
		inner.Sub(inner, bigmath.Ratio(p, 1, j8+5))
		inner.Sub(inner, bigmath.Ratio(p, 1, j8+6))
		inner.Mul(inner, bigmath.Pow2(p, -4*j))
		if bigmath.Negligible(inner, sum, p) {
			break
		}
		sum.Add(sum, inner)
	}

	return sum, nil
}
