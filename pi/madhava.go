package pi

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Madhava evaluates the Madhava–Leibniz series accelerated by √12:
//
//	π ≈ √12 · Σ_{j=0}^{k} (−3)^{−j} / (2j+1)
//
// The series alternates with ratio −1/3, so each term shrinks the error
// roughly threefold. Madhava(0) is exactly √12 at the working precision.
// Summation stops early once a term can no longer change the sum.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (k < 0).
func Madhava(k int, opts *Options) (*big.Float, error) {
	o, err := prepareSeries(MethodMadhava, k, opts)
	if err != nil {
		return nil, err
	}
	p := o.Precision

	sum := bigmath.New(p)
	one := bigmath.Int(p, 1)
	minusThree := bigmath.Int(p, -3)
	pow := bigmath.Int(p, 1) // (−3)^j
	den := bigmath.New(p)
	term := bigmath.New(p)
	for j := 0; j <= k; j++ {
		den.Mul(pow, bigmath.Int(p, int64(2*j+1)))
		term.Quo(one, den)
		if bigmath.Negligible(term, sum, p) {
			break
		}
		sum.Add(sum, term)
		pow.Mul(pow, minusThree)
	}

	return sum.Mul(sum, bigmath.Sqrt(p, 12)), nil
}
