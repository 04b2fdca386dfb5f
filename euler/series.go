package euler

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Series evaluates the truncated Taylor series Σ_{j=0}^{k} 1/j!.
// The error after k terms is below 1/(k!·k), so k = 20 already exhausts
// float64 and k = 35 the default 128 bits. Series(0) is 1.
//
// The term 1/j! is obtained from 1/(j-1)! by one division, and summation
// stops once a term can no longer change the sum, so large k cost no more
// than the precision requires.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (k < 0). With
// AllowDegenerate a negative k returns the empty sum 0.
func Series(k int, opts *Options) (*big.Float, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", MethodSeries, k, err)
	}
	p := o.Precision
	sum := bigmath.New(p)
	if k < 0 {
		if !o.AllowDegenerate {
			return nil, fmt.Errorf("%s(%d): %w", MethodSeries, k, ErrInvalidParameter)
		}

		return sum, nil
	}

	term := bigmath.Int(p, 1) // 1/0!
	for j := 0; j <= k; j++ {
		if j > 0 {
			term.Quo(term, bigmath.Int(p, int64(j)))
		}
		if bigmath.Negligible(term, sum, p) {
			break
		}
		sum.Add(sum, term)
	}

	return sum, nil
}
