package pi

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Ramanujan evaluates Ramanujan's 1914 series for 1/π:
//
//	1/π = (2√2 / 9801) · Σ_{j=0}^{k} (4j)! (1103 + 26390j) / ((j!)⁴ · 396^{4j})
//
// and returns its reciprocal. The factorial part a_j = (4j)!/((j!)⁴·396^{4j})
// is carried at working precision and advanced by its ratio
//
//	a_{j+1}/a_j = (4j+1)(4j+2)(4j+3)(4j+4) / ((j+1)⁴ · 396⁴)
//
// so memory stays constant in k. Summation stops once a term can no longer
// change the sum. Each term adds close to eight decimal digits:
// Ramanujan(0) = 9801/(2206√2) is off by ~7.6e-8.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (k < 0),
// ErrNonFinite (k < 0 with AllowDegenerate: the empty sum has no reciprocal).
func Ramanujan(k int, opts *Options) (*big.Float, error) {
	o, err := prepareSeries(MethodRamanujan, k, opts)
	if err != nil {
		return nil, err
	}
	p := o.Precision

	sum := bigmath.New(p)
	base := bigmath.Int(p, 396*396*396*396)
	a := bigmath.Int(p, 1) // a_j
	term := bigmath.New(p)
	for j := 0; j <= k; j++ {
		term.Mul(a, bigmath.Int(p, 1103+26390*int64(j)))
		if bigmath.Negligible(term, sum, p) {
			break
		}
		sum.Add(sum, term)

		j4 := 4 * int64(j)
		for i := int64(1); i <= 4; i++ {
			a.Mul(a, bigmath.Int(p, j4+i))
		}
		next := bigmath.Int(p, int64(j)+1)
		for i := 0; i < 4; i++ {
			a.Quo(a, next)
		}
		a.Quo(a, base)
	}

	// π = 9801 / (2√2 · Σ)
	den := bigmath.New(p).Mul(bigmath.Sqrt(p, 8), sum)
	res := bigmath.New(p).Quo(bigmath.Int(p, 9801), den)
	if !bigmath.Finite(res) {
		return nil, methodErrorf(MethodRamanujan, k, ErrNonFinite)
	}

	return res, nil
}
