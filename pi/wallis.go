package pi

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Wallis evaluates the Wallis product:
//
//	π ≈ 2 · Π_{i=1}^{n} (2i/(2i−1)) · (2i/(2i+1))
//
// Each factor is folded into the single ratio 4i²/(4i²−1) and rounded once.
// The product increases monotonically towards π but slowly: the error is
// about π/(4n), so n = 1000 buys two to three decimals. Wallis(0) returns
// the empty-product seed 2.
//
// Errors: ErrBadPrecision, ErrInvalidParameter (n < 0).
func Wallis(n int, opts *Options) (*big.Float, error) {
	o, err := prepareSeries(MethodWallis, n, opts)
	if err != nil {
		return nil, err
	}
	p := o.Precision

	prod := bigmath.Int(p, 2)
	for i := 1; i <= n; i++ {
		sq := 4 * int64(i) * int64(i)
		prod.Mul(prod, bigmath.Ratio(p, sq, sq-1))
	}

	return prod, nil
}
