package pi

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lvconst/angle"
	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Archimedes estimates π from the perimeter of a regular n-gon inscribed in
// the unit-diameter circle: n·sin(180°/n), the angle converted with
// angle.Deg2Rad.
//
// The sine has no extended-precision counterpart in math/big, so the
// estimate is evaluated in float64 and then lifted into opts.Precision.
// Its accuracy therefore saturates near 1e-16 however large n grows.
//
// n need not be an integer. Convergence is monotone for n ≥ 1 with error
// ≈ π³/(6n²).
//
// Errors:
//   - ErrBadPrecision     — opts.Precision below MinPrecision.
//   - ErrInvalidParameter — n ≤ 0, NaN or ±Inf (unless AllowDegenerate).
//   - ErrNonFinite        — the float64 evaluation yielded NaN/±Inf
//     (n = 0 with AllowDegenerate: 180/0 → sin(+Inf) → NaN).
func Archimedes(n float64, opts *Options) (*big.Float, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, methodErrorf(MethodArchimedes, n, err)
	}
	if !o.AllowDegenerate && (math.IsNaN(n) || n <= 0 || math.IsInf(n, 1)) {
		return nil, methodErrorf(MethodArchimedes, n, ErrInvalidParameter)
	}

	v := n * math.Sin(angle.Deg2Rad(180/n))
	z, ok := bigmath.FromFloat64(o.Precision, v)
	if !ok {
		return nil, methodErrorf(MethodArchimedes, n, ErrNonFinite)
	}

	return z, nil
}
