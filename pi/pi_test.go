package pi_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvconst/pi"
)

// absErr returns |v − π| at v's precision.
func absErr(v *big.Float) *big.Float {
	d := new(big.Float).SetPrec(v.Prec()).Sub(v, pi.Reference(v.Prec()))

	return d.Abs(d)
}

// below reports whether |v − π| < tol.
func below(v *big.Float, tol float64) bool {
	return absErr(v).Cmp(big.NewFloat(tol)) < 0
}

// f64 drops v to float64 for coarse comparisons.
func f64(v *big.Float) float64 {
	f, _ := v.Float64()

	return f
}

// PiSuite exercises every π method under defaults.
type PiSuite struct {
	suite.Suite
	opts pi.Options
}

func (s *PiSuite) SetupTest() {
	s.opts = pi.DefaultOptions()
}

// requireDecreasing evaluates m at each parameter and requires the absolute
// error to shrink strictly from one parameter to the next.
func (s *PiSuite) requireDecreasing(m pi.Method, params []float64) {
	var prev *big.Float
	for _, p := range params {
		v, err := pi.Approximate(m, p, &s.opts)
		require.NoError(s.T(), err, "%s(%v)", m, p)
		e := absErr(v)
		if prev != nil {
			require.Equal(s.T(), -1, e.Cmp(prev), "%s: error must shrink at %v", m, p)
		}
		prev = e
	}
}

// TestConvergence_Archimedes doubles the polygon sides from a triangle.
func (s *PiSuite) TestConvergence_Archimedes() {
	s.requireDecreasing(pi.MethodArchimedes, []float64{3, 6, 12, 24, 48, 96, 192, 384, 768})
}

// TestConvergence_Madhava walks K = 0..40.
func (s *PiSuite) TestConvergence_Madhava() {
	s.requireDecreasing(pi.MethodMadhava, seq(0, 40))
}

// TestConvergence_Wallis uses decades, the product being slow.
func (s *PiSuite) TestConvergence_Wallis() {
	s.requireDecreasing(pi.MethodWallis, []float64{0, 1, 2, 10, 100, 1000})
}

// TestConvergence_Bailey walks K = 0..20.
func (s *PiSuite) TestConvergence_Bailey() {
	s.requireDecreasing(pi.MethodBailey, seq(0, 20))
}

// TestConvergence_Bellard walks K = 0..8, above the 128-bit floor.
func (s *PiSuite) TestConvergence_Bellard() {
	s.requireDecreasing(pi.MethodBellard, seq(0, 8))
}

// TestConvergence_Ramanujan walks K = 0..3.
func (s *PiSuite) TestConvergence_Ramanujan() {
	s.requireDecreasing(pi.MethodRamanujan, seq(0, 3))
}

// TestWallis_ThousandTwoDigits: Wallis(1000) matches π to two decimals.
func (s *PiSuite) TestWallis_ThousandTwoDigits() {
	v, err := pi.Wallis(1000, &s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), below(v, 5e-3), "Wallis(1000) = %s", v.Text('f', 10))
	require.False(s.T(), below(v, 1e-4), "Wallis converges as 1/N, not faster")
}

// TestBellard_ThreeTenDigits: Bellard(3) matches π to ten decimals.
func (s *PiSuite) TestBellard_ThreeTenDigits() {
	v, err := pi.Bellard(3, &s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), below(v, 5e-11), "Bellard(3) = %s", v.Text('f', 20))
}

// TestMadhava_ZeroIsSqrt12 checks the single-term case bit for bit.
func (s *PiSuite) TestMadhava_ZeroIsSqrt12() {
	v, err := pi.Madhava(0, &s.opts)
	require.NoError(s.T(), err)

	p := s.opts.Precision
	want := new(big.Float).SetPrec(p).Sqrt(new(big.Float).SetPrec(p).SetInt64(12))
	require.Equal(s.T(), 0, v.Cmp(want))
}

// TestArchimedes_ZeroFails: n = 0 never yields a number.
func (s *PiSuite) TestArchimedes_ZeroFails() {
	_, err := pi.Archimedes(0, &s.opts)
	require.ErrorIs(s.T(), err, pi.ErrInvalidParameter)

	s.opts.AllowDegenerate = true
	_, err = pi.Archimedes(0, &s.opts)
	require.ErrorIs(s.T(), err, pi.ErrNonFinite)
}

// TestArchimedes_RejectsBadDomain covers negatives, NaN and +Inf.
func (s *PiSuite) TestArchimedes_RejectsBadDomain() {
	for _, n := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := pi.Archimedes(n, &s.opts)
		require.ErrorIs(s.T(), err, pi.ErrInvalidParameter, "Archimedes(%v)", n)
	}
}

// TestKnownValues pins a few closed forms.
func (s *PiSuite) TestKnownValues() {
	v, err := pi.Archimedes(6, &s.opts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 3.0, f64(v), 1e-15, "hexagon perimeter")

	v, err = pi.Wallis(0, &s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, f64(v), "empty product")

	v, err = pi.Wallis(1, &s.opts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 8.0/3.0, f64(v), 1e-15)

	v, err = pi.Bailey(0, &s.opts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 47.0/15.0, f64(v), 1e-15)

	v, err = pi.Madhava(1, &s.opts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), math.Sqrt(12)*8/9, f64(v), 1e-15)

	v, err = pi.Ramanujan(0, &s.opts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 9801/(2206*math.Sqrt2), f64(v), 1e-14)
}

// TestPurity: repeated calls are bit-identical for every method.
func (s *PiSuite) TestPurity() {
	for _, m := range pi.Methods() {
		a, err := pi.Approximate(m, 7, &s.opts)
		require.NoError(s.T(), err)
		b, err := pi.Approximate(m, 7, &s.opts)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 0, a.Cmp(b), "%s", m)
		require.Equal(s.T(), a.Text('p', 0), b.Text('p', 0), "%s mantissa", m)
	}
}

// TestNegativeIndex: rejected by default, empty sum/product when degenerate.
func (s *PiSuite) TestNegativeIndex() {
	for _, m := range pi.Methods()[1:] {
		_, err := pi.Approximate(m, -1, &s.opts)
		require.ErrorIs(s.T(), err, pi.ErrInvalidParameter, "%s(-1)", m)
	}

	s.opts.AllowDegenerate = true
	want := map[pi.Method]float64{
		pi.MethodMadhava: 0,
		pi.MethodWallis:  2,
		pi.MethodBailey:  0,
		pi.MethodBellard: 0,
	}
	for m, w := range want {
		v, err := pi.Approximate(m, -3, &s.opts)
		require.NoError(s.T(), err, "%s(-3)", m)
		require.Equal(s.T(), w, f64(v), "%s(-3)", m)
	}

	_, err := pi.Ramanujan(-1, &s.opts)
	require.ErrorIs(s.T(), err, pi.ErrNonFinite)
}

// TestPrecision: results carry the requested precision, and more bits
// buy more digits.
func (s *PiSuite) TestPrecision() {
	s.opts.Precision = 256
	for _, m := range pi.Methods() {
		v, err := pi.Approximate(m, 4, &s.opts)
		require.NoError(s.T(), err)
		require.Equal(s.T(), uint(256), v.Prec(), "%s", m)
	}

	v, err := pi.Bellard(30, &s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), below(v, 1e-70), "Bellard(30) at 256 bits")

	s.opts.Precision = 0
	v, err = pi.Bailey(3, &s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pi.DefaultPrecision, v.Prec(), "zero precision means default")

	v, err = pi.Bailey(3, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pi.DefaultPrecision, v.Prec(), "nil options mean default")
}

// TestLargeIndex_BoundedCost: indices far past the working precision cost
// a handful of terms and return the saturated value.
func (s *PiSuite) TestLargeIndex_BoundedCost() {
	for _, m := range pi.Methods()[1:] {
		if m == pi.MethodWallis {
			continue // product, no early exit
		}
		saturated, err := pi.Approximate(m, 100, &s.opts)
		require.NoError(s.T(), err, "%s(100)", m)

		var v *big.Float
		allocs := testing.AllocsPerRun(1, func() {
			v, err = pi.Approximate(m, 20000, &s.opts)
		})
		require.NoError(s.T(), err, "%s(20000)", m)
		require.Equal(s.T(), 0, v.Cmp(saturated), "%s(20000) vs %s(100)", m, m)
		require.Less(s.T(), allocs, 5000.0, "%s(20000) allocations", m)
	}

	v, err := pi.Ramanujan(1_000_000_000, &s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), below(v, 1e-36), "Ramanujan(1e9)")
}

// TestBadPrecision: every method rejects a mantissa narrower than 64 bits.
func (s *PiSuite) TestBadPrecision() {
	s.opts.Precision = 53
	for _, m := range pi.Methods() {
		_, err := pi.Approximate(m, 5, &s.opts)
		require.ErrorIs(s.T(), err, pi.ErrBadPrecision, "%s", m)
	}
}

func TestPiSuite(t *testing.T) {
	suite.Run(t, new(PiSuite))
}

// seq returns the float64 parameters from..to inclusive.
func seq(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, float64(i))
	}

	return out
}
