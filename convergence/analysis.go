package convergence

import (
	"math/big"

	"github.com/katalvlaran/lvconst/internal/bigmath"
)

// Monotone reports whether errs never increases. Equal neighbors are
// allowed: once a method reaches the precision floor its error stalls.
func Monotone(errs []float64) bool {
	for i := 1; i < len(errs); i++ {
		if errs[i] > errs[i-1] {
			return false
		}
	}

	return true
}

// FirstBelow returns the first index whose value is below tol, or -1.
func FirstBelow(errs []float64, tol float64) int {
	for i, e := range errs {
		if e < tol {
			return i
		}
	}

	return -1
}

// SquaredError returns (approx − ref)² at approx's precision.
func SquaredError(approx, ref *big.Float) *big.Float {
	return bigmath.SquaredError(approx, ref)
}

// Digits returns −log10|approx − ref|, the count of matching decimals.
// An exact match yields +Inf.
func Digits(approx, ref *big.Float) float64 {
	return bigmath.Digits(approx, ref)
}
