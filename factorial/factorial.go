// Package factorial computes n! exactly, either in a uint64 with overflow
// detection or as an arbitrary-size big.Int.
//
// Table backs the k! listing of cmd/expe -terms. The series in packages pi
// and euler advance their terms by ratios instead and do not import it.
package factorial

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNegative is returned for n < 0; the factorial is defined on ℕ only.
	ErrNegative = errors.New("factorial: negative argument")

	// ErrOverflow is returned by Factorial when n! does not fit in a uint64.
	ErrOverflow = errors.New("factorial: result overflows uint64")
)

// MaxUint64 is the largest n for which n! fits in a uint64 (20! ≈ 2.43e18).
const MaxUint64 = 20

// Factorial returns n! as a uint64. By definition 0! = 1.
//
// Errors:
//   - ErrNegative — n < 0.
//   - ErrOverflow — n > MaxUint64.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrNegative)
	}
	if n > MaxUint64 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}

	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f, nil
}

// Big returns n! as a freshly allocated big.Int.
// Returns ErrNegative for n < 0.
func Big(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Big(%d): %w", n, ErrNegative)
	}
	if n < 2 {
		return big.NewInt(1), nil
	}

	return new(big.Int).MulRange(1, int64(n)), nil
}

// Table returns [0!, 1!, …, n!] as big.Ints, computed incrementally with
// n multiplications. Memory grows as O(n² log n); keep n small.
// Returns ErrNegative for n < 0.
func Table(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Table(%d): %w", n, ErrNegative)
	}

	out := make([]*big.Int, n+1)
	out[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		out[i] = new(big.Int).Mul(out[i-1], big.NewInt(int64(i)))
	}

	return out, nil
}
