// Package pi approximates π with classic truncated series, products and
// polygon limits, each evaluated in extended precision.
//
// 🚀 What is in here?
//
//	Six interchangeable methods, one truncation parameter each:
//	  • Archimedes — n·sin(π/n), the inscribed n-gon (float64 sine)
//	  • Madhava    — √12 · Σ (−3)^−k / (2k+1)
//	  • Wallis     — 2 · Π (2n)²/((2n−1)(2n+1))
//	  • Bailey     — the Bailey–Borwein–Plouffe hexadecimal series
//	  • Bellard    — Bellard's faster BBP-style series (≈3 hex digits/term)
//	  • Ramanujan  — 1/π = (2√2/9801) Σ (4k)!(1103+26390k)/((k!)⁴ 396^{4k})
//
// ✨ Key features:
//   - pure functions: same input + options ⇒ bit-identical *big.Float
//   - configurable precision (default 128 bits, never below 64)
//   - explicit validation: bad parameters return ErrInvalidParameter
//     instead of silently producing NaN or ±Inf
//   - AllowDegenerate restores the permissive garbage-in/garbage-out
//     behavior (empty sums, empty products) for parity experiments
//   - Method registry for drivers: ParseMethod, Methods, Approximate
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvconst/pi"
//
//	opts := pi.DefaultOptions()
//	opts.Precision = 256
//
//	v, err := pi.Bellard(10, &opts)
//	if err != nil {
//	  // ErrInvalidParameter, ErrBadPrecision or ErrNonFinite
//	}
//	fmt.Println(v.Text('f', 60))
//
// Convergence (error after K terms):
//
//   - Archimedes: O(1/n²)        Madhava:   O(3^−K)
//   - Wallis:     O(1/N)         Bailey:    O(16^−K)
//   - Bellard:    O(1024^−K)     Ramanujan: O(10^−8K)
//
// Complexity: every method is O(K) big.Float operations (Ramanujan uses
// exact big.Int factorials, so its terms grow in size with K).
package pi
