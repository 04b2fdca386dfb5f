// Package lvconst is a small numerical library that approximates the
// mathematical constants π and e with classic series, products and limits.
//
// 🚀 What is lvconst?
//
//	A collection of pure, deterministic approximations, each driven by one
//	truncation parameter and evaluated in extended precision (math/big):
//		• π: Archimedes, Madhava–Leibniz, Wallis, Bailey (BBP), Bellard, Ramanujan
//		• e: the (1 + 1/n)^n limit and the Σ 1/k! series
//		• convergence sweeps with squared-error vectors
//
// ✨ Why lvconst?
//
//   - Explicit failures – invalid parameters return sentinel errors
//     instead of NaN or ±Inf
//   - Extended precision – 128-bit mantissa by default, never below 64
//   - Pure functions – safe to evaluate concurrently, bit-identical repeats
//
// Everything is organized under these subpackages:
//
//	angle/       — degree/radian conversion
//	factorial/   — exact n! (uint64 and big.Int)
//	pi/          — π approximations and the Method registry
//	euler/       — e approximations
//	convergence/ — concurrent parameter sweeps and error analysis
//	cmd/approxpi — compare every π method at one parameter
//	cmd/expe     — approximate e from the command line
//
//	go get github.com/katalvlaran/lvconst/pi
package lvconst
