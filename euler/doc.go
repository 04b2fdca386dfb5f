// Package euler approximates Euler's number e.
//
// Two methods are provided:
//
//	Limit(n)  — (1 + 1/n)^n, the compound-interest limit. Error ≈ e/(2n).
//	Series(k) — Σ_{j=0}^{k} 1/j!, the Taylor series of exp at 1.
//
// Options mirror package pi: a working precision (default 128 bits, at
// least 64) and AllowDegenerate to switch validation off.
package euler
