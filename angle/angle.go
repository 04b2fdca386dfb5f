// Package angle converts between degrees and radians.
//
// Both helpers use math.Pi as the reference value of π, the same constant
// acos(-1) yields in float64. They are float64-only: the Archimedes
// estimate in package pi evaluates its sine in float64 anyway.
package angle

import "math"

// degPerRad is the number of degrees in one radian's worth of π.
const degPerRad = 180.0

// Deg2Rad converts d degrees to radians: d·π/180.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / degPerRad
}

// Rad2Deg converts r radians to degrees: r·180/π.
func Rad2Deg(r float64) float64 {
	return r * degPerRad / math.Pi
}
