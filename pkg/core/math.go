package core

import "math"

// ClampCosine clamps a cosine to its valid range [-1, 1]
func ClampCosine(mu float64) float64 {
	return max(-1.0, min(1.0, mu))
}

// ClampDistance clamps a distance to be non-negative
func ClampDistance(d float64) float64 {
	return max(d, 0.0)
}

// SafeSqrt returns the square root of x, treating negative arguments as zero.
// Discriminants of near-tangent ray/sphere intersections can dip slightly
// below zero from rounding; those rays must behave as non-intersecting.
func SafeSqrt(x float64) float64 {
	return math.Sqrt(max(x, 0.0))
}

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves
// across [edge0, edge1]
func Smoothstep(edge0, edge1, x float64) float64 {
	t := max(0.0, min(1.0, (x-edge0)/(edge1-edge0)))
	return t * t * (3.0 - 2.0*t)
}
