package atmosphere

import "github.com/df07/go-atmosphere/pkg/core"

// RayClass tags a ray (r, mu) by which atmosphere boundary it reaches first.
// Every table parameterization branches on this split; encoding and decoding
// must use the same class or coordinates land in the wrong texture half.
type RayClass int

const (
	// SkyRay leaves through the top atmosphere boundary
	SkyRay RayClass = iota
	// GroundRay hits the planet surface
	GroundRay
)

// ClampRadius clamps a radius to the atmosphere shell [bottom, top]
func (p *Parameters) ClampRadius(r float64) float64 {
	return max(p.BottomRadius, min(p.TopRadius, r))
}

// DistanceToTopBoundary returns the distance from radius r along a direction
// with zenith cosine mu to the top atmosphere boundary.
// Assumes r <= TopRadius, so the smaller positive root is the exit point.
func (p *Parameters) DistanceToTopBoundary(r, mu float64) float64 {
	discriminant := r*r*(mu*mu-1.0) + p.TopRadius*p.TopRadius
	return core.ClampDistance(-r*mu + core.SafeSqrt(discriminant))
}

// DistanceToBottomBoundary returns the distance from radius r along a
// direction with zenith cosine mu to the ground sphere.
// Assumes r >= BottomRadius and that the ray intersects the ground.
func (p *Parameters) DistanceToBottomBoundary(r, mu float64) float64 {
	discriminant := r*r*(mu*mu-1.0) + p.BottomRadius*p.BottomRadius
	return core.ClampDistance(-r*mu - core.SafeSqrt(discriminant))
}

// RayIntersectsGround reports whether the ray (r, mu) hits the planet
// surface before leaving the atmosphere
func (p *Parameters) RayIntersectsGround(r, mu float64) bool {
	return mu < 0.0 && r*r*(mu*mu-1.0)+p.BottomRadius*p.BottomRadius >= 0.0
}

// ClassifyRay tags the ray (r, mu) as a ground or sky ray
func (p *Parameters) ClassifyRay(r, mu float64) RayClass {
	if p.RayIntersectsGround(r, mu) {
		return GroundRay
	}
	return SkyRay
}

// DistanceToNearestBoundary returns the distance to whichever boundary the
// ray reaches first, as tagged by class
func (p *Parameters) DistanceToNearestBoundary(r, mu float64, class RayClass) float64 {
	if class == GroundRay {
		return p.DistanceToBottomBoundary(r, mu)
	}
	return p.DistanceToTopBoundary(r, mu)
}
