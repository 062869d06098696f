package atmosphere

import (
	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

// The transmittance table is parameterized over (r, mu) through the distance
// to the top atmosphere boundary rather than mu directly, which concentrates
// resolution near the horizon where transmittance varies fastest.

// TransmittanceUV encodes (r, mu) into normalized transmittance table
// coordinates. Requires r in [bottom, top] and mu in [-1, 1].
func (p *Parameters) TransmittanceUV(r, mu float64) (u, v float64) {
	// Distance to the top boundary for a horizontal ray at ground level
	h := core.SafeSqrt(p.TopRadius*p.TopRadius - p.BottomRadius*p.BottomRadius)
	// Distance to the horizon
	rho := core.SafeSqrt(r*r - p.BottomRadius*p.BottomRadius)
	// Distance to the top boundary for (r, mu), with its extrema over all mu
	// reached at (r, 1) and (r, mu_horizon)
	d := p.DistanceToTopBoundary(r, mu)
	dMin := p.TopRadius - r
	dMax := rho + h
	xMu := (d - dMin) / (dMax - dMin)
	xR := rho / h
	return texture.CoordFromUnitRange(xMu, p.TransmittanceMuSize),
		texture.CoordFromUnitRange(xR, p.TransmittanceRSize)
}

// RMuFromTransmittanceUV decodes normalized transmittance table coordinates
// back into (r, mu). Inverse of TransmittanceUV.
func (p *Parameters) RMuFromTransmittanceUV(u, v float64) (r, mu float64) {
	xMu := texture.UnitRangeFromCoord(u, p.TransmittanceMuSize)
	xR := texture.UnitRangeFromCoord(v, p.TransmittanceRSize)
	h := core.SafeSqrt(p.TopRadius*p.TopRadius - p.BottomRadius*p.BottomRadius)
	rho := h * xR
	r = core.SafeSqrt(rho*rho + p.BottomRadius*p.BottomRadius)
	dMin := p.TopRadius - r
	dMax := rho + h
	d := dMin + xMu*(dMax-dMin)
	if d == 0 {
		return r, 1.0
	}
	mu = core.ClampCosine((h*h - rho*rho - d*d) / (2.0 * r * d))
	return r, mu
}

// TransmittanceToTop samples the transmittance from radius r to the top
// atmosphere boundary along a direction with zenith cosine mu
func (p *Parameters) TransmittanceToTop(tex *texture.Texture2D, r, mu float64) core.Vec3 {
	u, v := p.TransmittanceUV(r, mu)
	return tex.Sample(u, v)
}

// Transmittance samples the transmittance over a segment of length d starting
// at (r, mu). It is computed as the ratio of two top-boundary transmittances;
// for ground rays both lookups use the mirrored direction so neither reaches
// the ill-conditioned region behind the horizon. The result is clamped to 1
// per channel to cancel rounding in the quotient.
func (p *Parameters) Transmittance(tex *texture.Texture2D, r, mu, d float64, class RayClass) core.Vec3 {
	rd := p.ClampRadius(core.SafeSqrt(d*d + 2.0*r*mu*d + r*r))
	mud := core.ClampCosine((r*mu + d) / rd)

	var quotient core.Vec3
	if class == GroundRay {
		quotient = p.TransmittanceToTop(tex, rd, -mud).
			DivideVec(p.TransmittanceToTop(tex, r, -mu))
	} else {
		quotient = p.TransmittanceToTop(tex, r, mu).
			DivideVec(p.TransmittanceToTop(tex, rd, mud))
	}
	return quotient.MinVec(core.NewVec3(1.0, 1.0, 1.0))
}

// TransmittanceToSun samples the transmittance from radius r towards the sun
// at zenith cosine muS, smoothly attenuated as the sun disc crosses the
// horizon. Valid for sun angular radii below 0.1 radians.
func (p *Parameters) TransmittanceToSun(tex *texture.Texture2D, r, muS float64) core.Vec3 {
	sinThetaH := p.BottomRadius / r
	cosThetaH := -core.SafeSqrt(1.0 - sinThetaH*sinThetaH)
	occlusion := core.Smoothstep(
		-sinThetaH*p.SunAngularRadius,
		sinThetaH*p.SunAngularRadius,
		muS-cosThetaH,
	)
	return p.TransmittanceToTop(tex, r, muS).Multiply(occlusion)
}
