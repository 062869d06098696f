package atmosphere

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

// The scattering table is logically 4D over (r, mu, mu_s, nu) but stored as
// a 3D texture: nu is quantized into ScatteringNuSize whole-texel blocks that
// share the width axis with mu_s. Sampling therefore splits the nu coordinate
// into an integer block index and a fractional blend between two adjacent
// blocks; see Scattering.

// ScatteringCoords holds the normalized table coordinates of one scattering
// sample. NuCoord and MuSCoord are combined into the stored texture's width
// axis at fetch time.
type ScatteringCoords struct {
	NuCoord  float64
	MuSCoord float64
	MuCoord  float64
	RCoord   float64
}

// ScatteringCoordsFromRMuMuSNu encodes the physical parameters of a
// scattering sample into table coordinates. The mu axis is split at 0.5:
// the lower half parameterizes ground rays by their distance to the ground,
// the upper half parameterizes sky rays by their distance to the top
// boundary. The class tag selects the half and must match ClassifyRay(r, mu).
func (p *Parameters) ScatteringCoordsFromRMuMuSNu(r, mu, muS, nu float64, class RayClass) ScatteringCoords {
	// Distance to the top boundary for a horizontal ray at ground level
	h := core.SafeSqrt(p.TopRadius*p.TopRadius - p.BottomRadius*p.BottomRadius)
	// Distance to the horizon
	rho := core.SafeSqrt(r*r - p.BottomRadius*p.BottomRadius)
	uR := texture.CoordFromUnitRange(rho/h, p.ScatteringRSize)

	// Discriminant of the ray/ground-sphere intersection (see RayIntersectsGround)
	rMu := r * mu
	discriminant := rMu*rMu - r*r + p.BottomRadius*p.BottomRadius
	var uMu float64
	if class == GroundRay {
		// Distance to the ground, with extrema at (r,-1) and (r,mu_horizon)
		d := -rMu - core.SafeSqrt(discriminant)
		dMin := r - p.BottomRadius
		dMax := rho
		x := 0.0
		if dMax != dMin {
			x = (d - dMin) / (dMax - dMin)
		}
		uMu = 0.5 - 0.5*texture.CoordFromUnitRange(x, p.ScatteringMuSize/2)
	} else {
		// Distance to the top boundary, with extrema at (r,1) and (r,mu_horizon)
		d := -rMu + core.SafeSqrt(discriminant+h*h)
		dMin := p.TopRadius - r
		dMax := rho + h
		uMu = 0.5 + 0.5*texture.CoordFromUnitRange((d-dMin)/(dMax-dMin), p.ScatteringMuSize/2)
	}

	d := p.DistanceToTopBoundary(p.BottomRadius, muS)
	dMin := p.TopRadius - p.BottomRadius
	dMax := h
	a := (d - dMin) / (dMax - dMin)
	// Non-linear sun-angle compression: A maps mu_s = MuSMin to unit
	// coordinate 0, spending most of the axis on daylight sun angles
	bigA := -2.0 * p.MuSMin * p.BottomRadius / (dMax - dMin)
	uMuS := texture.CoordFromUnitRange(max(1.0-a/bigA, 0.0)/(1.0+a), p.ScatteringMuSSize)

	uNu := (nu + 1.0) / 2.0
	return ScatteringCoords{NuCoord: uNu, MuSCoord: uMuS, MuCoord: uMu, RCoord: uR}
}

// RMuMuSNuFromScatteringCoords decodes table coordinates back into the
// physical parameters of a scattering sample. Inverse of
// ScatteringCoordsFromRMuMuSNu; mu and mu_s are recovered from the stored
// distances via the law of cosines.
func (p *Parameters) RMuMuSNuFromScatteringCoords(c ScatteringCoords) (r, mu, muS, nu float64, class RayClass) {
	h := core.SafeSqrt(p.TopRadius*p.TopRadius - p.BottomRadius*p.BottomRadius)
	rho := h * texture.UnitRangeFromCoord(c.RCoord, p.ScatteringRSize)
	r = math.Sqrt(rho*rho + p.BottomRadius*p.BottomRadius)

	if c.MuCoord < 0.5 {
		// Lower half: recover mu from the distance to the ground
		dMin := r - p.BottomRadius
		dMax := rho
		d := dMin + (dMax-dMin)*texture.UnitRangeFromCoord(
			1.0-2.0*c.MuCoord, p.ScatteringMuSize/2)
		if d == 0 {
			mu = -1.0
		} else {
			mu = core.ClampCosine(-(rho*rho + d*d) / (2.0 * r * d))
		}
		class = GroundRay
	} else {
		// Upper half: recover mu from the distance to the top boundary
		dMin := p.TopRadius - r
		dMax := rho + h
		d := dMin + (dMax-dMin)*texture.UnitRangeFromCoord(
			2.0*c.MuCoord-1.0, p.ScatteringMuSize/2)
		if d == 0 {
			mu = 1.0
		} else {
			mu = core.ClampCosine((h*h - rho*rho - d*d) / (2.0 * r * d))
		}
		class = SkyRay
	}

	xMuS := texture.UnitRangeFromCoord(c.MuSCoord, p.ScatteringMuSSize)
	dMin := p.TopRadius - p.BottomRadius
	dMax := h
	bigA := -2.0 * p.MuSMin * p.BottomRadius / (dMax - dMin)
	a := (bigA - xMuS*bigA) / (1.0 + xMuS*bigA)
	d := dMin + min(a, bigA)*(dMax-dMin)
	if d == 0 {
		muS = 1.0
	} else {
		muS = core.ClampCosine((h*h - d*d) / (2.0 * p.BottomRadius * d))
	}

	nu = core.ClampCosine(c.NuCoord*2.0 - 1.0)
	return r, mu, muS, nu, class
}

// RMuMuSNuFromFragCoord decodes a raw scattering-texture fragment coordinate
// (in texels) into physical parameters, undoing the nu/mu_s width packing.
// nu is clamped to the range achievable for the decoded mu and mu_s, since
// the view/sun angle is bounded once both zenith angles are fixed.
func (p *Parameters) RMuMuSNuFromFragCoord(x, y, z float64) (r, mu, muS, nu float64, class RayClass) {
	fragNu := math.Floor(x / float64(p.ScatteringMuSSize))
	fragMuS := math.Mod(x, float64(p.ScatteringMuSSize))
	coords := ScatteringCoords{
		NuCoord:  fragNu / float64(p.ScatteringNuSize-1),
		MuSCoord: fragMuS / float64(p.ScatteringMuSSize),
		MuCoord:  y / float64(p.ScatteringMuSize),
		RCoord:   z / float64(p.ScatteringRSize),
	}
	r, mu, muS, nu, class = p.RMuMuSNuFromScatteringCoords(coords)
	nuMin := mu*muS - math.Sqrt((1.0-mu*mu)*(1.0-muS*muS))
	nuMax := mu*muS + math.Sqrt((1.0-mu*mu)*(1.0-muS*muS))
	nu = max(nuMin, min(nuMax, nu))
	return r, mu, muS, nu, class
}

// sampleScattering performs the packed-4D read: two trilinear fetches from
// adjacent nu blocks blended by the fractional nu coordinate
func (p *Parameters) sampleScattering(tex *texture.Texture3D, c ScatteringCoords) texture.Texel {
	texCoordX := c.NuCoord * float64(p.ScatteringNuSize-1)
	texX := math.Floor(texCoordX)
	lerp := texCoordX - texX
	u0 := (texX + c.MuSCoord) / float64(p.ScatteringNuSize)
	u1 := (texX + 1.0 + c.MuSCoord) / float64(p.ScatteringNuSize)
	s0 := tex.Sample(u0, c.MuCoord, c.RCoord)
	s1 := tex.Sample(u1, c.MuCoord, c.RCoord)
	return s0.Multiply(1.0 - lerp).Add(s1.Multiply(lerp))
}

// Scattering samples a scattering table at the given physical parameters,
// returning the RGB value without phase weighting
func (p *Parameters) Scattering(tex *texture.Texture3D, r, mu, muS, nu float64, class RayClass) core.Vec3 {
	coords := p.ScatteringCoordsFromRMuMuSNu(r, mu, muS, nu, class)
	return p.sampleScattering(tex, coords).RGB
}

// ExtrapolateSingleMie recovers the single-mie-scattering value from a
// combined sample whose alpha channel packs the mie/rayleigh ratio of the
// red channel. Interpolation rounding can drive the rayleigh red channel to
// zero or slightly negative for very short view rays; those samples carry no
// recoverable mie term.
func (p *Parameters) ExtrapolateSingleMie(rgb core.Vec3, alpha float64) core.Vec3 {
	if rgb.X <= 0.0 {
		return core.Vec3{}
	}
	return rgb.Multiply(alpha / rgb.X * (p.RayleighScattering.X / p.MieScattering.X)).
		MultiplyVec(p.MieScattering.DivideVec(p.RayleighScattering))
}

// CombinedScattering samples the combined multiple-scattering table,
// returning the total scattering and the single-mie term extrapolated from
// the packed alpha channel
func (p *Parameters) CombinedScattering(tex *texture.Texture3D, r, mu, muS, nu float64, class RayClass) (scattering, singleMie core.Vec3) {
	coords := p.ScatteringCoordsFromRMuMuSNu(r, mu, muS, nu, class)
	sample := p.sampleScattering(tex, coords)
	return sample.RGB, p.ExtrapolateSingleMie(sample.RGB, sample.Alpha)
}

// ScatteringForOrder samples the scattering of a given order: order 1
// recombines the separate single-rayleigh and single-mie tables through
// their phase functions, higher orders read the multiple-scattering table
// directly (its phase weighting is already baked in)
func (p *Parameters) ScatteringForOrder(
	singleRayleigh, singleMie, multiple *texture.Texture3D,
	r, mu, muS, nu float64, class RayClass, order int) core.Vec3 {
	if order == 1 {
		rayleigh := p.Scattering(singleRayleigh, r, mu, muS, nu, class)
		mie := p.Scattering(singleMie, r, mu, muS, nu, class)
		return rayleigh.Multiply(RayleighPhase(nu)).
			Add(mie.Multiply(MiePhase(p.MiePhaseFunctionG, nu)))
	}
	return p.Scattering(multiple, r, mu, muS, nu, class)
}
