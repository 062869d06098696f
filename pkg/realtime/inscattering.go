package realtime

import (
	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

// mieExtractionThreshold guards the division in the mie extrapolation
// against near-zero rayleigh red channels produced by interpolation
const mieExtractionThreshold = 1e-4

// PhaseRayleigh is the cheap rayleigh phase approximation used by the fast
// path (not normalized like the full model's RayleighPhase)
func PhaseRayleigh(cosTheta float64) float64 {
	return 0.8 * (1.4 + 0.5*cosTheta)
}

// PhaseMie evaluates the Cornette-Shanks aerosol phase function with
// asymmetry g for scattering angle cosine cosTheta
func PhaseMie(cosTheta, g float64) float64 {
	return (3 * (1 - g*g) / (2 * (2 + g*g))) *
		(1 + cosTheta*cosTheta) / pow15(1+g*g-2*g*cosTheta)
}

func pow15(x float64) float64 {
	sqrtX := core.SafeSqrt(x)
	return x * sqrtX
}

// Inscattering samples the fast-path inscattering table for a viewer at the
// given height and returns the phase-weighted inscattered radiance. The
// table's alpha channel packs the mie/rayleigh ratio of the red channel,
// from which the mie term is extrapolated.
func (c *Constants) Inscattering(
	lut *texture.Texture3D, view, zenith core.Vec3,
	height float64, sunDirection core.Vec3, g float64) core.Vec3 {

	cosView := view.Dot(zenith)
	cosSun := sunDirection.Dot(zenith)
	sample := lut.Sample(
		c.HeightToCoord(height),
		c.CosViewToCoord(height, cosView),
		CosSunToCoord(cosSun),
	)

	rayleigh := sample.RGB
	var mie core.Vec3
	if sample.RGB.X >= mieExtractionThreshold {
		mie = rayleigh.Multiply(sample.Alpha / sample.RGB.X * c.BetaR.X / c.BetaM).
			MultiplyVec(core.NewVec3(c.BetaM, c.BetaM, c.BetaM).DivideVec(c.BetaR))
	}

	cosTheta := view.Dot(sunDirection)
	return rayleigh.Multiply(PhaseRayleigh(cosTheta)).
		Add(mie.Multiply(PhaseMie(cosTheta, g)))
}
