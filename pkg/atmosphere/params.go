// Package atmosphere reconstructs sky radiance, aerial perspective and
// surface irradiance from precomputed radiative-transfer lookup tables.
//
// The tables themselves are produced by an external baker; this package owns
// the coordinate parameterizations the tables are defined over and the
// runtime queries that combine table samples into radiance values. All
// distances are in the same unit as the configured planet radii (km for the
// Earth defaults).
package atmosphere

import (
	"fmt"
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
)

// DensityProfileLayer describes one layer of an atmosphere density profile.
// Density at altitude h within the layer is
//
//	ExpTerm*exp(ExpScale*h) + LinearTerm*h + ConstantTerm
//
// clamped to [0,1]. Width is ignored for the last layer of a profile, which
// always extends to the top atmosphere boundary.
type DensityProfileLayer struct {
	Width        float64
	ExpTerm      float64
	ExpScale     float64
	LinearTerm   float64
	ConstantTerm float64
}

// Density evaluates the layer density at the given altitude above the ground
func (l DensityProfileLayer) Density(altitude float64) float64 {
	density := l.ExpTerm*math.Exp(l.ExpScale*altitude) +
		l.LinearTerm*altitude + l.ConstantTerm
	return max(0.0, min(1.0, density))
}

// DensityProfile is a pair of density layers stacked bottom-to-top
type DensityProfile struct {
	Layers [2]DensityProfileLayer
}

// Density evaluates the profile density at the given altitude above the ground
func (p DensityProfile) Density(altitude float64) float64 {
	if altitude < p.Layers[0].Width {
		return p.Layers[0].Density(altitude)
	}
	return p.Layers[1].Density(altitude)
}

// Parameters describes a planetary atmosphere and the dimensions of the
// lookup tables precomputed for it. It is configured once and treated as
// immutable by every query.
type Parameters struct {
	// SolarIrradiance is the solar irradiance at the top of the atmosphere
	SolarIrradiance core.Vec3
	// SunAngularRadius is the sun's angular radius. The soft-shadow
	// approximation in TransmittanceToSun is only valid below 0.1 radians.
	SunAngularRadius float64
	// RayleighScattering is the scattering coefficient of air molecules at
	// the altitude where their density is maximum
	RayleighScattering core.Vec3
	// BottomRadius is the distance from the planet center to the ground
	BottomRadius float64
	// MieScattering is the scattering coefficient of aerosols at the
	// altitude where their density is maximum
	MieScattering core.Vec3
	// TopRadius is the distance from the planet center to the top of the
	// atmosphere
	TopRadius float64
	// MieExtinction is the extinction coefficient of aerosols at the
	// altitude where their density is maximum
	MieExtinction core.Vec3
	// MiePhaseFunctionG is the asymmetry parameter of the Cornette-Shanks
	// phase function for aerosols, in (-1, 1)
	MiePhaseFunctionG float64
	// GroundAlbedo is the average albedo of the ground
	GroundAlbedo core.Vec3
	// MuSMin is the cosine of the maximum sun zenith angle for which the
	// tables were precomputed (-0.2 is a good Earth value, covering sun
	// angles up to ~102 degrees)
	MuSMin float64
	// AbsorptionExtinction is the extinction coefficient of absorbing
	// molecules (e.g. ozone) at the altitude where their density is maximum
	AbsorptionExtinction core.Vec3

	// Lookup table dimensions. The scattering table is logically 4D; nu and
	// mu_s share the width axis, so its stored width is
	// ScatteringNuSize*ScatteringMuSSize.
	TransmittanceMuSize int
	TransmittanceRSize  int
	ScatteringRSize     int
	ScatteringMuSize    int
	ScatteringMuSSize   int
	ScatteringNuSize    int
	IrradianceMuSSize   int
	IrradianceRSize     int

	// RayleighDensity is the density profile of air molecules
	RayleighDensity DensityProfile
	// MieDensity is the density profile of aerosols
	MieDensity DensityProfile
	// AbsorptionDensity is the density profile of absorbing molecules
	AbsorptionDensity DensityProfile
}

// Earth returns the standard Earth atmosphere parameterization, with
// distances in km and coefficients per km
func Earth() *Parameters {
	return &Parameters{
		SolarIrradiance:    core.NewVec3(1.474, 1.850, 1.91198),
		SunAngularRadius:   0.004675,
		RayleighScattering: core.NewVec3(0.005802, 0.013558, 0.033100),
		BottomRadius:       6360.0,
		MieScattering:      core.NewVec3(0.003996, 0.003996, 0.003996),
		TopRadius:          6420.0,
		MieExtinction:      core.NewVec3(0.004440, 0.004440, 0.004440),
		MiePhaseFunctionG:  0.8,
		GroundAlbedo:       core.NewVec3(0.1, 0.1, 0.1),
		MuSMin:             -0.207912,
		AbsorptionExtinction: core.NewVec3(
			6.5e-4, 1.881e-3, 8.5e-5,
		),

		TransmittanceMuSize: 256,
		TransmittanceRSize:  64,
		ScatteringRSize:     32,
		ScatteringMuSize:    128,
		ScatteringMuSSize:   32,
		ScatteringNuSize:    8,
		IrradianceMuSSize:   64,
		IrradianceRSize:     16,

		RayleighDensity: DensityProfile{
			Layers: [2]DensityProfileLayer{
				{},
				{ExpTerm: 1.0, ExpScale: -0.125},
			},
		},
		MieDensity: DensityProfile{
			Layers: [2]DensityProfileLayer{
				{},
				{ExpTerm: 1.0, ExpScale: -0.833333},
			},
		},
		// Ozone density approximated as a tent function peaking at 25km
		AbsorptionDensity: DensityProfile{
			Layers: [2]DensityProfileLayer{
				{Width: 25.0, LinearTerm: 0.066667, ConstantTerm: -0.666667},
				{LinearTerm: -0.066667, ConstantTerm: 2.666667},
			},
		},
	}
}

// Validate rejects malformed configurations. Queries clamp their numeric
// inputs but do not re-check the configuration, so callers should validate
// once before building or sampling any table.
func (p *Parameters) Validate() error {
	if p.BottomRadius <= 0 {
		return fmt.Errorf("bottom radius must be positive, got %g", p.BottomRadius)
	}
	if p.TopRadius <= p.BottomRadius {
		return fmt.Errorf("top radius (%g) must exceed bottom radius (%g)",
			p.TopRadius, p.BottomRadius)
	}
	if p.SunAngularRadius < 0 || p.SunAngularRadius >= 0.1 {
		return fmt.Errorf("sun angular radius must be in [0, 0.1), got %g",
			p.SunAngularRadius)
	}
	if p.MiePhaseFunctionG <= -1 || p.MiePhaseFunctionG >= 1 {
		return fmt.Errorf("mie phase asymmetry must be in (-1, 1), got %g",
			p.MiePhaseFunctionG)
	}
	if p.MuSMin < -1 || p.MuSMin >= 1 {
		return fmt.Errorf("mu_s_min must be in [-1, 1), got %g", p.MuSMin)
	}
	for _, size := range []struct {
		name  string
		value int
	}{
		{"transmittance mu", p.TransmittanceMuSize},
		{"transmittance r", p.TransmittanceRSize},
		{"scattering r", p.ScatteringRSize},
		{"scattering mu_s", p.ScatteringMuSSize},
		{"irradiance mu_s", p.IrradianceMuSSize},
		{"irradiance r", p.IrradianceRSize},
	} {
		if size.value < 1 {
			return fmt.Errorf("%s texture size must be at least 1, got %d",
				size.name, size.value)
		}
	}
	// The mu axis is split into ground and sky halves
	if p.ScatteringMuSize < 2 || p.ScatteringMuSize%2 != 0 {
		return fmt.Errorf("scattering mu texture size must be a positive even number, got %d",
			p.ScatteringMuSize)
	}
	// Sampling interpolates between adjacent nu blocks
	if p.ScatteringNuSize < 2 {
		return fmt.Errorf("scattering nu texture size must be at least 2, got %d",
			p.ScatteringNuSize)
	}
	for _, profile := range []struct {
		name  string
		value DensityProfile
	}{
		{"rayleigh", p.RayleighDensity},
		{"mie", p.MieDensity},
		{"absorption", p.AbsorptionDensity},
	} {
		if profile.value.Layers[0].Width < 0 {
			return fmt.Errorf("%s density layer width must be non-negative, got %g",
				profile.name, profile.value.Layers[0].Width)
		}
	}
	return nil
}
