// Package realtime implements the simplified single-exponential-layer
// atmosphere variant: a height/cos-view/cos-sun parameterized inscattering
// table and a depth-compressed aerial-perspective volume, sized for per-frame
// evaluation. It shares the table machinery of pkg/texture with the full
// model in pkg/atmosphere but uses its own, smaller parameterization.
package realtime

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Constants is the reduced atmosphere description consumed by the fast-path
// mapping and inscattering functions: a single exponential density layer per
// particle type. Distances are in meters.
type Constants struct {
	// HAtm is the thickness of the atmosphere
	HAtm float64
	// RPlanet is the planet radius
	RPlanet float64
	// Hr and Hm are the rayleigh and mie density scale heights
	Hr, Hm float64
	// BetaR is the rayleigh scattering coefficient at sea level
	BetaR core.Vec3
	// BetaM is the (wavelength-independent) mie scattering coefficient
	BetaM float64
	// BetaEO is the ozone-like absorption extinction coefficient
	BetaEO core.Vec3
	// BetaEM is the mie extinction coefficient
	BetaEM float64
}

// EarthConstants returns the reduced Earth atmosphere description
func EarthConstants() *Constants {
	betaM := 2.2e-5
	return &Constants{
		HAtm:    80000.0,
		RPlanet: 6371e3,
		Hr:      8000.0,
		Hm:      1200.0,
		BetaR:   core.NewVec3(5.8e-6, 1.35e-5, 3.31e-5),
		BetaM:   betaM,
		BetaEO:  core.NewVec3(6.5e-7, 1.881e-6, 8.5e-8),
		BetaEM:  betaM / 0.9,
	}
}

// DensityR evaluates the rayleigh particle density at altitude h
func (c *Constants) DensityR(h float64) float64 {
	return math.Exp(-h / c.Hr)
}

// DensityM evaluates the mie particle density at altitude h
func (c *Constants) DensityM(h float64) float64 {
	return math.Exp(-h / c.Hm)
}

// DrawParameters is the per-frame parameter block supplied to the real-time
// sky pass: everything that changes between frames, in the float32 layout
// the GPU path consumes.
type DrawParameters struct {
	InverseViewProj mgl32.Mat4
	Zenith          mgl32.Vec3
	Height          float32
	SunDirection    mgl32.Vec3
	MieAnisotropy   float32
	SolarIrradiance mgl32.Vec3
}

// RayFromNDC reconstructs the world-space view ray through a normalized
// device coordinate (x, y in [-1, 1]) using the inverse view-projection
// transform, the same way the fullscreen sky pass derives per-pixel rays
func (d *DrawParameters) RayFromNDC(x, y float32) core.Vec3 {
	near := d.InverseViewProj.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	far := d.InverseViewProj.Mul4x1(mgl32.Vec4{x, y, 1, 1})
	nearW := near.Vec3().Mul(1.0 / near.W())
	farW := far.Vec3().Mul(1.0 / far.W())
	dir := farW.Sub(nearW)
	return core.NewVec3(float64(dir.X()), float64(dir.Y()), float64(dir.Z())).Normalize()
}
