package atmosphere

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

// SkyRadiance returns the radiance arriving at the camera along viewRay from
// the sky, and the transmittance along the ray (for compositing objects
// behind the atmosphere, e.g. stars or the sun disc).
//
// The camera may be inside or outside the atmosphere: a camera in space is
// advanced to the top boundary along the view ray before the lookup, and a
// camera in space whose ray misses the atmosphere entirely sees vacuum
// (zero radiance, unit transmittance).
func (p *Parameters) SkyRadiance(
	transmittanceTex *texture.Texture2D, scatteringTex *texture.Texture3D,
	camera, viewRay, sunDirection core.Vec3) (radiance, transmittance core.Vec3) {

	r := camera.Length()
	rmu := camera.Dot(viewRay)
	distanceToTop := -rmu - core.SafeSqrt(
		rmu*rmu-r*r+p.TopRadius*p.TopRadius)

	if r > p.TopRadius {
		if distanceToTop > 0 {
			// Viewer in space, ray enters the atmosphere: move the viewer to
			// the top boundary along the view ray
			camera = camera.Add(viewRay.Multiply(distanceToTop))
			r = p.TopRadius
			rmu += distanceToTop
		} else {
			// Ray never reaches the atmosphere
			return core.Vec3{}, core.NewVec3(1.0, 1.0, 1.0)
		}
	}

	mu := rmu / r
	muS := camera.Dot(sunDirection) / r
	nu := viewRay.Dot(sunDirection)
	class := p.ClassifyRay(r, mu)

	if class == GroundRay {
		transmittance = core.Vec3{}
	} else {
		transmittance = p.TransmittanceToTop(transmittanceTex, r, mu)
	}
	scattering, singleMie := p.CombinedScattering(scatteringTex, r, mu, muS, nu, class)
	radiance = scattering.Multiply(RayleighPhase(nu)).
		Add(singleMie.Multiply(MiePhase(p.MiePhaseFunctionG, nu)))
	return radiance, transmittance
}

// SkyRadianceToPoint returns the radiance scattered towards the camera by
// the atmosphere between the camera and a surface point (aerial
// perspective), and the transmittance over that segment. The contribution is
// isolated by subtracting the scattering seen from the point, transported
// along the ray, from the scattering seen from the camera; no integration is
// performed at lookup time.
func (p *Parameters) SkyRadianceToPoint(
	transmittanceTex *texture.Texture2D, scatteringTex *texture.Texture3D,
	camera, viewRay, point, sunDirection core.Vec3) (radiance, transmittance core.Vec3) {

	r := camera.Length()
	rmu := camera.Dot(viewRay)
	distanceToTop := -rmu - core.SafeSqrt(
		rmu*rmu-r*r+p.TopRadius*p.TopRadius)

	if r > p.TopRadius {
		if distanceToTop > 0 {
			camera = camera.Add(viewRay.Multiply(distanceToTop))
			r = p.TopRadius
			rmu += distanceToTop
		} else {
			return core.Vec3{}, core.NewVec3(1.0, 1.0, 1.0)
		}
	}

	mu := rmu / r
	muS := camera.Dot(sunDirection) / r
	nu := viewRay.Dot(sunDirection)
	d := point.Subtract(camera).Length()
	class := p.ClassifyRay(r, mu)

	transmittance = p.Transmittance(transmittanceTex, r, mu, d, class)
	scattering, singleMie := p.CombinedScattering(scatteringTex, r, mu, muS, nu, class)

	if !math.IsInf(d, 0) {
		// Transport the parameters to the far end of the segment. This is a
		// coordinate change along the same ray, not a new intersection test.
		rp := p.ClampRadius(math.Sqrt(d*d + 2.0*r*mu*d + r*r))
		mup := (r*mu + d) / rp
		muSp := (r*muS + d*nu) / rp

		scatteringP, singleMieP := p.CombinedScattering(scatteringTex, rp, mup, muSp, nu, class)

		// Scattering between camera and point is the difference of the two
		// lookups, with the far lookup attenuated by the segment transmittance
		scattering = scattering.Subtract(transmittance.MultiplyVec(scatteringP))
		singleMie = singleMie.Subtract(transmittance.MultiplyVec(singleMieP))
		singleMie = p.ExtrapolateSingleMie(scattering, singleMie.X)

		// Fade the mie term out as the sun drops below the horizon to hide a
		// subtraction artifact near mu_s = 0
		singleMie = singleMie.Multiply(core.Smoothstep(0.0, 0.01, muS))
	}

	radiance = scattering.Multiply(RayleighPhase(nu)).
		Add(singleMie.Multiply(MiePhase(p.MiePhaseFunctionG, nu)))
	return radiance, transmittance
}

// SunAndSkyIrradiance returns the direct sun irradiance and the indirect sky
// irradiance incident on a surface point with the given normal. The sky term
// is exact for a horizontal surface and blends towards half the horizontal
// value as the surface tilts away from the local zenith.
func (p *Parameters) SunAndSkyIrradiance(
	transmittanceTex, irradianceTex *texture.Texture2D,
	point, normal, sunDirection core.Vec3) (sun, sky core.Vec3) {

	r := point.Length()
	muS := point.Dot(sunDirection) / r

	sky = p.Irradiance(irradianceTex, r, muS).
		Multiply((1.0 + normal.Dot(point)/r) * 0.5)

	sun = p.SolarIrradiance.
		MultiplyVec(p.TransmittanceToSun(transmittanceTex, r, muS)).
		Multiply(max(normal.Dot(sunDirection), 0.0))
	return sun, sky
}
