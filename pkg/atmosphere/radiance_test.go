package atmosphere

import (
	"math"
	"testing"

	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

func testTables(p *Parameters) (*texture.Texture2D, *texture.Texture3D) {
	transmittanceTex := constantTexture2D(
		p.TransmittanceMuSize, p.TransmittanceRSize, core.NewVec3(0.9, 0.9, 0.9))
	scatteringTex := constantScatteringTable(p, texture.Texel{
		RGB: core.NewVec3(0.2, 0.3, 0.5), Alpha: 0.04,
	})
	return transmittanceTex, scatteringTex
}

func TestSkyRadianceVacuum(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	// Camera far outside the atmosphere, looking directly away from the planet
	camera := core.NewVec3(0, 0, 2*p.TopRadius)
	viewRay := core.NewVec3(0, 0, 1)
	sun := core.NewVec3(0, 0, 1)

	radiance, transmittance := p.SkyRadiance(transmittanceTex, scatteringTex, camera, viewRay, sun)
	if radiance.Length() != 0 {
		t.Errorf("expected zero radiance, got %v", radiance)
	}
	if transmittance != core.NewVec3(1, 1, 1) {
		t.Errorf("expected unit transmittance, got %v", transmittance)
	}
}

func TestSkyRadianceFromSpaceEntersAtmosphere(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	// Camera in space looking straight down: the viewer is advanced to the
	// top boundary and the ray then hits the ground, so transmittance is zero
	camera := core.NewVec3(0, 0, 2*p.TopRadius)
	viewRay := core.NewVec3(0, 0, -1)
	sun := core.NewVec3(0, 0, 1)

	radiance, transmittance := p.SkyRadiance(transmittanceTex, scatteringTex, camera, viewRay, sun)
	if transmittance.Length() != 0 {
		t.Errorf("expected zero transmittance for ground-blocked ray, got %v", transmittance)
	}
	if math.IsNaN(radiance.X) || radiance.Length() == 0 {
		t.Errorf("expected finite non-zero inscattering, got %v", radiance)
	}
}

func TestSkyRadianceInsideAtmosphere(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	camera := core.NewVec3(0, 0, p.BottomRadius+1)
	viewRay := core.NewVec3(0, 0, 1)
	sun := core.NewVec3(0, 0, 1)

	radiance, transmittance := p.SkyRadiance(transmittanceTex, scatteringTex, camera, viewRay, sun)

	// Sky ray: transmittance comes straight from the table
	if transmittance.Subtract(core.NewVec3(0.9, 0.9, 0.9)).Length() > 1e-9 {
		t.Errorf("expected table transmittance, got %v", transmittance)
	}

	// On a constant table, the result is the phase-weighted combination of
	// the stored scattering and its extrapolated mie term
	nu := viewRay.Dot(sun)
	scattering := core.NewVec3(0.2, 0.3, 0.5)
	singleMie := p.ExtrapolateSingleMie(scattering, 0.04)
	expected := scattering.Multiply(RayleighPhase(nu)).
		Add(singleMie.Multiply(MiePhase(p.MiePhaseFunctionG, nu)))
	if radiance.Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", expected, radiance)
	}
}

func TestSkyRadianceToPointAtCamera(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	camera := core.NewVec3(0, 0, p.BottomRadius+2)
	viewRay := core.NewVec3(1, 0, 0)
	sun := core.NewVec3(0, 0, 1)

	// A zero-length segment scatters nothing
	radiance, transmittance := p.SkyRadianceToPoint(
		transmittanceTex, scatteringTex, camera, viewRay, camera, sun)
	if radiance.Length() > 1e-9 {
		t.Errorf("expected zero radiance for empty segment, got %v", radiance)
	}
	if transmittance.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
		t.Errorf("expected unit transmittance for empty segment, got %v", transmittance)
	}
}

func TestSkyRadianceToPointVacuum(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	camera := core.NewVec3(0, 0, 3*p.TopRadius)
	viewRay := core.NewVec3(0, 0, 1)
	point := camera.Add(viewRay.Multiply(100))
	sun := core.NewVec3(1, 0, 0)

	radiance, transmittance := p.SkyRadianceToPoint(
		transmittanceTex, scatteringTex, camera, viewRay, point, sun)
	if radiance.Length() != 0 {
		t.Errorf("expected zero radiance, got %v", radiance)
	}
	if transmittance != core.NewVec3(1, 1, 1) {
		t.Errorf("expected unit transmittance, got %v", transmittance)
	}
}

func TestSkyRadianceToPointFiniteSegment(t *testing.T) {
	p := Earth()
	transmittanceTex, scatteringTex := testTables(p)

	camera := core.NewVec3(0, 0, p.BottomRadius+1)
	viewRay := core.NewVec3(1, 0, 0)
	point := camera.Add(viewRay.Multiply(50))
	sun := core.NewVec3(0, 0, 1)

	radiance, transmittance := p.SkyRadianceToPoint(
		transmittanceTex, scatteringTex, camera, viewRay, point, sun)

	for _, v := range []float64{radiance.X, radiance.Y, radiance.Z,
		transmittance.X, transmittance.Y, transmittance.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite output: radiance=%v transmittance=%v", radiance, transmittance)
		}
	}
	if transmittance.X < 0 || transmittance.X > 1 {
		t.Errorf("transmittance out of range: %v", transmittance)
	}
}

func TestSunAndSkyIrradiance(t *testing.T) {
	p := Earth()
	transmittanceTex := constantTexture2D(
		p.TransmittanceMuSize, p.TransmittanceRSize, core.NewVec3(1, 1, 1))
	skyValue := core.NewVec3(0.3, 0.4, 0.5)
	irradianceTex := constantTexture2D(
		p.IrradianceMuSSize, p.IrradianceRSize, skyValue)

	point := core.NewVec3(0, 0, p.BottomRadius)
	up := core.NewVec3(0, 0, 1)

	// Horizontal surface, sun at zenith: full direct and full sky irradiance
	sun, sky := p.SunAndSkyIrradiance(transmittanceTex, irradianceTex, point, up, up)
	if sun.Subtract(p.SolarIrradiance).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", p.SolarIrradiance, sun)
	}
	if sky.Subtract(skyValue).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", skyValue, sky)
	}

	// Surface facing away from the sun gets no direct light
	awayNormal := core.NewVec3(0, 0, -1)
	sun, sky = p.SunAndSkyIrradiance(transmittanceTex, irradianceTex, point, awayNormal, up)
	if sun.Length() != 0 {
		t.Errorf("expected zero direct irradiance, got %v", sun)
	}
	// A fully downward-facing surface sees no sky
	if sky.Length() > 1e-9 {
		t.Errorf("expected zero sky irradiance, got %v", sky)
	}

	// A vertical surface sees half the sky
	sideNormal := core.NewVec3(1, 0, 0)
	_, sky = p.SunAndSkyIrradiance(transmittanceTex, irradianceTex, point, sideNormal, up)
	if sky.Subtract(skyValue.Multiply(0.5)).Length() > 1e-9 {
		t.Errorf("expected half sky irradiance, got %v", sky)
	}
}
