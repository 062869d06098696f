package atmosphere

import (
	"github.com/df07/go-atmosphere/pkg/core"
	"github.com/df07/go-atmosphere/pkg/texture"
)

// The irradiance table stores sky irradiance on a horizontal surface as a
// function of (r, mu_s). Unlike the other tables it is linear in both axes.

// IrradianceUV encodes (r, muS) into normalized irradiance table coordinates
func (p *Parameters) IrradianceUV(r, muS float64) (u, v float64) {
	xR := (r - p.BottomRadius) / (p.TopRadius - p.BottomRadius)
	xMuS := muS*0.5 + 0.5
	return texture.CoordFromUnitRange(xMuS, p.IrradianceMuSSize),
		texture.CoordFromUnitRange(xR, p.IrradianceRSize)
}

// RMuSFromIrradianceUV decodes normalized irradiance table coordinates back
// into (r, muS). Inverse of IrradianceUV.
func (p *Parameters) RMuSFromIrradianceUV(u, v float64) (r, muS float64) {
	xMuS := texture.UnitRangeFromCoord(u, p.IrradianceMuSSize)
	xR := texture.UnitRangeFromCoord(v, p.IrradianceRSize)
	r = p.BottomRadius + xR*(p.TopRadius-p.BottomRadius)
	muS = core.ClampCosine(2.0*xMuS - 1.0)
	return r, muS
}

// Irradiance samples the sky irradiance arriving on a horizontal surface at
// radius r with sun zenith cosine muS
func (p *Parameters) Irradiance(tex *texture.Texture2D, r, muS float64) core.Vec3 {
	u, v := p.IrradianceUV(r, muS)
	return tex.Sample(u, v)
}
