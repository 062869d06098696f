package realtime

import "math"

// The inscattering table is parameterized over (height, cos-view, cos-sun).
// Each axis uses its own compression so the small table spends resolution
// where the sky varies fastest: near the ground, near the horizon, and near
// the terminator.

// HeightToCoord encodes an altitude above the ground into the height axis.
// The sqrt compression concentrates texels at low altitudes.
func (c *Constants) HeightToCoord(h float64) float64 {
	return math.Sqrt(h / c.HAtm)
}

// CoordToHeight decodes the height axis, flooring the result at 0.1 to keep
// the altitude away from the singular ground value
func (c *Constants) CoordToHeight(u float64) float64 {
	return max(u*u*c.HAtm, 0.1)
}

// horizonCosine returns the view cosine at which a ray from the given height
// grazes the planet surface
func (c *Constants) horizonCosine(height float64) float64 {
	return -math.Sqrt(height*(2*c.RPlanet+height)) / (c.RPlanet + height)
}

// CosViewToCoord encodes a view-direction cosine into the view axis. The
// axis is split at the horizon cosine for the given height, with a 0.2-power
// compression on each side pulling texels towards the horizon.
func (c *Constants) CosViewToCoord(height, cv float64) float64 {
	ch := c.horizonCosine(height)
	if cv > ch {
		return 0.5*math.Pow((cv-ch)/(1-ch), 0.2) + 0.5
	}
	return 0.5 - 0.5*math.Pow((ch-cv)/(ch+1), 0.2)
}

// CoordToCosView decodes the view axis, clamped to [-1, 1].
// Inverse of CosViewToCoord.
func (c *Constants) CoordToCosView(height, uv float64) float64 {
	ch := c.horizonCosine(height)
	var result float64
	if uv > 0.5 {
		result = ch + math.Pow(2*uv-1, 5)*(1-ch)
	} else {
		result = ch - math.Pow(2*(0.5-uv), 5)*(1+ch)
	}
	return max(-1.0, min(1.0, result))
}

// CosSunToCoord encodes a sun-direction cosine into the sun axis. The
// arctangent compression spends most of the axis near the terminator; sun
// cosines below -0.1975 share the darkest texel.
func CosSunToCoord(cs float64) float64 {
	return 0.5 * (math.Atan(max(cs, -0.1975)*math.Tan(1.26*1.1))/1.1 + (1 - 0.26))
}

// CoordToCosSun decodes the sun axis, clamped to [-1, 1].
// Inverse of CosSunToCoord.
func CoordToCosSun(us float64) float64 {
	result := math.Tan((2*us-1+0.26)*0.75) / math.Tan(1.26*0.75)
	return max(-1.0, min(1.0, result))
}

// DepthExponent compresses the aerial-perspective depth axis so resolution
// is allocated near the camera
const DepthExponent = 2

// CoordToZ decodes an aerial-perspective depth coordinate into a distance
func CoordToZ(maxZ, coord float64) float64 {
	return maxZ * math.Pow(coord, DepthExponent)
}

// ZToCoord encodes a distance into an aerial-perspective depth coordinate.
// Inverse of CoordToZ.
func ZToCoord(maxZ, z float64) float64 {
	return math.Pow(z/maxZ, 1.0/DepthExponent)
}
