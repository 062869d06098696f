// Package texture provides the read-only lookup tables consumed by the
// atmosphere renderers: float RGB/RGBA arrays sampled with linear filtering
// and clamped addressing, plus the texel-center coordinate helpers shared by
// every table parameterization.
package texture

// CoordFromUnitRange remaps a value in [0,1] so that 0 and 1 land on the
// centers of the first and last texels of an axis with size texels. Sampling
// at remapped coordinates never interpolates past the table's edge values.
func CoordFromUnitRange(x float64, size int) float64 {
	return 0.5/float64(size) + x*(1.0-1.0/float64(size))
}

// UnitRangeFromCoord is the exact inverse of CoordFromUnitRange
func UnitRangeFromCoord(u float64, size int) float64 {
	return (u - 0.5/float64(size)) / (1.0 - 1.0/float64(size))
}
