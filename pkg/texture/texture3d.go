package texture

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
)

// Texel is an RGBA float value. The alpha channel carries whatever packing
// the table's producer defines; the scattering tables use it for the
// mie/rayleigh ratio.
type Texel struct {
	RGB   core.Vec3
	Alpha float64
}

// Multiply returns the texel scaled by a scalar
func (t Texel) Multiply(scalar float64) Texel {
	return Texel{RGB: t.RGB.Multiply(scalar), Alpha: t.Alpha * scalar}
}

// Add returns the component-wise sum of two texels
func (t Texel) Add(other Texel) Texel {
	return Texel{RGB: t.RGB.Add(other.RGB), Alpha: t.Alpha + other.Alpha}
}

// Texture3D is a 3D RGBA float table with trilinear filtering and clamped
// addressing. Coordinates are normalized: texel centers lie at (i+0.5)/size.
type Texture3D struct {
	Width, Height, Depth int
	data                 []Texel
}

// NewTexture3D creates a zero-filled table of the given dimensions
func NewTexture3D(width, height, depth int) *Texture3D {
	return &Texture3D{
		Width:  width,
		Height: height,
		Depth:  depth,
		data:   make([]Texel, width*height*depth),
	}
}

// Set stores the texel at (x, y, z)
func (t *Texture3D) Set(x, y, z int, value Texel) {
	t.data[(z*t.Height+y)*t.Width+x] = value
}

// At returns the texel at (x, y, z), with coordinates clamped to the table edges
func (t *Texture3D) At(x, y, z int) Texel {
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	z = max(0, min(t.Depth-1, z))
	return t.data[(z*t.Height+y)*t.Width+x]
}

// Sample performs a trilinearly filtered read at normalized coordinates (u, v, w)
func (t *Texture3D) Sample(u, v, w float64) Texel {
	x := u*float64(t.Width) - 0.5
	y := v*float64(t.Height) - 0.5
	z := w*float64(t.Depth) - 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	z0 := int(math.Floor(z))
	fx := x - float64(x0)
	fy := y - float64(y0)
	fz := z - float64(z0)

	var result Texel
	for dz := 0; dz < 2; dz++ {
		wz := 1 - fz
		if dz == 1 {
			wz = fz
		}
		for dy := 0; dy < 2; dy++ {
			wy := 1 - fy
			if dy == 1 {
				wy = fy
			}
			for dx := 0; dx < 2; dx++ {
				wx := 1 - fx
				if dx == 1 {
					wx = fx
				}
				sample := t.At(x0+dx, y0+dy, z0+dz)
				result = result.Add(sample.Multiply(wx * wy * wz))
			}
		}
	}
	return result
}
