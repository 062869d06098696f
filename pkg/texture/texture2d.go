package texture

import (
	"math"

	"github.com/df07/go-atmosphere/pkg/core"
)

// Texture2D is a 2D RGB float table with bilinear filtering and clamped
// addressing. Coordinates are normalized: texel centers lie at (i+0.5)/size.
type Texture2D struct {
	Width, Height int
	data          []core.Vec3
}

// NewTexture2D creates a zero-filled table of the given dimensions
func NewTexture2D(width, height int) *Texture2D {
	return &Texture2D{
		Width:  width,
		Height: height,
		data:   make([]core.Vec3, width*height),
	}
}

// Set stores the texel at (x, y)
func (t *Texture2D) Set(x, y int, value core.Vec3) {
	t.data[y*t.Width+x] = value
}

// At returns the texel at (x, y), with coordinates clamped to the table edges
func (t *Texture2D) At(x, y int) core.Vec3 {
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	return t.data[y*t.Width+x]
}

// Sample performs a bilinearly filtered read at normalized coordinates (u, v)
func (t *Texture2D) Sample(u, v float64) core.Vec3 {
	x := u*float64(t.Width) - 0.5
	y := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	s00 := t.At(x0, y0)
	s10 := t.At(x0+1, y0)
	s01 := t.At(x0, y0+1)
	s11 := t.At(x0+1, y0+1)

	bottom := s00.Multiply(1 - fx).Add(s10.Multiply(fx))
	top := s01.Multiply(1 - fx).Add(s11.Multiply(fx))
	return bottom.Multiply(1 - fy).Add(top.Multiply(fy))
}
