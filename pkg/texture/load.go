package texture

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-atmosphere/pkg/core"
)

// Baked tables are stored as raw little-endian float32 RGBA texels in x-major
// order (x fastest, then y, then z). This matches the layout the baker's dump
// tool writes when copying a table out of device memory.

// ReadTexture2D reads a raw float32 RGBA dump into a 2D table, keeping RGB
// and discarding alpha
func ReadTexture2D(r io.Reader, width, height int) (*Texture2D, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid texture dimensions %dx%d", width, height)
	}
	tex := NewTexture2D(width, height)
	buf := make([]byte, width*4*4)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read texture row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			tex.Set(x, y, core.NewVec3(
				float64(floatAt(buf, x*4)),
				float64(floatAt(buf, x*4+1)),
				float64(floatAt(buf, x*4+2)),
			))
		}
	}
	return tex, nil
}

// ReadTexture3D reads a raw float32 RGBA dump into a 3D table
func ReadTexture3D(r io.Reader, width, height, depth int) (*Texture3D, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("invalid texture dimensions %dx%dx%d", width, height, depth)
	}
	tex := NewTexture3D(width, height, depth)
	buf := make([]byte, width*4*4)
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("failed to read texture row (y=%d, z=%d): %w", y, z, err)
			}
			for x := 0; x < width; x++ {
				tex.Set(x, y, z, Texel{
					RGB: core.NewVec3(
						float64(floatAt(buf, x*4)),
						float64(floatAt(buf, x*4+1)),
						float64(floatAt(buf, x*4+2)),
					),
					Alpha: float64(floatAt(buf, x*4+3)),
				})
			}
		}
	}
	return tex, nil
}

// LoadTexture2D reads a raw float32 RGBA dump file into a 2D table
func LoadTexture2D(filename string, width, height int) (*Texture2D, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close()
	return ReadTexture2D(bufio.NewReader(file), width, height)
}

// LoadTexture3D reads a raw float32 RGBA dump file into a 3D table
func LoadTexture3D(filename string, width, height, depth int) (*Texture3D, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close()
	return ReadTexture3D(bufio.NewReader(file), width, height, depth)
}

func floatAt(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}
