package texture

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func encodeTexels(values [][4]float32) []byte {
	var buf bytes.Buffer
	for _, texel := range values {
		for _, c := range texel {
			var raw [4]byte
			binary.LittleEndian.PutUint32(raw[:], math.Float32bits(c))
			buf.Write(raw[:])
		}
	}
	return buf.Bytes()
}

func TestReadTexture2D(t *testing.T) {
	data := encodeTexels([][4]float32{
		{1, 2, 3, 4}, {5, 6, 7, 8},
		{9, 10, 11, 12}, {13, 14, 15, 16},
	})

	tex, err := ReadTexture2D(bytes.NewReader(data), 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tex.At(1, 0)
	if got.X != 5 || got.Y != 6 || got.Z != 7 {
		t.Errorf("texel (1,0): expected (5,6,7), got %v", got)
	}
	got = tex.At(1, 1)
	if got.X != 13 {
		t.Errorf("texel (1,1): expected red 13, got %f", got.X)
	}
}

func TestReadTexture3D(t *testing.T) {
	data := encodeTexels([][4]float32{
		{1, 2, 3, 0.5}, {4, 5, 6, 0.25},
		{7, 8, 9, 0.125}, {10, 11, 12, 0.0625},
	})

	tex, err := ReadTexture3D(bytes.NewReader(data), 2, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tex.At(0, 0, 1)
	if got.RGB.X != 7 || got.Alpha != 0.125 {
		t.Errorf("texel (0,0,1): expected red 7 alpha 0.125, got %v", got)
	}
}

func TestReadTextureErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		width  int
		height int
	}{
		{"truncated data", encodeTexels([][4]float32{{1, 2, 3, 4}}), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadTexture2D(bytes.NewReader(tt.data), tt.width, tt.height); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
