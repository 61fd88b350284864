package terrain

import (
	"testing"

	"github.com/Faultbox/veld/internal/engine/texture"
)

// rampField is a 2x2 field with one value per corner. yScale 255 makes each
// 8-bit sample come back as its raw value.
func rampField() HeightField {
	hm := &texture.HeightMap{
		Width:         2,
		Height:        2,
		BytesPerPixel: 1,
		Pix:           []byte{0, 100, 40, 200},
	}
	return NewHeightField(hm, 255)
}

func TestHeightAtCorners(t *testing.T) {
	f := rampField()
	tests := []struct {
		x, z int
		want float32
	}{
		{0, 0, 0},
		{1, 0, 100},
		{0, 1, 40},
		{1, 1, 200},
	}
	for _, tt := range tests {
		if got := f.HeightAt(tt.x, tt.z); got != tt.want {
			t.Errorf("HeightAt(%d,%d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestHeightAtClamps(t *testing.T) {
	f := rampField()
	if got := f.HeightAt(-5, -7); got != f.HeightAt(0, 0) {
		t.Errorf("negative coords = %v, want min corner", got)
	}
	if got := f.HeightAt(10, 10); got != f.HeightAt(1, 1) {
		t.Errorf("overflow coords = %v, want max corner", got)
	}
}

func TestHeightTriangleInterpolation(t *testing.T) {
	f := rampField()

	// Below the diagonal the sample interpolates across (0,0), (1,0), (1,1).
	if got, want := f.Height(0.75, 0.25), float32(100); !approx(got, want, 1e-3) {
		t.Errorf("Height(0.75,0.25) = %v, want %v", got, want)
	}
	// Above it, across (0,0), (0,1), (1,1).
	if got, want := f.Height(0.25, 0.75), float32(70); !approx(got, want, 1e-3) {
		t.Errorf("Height(0.25,0.75) = %v, want %v", got, want)
	}
	// Exact corners reproduce the samples.
	if got := f.Height(0, 0); got != 0 {
		t.Errorf("Height(0,0) = %v, want 0", got)
	}
}

func TestHeightAt16Bit(t *testing.T) {
	hm := &texture.HeightMap{
		Width:         1,
		Height:        1,
		BytesPerPixel: 2,
		Pix:           []byte{0x00, 0x80}, // 32768 little endian
	}
	f := NewHeightField(hm, 1)
	if got, want := f.HeightAt(0, 0), float32(32768)/65535; !approx(got, want, 1e-6) {
		t.Fatalf("HeightAt = %v, want %v", got, want)
	}
}

func TestHeightFieldEmpty(t *testing.T) {
	var f HeightField
	if f.Width() != 0 || f.Depth() != 0 {
		t.Fatal("empty field reports nonzero size")
	}
	if f.Height(3.5, 2.5) != 0 {
		t.Fatal("empty field reports nonzero height")
	}
}
