package terrain

import (
	"github.com/Faultbox/veld/internal/engine/texture"
	"github.com/Faultbox/veld/pkg/math"
)

// HeightField samples a decoded height texture, scaled to [0, yScale].
type HeightField struct {
	hm     *texture.HeightMap
	yScale float32
}

// NewHeightField wraps a height map with a vertical scale.
func NewHeightField(hm *texture.HeightMap, yScale float32) HeightField {
	return HeightField{hm: hm, yScale: yScale}
}

// Width returns the texel count along X.
func (f HeightField) Width() int {
	if f.hm == nil {
		return 0
	}
	return f.hm.Width
}

// Depth returns the texel count along Z.
func (f HeightField) Depth() int {
	if f.hm == nil {
		return 0
	}
	return f.hm.Height
}

// HeightAt reads a raw texel scaled by the vertical scale factor.
// Out-of-range coordinates are clamped, never a fault.
func (f HeightField) HeightAt(x, z int) float32 {
	if f.hm == nil {
		return 0
	}
	ix := math.Clampi(x, 0, f.hm.Width-1)
	iz := math.Clampi(z, 0, f.hm.Height-1)
	v := f.hm.Texel(ix, iz)
	return f.yScale * float32(v) / float32(f.hm.MaxValue())
}

// Height returns the triangulated bilinear height at a fractional texel
// position. The texel cell is split into two triangles along its diagonal
// and the sample is interpolated within the triangle containing the point.
func (f HeightField) Height(x, z float32) float32 {
	intX := int(x)
	intZ := int(z)
	decX := x - float32(intX)
	decZ := z - float32(intZ)
	if decX > decZ {
		h0 := f.HeightAt(intX, intZ)
		h1 := f.HeightAt(intX+1, intZ)
		h2 := f.HeightAt(intX+1, intZ+1)
		return h0 + (h1-h0)*decX + (h2-h1)*decZ
	}
	h0 := f.HeightAt(intX, intZ)
	h1 := f.HeightAt(intX+1, intZ+1)
	h2 := f.HeightAt(intX, intZ+1)
	return h0 + (h2-h0)*decZ + (h1-h2)*decX
}
