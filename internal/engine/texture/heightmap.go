// Package texture provides height texture decoding for terrain.
package texture

import (
	"bytes"
	"fmt"
	"image"

	_ "image/png" // height maps are commonly 8/16-bit grayscale PNG

	_ "golang.org/x/image/bmp" // legacy editor exports
)

// HeightMap is a decoded height texture. Samples are stored row-major,
// 1 byte per texel for 8-bit sources and 2 bytes (little endian) for
// 16-bit sources.
type HeightMap struct {
	Width         int
	Height        int
	BytesPerPixel int // 1 or 2
	Pix           []byte
}

// DecodeHeightMap decodes a height texture from encoded image bytes.
// 16-bit grayscale images keep their full precision; everything else is
// reduced to 8-bit luminance.
func DecodeHeightMap(data []byte) (*HeightMap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding height map: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a HeightMap.
func FromImage(img image.Image) *HeightMap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g16, ok := img.(*image.Gray16); ok {
		hm := &HeightMap{
			Width:         w,
			Height:        h,
			BytesPerPixel: 2,
			Pix:           make([]byte, w*h*2),
		}
		for z := 0; z < h; z++ {
			for x := 0; x < w; x++ {
				// Gray16 stores big endian; HeightMap is little endian.
				src := g16.PixOffset(b.Min.X+x, b.Min.Y+z)
				dst := (z*w + x) * 2
				hm.Pix[dst] = g16.Pix[src+1]
				hm.Pix[dst+1] = g16.Pix[src]
			}
		}
		return hm
	}

	hm := &HeightMap{
		Width:         w,
		Height:        h,
		BytesPerPixel: 1,
		Pix:           make([]byte, w*h),
	}
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+z).RGBA()
			// Integer luminance, components are 16-bit here.
			lum := (299*r + 587*g + 114*bl) / 1000
			hm.Pix[z*w+x] = byte(lum >> 8)
		}
	}
	return hm
}

// Texel returns the raw sample at (x, z) without bounds checking.
// 8-bit maps return 0..255, 16-bit maps 0..65535.
func (h *HeightMap) Texel(x, z int) int {
	if h.BytesPerPixel == 2 {
		idx := (z*h.Width + x) * 2
		return int(h.Pix[idx]) | int(h.Pix[idx+1])<<8
	}
	return int(h.Pix[z*h.Width+x])
}

// MaxValue returns the largest representable sample for this encoding.
func (h *HeightMap) MaxValue() int {
	if h.BytesPerPixel == 2 {
		return 65535
	}
	return 255
}
