package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/veld/internal/engine/texture"
)

// NewHeightTexture uploads a height map as a single-channel GL texture.
// Terrain height lookups happen in the vertex stage, so filtering is linear
// and edges clamp.
func NewHeightTexture(hm *texture.HeightMap) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Rows are tightly packed regardless of width.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if hm.BytesPerPixel == 2 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R16, int32(hm.Width), int32(hm.Height),
			0, gl.RED, gl.UNSIGNED_SHORT, unsafe.Pointer(&hm.Pix[0]))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(hm.Width), int32(hm.Height),
			0, gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&hm.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return id
}

// DeleteTexture releases a GL texture.
func DeleteTexture(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}
