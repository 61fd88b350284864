// Package terrain implements an adaptive-LOD height-field terrain with a
// paged grass layer and ray picking. Rendering goes through the Device and
// Shader interfaces so the package stays independent of the GL backend.
package terrain

import (
	"github.com/Faultbox/veld/internal/engine/texture"
	"github.com/Faultbox/veld/pkg/math"
)

// Shader receives per-draw uniforms.
type Shader interface {
	SetUniform1f(name string, v float32)
	SetUniform3f(name string, v math.Vec3)
}

// Device submits an index range of the currently bound terrain geometry.
type Device interface {
	Draw(indexOffset, indexCount int32, shader Shader)
}

// Material bundles the terrain shader with its height texture. IsReady is
// polled once per frame; the terrain draws nothing until it reports true.
type Material interface {
	IsReady() bool
	Shader() Shader
	HeightMap() *texture.HeightMap
}

// Sample is one terrain patch vertex: position in the unit patch plus the
// corner texture coordinate.
type Sample struct {
	Pos math.Vec3
	U   float32
	V   float32
}
