package terrain

import (
	"encoding/binary"
	"errors"
	stdmath "math"

	"github.com/Faultbox/veld/pkg/formats"
)

// CopyCount is how many times a grass mesh is duplicated into one batched
// mesh, so a whole chunk of instances draws with a single call.
const CopyCount = 50

// GrassCopyIndexAttribute is the vertex attribute slot that carries the copy
// index byte. The vertex shader uses it to pick the instance transform.
const GrassCopyIndexAttribute = 3

// ErrNoCopyIndexAttribute is returned when a grass mesh lacks a single-byte
// attribute in the copy index slot.
var ErrNoCopyIndexAttribute = errors.New("terrain: grass mesh has no copy index attribute")

// BuildGrassBatch duplicates a mesh copies times into one mesh. Copy i gets
// its vertices tagged with i in the copy index attribute and its indices
// shifted past the preceding copies.
func BuildGrassBatch(mesh *formats.Mesh, copies int) (*formats.Mesh, error) {
	def := mesh.Def
	if GrassCopyIndexAttribute >= len(def.Attributes) {
		return nil, ErrNoCopyIndexAttribute
	}
	attr := def.Attributes[GrassCopyIndexAttribute]
	if attr.Type != formats.AttrByte || attr.Count != 1 {
		return nil, ErrNoCopyIndexAttribute
	}

	stride := def.Size()
	tagOffset := def.AttributeOffset(GrassCopyIndexAttribute)
	vertexCount := mesh.VertexCount()

	out := &formats.Mesh{
		Version:    mesh.Version,
		Def:        def,
		VertexData: make([]byte, 0, len(mesh.VertexData)*copies),
		Indices:    make([]int32, 0, len(mesh.Indices)*copies),
	}
	for i := 0; i < copies; i++ {
		base := len(out.VertexData)
		out.VertexData = append(out.VertexData, mesh.VertexData...)
		for v := 0; v < vertexCount; v++ {
			out.VertexData[base+v*stride+tagOffset] = byte(i)
		}
		shift := int32(i * vertexCount)
		for _, idx := range mesh.Indices {
			out.Indices = append(out.Indices, idx+shift)
		}
	}
	return out, nil
}

// DefaultGrassMesh builds a unit cross of two vertical quads, the usual
// stand-in when a grass type has no model configured. The vertex layout is
// position, normal, texcoord, copy index.
func DefaultGrassMesh() *formats.Mesh {
	def := formats.VertexDef{
		Attributes: []formats.Attribute{
			{Type: formats.AttrFloat, Count: 3},
			{Type: formats.AttrFloat, Count: 3},
			{Type: formats.AttrFloat, Count: 2},
			{Type: formats.AttrByte, Count: 1},
		},
	}
	mesh := &formats.Mesh{
		Version: formats.MeshVersion{Major: 1},
		Def:     def,
	}

	quad := func(x0, z0, x1, z1, nx, nz float32) {
		base := int32(mesh.VertexCount())
		corners := [4][5]float32{
			{x0, 0, z0, 0, 1},
			{x1, 0, z1, 1, 1},
			{x1, 1, z1, 1, 0},
			{x0, 1, z0, 0, 0},
		}
		for _, c := range corners {
			mesh.VertexData = appendFloats(mesh.VertexData, c[0], c[1], c[2])
			mesh.VertexData = appendFloats(mesh.VertexData, nx, 0, nz)
			mesh.VertexData = appendFloats(mesh.VertexData, c[3], c[4])
			mesh.VertexData = append(mesh.VertexData, 0)
		}
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	quad(-0.5, 0, 0.5, 0, 0, 1)
	quad(0, -0.5, 0, 0.5, 1, 0)
	return mesh
}

func appendFloats(b []byte, vs ...float32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, stdmath.Float32bits(v))
	}
	return b
}
