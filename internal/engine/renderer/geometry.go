package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/veld/internal/engine/terrain"
	"github.com/Faultbox/veld/pkg/formats"
)

// Geometry is an uploaded vertex/index buffer pair. It satisfies the
// terrain's draw contract, so a terrain can submit index ranges against it
// directly.
type Geometry struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// IndexCount returns the number of uploaded indices.
func (g *Geometry) IndexCount() int32 { return g.indexCount }

// Draw submits one index range. The shader argument is part of the terrain
// draw contract; the program is already bound by the caller.
func (g *Geometry) Draw(indexOffset, indexCount int32, _ terrain.Shader) {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, uintptr(indexOffset)*4)
}

// DrawAll submits the whole index buffer.
func (g *Geometry) DrawAll() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
}

// Delete releases the GL buffers.
func (g *Geometry) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		g.vao, g.vbo, g.ebo = 0, 0, 0
	}
}

// NewTerrainGeometry uploads the shared terrain patch: positions at
// location 0, corner uv at location 1.
func NewTerrainGeometry(p *terrain.PatchGeometry) *Geometry {
	data := make([]float32, 0, len(p.Samples)*5)
	for _, s := range p.Samples {
		data = append(data, s.Pos.X, s.Pos.Y, s.Pos.Z, s.U, s.V)
	}

	g := &Geometry{indexCount: p.IndexCount()}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	uploadIndices(g, p.Indices)
	gl.BindVertexArray(0)
	return g
}

// NewMeshGeometry uploads a binary mesh, mapping attribute slot i to vertex
// attribute location i per its vertex definition. Byte attributes arrive in
// the shader as un-normalized floats, which is what the grass copy index
// needs.
func NewMeshGeometry(m *formats.Mesh) *Geometry {
	g := &Geometry{indexCount: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.VertexData), unsafe.Pointer(&m.VertexData[0]), gl.STATIC_DRAW)

	stride := int32(m.Def.Size())
	for i, attr := range m.Def.Attributes {
		offset := uintptr(m.Def.AttributeOffset(i))
		glType := uint32(gl.FLOAT)
		if attr.Type == formats.AttrByte {
			glType = gl.UNSIGNED_BYTE
		}
		gl.VertexAttribPointerWithOffset(uint32(i), int32(attr.Count), glType, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
	}

	uploadIndices(g, m.Indices)
	gl.BindVertexArray(0)
	return g
}

func uploadIndices(g *Geometry, indices []int32) {
	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
}
