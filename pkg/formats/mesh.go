// Package formats provides parsers for Veld binary asset formats.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Mesh format errors.
var (
	ErrInvalidMeshMagic       = errors.New("invalid mesh magic: expected 'VMSH'")
	ErrUnsupportedMeshVersion = errors.New("unsupported mesh version")
	ErrTruncatedMeshData      = errors.New("truncated mesh data")
)

// MeshVersion represents the mesh file version.
type MeshVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v MeshVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AttrType is the component type of a vertex attribute.
type AttrType uint8

// Attribute component types.
const (
	AttrFloat AttrType = 0 // 4-byte float32 components
	AttrByte  AttrType = 1 // 1-byte unsigned integer components
)

// ByteSize returns the size of one component in bytes.
func (t AttrType) ByteSize() int {
	if t == AttrByte {
		return 1
	}
	return 4
}

// Attribute describes one vertex attribute slot.
type Attribute struct {
	Type  AttrType
	Count int // components per vertex
}

// VertexDef describes the interleaved vertex layout of a mesh.
type VertexDef struct {
	Attributes []Attribute
}

// Size returns the byte stride of one vertex.
func (d VertexDef) Size() int {
	size := 0
	for _, a := range d.Attributes {
		size += a.Type.ByteSize() * a.Count
	}
	return size
}

// AttributeOffset returns the byte offset of attribute slot i within a vertex.
func (d VertexDef) AttributeOffset(i int) int {
	off := 0
	for j := 0; j < i && j < len(d.Attributes); j++ {
		off += d.Attributes[j].Type.ByteSize() * d.Attributes[j].Count
	}
	return off
}

// Mesh holds an interleaved vertex buffer plus its index buffer.
type Mesh struct {
	Version    MeshVersion
	Def        VertexDef
	VertexData []byte
	Indices    []int32
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int {
	stride := m.Def.Size()
	if stride == 0 {
		return 0
	}
	return len(m.VertexData) / stride
}

// ParseMesh parses a VMSH binary mesh.
//
// Layout (little endian):
//
//	magic "VMSH", version (minor byte, major byte),
//	attribute count uint8, per attribute: type uint8 + component count uint8,
//	vertex count uint32, vertex data (count * stride bytes),
//	index count uint32, indices (int32 each).
func ParseMesh(data []byte) (*Mesh, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != "VMSH" {
		return nil, ErrInvalidMeshMagic
	}

	var minor, major uint8
	if err := binary.Read(r, binary.LittleEndian, &minor); err != nil {
		return nil, ErrTruncatedMeshData
	}
	if err := binary.Read(r, binary.LittleEndian, &major); err != nil {
		return nil, ErrTruncatedMeshData
	}
	version := MeshVersion{Major: major, Minor: minor}
	if version.Major != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMeshVersion, version)
	}

	var attrCount uint8
	if err := binary.Read(r, binary.LittleEndian, &attrCount); err != nil {
		return nil, ErrTruncatedMeshData
	}
	def := VertexDef{Attributes: make([]Attribute, attrCount)}
	for i := range def.Attributes {
		var typ, count uint8
		if err := binary.Read(r, binary.LittleEndian, &typ); err != nil {
			return nil, ErrTruncatedMeshData
		}
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, ErrTruncatedMeshData
		}
		def.Attributes[i] = Attribute{Type: AttrType(typ), Count: int(count)}
	}

	var vertexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, ErrTruncatedMeshData
	}
	vertexData := make([]byte, int(vertexCount)*def.Size())
	if _, err := io.ReadFull(r, vertexData); err != nil {
		return nil, ErrTruncatedMeshData
	}

	var indexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, ErrTruncatedMeshData
	}
	indices := make([]int32, indexCount)
	if err := binary.Read(r, binary.LittleEndian, &indices); err != nil {
		return nil, ErrTruncatedMeshData
	}

	return &Mesh{
		Version:    version,
		Def:        def,
		VertexData: vertexData,
		Indices:    indices,
	}, nil
}

// Encode serializes the mesh back to VMSH bytes.
func (m *Mesh) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("VMSH")
	buf.WriteByte(m.Version.Minor)
	buf.WriteByte(m.Version.Major)
	buf.WriteByte(uint8(len(m.Def.Attributes)))
	for _, a := range m.Def.Attributes {
		buf.WriteByte(uint8(a.Type))
		buf.WriteByte(uint8(a.Count))
	}
	binary.Write(buf, binary.LittleEndian, uint32(m.VertexCount()))
	buf.Write(m.VertexData)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Indices)))
	binary.Write(buf, binary.LittleEndian, m.Indices)
	return buf.Bytes()
}
