package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// createTestMesh builds a minimal VMSH file: pos(3f) + copy index (1 byte),
// one triangle.
func createTestMesh(vertexCount int) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("VMSH")
	buf.WriteByte(0) // minor
	buf.WriteByte(1) // major

	// Two attributes: float3 position, byte1 copy index
	buf.WriteByte(2)
	buf.WriteByte(byte(AttrFloat))
	buf.WriteByte(3)
	buf.WriteByte(byte(AttrByte))
	buf.WriteByte(1)

	binary.Write(buf, binary.LittleEndian, uint32(vertexCount))
	for i := 0; i < vertexCount; i++ {
		binary.Write(buf, binary.LittleEndian, float32(i))
		binary.Write(buf, binary.LittleEndian, float32(0))
		binary.Write(buf, binary.LittleEndian, float32(0))
		buf.WriteByte(0)
	}

	binary.Write(buf, binary.LittleEndian, uint32(vertexCount))
	for i := 0; i < vertexCount; i++ {
		binary.Write(buf, binary.LittleEndian, int32(i))
	}
	return buf.Bytes()
}

func TestParseMesh_Valid(t *testing.T) {
	data := createTestMesh(3)

	mesh, err := ParseMesh(data)
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	if mesh.Version.Major != 1 || mesh.Version.Minor != 0 {
		t.Errorf("expected version 1.0, got %s", mesh.Version)
	}
	if got := mesh.VertexCount(); got != 3 {
		t.Errorf("expected 3 vertices, got %d", got)
	}
	if got := mesh.Def.Size(); got != 13 {
		t.Errorf("expected vertex stride 13, got %d", got)
	}
	if got := mesh.Def.AttributeOffset(1); got != 12 {
		t.Errorf("expected attribute 1 at offset 12, got %d", got)
	}
	if len(mesh.Indices) != 3 {
		t.Errorf("expected 3 indices, got %d", len(mesh.Indices))
	}
}

func TestParseMesh_BadMagic(t *testing.T) {
	data := createTestMesh(3)
	copy(data, "XXXX")

	_, err := ParseMesh(data)
	if !errors.Is(err, ErrInvalidMeshMagic) {
		t.Errorf("expected ErrInvalidMeshMagic, got %v", err)
	}
}

func TestParseMesh_Truncated(t *testing.T) {
	data := createTestMesh(3)

	_, err := ParseMesh(data[:len(data)-6])
	if !errors.Is(err, ErrTruncatedMeshData) {
		t.Errorf("expected ErrTruncatedMeshData, got %v", err)
	}
}

func TestMeshEncodeRoundTrip(t *testing.T) {
	orig, err := ParseMesh(createTestMesh(4))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	back, err := ParseMesh(orig.Encode())
	if err != nil {
		t.Fatalf("ParseMesh(Encode()) failed: %v", err)
	}

	if back.VertexCount() != orig.VertexCount() {
		t.Errorf("vertex count changed: got %d, want %d", back.VertexCount(), orig.VertexCount())
	}
	if !bytes.Equal(back.VertexData, orig.VertexData) {
		t.Error("vertex data changed across encode round trip")
	}
	if len(back.Indices) != len(orig.Indices) {
		t.Errorf("index count changed: got %d, want %d", len(back.Indices), len(orig.Indices))
	}
}
