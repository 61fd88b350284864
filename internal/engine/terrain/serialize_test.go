package terrain

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestSerializeRoundTrip(t *testing.T) {
	src := New(7)
	src.SetLayerMask(0x0102030405060708)
	src.SetXZScale(2)
	src.SetYScale(30)
	src.SetMaterial("materials/ground.yml", nil)
	src.SetGrassTypes([]GrassType{
		{ModelPath: "models/grass.msh", Density: 5, Distance: 42.5, Rotation: RotationYAxis},
		{ModelPath: "models/fern.msh", Density: 8, Distance: 10, Rotation: RotationAllRandom},
	})

	var buf bytes.Buffer
	if err := src.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	dst := New(0)
	if err := dst.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if dst.EntityID() != 7 || dst.LayerMask() != 0x0102030405060708 {
		t.Fatalf("identity fields: entity=%d mask=%x", dst.EntityID(), dst.LayerMask())
	}
	if dst.MaterialPath() != "materials/ground.yml" {
		t.Fatalf("material path = %q", dst.MaterialPath())
	}
	if dst.XZScale() != 2 || dst.YScale() != 30 {
		t.Fatalf("scales = %v, %v", dst.XZScale(), dst.YScale())
	}
	if !reflect.DeepEqual(dst.GrassTypes(), src.GrassTypes()) {
		t.Fatalf("grass types = %+v", dst.GrassTypes())
	}
}

func TestSerializeFieldOrder(t *testing.T) {
	src := New(7)
	src.SetMaterial("a", nil)

	var buf bytes.Buffer
	if err := src.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{
		7, 0, 0, 0, // entity id
		1, 0, 0, 0, 0, 0, 0, 0, // layer mask
		1, 0, 0, 0, 'a', // material path
		0, 0, 0x80, 0x3f, // xz scale 1.0
		0, 0, 0x80, 0x3f, // y scale 1.0
		0, 0, 0, 0, // no grass types
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded bytes\n got %v\nwant %v", buf.Bytes(), want)
	}
}

func TestSerializeNoGrass(t *testing.T) {
	src := New(3)
	var buf bytes.Buffer
	if err := src.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	dst := New(0)
	if err := dst.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if len(dst.GrassTypes()) != 0 {
		t.Fatalf("grass types = %d, want none", len(dst.GrassTypes()))
	}
}

func TestDeserializeTruncated(t *testing.T) {
	src := New(7)
	src.SetMaterial("materials/ground.yml", nil)
	src.SetGrassTypes([]GrassType{{ModelPath: "models/grass.msh", Density: 5, Distance: 42.5}})

	var buf bytes.Buffer
	if err := src.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	data := buf.Bytes()

	for _, cut := range []int{2, 10, 14, len(data) - 3} {
		dst := New(0)
		err := dst.Deserialize(bytes.NewReader(data[:cut]))
		if !errors.Is(err, ErrTruncatedTerrainData) {
			t.Fatalf("cut at %d: err = %v", cut, err)
		}
	}
}
