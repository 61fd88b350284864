package terrain

import "testing"

func TestBuildPatchGeometryCounts(t *testing.T) {
	g := BuildPatchGeometry()
	if len(g.Samples) != GridSize*GridSize*4 {
		t.Fatalf("sample count = %d, want %d", len(g.Samples), GridSize*GridSize*4)
	}
	if len(g.Indices) != GridSize*GridSize*6 {
		t.Fatalf("index count = %d, want %d", len(g.Indices), GridSize*GridSize*6)
	}
	if g.QuadrantIndexCount() != g.IndexCount()/4 {
		t.Fatalf("quadrant count = %d", g.QuadrantIndexCount())
	}
}

func TestBuildPatchGeometryUnitRange(t *testing.T) {
	g := BuildPatchGeometry()
	for i, s := range g.Samples {
		if s.Pos.X < 0 || s.Pos.X > 1 || s.Pos.Z < 0 || s.Pos.Z > 1 {
			t.Fatalf("sample %d outside unit patch: %v", i, s.Pos)
		}
		if s.Pos.Y != 0 {
			t.Fatalf("sample %d has nonzero height %v", i, s.Pos.Y)
		}
	}
}

func TestBuildPatchGeometryFirstQuad(t *testing.T) {
	g := BuildPatchGeometry()

	// First quad corners walk counterclockwise from the min corner.
	unit := float32(1) / GridSize
	if g.Samples[0].Pos != vec3(0, 0, 0) ||
		g.Samples[1].Pos != vec3(unit, 0, 0) ||
		g.Samples[2].Pos != vec3(unit, 0, unit) ||
		g.Samples[3].Pos != vec3(0, 0, unit) {
		t.Fatalf("first quad corners wrong: %v %v %v %v",
			g.Samples[0].Pos, g.Samples[1].Pos, g.Samples[2].Pos, g.Samples[3].Pos)
	}
	want := []int32{0, 3, 2, 0, 2, 1}
	for i, w := range want {
		if g.Indices[i] != w {
			t.Fatalf("indices[%d] = %d, want %d", i, g.Indices[i], w)
		}
	}

	// Texture coordinates mark the +x and +z corners.
	if g.Samples[0].U != 0 || g.Samples[0].V != 0 ||
		g.Samples[1].U != 1 || g.Samples[1].V != 0 ||
		g.Samples[2].U != 1 || g.Samples[2].V != 1 ||
		g.Samples[3].U != 0 || g.Samples[3].V != 1 {
		t.Fatal("first quad uv corners wrong")
	}
}

func TestBuildPatchGeometryQuadrantRanges(t *testing.T) {
	g := BuildPatchGeometry()
	quarter := int(g.QuadrantIndexCount())
	starts := [4][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}}
	for q, start := range starts {
		for k := 0; k < quarter; k++ {
			idx := int(g.Indices[q*quarter+k])
			cell := idx / 4
			ci, cj := cell%GridSize, cell/GridSize
			if ci < start[0] || ci >= start[0]+8 || cj < start[1] || cj >= start[1]+8 {
				t.Fatalf("quadrant %d index %d references cell (%d,%d) outside its subgrid", q, idx, ci, cj)
			}
		}
	}
}
