package terrain

import "testing"

func TestBuildQuadtreeStructure(t *testing.T) {
	qt := BuildQuadtree(64)

	root := qt.Nodes[qt.Root()]
	if root.LOD != 1 || root.Size != 64 {
		t.Fatalf("root lod=%d size=%v, want lod=1 size=64", root.LOD, root.Size)
	}
	for i, ci := range root.Children {
		if ci < 0 {
			t.Fatalf("root child %d missing", i)
		}
	}

	// Child corners: top-left shares the parent min, the others offset by
	// half the edge in x, z, or both.
	tl := qt.Nodes[root.Children[0]]
	tr := qt.Nodes[root.Children[1]]
	bl := qt.Nodes[root.Children[2]]
	br := qt.Nodes[root.Children[3]]
	if tl.Min != root.Min {
		t.Errorf("top-left min = %v, want %v", tl.Min, root.Min)
	}
	if tr.Min.X != root.Min.X+32 || tr.Min.Z != root.Min.Z {
		t.Errorf("top-right min = %v", tr.Min)
	}
	if bl.Min.X != root.Min.X || bl.Min.Z != root.Min.Z+32 {
		t.Errorf("bottom-left min = %v", bl.Min)
	}
	if br.Min.X != root.Min.X+32 || br.Min.Z != root.Min.Z+32 {
		t.Errorf("bottom-right min = %v", br.Min)
	}
	if tl.Size != 32 || tl.LOD != 2 {
		t.Errorf("child size=%v lod=%d, want 32, 2", tl.Size, tl.LOD)
	}
}

func TestBuildQuadtreeSplitLimits(t *testing.T) {
	qt := BuildQuadtree(1024)
	for i := range qt.Nodes {
		n := &qt.Nodes[i]
		hasChildren := n.Children[0] >= 0
		wantChildren := n.LOD < MaxLOD && n.Size > MinQuadSize
		if hasChildren != wantChildren {
			t.Fatalf("node %d (lod=%d size=%v): children=%v", i, n.LOD, n.Size, hasChildren)
		}
	}
	// 1024 halves six times before reaching the 16-texel floor.
	want := 0
	for l, c := 0, 1; l < 7; l, c = l+1, c*4 {
		want += c
	}
	if len(qt.Nodes) != want {
		t.Fatalf("node count = %d, want %d", len(qt.Nodes), want)
	}
}

func TestBuildQuadtreeLODCeiling(t *testing.T) {
	// A map large enough for the depth cap to outlast the size floor cannot
	// be materialized in full, so exercise the cap on the builder directly:
	// a coarse node at the last splittable level gains children, and those
	// children stop subdividing even though they are far above the floor.
	qt := &Quadtree{}
	qt.build(vec3(0, 0, 0), 1024, MaxLOD-1)

	root := qt.Nodes[0]
	if root.Children[0] < 0 {
		t.Fatalf("node at lod %d did not split", MaxLOD-1)
	}
	for i, ci := range root.Children {
		c := qt.Nodes[ci]
		if c.LOD != MaxLOD || c.Size != 512 {
			t.Fatalf("child %d: lod=%d size=%v, want lod=%d size=512", i, c.LOD, c.Size, MaxLOD)
		}
		if c.Children[0] >= 0 {
			t.Fatalf("child %d split past the depth cap", i)
		}
	}
	if len(qt.Nodes) != 5 {
		t.Fatalf("node count = %d, want 5", len(qt.Nodes))
	}
}

func TestNodeDistanceXZ(t *testing.T) {
	n := Node{Size: 10}
	tests := []struct {
		x, y, z float32
		want    float32
	}{
		{5, 0, 5, 0},     // inside
		{5, 100, 5, 0},   // height is ignored
		{13, 0, 5, 3},    // right of the square
		{-4, 0, 5, 4},    // left
		{13, 0, 14, 5},   // diagonal, 3-4-5
	}
	for _, tt := range tests {
		got := n.DistanceXZ(vec3(tt.x, tt.y, tt.z))
		if got != tt.want {
			t.Errorf("DistanceXZ(%v,%v,%v) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}
