package terrain

// GridSize is the patch resolution: every selected quadtree node draws a
// quadrant of a GridSize x GridSize quad grid, displaced by the height
// texture in the vertex stage.
const GridSize = 16

// PatchGeometry is the shared unit patch mesh. Indices are laid out as four
// contiguous quadrant ranges so a node can draw a single quadrant with one
// index range.
type PatchGeometry struct {
	Samples []Sample
	Indices []int32
}

// IndexCount returns the total number of indices.
func (g *PatchGeometry) IndexCount() int32 {
	return int32(len(g.Indices))
}

// QuadrantIndexCount returns the index count of one quadrant range.
func (g *PatchGeometry) QuadrantIndexCount() int32 {
	return g.IndexCount() / 4
}

// BuildPatchGeometry generates the unit patch: independent quads (four
// vertices each) over [0,1] x [0,1], built as four 8x8 subgrids so each
// quadrant occupies a contiguous index range.
func BuildPatchGeometry() *PatchGeometry {
	g := &PatchGeometry{
		Samples: make([]Sample, GridSize*GridSize*4),
		Indices: make([]int32, GridSize*GridSize*6),
	}
	offset := 0
	generateSubgrid(g, &offset, 0, 0)
	generateSubgrid(g, &offset, 8, 0)
	generateSubgrid(g, &offset, 0, 8)
	generateSubgrid(g, &offset, 8, 8)
	return g
}

func generateSubgrid(g *PatchGeometry, indicesOffset *int, startX, startY int) {
	for j := startY; j < startY+8; j++ {
		for i := startX; i < startX+8; i++ {
			idx := 4 * (i + j*GridSize)
			g.Samples[idx].Pos.X = float32(i) / GridSize
			g.Samples[idx].Pos.Z = float32(j) / GridSize
			g.Samples[idx+1].Pos.X = float32(i+1) / GridSize
			g.Samples[idx+1].Pos.Z = float32(j) / GridSize
			g.Samples[idx+2].Pos.X = float32(i+1) / GridSize
			g.Samples[idx+2].Pos.Z = float32(j+1) / GridSize
			g.Samples[idx+3].Pos.X = float32(i) / GridSize
			g.Samples[idx+3].Pos.Z = float32(j+1) / GridSize
			g.Samples[idx+1].U = 1
			g.Samples[idx+2].U = 1
			g.Samples[idx+2].V = 1
			g.Samples[idx+3].V = 1

			o := *indicesOffset
			g.Indices[o] = int32(idx)
			g.Indices[o+1] = int32(idx + 3)
			g.Indices[o+2] = int32(idx + 2)
			g.Indices[o+3] = int32(idx)
			g.Indices[o+4] = int32(idx + 2)
			g.Indices[o+5] = int32(idx + 1)
			*indicesOffset = o + 6
		}
	}
}
