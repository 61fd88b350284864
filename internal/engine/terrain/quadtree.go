package terrain

import "github.com/Faultbox/veld/pkg/math"

// Subdivision limits. A node splits while its detail level is below MaxLOD
// and its edge is longer than MinQuadSize texels.
const (
	MaxLOD      = 16
	MinQuadSize = 16
)

// Node is one square region of the terrain. Children index into the owning
// quadtree's arena; -1 marks an absent child. Child order matches the patch
// quadrant order: top-left, top-right, bottom-left, bottom-right.
type Node struct {
	Min      math.Vec3
	Size     float32
	LOD      int32
	Children [4]int32
}

// DistanceXZ returns the horizontal distance from p to the node's square,
// zero when p is above or below it.
func (n *Node) DistanceXZ(p math.Vec3) float32 {
	cx := math.Clampf(p.X, n.Min.X, n.Min.X+n.Size)
	cz := math.Clampf(p.Z, n.Min.Z, n.Min.Z+n.Size)
	dx := p.X - cx
	dz := p.Z - cz
	return math.Vec2{X: dx, Y: dz}.Length()
}

// Quadtree is a fixed arena of nodes built once per height map. The root is
// always node 0.
type Quadtree struct {
	Nodes []Node
}

// BuildQuadtree subdivides a square of the given edge length, in height-map
// texel units.
func BuildQuadtree(size float32) *Quadtree {
	qt := &Quadtree{}
	qt.build(math.Vec3{}, size, 1)
	return qt
}

// Root returns the root node index.
func (qt *Quadtree) Root() int32 { return 0 }

func (qt *Quadtree) build(min math.Vec3, size float32, lod int32) int32 {
	idx := int32(len(qt.Nodes))
	qt.Nodes = append(qt.Nodes, Node{
		Min:      min,
		Size:     size,
		LOD:      lod,
		Children: [4]int32{-1, -1, -1, -1},
	})
	if lod >= MaxLOD || size <= MinQuadSize {
		return idx
	}
	half := size / 2
	mins := [4]math.Vec3{
		min,
		{X: min.X + half, Y: min.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: min.Z + half},
		{X: min.X + half, Y: min.Y, Z: min.Z + half},
	}
	for i, cmin := range mins {
		ci := qt.build(cmin, half, lod+1)
		qt.Nodes[idx].Children[i] = ci
	}
	return idx
}
