package terrain

import (
	stdmath "math"

	"github.com/Faultbox/veld/pkg/math"
)

// radiusOuter is the distance at which a node of the given size stops being
// refined. Larger nodes get a wider band so distant geometry coarsens faster.
func radiusOuter(size float32) float32 {
	mul := float32(1)
	if size > 17 {
		mul = 2
	}
	return mul*float32(stdmath.Sqrt(float64(2*size*size))) + size*0.25
}

// radiusInner is where the vertex morph toward the coarser level begins.
// It lines up with the outer radius of the node's children so the morph
// finishes exactly where the children would take over.
func radiusInner(size float32) float32 {
	half := size / 2
	return radiusOuter(half) + float32(stdmath.Sqrt(float64(2*half*half)))
}

// renderNode walks the quadtree selecting nodes by camera distance. It
// returns false when the node is farther than its outer radius, which tells
// the parent to draw that quadrant itself. localCam is in height-map texel
// units.
func (t *Terrain) renderNode(idx int32, localCam math.Vec3, shader Shader, device Device) bool {
	n := &t.tree.Nodes[idx]
	dist := n.DistanceXZ(localCam)
	outer := radiusOuter(n.Size)
	if dist > outer && n.LOD > 1 {
		return false
	}
	inner := radiusInner(n.Size)
	quarter := t.geometry.QuadrantIndexCount()
	for i := 0; i < 4; i++ {
		ci := n.Children[i]
		if ci >= 0 && t.renderNode(ci, localCam, shader, device) {
			continue
		}
		shader.SetUniform3f("morph_const", math.Vec3{X: outer, Y: inner})
		shader.SetUniform1f("quad_size", n.Size)
		shader.SetUniform3f("quad_min", n.Min)
		device.Draw(quarter*int32(i), quarter, shader)
	}
	return true
}
