package terrain

import (
	"github.com/Faultbox/veld/internal/engine/picking"
	"github.com/Faultbox/veld/pkg/math"
)

// RayHit is the result of casting a ray against the terrain surface.
type RayHit struct {
	Hit      bool
	Distance float32
	Origin   math.Vec3
	Dir      math.Vec3
}

// Point returns the hit position in world space.
func (h RayHit) Point() math.Vec3 {
	return h.Origin.Add(h.Dir.Scale(h.Distance))
}

// CastRay intersects a world-space ray with the height field. The ray is
// moved into terrain-local space, clipped against the terrain bounds, then
// marched cell by cell testing the two triangles under each sample point.
//
// The march advances by the full ray direction per step, so near-horizontal
// rays can skip over narrow ridges. Picking tolerates this; it is not a
// collision query.
func (t *Terrain) CastRay(origin, dir math.Vec3) RayHit {
	t.pollMaterial()
	miss := RayHit{Origin: origin, Dir: dir}
	if t.field.hm == nil || dir == (math.Vec3{}) {
		return miss
	}

	inv := t.matrix.FastInverse()
	ro := inv.TransformPoint(origin)
	rd := inv.TransformDirection(dir)

	width := t.rootSize * t.xzScale
	box := picking.AABB{
		Min: math.Vec3{},
		Max: math.Vec3{X: width, Y: t.yScale, Z: width},
	}
	p, ok := picking.Ray{Origin: ro, Direction: rd}.EntryPoint(box)
	if !ok {
		return miss
	}

	// The vertical march bound reuses the quadtree edge length rather than
	// the height scale, matching how the bounds were derived historically.
	// It is never tighter than the real extent, so hits are not lost.
	for p.X >= 0 && p.Z >= 0 && p.Y > 0 && p.Y < t.rootSize {
		cx := int(p.X / t.xzScale)
		cz := int(p.Z / t.xzScale)
		// A cell needs samples at cx+1, cz+1; the last sample row and
		// column start no cell.
		if cx >= t.width-1 || cz >= t.height-1 {
			break
		}
		if dist, ok := t.cellIntersection(ro, rd, cx, cz); ok {
			return RayHit{Hit: true, Distance: dist, Origin: origin, Dir: dir}
		}
		p = p.Add(rd)
	}
	return miss
}

// cellIntersection tests the two triangles of height-field cell (cx, cz)
// against a terrain-local ray.
func (t *Terrain) cellIntersection(ro, rd math.Vec3, cx, cz int) (float32, bool) {
	xs := t.xzScale
	p0 := math.Vec3{X: float32(cx) * xs, Y: t.field.HeightAt(cx, cz), Z: float32(cz) * xs}
	p1 := math.Vec3{X: float32(cx+1) * xs, Y: t.field.HeightAt(cx+1, cz), Z: float32(cz) * xs}
	p2 := math.Vec3{X: float32(cx+1) * xs, Y: t.field.HeightAt(cx+1, cz+1), Z: float32(cz+1) * xs}
	p3 := math.Vec3{X: float32(cx) * xs, Y: t.field.HeightAt(cx, cz+1), Z: float32(cz+1) * xs}

	if dist, ok := rayTriangle(ro, rd, p0, p1, p2); ok {
		return dist, true
	}
	return rayTriangle(ro, rd, p0, p2, p3)
}

// rayTriangle returns the distance along the ray to the triangle, if it
// intersects in front of the origin.
func rayTriangle(origin, dir, p0, p1, p2 math.Vec3) (float32, bool) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	q := normal.Dot(dir)
	if q == 0 {
		return 0, false
	}
	d := -normal.Dot(p0)
	dist := -(normal.Dot(origin) + d) / q
	if dist < 0 {
		return 0, false
	}
	hit := origin.Add(dir.Scale(dist))

	edges := [3][2]math.Vec3{{p0, p1}, {p1, p2}, {p2, p0}}
	for _, e := range edges {
		edge := e[1].Sub(e[0])
		if normal.Dot(edge.Cross(hit.Sub(e[0]))) < 0 {
			return 0, false
		}
	}
	return dist, true
}
