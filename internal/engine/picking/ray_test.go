package picking

import (
	"testing"

	"github.com/Faultbox/veld/pkg/math"
)

func TestIntersectAABB_StraightDown(t *testing.T) {
	box := NewAABB(math.Vec3{}, math.Vec3{X: 2, Y: 1, Z: 2})
	ray := Ray{
		Origin:    math.Vec3{X: 0.5, Y: 10, Z: 0.5},
		Direction: math.Vec3{Y: -1},
	}

	dist, hit := ray.IntersectAABB(box)
	if !hit {
		t.Fatal("expected hit")
	}
	if dist < 8.99 || dist > 9.01 {
		t.Errorf("entry distance = %f, want 9", dist)
	}

	p, ok := ray.EntryPoint(box)
	if !ok {
		t.Fatal("expected entry point")
	}
	if p.Y < 0.99 || p.Y > 1.01 {
		t.Errorf("entry point y = %f, want 1", p.Y)
	}
}

func TestIntersectAABB_Miss(t *testing.T) {
	box := NewAABB(math.Vec3{}, math.Vec3{X: 2, Y: 1, Z: 2})
	ray := Ray{
		Origin:    math.Vec3{X: 5, Y: 10, Z: 5},
		Direction: math.Vec3{Y: -1},
	}

	if _, hit := ray.IntersectAABB(box); hit {
		t.Error("expected miss for ray outside footprint")
	}
}

func TestIntersectAABB_OriginInside(t *testing.T) {
	box := NewAABB(math.Vec3{}, math.Vec3{X: 10, Y: 10, Z: 10})
	ray := Ray{
		Origin:    math.Vec3{X: 5, Y: 5, Z: 5},
		Direction: math.Vec3{X: 1},
	}

	dist, hit := ray.IntersectAABB(box)
	if !hit {
		t.Fatal("expected hit from inside")
	}
	if dist != 0 {
		t.Errorf("entry distance from inside = %f, want 0", dist)
	}
}

func TestIntersectAABB_BehindOrigin(t *testing.T) {
	box := NewAABB(math.Vec3{}, math.Vec3{X: 2, Y: 2, Z: 2})
	ray := Ray{
		Origin:    math.Vec3{X: 1, Y: 10, Z: 1},
		Direction: math.Vec3{Y: 1}, // pointing away
	}

	if _, hit := ray.IntersectAABB(box); hit {
		t.Error("expected miss for box behind ray origin")
	}
}
