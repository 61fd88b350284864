package terrain

import (
	"testing"

	"github.com/Faultbox/veld/pkg/math"
)

func TestCastRayStraightDown(t *testing.T) {
	tr, _ := newTestTerrain(t, 2, 2, 128, 1, 1)

	hit := tr.CastRay(vec3(0.5, 10, 0.5), vec3(0, -1, 0))
	if !hit.Hit {
		t.Fatal("ray straight down missed the terrain")
	}
	want := 10 - float32(128)/255
	if !approx(hit.Distance, want, 1e-3) {
		t.Fatalf("distance = %v, want %v", hit.Distance, want)
	}
	p := hit.Point()
	if !approx(p.X, 0.5, 1e-4) || !approx(p.Y, float32(128)/255, 1e-3) || !approx(p.Z, 0.5, 1e-4) {
		t.Fatalf("hit point = %v", p)
	}
}

func TestCastRayOnSlope(t *testing.T) {
	hm := gray8(2, 2, 0)
	hm.Pix = []byte{0, 100, 40, 200}
	mat := &fakeMaterial{ready: true, hm: hm, shader: newFakeShader()}
	tr := New(1)
	tr.SetMaterial("materials/ground.yml", mat)

	hit := tr.CastRay(vec3(0.25, 10, 0.25), vec3(0, -1, 0))
	if !hit.Hit {
		t.Fatal("ray missed the slope")
	}
	// On the cell diagonal both triangles agree: the surface passes through
	// (0,0,0) and rises toward (1, 200/255, 1).
	want := 10 - float32(100)/255*0.5
	if !approx(hit.Distance, want, 1e-3) {
		t.Fatalf("distance = %v, want %v", hit.Distance, want)
	}
}

func TestCastRayMiss(t *testing.T) {
	tr, _ := newTestTerrain(t, 2, 2, 128, 1, 1)

	if hit := tr.CastRay(vec3(0.5, 10, 0.5), vec3(0, 1, 0)); hit.Hit {
		t.Fatal("upward ray reported a hit")
	}
	if hit := tr.CastRay(vec3(50, 10, 50), vec3(0, -1, 0)); hit.Hit {
		t.Fatal("ray outside the terrain bounds reported a hit")
	}
	if hit := tr.CastRay(vec3(0.5, 10, 0.5), math.Vec3{}); hit.Hit {
		t.Fatal("zero direction reported a hit")
	}
}

func TestCastRayPastLastSample(t *testing.T) {
	// A 2x2 field has a single cell covering [0,1]x[0,1]. Rays dropped past
	// the last sample row or column cross no real surface; clamped height
	// reads must not fabricate one there.
	tr, _ := newTestTerrain(t, 2, 2, 128, 1, 1)

	if hit := tr.CastRay(vec3(1.5, 10, 0.5), vec3(0, -1, 0)); hit.Hit {
		t.Fatal("hit past the last sample column")
	}
	if hit := tr.CastRay(vec3(0.5, 10, 1.5), vec3(0, -1, 0)); hit.Hit {
		t.Fatal("hit past the last sample row")
	}
	if hit := tr.CastRay(vec3(0.5, 10, 0.5), vec3(0, -1, 0)); !hit.Hit {
		t.Fatal("ray over the real cell missed")
	}
}

func TestCastRayTranslatedTerrain(t *testing.T) {
	tr, _ := newTestTerrain(t, 2, 2, 128, 1, 1)
	tr.SetMatrix(math.Translate(100, 0, 100))

	hit := tr.CastRay(vec3(100.5, 10, 100.5), vec3(0, -1, 0))
	if !hit.Hit {
		t.Fatal("ray missed the moved terrain")
	}
	if !approx(hit.Distance, 10-float32(128)/255, 1e-3) {
		t.Fatalf("distance = %v", hit.Distance)
	}
	p := hit.Point()
	if !approx(p.X, 100.5, 1e-3) || !approx(p.Z, 100.5, 1e-3) {
		t.Fatalf("hit point = %v, want terrain offset preserved", p)
	}

	if hit := tr.CastRay(vec3(0.5, 10, 0.5), vec3(0, -1, 0)); hit.Hit {
		t.Fatal("ray at the old location still hits")
	}
}

func TestCastRayWithoutMaterial(t *testing.T) {
	tr := New(1)
	if hit := tr.CastRay(vec3(0.5, 10, 0.5), vec3(0, -1, 0)); hit.Hit {
		t.Fatal("hit reported before the height field exists")
	}
}

func TestRayTriangle(t *testing.T) {
	p0 := vec3(0, 0, 0)
	p1 := vec3(1, 0, 0)
	p2 := vec3(0, 0, 1)

	if d, ok := rayTriangle(vec3(0.2, 5, 0.2), vec3(0, -1, 0), p0, p1, p2); !ok || !approx(d, 5, 1e-5) {
		t.Fatalf("interior hit = %v,%v", d, ok)
	}
	if _, ok := rayTriangle(vec3(0.8, 5, 0.8), vec3(0, -1, 0), p0, p1, p2); ok {
		t.Fatal("hit outside the hypotenuse")
	}
	if _, ok := rayTriangle(vec3(0.2, 5, 0.2), vec3(0, 1, 0), p0, p1, p2); ok {
		t.Fatal("hit behind the origin")
	}
	if _, ok := rayTriangle(vec3(0.2, 5, 0.2), vec3(1, 0, 0), p0, p1, p2); ok {
		t.Fatal("hit with a ray parallel to the plane")
	}
}
