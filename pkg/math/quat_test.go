package math

import (
	"math"
	"testing"
)

func TestQuatIdentityToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(m[i]-id[i]) > 0.0001 {
			t.Fatalf("identity quat matrix element %d = %f, want %f", i, m[i], id[i])
		}
	}
}

func TestQuatAxisAngleMatchesRotateY(t *testing.T) {
	angle := float32(1.3)
	qm := QuatFromAxisAngle(Vec3{0, 1, 0}, angle).ToMat4()
	rm := RotateY(angle)

	p := Vec3{1, 0, 2}
	a := qm.TransformPoint(p)
	b := rm.TransformPoint(p)

	if abs(a.X-b.X) > 0.001 || abs(a.Y-b.Y) > 0.001 || abs(a.Z-b.Z) > 0.001 {
		t.Errorf("quat rotation %v != matrix rotation %v", a, b)
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	full := a.Mul(b).ToMat4()

	// Two quarter turns = half turn: (1,0,0) -> (-1,0,0)
	got := full.TransformPoint(Vec3{1, 0, 0})
	if abs(got.X+1) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("composed rotation: got %v, want (-1, 0, 0)", got)
	}
}
