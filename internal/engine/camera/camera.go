// Package camera provides the orbit camera used by the terrain viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/veld/pkg/math"
)

// OrbitCamera orbits a center point at a distance, with pitch and yaw.
type OrbitCamera struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // radians, up from the horizon
	Yaw      float32 // radians around the y axis

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera returns an orbit camera with viewer defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        160,
		Pitch:           0.7,
		MinDistance:     5,
		MaxDistance:     4000,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix looking at the center.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates yaw and pitch from a mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = math.Clampf(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clampf(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center along the camera's ground-plane axes.
// Speed scales with distance so panning feels the same at any zoom.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	sinY := float32(gomath.Sin(float64(c.Yaw)))
	cosY := float32(gomath.Cos(float64(c.Yaw)))

	c.Center.X += (-sinY*forward + cosY*right) * speed
	c.Center.Z += (-cosY*forward - sinY*right) * speed
	c.Center.Y += up * speed
}

// FitTerrain centers the camera over a terrain footprint of the given
// world-unit extent.
func (c *OrbitCamera) FitTerrain(width, depth float32) {
	c.Center = math.Vec3{X: width / 2, Z: depth / 2}
	size := math.Maxf(width, depth)
	c.Distance = math.Clampf(size*0.6, c.MinDistance, c.MaxDistance)
}
