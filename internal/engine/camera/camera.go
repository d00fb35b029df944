// Package camera provides the orbit camera used by the terrain viewer.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	Distance float32
	Pitch    float32 // radians above the horizon
	Yaw      float32 // radians around +Y

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	FovY float32 // radians
	Near float32
	Far  float32
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:    60,
		Pitch:       0.6,
		MinDistance: 2,
		MaxDistance: 2000,
		MinPitch:    0.05,
		MaxPitch:    1.5,
		FovY:        mgl32.DegToRad(45),
		Near:        0.1,
		Far:         5000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	horiz := c.Distance * math32.Cos(c.Pitch)
	return c.Center.Add(mgl32.Vec3{
		horiz * math32.Sin(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		horiz * math32.Cos(c.Yaw),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Orbit rotates the camera around its center.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}

// Zoom scales the distance by (1 - delta), clamped to the allowed range.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance*(1-delta), c.MinDistance, c.MaxDistance)
}

// Pan moves the center on the XZ plane relative to the current yaw.
// Speed scales with distance.
func (c *OrbitCamera) Pan(forward, right float32) {
	speed := c.Distance * 0.01
	sin, cos := math32.Sincos(c.Yaw)
	c.Center[0] += (-sin*forward + cos*right) * speed
	c.Center[2] += (-cos*forward - sin*right) * speed
}

// FitToBounds centers the camera on b and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(b terrain.Bounds) {
	c.Center = mgl32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
	size := max(b.Max[0]-b.Min[0], b.Max[2]-b.Min[2])
	c.Distance = mgl32.Clamp(size, c.MinDistance, c.MaxDistance)
}
