// Package camera provides the orbit camera used by the shadow viewer.
package camera

import (
	gomath "math"

	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// Orbit circles a center point at a spherical offset. The viewer feeds it
// mouse drags and wheel ticks; the renderer consumes Position and Center.
type Orbit struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit camera with defaults tuned for the demo terrain.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        1500.0,
		Pitch:           0.6,
		MinDistance:     100.0,
		MaxDistance:     6000.0,
		MinPitch:        0.1,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// HandleDrag updates rotation from a mouse drag delta in pixels.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance from a scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToBounds centers the camera over a ground rectangle and backs it off
// far enough to see all of it.
func (c *Orbit) FitToBounds(minX, minZ, maxX, maxZ float32) {
	c.Center = math.Vec3{
		X: (minX + maxX) / 2,
		Z: (minZ + maxZ) / 2,
	}

	size := maxX - minX
	if maxZ-minZ > size {
		size = maxZ - minZ
	}
	c.Distance = size * 0.9
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
}
