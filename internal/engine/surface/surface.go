// Package surface defines the surface descriptors and collision query
// contracts the rendering subsystems read from. The actual spatial queries
// live behind the World interface; this package only fixes their shape.
package surface

import (
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// Type tags a surface with its gameplay material.
type Type uint8

const (
	// TypeDefault is plain solid ground.
	TypeDefault Type = iota
	// TypeBurning marks lava surfaces.
	TypeBurning
	// TypeIce marks icy ground (and the flying carpet, which borrows its look).
	TypeIce
	// TypeDeathPlane is the kill plane at the bottom of bottomless levels.
	TypeDeathPlane
	// TypeWater marks a water surface descriptor returned by water queries.
	TypeWater
)

// HeightLowerLimit is the sentinel below which heights mean "no meaningful
// surface here". Water levels and floor heights under this value are treated
// as absent.
const HeightLowerLimit float32 = -10000.0

// Surface is a planar surface descriptor: a unit-ish normal plus the plane
// offset, so that Normal.X*x + Normal.Y*y + Normal.Z*z + OriginOffset == 0
// for every point (x, y, z) on the plane.
type Surface struct {
	Normal       math.Vec3
	OriginOffset float32
	Type         Type
}

// HeightAt solves the plane equation for y at the horizontal position (x, z).
// A degenerate normal (no vertical component) yields HeightLowerLimit so the
// caller rejects the surface instead of dividing by zero.
func (s *Surface) HeightAt(x, z float32) float32 {
	if s.Normal.Y == 0 {
		return HeightLowerLimit
	}
	return -(s.Normal.X*x + s.Normal.Z*z + s.OriginOffset) / s.Normal.Y
}

// FlatAt returns a perfectly level surface passing through the given height.
func FlatAt(height float32, typ Type) *Surface {
	return &Surface{
		Normal:       math.Vec3{X: 0, Y: 1, Z: 0},
		OriginOffset: -height,
		Type:         typ,
	}
}

// Through returns a surface with the given normal passing through the point p.
func Through(normal math.Vec3, p math.Vec3, typ Type) *Surface {
	return &Surface{
		Normal:       normal,
		OriginOffset: -normal.Dot(p),
		Type:         typ,
	}
}

// World is the spatial query interface the shadow system consumes. All
// queries are synchronous and re-issued fresh every frame; implementations
// must not retain the returned surfaces' ownership expectations beyond the
// call (callers only read them).
type World interface {
	// FindFloor returns the first floor at or below (x, y, z) together with
	// its height, or ok == false when nothing supports that position.
	FindFloor(x, y, z float32) (floor *Surface, height float32, ok bool)

	// FindWaterLevelAndFloor returns the water height over (x, z) and, when
	// one exists, a distinct descriptor for the water surface itself. The
	// descriptor may be nil even when water is present.
	FindWaterLevelAndFloor(x, z float32) (level float32, waterFloor *Surface)

	// FindWaterLevel returns only the water height over (x, z). Values below
	// HeightLowerLimit mean no water.
	FindWaterLevel(x, z float32) float32
}
