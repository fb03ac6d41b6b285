package shadow

import (
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// stateFlags is the transient per-computation flag set.
type stateFlags uint8

const (
	// flagWaterBox: the supporting surface is a flat water or lava plane
	// rather than solid ground.
	flagWaterBox stateFlags = 1 << iota
	// flagWaterSurface: a distinct water surface descriptor was found and is
	// being used as the floor.
	flagWaterSurface
	// flagIceCarpet: the shadow sits on ice or a flying carpet.
	flagIceCarpet
	// flagRaised: lift the shadow slightly off the surface (carpet riding).
	flagRaised
)

// shadowState is the working record for one shadow computation. It is owned
// exclusively by the in-flight ShadowBelow call: created zeroed, filled in,
// and discarded before the call returns, so no state leaks between shadows
// or between frames.
type shadowState struct {
	// World position of the shadow's parent object.
	parentPos math.Vec3
	// Height of the supporting surface directly below the parent.
	floorHeight float32
	// Current (falloff-adjusted) diameter of the shadow.
	scale float32
	// The supporting surface. Read-only here.
	floor *surface.Surface
	// How tilted the floor is, and which way a marble would roll off it.
	floorPitch math.Angle
	floorYaw   math.Angle
	// Opacity, 0-255.
	solidity uint8

	flags stateFlags
}
