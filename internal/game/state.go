// Package game holds the gameplay-side state the rendering subsystems read:
// object transforms, animation progress, level identity, and the flying
// carpet state machine. Rendering never mutates any of it.
package game

import (
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// Animation identifies the player animations the shadow system cares about.
type Animation uint16

const (
	AnimNone Animation = iota
	// AnimIdleOnLedge plays while hanging idle on a ledge edge.
	AnimIdleOnLedge
	// AnimFastLedgeGrab is the quick pull-up onto a ledge.
	AnimFastLedgeGrab
	// AnimSlowLedgeGrab is the slow pull-up onto a ledge.
	AnimSlowLedgeGrab
	// AnimClimbDownLedge plays while lowering off a ledge.
	AnimClimbDownLedge
)

// AnimInfo is the current animation and its frame counter.
type AnimInfo struct {
	ID    Animation
	Frame int16
}

// Level identifies the levels with shadow-specific override rules.
type Level uint8

const (
	LevelNone Level = iota
	// LevelFireSea is the lava cavern whose lava shadows snap to fixed heights.
	LevelFireSea
	// LevelLavaLand is the volcano level whose first area pins lava shadows
	// to a fixed height.
	LevelLavaLand
	// LevelRainbowRide is the sky level with the flying carpets.
	LevelRainbowRide
)

// CarpetState is the global flying carpet movement state.
type CarpetState uint8

const (
	CarpetIdle CarpetState = iota
	// CarpetMovingAlone means the carpet moves without a rider.
	CarpetMovingAlone
	// CarpetMovingWithRider means the carpet moves carrying the player.
	CarpetMovingWithRider
)

// Env is the per-frame environment snapshot: which level and area is active
// and what the flying carpet is doing.
type Env struct {
	Level  Level
	Area   int
	Carpet CarpetState
}

// Object is the transform and cached collision state of one shadow-casting
// object. Floor may be nil when no floor has been resolved this frame; the
// shadow dispatcher then performs its own query.
type Object struct {
	Pos     math.Vec3
	FaceYaw math.Angle

	// Cached floor from the object's own collision step, if any.
	Floor       *surface.Surface
	FloorHeight float32

	// Current animation, consulted only for the player shadow.
	Anim AnimInfo
}
