// Package shadow draws the cheap procedural contact shadows rendered under
// every shadow-casting object: a single 4-vertex quad per object per frame,
// positioned, tilted, sized, and faded from the surface found below the
// object and from the current gameplay state. It is a geometric
// approximation, recomputed from scratch every draw call, not a shadow
// mapper.
package shadow

import (
	"go.uber.org/zap"

	"github.com/Planet-BB-Entertainment/SM64/internal/engine/display"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/internal/game"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// Type selects a shadow variant.
type Type uint8

const (
	// TypeCirclePlayer is the player's circular shadow, which tracks
	// animation state.
	TypeCirclePlayer Type = iota
	// TypeCircle is a plain circular shadow following the floor tilt.
	TypeCircle
	// TypeCircleFlat is a circular shadow that assumes the ground under it
	// is perfectly flat.
	TypeCircleFlat
	// TypeSquarePermanent is a square shadow that never shrinks with height.
	TypeSquarePermanent
	// TypeSquareScalable is a square shadow that shrinks with height.
	TypeSquareScalable
	// TypeSquareTogglable is a square shadow that vanishes past the falloff
	// range instead of shrinking.
	TypeSquareTogglable
	// TypeRectSpindle is the hardcoded rectangle under rolling spindles.
	TypeRectSpindle
	// TypeRectStomper is the hardcoded rectangle under stone stompers.
	TypeRectStomper
)

// rectShadow describes one hardcoded rectangle shadow.
type rectShadow struct {
	halfWidth  float32
	halfLength float32
	// Whether this rectangle shrinks when its object is off the ground.
	scaleWithDistance bool
}

// rectShadows is the closed set of hardcoded rectangle shadows, indexed by
// Type offset from TypeRectSpindle.
var rectShadows = [...]rectShadow{
	TypeRectSpindle - TypeRectSpindle: {360.0, 230.0, true},
	TypeRectStomper - TypeRectSpindle: {200.0, 180.0, true},
}

// Generator computes shadow quads against a collision world and allocates
// their display lists from a per-frame pool. A Generator is not safe for
// concurrent use: exactly one shadow is computed at a time, on the render
// goroutine, and each computation owns its state for the duration of the
// call.
type Generator struct {
	world surface.World
	pool  *display.Pool
	log   *zap.Logger
}

// New returns a Generator over the given collision world and frame pool.
// log may be nil.
func New(world surface.World, pool *display.Pool, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{world: world, pool: pool, log: log}
}

// ShadowBelow computes the shadow quad under obj, or returns nil when no
// shadow should be drawn this frame (no floor, invalid floor, suppressing
// animation, or pool exhaustion). nominalScale is the shadow's diameter and
// nominalSolidity its opacity before falloff.
func (g *Generator) ShadowBelow(obj *game.Object, env game.Env, nominalScale float32, nominalSolidity uint8, typ Type) *display.List {
	st := shadowState{}

	// Reuse the floor the object's own collision step already found before
	// paying for a fresh query.
	if obj.Floor != nil {
		st.floor = obj.Floor
		st.floorHeight = obj.FloorHeight
	} else {
		floor, height, ok := g.world.FindFloor(obj.Pos.X, obj.Pos.Y, obj.Pos.Z)
		if !ok {
			return nil
		}
		st.floor = floor
		st.floorHeight = height
	}

	if st.floor.Type == surface.TypeIce {
		st.flags |= flagIceCarpet
	}

	switch typ {
	case TypeCirclePlayer:
		return g.playerShadow(&st, obj, env, nominalScale, nominalSolidity)
	case TypeCircle:
		return g.circleShadow(&st, obj, nominalScale, nominalSolidity)
	case TypeCircleFlat:
		return g.flatCircleShadow(&st, obj, nominalScale, nominalSolidity)
	case TypeSquarePermanent, TypeSquareScalable, TypeSquareTogglable:
		return g.squareShadow(&st, obj, nominalScale, nominalSolidity, typ)
	default:
		return g.rectangleShadow(&st, obj, nominalSolidity, typ)
	}
}

// playerShadow builds the player's shadow, resolving carpet state and
// animation-driven opacity before the common projection path.
func (g *Generator) playerShadow(st *shadowState, obj *game.Object, env game.Env, scale float32, solidity uint8) *display.List {
	if env.Level == game.LevelRainbowRide && st.floor.Type != surface.TypeDeathPlane {
		switch env.Carpet {
		case game.CarpetMovingAlone:
			st.flags |= flagIceCarpet | flagRaised
		case game.CarpetMovingWithRider:
			st.flags |= flagIceCarpet
		}
	}

	value, state := solidityForAnimation(obj.Anim, solidity)
	switch state {
	case solidityHidden:
		return nil
	case solidityPreset:
		// The animation pass fixed the opacity; skip distance dimming.
		st.solidity = value
		if !g.initShadow(st, obj.Pos, scale, 0) {
			return nil
		}
	case solidityUnset:
		if !g.initShadow(st, obj.Pos, scale, solidity) {
			return nil
		}
	}

	verts := g.pool.AllocVerts(display.QuadVertexCount)
	if verts == nil {
		return nil
	}

	g.correctLavaShadowHeight(st, env)

	for i := range verts {
		makeVertex(st, verts, i)
	}
	return g.pool.AllocList(display.ShapeCircle, verts)
}

// correctLavaShadowHeight snaps lava shadows to fixed heights on the two
// levels where the real lava geometry would make them pop. The rule set is
// intentionally a short closed list, evaluated in order.
func (g *Generator) correctLavaShadowHeight(st *shadowState, env game.Env) {
	typ := st.floor.Type
	if env.Level == game.LevelFireSea && typ == surface.TypeBurning {
		if st.floorHeight < -3000.0 {
			st.floorHeight = -3062.0
			st.flags |= flagWaterBox
		} else if st.floorHeight > 3400.0 {
			st.floorHeight = 3492.0
			st.flags |= flagWaterBox
		}
	} else if env.Level == game.LevelLavaLand && env.Area == 1 && typ == surface.TypeBurning {
		st.floorHeight = 5.0
		st.flags |= flagWaterBox
	}
}

// circleShadow builds a plain circular shadow following the floor tilt.
func (g *Generator) circleShadow(st *shadowState, obj *game.Object, scale float32, solidity uint8) *display.List {
	if !g.initShadow(st, obj.Pos, scale, solidity) {
		return nil
	}

	verts := g.pool.AllocVerts(display.QuadVertexCount)
	if verts == nil {
		return nil
	}
	for i := range verts {
		makeVertex(st, verts, i)
	}
	return g.pool.AllocList(display.ShapeCircle, verts)
}

// flatCircleShadow builds a circular shadow assuming the ground below is
// perfectly flat, skipping the tilt projection entirely.
func (g *Generator) flatCircleShadow(st *shadowState, obj *game.Object, scale float32, solidity uint8) *display.List {
	floorHeight := st.floorHeight
	if floorHeight < surface.HeightLowerLimit {
		return nil
	}
	distBelowFloor := floorHeight - obj.Pos.Y
	radius := scale / 2.0

	verts := g.pool.AllocVerts(display.QuadVertexCount)
	if verts == nil {
		return nil
	}

	makeVertexAt(st, verts, 0, -radius, distBelowFloor, -radius, solidity)
	makeVertexAt(st, verts, 1, radius, distBelowFloor, -radius, solidity)
	makeVertexAt(st, verts, 2, -radius, distBelowFloor, radius, solidity)
	makeVertexAt(st, verts, 3, radius, distBelowFloor, radius, solidity)

	return g.pool.AllocList(display.ShapeCircle, verts)
}

// heightSolidity resolves the flat height and opacity shared by the square
// and rectangle variants. When the object floats over water that covers its
// floor, the shadow sits on the water at the fixed water opacity. Returns
// ok == false when the floor is below the meaningful range.
func (g *Generator) heightSolidity(st *shadowState, pos math.Vec3, solidity uint8) (float32, uint8, bool) {
	shadowHeight := st.floorHeight
	if shadowHeight < surface.HeightLowerLimit {
		return 0, 0, false
	}

	waterLevel := g.world.FindWaterLevel(pos.X, pos.Z)
	if waterLevel < surface.HeightLowerLimit {
		// No meaningful water below.
	} else if pos.Y >= waterLevel && waterLevel >= shadowHeight {
		st.flags |= flagWaterBox
		shadowHeight = waterLevel
		solidity = waterSolidity
	}
	return shadowHeight, solidity, true
}

// squareShadow builds one of the square variants. Squares skip the animation
// pass and the tilt projection; only their radius responds to height.
func (g *Generator) squareShadow(st *shadowState, obj *game.Object, scale float32, solidity uint8, typ Type) *display.List {
	shadowHeight, solidity, ok := g.heightSolidity(st, obj.Pos, solidity)
	if !ok {
		return nil
	}

	distFromShadow := obj.Pos.Y - shadowHeight

	var radius float32
	switch typ {
	case TypeSquarePermanent:
		radius = scale / 2.0
	case TypeSquareScalable:
		radius = scaleWithDistance(scale, distFromShadow) * 0.5
	case TypeSquareTogglable:
		if distFromShadow >= falloffRange {
			radius = 0.0
		} else {
			radius = scale / 2.0
		}
	default:
		return nil
	}

	return g.rectangle(st, obj, radius, radius, -distFromShadow, solidity)
}

// rectangleShadow builds one of the hardcoded rectangle shadows, rejecting
// tags outside the fixed table.
func (g *Generator) rectangleShadow(st *shadowState, obj *game.Object, solidity uint8, typ Type) *display.List {
	idx := int(typ) - int(TypeRectSpindle)
	if idx < 0 || idx >= len(rectShadows) {
		g.log.Debug("unknown shadow type", zap.Uint8("type", uint8(typ)))
		return nil
	}
	rect := rectShadows[idx]

	shadowHeight, solidity, ok := g.heightSolidity(st, obj.Pos, solidity)
	if !ok {
		return nil
	}

	distFromShadow := obj.Pos.Y - shadowHeight

	halfWidth := rect.halfWidth
	halfLength := rect.halfLength
	if rect.scaleWithDistance {
		halfWidth = scaleWithDistance(halfWidth, distFromShadow)
		halfLength = scaleWithDistance(halfLength, distFromShadow)
	}

	return g.rectangle(st, obj, halfWidth, halfLength, -distFromShadow, solidity)
}

// rectangle emits a flat rectangular quad rotated into the owner's facing
// direction.
func (g *Generator) rectangle(st *shadowState, obj *game.Object, halfWidth, halfLength, relY float32, solidity uint8) *display.List {
	verts := g.pool.AllocVerts(display.QuadVertexCount)
	if verts == nil {
		return nil
	}

	frontLeftZ, frontLeftX := rotateRectCorner(-halfLength, -halfWidth, obj.FaceYaw)
	frontRightZ, frontRightX := rotateRectCorner(-halfLength, halfWidth, obj.FaceYaw)
	backLeftZ, backLeftX := rotateRectCorner(halfLength, -halfWidth, obj.FaceYaw)
	backRightZ, backRightX := rotateRectCorner(halfLength, halfWidth, obj.FaceYaw)

	makeVertexAt(st, verts, 0, frontLeftX, relY, frontLeftZ, solidity)
	makeVertexAt(st, verts, 1, frontRightX, relY, frontRightZ, solidity)
	makeVertexAt(st, verts, 2, backLeftX, relY, backLeftZ, solidity)
	makeVertexAt(st, verts, 3, backRightX, relY, backRightZ, solidity)

	return g.pool.AllocList(display.ShapeSquare, verts)
}

// rotateRectCorner rotates a rectangle corner at (oldZ, oldX), centered on
// the origin of the XZ plane, by the owner's facing yaw.
func rotateRectCorner(oldZ, oldX float32, yaw math.Angle) (newZ, newX float32) {
	sinYaw := math.Sins(yaw)
	cosYaw := math.Coss(yaw)
	newZ = oldZ*cosYaw - oldX*sinYaw
	newX = oldZ*sinYaw + oldX*cosYaw
	return newZ, newX
}
