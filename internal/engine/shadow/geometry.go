package shadow

import (
	gomath "math"

	"github.com/Planet-BB-Entertainment/SM64/internal/engine/display"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// waterSolidity is the fixed opacity of shadows cast onto water or lava.
const waterSolidity = 200

// raisedOffset lifts shadow vertices while standing on a moving carpet.
const raisedOffset int16 = 5

// waterLevelBelow returns the water level under the shadow's parent, clamped
// to the lower-limit sentinel, and the distinct water surface descriptor if
// one exists. Marks the state as a water box when the parent floats above
// water that covers its floor.
func (g *Generator) waterLevelBelow(st *shadowState) (float32, *surface.Surface) {
	waterLevel, waterFloor := g.world.FindWaterLevelAndFloor(st.parentPos.X, st.parentPos.Z)
	if waterLevel < surface.HeightLowerLimit {
		return surface.HeightLowerLimit, waterFloor
	}
	if st.parentPos.Y >= waterLevel && st.floorHeight <= waterLevel {
		st.flags |= flagWaterBox
	}
	return waterLevel, waterFloor
}

// initShadow resolves the water state, falloff, and floor tilt for a shadow
// whose floor and floor height are already filled in. overwriteSolidity, when
// nonzero, replaces the state's opacity with its distance-dimmed value; zero
// leaves a previously interpolated opacity untouched. Returns false when no
// shadow should be drawn (overhanging or invalid floor).
func (g *Generator) initShadow(st *shadowState, pos math.Vec3, scale float32, overwriteSolidity uint8) bool {
	st.parentPos = pos

	waterLevel, waterFloor := g.waterLevelBelow(st)

	n := st.floor.Normal

	if st.flags&flagWaterBox != 0 {
		st.floorHeight = waterLevel

		if waterFloor != nil {
			st.floor = waterFloor
			st.flags &^= flagWaterBox
			st.flags |= flagWaterSurface
			st.solidity = waterSolidity
		} else {
			st.flags &^= flagWaterSurface
			// No descriptor for the water itself: assume it is flat.
			n = math.Vec3{X: 0, Y: 1, Z: 0}
		}
	} else {
		// Reject floors facing away from the sky and floors below the level's
		// meaningful range.
		if n.Y <= 0.0 || st.floorHeight < surface.HeightLowerLimit {
			return false
		}
	}

	dy := pos.Y - st.floorHeight

	if overwriteSolidity != 0 {
		st.solidity = dimWithDistance(overwriteSolidity, dy)
	}
	st.scale = scaleWithDistance(scale, dy)

	steepness := n.HorizontalLengthSq()
	if steepness != 0.0 {
		st.floorPitch = math.RightAngle - math.Atan2s(float32(gomath.Sqrt(float64(steepness))), n.Y)
		st.floorYaw = math.Atan2s(n.Z, n.X)
	} else {
		st.floorPitch = 0
		st.floorYaw = 0
	}
	return true
}

// cornerOffsets maps a corner index to its unit offsets on the XZ plane:
//
//	0 = (-1, -1)    1 = (1, -1)
//	2 = (-1,  1)    3 = (1,  1)
func cornerOffsets(index int) (x, z int32) {
	x = int32(index&0x1) - 1
	z = int32(index>>1) - 1
	if x == 0 {
		x = 1
	}
	if z == 0 {
		z = 1
	}
	return x, z
}

// texCoords returns the fixed texture coordinates for a corner index, on the
// same 2x2 grid as cornerOffsets scaled into the texel range.
func texCoords(index int) (u, v int16) {
	u = int16(index&0x1)*31 - 15
	v = int16(index>>1)*31 - 15
	return u, v
}

// vertexPosition computes the world position of one shadow quad corner. The
// half-extent along the floor's steepest-ascent axis is foreshortened by the
// floor pitch, then both half-extents are rotated by the floor yaw into world
// X/Z. The corner's height is then re-queried against the floor plane (or the
// flat water level), which keeps the quad glued to the surface even where the
// tilt projection alone would drift off it.
func vertexPosition(st *shadowState, index int) math.Vec3 {
	tiltedScale := math.Coss(st.floorPitch) * st.scale
	downwardAngle := st.floorYaw

	xUnit, zUnit := cornerOffsets(index)

	halfScale := float32(xUnit) * st.scale / 2.0
	halfTiltedScale := float32(zUnit) * tiltedScale / 2.0

	sinYaw := math.Sins(downwardAngle)
	cosYaw := math.Coss(downwardAngle)

	var p math.Vec3
	p.X = halfTiltedScale*sinYaw + halfScale*cosYaw + st.parentPos.X
	p.Z = halfTiltedScale*cosYaw - halfScale*sinYaw + st.parentPos.Z

	if st.flags&flagWaterBox != 0 {
		p.Y = st.floorHeight
	} else {
		p.Y = st.floor.HeightAt(p.X, p.Z)
	}
	return p
}

// makeVertexAt fills one display vertex at a parent-relative offset.
func makeVertexAt(st *shadowState, out []display.Vertex, index int, relX, relY, relZ float32, alpha uint8) {
	vtxY := roundToS16(relY)

	// Nudge the shadow up slightly while standing on a flying carpet.
	if st.flags&flagRaised != 0 {
		vtxY += raisedOffset
	}

	u, v := texCoords(index)

	out[index] = display.Vertex{
		X: roundToS16(relX),
		Y: vtxY,
		Z: roundToS16(relZ),
		U: u << 5,
		V: v << 5,
		// The texture carries the shape and darkness; vertex color only
		// carries opacity.
		R: 255, G: 255, B: 255,
		A: alpha,
	}
}

// makeVertex computes one projected quad corner and writes its vertex.
func makeVertex(st *shadowState, out []display.Vertex, index int) {
	solidity := st.solidity
	if st.flags&flagWaterBox != 0 {
		solidity = waterSolidity
	}

	p := vertexPosition(st, index)
	rel := p.Sub(st.parentPos)

	makeVertexAt(st, out, index, rel.X, rel.Y, rel.Z, solidity)
}

func roundToS16(v float32) int16 {
	return int16(int32(gomath.Round(float64(v))))
}
