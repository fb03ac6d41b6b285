// Package terrain provides a heightmap-backed collision world: bilinear
// height lookup, gradient normals, per-cell surface materials, and an
// optional water plane. It implements surface.World for the shadow system
// and feeds the demo renderer its mesh.
package terrain

import (
	gomath "math"

	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// noWaterLevel is what water queries return when the map has no water. It
// sits below surface.HeightLowerLimit so callers treat it as absent.
const noWaterLevel float32 = -11000.0

// Heightmap is a regular grid of corner heights with per-cell materials.
// Cell (cx, cz) spans world [cx*CellSize, (cx+1)*CellSize) on X and likewise
// on Z; heights are stored at the (CellsX+1) x (CellsZ+1) corners.
type Heightmap struct {
	CellsX   int
	CellsZ   int
	CellSize float32

	heights [][]float32      // corner heights, [CellsX+1][CellsZ+1]
	types   [][]surface.Type // cell materials, [CellsX][CellsZ]

	waterLevel   float32
	hasWater     bool
	waterSurface *surface.Surface
}

// NewHeightmap allocates a flat heightmap of cellsX by cellsZ cells.
func NewHeightmap(cellsX, cellsZ int, cellSize float32) *Heightmap {
	heights := make([][]float32, cellsX+1)
	for x := range heights {
		heights[x] = make([]float32, cellsZ+1)
	}
	types := make([][]surface.Type, cellsX)
	for x := range types {
		types[x] = make([]surface.Type, cellsZ)
	}
	return &Heightmap{
		CellsX:     cellsX,
		CellsZ:     cellsZ,
		CellSize:   cellSize,
		heights:    heights,
		types:      types,
		waterLevel: noWaterLevel,
	}
}

// SetHeight sets the height of the corner at grid position (cx, cz).
func (h *Heightmap) SetHeight(cx, cz int, height float32) {
	h.heights[cx][cz] = height
}

// HeightAtCorner returns the stored height of grid corner (cx, cz).
func (h *Heightmap) HeightAtCorner(cx, cz int) float32 {
	return h.heights[cx][cz]
}

// SetType sets the material of cell (cx, cz).
func (h *Heightmap) SetType(cx, cz int, typ surface.Type) {
	h.types[cx][cz] = typ
}

// SetWater places a flat water plane across the whole map. The water has no
// distinct surface descriptor; consumers fall back to the flat-water
// assumption.
func (h *Heightmap) SetWater(level float32) {
	h.waterLevel = level
	h.hasWater = true
	h.waterSurface = nil
}

// SetWaterWithSurface places a water plane that also exposes a real surface
// descriptor for the water itself.
func (h *Heightmap) SetWaterWithSurface(level float32) {
	h.waterLevel = level
	h.hasWater = true
	h.waterSurface = surface.FlatAt(level, surface.TypeWater)
}

// HeightAt returns the bilinearly interpolated terrain height at a world
// position. Positions outside the map clamp to the border cells.
func (h *Heightmap) HeightAt(worldX, worldZ float32) float32 {
	cx, cz, fx, fz := h.locate(worldX, worldZ)

	// Lerp along both X edges, then between them along Z.
	south := h.heights[cx][cz]*(1-fx) + h.heights[cx+1][cz]*fx
	north := h.heights[cx][cz+1]*(1-fx) + h.heights[cx+1][cz+1]*fx
	return south*(1-fz) + north*fz
}

// NormalAt returns the terrain normal at a world position, from the height
// gradient of the containing cell.
func (h *Heightmap) NormalAt(worldX, worldZ float32) math.Vec3 {
	cx, cz, _, _ := h.locate(worldX, worldZ)

	// Gradient from the cell's edge midpoints.
	dx := (h.heights[cx+1][cz] + h.heights[cx+1][cz+1] - h.heights[cx][cz] - h.heights[cx][cz+1]) / 2.0
	dz := (h.heights[cx][cz+1] + h.heights[cx+1][cz+1] - h.heights[cx][cz] - h.heights[cx+1][cz]) / 2.0

	n := math.Vec3{X: -dx / h.CellSize, Y: 1, Z: -dz / h.CellSize}
	return n.Normalize()
}

// TypeAt returns the material of the cell containing a world position.
func (h *Heightmap) TypeAt(worldX, worldZ float32) surface.Type {
	cx, cz, _, _ := h.locate(worldX, worldZ)
	return h.types[cx][cz]
}

// Contains reports whether a world position lies on the map.
func (h *Heightmap) Contains(worldX, worldZ float32) bool {
	return worldX >= 0 && worldZ >= 0 &&
		worldX <= float32(h.CellsX)*h.CellSize &&
		worldZ <= float32(h.CellsZ)*h.CellSize
}

// locate converts a world position to a clamped cell index plus the
// fractional position inside that cell.
func (h *Heightmap) locate(worldX, worldZ float32) (cx, cz int, fx, fz float32) {
	cellFX := worldX / h.CellSize
	cellFZ := worldZ / h.CellSize

	cx = clampi(int(gomath.Floor(float64(cellFX))), 0, h.CellsX-1)
	cz = clampi(int(gomath.Floor(float64(cellFZ))), 0, h.CellsZ-1)

	fx = clampf(cellFX-float32(cx), 0, 1)
	fz = clampf(cellFZ-float32(cz), 0, 1)
	return cx, cz, fx, fz
}

// FindFloor returns the local terrain plane under (x, y, z). The plane
// passes through the interpolated surface point with the cell's gradient
// normal, so plane height queries nearby stay on the terrain. Positions off
// the map, or below it, have no floor.
func (h *Heightmap) FindFloor(x, y, z float32) (*surface.Surface, float32, bool) {
	if !h.Contains(x, z) {
		return nil, 0, false
	}
	height := h.HeightAt(x, z)
	if height > y {
		return nil, 0, false
	}
	n := h.NormalAt(x, z)
	floor := surface.Through(n, math.Vec3{X: x, Y: height, Z: z}, h.TypeAt(x, z))
	return floor, height, true
}

// FindWaterLevelAndFloor returns the water level over (x, z) plus the water
// surface descriptor when the map carries one.
func (h *Heightmap) FindWaterLevelAndFloor(x, z float32) (float32, *surface.Surface) {
	level := h.FindWaterLevel(x, z)
	if level < surface.HeightLowerLimit {
		return level, nil
	}
	return level, h.waterSurface
}

// FindWaterLevel returns the water level over (x, z), or a value below
// surface.HeightLowerLimit when there is none.
func (h *Heightmap) FindWaterLevel(x, z float32) float32 {
	if !h.hasWater || !h.Contains(x, z) {
		return noWaterLevel
	}
	return h.waterLevel
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
