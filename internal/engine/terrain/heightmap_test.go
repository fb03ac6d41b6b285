package terrain

import (
	gomath "math"
	"testing"

	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestHeightAtInterpolatesBilinearly(t *testing.T) {
	hm := NewHeightmap(2, 2, 100)
	hm.SetHeight(1, 1, 40)

	tests := []struct {
		x, z, want float32
	}{
		{100, 100, 40}, // on the raised corner
		{50, 100, 20},  // halfway along X
		{100, 50, 20},  // halfway along Z
		{50, 50, 10},   // cell center
		{0, 0, 0},      // untouched corner
	}
	for _, tt := range tests {
		if got := hm.HeightAt(tt.x, tt.z); !near(got, tt.want, 0.001) {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestNormalAtTiltsAgainstTheGradient(t *testing.T) {
	hm := NewHeightmap(1, 1, 100)
	// Raise the +X edge so the cell climbs along X.
	hm.SetHeight(1, 0, 100)
	hm.SetHeight(1, 1, 100)

	n := hm.NormalAt(50, 50)
	want := float32(gomath.Sqrt(0.5))
	if !near(n.X, -want, 0.001) || !near(n.Y, want, 0.001) || !near(n.Z, 0, 0.001) {
		t.Errorf("NormalAt = %v, want (-%v, %v, 0)", n, want, want)
	}
}

func TestFindFloorOnTheMap(t *testing.T) {
	hm := NewHeightmap(2, 2, 100)
	hm.SetType(0, 0, surface.TypeBurning)

	floor, height, ok := hm.FindFloor(50, 200, 50)
	if !ok {
		t.Fatal("FindFloor(50, 200, 50) found no floor")
	}
	if height != 0 {
		t.Errorf("floor height = %v, want 0", height)
	}
	if floor.Type != surface.TypeBurning {
		t.Errorf("floor type = %d, want TypeBurning", floor.Type)
	}
	if got := floor.HeightAt(50, 50); !near(got, 0, 0.001) {
		t.Errorf("floor plane height = %v, want 0", got)
	}
}

func TestFindFloorOffTheMap(t *testing.T) {
	hm := NewHeightmap(2, 2, 100)
	if _, _, ok := hm.FindFloor(-10, 100, 50); ok {
		t.Error("FindFloor off the map west edge returned a floor")
	}
	if _, _, ok := hm.FindFloor(50, 100, 500); ok {
		t.Error("FindFloor past the north edge returned a floor")
	}
}

func TestFindFloorBelowTheTerrain(t *testing.T) {
	hm := NewHeightmap(1, 1, 100)
	for cx := 0; cx < 2; cx++ {
		for cz := 0; cz < 2; cz++ {
			hm.SetHeight(cx, cz, 50)
		}
	}
	if _, _, ok := hm.FindFloor(50, 10, 50); ok {
		t.Error("FindFloor below the terrain returned a floor")
	}
}

func TestWaterQueries(t *testing.T) {
	hm := NewHeightmap(2, 2, 100)

	if level := hm.FindWaterLevel(50, 50); level >= surface.HeightLowerLimit {
		t.Errorf("dry map water level = %v, want below %v", level, surface.HeightLowerLimit)
	}

	hm.SetWater(-30)
	level, waterFloor := hm.FindWaterLevelAndFloor(50, 50)
	if level != -30 {
		t.Errorf("water level = %v, want -30", level)
	}
	if waterFloor != nil {
		t.Errorf("SetWater returned a surface descriptor: %+v", waterFloor)
	}

	hm.SetWaterWithSurface(-30)
	level, waterFloor = hm.FindWaterLevelAndFloor(50, 50)
	if level != -30 {
		t.Errorf("water level = %v, want -30", level)
	}
	if waterFloor == nil {
		t.Fatal("SetWaterWithSurface returned no surface descriptor")
	}
	if waterFloor.Type != surface.TypeWater {
		t.Errorf("water surface type = %d, want TypeWater", waterFloor.Type)
	}
	if got := waterFloor.HeightAt(50, 50); got != -30 {
		t.Errorf("water surface height = %v, want -30", got)
	}
}

func TestWaterOffTheMap(t *testing.T) {
	hm := NewHeightmap(2, 2, 100)
	hm.SetWater(-30)
	if level := hm.FindWaterLevel(-50, 50); level >= surface.HeightLowerLimit {
		t.Errorf("off-map water level = %v, want below %v", level, surface.HeightLowerLimit)
	}
}
