// Package main is the entry point for the shadow viewer: a small scene with
// a heightmap terrain, a lava pool, and an object bobbing along a path with
// its procedural contact shadow recomputed every frame.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Planet-BB-Entertainment/SM64/internal/config"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/camera"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/display"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/renderer"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/shadow"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/terrain"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/window"
	"github.com/Planet-BB-Entertainment/SM64/internal/game"
	"github.com/Planet-BB-Entertainment/SM64/internal/logger"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shadow Viewer ===")

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Shadow Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		return err
	}
	defer rend.Close()

	hm := buildTerrain()
	rend.UploadTerrain(hm)

	pool := display.NewPool(cfg.Shadow.MaxQuads)
	gen := shadow.New(hm, pool, logger.Log)

	obj := &game.Object{}
	env := game.Env{Level: game.LevelNone, Area: 1}

	cam := camera.NewOrbit()
	cam.FitToBounds(0, 0, 1600, 1600)

	var t float32
	dragging := false

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED {
					rend.Resize(int(e.Data1), int(e.Data2))
				}
			}
		}

		t += 1.0 / 60.0
		animateObject(obj, hm, t)

		pool.Reset()
		var list *display.List
		if cfg.Shadow.Draw {
			list = gen.ShadowBelow(obj, env, cfg.Shadow.Scale, cfg.Shadow.Solidity, shadow.TypeCirclePlayer)
		}

		mvp := rend.Camera(cam.Position(), cam.Center)

		rend.Begin()
		rend.DrawTerrain(mvp)
		rend.DrawShadow(mvp, list, obj.Pos)
		win.SwapBuffers()
	}

	return nil
}

// buildTerrain makes a small rolling heightmap with a lava pool in one
// corner so both ground and water-box shadows are visible.
func buildTerrain() *terrain.Heightmap {
	const cells = 16
	const cellSize = 100.0

	hm := terrain.NewHeightmap(cells, cells, cellSize)

	for cx := 0; cx <= cells; cx++ {
		for cz := 0; cz <= cells; cz++ {
			x := float64(cx) / cells
			z := float64(cz) / cells
			height := 120*gomath.Sin(x*gomath.Pi*2) + 90*gomath.Cos(z*gomath.Pi*3)
			hm.SetHeight(cx, cz, float32(height))
		}
	}

	// Sink a lava pool into one corner.
	for cx := 2; cx < 6; cx++ {
		for cz := 2; cz < 6; cz++ {
			hm.SetType(cx, cz, surface.TypeBurning)
			hm.SetHeight(cx, cz, -250)
		}
	}
	hm.SetWater(-120)

	return hm
}

// animateObject moves the object along a loop over the terrain, bobbing up
// and down so the shadow's distance falloff shows.
func animateObject(obj *game.Object, hm *terrain.Heightmap, t float32) {
	x := 800 + 500*float32(gomath.Cos(float64(t)*0.7))
	z := 800 + 500*float32(gomath.Sin(float64(t)*0.7))
	ground := hm.HeightAt(x, z)
	y := ground + 150 + 400*float32(0.5+0.5*gomath.Sin(float64(t)*1.3))

	obj.Pos = math.Vec3{X: x, Y: y, Z: z}
	obj.FaceYaw = math.Atan2s(
		float32(gomath.Cos(float64(t)*0.7)),
		-float32(gomath.Sin(float64(t)*0.7)),
	)

	// The shadow dispatcher reuses this cached floor instead of re-querying.
	obj.Floor, obj.FloorHeight, _ = hm.FindFloor(x, y, z)
}
