// Package renderer draws the demo scene: the terrain mesh and the shadow
// quads produced by the shadow generator each frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Planet-BB-Entertainment/SM64/internal/engine/display"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/shader"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/surface"
	"github.com/Planet-BB-Entertainment/SM64/internal/engine/terrain"
	"github.com/Planet-BB-Entertainment/SM64/internal/logger"
	"github.com/Planet-BB-Entertainment/SM64/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering for the shadow viewer.
type Renderer struct {
	config Config

	terrainProgram uint32
	terrainLocMVP  int32
	terrainVAO     uint32
	terrainVBO     uint32
	terrainCount   int32

	shadowProgram  uint32
	shadowLocMVP   int32
	shadowLocShape int32
	shadowVAO      uint32
	shadowVBO      uint32
}

// New creates a new renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.35, 0.55, 0.8, 1.0)

	var err error
	r.terrainProgram, err = shader.CompileProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.terrainLocMVP = shader.GetUniform(r.terrainProgram, "uMVP")

	r.shadowProgram, err = shader.CompileProgram(shadowVertexShader, shadowFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("shadow shader: %w", err)
	}
	r.shadowLocMVP = shader.GetUniform(r.shadowProgram, "uMVP")
	r.shadowLocShape = shader.GetUniform(r.shadowProgram, "uShape")

	r.setupShadowBuffers()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.terrainVAO != 0 {
		gl.DeleteVertexArrays(1, &r.terrainVAO)
	}
	if r.terrainVBO != 0 {
		gl.DeleteBuffers(1, &r.terrainVBO)
	}
	if r.shadowVAO != 0 {
		gl.DeleteVertexArrays(1, &r.shadowVAO)
	}
	if r.shadowVBO != 0 {
		gl.DeleteBuffers(1, &r.shadowVBO)
	}
	if r.terrainProgram != 0 {
		gl.DeleteProgram(r.terrainProgram)
	}
	if r.shadowProgram != 0 {
		gl.DeleteProgram(r.shadowProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Camera returns the view-projection matrix for an eye orbiting the scene
// center.
func (r *Renderer) Camera(eye, center math.Vec3) mgl32.Mat4 {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	proj := mgl32.Perspective(mgl32.DegToRad(45.0), aspect, 10.0, 20000.0)
	view := mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{center.X, center.Y, center.Z},
		mgl32.Vec3{0, 1, 0},
	)
	return proj.Mul4(view)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UploadTerrain builds the static terrain mesh from a heightmap. Each cell
// becomes two triangles colored by its material.
func (r *Renderer) UploadTerrain(hm *terrain.Heightmap) {
	var verts []float32

	appendVert := func(x, z float32, col [3]float32) {
		y := hm.HeightAt(x, z)
		verts = append(verts, x, y, z, col[0], col[1], col[2])
	}

	for cx := 0; cx < hm.CellsX; cx++ {
		for cz := 0; cz < hm.CellsZ; cz++ {
			x0 := float32(cx) * hm.CellSize
			z0 := float32(cz) * hm.CellSize
			x1 := x0 + hm.CellSize
			z1 := z0 + hm.CellSize
			col := materialColor(hm.TypeAt(x0+hm.CellSize/2, z0+hm.CellSize/2))

			appendVert(x0, z0, col)
			appendVert(x1, z0, col)
			appendVert(x1, z1, col)

			appendVert(x0, z0, col)
			appendVert(x1, z1, col)
			appendVert(x0, z1, col)
		}
	}

	r.terrainCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &r.terrainVAO)
	gl.BindVertexArray(r.terrainVAO)

	gl.GenBuffers(1, &r.terrainVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.terrainVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// DrawTerrain draws the uploaded terrain mesh.
func (r *Renderer) DrawTerrain(mvp mgl32.Mat4) {
	if r.terrainCount == 0 {
		return
	}
	gl.UseProgram(r.terrainProgram)
	gl.UniformMatrix4fv(r.terrainLocMVP, 1, false, &mvp[0])
	gl.BindVertexArray(r.terrainVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.terrainCount)
	gl.BindVertexArray(0)
}

func (r *Renderer) setupShadowBuffers() {
	gl.GenVertexArrays(1, &r.shadowVAO)
	gl.BindVertexArray(r.shadowVAO)

	gl.GenBuffers(1, &r.shadowVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shadowVBO)
	// 4 corners, interleaved position/uv/alpha, streamed every frame.
	gl.BufferData(gl.ARRAY_BUFFER, display.QuadVertexCount*6*4, nil, gl.STREAM_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, 6*4, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// DrawShadow draws one shadow display list at its parent's position. The
// list's vertices are parent-relative; the parent position rebases them into
// world space.
func (r *Renderer) DrawShadow(mvp mgl32.Mat4, list *display.List, parentPos math.Vec3) {
	if list == nil {
		return
	}

	// Triangle-strip order for the 2x2 corner grid.
	var verts [display.QuadVertexCount * 6]float32
	for i, v := range list.Verts {
		base := i * 6
		verts[base+0] = parentPos.X + float32(v.X)
		verts[base+1] = parentPos.Y + float32(v.Y)
		verts[base+2] = parentPos.Z + float32(v.Z)
		// Texture coordinates arrive in the s10.5 fixed range; map them back
		// to [0, 1].
		verts[base+3] = float32(v.U)/(31.0*32.0) + 0.5
		verts[base+4] = float32(v.V)/(31.0*32.0) + 0.5
		verts[base+5] = float32(v.A) / 255.0
	}

	gl.UseProgram(r.shadowProgram)
	gl.UniformMatrix4fv(r.shadowLocMVP, 1, false, &mvp[0])
	gl.Uniform1i(r.shadowLocShape, int32(list.Shape))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(-1.0, -1.0)
	gl.DepthMask(false)

	gl.BindVertexArray(r.shadowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shadowVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, display.QuadVertexCount)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.Disable(gl.BLEND)
}

func materialColor(typ surface.Type) [3]float32 {
	switch typ {
	case surface.TypeBurning:
		return [3]float32{0.85, 0.3, 0.1}
	case surface.TypeIce:
		return [3]float32{0.7, 0.85, 0.95}
	case surface.TypeDeathPlane:
		return [3]float32{0.1, 0.1, 0.1}
	default:
		return [3]float32{0.35, 0.6, 0.3}
	}
}
