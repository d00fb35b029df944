// Package renderer draws terrain meshes with OpenGL 4.1.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

// Material shininess for the specular highlight.
const shininess = 96

// Options holds the per-frame render toggles.
type Options struct {
	Wireframe bool
	Fog       bool
	FogNear   float32
	FogFar    float32
	FogColor  [3]float32
	LightDir  [3]float32
}

// TerrainRenderer uploads a terrain mesh and draws it lit per vertex.
// It must be created after the OpenGL context.
type TerrainRenderer struct {
	program uint32

	locViewProj  int32
	locLightDir  int32
	locCameraPos int32
	locShininess int32
	locFogUse    int32
	locFogNear   int32
	locFogFar    int32
	locFogColor  int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// New initializes OpenGL and compiles the terrain shader.
func New() (*TerrainRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	program, err := compileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program:      program,
		locViewProj:  uniform(program, "uViewProj"),
		locLightDir:  uniform(program, "uLightDir"),
		locCameraPos: uniform(program, "uCameraPos"),
		locShininess: uniform(program, "uShininess"),
		locFogUse:    uniform(program, "uFogUse"),
		locFogNear:   uniform(program, "uFogNear"),
		locFogFar:    uniform(program, "uFogFar"),
		locFogColor:  uniform(program, "uFogColor"),
	}, nil
}

// Upload replaces the current mesh with m.
func (r *TerrainRenderer) Upload(m *terrain.Mesh) {
	r.clearMesh()
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	var v terrain.Vertex
	stride := int32(unsafe.Sizeof(v))

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position, normal, texcoord, color
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, stride, unsafe.Offsetof(v.Color))
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(m.Indices))

	logger.Debug("terrain mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)
}

// Resize updates the viewport.
func (r *TerrainRenderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render clears the frame and draws the uploaded mesh.
func (r *TerrainRenderer) Render(viewProj mgl32.Mat4, cameraPos mgl32.Vec3, opts Options) {
	fog := opts.FogColor
	gl.ClearColor(fog[0], fog[1], fog[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.vao == 0 {
		return
	}

	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(r.locLightDir, opts.LightDir[0], opts.LightDir[1], opts.LightDir[2])
	gl.Uniform3f(r.locCameraPos, cameraPos[0], cameraPos[1], cameraPos[2])
	gl.Uniform1f(r.locShininess, shininess)

	if opts.Fog {
		gl.Uniform1i(r.locFogUse, 1)
		gl.Uniform1f(r.locFogNear, opts.FogNear)
		gl.Uniform1f(r.locFogFar, opts.FogFar)
		gl.Uniform3f(r.locFogColor, fog[0], fog[1], fog[2])
	} else {
		gl.Uniform1i(r.locFogUse, 0)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels reads back the current framebuffer as bottom-up RGBA rows.
func (r *TerrainRenderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (r *TerrainRenderer) clearMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

// Destroy releases all GL resources.
func (r *TerrainRenderer) Destroy() {
	r.clearMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
