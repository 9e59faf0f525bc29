// Package renderer provides OpenGL initialization and per-frame state
// for the still-life scene.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/internal/scene/shaders"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
}

const (
	nearPlane = 0.1
	farPlane  = 200.0
)

// Renderer owns the global GL state and the scene shader program.
type Renderer struct {
	config   Config
	uniforms *shader.Manager
}

// New initializes OpenGL and compiles the scene shader.
// Must be called AFTER the GL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

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
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}
	r.uniforms = shader.NewManager(program)
	r.uniforms.Use()

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Uniforms exposes the scene program's uniform sink.
func (r *Renderer) Uniforms() shader.Uniforms {
	return r.uniforms
}

// Close frees renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.uniforms != nil {
		r.uniforms.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and makes the scene program current.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.uniforms.Use()
}

// SetCamera uploads the per-frame view, projection, and eye position.
func (r *Renderer) SetCamera(view math.Mat4, eye math.Vec3) {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	projection := math.Perspective(math.Radians(r.config.FOVDegrees), aspect, nearPlane, farPlane)

	r.uniforms.SetMat4Value("view", view)
	r.uniforms.SetMat4Value("projection", projection)
	r.uniforms.SetVec3Value("viewPosition", eye.X, eye.Y, eye.Z)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Draws are immediate; nothing to flush.
}
