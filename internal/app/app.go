// Package app assembles the window, renderer, camera, and scene, and
// runs the main loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/input"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/renderer"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/window"
	"github.com/Faultbox/deskscene/internal/scene"
)

// App is the running application.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *scene.Scene
	meshes   *mesh.GLLibrary

	dragging bool
	lastX    int
	lastY    int
}

// New creates the app: window and GL context first, then the renderer,
// then the scene prepared against the live GL state.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)

	a := &App{
		config: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "deskscene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		FOVDegrees: cfg.Scene.FOVDegrees,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	a.camera.Distance = cfg.Scene.CameraDistance

	a.meshes = mesh.NewGLLibrary()
	a.scene = scene.New(scene.Config{
		Uniforms:    a.renderer.Uniforms(),
		Meshes:      a.meshes,
		Textures:    texture.NewRegistry(texture.NewGLUploader()),
		Materials:   material.NewRegistry(),
		TexturesDir: cfg.Scene.TexturesDir,
	})
	a.scene.Prepare()

	slog.Info("scene prepared")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.handleKeyboardPan()

		a.renderer.Begin()
		a.renderer.SetCamera(a.camera.ViewMatrix(), a.camera.Position())
		a.scene.RenderFrame()
		a.renderer.End()

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			if a.config.Scene.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("deskscene | %d fps", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies this frame's window, mouse, and key events.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				a.running = false
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.lastX = event.MouseX
				a.lastY = event.MouseY
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(
					float32(event.MouseX-a.lastX),
					float32(event.MouseY-a.lastY),
				)
				a.lastX = event.MouseX
				a.lastY = event.MouseY
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(event.Scroll)
		}
	}
}

// handleKeyboardPan moves the orbit center with WASD and Q/E for height.
func (a *App) handleKeyboardPan() {
	var forward, right, up float32
	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_W] != 0 {
		forward++
	}
	if keys[sdl.SCANCODE_S] != 0 {
		forward--
	}
	if keys[sdl.SCANCODE_D] != 0 {
		right++
	}
	if keys[sdl.SCANCODE_A] != 0 {
		right--
	}
	if keys[sdl.SCANCODE_E] != 0 {
		up++
	}
	if keys[sdl.SCANCODE_Q] != 0 {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		a.camera.HandleMovement(forward, right, up)
	}
}

// Close cleans up in reverse creation order.
func (a *App) Close() {
	slog.Info("closing")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.meshes != nil {
		a.meshes.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
