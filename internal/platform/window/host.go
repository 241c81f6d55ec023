//go:build gl

// Package window hosts the game in an OpenGL window. Every draw is the same
// unit quad positioned through uniforms.
package window

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/engine"
	"github.com/vovakirdan/chad-snake/internal/registry"
)

const title = "Chad Snake"

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()

	registry.Register("gl", func() registry.Host { return Runner{} })
}

// Runner opens a window and drives the loop in it.
type Runner struct{}

// ID implements registry.Host.
func (Runner) ID() string { return "gl" }

// Title implements registry.Host.
func (Runner) Title() string { return "OpenGL window (GLFW)" }

// Run implements registry.Host. It must be called from the main goroutine.
func (Runner) Run(ctx context.Context, loop *engine.Loop, cfg core.RuntimeConfig, logger *log.Logger) error {
	h, err := Open(cfg, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	return loop.Run(ctx, h)
}

// Host is an engine.Host backed by a GLFW window.
type Host struct {
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32

	uOffset int32
	uScale  int32
	uColor  int32

	queue  *core.EventQueue
	clock  *engine.WallClock
	logger *log.Logger
}

// Open creates the window, GL context and quad pipeline.
func Open(cfg core.RuntimeConfig, logger *log.Logger) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(cfg.ScreenW, cfg.ScreenH, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram()
	if err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("shader program: %w", err)
	}

	h := &Host{
		window:  w,
		program: program,
		queue:   core.NewEventQueue(),
		clock:   engine.NewWallClock(),
		logger:  logger,
	}
	h.vao, h.vbo = newQuadVAO()
	h.uOffset = gl.GetUniformLocation(program, gl.Str("uOffset\x00"))
	h.uScale = gl.GetUniformLocation(program, gl.Str("uScale\x00"))
	h.uColor = gl.GetUniformLocation(program, gl.Str("uColor\x00"))

	fbw, fbh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	w.SetKeyCallback(h.onKey)

	gl.UseProgram(program)
	gl.BindVertexArray(h.vao)
	return h, nil
}

func (h *Host) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	a, ok := mapAction(action)
	if !ok {
		return
	}
	h.queue.Push(core.KeyEvent{Key: mapKey(key), Action: a})
}

// DrawQuad implements core.Drawer.
func (h *Host) DrawQuad(offsetX, offsetY, scaleX, scaleY float64, c core.Color) {
	gl.Uniform2f(h.uOffset, float32(offsetX), float32(offsetY))
	gl.Uniform2f(h.uScale, float32(scaleX), float32(scaleY))
	gl.Uniform3f(h.uColor, float32(c.R), float32(c.G), float32(c.B))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// Clear implements engine.Surface.
func (h *Host) Clear(c core.Color) {
	gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Elapsed implements core.Clock.
func (h *Host) Elapsed() float64 {
	return h.clock.Elapsed()
}

// PollEvents processes window events and returns the keys queued since the
// previous call.
func (h *Host) PollEvents() []core.KeyEvent {
	glfw.PollEvents()
	return h.queue.Drain()
}

// Present swaps the back buffer to the screen.
func (h *Host) Present() {
	h.window.SwapBuffers()
}

// ShouldClose reports whether the window was asked to close.
func (h *Host) ShouldClose() bool {
	return h.window.ShouldClose()
}

// Close releases GL objects and the window.
func (h *Host) Close() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteProgram(h.program)
	h.window.Destroy()
	glfw.Terminate()
	h.logger.Debug("window closed")
}
