package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/config"
	"github.com/Carmen-Shannon/oxy-cam/engine/frameclock"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine has no window")

// engine implements the Engine interface.
// Everything runs on the window thread: event callbacks first, then one Step per loop iteration.
type engine struct {
	window     window.Window
	renderer   renderer.Renderer
	camera     camera.Camera
	handler    input.InputHandler
	projection camera.Projection
	clock      *frameclock.Clock

	// Config reloads arrive from the watcher goroutine and are applied at the start of a frame.
	configs      <-chan *config.Config
	configErrors <-chan error

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	quitChannel chan struct{}
	quitOnce    sync.Once
}

// Engine drives one camera from window input and hands its matrices to the renderer once per frame.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	Window() window.Window

	// Camera returns the camera driven by the engine.
	Camera() camera.Camera

	// InputHandler returns the handler that receives the window's input events.
	InputHandler() input.InputHandler

	// Projection returns the projection combined with the camera's view matrix for rendering.
	Projection() camera.Projection

	// Step advances exactly one frame: pending config reloads are applied, held keys are polled,
	// the camera is updated and the frame is rendered, in that order.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - error: the renderer's error, if any
	Step(dt float32) error

	// Run processes window events and steps once per loop iteration until the window closes or Quit is called.
	//
	// Returns:
	//   - error: ErrNoWindow if the engine has no window
	Run() error

	// Quit asks Run to return after the current frame.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine. Any camera, handler, projection or clock not supplied through an
// option is created with its defaults; a handler is always bound to the engine's camera.
// When a window is given its input and resize events are wired to the handler, projection and renderer.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		if e.handler != nil {
			e.camera = e.handler.Camera()
		} else {
			e.camera = camera.NewCamera()
		}
	}
	if e.handler == nil {
		e.handler = input.NewInputHandler(e.camera)
	}
	if e.projection == nil {
		e.projection = camera.NewProjection()
	}
	if e.clock == nil {
		e.clock = frameclock.NewClock()
	}

	if e.window != nil {
		e.bindWindow()
		e.resize(e.window.Width(), e.window.Height())
	}
	return e
}

// bindWindow routes the window's callbacks into the input handler.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(e.onKeyDown)
	e.window.SetKeyUpCallback(e.onKeyUp)
	e.window.SetMouseMoveCallback(e.onMouseMove)
	e.window.SetScrollCallback(e.onScroll)
	e.window.SetResizeCallback(e.resize)
	e.window.SetUpdateCallback(e.frame)
}

func (e *engine) onKeyDown(key common.Key) {
	e.handler.OnKeyPressed(&input.KeyEvent{Key: key})
}

func (e *engine) onKeyUp(key common.Key) {
	e.handler.OnKeyReleased(&input.KeyEvent{Key: key})
}

func (e *engine) onMouseMove(x, y float32, buttons common.MouseButtonSet) {
	e.handler.OnMouseMove(&input.MouseMoveEvent{X: x, Y: y, Buttons: buttons})
}

func (e *engine) onScroll(dx, dy float32) {
	e.handler.OnMouseWheel(&input.WheelEvent{DeltaX: dx, DeltaY: dy})
}

// resize keeps the projection's aspect ratio and the renderer's surface in step with the framebuffer.
func (e *engine) resize(width, height int) {
	if width > 0 && height > 0 {
		e.projection.SetAspect(float32(width) / float32(height))
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) InputHandler() input.InputHandler {
	return e.handler
}

func (e *engine) Projection() camera.Projection {
	return e.projection
}

func (e *engine) Step(dt float32) error {
	e.applyConfigUpdates()

	e.handler.OnDraw(dt)
	e.camera.Update(dt)

	if e.renderer == nil {
		return nil
	}
	return e.renderer.Render(renderer.Frame{
		Camera:    camera.NewGPUCameraUniform(e.camera, e.projection),
		ShowPivot: e.camera.Mode() == camera.ModeOrbit,
		Pivot:     e.camera.Pivot(),
	})
}

// applyConfigUpdates drains every pending reload without blocking.
func (e *engine) applyConfigUpdates() {
	for {
		select {
		case cfg, ok := <-e.configs:
			if !ok {
				e.configs = nil
				continue
			}
			e.applyConfig(cfg)
		case err, ok := <-e.configErrors:
			if !ok {
				e.configErrors = nil
				continue
			}
			slog.Warn("config reload failed, keeping previous settings", "error", err)
		default:
			return
		}
	}
}

// applyConfig re-applies bindings and tunables. Camera placement and mode are session state and are kept.
func (e *engine) applyConfig(cfg *config.Config) {
	if err := cfg.Controls.Apply(e.handler); err != nil {
		slog.Warn("config controls rejected", "error", err)
	}
	cfg.Camera.Apply(e.camera)
	cfg.Projection.Apply(e.projection)
	slog.Info("config applied", "bindings", len(e.handler.KeyMap()))
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	defer func() {
		if e.renderer != nil {
			e.renderer.Release()
		}
		if err := e.window.Close(); err != nil {
			slog.Warn("window close failed", "error", err)
		}
	}()

	e.window.ProcessMessages()
	return nil
}

// frame runs once per window loop iteration. A panic stops the loop instead of crashing the process.
func (e *engine) frame() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("frame recovered from panic", "panic", fmt.Sprint(r))
			e.Quit()
		}
	}()

	select {
	case <-e.quitChannel:
		e.window.RequestClose()
		return
	default:
	}

	start := time.Now()
	dt := e.clock.Tick(start)
	if err := e.Step(dt); err != nil {
		slog.Debug("frame skipped", "error", err)
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}
