package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/config"
	"github.com/Carmen-Shannon/oxy-cam/engine/frameclock"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithWindow sets the window that supplies input events and drives the frame loop.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that receives the camera each frame.
//
// Parameters:
//   - r: the renderer, usually created from the same window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera to drive.
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithInputHandler sets the input handler. Its camera becomes the engine's camera unless WithCamera is also given.
func WithInputHandler(h input.InputHandler) EngineBuilderOption {
	return func(e *engine) {
		e.handler = h
	}
}

// WithProjection sets the projection used to build the camera uniform.
func WithProjection(p camera.Projection) EngineBuilderOption {
	return func(e *engine) {
		e.projection = p
	}
}

// WithClock sets the frame clock, e.g. one with stats logging enabled.
func WithClock(c *frameclock.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithConfigUpdates subscribes the engine to config reloads, typically a config.Watcher's channels.
// Reloads are applied at the start of the next frame.
//
// Parameters:
//   - configs: channel of reloaded configs
//   - errs: channel of reload errors, logged and otherwise ignored (may be nil)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigUpdates(configs <-chan *config.Config, errs <-chan error) EngineBuilderOption {
	return func(e *engine) {
		e.configs = configs
		e.configErrors = errs
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
