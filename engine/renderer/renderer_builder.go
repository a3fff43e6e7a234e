package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithClearColor sets the color the main pass clears to.
//
// Parameters:
//   - red, green, blue, alpha: color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to a renderer
func WithClearColor(red, green, blue, alpha float64) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithGrid sets the reference grid drawn on the XZ plane.
//
// Parameters:
//   - halfLines: lines on each side of the origin; a negative value disables the grid
//   - spacing: distance between lines in world units
//
// Returns:
//   - RendererBuilderOption: a function that applies the grid option to a renderer
func WithGrid(halfLines int, spacing float32) RendererBuilderOption {
	return func(r *renderer) {
		r.showGrid = halfLines >= 0 && spacing > 0
		r.gridHalfLines = halfLines
		r.gridSpacing = spacing
	}
}

// WithPivotMarkerSize sets the half-length of the orbit pivot marker's arms.
func WithPivotMarkerSize(size float32) RendererBuilderOption {
	return func(r *renderer) {
		r.pivotMarkerSize = size
	}
}
