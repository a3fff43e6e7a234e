package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything the renderer reads from the camera for one frame.
type Frame struct {
	// Camera is the view-projection and eye position captured after the camera's Update.
	Camera camera.GPUCameraUniform

	// ShowPivot draws a marker at Pivot, typically while the camera is in orbit mode.
	ShowPivot bool
	Pivot     mgl32.Vec3
}

// SurfaceSource provides a platform surface and its size in pixels. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

type renderer struct {
	mu *sync.Mutex

	backend RendererBackend

	width  int
	height int

	// Scene overlays, created by initLines
	lines       pipeline.Pipeline
	gridBuffer  BufferHandle
	gridCount   int
	pivotBuffer BufferHandle

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	clearColor           wgpu.Color
	showGrid             bool
	gridHalfLines        int
	gridSpacing          float32
	pivotMarkerSize      float32
}

// Renderer is the consumer of the camera's matrices. Each frame it uploads the camera uniform,
// draws a reference grid and the optional pivot marker, and presents the surface.
type Renderer interface {
	// Render uploads the frame's camera uniform, runs the main pass and presents the surface.
	// A zero-sized (minimized) surface is skipped without error.
	//
	// Parameters:
	//   - frame: the camera state for this frame
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Render(frame Frame) error

	// Resize reconfigures the surface for a new size.
	// This should be called when re-sizing the window.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: PresentModeVSync or PresentModeUncapped
	SetPresentMode(mode PresentMode)

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer presenting to the given surface. Panics if no adapter
// or device can be obtained.
//
// Parameters:
//   - surface: source of the platform surface descriptor and initial size, usually the window
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(surface SurfaceSource, options ...RendererBuilderOption) Renderer {
	r := newRenderer(options...)
	r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.clearColor)
	r.backend.SetPresentMode(r.presentMode)
	if err := r.initLines(); err != nil {
		panic(err)
	}
	r.resize(surface.Width(), surface.Height())
	return r
}

func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},

		showGrid:        true,
		gridHalfLines:   20,
		gridSpacing:     1,
		pivotMarkerSize: 0.25,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// initLines registers the lines pipeline and uploads the static grid.
func (r *renderer) initLines() error {
	r.lines = newLinesPipeline()
	if err := r.backend.RegisterPipeline(r.lines); err != nil {
		return err
	}

	if r.showGrid {
		grid := marshalLineVertices(GridVertices(r.gridHalfLines, r.gridSpacing))
		handle, err := r.backend.CreateVertexBuffer("Grid", len(grid))
		if err != nil {
			return err
		}
		r.backend.WriteVertexBuffer(handle, grid)
		r.gridBuffer = handle
		r.gridCount = len(grid) / lineVertexSize
	}

	handle, err := r.backend.CreateVertexBuffer("Pivot Marker", pivotMarkerVertexCount*lineVertexSize)
	if err != nil {
		return err
	}
	r.pivotBuffer = handle
	return nil
}

func (r *renderer) Render(frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	r.backend.WriteCameraUniform(frame.Camera.Marshal())
	if frame.ShowPivot {
		r.backend.WriteVertexBuffer(r.pivotBuffer, marshalLineVertices(PivotMarkerVertices(frame.Pivot, r.pivotMarkerSize)))
	}
	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("renderer: begin frame: %w", err)
	}
	if r.gridCount > 0 {
		r.backend.Draw(r.lines, r.gridBuffer, r.gridCount)
	}
	if frame.ShowPivot {
		r.backend.Draw(r.lines, r.pivotBuffer, pivotMarkerVertexCount)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resize(width, height)
}

// resize records the new size and reconfigures the surface unless it is empty. Caller must hold the mutex.
func (r *renderer) resize(width, height int) {
	r.width = width
	r.height = height
	if width > 0 && height > 0 {
		r.backend.ConfigureSurface(width, height)
	}
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	r.resize(r.width, r.height)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
