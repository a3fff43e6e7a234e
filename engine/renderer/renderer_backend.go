package renderer

import "github.com/Carmen-Shannon/oxy-cam/engine/renderer/pipeline"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// BufferHandle identifies a vertex buffer created by the backend.
type BufferHandle int

// RendererBackend is the GPU API behind the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given size in pixels.
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// WriteCameraUniform queues a write of the serialized camera uniform.
	//
	// Parameters:
	//   - data: the bytes produced by camera.GPUCameraUniform.Marshal
	WriteCameraUniform(data []byte)

	// RegisterPipeline creates the GPU render pipeline for p with the camera bind group at group 0
	// and attaches it to p.
	//
	// Parameters:
	//   - p: the pipeline description
	//
	// Returns:
	//   - error: an error if the shader module or pipeline could not be created
	RegisterPipeline(p pipeline.Pipeline) error

	// CreateVertexBuffer allocates a vertex buffer that can be written with WriteVertexBuffer.
	//
	// Parameters:
	//   - label: debug label
	//   - size: buffer size in bytes
	//
	// Returns:
	//   - BufferHandle: handle for later writes and draws
	//   - error: an error if the buffer could not be created
	CreateVertexBuffer(label string, size int) (BufferHandle, error)

	// WriteVertexBuffer queues a write to the start of a vertex buffer.
	WriteVertexBuffer(handle BufferHandle, data []byte)

	// Draw records a non-indexed draw of the buffer's first vertexCount vertices into the main pass.
	// Must be called between BeginFrame and EndFrame.
	//
	// Parameters:
	//   - p: a pipeline previously passed to RegisterPipeline
	//   - handle: the vertex buffer to draw from
	//   - vertexCount: number of vertices to draw
	Draw(p pipeline.Pipeline, handle BufferHandle, vertexCount int)

	// BeginFrame acquires the next swapchain texture and begins the main render pass.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Release frees every GPU object owned by the backend.
	Release()
}
