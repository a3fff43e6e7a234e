package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithEntryPoints sets the vertex and fragment entry point names.
//
// Parameters:
//   - vertex: name of the @vertex function
//   - fragment: name of the @fragment function
//
// Returns:
//   - PipelineBuilderOption: a function that sets both entry points
func WithEntryPoints(vertex, fragment string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexEntryPoint = vertex
		p.fragmentEntryPoint = fragment
	}
}

// WithVertexLayout sets the per-vertex buffer layout of slot 0.
//
// Parameters:
//   - stride: size of one vertex in bytes
//   - attributes: the vertex attributes, matching the shader's @location inputs
//
// Returns:
//   - PipelineBuilderOption: a function that sets the vertex layout for this pipeline
func WithVertexLayout(stride uint64, attributes ...wgpu.VertexAttribute) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexStride = stride
		p.vertexAttributes = attributes
	}
}

// WithBlendEnabled sets whether blending is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend enabled state for this pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets the cull mode for this pipeline.
//
// Parameters:
//   - mode: the cull mode to use (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology for this pipeline.
//
// Parameters:
//   - topology: the primitive topology to use (e.g., wgpu.PrimitiveTopologyLineList)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the primitive topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order for this pipeline.
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask for this pipeline.
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithBlendState sets the blend state used when blending is enabled.
//
// Parameters:
//   - blendState: the blend state to use
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend state for this pipeline
func WithBlendState(blendState *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}
