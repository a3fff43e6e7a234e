package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Default shader entry points used when WithEntryPoints is not given.
const (
	DefaultVertexEntryPoint   = "vs_main"
	DefaultFragmentEntryPoint = "fs_main"
)

// pipeline is the implementation of the Pipeline interface.
// It describes a render pipeline drawn in the main pass; the backend creates the GPU object from it.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for labels and lookups
	pipelineKey string

	// source is a single WGSL module holding both the vertex and the fragment entry point.
	// Group 0 binding 0 is always the camera uniform.
	source             string
	vertexEntryPoint   string
	fragmentEntryPoint string
	vertexStride       uint64
	vertexAttributes   []wgpu.VertexAttribute
	renderPipeline     *wgpu.RenderPipeline
	blendEnabled       bool
	cullMode           wgpu.CullMode
	topology           wgpu.PrimitiveTopology
	frontFace          wgpu.FrontFace
	writeMask          wgpu.ColorWriteMask
	blendState         *wgpu.BlendState
}

// Pipeline describes a render pipeline: its WGSL source, vertex layout and rasterization state.
// The GPU pipeline object is attached by the renderer backend once created.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Source returns the WGSL source of the shader module.
	Source() string

	// VertexEntryPoint returns the name of the vertex shader entry point.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the fragment shader entry point.
	FragmentEntryPoint() string

	// VertexLayout returns the layout of the pipeline's single per-vertex buffer.
	//
	// Returns:
	//   - wgpu.VertexBufferLayout: stride and attributes of vertex buffer slot 0
	VertexLayout() wgpu.VertexBufferLayout

	// BlendEnabled returns whether blending is enabled for this pipeline.
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this pipeline.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline (e.g., wgpu.PrimitiveTopologyLineList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state used when blending is enabled.
	BlendState() *wgpu.BlendState

	// RenderPipeline returns the GPU pipeline, or nil before the backend has created it.
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline sets the render pipeline
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a pipeline description for a WGSL module.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - source: WGSL source containing both entry points
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey, source string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:        pipelineKey,
		source:             source,
		vertexEntryPoint:   DefaultVertexEntryPoint,
		fragmentEntryPoint: DefaultFragmentEntryPoint,
		blendEnabled:       false,
		cullMode:           wgpu.CullModeNone,
		topology:           wgpu.PrimitiveTopologyTriangleList,
		frontFace:          wgpu.FrontFaceCCW,
		writeMask:          wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Source() string {
	return p.source
}

func (p *pipeline) VertexEntryPoint() string {
	return p.vertexEntryPoint
}

func (p *pipeline) FragmentEntryPoint() string {
	return p.fragmentEntryPoint
}

func (p *pipeline) VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: p.vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  p.vertexAttributes,
	}
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
