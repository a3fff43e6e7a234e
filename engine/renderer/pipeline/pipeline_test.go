package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("lines", "// wgsl")

	assert.Equal(t, "lines", p.PipelineKey())
	assert.Equal(t, "// wgsl", p.Source())
	assert.Equal(t, DefaultVertexEntryPoint, p.VertexEntryPoint())
	assert.Equal(t, DefaultFragmentEntryPoint, p.FragmentEntryPoint())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.False(t, p.BlendEnabled())
	assert.NotNil(t, p.BlendState())
	assert.Nil(t, p.RenderPipeline())
}

func TestPipelineOptions(t *testing.T) {
	attrs := []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
	}
	blend := &wgpu.BlendState{}
	p := NewPipeline("lines", "",
		WithEntryPoints("vert", "frag"),
		WithVertexLayout(28, attrs...),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithBlendEnabled(true),
		WithBlendState(blend),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Equal(t, "vert", p.VertexEntryPoint())
	assert.Equal(t, "frag", p.FragmentEntryPoint())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.True(t, p.BlendEnabled())
	assert.Same(t, blend, p.BlendState())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())

	layout := p.VertexLayout()
	assert.Equal(t, uint64(28), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	assert.Equal(t, attrs, layout.Attributes)
}
