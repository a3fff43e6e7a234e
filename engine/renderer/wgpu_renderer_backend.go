package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	configured    bool
	presentMode   wgpu.PresentMode
	clearColor    wgpu.Color

	// The camera uniform lives at group 0, binding 0 for any pipeline drawn in the main pass.
	cameraBuffer          *wgpu.Buffer
	cameraBindGroupLayout *wgpu.BindGroupLayout
	cameraBindGroup       *wgpu.BindGroup

	vertexBuffers []*wgpu.Buffer
	pipelines     []*wgpu.RenderPipeline

	// Frame state between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, clearColor wgpu.Color) *wgpuRendererBackendImpl {
	runtime.LockOSThread()
	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		clearColor:  clearColor,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()
	b.surfaceFormat = b.surface.GetCapabilities(b.adapter).Formats[0]

	if err := b.initCameraBinding(); err != nil {
		panic(err)
	}
	return b
}

// initCameraBinding creates the camera uniform buffer with its bind group layout and bind group.
func (b *wgpuRendererBackendImpl) initCameraBinding() error {
	size := uint64(unsafe.Sizeof(camera.GPUCameraUniform{}))

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("renderer: camera buffer: %w", err)
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: size,
				},
			},
		},
	})
	if err != nil {
		buf.Release()
		return fmt.Errorf("renderer: camera bind group layout: %w", err)
	}

	group, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		layout.Release()
		buf.Release()
		return fmt.Errorf("renderer: camera bind group: %w", err)
	}

	b.cameraBuffer = buf
	b.cameraBindGroupLayout = layout
	b.cameraBindGroup = group
	return nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.configured = true
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) WriteCameraUniform(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue.WriteBuffer(b.cameraBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) RegisterPipeline(p pipeline.Pipeline) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: p.PipelineKey(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: p.Source(),
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: %s shader module: %w", p.PipelineKey(), err)
	}
	defer module.Release()

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.cameraBindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("renderer: %s pipeline layout: %w", p.PipelineKey(), err)
	}
	defer pipelineLayout.Release()

	target := wgpu.ColorTargetState{
		Format:    b.surfaceFormat,
		WriteMask: p.WriteMask(),
	}
	if p.BlendEnabled() {
		target.Blend = p.BlendState()
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: p.VertexEntryPoint(),
			Buffers:    []wgpu.VertexBufferLayout{p.VertexLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: p.FragmentEntryPoint(),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: %s render pipeline: %w", p.PipelineKey(), err)
	}

	b.pipelines = append(b.pipelines, created)
	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuRendererBackendImpl) CreateVertexBuffer(label string, size int) (BufferHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label + " Vertex Buffer",
		Size:             uint64(size),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return 0, fmt.Errorf("renderer: %s vertex buffer: %w", label, err)
	}
	b.vertexBuffers = append(b.vertexBuffers, buf)
	return BufferHandle(len(b.vertexBuffers) - 1), nil
}

func (b *wgpuRendererBackendImpl) WriteVertexBuffer(handle BufferHandle, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if int(handle) < 0 || int(handle) >= len(b.vertexBuffers) || len(data) == 0 {
		return
	}
	b.queue.WriteBuffer(b.vertexBuffers[handle], 0, data)
}

func (b *wgpuRendererBackendImpl) Draw(p pipeline.Pipeline, handle BufferHandle, vertexCount int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	renderPipeline := p.RenderPipeline()
	if b.framePass == nil || renderPipeline == nil || vertexCount <= 0 {
		return
	}
	if int(handle) < 0 || int(handle) >= len(b.vertexBuffers) {
		return
	}

	b.framePass.SetPipeline(renderPipeline)
	b.framePass.SetBindGroup(0, b.cameraBindGroup, nil)
	b.framePass.SetVertexBuffer(0, b.vertexBuffers[handle], 0, wgpu.WholeSize)
	b.framePass.Draw(uint32(vertexCount), 1, 0, 0)
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return fmt.Errorf("surface is not configured")
	}
	// A surface image that was never presented must not be acquired twice.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Main Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
	})
	pass.SetBindGroup(0, b.cameraBindGroup, nil)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		b.releaseFrameSurface()
		return
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()
	b.releaseFrameSurface()
}

// releaseFrameSurface drops the acquired swapchain view and texture. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseFrameSurface() {
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseFrameSurface()
	for _, rp := range b.pipelines {
		rp.Release()
	}
	b.pipelines = nil
	for _, buf := range b.vertexBuffers {
		buf.Release()
	}
	b.vertexBuffers = nil
	if b.cameraBindGroup != nil {
		b.cameraBindGroup.Release()
		b.cameraBindGroup = nil
	}
	if b.cameraBindGroupLayout != nil {
		b.cameraBindGroupLayout.Release()
		b.cameraBindGroupLayout = nil
	}
	if b.cameraBuffer != nil {
		b.cameraBuffer.Release()
		b.cameraBuffer = nil
	}
	if b.device != nil {
		b.device.Release()
	}
	if b.adapter != nil {
		b.adapter.Release()
	}
	if b.surface != nil {
		b.surface.Release()
	}
	if b.instance != nil {
		b.instance.Release()
	}
}
