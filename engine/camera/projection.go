package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type projectionImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	matrix mgl32.Mat4
}

// Projection holds perspective settings and the resulting projection matrix.
// The matrix maps depth to the WebGPU clip range [0, 1].
type Projection interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetFov sets the vertical field of view in radians and recomputes the matrix.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio and recomputes the matrix.
	SetAspect(aspect float32)

	// SetNear sets the near plane and recomputes the matrix.
	SetNear(near float32)

	// SetFar sets the far plane and recomputes the matrix.
	SetFar(far float32)

	// Matrix returns the column-major projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Matrix() mgl32.Mat4

	// ViewProjection combines the projection with a view matrix (projection * view).
	//
	// Parameters:
	//   - view: the camera's view matrix
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjection(view mgl32.Mat4) mgl32.Mat4
}

var _ Projection = &projectionImpl{}

// NewProjection creates a Projection with a 45 degree field of view, aspect 1, near 0.1 and far 100.
//
// Parameters:
//   - options: functional options to configure the projection
//
// Returns:
//   - Projection: the newly created projection
func NewProjection(options ...ProjectionBuilderOption) Projection {
	p := &projectionImpl{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0),
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(p)
	}
	p.updateMatrix()
	return p
}

func (p *projectionImpl) Fov() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fov
}

func (p *projectionImpl) Aspect() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.aspect
}

func (p *projectionImpl) Near() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.near
}

func (p *projectionImpl) Far() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.far
}

func (p *projectionImpl) SetFov(fov float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fov = fov
	p.updateMatrix()
}

func (p *projectionImpl) SetAspect(aspect float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aspect = aspect
	p.updateMatrix()
}

func (p *projectionImpl) SetNear(near float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.near = near
	p.updateMatrix()
}

func (p *projectionImpl) SetFar(far float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.far = far
	p.updateMatrix()
}

func (p *projectionImpl) Matrix() mgl32.Mat4 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matrix
}

func (p *projectionImpl) ViewProjection(view mgl32.Mat4) mgl32.Mat4 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matrix.Mul4(view)
}

// updateMatrix rebuilds the perspective matrix for a [0, 1] depth range.
// A zero aspect ratio (minimized window) keeps the previous matrix. Caller must hold the mutex.
func (p *projectionImpl) updateMatrix() {
	if p.aspect == 0 || p.near == p.far {
		return
	}
	f := 1.0 / float32(math.Tan(float64(p.fov)/2.0))
	p.matrix = mgl32.Mat4{}
	p.matrix[0] = f / p.aspect
	p.matrix[5] = f
	p.matrix[10] = p.far / (p.near - p.far)
	p.matrix[11] = -1.0
	p.matrix[14] = (p.near * p.far) / (p.near - p.far)
}

type ProjectionBuilderOption func(*projectionImpl)

// WithFov sets the vertical field of view in radians.
func WithFov(fov float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
func WithAspect(aspect float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - ProjectionBuilderOption: a function that sets both planes
func WithClipPlanes(near, far float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.near = near
		p.far = far
	}
}
