package camera

import (
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	mode Mode

	// desired is where user input says the camera should be; current trails it and is what gets rendered.
	desired transform.Transform
	current transform.Transform

	// Distance from the camera to the orbit pivot along its forward axis.
	desiredTargetDistance float32
	currentTargetDistance float32

	// target is the initial look-at point, applied once after all builder options.
	target mgl32.Vec3

	// Per-frame accumulators, consumed and zeroed by Update.
	movementInput    mgl32.Vec3
	rotationInput    mgl32.Vec2
	movementSpeedMod float32

	moveSpeed         float32
	panSpeed          float32
	zoomSpeed         float32
	fpsRotationSpeed  float32
	tbRotationSpeed   float32
	movementSmoothing float32
	rotationSmoothing float32
	enableAllControls bool
	worldUp           mgl32.Vec3

	modelMatrix mgl32.Mat4
	viewMatrix  mgl32.Mat4
}

// Camera defines the interface for the dual-mode camera.
// Input methods accumulate into per-frame buffers in any order; Update consumes them once per frame,
// advances the desired transform immediately and smooths the current transform toward it.
type Camera interface {
	// Mode returns the active control mode.
	//
	// Returns:
	//   - Mode: ModeOrbit or ModeFly
	Mode() Mode

	// SetMode switches the control mode. Pending input is kept and integrated under the new mode.
	//
	// Parameters:
	//   - mode: the new mode
	SetMode(mode Mode)

	// RotateH accumulates a horizontal rotation (yaw about the world up axis), scaled by the
	// mode's rotation speed. Positive values turn the view to the left.
	//
	// Parameters:
	//   - dPhi: rotation input in input units (pixels, key ticks)
	RotateH(dPhi float32)

	// RotateV accumulates a vertical rotation (pitch about the local X axis), scaled by the
	// mode's rotation speed. Positive values raise the view.
	//
	// Parameters:
	//   - dTheta: rotation input in input units
	RotateV(dTheta float32)

	// MoveX accumulates movement along the local X axis. Only active in ModeFly or with EnableAllControls.
	//
	// Parameters:
	//   - d: movement input, scaled by MoveSpeed
	MoveX(d float32)

	// MoveY accumulates movement along the local Y axis. Only active in ModeFly or with EnableAllControls.
	//
	// Parameters:
	//   - d: movement input, scaled by MoveSpeed
	MoveY(d float32)

	// MoveZ accumulates movement along the local Z axis (negative is forward).
	// Only active in ModeFly or with EnableAllControls.
	//
	// Parameters:
	//   - d: movement input, scaled by MoveSpeed
	MoveZ(d float32)

	// PanH accumulates a sideways pan of the whole orbit rig. Only active in ModeOrbit or with EnableAllControls.
	//
	// Parameters:
	//   - d: pan input, scaled by PanSpeed
	PanH(d float32)

	// PanV accumulates a vertical pan of the whole orbit rig. Only active in ModeOrbit or with EnableAllControls.
	//
	// Parameters:
	//   - d: pan input, scaled by PanSpeed
	PanV(d float32)

	// Zoom accumulates a dolly toward the pivot (positive) or away from it (negative).
	// Only active in ModeOrbit or with EnableAllControls.
	//
	// Parameters:
	//   - dz: zoom input, scaled by ZoomSpeed
	Zoom(dz float32)

	// SetPosition moves the camera. Without interpolation the rendered state snaps immediately.
	//
	// Parameters:
	//   - position: world-space position
	//   - interpolate: true to animate toward the new position
	SetPosition(position mgl32.Vec3, interpolate bool)

	// SetTarget points the camera at target and makes it the orbit pivot.
	// A target equal to the camera position leaves the orientation unchanged.
	//
	// Parameters:
	//   - target: world-space point to look at
	//   - interpolate: true to animate toward the new orientation and pivot distance
	SetTarget(target mgl32.Vec3, interpolate bool)

	// Update integrates one frame of accumulated input and smooths the rendered state.
	// Must be called exactly once per frame, after all of the frame's input has been delivered.
	//
	// Parameters:
	//   - dt: seconds since the previous frame, clamped to [common.MinDeltaTime, common.MaxDeltaTime]
	Update(dt float32)

	// ModelMatrix returns the world matrix of the current transform as of the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the camera's model matrix
	ModelMatrix() mgl32.Mat4

	// ViewMatrix returns the inverse of ModelMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// Current returns a copy of the smoothed transform used for rendering.
	Current() transform.Transform

	// Desired returns a copy of the transform the camera is moving toward.
	Desired() transform.Transform

	// CurrentTargetDistance returns the smoothed pivot distance.
	CurrentTargetDistance() float32

	// DesiredTargetDistance returns the pivot distance the camera is moving toward.
	DesiredTargetDistance() float32

	// Pivot returns the world-space orbit pivot of the current transform.
	//
	// Returns:
	//   - mgl32.Vec3: current position + current forward * current target distance
	Pivot() mgl32.Vec3

	// MovementInput returns the movement accumulated since the last Update.
	MovementInput() mgl32.Vec3

	// RotationInput returns the rotation (yaw, pitch) in radians accumulated since the last Update.
	RotationInput() mgl32.Vec2

	// ZoomFloor returns the minimum pivot distance zoom may reach (0.01 * ZoomSpeed).
	ZoomFloor() float32

	MoveSpeed() float32
	SetMoveSpeed(speed float32)
	PanSpeed() float32
	SetPanSpeed(speed float32)
	ZoomSpeed() float32
	SetZoomSpeed(speed float32)
	FpsRotationSpeed() float32
	SetFpsRotationSpeed(speed float32)
	TbRotationSpeed() float32
	SetTbRotationSpeed(speed float32)
	MovementSmoothing() float32
	SetMovementSmoothing(smoothing float32)
	RotationSmoothing() float32
	SetRotationSmoothing(smoothing float32)
	EnableAllControls() bool
	SetEnableAllControls(enable bool)
	WorldUp() mgl32.Vec3

	// SetWorldUp sets the up axis used for yaw and look-at. The vector is normalized;
	// a zero-length vector is ignored.
	SetWorldUp(up mgl32.Vec3)

	// MovementSpeedMod returns this frame's movement multiplier. It is reset to 1 by Update.
	MovementSpeedMod() float32

	// ScaleMovementSpeedMod multiplies this frame's movement multiplier by factor.
	//
	// Parameters:
	//   - factor: multiplier, e.g. 2 for a speed boost or 0.5 for precision movement
	ScaleMovementSpeedMod(factor float32)
}

var _ Camera = &cameraImpl{}

// Default tunables used by NewCamera.
const (
	DefaultMoveSpeed         float32 = 0.125
	DefaultPanSpeed          float32 = 0.006
	DefaultZoomSpeed         float32 = 0.25
	DefaultFpsRotationSpeed  float32 = 0.005
	DefaultTbRotationSpeed   float32 = 0.015
	DefaultMovementSmoothing float32 = 0.25
	DefaultRotationSmoothing float32 = 0.3
)

// worldUpEpsilon is the shortest up vector SetWorldUp accepts.
const worldUpEpsilon = 1e-6

// NewCamera creates a new Camera. Without options it starts in ModeFly at (1, 0, 0) looking at the origin
// with +Y up, using the default speeds and smoothing constants.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                &sync.Mutex{},
		mode:              ModeFly,
		desired:           transform.New(mgl32.Vec3{1, 0, 0}),
		target:            mgl32.Vec3{0, 0, 0},
		movementSpeedMod:  1.0,
		moveSpeed:         DefaultMoveSpeed,
		panSpeed:          DefaultPanSpeed,
		zoomSpeed:         DefaultZoomSpeed,
		fpsRotationSpeed:  DefaultFpsRotationSpeed,
		tbRotationSpeed:   DefaultTbRotationSpeed,
		movementSmoothing: DefaultMovementSmoothing,
		rotationSmoothing: DefaultRotationSmoothing,
		worldUp:           mgl32.Vec3{0, 1, 0},

		desiredTargetDistance: 1,
		currentTargetDistance: 1,
	}
	for _, option := range options {
		option(c)
	}

	c.current = c.desired
	c.lookAt(c.target, false)
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *cameraImpl) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != mode {
		slog.Debug("camera mode changed", "from", c.mode, "to", mode)
	}
	c.mode = mode
}

// rotationSpeed returns the sensitivity of the active mode. Caller must hold the mutex.
func (c *cameraImpl) rotationSpeed() float32 {
	if c.mode == ModeFly {
		return c.fpsRotationSpeed
	}
	return c.tbRotationSpeed
}

// movementAllowed reports whether fly-style movement is accepted. Caller must hold the mutex.
func (c *cameraImpl) movementAllowed() bool {
	return c.mode == ModeFly || c.enableAllControls
}

// orbitControlsAllowed reports whether pan and zoom are accepted. Caller must hold the mutex.
func (c *cameraImpl) orbitControlsAllowed() bool {
	return c.mode == ModeOrbit || c.enableAllControls
}

func (c *cameraImpl) RotateH(dPhi float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotationInput[0] += dPhi * c.rotationSpeed()
}

func (c *cameraImpl) RotateV(dTheta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotationInput[1] += dTheta * c.rotationSpeed()
}

func (c *cameraImpl) MoveX(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.movementAllowed() {
		c.movementInput[0] += d * c.moveSpeed
	}
}

func (c *cameraImpl) MoveY(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.movementAllowed() {
		c.movementInput[1] += d * c.moveSpeed
	}
}

func (c *cameraImpl) MoveZ(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.movementAllowed() {
		c.movementInput[2] += d * c.moveSpeed
	}
}

func (c *cameraImpl) PanH(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbitControlsAllowed() {
		c.movementInput[0] += d * c.panSpeed
	}
}

func (c *cameraImpl) PanV(d float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbitControlsAllowed() {
		c.movementInput[1] += d * c.panSpeed
	}
}

func (c *cameraImpl) Zoom(dz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbitControlsAllowed() {
		c.movementInput[2] -= dz * c.zoomSpeed
	}
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3, interpolate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.desired.Position = position
	if !interpolate {
		c.current.Position = position
	}
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3, interpolate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target, interpolate)
}

// lookAt orients the desired transform toward target and resets the pivot distance.
// A degenerate target leaves orientation and both distances untouched. Caller must hold the mutex.
func (c *cameraImpl) lookAt(target mgl32.Vec3, interpolate bool) {
	if err := c.desired.LookAt(target, c.worldUp); err != nil {
		slog.Debug("camera target ignored", "target", target, "position", c.desired.Position, "error", err)
		return
	}
	c.desiredTargetDistance = target.Sub(c.desired.Position).Len()
	if !interpolate {
		c.current.Orientation = c.desired.Orientation
		c.currentTargetDistance = c.desiredTargetDistance
	}
}

func (c *cameraImpl) ModelMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modelMatrix
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) Current() transform.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *cameraImpl) Desired() transform.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.desired
}

func (c *cameraImpl) CurrentTargetDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTargetDistance
}

func (c *cameraImpl) DesiredTargetDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.desiredTargetDistance
}

func (c *cameraImpl) Pivot() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.PointAhead(c.currentTargetDistance)
}

func (c *cameraImpl) MovementInput() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementInput
}

func (c *cameraImpl) RotationInput() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotationInput
}

func (c *cameraImpl) ZoomFloor() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomFloor()
}

// zoomFloor is coupled to zoomSpeed so faster zooming stops further from the pivot.
// Caller must hold the mutex.
func (c *cameraImpl) zoomFloor() float32 {
	return 0.01 * c.zoomSpeed
}

func (c *cameraImpl) MoveSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveSpeed
}

func (c *cameraImpl) SetMoveSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveSpeed = speed
}

func (c *cameraImpl) PanSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panSpeed
}

func (c *cameraImpl) SetPanSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panSpeed = speed
}

func (c *cameraImpl) ZoomSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomSpeed
}

func (c *cameraImpl) SetZoomSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoomSpeed = speed
}

func (c *cameraImpl) FpsRotationSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fpsRotationSpeed
}

func (c *cameraImpl) SetFpsRotationSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fpsRotationSpeed = speed
}

func (c *cameraImpl) TbRotationSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tbRotationSpeed
}

func (c *cameraImpl) SetTbRotationSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tbRotationSpeed = speed
}

func (c *cameraImpl) MovementSmoothing() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSmoothing
}

func (c *cameraImpl) SetMovementSmoothing(smoothing float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSmoothing = smoothing
}

func (c *cameraImpl) RotationSmoothing() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotationSmoothing
}

func (c *cameraImpl) SetRotationSmoothing(smoothing float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotationSmoothing = smoothing
}

func (c *cameraImpl) EnableAllControls() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enableAllControls
}

func (c *cameraImpl) SetEnableAllControls(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enableAllControls = enable
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) SetWorldUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setWorldUp(up)
}

// setWorldUp stores the normalized up vector. A zero-length vector is ignored.
// Caller must hold the mutex.
func (c *cameraImpl) setWorldUp(up mgl32.Vec3) {
	if up.Len() < worldUpEpsilon {
		slog.Debug("camera world up ignored", "up", up)
		return
	}
	c.worldUp = up.Normalize()
}

func (c *cameraImpl) MovementSpeedMod() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeedMod
}

func (c *cameraImpl) ScaleMovementSpeedMod(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeedMod *= factor
}
