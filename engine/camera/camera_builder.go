package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithMode sets the initial control mode.
//
// Parameters:
//   - mode: ModeOrbit or ModeFly
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mode
func WithMode(mode Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mode = mode
	}
}

// WithPosition sets the initial camera position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.desired.Position = position
	}
}

// WithTarget sets the initial look-at point, which also becomes the orbit pivot.
// It is applied after all other options, so option order does not matter.
//
// Parameters:
//   - target: world-space point to look at
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's target
func WithTarget(target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = target
	}
}

// WithWorldUp sets the world up vector used for yaw and look-at. A zero vector is ignored.
//
// Parameters:
//   - up: world up direction
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's world up vector
func WithWorldUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setWorldUp(up)
	}
}

// WithMoveSpeed sets the fly-mode movement speed.
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithPanSpeed sets the orbit-mode pan speed.
func WithPanSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.panSpeed = speed
	}
}

// WithZoomSpeed sets the orbit-mode zoom speed. The zoom floor scales with it.
func WithZoomSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoomSpeed = speed
	}
}

// WithRotationSpeeds sets the rotation sensitivity for fly and orbit mode.
//
// Parameters:
//   - fps: radians per input unit in ModeFly
//   - trackball: radians per input unit in ModeOrbit
//
// Returns:
//   - CameraBuilderOption: a function that sets both rotation speeds
func WithRotationSpeeds(fps, trackball float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fpsRotationSpeed = fps
		c.tbRotationSpeed = trackball
	}
}

// WithSmoothing sets the smoothing exponents. Higher values lag further behind the input.
//
// Parameters:
//   - movement: exponent for position and pivot distance
//   - rotation: exponent for orientation
//
// Returns:
//   - CameraBuilderOption: a function that sets both smoothing exponents
func WithSmoothing(movement, rotation float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSmoothing = movement
		c.rotationSmoothing = rotation
	}
}

// WithAllControls enables movement in orbit mode and pan/zoom in fly mode.
func WithAllControls(enable bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.enableAllControls = enable
	}
}
