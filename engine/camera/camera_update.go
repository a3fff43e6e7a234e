package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *cameraImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dt = common.ClampDeltaTime(dt)
	switch c.mode {
	case ModeOrbit:
		c.updateOrbit(dt)
	default:
		c.updateFly(dt)
	}
	c.updateMatrices()

	c.movementInput = mgl32.Vec3{}
	c.rotationInput = mgl32.Vec2{}
	c.movementSpeedMod = 1.0
}

// updateFly moves the desired transform along its own axes, applies yaw/pitch and smooths
// position and orientation independently. Caller must hold the mutex.
func (c *cameraImpl) updateFly(dt float32) {
	// movement is relative to where the camera faced before this frame's rotation
	movement := c.desired.Orientation.Rotate(c.movementInput.Mul(c.movementSpeedMod))
	c.desired.Position = c.desired.Position.Add(movement)
	c.desired.Rotate(c.rotationInput.X(), c.rotationInput.Y(), c.worldUp)

	c.current.Position = common.MixVec3(c.current.Position, c.desired.Position,
		common.SmoothingFactor(dt, c.movementSmoothing))
	c.current.Orientation = common.Slerp(c.current.Orientation, c.desired.Orientation,
		common.SmoothingFactor(dt, c.rotationSmoothing))
}

// updateOrbit rotates the desired transform around its pivot, applies zoom and pan, then
// smooths the pivot, the pivot distance and the orientation and derives the current position
// from them. Smoothing position and orientation separately would let the pivot drift while
// the camera is catching up. Caller must hold the mutex.
func (c *cameraImpl) updateOrbit(dt float32) {
	oldPivot := c.desired.PointAhead(c.desiredTargetDistance)
	c.desired.Rotate(c.rotationInput.X(), c.rotationInput.Y(), c.worldUp)
	newPivot := c.desired.PointAhead(c.desiredTargetDistance)
	c.desired.Position = c.desired.Position.Add(oldPivot.Sub(newPivot))

	input := c.movementInput.Mul(c.movementSpeedMod)
	if c.desiredTargetDistance+input.Z() > c.zoomFloor() {
		c.desiredTargetDistance += input.Z()
	} else {
		// dropped zoom must not dolly the camera through the pivot either
		input[2] = 0
	}
	c.desired.Position = c.desired.Position.Add(c.desired.Orientation.Rotate(input))

	moveT := common.SmoothingFactor(dt, c.movementSmoothing)
	rotT := common.SmoothingFactor(dt, c.rotationSmoothing)

	pivot := common.MixVec3(
		c.current.PointAhead(c.currentTargetDistance),
		c.desired.PointAhead(c.desiredTargetDistance),
		moveT,
	)
	c.currentTargetDistance = common.Mix(c.currentTargetDistance, c.desiredTargetDistance, moveT)
	c.current.Orientation = common.Slerp(c.current.Orientation, c.desired.Orientation, rotT)
	c.current.Position = pivot.Sub(c.current.Forward().Mul(c.currentTargetDistance))
}

// updateMatrices recalculates the model and view matrices from the current transform.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.modelMatrix = c.current.WorldMatrix()
	c.viewMatrix = c.modelMatrix.Inv()
}
