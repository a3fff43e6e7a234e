// Package transform provides the position/scale/orientation value type shared by
// the camera's current and desired states.
package transform

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateLookAt is returned by LookAt when the target coincides with the position
// or the up vector is parallel to the viewing direction.
var ErrDegenerateLookAt = errors.New("transform: degenerate look-at direction")

// parallelTolerance is the minimum length of forward x up (both unit length) for a look-at
// basis to be well defined.
const parallelTolerance = 1e-6

// Transform is a full 3D transformation: translation, non-uniform scale and a unit quaternion orientation.
// It is a plain value; copies are independent.
type Transform struct {
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Orientation mgl32.Quat
}

// New returns a Transform at the given position with unit scale and identity orientation.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - Transform: the new transform
func New(position mgl32.Vec3) Transform {
	return Transform{
		Position:    position,
		Scale:       mgl32.Vec3{1, 1, 1},
		Orientation: mgl32.QuatIdent(),
	}
}

// WorldMatrix builds translate(Position) * scale(Scale) * rotate(Orientation).
//
// Returns:
//   - mgl32.Mat4: the column-major world matrix
func (t Transform) WorldMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(scale).Mul4(t.Orientation.Mat4())
}

// Forward returns the local -Z axis expressed in world space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Orientation.Rotate(common.Forward)
}

// Right returns the local +X axis expressed in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Orientation.Rotate(common.AxisX)
}

// Up returns the local +Y axis expressed in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Orientation.Rotate(common.AxisY)
}

// PointAhead returns the world-space point at the given distance along Forward.
func (t Transform) PointAhead(distance float32) mgl32.Vec3 {
	return t.Position.Add(t.Forward().Mul(distance))
}

// Rotate applies a yaw about worldUp in world space and a pitch about the local +X axis,
// in that fixed order (yaw * q * pitch), and renormalizes the result.
//
// Parameters:
//   - yaw: angle in radians about worldUp
//   - pitch: angle in radians about the local X axis
//   - worldUp: world up axis (need not be unit length)
func (t *Transform) Rotate(yaw, pitch float32, worldUp mgl32.Vec3) {
	yawQ := mgl32.QuatRotate(yaw, worldUp.Normalize())
	pitchQ := mgl32.QuatRotate(pitch, common.AxisX)
	t.Orientation = yawQ.Mul(t.Orientation).Mul(pitchQ).Normalize()
}

// LookAt orients the transform so its local -Z axis points from Position toward target,
// using up to fix the roll. Position and Scale are not touched.
// On degenerate input the orientation is left unchanged and ErrDegenerateLookAt is returned.
//
// Parameters:
//   - target: world-space point to look at
//   - up: reference up direction
//
// Returns:
//   - error: ErrDegenerateLookAt if target == Position or up is parallel to the view direction
func (t *Transform) LookAt(target, up mgl32.Vec3) error {
	dir := target.Sub(t.Position)
	if dir.Len() == 0 || up.Len() == 0 {
		return ErrDegenerateLookAt
	}
	forward := dir.Normalize()
	right := forward.Cross(up.Normalize())
	if right.Len() < parallelTolerance {
		return ErrDegenerateLookAt
	}
	right = right.Normalize()
	trueUp := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	t.Orientation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return nil
}

// ApproxEqual reports whether two transforms match within tol on every component.
// q and -q are treated as the same orientation.
func (t Transform) ApproxEqual(other Transform, tol float32) bool {
	if !t.Position.ApproxEqualThreshold(other.Position, tol) || !t.Scale.ApproxEqualThreshold(other.Scale, tol) {
		return false
	}
	d := t.Orientation.Dot(other.Orientation)
	if d < 0 {
		d = -d
	}
	return 1-d <= tol
}
