package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame delta bounds in seconds. A dt of exactly zero or a very large dt (debugger pause,
// window drag) would otherwise push dt^k smoothing factors to 0 or above 1.
const (
	MinDeltaTime float32 = 1e-6
	MaxDeltaTime float32 = 1.0
)

// Axis and direction constants in the camera's local frame.
var (
	AxisX   = mgl32.Vec3{1, 0, 0}
	AxisY   = mgl32.Vec3{0, 1, 0}
	Forward = mgl32.Vec3{0, 0, -1}
)

// ClampDeltaTime limits a frame delta to [MinDeltaTime, MaxDeltaTime]. NaN is treated as MinDeltaTime.
//
// Parameters:
//   - dt: frame delta in seconds
//
// Returns:
//   - float32: the clamped delta
func ClampDeltaTime(dt float32) float32 {
	if dt != dt {
		return MinDeltaTime
	}
	return Clamp(dt, MinDeltaTime, MaxDeltaTime)
}

// SmoothingFactor returns the blend factor dt^smoothing used for exponential smoothing.
// dt is clamped first, so the result always lies in (0, 1].
//
// Parameters:
//   - dt: frame delta in seconds
//   - smoothing: smoothing exponent, larger values smooth more
//
// Returns:
//   - float32: the interpolation factor for this frame
func SmoothingFactor(dt, smoothing float32) float32 {
	return float32(math.Pow(float64(ClampDeltaTime(dt)), float64(smoothing)))
}

// Mix linearly interpolates between a and b.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// MixVec3 linearly interpolates between two vectors.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp spherically interpolates between two rotations along the shortest arc
// and returns a unit quaternion. mgl32.QuatSlerp does not flip hemispheres on its own.
//
// Parameters:
//   - a: start rotation
//   - b: end rotation
//   - t: interpolation factor in [0, 1]
//
// Returns:
//   - mgl32.Quat: the interpolated, normalized rotation
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t).Normalize()
}
