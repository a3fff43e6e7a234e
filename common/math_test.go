package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClampDeltaTime(t *testing.T) {
	tests := []struct {
		name string
		dt   float32
		want float32
	}{
		{"zero", 0, MinDeltaTime},
		{"negative", -1, MinDeltaTime},
		{"nan", float32(math.NaN()), MinDeltaTime},
		{"typical", 0.016, 0.016},
		{"stall", 3, MaxDeltaTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDeltaTime(tt.dt))
		})
	}
}

func TestSmoothingFactor(t *testing.T) {
	assert.InDelta(t, 1, SmoothingFactor(1, 0.25), 1e-6)
	assert.InDelta(t, 1, SmoothingFactor(10, 0.25), 1e-6)
	assert.InDelta(t, math.Pow(0.016, 0.3), SmoothingFactor(0.016, 0.3), 1e-6)

	f := SmoothingFactor(0, 0.25)
	assert.Greater(t, f, float32(0))
	assert.Less(t, f, float32(1))

	// more smoothing means a smaller step toward the target
	assert.Less(t, SmoothingFactor(0.016, 0.5), SmoothingFactor(0.016, 0.1))
}

func TestMix(t *testing.T) {
	assert.Equal(t, float32(2.5), Mix(2, 3, 0.5))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, MixVec3(mgl32.Vec3{}, mgl32.Vec3{2, 4, 6}, 0.5))
}

func TestSlerpShortestArc(t *testing.T) {
	a := mgl32.QuatIdent()
	b := mgl32.QuatRotate(mgl32.DegToRad(90), AxisY)

	// -b is the same rotation on the far hemisphere
	half := Slerp(a, b.Scale(-1), 0.5)
	want := mgl32.QuatRotate(mgl32.DegToRad(45), AxisY)
	assert.InDelta(t, 1, math.Abs(float64(half.Dot(want))), 1e-5)
	assert.InDelta(t, 1, half.Len(), 1e-6)

	assert.InDelta(t, 1, math.Abs(float64(Slerp(a, b, 1).Dot(b))), 1e-5)
}
