package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformMarshal(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}), WithTarget(mgl32.Vec3{}))
	u := NewGPUCameraUniform(cam, NewProjection())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, 80, u.Size())
	assert.Contains(t, GPUCameraUniformSource, "view_proj")

	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		assert.Equal(t, want, got)
	}
	assert.Equal(t, u.ViewProj[0], math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
}
