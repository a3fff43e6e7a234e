package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestApplyButton(t *testing.T) {
	var set common.MouseButtonSet
	set = applyButton(set, common.MouseButtonLeft, true)
	set = applyButton(set, common.MouseButtonMiddle, true)
	assert.True(t, set.Has(common.MouseButtonLeft))
	assert.True(t, set.Has(common.MouseButtonMiddle))
	assert.False(t, set.Has(common.MouseButtonRight))

	set = applyButton(set, common.MouseButtonLeft, false)
	assert.False(t, set.Has(common.MouseButtonLeft))
	assert.True(t, set.Has(common.MouseButtonMiddle))

	assert.Equal(t, set, applyButton(set, common.MouseButton(200), true))
}

func TestSizeLimit(t *testing.T) {
	assert.Equal(t, glfw.DontCare, sizeLimit(0))
	assert.Equal(t, 1920, sizeLimit(1920))
}

func TestMouseButtonValuesMatchGLFW(t *testing.T) {
	assert.Equal(t, common.MouseButton(glfw.MouseButtonLeft), common.MouseButtonLeft)
	assert.Equal(t, common.MouseButton(glfw.MouseButtonRight), common.MouseButtonRight)
	assert.Equal(t, common.MouseButton(glfw.MouseButtonMiddle), common.MouseButtonMiddle)
	assert.Equal(t, common.Key(glfw.KeyW), common.KeyW)
	assert.Equal(t, common.Key(glfw.KeyLeftControl), common.KeyLeftControl)
	assert.Equal(t, common.Key(glfw.KeyUp), common.KeyUp)
}
