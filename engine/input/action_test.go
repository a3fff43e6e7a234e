package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionNames(t *testing.T) {
	seen := map[string]bool{}
	for a := Action(0); a < ActionCount; a++ {
		name := a.String()
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true

		parsed, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Len(t, seen, 23)
}

func TestParseActionAliases(t *testing.T) {
	a, err := ParseAction("MOVE_FORWARD")
	require.NoError(t, err)
	assert.Equal(t, ActionMoveForward, a)

	a, err = ParseAction("enable-mouse-pan")
	require.NoError(t, err)
	assert.Equal(t, ActionEnableMousePan, a)

	_, err = ParseAction("jump")
	assert.Error(t, err)

	assert.False(t, ActionCount.Valid())
	assert.Equal(t, "Action(99)", Action(99).String())
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.Equal(t, ActionMoveForward, km[common.KeyW])
	assert.Equal(t, ActionSwitchInputMode, km[common.KeyX])
	assert.Equal(t, ActionMoveSlow, km[common.KeyLeftShift])
	assert.Equal(t, ActionMoveSlow, km[common.KeyRightShift])
	assert.Equal(t, ActionMoveFast, km[common.KeySpace])
	for k, a := range km {
		assert.True(t, a.Valid(), "key %v bound to invalid action", k)
	}

	clone := km.Clone()
	delete(clone, common.KeyW)
	assert.Contains(t, km, common.KeyW)
}
