package input

import (
	"maps"

	"github.com/Carmen-Shannon/oxy-cam/common"
)

// KeyMap binds keys to actions. Several keys may share an action.
type KeyMap map[common.Key]Action

// DefaultKeyMap returns the stock bindings: WASD to move, Q/E down/up, arrows to rotate,
// Control and Alt to enable mouse rotation and pan, Shift slow, Space fast,
// X to switch modes and F/C to change speed.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		common.KeyW:            ActionMoveForward,
		common.KeyS:            ActionMoveBackward,
		common.KeyD:            ActionMoveRight,
		common.KeyA:            ActionMoveLeft,
		common.KeyQ:            ActionMoveDown,
		common.KeyE:            ActionMoveUp,
		common.KeyLeftControl:  ActionEnableMouseRotation,
		common.KeyRightControl: ActionEnableMouseRotation,
		common.KeyLeftAlt:      ActionEnableMousePan,
		common.KeyRightAlt:     ActionEnableMousePan,
		common.KeyLeftShift:    ActionMoveSlow,
		common.KeyRightShift:   ActionMoveSlow,
		common.KeySpace:        ActionMoveFast,
		common.KeyX:            ActionSwitchInputMode,
		common.KeyF:            ActionIncreaseSpeed,
		common.KeyC:            ActionDecreaseSpeed,
		common.KeyUp:           ActionRotateUp,
		common.KeyDown:         ActionRotateDown,
		common.KeyLeft:         ActionRotateLeft,
		common.KeyRight:        ActionRotateRight,
	}
}

// Clone returns a copy of the key map.
func (m KeyMap) Clone() KeyMap {
	if m == nil {
		return KeyMap{}
	}
	return maps.Clone(m)
}
