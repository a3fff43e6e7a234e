package input

import (
	"fmt"
	"strings"
)

// Action is a camera control bound to a key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveRight
	ActionMoveLeft
	ActionMoveUp
	ActionMoveDown
	ActionEnableMouseRotation
	ActionEnableMousePan
	// ActionSwitchInputMode toggles the camera mode on press. It is edge-triggered and never held.
	ActionSwitchInputMode
	ActionMoveFast
	ActionMoveSlow
	ActionIncreaseSpeed
	ActionDecreaseSpeed
	ActionRotateUp
	ActionRotateDown
	ActionRotateRight
	ActionRotateLeft
	ActionPanUp
	ActionPanDown
	ActionPanRight
	ActionPanLeft
	ActionZoomIn
	ActionZoomOut

	// ActionCount is the number of actions. It is not a valid action.
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionMoveForward:         "move_forward",
	ActionMoveBackward:        "move_backward",
	ActionMoveRight:           "move_right",
	ActionMoveLeft:            "move_left",
	ActionMoveUp:              "move_up",
	ActionMoveDown:            "move_down",
	ActionEnableMouseRotation: "enable_mouse_rotation",
	ActionEnableMousePan:      "enable_mouse_pan",
	ActionSwitchInputMode:     "switch_input_mode",
	ActionMoveFast:            "move_fast",
	ActionMoveSlow:            "move_slow",
	ActionIncreaseSpeed:       "increase_speed",
	ActionDecreaseSpeed:       "decrease_speed",
	ActionRotateUp:            "rotate_up",
	ActionRotateDown:          "rotate_down",
	ActionRotateRight:         "rotate_right",
	ActionRotateLeft:          "rotate_left",
	ActionPanUp:               "pan_up",
	ActionPanDown:             "pan_down",
	ActionPanRight:            "pan_right",
	ActionPanLeft:             "pan_left",
	ActionZoomIn:              "zoom_in",
	ActionZoomOut:             "zoom_out",
}

// Valid reports whether a is one of the enumerated actions.
func (a Action) Valid() bool {
	return a >= 0 && a < ActionCount
}

// String returns the snake_case name used in config files.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction converts an action name into an Action. Names are matched case-insensitively
// and '-' or ' ' may be used instead of '_'.
//
// Parameters:
//   - name: the action name, e.g. "move_forward" or "MOVE_FORWARD"
//
// Returns:
//   - Action: the parsed action
//   - error: error if the name is unknown
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for a, s := range actionNames {
		if s == n {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown camera action %q", name)
}
