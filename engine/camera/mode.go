package camera

import (
	"fmt"
	"strings"
)

// Mode selects how the camera interprets input and integrates its state.
type Mode int

const (
	// ModeOrbit rotates the camera around a pivot ahead of it; pan and zoom are active ("trackball").
	ModeOrbit Mode = iota
	// ModeFly moves the camera freely along its own axes ("fps").
	ModeFly
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeOrbit {
		return ModeFly
	}
	return ModeOrbit
}

// ParseMode parses a mode name. "trackball" and "fps" are accepted as aliases.
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - error: error if the name is unknown
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orbit", "trackball":
		return ModeOrbit, nil
	case "fly", "fps":
		return ModeFly, nil
	}
	return 0, fmt.Errorf("unknown camera mode %q", s)
}
