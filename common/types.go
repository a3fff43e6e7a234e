// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "strings"

// Key is a raw keyboard key identifier as delivered by the event source.
// Values match GLFW key codes (see key_codes.go).
type Key uint32

// MouseButton identifies a single mouse button. Values match GLFW mouse button indices.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// mouseButtonNames maps config-friendly names onto mouse buttons.
var mouseButtonNames = map[string]MouseButton{
	"left":   MouseButtonLeft,
	"right":  MouseButtonRight,
	"middle": MouseButtonMiddle,
}

// ParseMouseButton converts a case-insensitive button name ("left", "right", "middle") into a MouseButton.
//
// Parameters:
//   - name: the button name
//
// Returns:
//   - MouseButton: the parsed button
//   - bool: false if the name is unknown
func ParseMouseButton(name string) (MouseButton, bool) {
	b, ok := mouseButtonNames[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// String returns the lower-case name of the button.
func (b MouseButton) String() string {
	for name, v := range mouseButtonNames {
		if v == b {
			return name
		}
	}
	return "unknown"
}

// MouseButtonSet is a bitmask of the mouse buttons currently held down.
type MouseButtonSet uint8

// NewMouseButtonSet returns a set containing the given buttons.
func NewMouseButtonSet(buttons ...MouseButton) MouseButtonSet {
	var s MouseButtonSet
	for _, b := range buttons {
		s = s.With(b)
	}
	return s
}

// Has reports whether b is in the set.
func (s MouseButtonSet) Has(b MouseButton) bool {
	return s&(1<<b) != 0
}

// With returns a copy of the set with b added.
func (s MouseButtonSet) With(b MouseButton) MouseButtonSet {
	return s | (1 << b)
}

// Without returns a copy of the set with b removed.
func (s MouseButtonSet) Without(b MouseButton) MouseButtonSet {
	return s &^ (1 << b)
}
