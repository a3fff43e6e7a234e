package common

import (
	"strconv"
	"strings"
)

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA     Key = 65 // A key (ASCII)
	KeyC     Key = 67 // C key (ASCII)
	KeyD     Key = 68 // D key (ASCII)
	KeyE     Key = 69 // E key (ASCII)
	KeyF     Key = 70 // F key (ASCII)
	KeyI     Key = 73 // I key (ASCII)
	KeyJ     Key = 74 // J key (ASCII)
	KeyK     Key = 75 // K key (ASCII)
	KeyL     Key = 76 // L key (ASCII)
	KeyQ     Key = 81 // Q key (ASCII)
	KeyR     Key = 82 // R key (ASCII)
	KeyS     Key = 83 // S key (ASCII)
	KeyW     Key = 87 // W key (ASCII)
	KeyX     Key = 88 // X key (ASCII)
	KeySpace Key = 32 // Spacebar (ASCII)

	KeyMinus Key = 45 // - key (ASCII)
	KeyEqual Key = 61 // = key (ASCII)
)

// Non-printable keys (GLFW)
const (
	KeyEsc          Key = 256
	KeyBackspace    Key = 259
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
)

// keyNames holds the names accepted in config files for keys that are not a single printable character.
var keyNames = map[string]Key{
	"space":        KeySpace,
	"esc":          KeyEsc,
	"escape":       KeyEsc,
	"backspace":    KeyBackspace,
	"right":        KeyRight,
	"left":         KeyLeft,
	"down":         KeyDown,
	"up":           KeyUp,
	"pageup":       KeyPageUp,
	"pagedown":     KeyPageDown,
	"shift":        KeyLeftShift,
	"leftshift":    KeyLeftShift,
	"rightshift":   KeyRightShift,
	"control":      KeyLeftControl,
	"ctrl":         KeyLeftControl,
	"leftcontrol":  KeyLeftControl,
	"rightcontrol": KeyRightControl,
	"alt":          KeyLeftAlt,
	"leftalt":      KeyLeftAlt,
	"rightalt":     KeyRightAlt,
}

// ParseKey converts a key name into a Key.
// Single printable characters map to their upper-case ASCII code ("w" and "W" are both KeyW);
// longer names are looked up case-insensitively ("Up", "Control", "Space", ...).
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - Key: the parsed key
//   - bool: false if the name is not recognized
func ParseKey(name string) (Key, bool) {
	if len(name) == 1 {
		c := strings.ToUpper(name)[0]
		if c >= 32 && c < 127 {
			return Key(c), true
		}
		return 0, false
	}
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// String returns a readable name for the key.
func (k Key) String() string {
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	switch k {
	case KeySpace:
		return "Space"
	case KeyEsc:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyLeftShift, KeyRightShift:
		return "Shift"
	case KeyLeftControl, KeyRightControl:
		return "Control"
	case KeyLeftAlt, KeyRightAlt:
		return "Alt"
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}
