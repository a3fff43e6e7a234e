package input

import "github.com/Carmen-Shannon/oxy-cam/common"

type InputHandlerBuilderOption func(*inputHandlerImpl)

// WithKeyMap replaces the default key bindings.
//
// Parameters:
//   - keyMap: the bindings to use; the handler keeps its own copy
//
// Returns:
//   - InputHandlerBuilderOption: a function that sets the handler's key map
func WithKeyMap(keyMap KeyMap) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.keyMap = keyMap.Clone()
	}
}

// WithRotateMouseButton sets the button that rotates the camera while held.
func WithRotateMouseButton(button common.MouseButton) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.rotateMouseButton = button
	}
}

// WithPanMouseButton sets the button that pans the camera while held.
func WithPanMouseButton(button common.MouseButton) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.panMouseButton = button
	}
}

// WithMouseRotation enables or disables mouse rotation.
func WithMouseRotation(enable bool) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.enableMouseRotation = enable
	}
}

// WithMousePan enables or disables mouse panning.
func WithMousePan(enable bool) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.enableMousePan = enable
	}
}

// WithMouseZoom enables or disables wheel zoom.
func WithMouseZoom(enable bool) InputHandlerBuilderOption {
	return func(h *inputHandlerImpl) {
		h.enableMouseZoom = enable
	}
}
