package input

import "github.com/Carmen-Shannon/oxy-cam/common"

// KeyEvent is a key press or release. Handled is set once a listener consumes the event.
type KeyEvent struct {
	Key     common.Key
	Handled bool
}

// MouseMoveEvent carries the absolute cursor position and the buttons held while it moved.
type MouseMoveEvent struct {
	X, Y    float32
	Buttons common.MouseButtonSet
	Handled bool
}

// WheelEvent carries a scroll delta. Positive DeltaY scrolls away from the user.
type WheelEvent struct {
	DeltaX, DeltaY float32
	Handled        bool
}
