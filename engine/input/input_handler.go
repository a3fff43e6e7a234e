package input

import (
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SpeedFloor is the additive floor used by ChangeMovementSpeed so a speed of zero can grow again.
	// Speeds are never lowered below it.
	SpeedFloor float32 = 1e-6

	// Per-second rates applied by OnDraw while a key is held.
	rotateRate = 60.0
	panRate    = 60.0
	moveRate   = 20.0
	zoomRate   = 20.0
	speedRate  = 20.0

	// wheelZoomScale converts one wheel step into zoom input.
	wheelZoomScale = 10.0

	fastModifier = 2.0
	slowModifier = 0.5
)

type inputHandlerImpl struct {
	mu *sync.Mutex

	camera camera.Camera
	keyMap KeyMap
	held   [ActionCount]bool

	enableMouseRotation bool
	enableMousePan      bool
	enableMouseZoom     bool
	rotateMouseButton   common.MouseButton
	panMouseButton      common.MouseButton

	// prevMousePos is seeded by the first cursor event so a drag never starts with a jump from the origin.
	prevMousePos  mgl32.Vec2
	havePrevMouse bool
}

// InputHandler translates key, mouse and wheel events into Camera calls.
// Event methods may be called any number of times per frame; OnDraw must run once per frame
// before the camera's Update so held keys contribute their per-frame motion.
type InputHandler interface {
	// OnKeyPressed marks the bound action as held, or toggles the camera mode for ActionSwitchInputMode.
	// Events already handled elsewhere and unbound keys are ignored.
	//
	// Parameters:
	//   - event: the key event; Handled is set when the key is bound
	OnKeyPressed(event *KeyEvent)

	// OnKeyReleased marks the bound action as released. Releases are honoured even when
	// another listener already handled the event so a key can never stay stuck down.
	//
	// Parameters:
	//   - event: the key event; Handled is set when the key is bound
	OnKeyReleased(event *KeyEvent)

	// OnMouseMove rotates the camera while the rotate button or ActionEnableMouseRotation is held,
	// otherwise pans it while the pan button or ActionEnableMousePan is held.
	// The previous cursor position is always updated, even for handled events; the first event
	// only records the position.
	//
	// Parameters:
	//   - event: the mouse event; Handled is set when it moved the camera
	OnMouseMove(event *MouseMoveEvent)

	// OnMouseWheel zooms the camera by ten times the vertical scroll delta.
	//
	// Parameters:
	//   - event: the wheel event; Handled is set when it zoomed the camera
	OnMouseWheel(event *WheelEvent)

	// OnDraw applies the per-frame contribution of every held action.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	OnDraw(dt float32)

	// ChangeMovementSpeed rescales the camera's move, pan and zoom speeds together, keeping their ratios.
	// Each speed becomes speed + change*0.025*(speed+SpeedFloor), never lower than SpeedFloor.
	//
	// Parameters:
	//   - change: positive to speed up, negative to slow down
	ChangeMovementSpeed(change float32)

	// SetKeyMap replaces the key bindings and releases every held action.
	//
	// Parameters:
	//   - keyMap: the new bindings; the handler keeps its own copy
	SetKeyMap(keyMap KeyMap)

	// KeyMap returns a copy of the current key bindings.
	//
	// Returns:
	//   - KeyMap: the bindings
	KeyMap() KeyMap

	// SetMouseButtons rebinds the buttons that enable mouse rotation and pan.
	//
	// Parameters:
	//   - rotate: button that rotates while held
	//   - pan: button that pans while held
	SetMouseButtons(rotate, pan common.MouseButton)

	// SetMouseControls enables or disables mouse rotation, pan and wheel zoom.
	SetMouseControls(rotation, pan, zoom bool)

	// IsHeld reports whether an action is currently held. Invalid actions are never held.
	//
	// Parameters:
	//   - action: the action to query
	//
	// Returns:
	//   - bool: true while a bound key for the action is down
	IsHeld(action Action) bool

	// Camera returns the camera this handler drives.
	//
	// Returns:
	//   - camera.Camera: the bound camera
	Camera() camera.Camera
}

var _ InputHandler = &inputHandlerImpl{}

// NewInputHandler creates an InputHandler bound to cam for its whole lifetime.
// Without options it uses DefaultKeyMap, rotates with the left mouse button, pans with the middle
// button and has all mouse controls enabled.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the handler
//
// Returns:
//   - InputHandler: the newly created handler
func NewInputHandler(cam camera.Camera, options ...InputHandlerBuilderOption) InputHandler {
	h := &inputHandlerImpl{
		mu:                  &sync.Mutex{},
		camera:              cam,
		keyMap:              DefaultKeyMap(),
		enableMouseRotation: true,
		enableMousePan:      true,
		enableMouseZoom:     true,
		rotateMouseButton:   common.MouseButtonLeft,
		panMouseButton:      common.MouseButtonMiddle,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *inputHandlerImpl) OnKeyPressed(event *KeyEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if event.Handled {
		return
	}
	action, ok := h.keyMap[event.Key]
	if !ok || !action.Valid() {
		return
	}
	if action == ActionSwitchInputMode {
		h.camera.SetMode(h.camera.Mode().Toggle())
	} else {
		h.held[action] = true
	}
	event.Handled = true
}

func (h *inputHandlerImpl) OnKeyReleased(event *KeyEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	action, ok := h.keyMap[event.Key]
	if !ok || !action.Valid() {
		return
	}
	h.held[action] = false
	event.Handled = true
}

func (h *inputHandlerImpl) OnMouseMove(event *MouseMoveEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pos := mgl32.Vec2{event.X, event.Y}
	delta := pos.Sub(h.prevMousePos)
	h.prevMousePos = pos
	if !h.havePrevMouse {
		h.havePrevMouse = true
		return
	}
	if event.Handled {
		return
	}

	switch {
	case h.enableMouseRotation && (event.Buttons.Has(h.rotateMouseButton) || h.held[ActionEnableMouseRotation]):
		h.camera.RotateH(-delta.X())
		h.camera.RotateV(-delta.Y())
		event.Handled = true
	case h.enableMousePan && (event.Buttons.Has(h.panMouseButton) || h.held[ActionEnableMousePan]):
		h.camera.PanH(-delta.X())
		h.camera.PanV(delta.Y())
		event.Handled = true
	}
}

func (h *inputHandlerImpl) OnMouseWheel(event *WheelEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if event.Handled || !h.enableMouseZoom {
		return
	}
	h.camera.Zoom(event.DeltaY * wheelZoomScale)
	event.Handled = true
}

func (h *inputHandlerImpl) OnDraw(dt float32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	dt = common.ClampDeltaTime(dt)
	cam := h.camera

	if h.held[ActionIncreaseSpeed] {
		h.changeMovementSpeed(speedRate * dt)
	}
	if h.held[ActionDecreaseSpeed] {
		h.changeMovementSpeed(-speedRate * dt)
	}

	if h.held[ActionMoveBackward] {
		cam.MoveZ(moveRate * dt)
	}
	if h.held[ActionMoveForward] {
		cam.MoveZ(-moveRate * dt)
	}
	if h.held[ActionMoveRight] {
		cam.MoveX(moveRate * dt)
	}
	if h.held[ActionMoveLeft] {
		cam.MoveX(-moveRate * dt)
	}
	if h.held[ActionMoveUp] {
		cam.MoveY(moveRate * dt)
	}
	if h.held[ActionMoveDown] {
		cam.MoveY(-moveRate * dt)
	}

	if h.held[ActionMoveFast] {
		cam.ScaleMovementSpeedMod(fastModifier)
	}
	if h.held[ActionMoveSlow] {
		cam.ScaleMovementSpeedMod(slowModifier)
	}

	if h.held[ActionRotateUp] {
		cam.RotateV(rotateRate * dt)
	}
	if h.held[ActionRotateDown] {
		cam.RotateV(-rotateRate * dt)
	}
	if h.held[ActionRotateRight] {
		cam.RotateH(-rotateRate * dt)
	}
	if h.held[ActionRotateLeft] {
		cam.RotateH(rotateRate * dt)
	}

	if h.held[ActionPanUp] {
		cam.PanV(panRate * dt)
	}
	if h.held[ActionPanDown] {
		cam.PanV(-panRate * dt)
	}
	if h.held[ActionPanRight] {
		cam.PanH(panRate * dt)
	}
	if h.held[ActionPanLeft] {
		cam.PanH(-panRate * dt)
	}

	if h.held[ActionZoomIn] {
		cam.Zoom(zoomRate * dt)
	}
	if h.held[ActionZoomOut] {
		cam.Zoom(-zoomRate * dt)
	}
}

func (h *inputHandlerImpl) ChangeMovementSpeed(change float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.changeMovementSpeed(change)
}

// changeMovementSpeed rescales all three camera speeds. Caller must hold the mutex.
func (h *inputHandlerImpl) changeMovementSpeed(change float32) {
	scale := func(speed float32) float32 {
		return max(speed+change*0.025*(speed+SpeedFloor), SpeedFloor)
	}
	h.camera.SetMoveSpeed(scale(h.camera.MoveSpeed()))
	h.camera.SetPanSpeed(scale(h.camera.PanSpeed()))
	h.camera.SetZoomSpeed(scale(h.camera.ZoomSpeed()))
}

func (h *inputHandlerImpl) SetKeyMap(keyMap KeyMap) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.keyMap = keyMap.Clone()
	h.held = [ActionCount]bool{}
	slog.Debug("camera key map replaced", "bindings", len(h.keyMap))
}

func (h *inputHandlerImpl) KeyMap() KeyMap {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keyMap.Clone()
}

func (h *inputHandlerImpl) SetMouseButtons(rotate, pan common.MouseButton) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rotateMouseButton = rotate
	h.panMouseButton = pan
}

func (h *inputHandlerImpl) SetMouseControls(rotation, pan, zoom bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enableMouseRotation = rotation
	h.enableMousePan = pan
	h.enableMouseZoom = zoom
}

func (h *inputHandlerImpl) IsHeld(action Action) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !action.Valid() {
		return false
	}
	return h.held[action]
}

func (h *inputHandlerImpl) Camera() camera.Camera {
	return h.camera
}
