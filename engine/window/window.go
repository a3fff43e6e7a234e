package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// It is the event source for the camera: callbacks run on the thread that calls ProcessMessages.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration, after pending events
	// have been dispatched.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse wheel and trackpad scroll events.
	//
	// Parameters:
	//   - callback: function receiving the horizontal and vertical scroll offsets (positive y = away from the user)
	SetScrollCallback(callback func(dx, dy float32))

	// SetKeyDownCallback sets the callback for key press events. Auto-repeat is not reported.
	//
	// Parameters:
	//   - callback: function receiving the key
	SetKeyDownCallback(callback func(key common.Key))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key
	SetKeyUpCallback(callback func(key common.Key))

	// SetMouseMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in screen coordinates and the buttons held down
	SetMouseMoveCallback(callback func(x, y float32, buttons common.MouseButtonSet))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	// The window stays valid until Close.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	title string

	minWidth, minHeight int
	maxWidth, maxHeight int

	// width and height track the framebuffer size, which differs from the window size on high-DPI displays.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(dx, dy float32)
	onKeyDown   func(key common.Key)
	onKeyUp     func(key common.Key)
	onMouseMove func(x, y float32, buttons common.MouseButtonSet)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window. Applies default values first, then each option in order.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-cam",
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(dx, dy float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key common.Key)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(key common.Key)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float32, buttons common.MouseButtonSet)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
