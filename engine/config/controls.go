package config

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ControlsConfig describes key and mouse bindings.
// Keys maps key names ("W", "Space", "Up", "Control") to action names ("move_forward");
// an empty map keeps input.DefaultKeyMap.
type ControlsConfig struct {
	Keys          map[string]string `yaml:"keys"`
	RotateButton  string            `yaml:"rotate_button"`
	PanButton     string            `yaml:"pan_button"`
	MouseRotation *bool             `yaml:"mouse_rotation"`
	MousePan      *bool             `yaml:"mouse_pan"`
	MouseZoom     *bool             `yaml:"mouse_zoom"`
}

func (c *ControlsConfig) validate() error {
	var errs []error
	if _, err := c.KeyMap(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.MouseButtons(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyMap converts the configured bindings into an input.KeyMap.
//
// Returns:
//   - input.KeyMap: the bindings, or input.DefaultKeyMap when none are configured
//   - error: error wrapping ErrInvalidConfig for every unknown key or action name
func (c *ControlsConfig) KeyMap() (input.KeyMap, error) {
	if len(c.Keys) == 0 {
		return input.DefaultKeyMap(), nil
	}

	km := make(input.KeyMap, len(c.Keys))
	var errs []error
	for keyName, actionName := range c.Keys {
		key, ok := common.ParseKey(keyName)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, keyName))
			continue
		}
		action, err := input.ParseAction(actionName)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: key %q: %w", ErrInvalidConfig, keyName, err))
			continue
		}
		if prev, dup := km[key]; dup && prev != action {
			errs = append(errs, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, keyName, prev, action))
			continue
		}
		km[key] = action
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return km, nil
}

// MouseButtons parses the rotate and pan button names. Empty names keep left and middle.
//
// Returns:
//   - common.MouseButton: the rotate button
//   - common.MouseButton: the pan button
//   - error: error wrapping ErrInvalidConfig if a name is unknown
func (c *ControlsConfig) MouseButtons() (common.MouseButton, common.MouseButton, error) {
	parse := func(name string, fallback common.MouseButton) (common.MouseButton, error) {
		if name == "" {
			return fallback, nil
		}
		b, ok := common.ParseMouseButton(name)
		if !ok {
			return 0, fmt.Errorf("%w: unknown mouse button %q", ErrInvalidConfig, name)
		}
		return b, nil
	}
	rotate, rErr := parse(c.RotateButton, common.MouseButtonLeft)
	pan, pErr := parse(c.PanButton, common.MouseButtonMiddle)
	if err := errors.Join(rErr, pErr); err != nil {
		return 0, 0, err
	}
	return rotate, pan, nil
}

// HandlerOptions converts the controls into input handler builder options.
//
// Returns:
//   - []input.InputHandlerBuilderOption: options for input.NewInputHandler
//   - error: error wrapping ErrInvalidConfig if a binding is invalid
func (c *ControlsConfig) HandlerOptions() ([]input.InputHandlerBuilderOption, error) {
	km, err := c.KeyMap()
	if err != nil {
		return nil, err
	}
	rotate, pan, err := c.MouseButtons()
	if err != nil {
		return nil, err
	}
	return []input.InputHandlerBuilderOption{
		input.WithKeyMap(km),
		input.WithRotateMouseButton(rotate),
		input.WithPanMouseButton(pan),
		input.WithMouseRotation(common.ValueOr(c.MouseRotation, true)),
		input.WithMousePan(common.ValueOr(c.MousePan, true)),
		input.WithMouseZoom(common.ValueOr(c.MouseZoom, true)),
	}, nil
}

// Apply rebinds a running handler. Held actions are released.
//
// Parameters:
//   - h: the handler to update
//
// Returns:
//   - error: error wrapping ErrInvalidConfig if a binding is invalid; h is left untouched
func (c *ControlsConfig) Apply(h input.InputHandler) error {
	km, err := c.KeyMap()
	if err != nil {
		return err
	}
	rotate, pan, err := c.MouseButtons()
	if err != nil {
		return err
	}
	h.SetKeyMap(km)
	h.SetMouseButtons(rotate, pan)
	h.SetMouseControls(
		common.ValueOr(c.MouseRotation, true),
		common.ValueOr(c.MousePan, true),
		common.ValueOr(c.MouseZoom, true),
	)
	return nil
}

// CameraOptions converts the camera section into camera builder options.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
//   - error: error wrapping ErrInvalidConfig if the mode is unknown
func (c *CameraConfig) CameraOptions() ([]camera.CameraBuilderOption, error) {
	mode, err := camera.ParseMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	options := []camera.CameraBuilderOption{
		camera.WithMode(mode),
		camera.WithPosition(mgl32.Vec3(c.Position)),
		camera.WithTarget(mgl32.Vec3(c.Target)),
		camera.WithAllControls(c.EnableAllControls),
	}
	if c.WorldUp != nil {
		options = append(options, camera.WithWorldUp(mgl32.Vec3(*c.WorldUp).Normalize()))
	}
	if c.MoveSpeed != nil {
		options = append(options, camera.WithMoveSpeed(*c.MoveSpeed))
	}
	if c.PanSpeed != nil {
		options = append(options, camera.WithPanSpeed(*c.PanSpeed))
	}
	if c.ZoomSpeed != nil {
		options = append(options, camera.WithZoomSpeed(*c.ZoomSpeed))
	}
	if c.FpsRotationSpeed != nil || c.TbRotationSpeed != nil {
		options = append(options, camera.WithRotationSpeeds(
			common.ValueOr(c.FpsRotationSpeed, camera.DefaultFpsRotationSpeed),
			common.ValueOr(c.TbRotationSpeed, camera.DefaultTbRotationSpeed),
		))
	}
	if c.MovementSmoothing != nil || c.RotationSmoothing != nil {
		options = append(options, camera.WithSmoothing(
			common.ValueOr(c.MovementSmoothing, camera.DefaultMovementSmoothing),
			common.ValueOr(c.RotationSmoothing, camera.DefaultRotationSmoothing),
		))
	}
	return options, nil
}

// Apply copies the tunables onto a running camera. Placement and mode are session state and are not touched.
//
// Parameters:
//   - cam: the camera to update
func (c *CameraConfig) Apply(cam camera.Camera) {
	if c.MoveSpeed != nil {
		cam.SetMoveSpeed(*c.MoveSpeed)
	}
	if c.PanSpeed != nil {
		cam.SetPanSpeed(*c.PanSpeed)
	}
	if c.ZoomSpeed != nil {
		cam.SetZoomSpeed(*c.ZoomSpeed)
	}
	if c.FpsRotationSpeed != nil {
		cam.SetFpsRotationSpeed(*c.FpsRotationSpeed)
	}
	if c.TbRotationSpeed != nil {
		cam.SetTbRotationSpeed(*c.TbRotationSpeed)
	}
	if c.MovementSmoothing != nil {
		cam.SetMovementSmoothing(*c.MovementSmoothing)
	}
	if c.RotationSmoothing != nil {
		cam.SetRotationSmoothing(*c.RotationSmoothing)
	}
	if c.WorldUp != nil {
		cam.SetWorldUp(mgl32.Vec3(*c.WorldUp).Normalize())
	}
	cam.SetEnableAllControls(c.EnableAllControls)
}

// ProjectionOptions converts the projection section into projection builder options.
func (c *ProjectionConfig) ProjectionOptions() []camera.ProjectionBuilderOption {
	return []camera.ProjectionBuilderOption{
		camera.WithFov(mgl32.DegToRad(c.Fov)),
		camera.WithClipPlanes(c.Near, c.Far),
	}
}

// Apply copies field of view and clip planes onto a running projection.
func (c *ProjectionConfig) Apply(p camera.Projection) {
	p.SetFov(mgl32.DegToRad(c.Fov))
	p.SetNear(c.Near)
	p.SetFar(c.Far)
}
