// Package config loads the camera viewer's YAML configuration and converts it into builder options
// for the camera, projection and input handler.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the YAML document.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Controls   ControlsConfig   `yaml:"controls"`
	Stats      StatsConfig      `yaml:"stats"`
}

// WindowConfig describes the window, the frame loop and the reference grid.
// FrameLimit is in frames per second, 0 = uncapped. A negative GridLines hides the grid.
type WindowConfig struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	VSync       bool    `yaml:"vsync"`
	FrameLimit  float64 `yaml:"frame_limit"`
	GridLines   int     `yaml:"grid_lines"`
	GridSpacing float32 `yaml:"grid_spacing"`
}

// ProjectionConfig describes the perspective projection. Fov is in degrees.
type ProjectionConfig struct {
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// CameraConfig holds the initial camera placement and its tunables.
// Nil tunables keep the camera's built-in defaults.
type CameraConfig struct {
	Mode     string      `yaml:"mode"`
	Position [3]float32  `yaml:"position"`
	Target   [3]float32  `yaml:"target"`
	WorldUp  *[3]float32 `yaml:"world_up"`

	MoveSpeed         *float32 `yaml:"move_speed"`
	PanSpeed          *float32 `yaml:"pan_speed"`
	ZoomSpeed         *float32 `yaml:"zoom_speed"`
	FpsRotationSpeed  *float32 `yaml:"fps_rotation_speed"`
	TbRotationSpeed   *float32 `yaml:"tb_rotation_speed"`
	MovementSmoothing *float32 `yaml:"movement_smoothing"`
	RotationSmoothing *float32 `yaml:"rotation_smoothing"`
	EnableAllControls bool     `yaml:"enable_all_controls"`
}

// StatsConfig controls the periodic frame statistics log line.
type StatsConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "oxy-cam",
			Width:       1280,
			Height:      720,
			VSync:       true,
			GridLines:   20,
			GridSpacing: 1,
		},
		Projection: ProjectionConfig{
			Fov:  45,
			Near: 0.1,
			Far:  100,
		},
		Camera: CameraConfig{
			Mode:     camera.ModeFly.String(),
			Position: [3]float32{0, 0, 5},
		},
		Controls: ControlsConfig{
			RotateButton: "left",
			PanButton:    "middle",
		},
		Stats: StatsConfig{
			Interval: 5 * time.Second,
		},
	}
}

// Load reads and validates the config file at path. Fields missing from the file keep their Default values.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *Config: the loaded config
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default and validates it. Unknown fields are rejected.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Config: the parsed config
//   - error: error if the document cannot be decoded or validated
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and that every key, action, button and mode name is known.
//
// Returns:
//   - error: every problem found joined together, each wrapping ErrInvalidConfig; nil if valid
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameLimit < 0 {
		invalid("window frame_limit %v must not be negative", c.Window.FrameLimit)
	}
	if c.Window.GridSpacing <= 0 {
		invalid("window grid_spacing %v must be positive", c.Window.GridSpacing)
	}
	if c.Projection.Fov <= 0 || c.Projection.Fov >= 180 {
		invalid("projection fov %v must be in (0, 180)", c.Projection.Fov)
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		invalid("projection planes near=%v far=%v must satisfy 0 < near < far", c.Projection.Near, c.Projection.Far)
	}
	if _, err := camera.ParseMode(c.Camera.Mode); err != nil {
		invalid("camera: %v", err)
	}
	for name, v := range map[string]*float32{
		"move_speed":         c.Camera.MoveSpeed,
		"pan_speed":          c.Camera.PanSpeed,
		"zoom_speed":         c.Camera.ZoomSpeed,
		"fps_rotation_speed": c.Camera.FpsRotationSpeed,
		"tb_rotation_speed":  c.Camera.TbRotationSpeed,
	} {
		if v != nil && *v <= 0 {
			invalid("camera %s %v must be positive", name, *v)
		}
	}
	for name, v := range map[string]*float32{
		"movement_smoothing": c.Camera.MovementSmoothing,
		"rotation_smoothing": c.Camera.RotationSmoothing,
	} {
		if v != nil && (*v <= 0 || *v >= 1) {
			invalid("camera %s %v must be in (0, 1)", name, *v)
		}
	}
	if c.Camera.WorldUp != nil && *c.Camera.WorldUp == [3]float32{} {
		invalid("camera world_up must not be zero")
	}
	if c.Stats.Enabled && c.Stats.Interval <= 0 {
		invalid("stats interval %v must be positive", c.Stats.Interval)
	}
	if err := c.Controls.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
