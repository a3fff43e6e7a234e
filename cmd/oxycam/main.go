// Command oxycam opens a window with a dual-mode camera driven by keyboard and mouse.
// Pass -config to load bindings and tunables from YAML; the file is watched and re-applied on save.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-cam/engine"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/config"
	"github.com/Carmen-Shannon/oxy-cam/engine/frameclock"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	software := flag.Bool("software", false, "force the fallback (software) adapter")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath, *software); err != nil {
		slog.Error("oxycam exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, software bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	camOptions, err := cfg.Camera.CameraOptions()
	if err != nil {
		return err
	}
	handlerOptions, err := cfg.Controls.HandlerOptions()
	if err != nil {
		return err
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(software),
		renderer.WithGrid(cfg.Window.GridLines, cfg.Window.GridSpacing),
	)

	cam := camera.NewCamera(camOptions...)
	projection := camera.NewProjection(cfg.Projection.ProjectionOptions()...)

	var clockOptions []frameclock.ClockBuilderOption
	if cfg.Stats.Enabled {
		clockOptions = append(clockOptions, frameclock.WithStats(cfg.Stats.Interval))
	}

	engineOptions := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithInputHandler(input.NewInputHandler(cam, handlerOptions...)),
		engine.WithProjection(projection),
		engine.WithClock(frameclock.NewClock(clockOptions...)),
		engine.WithRenderFrameLimit(cfg.Window.FrameLimit),
	}

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
		engineOptions = append(engineOptions, engine.WithConfigUpdates(watcher.Configs, watcher.Errors))
	}

	slog.Info("camera ready",
		"mode", cam.Mode(),
		"position", cam.Current().Position,
		"config", configPath,
	)
	return engine.NewEngine(engineOptions...).Run()
}
