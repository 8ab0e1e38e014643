package app

import (
	"fmt"
	"os"

	"nova2d/internal/asset"
	"nova2d/internal/audio"
	"nova2d/internal/config"
	"nova2d/internal/debug"
	"nova2d/internal/engine2D"
	"nova2d/internal/input"
	"nova2d/internal/metrics"
	"nova2d/internal/scene"
	"nova2d/internal/utils"
	"nova2d/internal/window"
)

// App owns every engine subsystem and the main loop.
type App struct {
	Config   config.Config
	Platform Platform

	Window   *window.Window
	Renderer *engine2D.Renderer
	Audio    *audio.Manager
	Assets   *asset.Manager
	Scenes   *scene.Manager
	Input    input.Source
	Frame    *metrics.Frame
	Overlay  *debug.Overlay

	// DebugWorld, when set, gets bounding boxes from the overlay.
	DebugWorld scene.World

	// MaxFrames stops Run after that many frames; zero runs until the
	// window closes.
	MaxFrames int

	cleanup []func()
	closed  bool
}

// New brings subsystems up in dependency order. On error, whatever was
// already started is shut down again.
func New(cfg config.Config, p Platform) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	level, _ := utils.ParseLevel(cfg.LogLevel)
	utils.CurrentLevel = level
	utils.DebugMode = level == utils.LevelDebug

	a := &App{Config: cfg, Platform: p}
	if err := a.init(); err != nil {
		a.Shutdown()
		return nil, err
	}
	return a, nil
}

func (a *App) init() error {
	cfg := a.Config
	utils.Info("Starting on %s platform", a.Platform.Name())

	wcfg := window.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Resizable:   cfg.Window.Resizable,
		Fullscreen:  cfg.Window.Fullscreen,
		VSync:       cfg.Window.VSync,
		Undecorated: cfg.Window.Undecorated,
		MSAA:        cfg.Window.MSAA,
	}
	surface, err := a.Platform.Open(wcfg, cfg.Window.TargetFPS)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	a.Window = window.New(surface, wcfg)
	a.onShutdown(a.Window.Close)

	a.Renderer = engine2D.NewRenderer(a.Platform.Backend(), engine2D.Config{MaxQuads: cfg.Renderer.MaxQuads})
	width, height := a.Window.Size()
	a.Renderer.Init(width, height)
	a.onShutdown(a.Renderer.Shutdown)
	if cfg.Window.MSAA {
		a.Renderer.EnableMultisampling()
	}
	a.Window.OnResize(a.Renderer.UpdateProjection)

	a.Audio = audio.NewManager(a.Platform.AudioDevice(), audio.Config{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
	})
	if err := a.Audio.Open(); err != nil {
		utils.Warn("Continuing without audio: %v", err)
	}
	a.onShutdown(a.Audio.Close)

	a.Assets = asset.NewManager(a.Renderer, a.Audio)
	a.onShutdown(a.Assets.Shutdown)
	a.loadAssets()

	a.Scenes = scene.NewManager()
	a.onShutdown(a.Scenes.Shutdown)

	a.Input = a.Platform.Input()
	a.Frame = metrics.NewFrame()
	a.Overlay = debug.NewOverlay(a.Platform.Text())
	return nil
}

func (a *App) loadAssets() {
	dir := a.Config.Assets.Directory
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if err := a.Assets.LoadFromDirectory(dir); err != nil {
				utils.Warn("Loading assets from %s: %v", dir, err)
			}
		} else {
			utils.Debug("Asset directory %s not found, skipping", dir)
		}
	}
	for _, pkg := range a.Config.Assets.Packages {
		if err := a.Assets.LoadPackage(pkg); err != nil {
			utils.Warn("Loading package %s: %v", pkg, err)
		}
	}
}

func (a *App) onShutdown(fn func()) {
	a.cleanup = append(a.cleanup, fn)
}

// Run steps frames until the window closes or MaxFrames is reached.
func (a *App) Run() {
	utils.Info("Entering main loop")
	for frames := 0; !a.Window.ShouldClose(); frames++ {
		if a.MaxFrames > 0 && frames >= a.MaxFrames {
			break
		}
		a.Step()
	}
	utils.Info("Main loop finished after %d frames", a.Frame.Frames())
}

// Step runs one frame.
func (a *App) Step() {
	dt := a.Frame.Tick()
	a.Window.Poll()
	a.Audio.Update()
	a.Overlay.Update(a.Input, a.Frame)

	a.Window.BeginFrame()
	a.Renderer.BeginFrame()
	a.Renderer.ClearScreen(a.Config.Renderer.ClearColor.Color())

	a.Scenes.Process(dt)
	if a.DebugWorld != nil {
		a.Overlay.DrawBoundingBoxes(a.Renderer, a.DebugWorld)
	}
	a.Renderer.EndFrame()
	a.Frame.Sample(a.Renderer)

	a.Overlay.Draw(a.Renderer)
	a.Window.EndFrame()

	if f, ok := a.Input.(interface{ EndFrame() }); ok {
		f.EndFrame()
	}
}

// Shutdown stops subsystems in reverse start order. It is safe to call more
// than once.
func (a *App) Shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
	utils.Info("Shut down")
}
