// Package platform connects the engine to a real window through raylib:
// the window surface, the rlgl render backend, keyboard and mouse, audio
// and debug text.
package platform

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nova2d/internal/audio"
	"nova2d/internal/debug"
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/rlgl"
	"nova2d/internal/input"
	"nova2d/internal/utils"
	"nova2d/internal/window"
)

type Raylib struct {
	backend *rlgl.Backend
	input   Input
	audio   *AudioDevice
	silent  bool
}

func NewRaylib(silent bool) *Raylib {
	return &Raylib{
		backend: rlgl.New(),
		audio:   &AudioDevice{},
		silent:  silent,
	}
}

func (p *Raylib) Name() string { return "raylib" }

// Open creates the raylib window. Only one can exist per process.
func (p *Raylib) Open(cfg window.Config, targetFPS int) (window.Surface, error) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	var flags uint32
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.Undecorated {
		flags |= rl.FlagWindowUndecorated
	}
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("failed to create raylib window")
	}
	if targetFPS > 0 {
		rl.SetTargetFPS(int32(targetFPS))
	}
	return &Surface{}, nil
}

func (p *Raylib) Backend() engine2D.Backend { return p.backend }
func (p *Raylib) Input() input.Source       { return p.input }
func (p *Raylib) Text() debug.TextDrawer    { return Text{} }

func (p *Raylib) AudioDevice() audio.Device {
	if p.silent {
		return nil
	}
	return p.audio
}

// Surface is the raylib main window.
type Surface struct{}

var _ window.Surface = (*Surface)(nil)

func (s *Surface) Size() (int, int) {
	return int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
}

func (s *Surface) SetSize(width, height int) { rl.SetWindowSize(width, height) }
func (s *Surface) Maximize()                 { rl.MaximizeWindow() }
func (s *Surface) SetTitle(title string)     { rl.SetWindowTitle(title) }
func (s *Surface) ShouldClose() bool         { return rl.WindowShouldClose() }
func (s *Surface) BeginFrame()               { rl.BeginDrawing() }
func (s *Surface) EndFrame()                 { rl.EndDrawing() }
func (s *Surface) Close()                    { rl.CloseWindow() }

// Input reads raylib's per-frame keyboard and mouse state.
type Input struct{}

var _ input.Source = Input{}

func (Input) MousePosition() engine2D.Vec2 {
	p := rl.GetMousePosition()
	return engine2D.NewVec2(p.X, p.Y)
}

func (Input) IsKeyDown(key input.Key) bool    { return rl.IsKeyDown(int32(key)) }
func (Input) IsKeyPressed(key input.Key) bool { return rl.IsKeyPressed(int32(key)) }

func (Input) IsMouseButtonDown(button input.MouseButton) bool {
	return rl.IsMouseButtonDown(rl.MouseButton(button))
}

// Text draws with raylib's default font.
type Text struct{}

func (Text) DrawText(text string, x, y, size int, c engine2D.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), rl.NewColor(c.R, c.G, c.B, c.A))
}
