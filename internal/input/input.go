package input

import (
	"nova2d/internal/engine2D"
)

// Key and MouseButton values match raylib's (and GLFW's) codes.
type Key int32

const (
	KeySpace  Key = 32
	KeyA      Key = 65
	KeyD      Key = 68
	KeyS      Key = 83
	KeyW      Key = 87
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265
	KeyF8     Key = 297
	KeyF9     Key = 298
	KeyF11    Key = 300
)

type MouseButton int32

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Source answers input queries for the current frame.
type Source interface {
	MousePosition() engine2D.Vec2
	IsKeyDown(key Key) bool
	IsKeyPressed(key Key) bool
	IsMouseButtonDown(button MouseButton) bool
}

// Static is a Source whose state is set by hand, for tests and headless
// runs. Pressed keys are reported once, until the next EndFrame.
type Static struct {
	Mouse   engine2D.Vec2
	down    map[Key]bool
	pressed map[Key]bool
	buttons map[MouseButton]bool
}

var _ Source = (*Static)(nil)

func NewStatic() *Static {
	return &Static{
		down:    make(map[Key]bool),
		pressed: make(map[Key]bool),
		buttons: make(map[MouseButton]bool),
	}
}

func (s *Static) Press(key Key) {
	if !s.down[key] {
		s.pressed[key] = true
	}
	s.down[key] = true
}

func (s *Static) Release(key Key) {
	delete(s.down, key)
}

func (s *Static) SetButton(button MouseButton, down bool) {
	s.buttons[button] = down
}

// EndFrame clears the one-frame pressed state.
func (s *Static) EndFrame() {
	clear(s.pressed)
}

func (s *Static) MousePosition() engine2D.Vec2 { return s.Mouse }

func (s *Static) IsKeyDown(key Key) bool { return s.down[key] }

func (s *Static) IsKeyPressed(key Key) bool { return s.pressed[key] }

func (s *Static) IsMouseButtonDown(button MouseButton) bool { return s.buttons[button] }

// Axis returns -1, 0 or 1 from a pair of opposing keys.
func Axis(src Source, negative, positive Key) float32 {
	var v float32
	if src.IsKeyDown(negative) {
		v--
	}
	if src.IsKeyDown(positive) {
		v++
	}
	return v
}
