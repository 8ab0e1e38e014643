package app

import (
	"nova2d/internal/audio"
	"nova2d/internal/debug"
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/recorder"
	"nova2d/internal/input"
	"nova2d/internal/window"
)

// Platform supplies the outside world: a window surface, a render backend,
// input, and optionally audio and debug text. AudioDevice and Text may
// return nil.
type Platform interface {
	Name() string
	Open(cfg window.Config, targetFPS int) (window.Surface, error)
	Backend() engine2D.Backend
	Input() input.Source
	AudioDevice() audio.Device
	Text() debug.TextDrawer
}

// Headless runs the engine without a window: the renderer submits to a
// recorder and input is scripted.
type Headless struct {
	Surface  *window.Headless
	Recorder *recorder.Backend
	Keys     *input.Static
}

var _ Platform = (*Headless)(nil)

// NewHeadless counts draw calls without keeping vertex data. Replace
// Recorder with recorder.New() before Open to inspect batches.
func NewHeadless() *Headless {
	return &Headless{
		Recorder: recorder.NewCounting(),
		Keys:     input.NewStatic(),
	}
}

func (h *Headless) Name() string { return "headless" }

func (h *Headless) Open(cfg window.Config, targetFPS int) (window.Surface, error) {
	h.Surface = window.NewHeadless(cfg.Width, cfg.Height)
	return h.Surface, nil
}

func (h *Headless) Backend() engine2D.Backend { return h.Recorder }
func (h *Headless) Input() input.Source       { return h.Keys }
func (h *Headless) AudioDevice() audio.Device { return nil }
func (h *Headless) Text() debug.TextDrawer    { return nil }
