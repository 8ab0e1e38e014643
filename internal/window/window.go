package window

import (
	"nova2d/internal/utils"
)

// Surface is the platform window the Window drives.
type Surface interface {
	Size() (width, height int)
	SetSize(width, height int)
	Maximize()
	SetTitle(title string)
	ShouldClose() bool
	BeginFrame()
	EndFrame()
	Close()
}

type Config struct {
	Title       string
	Width       int
	Height      int
	Resizable   bool
	Fullscreen  bool
	VSync       bool
	Undecorated bool
	MSAA        bool
}

// ResizeFunc is called with the new framebuffer size.
type ResizeFunc func(width, height int)

// Window tracks the surface size and tells listeners when it changes. The
// size is polled once per frame; listeners run before anything is drawn at
// the new size.
type Window struct {
	surface   Surface
	config    Config
	width     int
	height    int
	listeners []ResizeFunc
	closed    bool
}

func New(surface Surface, cfg Config) *Window {
	utils.Assert(surface != nil, "window surface is nil")
	w := &Window{surface: surface, config: cfg}
	w.width, w.height = surface.Size()
	if cfg.Title != "" {
		surface.SetTitle(cfg.Title)
	}
	utils.Info("Window \"%s\" created (%dx%d)", cfg.Title, w.width, w.height)
	return w
}

// OnResize registers fn. It is not called for the current size.
func (w *Window) OnResize(fn ResizeFunc) {
	if fn != nil {
		w.listeners = append(w.listeners, fn)
	}
}

// Poll checks the surface for a size change and notifies listeners. It
// reports whether the size changed. Minimized surfaces report a zero size,
// which is not forwarded.
func (w *Window) Poll() bool {
	width, height := w.surface.Size()
	if width == w.width && height == w.height {
		return false
	}
	if width <= 0 || height <= 0 {
		utils.Debug("Ignoring empty surface size %dx%d", width, height)
		return false
	}
	w.width, w.height = width, height
	utils.Debug("Window resized to %dx%d", width, height)
	for _, fn := range w.listeners {
		fn(width, height)
	}
	return true
}

func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

func (w *Window) Config() Config {
	return w.config
}

func (w *Window) Resizable() bool {
	return w.config.Resizable
}

// Resize asks the surface for a new size. Non-resizable windows keep
// their size.
func (w *Window) Resize(width, height int) {
	if !w.config.Resizable {
		utils.Warn("Window is not resizable")
		return
	}
	if width <= 0 || height <= 0 {
		utils.Warn("Invalid window size %dx%d", width, height)
		return
	}
	w.surface.SetSize(width, height)
	w.Poll()
}

func (w *Window) Maximize() {
	if !w.config.Resizable {
		utils.Warn("Window is not resizable")
		return
	}
	w.surface.Maximize()
	w.Poll()
}

func (w *Window) SetTitle(title string) {
	w.config.Title = title
	w.surface.SetTitle(title)
}

func (w *Window) ShouldClose() bool {
	return w.closed || w.surface.ShouldClose()
}

func (w *Window) BeginFrame() {
	w.surface.BeginFrame()
}

func (w *Window) EndFrame() {
	w.surface.EndFrame()
}

// Close closes the surface. Further calls are no-ops.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.surface.Close()
	utils.Info("Window closed")
}
