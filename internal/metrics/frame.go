package metrics

import (
	"fmt"
	"runtime"
	"time"

	"nova2d/internal/engine2D"
)

// DefaultMaxDelta caps the step handed to game logic after a stall.
const DefaultMaxDelta = 0.25

// Frame measures frame timing and keeps the renderer counters of the
// last completed frame.
type Frame struct {
	MaxDelta float32

	now          func() time.Time
	last         time.Time
	windowStart  time.Time
	windowFrames int
	fps          float64
	dt           float32
	frames       uint64
	render       engine2D.Stats
	memStats     runtime.MemStats
}

func NewFrame() *Frame {
	return newFrame(time.Now)
}

func newFrame(now func() time.Time) *Frame {
	t := now()
	return &Frame{
		MaxDelta:    DefaultMaxDelta,
		now:         now,
		last:        t,
		windowStart: t,
	}
}

// Tick starts a new frame and returns the seconds since the previous one.
// FPS is recomputed about once per second.
func (f *Frame) Tick() float32 {
	t := f.now()
	dt := float32(t.Sub(f.last).Seconds())
	f.last = t
	if dt < 0 {
		dt = 0
	}
	if f.MaxDelta > 0 && dt > f.MaxDelta {
		dt = f.MaxDelta
	}
	f.dt = dt
	f.frames++

	f.windowFrames++
	if elapsed := t.Sub(f.windowStart); elapsed >= time.Second {
		f.fps = float64(f.windowFrames) / elapsed.Seconds()
		f.windowFrames = 0
		f.windowStart = t
		runtime.ReadMemStats(&f.memStats)
	}
	return dt
}

// Sample takes the renderer counters for the frame just drawn and resets
// them for the next one.
func (f *Frame) Sample(r *engine2D.Renderer) {
	f.render = r.Stats()
	r.ResetStats()
}

func (f *Frame) DeltaTime() float32 { return f.dt }
func (f *Frame) FPS() float64       { return f.fps }
func (f *Frame) Frames() uint64     { return f.frames }

func (f *Frame) Render() engine2D.Stats { return f.render }

// Lines formats the current numbers for an overlay.
func (f *Frame) Lines() []string {
	s := f.render
	return []string{
		fmt.Sprintf("FPS: %.1f", f.fps),
		fmt.Sprintf("Frame Time: %.2f ms", f.dt*1000),
		fmt.Sprintf("Draw Calls: %d", s.DrawCalls),
		fmt.Sprintf("Quads: %d", s.Quads),
		fmt.Sprintf("Flushes: capacity %d, slots %d, end %d, explicit %d",
			s.FlushesFor(engine2D.FlushCapacity),
			s.FlushesFor(engine2D.FlushTextureSlots),
			s.FlushesFor(engine2D.FlushEndFrame),
			s.FlushesFor(engine2D.FlushExplicit)),
		fmt.Sprintf("Heap Alloc: %.2f MB", float64(f.memStats.HeapAlloc)/1024/1024),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
	}
}
