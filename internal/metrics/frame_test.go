package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/recorder"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickMeasuresDeltaAndFPS(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	f := newFrame(clock.now)

	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		dt := f.Tick()
		assert.InDelta(t, 1.0/60, dt, 1e-6)
	}
	assert.Equal(t, uint64(60), f.Frames())
	assert.InDelta(t, 60, f.FPS(), 0.5)
}

func TestTickClampsLongFrames(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := newFrame(clock.now)

	clock.advance(3 * time.Second)
	assert.Equal(t, float32(DefaultMaxDelta), f.Tick())

	f.MaxDelta = 0
	clock.advance(3 * time.Second)
	assert.InDelta(t, 3, f.Tick(), 1e-6)
}

func TestSampleResetsRendererStats(t *testing.T) {
	rec := recorder.New()
	r := engine2D.NewRenderer(rec, engine2D.Config{MaxQuads: 2})
	r.Init(10, 10)
	defer r.Shutdown()

	for i := 0; i < 3; i++ {
		r.DrawQuad(engine2D.NewVec2(1, 1), engine2D.NewVec2(1, 1), engine2D.White)
	}
	r.EndFrame()

	f := NewFrame()
	f.Sample(r)
	s := f.Render()
	assert.Equal(t, 2, s.DrawCalls)
	assert.Equal(t, 3, s.Quads)
	assert.Equal(t, 1, s.FlushesFor(engine2D.FlushCapacity))
	assert.Equal(t, 1, s.FlushesFor(engine2D.FlushEndFrame))
	assert.Zero(t, r.Stats().DrawCalls)

	lines := f.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines, "Draw Calls: 2")
	assert.Contains(t, lines, "Flushes: capacity 1, slots 0, end 1, explicit 0")
}
