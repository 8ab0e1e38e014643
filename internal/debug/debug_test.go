package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/recorder"
	"nova2d/internal/input"
	"nova2d/internal/metrics"
	"nova2d/internal/scene"
)

type textCall struct {
	text string
	x, y int
	// draw calls already submitted when the text was drawn
	submitted int
}

type fakeText struct {
	rec   *recorder.Backend
	calls []textCall
}

func (f *fakeText) DrawText(text string, x, y, size int, c engine2D.Color) {
	f.calls = append(f.calls, textCall{text: text, x: x, y: y, submitted: f.rec.DrawCallCount})
}

func newRenderer(t *testing.T) (*engine2D.Renderer, *recorder.Backend) {
	t.Helper()
	rec := recorder.New()
	r := engine2D.NewRenderer(rec, engine2D.Config{MaxQuads: 32})
	r.Init(320, 240)
	t.Cleanup(r.Shutdown)
	return r, rec
}

func TestOverlayToggle(t *testing.T) {
	keys := input.NewStatic()
	o := NewOverlay(nil)
	frame := metrics.NewFrame()

	o.Update(keys, frame)
	assert.False(t, o.Visible)
	assert.Empty(t, o.Lines())

	keys.Press(input.KeyF8)
	o.Update(keys, frame)
	assert.True(t, o.Visible)
	assert.NotEmpty(t, o.Lines())

	keys.EndFrame()
	o.Update(keys, frame)
	assert.True(t, o.Visible, "holding F8 does not toggle again")

	keys.Press(input.KeyF9)
	o.Update(keys, frame)
	assert.True(t, o.ShowBoundingBoxes)
}

func TestOverlayDrawsTextAfterPanel(t *testing.T) {
	r, rec := newRenderer(t)
	text := &fakeText{rec: rec}
	o := NewOverlay(text)

	o.Draw(r)
	assert.Zero(t, rec.DrawCallCount, "hidden overlay draws nothing")

	o.Visible = true
	o.Update(nil, metrics.NewFrame())
	o.Draw(r)

	require.Equal(t, 1, rec.DrawCallCount)
	require.Len(t, text.calls, len(o.Lines()))
	for i, c := range text.calls {
		assert.Equal(t, 1, c.submitted)
		assert.Equal(t, o.Padding+i*24, c.y)
	}
	panel := rec.DrawCalls[0].Vertices
	assert.Equal(t, engine2D.Vec2{}, panel[0].Position)
}

func TestBoundingBoxes(t *testing.T) {
	r, rec := newRenderer(t)
	o := NewOverlay(nil)

	w := scene.NewRegistry()
	e := w.CreateEntity()
	scene.Add(w, e, scene.Transform{Position: engine2D.NewVec2(50, 50), Size: engine2D.NewVec2(20, 10)})
	unsized := w.CreateEntity()
	scene.Add(w, unsized, scene.Transform{Position: engine2D.NewVec2(5, 5)})

	o.DrawBoundingBoxes(r, w)
	assert.Zero(t, r.PendingQuads())

	o.ShowBoundingBoxes = true
	o.DrawBoundingBoxes(r, w)
	assert.Equal(t, 5, r.PendingQuads())
	r.EndFrame()

	v := rec.DrawCalls[0].Vertices
	assert.Equal(t, engine2D.NewVec2(40, 44.5), v[0].Position)
	assert.Equal(t, engine2D.NewVec2(60, 45.5), v[2].Position)
	assert.InDelta(t, 39.5, v[12].Position.X, 1e-4)
	assert.InDelta(t, 55, v[12].Position.Y, 1e-4)
}

func TestBoundingBoxFollowsPivot(t *testing.T) {
	r, rec := newRenderer(t)
	o := NewOverlay(nil)
	o.ShowBoundingBoxes = true

	// a clock hand pointing at three o'clock, pivoting on (100,100)
	w := scene.NewRegistry()
	e := w.CreateEntity()
	scene.Add(w, e, scene.Transform{
		Position: engine2D.NewVec2(100, 99.5),
		Size:     engine2D.NewVec2(4, 40),
		Rotation: 90,
		Origin:   engine2D.NewVec2(0, 0.5),
	})

	o.DrawBoundingBoxes(r, w)
	r.EndFrame()

	require.Len(t, rec.DrawCalls, 1)
	v := rec.DrawCalls[0].Vertices
	require.Len(t, v, 5*engine2D.VerticesPerQuad)

	minX, maxX := v[0].Position.X, v[0].Position.X
	minY, maxY := v[0].Position.Y, v[0].Position.Y
	for _, vert := range v[:4*engine2D.VerticesPerQuad] {
		minX = min(minX, vert.Position.X)
		maxX = max(maxX, vert.Position.X)
		minY = min(minY, vert.Position.Y)
		maxY = max(maxY, vert.Position.Y)
	}
	assert.InDelta(t, 99.5, minX, 1e-3)
	assert.InDelta(t, 140.5, maxX, 1e-3)
	assert.InDelta(t, 97.5, minY, 1e-3)
	assert.InDelta(t, 102.5, maxY, 1e-3)

	// pivot marker
	assert.Equal(t, engine2D.NewVec2(98, 98), v[16].Position)
	assert.Equal(t, engine2D.NewVec2(102, 102), v[18].Position)
}
