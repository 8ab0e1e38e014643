package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/app"
	"nova2d/internal/config"
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/recorder"
	"nova2d/internal/input"
	"nova2d/internal/scene"
)

func newSandbox(t *testing.T) (*app.App, *app.Headless, *sandboxScene) {
	t.Helper()
	cfg := config.Default()
	cfg.Assets.Directory = filepath.Join(t.TempDir(), "missing")
	cfg.Audio.Enabled = false

	p := app.NewHeadless()
	p.Recorder = recorder.New()
	a, err := app.New(cfg, p)
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)

	s := newSandboxScene(a)
	a.Scenes.Add("SandboxScene", s)
	a.Scenes.Start("SandboxScene")
	return a, p, s
}

func TestSandboxRuns(t *testing.T) {
	a, p, s := newSandbox(t)
	assert.True(t, a.Assets.HasTexture(checkerTexture))
	assert.True(t, a.Assets.HasTexture(walkerTexture))

	p.Keys.Mouse = engine2D.NewVec2(300, 200)
	p.Keys.Press(input.KeyRight)
	a.MaxFrames = 30
	a.Run()

	cursor, ok := scene.Get[scene.Transform](s.World(), s.cursor)
	require.True(t, ok)
	assert.Equal(t, engine2D.NewVec2(300, 200), cursor.Position)
	assert.Greater(t, cursor.Rotation, float32(0))
	assert.Equal(t, 30, p.Surface.Frames)
	assert.NotEmpty(t, p.Recorder.DrawCalls)
}

func TestSandboxBurst(t *testing.T) {
	a, p, s := newSandbox(t)
	p.Keys.Press(input.KeySpace)
	a.Step()
	assert.GreaterOrEqual(t, s.fountain.Count(), 100)
}

func TestSandboxStopClearsWorld(t *testing.T) {
	a, _, s := newSandbox(t)
	a.Step()
	a.Scenes.Stop("SandboxScene")

	assert.Zero(t, s.World().Len())
	assert.Zero(t, s.ActiveEasings())
	assert.Nil(t, a.DebugWorld)
}

func TestClockHandsPivotOnCenter(t *testing.T) {
	rec := recorder.New()
	r := engine2D.NewRenderer(rec, engine2D.Config{})
	r.Init(200, 200)
	defer r.Shutdown()

	w := scene.NewRegistry()
	addClock(w, engine2D.NewVec2(100, 100), 50)
	render := scene.RenderSystem{Renderer: r}

	render.Draw(w)
	r.EndFrame()
	require.Len(t, rec.DrawCalls, 1)
	v := rec.DrawCalls[0].Vertices
	require.Len(t, v, 4*engine2D.VerticesPerQuad)

	// at rest every hand rises from the center towards twelve
	hands := []struct {
		length, width float32
	}{{25, 6}, {40, 4}, {45, 2}}
	for i, h := range hands {
		q := v[(i+1)*4 : (i+2)*4]
		assert.Equal(t, engine2D.NewVec2(100-h.width/2, 100-h.length), q[0].Position, "hand %d", i)
		assert.Equal(t, engine2D.NewVec2(100+h.width/2, 100), q[2].Position, "hand %d", i)
	}

	clock := scene.ClockSystem{Now: func() time.Time {
		return time.Date(2026, 1, 1, 15, 0, 0, 0, time.Local)
	}}
	clock.Update(w, 0)
	rec.Reset()
	render.Draw(w)
	r.EndFrame()
	require.Len(t, rec.DrawCalls, 1)

	// three o'clock: the hour hand points right, still anchored at the center
	hour := rec.DrawCalls[0].Vertices[4:8]
	minX, maxX := hour[0].Position.X, hour[0].Position.X
	for _, vert := range hour {
		minX = min(minX, vert.Position.X)
		maxX = max(maxX, vert.Position.X)
		assert.InDelta(t, 100, vert.Position.Y, 3+1e-3)
	}
	assert.InDelta(t, 100, minX, 1e-3)
	assert.InDelta(t, 125, maxX, 1e-3)
}
