package engine2D_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/engine2D"
)

func newSheetSprite(tex *engine2D.Texture) *engine2D.Sprite {
	s := engine2D.NewSprite(engine2D.SpriteConfig{
		Texture:       tex,
		FrameWidth:    16,
		FrameHeight:   16,
		Columns:       4,
		Rows:          2,
		FrameDuration: 0.25,
	})
	s.AddAnimation("idle", 0, 1, 2, 3)
	s.AddAnimation("run", 4, 5, 6, 7)
	return s
}

func TestSpriteAnimationLoops(t *testing.T) {
	s := newSheetSprite(nil)
	s.PlayAnimation("idle", true, false)

	frames := []int{}
	for i := 0; i < 6; i++ {
		s.Update(0.25)
		frames = append(frames, s.CurrentFrame())
	}
	assert.Equal(t, []int{1, 2, 3, 0, 1, 2}, frames)
	assert.False(t, s.Finished())
}

func TestSpriteAnimationClamps(t *testing.T) {
	s := newSheetSprite(nil)
	s.PlayAnimation("run", false, false)

	s.Update(10)
	assert.Equal(t, 7, s.CurrentFrame())
	assert.True(t, s.Finished())
	assert.Equal(t, engine2D.Vec2{X: 48, Y: 16}, s.FramePosition())
}

func TestSpriteUpdateCarriesRemainder(t *testing.T) {
	s := newSheetSprite(nil)
	s.PlayAnimation("idle", true, false)

	s.Update(0.125)
	assert.Equal(t, 0, s.CurrentFrame())
	s.Update(0.125)
	assert.Equal(t, 1, s.CurrentFrame())
	s.Update(0.5)
	assert.Equal(t, 3, s.CurrentFrame())
}

func TestSpritePlayAnimation(t *testing.T) {
	s := newSheetSprite(nil)

	s.PlayAnimation("missing", true, false)
	assert.Empty(t, s.CurrentAnimation())
	s.Update(1)
	assert.Equal(t, 0, s.CurrentFrame())

	s.PlayAnimation("run", true, false)
	s.Update(0.25)
	assert.Equal(t, 5, s.CurrentFrame())

	s.PlayAnimation("run", true, true)
	assert.Equal(t, 5, s.CurrentFrame())

	s.PlayAnimation("run", true, false)
	assert.Equal(t, 4, s.CurrentFrame())
}

func TestSpriteRejectsFramesOutsideSheet(t *testing.T) {
	s := newSheetSprite(nil)
	assert.Panics(t, func() { s.AddAnimation("bad", 8) })
}

func TestSpriteWithoutFrameSizeUsesWholeTexture(t *testing.T) {
	r, _ := newTestRenderer(t, 0)
	tex := newTestTexture(t, r, "whole", 30, 20)

	s := engine2D.NewSprite(engine2D.SpriteConfig{Texture: tex})
	assert.Equal(t, engine2D.NewVec2(30, 20), s.FrameSize())
	assert.Equal(t, engine2D.Rect{}, s.SourceRect())
}

func TestDrawSpriteUsesCurrentFrame(t *testing.T) {
	r, rec := newTestRenderer(t, 0)
	tex := newTestTexture(t, r, "sheet", 64, 32)
	s := newSheetSprite(tex)
	s.PlayAnimation("run", true, false)
	s.Update(0.25)

	r.DrawSprite(s, engine2D.NewVec2(8, 8))
	s.FlipX = true
	r.DrawSpriteSized(s, engine2D.NewVec2(100, 100), engine2D.NewVec2(32, 32), 0, engine2D.Vec2{})
	r.EndFrame()

	require.Len(t, rec.DrawCalls, 1)
	v := rec.DrawCalls[0].Vertices

	// frame 5: column 1, row 1
	assert.Equal(t, engine2D.Vec2{X: 0.25, Y: 0.5}, v[0].TexCoord)
	assert.Equal(t, engine2D.Vec2{X: 0.5, Y: 1}, v[2].TexCoord)
	assert.Equal(t, engine2D.Vec2{X: 0, Y: 0}, v[0].Position)
	assert.Equal(t, engine2D.Vec2{X: 16, Y: 16}, v[2].Position)

	assert.Equal(t, engine2D.Vec2{X: 0.5, Y: 0.5}, v[4].TexCoord)
	assert.Equal(t, engine2D.Vec2{X: 84, Y: 84}, v[4].Position)
	assert.Equal(t, float32(1), v[4].TexSlot)
}

func TestDrawNilSpriteIsSkipped(t *testing.T) {
	r, rec := newTestRenderer(t, 0)

	r.DrawSprite(nil, engine2D.Vec2{})
	r.EndFrame()

	assert.Empty(t, rec.DrawCalls)
}
