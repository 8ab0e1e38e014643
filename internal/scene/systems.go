package scene

import (
	"nova2d/internal/engine2D"
)

// System advances some part of a World by dt seconds.
type System interface {
	Update(w World, dt float32)
}

// SpriteSystem advances sprite animations.
type SpriteSystem struct{}

func (SpriteSystem) Update(w World, dt float32) {
	Each1[SpriteComponent](w, func(_ Entity, s *SpriteComponent) {
		if s.Sprite != nil {
			s.Sprite.Update(dt)
		}
	})
}

// ParticleSystem moves emitters to their transforms and steps them.
type ParticleSystem struct{}

func (ParticleSystem) Update(w World, dt float32) {
	Each1[EmitterComponent](w, func(e Entity, c *EmitterComponent) {
		if c.Emitter == nil {
			return
		}
		if t, ok := Get[Transform](w, e); ok {
			c.Emitter.SetPosition(t.Position.X, t.Position.Y)
		}
		c.Emitter.Update(dt)
	})
}

// RenderSystem submits every drawable entity to the renderer: color quads
// first, then textures, sprites and particles.
type RenderSystem struct {
	Renderer *engine2D.Renderer
}

func (s RenderSystem) Draw(w World) {
	r := s.Renderer

	Each2[Transform, ColorComponent](w, func(_ Entity, t *Transform, c *ColorComponent) {
		r.DrawQuadEx(t.Position, t.Size, c.Color, t.Rotation, t.Origin)
	})

	Each2[Transform, TextureComponent](w, func(_ Entity, t *Transform, c *TextureComponent) {
		size := t.Size
		if size == (engine2D.Vec2{}) && c.Texture != nil {
			size = c.Texture.Size()
			if !c.Source.Empty() {
				src := c.Source.Abs()
				size = engine2D.NewVec2(src.Width, src.Height)
			}
		}
		r.Draw(engine2D.DrawCommand{
			Texture:  c.Texture,
			Position: t.Position,
			Size:     size,
			Rotation: t.Rotation,
			Origin:   t.Origin,
			Tint:     c.Tint,
			Source:   c.Source,
			FlipX:    c.FlipX,
		})
	})

	Each2[Transform, SpriteComponent](w, func(_ Entity, t *Transform, c *SpriteComponent) {
		if t.Size == (engine2D.Vec2{}) {
			r.DrawSpriteEx(c.Sprite, t.Position, t.Rotation, t.Origin)
			return
		}
		r.DrawSpriteSized(c.Sprite, t.Position, t.Size, t.Rotation, t.Origin)
	})

	Each1[EmitterComponent](w, func(_ Entity, c *EmitterComponent) {
		if c.Emitter != nil {
			c.Emitter.Draw(r)
		}
	})
}
