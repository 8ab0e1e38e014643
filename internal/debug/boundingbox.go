package debug

import (
	"github.com/chewxy/math32"

	"nova2d/internal/engine2D"
	"nova2d/internal/scene"
)

var (
	boxColor   = engine2D.NewColor(0, 255, 0, 255)
	pivotColor = engine2D.Red
)

// DrawBoundingBoxes outlines every entity with a Transform and marks its
// pivot. Entities with no explicit size use their texture or sprite frame
// size.
func (o *Overlay) DrawBoundingBoxes(r *engine2D.Renderer, w scene.World) {
	if !o.ShowBoundingBoxes {
		return
	}
	scene.Each1[scene.Transform](w, func(e scene.Entity, t *scene.Transform) {
		size := entitySize(w, e, t)
		if size.X <= 0 || size.Y <= 0 {
			return
		}
		drawOutline(r, t, size, 1, boxColor)

		pivot := t.Position.Add(t.Origin)
		r.DrawQuad(pivot, engine2D.NewVec2(4, 4), pivotColor)
	})
}

func entitySize(w scene.World, e scene.Entity, t *scene.Transform) engine2D.Vec2 {
	if t.Size != (engine2D.Vec2{}) {
		return t.Size
	}
	if c, ok := scene.Get[scene.TextureComponent](w, e); ok && c.Texture != nil {
		if !c.Source.Empty() {
			src := c.Source.Abs()
			return engine2D.NewVec2(src.Width, src.Height)
		}
		return c.Texture.Size()
	}
	if c, ok := scene.Get[scene.SpriteComponent](w, e); ok && c.Sprite != nil {
		return c.Sprite.FrameSize()
	}
	return engine2D.Vec2{}
}

// drawOutline traces the quad t describes through its own corners, so the
// outline turns with the entity about the same pivot.
func drawOutline(r *engine2D.Renderer, t *scene.Transform, size engine2D.Vec2, thickness float32, c engine2D.Color) {
	corners := engine2D.QuadCorners(t.Position, size, t.Rotation, t.Origin)
	for i, from := range corners {
		to := corners[(i+1)%len(corners)]
		d := to.Sub(from)
		length := math32.Hypot(d.X, d.Y)
		angle := math32.Atan2(d.Y, d.X) * 180 / math32.Pi
		mid := from.Add(d.Scale(0.5))
		r.DrawQuadEx(mid, engine2D.NewVec2(length, thickness), c, angle, engine2D.Vec2{})
	}
}
