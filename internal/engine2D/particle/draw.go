package particle

import (
	"github.com/chewxy/math32"

	"nova2d/internal/engine2D"
)

// Draw submits every live particle to the renderer, oldest first.
func (e *Emitter) Draw(r *engine2D.Renderer) {
	cfg := &e.Config
	tex := cfg.Texture

	var frameW, frameH float32 = 1, 1
	if tex != nil {
		frameW = float32(tex.Width()) / float32(cfg.Columns)
		frameH = float32(tex.Height()) / float32(cfg.Rows)
	}
	aspect := frameH / frameW

	drawTex := tex
	if drawTex == nil {
		drawTex = r.WhiteTexture()
	}

	for _, p := range e.Particles {
		var source engine2D.Rect
		if tex != nil && cfg.Columns*cfg.Rows > 1 {
			source = engine2D.Rect{
				X:      float32(p.Frame%cfg.Columns) * frameW,
				Y:      float32(p.Frame/cfg.Columns) * frameH,
				Width:  frameW,
				Height: frameH,
			}
		}

		r.Draw(engine2D.DrawCommand{
			Texture:  drawTex,
			Position: e.Position.Add(p.Position),
			Size:     engine2D.Vec2{X: p.Size, Y: p.Size * aspect},
			Rotation: p.Rotation,
			Tint:     particleColor(p),
			Source:   source,
		})
	}
}

func particleColor(p *Particle) engine2D.Color {
	return engine2D.Color{
		R: toByte(p.Color[0]),
		G: toByte(p.Color[1]),
		B: toByte(p.Color[2]),
		A: toByte(p.Alpha),
	}
}

func toByte(v float32) uint8 {
	return uint8(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
}
