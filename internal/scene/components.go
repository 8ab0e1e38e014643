package scene

import (
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/particle"
)

// Transform places an entity on screen. Rotation is in degrees about
// Position+Origin. Origin is in unit-quad space: (0, 0.5) is the middle of
// the bottom edge. A zero Size means "native size" for textures and sprites.
type Transform struct {
	Position engine2D.Vec2
	Size     engine2D.Vec2
	Rotation float32
	Origin   engine2D.Vec2
}

type ColorComponent struct {
	Color engine2D.Color
}

// TextureComponent draws a whole texture. Use Textured for an untinted one;
// the zero Tint is transparent.
type TextureComponent struct {
	Texture *engine2D.Texture
	Tint    engine2D.Color
	Source  engine2D.Rect
	FlipX   bool
}

func Textured(tex *engine2D.Texture) TextureComponent {
	return TextureComponent{Texture: tex, Tint: engine2D.White}
}

type SpriteComponent struct {
	Sprite *engine2D.Sprite
}

// EmitterComponent attaches a particle emitter. If the entity also has a
// Transform, the emitter follows its Position.
type EmitterComponent struct {
	Emitter *particle.Emitter
}
