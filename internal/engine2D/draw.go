package engine2D

// DrawCommand is the full form of a quad draw. A nil Texture is drawn with the
// white texture and logged once. Tint is used as given, so the zero value draws a transparent
// quad; set it to White for an untinted texture.
type DrawCommand struct {
	Texture  *Texture
	Position Vec2
	Size     Vec2
	// Rotation in degrees, about Position+Origin. Origin is in unit-quad
	// space, so it is scaled by Size before the quad turns about it.
	Rotation float32
	Origin   Vec2
	Tint     Color
	// Source selects a region of Texture in pixels. An empty rectangle
	// selects the whole texture; negative extents are treated as positive.
	Source Rect
	// FlipX mirrors the texture horizontally.
	FlipX bool
}

// DrawQuad draws an untextured quad.
func (r *Renderer) DrawQuad(position, size Vec2, c Color) {
	r.DrawQuadEx(position, size, c, 0, Vec2{})
}

// DrawQuadEx draws an untextured quad rotated about position+origin.
func (r *Renderer) DrawQuadEx(position, size Vec2, c Color, rotation float32, origin Vec2) {
	r.requireInit("DrawQuad")
	r.drawQuad(r.white, position, size, c, rotation, origin, Rect{}, false)
}

// DrawTexture draws tex at its native size.
func (r *Renderer) DrawTexture(tex *Texture, position Vec2) {
	r.DrawTextureEx(tex, position, 0, Vec2{})
}

func (r *Renderer) DrawTextureEx(tex *Texture, position Vec2, rotation float32, origin Vec2) {
	r.requireInit("DrawTexture")
	tex = r.resolveTexture(tex)
	r.drawQuad(tex, position, tex.Size(), White, rotation, origin, Rect{}, false)
}

// Draw draws one quad described by cmd.
func (r *Renderer) Draw(cmd DrawCommand) {
	r.requireInit("Draw")
	tex := r.resolveTexture(cmd.Texture)
	r.drawQuad(tex, cmd.Position, cmd.Size, cmd.Tint, cmd.Rotation, cmd.Origin, cmd.Source, cmd.FlipX)
}

// DrawSprite draws the current frame of s at the frame's size.
func (r *Renderer) DrawSprite(s *Sprite, position Vec2) {
	r.DrawSpriteEx(s, position, 0, Vec2{})
}

func (r *Renderer) DrawSpriteEx(s *Sprite, position Vec2, rotation float32, origin Vec2) {
	r.requireInit("DrawSprite")
	if s == nil {
		r.warnOnce("nil-sprite", "Drawing a nil sprite")
		return
	}
	r.DrawSpriteSized(s, position, s.FrameSize(), rotation, origin)
}

// DrawSpriteSized draws the current frame of s stretched to size.
func (r *Renderer) DrawSpriteSized(s *Sprite, position, size Vec2, rotation float32, origin Vec2) {
	r.requireInit("DrawSprite")
	if s == nil {
		r.warnOnce("nil-sprite", "Drawing a nil sprite")
		return
	}
	r.Draw(DrawCommand{
		Texture:  s.Texture(),
		Position: position,
		Size:     size,
		Rotation: rotation,
		Origin:   origin,
		Tint:     s.Tint,
		Source:   s.SourceRect(),
		FlipX:    s.FlipX,
	})
}

// drawQuad appends one quad. tex must already be resolved.
func (r *Renderer) drawQuad(tex *Texture, position, size Vec2, tint Color, rotation float32, origin Vec2, source Rect, flipX bool) {
	// Capacity goes first: a flush here must not drop the slot we are about to take.
	if !r.batch.fits(VerticesPerQuad) {
		r.flush(FlushCapacity)
	}
	slot := float32(r.textureSlot(tex))

	uv := textureRegion(tex, source, flipX)
	xf := quadTransform(position, size, rotation, origin)
	col := tint.Normalize()

	for i := 0; i < VerticesPerQuad; i++ {
		t := quadTexCoords[i]
		r.batch.push(Vertex{
			Position: xf.apply(quadPositions[i]),
			TexCoord: Vec2{
				X: uv.u0 + t.X*(uv.u1-uv.u0),
				Y: uv.v0 + t.Y*(uv.v1-uv.v0),
			},
			Color:   col,
			TexSlot: slot,
		})
	}
	r.batch.commitQuad()
}

type uvRect struct {
	u0, v0, u1, v1 float32
}

// textureRegion normalizes a pixel source rectangle against tex.
func textureRegion(tex *Texture, source Rect, flipX bool) uvRect {
	uv := uvRect{0, 0, 1, 1}
	src := source.Abs()
	if !src.Empty() {
		w, h := float32(tex.width), float32(tex.height)
		uv = uvRect{
			u0: src.X / w,
			v0: src.Y / h,
			u1: (src.X + src.Width) / w,
			v1: (src.Y + src.Height) / h,
		}
	}
	if flipX {
		uv.u0, uv.u1 = uv.u1, uv.u0
	}
	return uv
}
