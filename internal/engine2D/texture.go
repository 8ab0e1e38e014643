package engine2D

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"nova2d/internal/utils"
)

// Texture is a GPU texture owned by a Renderer. The renderer compares
// textures by pointer, so two loads of the same file are two textures.
type Texture struct {
	id       TextureID
	name     string
	width    int
	height   int
	filter   TextureFilter
	released bool
}

func (t *Texture) ID() TextureID         { return t.id }
func (t *Texture) Name() string          { return t.name }
func (t *Texture) Width() int            { return t.width }
func (t *Texture) Height() int           { return t.height }
func (t *Texture) Filter() TextureFilter { return t.filter }
func (t *Texture) Released() bool        { return t.released }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() Vec2 {
	return Vec2{float32(t.width), float32(t.height)}
}

// toRGBA returns img as a tightly packed RGBA image whose bounds start at 0,0.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// NewTexture uploads img and returns the texture handle.
func (r *Renderer) NewTexture(name string, img image.Image) (*Texture, error) {
	r.requireInit("NewTexture")
	return r.createTexture(name, img, FilterLinear)
}

// NewTextureFiltered is NewTexture with an explicit sampling filter.
func (r *Renderer) NewTextureFiltered(name string, img image.Image, filter TextureFilter) (*Texture, error) {
	r.requireInit("NewTextureFiltered")
	return r.createTexture(name, img, filter)
}

func (r *Renderer) createTexture(name string, img image.Image, filter TextureFilter) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture %q: nil image", name)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("texture %q: empty image %dx%d", name, b.Dx(), b.Dy())
	}

	id, err := r.backend.CreateTexture(toRGBA(img), filter)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}

	utils.Debug("Created texture %s (%dx%d) as %d:%d", name, b.Dx(), b.Dy(), id.Index, id.Generation)
	return &Texture{
		id:     id,
		name:   name,
		width:  b.Dx(),
		height: b.Dy(),
		filter: filter,
	}, nil
}

// SetTextureFilter changes how tex is sampled. Pending quads that use tex are
// flushed first so they keep the filter they were drawn with.
func (r *Renderer) SetTextureFilter(tex *Texture, filter TextureFilter) {
	r.requireInit("SetTextureFilter")
	if tex == nil || tex.released || tex.filter == filter {
		return
	}
	if _, ok := r.slots.find(tex); ok {
		r.flush(FlushExplicit)
	}
	r.backend.SetTextureFilter(tex.id, filter)
	tex.filter = filter
}

// DestroyTexture releases the GPU side of tex. Destroying a texture twice is
// a no-op. The built-in white texture can only be destroyed by Shutdown.
func (r *Renderer) DestroyTexture(tex *Texture) {
	if tex == nil || tex.released {
		return
	}
	r.requireInit("DestroyTexture")
	if tex == r.white {
		utils.Warn("Refusing to destroy the default white texture")
		return
	}
	if _, ok := r.slots.find(tex); ok {
		r.flush(FlushExplicit)
	}
	r.backend.DestroyTexture(tex.id)
	tex.released = true
	utils.Debug("Destroyed texture %s", tex.name)
}
