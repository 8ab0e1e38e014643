// Package rlgl implements engine2D.Backend on raylib's rlgl layer.
//
// raylib owns the GL context, the shader and the GPU vertex buffers, so a
// flush is replayed into rlgl's own batch with immediate-mode calls and then
// drawn with DrawRenderBatchActive. rlgl still sees one submission per
// renderer flush.
package rlgl

import (
	"errors"
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nova2d/internal/engine2D"
	"nova2d/internal/utils"
)

type slotEntry struct {
	generation uint32
	texture    rl.Texture2D
	live       bool
}

type Backend struct {
	initialized   bool
	textures      []slotEntry
	free          []uint32
	bound         [engine2D.MaxTextureSlots]rl.Texture2D
	vertices      []engine2D.Vertex
	maxVertices   int
	multisampling bool
	errs          []error
}

var _ engine2D.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Init(maxQuads int, indices []uint32) error {
	if !rl.IsWindowReady() {
		return errors.New("raylib window is not open")
	}
	if len(indices) != maxQuads*engine2D.IndicesPerQuad {
		return fmt.Errorf("index buffer has %d indices, want %d", len(indices), maxQuads*engine2D.IndicesPerQuad)
	}
	// rlgl draws quads from its own index pattern, which matches ours.
	b.maxVertices = maxQuads * engine2D.VerticesPerQuad
	b.initialized = true
	rl.DisableBackfaceCulling()
	utils.Debug("rlgl backend ready: %d vertices per batch", b.maxVertices)
	return nil
}

func (b *Backend) Shutdown() error {
	if !b.initialized {
		return nil
	}
	for i := range b.textures {
		if b.textures[i].live {
			utils.Warn("rlgl: texture %d still alive at shutdown", b.textures[i].texture.ID)
			rl.UnloadTexture(b.textures[i].texture)
			b.textures[i].live = false
		}
	}
	b.vertices = nil
	b.initialized = false
	return nil
}

func (b *Backend) CreateTexture(img *image.RGBA, filter engine2D.TextureFilter) (engine2D.TextureID, error) {
	if !b.initialized {
		return engine2D.TextureID{}, errors.New("rlgl backend not initialized")
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if tex.ID == 0 {
		return engine2D.TextureID{}, fmt.Errorf("raylib failed to upload %dx%d texture", img.Bounds().Dx(), img.Bounds().Dy())
	}
	rl.SetTextureFilter(tex, rlFilter(filter))

	var index uint32
	if n := len(b.free); n > 0 {
		index = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		index = uint32(len(b.textures))
		b.textures = append(b.textures, slotEntry{})
	}
	e := &b.textures[index]
	e.generation++
	e.texture = tex
	e.live = true
	return engine2D.TextureID{Index: index, Generation: e.generation}, nil
}

func (b *Backend) SetTextureFilter(id engine2D.TextureID, filter engine2D.TextureFilter) {
	e, err := b.lookup(id)
	if err != nil {
		b.fail(err)
		return
	}
	rl.SetTextureFilter(e.texture, rlFilter(filter))
}

func (b *Backend) DestroyTexture(id engine2D.TextureID) {
	e, err := b.lookup(id)
	if err != nil {
		b.fail(err)
		return
	}
	rl.UnloadTexture(e.texture)
	e.live = false
	e.texture = rl.Texture2D{}
	b.free = append(b.free, id.Index)
}

func (b *Backend) SetProjection(m engine2D.Mat4) {
	rl.DrawRenderBatchActive()
	rl.SetMatrixProjection(rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	})
}

func (b *Backend) SetViewport(x, y, width, height int) {
	rl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// SetMultisampling only records the request: raylib fixes MSAA when the
// window is created (FlagMsaa4xHint).
func (b *Backend) SetMultisampling(enabled bool) {
	if enabled && !rl.IsWindowState(rl.FlagMsaa4xHint) {
		utils.Debug("rlgl: multisampling requested without FlagMsaa4xHint on the window")
	}
	b.multisampling = enabled
}

func (b *Backend) Clear(c [4]float32) {
	rl.ClearBackground(rl.NewColor(
		uint8(c[0]*255),
		uint8(c[1]*255),
		uint8(c[2]*255),
		uint8(c[3]*255),
	))
}

func (b *Backend) BindTexture(slot int, id engine2D.TextureID) {
	if slot < 0 || slot >= engine2D.MaxTextureSlots {
		b.fail(fmt.Errorf("texture slot %d out of range", slot))
		return
	}
	e, err := b.lookup(id)
	if err != nil {
		b.fail(fmt.Errorf("bind slot %d: %w", slot, err))
		return
	}
	b.bound[slot] = e.texture
}

func (b *Backend) UploadVertices(vertices []engine2D.Vertex) {
	if len(vertices) > b.maxVertices {
		b.fail(fmt.Errorf("upload of %d vertices exceeds buffer of %d", len(vertices), b.maxVertices))
		return
	}
	b.vertices = vertices
}

func (b *Backend) DrawIndexed(indexCount int) {
	quads := indexCount / engine2D.IndicesPerQuad
	if quads*engine2D.VerticesPerQuad > len(b.vertices) {
		b.fail(fmt.Errorf("draw of %d indices with %d vertices uploaded", indexCount, len(b.vertices)))
		return
	}

	for q := 0; q < quads; q++ {
		quad := b.vertices[q*engine2D.VerticesPerQuad : (q+1)*engine2D.VerticesPerQuad]
		rl.SetTexture(b.bound[int(quad[0].TexSlot)].ID)
		rl.Begin(rl.Quads)
		for _, v := range quad {
			rl.Color4f(v.Color[0], v.Color[1], v.Color[2], v.Color[3])
			rl.TexCoord2f(v.TexCoord.X, v.TexCoord.Y)
			rl.Vertex2f(v.Position.X, v.Position.Y)
		}
		rl.End()
	}
	rl.SetTexture(0)
	rl.DrawRenderBatchActive()
	b.vertices = nil
}

func (b *Backend) CheckError() error {
	if len(b.errs) == 0 {
		return nil
	}
	err := errors.Join(b.errs...)
	b.errs = nil
	return err
}

func (b *Backend) lookup(id engine2D.TextureID) (*slotEntry, error) {
	if int(id.Index) >= len(b.textures) {
		return nil, fmt.Errorf("unknown texture %d:%d", id.Index, id.Generation)
	}
	e := &b.textures[id.Index]
	if !e.live || e.generation != id.Generation {
		return nil, fmt.Errorf("stale texture %d:%d", id.Index, id.Generation)
	}
	return e, nil
}

func (b *Backend) fail(err error) {
	b.errs = append(b.errs, err)
}

func rlFilter(f engine2D.TextureFilter) rl.TextureFilterMode {
	if f == engine2D.FilterNearest {
		return rl.FilterPoint
	}
	return rl.FilterBilinear
}
