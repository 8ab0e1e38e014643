// Package recorder provides an engine2D.Backend that keeps every submitted
// batch in memory instead of drawing it. It backs the headless platform and
// the renderer tests.
package recorder

import (
	"errors"
	"fmt"
	"image"

	"nova2d/internal/engine2D"
)

var ErrNotInitialized = errors.New("backend not initialized")

// DrawCall is one indexed draw as the GPU would have seen it.
type DrawCall struct {
	// Bindings holds the texture bound to each slot at draw time.
	Bindings   []engine2D.TextureID
	Vertices   []engine2D.Vertex
	IndexCount int
	Projection engine2D.Mat4
}

// Quads returns the number of quads in the call.
func (d DrawCall) Quads() int {
	return d.IndexCount / engine2D.IndicesPerQuad
}

type texture struct {
	generation uint32
	image      *image.RGBA
	filter     engine2D.TextureFilter
	live       bool
}

type Backend struct {
	Initialized bool
	MaxQuads    int
	Indices     []uint32

	Projection        engine2D.Mat4
	ProjectionUpdates int
	Viewport          [4]int
	Multisampling     bool
	Clears            [][4]float32

	// DrawCalls is only filled when recording; DrawCallCount always counts.
	DrawCalls     []DrawCall
	DrawCallCount int
	UploadedBytes int

	// InitErr, when set, is returned by the next Init.
	InitErr error

	record   bool
	textures []texture
	free     []uint32
	bound    [engine2D.MaxTextureSlots]engine2D.TextureID
	pending  []engine2D.Vertex
	errs     []error
}

var _ engine2D.Backend = (*Backend)(nil)

// New returns a backend that records every draw call.
func New() *Backend {
	return &Backend{record: true, Projection: engine2D.Identity()}
}

// NewCounting returns a backend that only counts draw calls, for long
// headless runs.
func NewCounting() *Backend {
	return &Backend{Projection: engine2D.Identity()}
}

func (b *Backend) Init(maxQuads int, indices []uint32) error {
	if b.InitErr != nil {
		err := b.InitErr
		b.InitErr = nil
		return err
	}
	if len(indices) != maxQuads*engine2D.IndicesPerQuad {
		return fmt.Errorf("index buffer has %d indices, want %d", len(indices), maxQuads*engine2D.IndicesPerQuad)
	}
	b.Initialized = true
	b.MaxQuads = maxQuads
	b.Indices = indices
	return nil
}

func (b *Backend) Shutdown() error {
	if !b.Initialized {
		return ErrNotInitialized
	}
	if n := b.LiveTextures(); n > 0 {
		b.fail(fmt.Errorf("%d textures still alive at shutdown", n))
	}
	b.Initialized = false
	b.Indices = nil
	b.pending = nil
	return nil
}

func (b *Backend) CreateTexture(img *image.RGBA, filter engine2D.TextureFilter) (engine2D.TextureID, error) {
	if !b.Initialized {
		return engine2D.TextureID{}, ErrNotInitialized
	}

	var index uint32
	if n := len(b.free); n > 0 {
		index = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		index = uint32(len(b.textures))
		b.textures = append(b.textures, texture{})
	}

	t := &b.textures[index]
	t.generation++
	t.image = img
	t.filter = filter
	t.live = true
	return engine2D.TextureID{Index: index, Generation: t.generation}, nil
}

func (b *Backend) SetTextureFilter(id engine2D.TextureID, filter engine2D.TextureFilter) {
	t, err := b.lookup(id)
	if err != nil {
		b.fail(err)
		return
	}
	t.filter = filter
}

func (b *Backend) DestroyTexture(id engine2D.TextureID) {
	t, err := b.lookup(id)
	if err != nil {
		b.fail(err)
		return
	}
	t.live = false
	t.image = nil
	b.free = append(b.free, id.Index)
}

func (b *Backend) SetProjection(m engine2D.Mat4) {
	b.Projection = m
	b.ProjectionUpdates++
}

func (b *Backend) SetViewport(x, y, width, height int) {
	b.Viewport = [4]int{x, y, width, height}
}

func (b *Backend) SetMultisampling(enabled bool) {
	b.Multisampling = enabled
}

func (b *Backend) Clear(color [4]float32) {
	if b.record {
		b.Clears = append(b.Clears, color)
	}
}

func (b *Backend) BindTexture(slot int, id engine2D.TextureID) {
	if slot < 0 || slot >= engine2D.MaxTextureSlots {
		b.fail(fmt.Errorf("texture slot %d out of range", slot))
		return
	}
	if _, err := b.lookup(id); err != nil {
		b.fail(fmt.Errorf("bind slot %d: %w", slot, err))
		return
	}
	b.bound[slot] = id
}

func (b *Backend) UploadVertices(vertices []engine2D.Vertex) {
	if len(vertices) > b.MaxQuads*engine2D.VerticesPerQuad {
		b.fail(fmt.Errorf("upload of %d vertices exceeds buffer of %d", len(vertices), b.MaxQuads*engine2D.VerticesPerQuad))
		return
	}
	b.pending = append(b.pending[:0], vertices...)
	b.UploadedBytes += len(vertices) * engine2D.VertexStride
}

func (b *Backend) DrawIndexed(indexCount int) {
	if !b.Initialized {
		b.fail(ErrNotInitialized)
		return
	}
	if indexCount > len(b.pending)/engine2D.VerticesPerQuad*engine2D.IndicesPerQuad {
		b.fail(fmt.Errorf("draw of %d indices with %d vertices uploaded", indexCount, len(b.pending)))
		return
	}

	b.DrawCallCount++
	if !b.record {
		return
	}

	slots := 0
	for _, v := range b.pending {
		if int(v.TexSlot)+1 > slots {
			slots = int(v.TexSlot) + 1
		}
	}
	bindings := make([]engine2D.TextureID, slots)
	copy(bindings, b.bound[:slots])

	b.DrawCalls = append(b.DrawCalls, DrawCall{
		Bindings:   bindings,
		Vertices:   append([]engine2D.Vertex(nil), b.pending...),
		IndexCount: indexCount,
		Projection: b.Projection,
	})
}

// CheckError returns and clears the errors collected since the last call.
func (b *Backend) CheckError() error {
	if len(b.errs) == 0 {
		return nil
	}
	err := errors.Join(b.errs...)
	b.errs = nil
	return err
}

// InjectError makes the next CheckError report err.
func (b *Backend) InjectError(err error) {
	b.fail(err)
}

// Image returns the pixels of a live texture.
func (b *Backend) Image(id engine2D.TextureID) (*image.RGBA, bool) {
	t, err := b.lookup(id)
	if err != nil {
		return nil, false
	}
	return t.image, true
}

// Filter returns the sampling filter of a live texture.
func (b *Backend) Filter(id engine2D.TextureID) (engine2D.TextureFilter, bool) {
	t, err := b.lookup(id)
	if err != nil {
		return 0, false
	}
	return t.filter, true
}

func (b *Backend) LiveTextures() int {
	n := 0
	for _, t := range b.textures {
		if t.live {
			n++
		}
	}
	return n
}

// Reset forgets recorded draw calls and clears but keeps textures.
func (b *Backend) Reset() {
	b.DrawCalls = nil
	b.DrawCallCount = 0
	b.Clears = nil
	b.UploadedBytes = 0
}

func (b *Backend) lookup(id engine2D.TextureID) (*texture, error) {
	if int(id.Index) >= len(b.textures) {
		return nil, fmt.Errorf("unknown texture %d:%d", id.Index, id.Generation)
	}
	t := &b.textures[id.Index]
	if !t.live || t.generation != id.Generation {
		return nil, fmt.Errorf("stale texture %d:%d", id.Index, id.Generation)
	}
	return t, nil
}

func (b *Backend) fail(err error) {
	b.errs = append(b.errs, err)
}
