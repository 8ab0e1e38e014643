package engine2D

import "image"

// TextureID is a backend texture handle. Generation changes every time an
// index is reused, so a handle kept after DestroyTexture never matches the
// texture that later takes its index.
type TextureID struct {
	Index      uint32
	Generation uint32
}

func (id TextureID) Valid() bool {
	return id.Generation != 0
}

type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// Backend is the GPU-facing side of the renderer. All calls come from the
// frame-loop goroutine. Errors from fire-and-forget calls are collected and
// reported by CheckError, which the renderer polls after risky operations.
type Backend interface {
	// Init creates the vertex buffer for maxQuads quads, uploads the static
	// index buffer and prepares the shared shader.
	Init(maxQuads int, indices []uint32) error
	Shutdown() error

	CreateTexture(img *image.RGBA, filter TextureFilter) (TextureID, error)
	SetTextureFilter(id TextureID, filter TextureFilter)
	DestroyTexture(id TextureID)

	SetProjection(m Mat4)
	SetViewport(x, y, width, height int)
	SetMultisampling(enabled bool)
	Clear(color [4]float32)

	BindTexture(slot int, id TextureID)
	// UploadVertices receives only the used part of the batch.
	UploadVertices(vertices []Vertex)
	DrawIndexed(indexCount int)

	CheckError() error
}
