package engine2D

import (
	"image"
	"image/color"

	"nova2d/internal/utils"
)

// NewRenderer creates a renderer on top of backend. Nothing touches the
// backend until Init.
func NewRenderer(backend Backend, cfg Config) *Renderer {
	utils.Assert(backend != nil, "NewRenderer: nil backend")
	maxQuads := cfg.MaxQuads
	if maxQuads == 0 {
		maxQuads = DefaultMaxQuads
	}
	utils.Assert(maxQuads > 0, "NewRenderer: invalid MaxQuads %d", maxQuads)

	return &Renderer{
		backend:    backend,
		maxQuads:   maxQuads,
		projection: Identity(),
		warned:     make(map[string]struct{}),
	}
}

// Init creates the GPU buffers and the white texture, then sets the
// projection for the initial viewport. Calling Init again is a no-op.
func (r *Renderer) Init(viewportWidth, viewportHeight int) {
	if r.initialized {
		utils.Warn("Renderer already initialized")
		return
	}

	if err := r.backend.Init(r.maxQuads, QuadIndices(r.maxQuads)); err != nil {
		utils.Fatal("Failed to initialize render backend: %v", err)
	}

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{255, 255, 255, 255})
	tex, err := r.createTexture("white", white, FilterNearest)
	if err != nil {
		utils.Fatal("Failed to create default texture: %v", err)
	}

	r.white = tex
	r.batch = newBatch(r.maxQuads)
	r.slots = newSlotTable(tex)
	r.initialized = true

	r.UpdateProjection(viewportWidth, viewportHeight)
	r.checkBackend("Init")

	utils.Info("Renderer initialized: %d quads per batch, %d texture slots", r.maxQuads, MaxTextureSlots)
}

// Shutdown submits any pending quads, then releases the white texture and
// the GPU buffers.
func (r *Renderer) Shutdown() {
	if !r.initialized {
		return
	}

	// the final flush must run while the buffers and textures still exist
	r.flush(FlushEndFrame)

	r.backend.DestroyTexture(r.white.id)
	r.white.released = true
	if err := r.backend.Shutdown(); err != nil {
		utils.Fatal("Failed to shut down render backend: %v", err)
	}
	r.checkBackend("Shutdown")

	r.white = nil
	r.batch = nil
	r.slots = slotTable{}
	r.initialized = false
	utils.Info("Renderer shut down")
}

func (r *Renderer) Initialized() bool {
	return r.initialized
}

// MaxQuads returns the batch capacity in quads.
func (r *Renderer) MaxQuads() int {
	return r.maxQuads
}

// WhiteTexture returns the built-in 1x1 white texture used for untextured quads.
func (r *Renderer) WhiteTexture() *Texture {
	return r.white
}

// UpdateProjection maps [0,width]x[0,height] (Y down) onto clip space and
// resizes the viewport. It must be called on every resize: the renderer has
// no other way to learn the surface size.
func (r *Renderer) UpdateProjection(width, height int) {
	r.requireInit("UpdateProjection")
	if width <= 0 || height <= 0 {
		utils.Warn("Ignoring projection update to %dx%d", width, height)
		return
	}

	// Quads already batched were laid out for the old projection.
	r.flush(FlushExplicit)

	r.projection = ScreenProjection(width, height)
	r.viewportWidth = width
	r.viewportHeight = height
	r.backend.SetProjection(r.projection)
	r.backend.SetViewport(0, 0, width, height)
	r.checkBackend("UpdateProjection")

	utils.Debug("Projection updated to %dx%d", width, height)
}

func (r *Renderer) Projection() Mat4 {
	return r.projection
}

// Viewport returns the size last passed to UpdateProjection.
func (r *Renderer) Viewport() (width, height int) {
	return r.viewportWidth, r.viewportHeight
}

func (r *Renderer) EnableMultisampling() {
	r.requireInit("EnableMultisampling")
	r.multisampling = true
	r.backend.SetMultisampling(true)
}

func (r *Renderer) DisableMultisampling() {
	r.requireInit("DisableMultisampling")
	r.multisampling = false
	r.backend.SetMultisampling(false)
}

func (r *Renderer) Multisampling() bool {
	return r.multisampling
}

// BeginFrame marks the start of a frame. It currently does nothing.
func (r *Renderer) BeginFrame() {
	r.requireInit("BeginFrame")
}

// EndFrame submits everything drawn since the last flush. It must be the
// last renderer call before the frame is presented.
func (r *Renderer) EndFrame() {
	r.requireInit("EndFrame")
	r.flush(FlushEndFrame)
	r.checkBackend("EndFrame")
}

// Flush submits the pending batch immediately.
func (r *Renderer) Flush() {
	r.requireInit("Flush")
	r.flush(FlushExplicit)
}

// ClearScreen clears the color buffer. Pending quads are not affected.
func (r *Renderer) ClearScreen(c Color) {
	r.requireInit("ClearScreen")
	r.backend.Clear(c.Normalize())
}

// PendingQuads returns the number of quads waiting for the next flush.
func (r *Renderer) PendingQuads() int {
	if r.batch == nil {
		return 0
	}
	return r.batch.quads()
}

// flush runs the two flush phases and resets the batch. An empty batch is a no-op.
func (r *Renderer) flush(reason FlushReason) {
	if r.batch.empty() {
		return
	}

	r.bindSlots()
	r.submit()

	r.stats.record(reason, r.batch.quads())
	r.batch.reset()
	r.slots.reset()
	r.checkBackend("Flush")
}

func (r *Renderer) bindSlots() {
	for slot := 0; slot < r.slots.len(); slot++ {
		r.backend.BindTexture(slot, r.slots.at(slot).id)
	}
}

func (r *Renderer) submit() {
	r.backend.UploadVertices(r.batch.used())
	r.backend.DrawIndexed(r.batch.indexCount)
}

// textureSlot returns the sampler slot for tex, flushing when every slot is taken.
func (r *Renderer) textureSlot(tex *Texture) int {
	if tex == r.white {
		return 0
	}
	if slot, ok := r.slots.find(tex); ok {
		return slot
	}
	if r.slots.full() {
		r.flush(FlushTextureSlots)
	}
	return r.slots.add(tex)
}

// resolveTexture substitutes the white texture for missing or released ones.
func (r *Renderer) resolveTexture(tex *Texture) *Texture {
	switch {
	case tex == nil:
		r.warnOnce("nil", "Drawing with a nil texture, using default texture")
		return r.white
	case tex.released:
		r.warnOnce("released:"+tex.name, "Drawing with released texture %s, using default texture", tex.name)
		return r.white
	}
	return tex
}

func (r *Renderer) warnOnce(key, format string, v ...interface{}) {
	if _, ok := r.warned[key]; ok {
		return
	}
	r.warned[key] = struct{}{}
	utils.Warn(format, v...)
}

func (r *Renderer) requireInit(op string) {
	if !r.initialized {
		utils.Fatal("Renderer.%s called before Init", op)
	}
}

func (r *Renderer) checkBackend(op string) {
	if err := r.backend.CheckError(); err != nil {
		utils.Fatal("Render backend error after %s: %v", op, err)
	}
}
