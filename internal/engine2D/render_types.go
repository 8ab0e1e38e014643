package engine2D

// DefaultMaxQuads is the batch capacity used when Config.MaxQuads is zero.
const DefaultMaxQuads = 16000

type Config struct {
	// MaxQuads is the number of quads one draw call can carry.
	MaxQuads int
}

// FlushReason records what caused a batch to be submitted.
type FlushReason int

const (
	FlushCapacity FlushReason = iota
	FlushTextureSlots
	FlushEndFrame
	FlushExplicit
	flushReasonCount
)

func (f FlushReason) String() string {
	switch f {
	case FlushCapacity:
		return "capacity"
	case FlushTextureSlots:
		return "texture-slots"
	case FlushEndFrame:
		return "end-frame"
	case FlushExplicit:
		return "explicit"
	}
	return "unknown"
}

// Renderer batches quads into as few draw calls as the texture slot and
// vertex capacity limits allow. A Renderer belongs to the goroutine running
// the frame loop; none of its methods are safe for concurrent use.
type Renderer struct {
	backend  Backend
	maxQuads int

	initialized bool
	batch       *batch
	slots       slotTable
	white       *Texture

	projection     Mat4
	viewportWidth  int
	viewportHeight int
	multisampling  bool

	stats  Stats
	warned map[string]struct{}
}
