package engine2D

const (
	VerticesPerQuad = 4
	IndicesPerQuad  = 6

	// VertexStride is the size in bytes of one Vertex as uploaded to the GPU:
	// position(2) + texcoord(2) + color(4) + slot(1) floats.
	VertexStride = (2 + 2 + 4 + 1) * 4
)

// Vertex is one corner of a batched quad.
type Vertex struct {
	Position Vec2
	TexCoord Vec2
	Color    [4]float32
	TexSlot  float32
}

// Unit quad template, ordered bottom-left, bottom-right, top-right, top-left.
var (
	quadPositions = [VerticesPerQuad]Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
	}

	quadTexCoords = [VerticesPerQuad]Vec2{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
	}

	quadIndexPattern = [IndicesPerQuad]uint32{0, 1, 2, 2, 3, 0}
)

// QuadIndices builds the static index buffer for maxQuads quads.
func QuadIndices(maxQuads int) []uint32 {
	indices := make([]uint32, maxQuads*IndicesPerQuad)
	offset := uint32(0)
	for q := 0; q < maxQuads; q++ {
		for i, idx := range quadIndexPattern {
			indices[q*IndicesPerQuad+i] = offset + idx
		}
		offset += VerticesPerQuad
	}
	return indices
}
