package engine2D

import "nova2d/internal/utils"

// batch accumulates quads between flushes. The vertex slice is allocated once
// at full capacity and reused.
type batch struct {
	vertices    []Vertex
	vertexCount int
	indexCount  int
}

func newBatch(maxQuads int) *batch {
	return &batch{vertices: make([]Vertex, maxQuads*VerticesPerQuad)}
}

func (b *batch) capacity() int {
	return len(b.vertices) / VerticesPerQuad
}

// fits reports whether n more vertices can be appended.
func (b *batch) fits(n int) bool {
	return b.vertexCount+n <= len(b.vertices)
}

func (b *batch) push(v Vertex) {
	if b.vertexCount >= len(b.vertices) {
		utils.Fatal("Batch overflow: %d vertices, capacity %d", b.vertexCount+1, len(b.vertices))
	}
	b.vertices[b.vertexCount] = v
	b.vertexCount++
}

// commitQuad closes the four vertices just pushed.
func (b *batch) commitQuad() {
	b.indexCount += IndicesPerQuad
	if b.vertexCount%VerticesPerQuad != 0 || b.indexCount != b.vertexCount/VerticesPerQuad*IndicesPerQuad {
		utils.Fatal("Batch out of sync: %d vertices, %d indices", b.vertexCount, b.indexCount)
	}
}

// used returns the part of the vertex buffer holding this batch.
func (b *batch) used() []Vertex {
	return b.vertices[:b.vertexCount]
}

func (b *batch) quads() int {
	return b.vertexCount / VerticesPerQuad
}

func (b *batch) empty() bool {
	return b.indexCount == 0
}

func (b *batch) reset() {
	b.vertexCount = 0
	b.indexCount = 0
}
