package engine2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotTable(t *testing.T) {
	white := &Texture{name: "white"}
	table := newSlotTable(white)

	slot, ok := table.find(white)
	assert.True(t, ok)
	assert.Zero(t, slot)

	textures := make([]*Texture, MaxTextureSlots-1)
	for i := range textures {
		textures[i] = &Texture{name: "t"}
		assert.Equal(t, i+1, table.add(textures[i]))
	}
	assert.True(t, table.full())
	assert.Equal(t, MaxTextureSlots, table.len())

	// identity, not equality
	_, ok = table.find(&Texture{name: "t"})
	assert.False(t, ok)
	slot, ok = table.find(textures[4])
	assert.True(t, ok)
	assert.Equal(t, 5, slot)

	assert.Panics(t, func() { table.add(&Texture{}) })

	table.reset()
	assert.Equal(t, 1, table.len())
	assert.Same(t, white, table.at(0))
	_, ok = table.find(textures[0])
	assert.False(t, ok)
}

func TestBatchCounts(t *testing.T) {
	b := newBatch(2)
	assert.Equal(t, 2, b.capacity())
	assert.True(t, b.empty())

	for q := 0; q < 2; q++ {
		assert.True(t, b.fits(VerticesPerQuad))
		for i := 0; i < VerticesPerQuad; i++ {
			b.push(Vertex{})
		}
		b.commitQuad()
		assert.Equal(t, b.vertexCount/VerticesPerQuad*IndicesPerQuad, b.indexCount)
	}

	assert.False(t, b.fits(VerticesPerQuad))
	assert.Len(t, b.used(), 8)
	assert.Equal(t, 2, b.quads())
	assert.Panics(t, func() { b.push(Vertex{}) })

	b.reset()
	assert.True(t, b.empty())
	assert.Empty(t, b.used())
}

func TestBatchDetectsPartialQuad(t *testing.T) {
	b := newBatch(1)
	b.push(Vertex{})
	assert.Panics(t, b.commitQuad)
}

func TestQuadTransformIdentity(t *testing.T) {
	xf := quadTransform(Vec2{}, Vec2{X: 1, Y: 1}, 0, Vec2{})
	for _, p := range quadPositions {
		assert.Equal(t, p, xf.apply(p))
	}
}

func TestQuadTransformOrder(t *testing.T) {
	xf := quadTransform(Vec2{X: 100, Y: 50}, Vec2{X: 10, Y: 10}, 90, Vec2{X: 5, Y: 0})
	got := xf.apply(Vec2{X: 0.5, Y: 0})

	// (0.5,0) -> unpivot (-4.5,0) -> scale (-45,0) -> rotate (0,-45) -> pivot (5,-45) -> position
	assert.InDelta(t, 105, got.X, 1e-4)
	assert.InDelta(t, 5, got.Y, 1e-4)
}

func TestOrthoScreenProjection(t *testing.T) {
	m := ScreenProjection(200, 100)

	assert.Equal(t, Vec2{X: -1, Y: 1}, m.Project(Vec2{}))
	p := m.Project(Vec2{X: 200, Y: 100})
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, -1, p.Y, 1e-6)
	assert.Equal(t, float32(-1), m[10])
}
