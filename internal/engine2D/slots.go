package engine2D

import "nova2d/internal/utils"

// MaxTextureSlots is the number of texture units the batch shader samples from.
const MaxTextureSlots = 16

// slotTable maps the textures of the current batch to sampler slots.
// Slot 0 always holds the white texture.
type slotTable struct {
	textures [MaxTextureSlots]*Texture
	count    int
}

func newSlotTable(white *Texture) slotTable {
	t := slotTable{count: 1}
	t.textures[0] = white
	return t
}

// find scans the occupied slots for tex by identity.
func (t *slotTable) find(tex *Texture) (int, bool) {
	for i := 0; i < t.count; i++ {
		if t.textures[i] == tex {
			return i, true
		}
	}
	return 0, false
}

func (t *slotTable) full() bool {
	return t.count == MaxTextureSlots
}

func (t *slotTable) add(tex *Texture) int {
	if t.full() {
		utils.Fatal("Texture slot table overflow (%d slots)", MaxTextureSlots)
	}
	slot := t.count
	t.textures[slot] = tex
	t.count++
	return slot
}

func (t *slotTable) at(slot int) *Texture {
	return t.textures[slot]
}

func (t *slotTable) len() int {
	return t.count
}

// reset truncates the table back to the white texture.
func (t *slotTable) reset() {
	for i := 1; i < t.count; i++ {
		t.textures[i] = nil
	}
	t.count = 1
}
