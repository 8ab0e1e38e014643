package scene

import (
	"reflect"

	"nova2d/internal/utils"
)

// Entity is a handle into a Registry. Gen changes every time an ID is
// recycled, so handles to destroyed entities never match a live one.
type Entity struct {
	ID  uint32
	Gen uint32
}

// Null is the zero Entity; it is never alive.
var Null Entity

func (e Entity) Valid() bool {
	return e.Gen != 0
}

type storage interface {
	remove(id uint32)
}

// componentStore keeps components of one type in insertion order so
// iteration, and therefore draw order, is stable across frames.
type componentStore[T any] struct {
	index map[uint32]int
	ids   []uint32
	items []*T
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{index: make(map[uint32]int)}
}

func (s *componentStore[T]) set(id uint32, c T) *T {
	if i, ok := s.index[id]; ok {
		*s.items[i] = c
		return s.items[i]
	}
	p := &c
	s.index[id] = len(s.items)
	s.ids = append(s.ids, id)
	s.items = append(s.items, p)
	return p
}

func (s *componentStore[T]) get(id uint32) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

func (s *componentStore[T]) remove(id uint32) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	copy(s.ids[i:], s.ids[i+1:])
	copy(s.items[i:], s.items[i+1:])
	s.ids = s.ids[:len(s.ids)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

// Registry stores entities and their components.
type Registry struct {
	gens     []uint32
	alive    []bool
	free     []uint32
	count    int
	storages map[reflect.Type]storage
}

var _ World = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{storages: make(map[reflect.Type]storage)}
}

func (r *Registry) CreateEntity() Entity {
	var id uint32
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		id = uint32(len(r.gens))
		r.gens = append(r.gens, 0)
		r.alive = append(r.alive, false)
	}
	r.gens[id]++
	r.alive[id] = true
	r.count++
	return Entity{ID: id, Gen: r.gens[id]}
}

// DestroyEntity removes e and all its components. Destroying a dead
// entity is a no-op.
func (r *Registry) DestroyEntity(e Entity) {
	if !r.Alive(e) {
		return
	}
	for _, s := range r.storages {
		s.remove(e.ID)
	}
	r.alive[e.ID] = false
	r.free = append(r.free, e.ID)
	r.count--
}

func (r *Registry) Alive(e Entity) bool {
	return e.Valid() && int(e.ID) < len(r.gens) && r.alive[e.ID] && r.gens[e.ID] == e.Gen
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.count
}

// Clear destroys every entity.
func (r *Registry) Clear() {
	for id := range r.alive {
		if r.alive[id] {
			r.DestroyEntity(Entity{ID: uint32(id), Gen: r.gens[id]})
		}
	}
}

func (r *Registry) registry() *Registry {
	return r
}

func storeOf[T any](r *Registry) *componentStore[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := r.storages[t]; ok {
		return s.(*componentStore[T])
	}
	s := newComponentStore[T]()
	r.storages[t] = s
	return s
}

func mustBeAlive(r *Registry, e Entity, op string) {
	utils.Assert(r.Alive(e), "%s on dead entity %d:%d", op, e.ID, e.Gen)
}
