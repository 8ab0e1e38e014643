package scene

// World is what scenes and systems see of entity storage: entities can be
// created, destroyed and queried, and components reached through the
// generic helpers below. The storage itself stays private.
type World interface {
	CreateEntity() Entity
	DestroyEntity(e Entity)
	Alive(e Entity) bool
	registry() *Registry
}

// Add sets the T component of e and returns a pointer to the stored value.
// Adding to a dead entity is fatal.
func Add[T any](w World, e Entity, component T) *T {
	r := w.registry()
	mustBeAlive(r, e, "Add")
	return storeOf[T](r).set(e.ID, component)
}

// Get returns the T component of e.
func Get[T any](w World, e Entity) (*T, bool) {
	r := w.registry()
	if !r.Alive(e) {
		return nil, false
	}
	return storeOf[T](r).get(e.ID)
}

func Has[T any](w World, e Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}

func Remove[T any](w World, e Entity) {
	r := w.registry()
	if !r.Alive(e) {
		return
	}
	storeOf[T](r).remove(e.ID)
}

// Each1 calls fn for every entity with an A component, in the order the
// components were added. fn must not add or remove A components.
func Each1[A any](w World, fn func(Entity, *A)) {
	r := w.registry()
	s := storeOf[A](r)
	for i, id := range s.ids {
		fn(Entity{ID: id, Gen: r.gens[id]}, s.items[i])
	}
}

// Each2 calls fn for every entity that has both an A and a B component,
// in A's insertion order.
func Each2[A, B any](w World, fn func(Entity, *A, *B)) {
	r := w.registry()
	sa, sb := storeOf[A](r), storeOf[B](r)
	for i, id := range sa.ids {
		b, ok := sb.get(id)
		if !ok {
			continue
		}
		fn(Entity{ID: id, Gen: r.gens[id]}, sa.items[i], b)
	}
}

// Count returns how many entities have a T component.
func Count[T any](w World) int {
	return len(storeOf[T](w.registry()).ids)
}
