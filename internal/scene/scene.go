package scene

// Scene is one screen's worth of game logic. Manager calls Start once when
// the scene is started, then Update and Draw every frame while it runs, and
// End when it is stopped.
type Scene interface {
	Start()
	End()
	Update(dt float32)
	Draw()
}

// Base supplies an entity World and easing bookkeeping. Embed it and
// implement Draw; the other Scene methods default to no-ops.
type Base struct {
	world   *Registry
	easings []*Easing
}

func (b *Base) Start()            {}
func (b *Base) End()              {}
func (b *Base) Update(dt float32) {}

// World returns the scene's registry, creating it on first use.
func (b *Base) World() *Registry {
	if b.world == nil {
		b.world = NewRegistry()
	}
	return b.world
}

// AddEasing schedules e; it is stepped before each Update.
func (b *Base) AddEasing(e *Easing) {
	if e == nil {
		return
	}
	b.easings = append(b.easings, e)
}

// ActiveEasings returns the number of easings still running.
func (b *Base) ActiveEasings() int {
	return len(b.easings)
}

// ClearEasings drops pending easings without completing them.
func (b *Base) ClearEasings() {
	clear(b.easings)
	b.easings = b.easings[:0]
}

func (b *Base) processEasings(dt float32) {
	var completed []*Easing
	kept := b.easings[:0]
	for _, e := range b.easings {
		if e.Update(dt) {
			completed = append(completed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(b.easings); i++ {
		b.easings[i] = nil
	}
	b.easings = kept

	// callbacks may add easings
	for _, e := range completed {
		if e.OnComplete != nil {
			e.OnComplete()
		}
	}
}

type easingHost interface {
	processEasings(dt float32)
}
