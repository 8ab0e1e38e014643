package scene

import (
	"nova2d/internal/utils"
)

type entry struct {
	name    string
	scene   Scene
	running bool
	stopped bool
}

// Manager owns the registered scenes and drives the running ones. A scene
// is added stopped. Start moves it to running; Pause and Resume toggle a
// started scene without calling Start or End again; Stop ends it.
type Manager struct {
	scenes []*entry
}

func NewManager() *Manager {
	return &Manager{}
}

// Add registers s under name. Names are unique; a second Add is ignored.
func (m *Manager) Add(name string, s Scene) {
	if s == nil {
		utils.Warn("Scene \"%s\" is nil", name)
		return
	}
	for _, e := range m.scenes {
		if e.name == name {
			utils.Warn("Scene \"%s\" is already registered", name)
			return
		}
	}
	m.scenes = append(m.scenes, &entry{name: name, scene: s, stopped: true})
}

// Remove unregisters name. A running scene is not ended.
func (m *Manager) Remove(name string) {
	for i, e := range m.scenes {
		if e.name == name {
			m.scenes = append(m.scenes[:i], m.scenes[i+1:]...)
			return
		}
	}
	utils.Warn("Scene \"%s\" is not registered", name)
}

func (m *Manager) Start(name string) {
	if e := m.lookup(name); e != nil && !e.running && e.stopped {
		utils.Info("Starting scene \"%s\"", name)
		e.scene.Start()
		e.running = true
		e.stopped = false
	}
}

func (m *Manager) Stop(name string) {
	if e := m.lookup(name); e != nil && e.running && !e.stopped {
		utils.Info("Stopping scene \"%s\"", name)
		e.scene.End()
		e.running = false
		e.stopped = true
	}
}

func (m *Manager) Resume(name string) {
	if e := m.lookup(name); e != nil && !e.running && !e.stopped {
		utils.Info("Resuming scene \"%s\"", name)
		e.running = true
	}
}

func (m *Manager) Pause(name string) {
	if e := m.lookup(name); e != nil && e.running && !e.stopped {
		utils.Info("Pausing scene \"%s\"", name)
		e.running = false
	}
}

// Running reports whether name is registered and currently updating.
func (m *Manager) Running(name string) bool {
	for _, e := range m.scenes {
		if e.name == name {
			return e.running && !e.stopped
		}
	}
	return false
}

func (m *Manager) Len() int {
	return len(m.scenes)
}

// Process steps easings and calls Update on every running scene, then
// calls Draw on every running scene, both in registration order.
func (m *Manager) Process(dt float32) {
	for _, e := range m.active() {
		if h, ok := e.scene.(easingHost); ok {
			h.processEasings(dt)
		}
		e.scene.Update(dt)
	}
	for _, e := range m.active() {
		e.scene.Draw()
	}
}

// Shutdown stops every running or paused scene and forgets all of them.
func (m *Manager) Shutdown() {
	for i := len(m.scenes) - 1; i >= 0; i-- {
		e := m.scenes[i]
		if !e.stopped {
			utils.Info("Stopping scene \"%s\"", e.name)
			e.scene.End()
		}
	}
	m.scenes = nil
}

func (m *Manager) active() []*entry {
	out := make([]*entry, 0, len(m.scenes))
	for _, e := range m.scenes {
		if e.running && !e.stopped {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) lookup(name string) *entry {
	for _, e := range m.scenes {
		if e.name == name {
			return e
		}
	}
	utils.Warn("Scene \"%s\" is not registered", name)
	return nil
}
