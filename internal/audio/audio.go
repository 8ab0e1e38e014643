package audio

import (
	"fmt"

	"nova2d/internal/utils"
)

// Sound is a short clip loaded fully into memory.
type Sound interface {
	Play()
	Stop()
	SetVolume(volume float32)
	Playing() bool
	Unload()
}

// Music is streamed; Update must be called every frame while it plays.
type Music interface {
	Play()
	Stop()
	Pause()
	Resume()
	SetVolume(volume float32)
	SetLooping(loop bool)
	Update()
	Playing() bool
	Unload()
}

// Device is the audio backend.
type Device interface {
	Open() error
	Close()
	SetMasterVolume(volume float32)
	LoadSound(path string) (Sound, error)
	LoadMusic(path string) (Music, error)
}

type Config struct {
	Enabled      bool
	MasterVolume float32
}

type track struct {
	music   Music
	active  bool
	looping bool
}

// Manager keeps named sounds and music streams. When disabled every call
// is a silent no-op, so callers need no checks of their own.
type Manager struct {
	device Device
	config Config
	open   bool
	sounds map[string]Sound
	tracks map[string]*track
	order  []string
}

func NewManager(device Device, cfg Config) *Manager {
	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 {
		utils.Warn("Master volume %.2f out of range, clamping", cfg.MasterVolume)
		cfg.MasterVolume = clamp01(cfg.MasterVolume)
	}
	return &Manager{
		device: device,
		config: cfg,
		sounds: make(map[string]Sound),
		tracks: make(map[string]*track),
	}
}

// Open starts the audio device.
func (m *Manager) Open() error {
	if !m.config.Enabled || m.device == nil {
		utils.Info("Audio disabled")
		return nil
	}
	if m.open {
		return nil
	}
	if err := m.device.Open(); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	m.open = true
	m.device.SetMasterVolume(m.config.MasterVolume)
	utils.Info("Audio device opened (volume %.2f)", m.config.MasterVolume)
	return nil
}

func (m *Manager) Enabled() bool {
	return m.open
}

func (m *Manager) LoadSound(name, path string) error {
	if !m.open {
		return nil
	}
	if _, ok := m.sounds[name]; ok {
		utils.Warn("Sound %s already loaded", name)
		return nil
	}
	s, err := m.device.LoadSound(path)
	if err != nil {
		return fmt.Errorf("load sound %s: %w", path, err)
	}
	m.sounds[name] = s
	utils.Debug("Loaded sound %s from %s", name, path)
	return nil
}

func (m *Manager) LoadMusic(name, path string) error {
	if !m.open {
		return nil
	}
	if _, ok := m.tracks[name]; ok {
		utils.Warn("Music %s already loaded", name)
		return nil
	}
	mu, err := m.device.LoadMusic(path)
	if err != nil {
		return fmt.Errorf("load music %s: %w", path, err)
	}
	m.tracks[name] = &track{music: mu}
	m.order = append(m.order, name)
	utils.Debug("Loaded music %s from %s", name, path)
	return nil
}

func (m *Manager) PlaySound(name string) {
	if !m.open {
		return
	}
	s, ok := m.sounds[name]
	if !ok {
		utils.Warn("Sound %s does not exist!", name)
		return
	}
	s.Play()
}

func (m *Manager) SetSoundVolume(name string, volume float32) {
	if s, ok := m.sounds[name]; ok {
		s.SetVolume(clamp01(volume))
	}
}

// PlayMusic starts name from the beginning.
func (m *Manager) PlayMusic(name string, loop bool, volume float32) {
	if !m.open {
		return
	}
	t, ok := m.tracks[name]
	if !ok {
		utils.Warn("Music %s does not exist!", name)
		return
	}
	t.looping = loop
	t.music.SetLooping(loop)
	t.music.SetVolume(clamp01(volume))
	t.music.Play()
	t.active = true
	utils.Info("Playing %s (Vol: %.2f)", name, volume)
}

func (m *Manager) StopMusic(name string) {
	if t, ok := m.tracks[name]; ok && t.active {
		t.music.Stop()
		t.active = false
	}
}

func (m *Manager) PauseMusic(name string) {
	if t, ok := m.tracks[name]; ok && t.active {
		t.music.Pause()
	}
}

func (m *Manager) ResumeMusic(name string) {
	if t, ok := m.tracks[name]; ok && t.active {
		t.music.Resume()
	}
}

// Update feeds every active music stream. Non-looping streams that ran
// out are marked inactive.
func (m *Manager) Update() {
	for _, name := range m.order {
		t := m.tracks[name]
		if !t.active {
			continue
		}
		t.music.Update()
		if !t.looping && !t.music.Playing() {
			t.active = false
		}
	}
}

func (m *Manager) MusicPlaying(name string) bool {
	t, ok := m.tracks[name]
	return ok && t.active
}

func (m *Manager) SetMasterVolume(volume float32) {
	m.config.MasterVolume = clamp01(volume)
	if m.open {
		m.device.SetMasterVolume(m.config.MasterVolume)
	}
}

// Close stops and unloads everything, then closes the device.
func (m *Manager) Close() {
	if !m.open {
		return
	}
	for _, name := range m.order {
		t := m.tracks[name]
		if t.active {
			t.music.Stop()
		}
		t.music.Unload()
	}
	for _, s := range m.sounds {
		s.Unload()
	}
	m.tracks = make(map[string]*track)
	m.sounds = make(map[string]Sound)
	m.order = nil
	m.device.Close()
	m.open = false
	utils.Info("Audio device closed")
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
