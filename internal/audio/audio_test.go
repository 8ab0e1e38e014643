package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/asset"
)

var _ asset.AudioLoader = (*Manager)(nil)

type fakeSound struct {
	plays    int
	volume   float32
	unloaded bool
}

func (s *fakeSound) Play()               { s.plays++ }
func (s *fakeSound) Stop()               {}
func (s *fakeSound) SetVolume(v float32) { s.volume = v }
func (s *fakeSound) Playing() bool       { return s.plays > 0 }
func (s *fakeSound) Unload()             { s.unloaded = true }

type fakeMusic struct {
	playing  bool
	looping  bool
	volume   float32
	updates  int
	unloaded bool
	// length in updates before a non-looping stream ends
	length int
}

func (m *fakeMusic) Play()               { m.playing = true; m.updates = 0 }
func (m *fakeMusic) Stop()               { m.playing = false }
func (m *fakeMusic) Pause()              { m.playing = false }
func (m *fakeMusic) Resume()             { m.playing = true }
func (m *fakeMusic) SetVolume(v float32) { m.volume = v }
func (m *fakeMusic) SetLooping(l bool)   { m.looping = l }
func (m *fakeMusic) Playing() bool       { return m.playing }
func (m *fakeMusic) Unload()             { m.unloaded = true }
func (m *fakeMusic) Update() {
	m.updates++
	if !m.looping && m.length > 0 && m.updates >= m.length {
		m.playing = false
	}
}

type fakeDevice struct {
	opened  bool
	closed  bool
	volume  float32
	openErr error
	sounds  map[string]*fakeSound
	music   map[string]*fakeMusic
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{sounds: map[string]*fakeSound{}, music: map[string]*fakeMusic{}}
}

func (d *fakeDevice) Open() error {
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	return nil
}

func (d *fakeDevice) Close()                    { d.closed = true }
func (d *fakeDevice) SetMasterVolume(v float32) { d.volume = v }

func (d *fakeDevice) LoadSound(path string) (Sound, error) {
	if path == "missing.wav" {
		return nil, errors.New("no such file")
	}
	s := &fakeSound{}
	d.sounds[path] = s
	return s, nil
}

func (d *fakeDevice) LoadMusic(path string) (Music, error) {
	m := &fakeMusic{length: 3}
	d.music[path] = m
	return m, nil
}

func TestDisabledManagerIsSilent(t *testing.T) {
	dev := newFakeDevice()
	m := NewManager(dev, Config{Enabled: false, MasterVolume: 1})

	require.NoError(t, m.Open())
	require.NoError(t, m.LoadSound("jump", "jump.wav"))
	m.PlaySound("jump")
	m.Update()
	m.Close()

	assert.False(t, dev.opened)
	assert.Empty(t, dev.sounds)
	assert.False(t, m.Enabled())
}

func TestOpenFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.openErr = errors.New("no device")
	m := NewManager(dev, Config{Enabled: true})

	assert.ErrorContains(t, m.Open(), "no device")
	assert.False(t, m.Enabled())
}

func TestSounds(t *testing.T) {
	dev := newFakeDevice()
	m := NewManager(dev, Config{Enabled: true, MasterVolume: 2})
	require.NoError(t, m.Open())
	assert.Equal(t, float32(1), dev.volume)

	require.NoError(t, m.LoadSound("jump", "jump.wav"))
	require.NoError(t, m.LoadSound("jump", "other.wav"))
	assert.Error(t, m.LoadSound("boom", "missing.wav"))

	m.PlaySound("jump")
	m.PlaySound("boom")
	m.SetSoundVolume("jump", 0.5)
	s := dev.sounds["jump.wav"]
	assert.Equal(t, 1, s.plays)
	assert.Equal(t, float32(0.5), s.volume)
	assert.NotContains(t, dev.sounds, "other.wav")

	m.Close()
	assert.True(t, s.unloaded)
	assert.True(t, dev.closed)
}

func TestMusicStreams(t *testing.T) {
	dev := newFakeDevice()
	m := NewManager(dev, Config{Enabled: true, MasterVolume: 0.8})
	require.NoError(t, m.Open())
	require.NoError(t, m.LoadMusic("theme", "theme.ogg"))
	require.NoError(t, m.LoadMusic("jingle", "jingle.ogg"))

	m.PlayMusic("theme", true, 0.5)
	m.PlayMusic("jingle", false, 3)
	m.PlayMusic("nope", true, 1)

	theme, jingle := dev.music["theme.ogg"], dev.music["jingle.ogg"]
	assert.Equal(t, float32(1), jingle.volume)

	for i := 0; i < 5; i++ {
		m.Update()
	}
	assert.True(t, m.MusicPlaying("theme"))
	assert.False(t, m.MusicPlaying("jingle"), "finished non-looping stream")
	assert.Equal(t, 5, theme.updates)
	assert.Equal(t, 3, jingle.updates)

	m.PauseMusic("theme")
	assert.False(t, theme.playing)
	m.ResumeMusic("theme")
	assert.True(t, theme.playing)
	m.StopMusic("theme")
	assert.False(t, m.MusicPlaying("theme"))

	m.SetMasterVolume(0.25)
	assert.Equal(t, float32(0.25), dev.volume)

	m.Close()
	assert.True(t, theme.unloaded)
	assert.True(t, jingle.unloaded)
}
