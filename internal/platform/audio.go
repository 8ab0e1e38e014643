package platform

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nova2d/internal/audio"
)

// AudioDevice is raylib's miniaudio device.
type AudioDevice struct{}

var _ audio.Device = (*AudioDevice)(nil)

func (d *AudioDevice) Open() error {
	if !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
	}
	if !rl.IsAudioDeviceReady() {
		return errors.New("audio device not ready")
	}
	return nil
}

func (d *AudioDevice) Close() {
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}

func (d *AudioDevice) SetMasterVolume(volume float32) {
	rl.SetMasterVolume(volume)
}

func (d *AudioDevice) LoadSound(path string) (audio.Sound, error) {
	s := rl.LoadSound(path)
	if s.Stream.Buffer == nil {
		return nil, fmt.Errorf("raylib could not load %s", path)
	}
	return &sound{s: s}, nil
}

func (d *AudioDevice) LoadMusic(path string) (audio.Music, error) {
	m := rl.LoadMusicStream(path)
	if m.Stream.Buffer == nil {
		return nil, fmt.Errorf("raylib could not load %s", path)
	}
	return &music{m: m}, nil
}

type sound struct {
	s rl.Sound
}

func (s *sound) Play()                    { rl.PlaySound(s.s) }
func (s *sound) Stop()                    { rl.StopSound(s.s) }
func (s *sound) SetVolume(volume float32) { rl.SetSoundVolume(s.s, volume) }
func (s *sound) Playing() bool            { return rl.IsSoundPlaying(s.s) }
func (s *sound) Unload()                  { rl.UnloadSound(s.s) }

type music struct {
	m rl.Music
}

func (m *music) Play()                    { rl.PlayMusicStream(m.m) }
func (m *music) Stop()                    { rl.StopMusicStream(m.m) }
func (m *music) Pause()                   { rl.PauseMusicStream(m.m) }
func (m *music) Resume()                  { rl.ResumeMusicStream(m.m) }
func (m *music) SetVolume(volume float32) { rl.SetMusicVolume(m.m, volume) }
func (m *music) SetLooping(loop bool)     { m.m.Looping = loop }
func (m *music) Update()                  { rl.UpdateMusicStream(m.m) }
func (m *music) Playing() bool            { return rl.IsMusicStreamPlaying(m.m) }
func (m *music) Unload()                  { rl.UnloadMusicStream(m.m) }
