package asset

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/convert"
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/recorder"
)

type fakeAudio struct {
	sounds []string
	music  []string
}

func (f *fakeAudio) LoadSound(name, path string) error {
	f.sounds = append(f.sounds, name)
	return nil
}

func (f *fakeAudio) LoadMusic(name, path string) error {
	f.music = append(f.music, name)
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newRenderer(t *testing.T) (*engine2D.Renderer, *recorder.Backend) {
	t.Helper()
	rec := recorder.New()
	r := engine2D.NewRenderer(rec, engine2D.Config{MaxQuads: 16})
	r.Init(64, 64)
	t.Cleanup(r.Shutdown)
	return r, rec
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestLoadFromDirectory(t *testing.T) {
	r, rec := newRenderer(t)
	audio := &fakeAudio{}
	m := NewManager(r, audio)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "textures", "player.png"), pngBytes(t, 4, 2))
	writeFile(t, filepath.Join(dir, "textures", "tiles.png"), pngBytes(t, 8, 8))
	writeFile(t, filepath.Join(dir, "textures", "readme.txt"), []byte("hi"))
	writeFile(t, filepath.Join(dir, "textures", "broken.png"), []byte("nope"))
	writeFile(t, filepath.Join(dir, "sounds", "jump.wav"), []byte{})
	writeFile(t, filepath.Join(dir, "music", "theme.ogg"), []byte{})

	require.NoError(t, m.LoadFromDirectory(dir))

	assert.Equal(t, []string{"player", "tiles"}, m.TextureNames())
	player := m.GetTexture("player")
	require.NotNil(t, player)
	assert.Equal(t, 4, player.Width())
	assert.Equal(t, 2, player.Height())
	assert.Equal(t, []string{"jump"}, audio.sounds)
	assert.Equal(t, []string{"theme"}, audio.music)

	m.Shutdown()
	assert.True(t, player.Released())
	assert.Equal(t, 1, rec.LiveTextures())
}

func TestLoadFromMissingDirectory(t *testing.T) {
	r, _ := newRenderer(t)
	m := NewManager(r, nil)

	assert.Error(t, m.LoadFromDirectory(filepath.Join(t.TempDir(), "nope")))
}

func TestDuplicateTextureIsSkipped(t *testing.T) {
	r, _ := newRenderer(t)
	m := NewManager(r, nil)
	defer m.Shutdown()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), pngBytes(t, 2, 2))
	writeFile(t, filepath.Join(dir, "b.png"), pngBytes(t, 3, 3))

	require.NoError(t, m.LoadTexture("hero", filepath.Join(dir, "a.png")))
	require.NoError(t, m.LoadTexture("hero", filepath.Join(dir, "b.png")))

	assert.Equal(t, 2, m.GetTexture("hero").Width())
	assert.Len(t, m.TextureNames(), 1)
}

func TestMissingTextureIsNil(t *testing.T) {
	r, rec := newRenderer(t)
	m := NewManager(r, nil)

	tex := m.GetTexture("ghost")
	assert.Nil(t, tex)
	assert.False(t, m.HasTexture("ghost"))

	r.DrawTexture(tex, engine2D.Vec2{})
	r.EndFrame()
	require.Len(t, rec.DrawCalls, 1)
	assert.Equal(t, float32(0), rec.DrawCalls[0].Vertices[0].TexSlot)
}

func TestLoadPackage(t *testing.T) {
	r, _ := newRenderer(t)
	m := NewManager(r, nil)
	defer m.Shutdown()

	path := filepath.Join(t.TempDir(), "scene.pkg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, convert.WritePackage(f, "PKGV0001", map[string][]byte{
		"textures/player.png": pngBytes(t, 5, 5),
		"textures/bad.png":    []byte("junk"),
		"scene.json":          []byte("{}"),
	}))
	require.NoError(t, f.Close())

	require.NoError(t, m.LoadPackage(path))
	assert.Equal(t, []string{"textures/player"}, m.TextureNames())
	assert.Equal(t, 5, m.GetTexture("textures/player").Width())

	assert.Error(t, m.LoadPackage(filepath.Join(t.TempDir(), "missing.pkg")))
}
