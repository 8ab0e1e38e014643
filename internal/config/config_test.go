package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova2d/internal/engine2D"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nova.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, engine2D.DefaultMaxQuads, cfg.Renderer.MaxQuads)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
window:
  title: Demo
  width: 640
renderer:
  max_quads: 512
  clear_color: "#102030"
assets:
  packages: [a.pkg, b.pkg]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "kept default")
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 512, cfg.Renderer.MaxQuads)
	assert.Equal(t, engine2D.NewColor(0x10, 0x20, 0x30, 0xFF), cfg.Renderer.ClearColor.Color())
	assert.Equal(t, []string{"a.pkg", "b.pkg"}, cfg.Assets.Packages)
	assert.Equal(t, "assets", cfg.Assets.Directory)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "window: [1, 2"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "renderer:\n  clear_color: teal\n"))
	assert.ErrorContains(t, err, "invalid color")

	_, err = Load(writeConfig(t, "window:\n  width: 0\nrenderer:\n  max_quads: -1\naudio:\n  master_volume: 3\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "max quads")
	assert.ErrorContains(t, err, "master volume")
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "unknown log level")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Renderer.ClearColor = HexColor{R: 1, G: 2, B: 3, A: 4}
	cfg.Headless.Enabled = true

	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#01020304")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("  #ff000080 ")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 255, A: 128}, c)
	assert.Equal(t, "#FF000080", c.String())

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#GGGGGG")
	assert.Error(t, err)
}
