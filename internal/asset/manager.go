// Package asset loads textures and audio from disk and asset packages and
// keeps them by name.
package asset

import (
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	"nova2d/internal/convert"
	"nova2d/internal/engine2D"
	"nova2d/internal/utils"
)

// TextureFactory uploads and releases textures. *engine2D.Renderer implements it.
type TextureFactory interface {
	NewTexture(name string, img image.Image) (*engine2D.Texture, error)
	DestroyTexture(tex *engine2D.Texture)
}

// AudioLoader loads sounds and music streams by name.
type AudioLoader interface {
	LoadSound(name, path string) error
	LoadMusic(name, path string) error
}

var audioExtensions = []string{".wav", ".ogg", ".mp3", ".flac", ".qoa"}

type Manager struct {
	factory  TextureFactory
	audio    AudioLoader
	textures map[string]*engine2D.Texture
	order    []string
}

// NewManager creates a manager that uploads through factory. audio may be nil,
// in which case sound and music directories are skipped.
func NewManager(factory TextureFactory, audio AudioLoader) *Manager {
	return &Manager{
		factory:  factory,
		audio:    audio,
		textures: make(map[string]*engine2D.Texture),
	}
}

// LoadFromDirectory loads dir/textures/*, dir/sounds/* and dir/music/*. Files
// are named by their base name without extension.
func (m *Manager) LoadFromDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		utils.Warn("%s is not a directory! Skipping...", dir)
		return fmt.Errorf("%s is not a directory", dir)
	}

	for _, p := range listFiles(filepath.Join(dir, "textures")) {
		if !utils.HasImageExtension(p) {
			utils.Debug("Skipping non-image file %s", p)
			continue
		}
		if err := m.LoadTexture(utils.AssetName(p), p); err != nil {
			utils.Error("Failed to load texture %s: %v", p, err)
		}
	}

	if m.audio == nil {
		return nil
	}
	for _, p := range listFiles(filepath.Join(dir, "sounds")) {
		if isAudio(p) {
			if err := m.audio.LoadSound(utils.AssetName(p), p); err != nil {
				utils.Error("Failed to load sound %s: %v", p, err)
			}
		}
	}
	for _, p := range listFiles(filepath.Join(dir, "music")) {
		if isAudio(p) {
			if err := m.audio.LoadMusic(utils.AssetName(p), p); err != nil {
				utils.Error("Failed to load music %s: %v", p, err)
			}
		}
	}
	return nil
}

// LoadTexture decodes the image at p and registers it as name. A name that
// is already taken is skipped with a warning.
func (m *Manager) LoadTexture(name, p string) error {
	if _, ok := m.textures[name]; ok {
		utils.Warn("Texture with name %s already exists! Skipping...", name)
		return nil
	}

	utils.Info("Loading texture %s (%s)...", name, p)
	img, err := convert.LoadImage(p)
	if err != nil {
		return err
	}
	return m.AddImage(name, img)
}

// AddImage uploads an already decoded image as name.
func (m *Manager) AddImage(name string, img image.Image) error {
	if _, ok := m.textures[name]; ok {
		utils.Warn("Texture with name %s already exists! Skipping...", name)
		return nil
	}
	tex, err := m.factory.NewTexture(name, img)
	if err != nil {
		return err
	}
	m.textures[name] = tex
	m.order = append(m.order, name)
	return nil
}

// LoadPackage loads every image entry of a PKGV package. Entries are named
// by their path inside the package without extension, so
// "textures/player.tex" becomes "textures/player".
func (m *Manager) LoadPackage(p string) error {
	pkg, err := convert.OpenPackage(p)
	if err != nil {
		return err
	}
	defer pkg.Close()

	loaded := 0
	for _, e := range pkg.Entries {
		if !utils.HasImageExtension(e.Name) {
			continue
		}
		data, err := pkg.ReadFile(e.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		img, err := convert.DecodeImageBytes(e.Name, data)
		if err != nil {
			utils.Error("Failed to decode %s from %s: %v", e.Name, p, err)
			continue
		}
		name := strings.TrimSuffix(e.Name, path.Ext(e.Name))
		if err := m.AddImage(name, img); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		loaded++
	}

	utils.Info("Loaded %d textures from package %s (%s)", loaded, p, pkg.Version)
	return nil
}

// GetTexture returns the named texture, or nil with a warning. Drawing a nil
// texture falls back to the renderer's white texture.
func (m *Manager) GetTexture(name string) *engine2D.Texture {
	tex, ok := m.textures[name]
	if !ok {
		utils.Warn("Texture %s does not exist!", name)
		return nil
	}
	return tex
}

func (m *Manager) HasTexture(name string) bool {
	_, ok := m.textures[name]
	return ok
}

// TextureNames lists the loaded textures in load order.
func (m *Manager) TextureNames() []string {
	return append([]string(nil), m.order...)
}

// Shutdown destroys every texture, newest first.
func (m *Manager) Shutdown() {
	for i := len(m.order) - 1; i >= 0; i-- {
		m.factory.DestroyTexture(m.textures[m.order[i]])
	}
	m.textures = make(map[string]*engine2D.Texture)
	m.order = nil
}

func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

func isAudio(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	for _, e := range audioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
