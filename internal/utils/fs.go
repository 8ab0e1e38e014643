package utils

import (
	"os"
	"path/filepath"
	"strings"
)

var imageExtensions = []string{".tex", ".png", ".jpg", ".jpeg", ".bmp"}

// ResolveAssetPath finds relPath under ./assets first, then under each root in
// order. When nothing exists the ./assets candidate is returned so the caller
// reports a sensible path in its error.
func ResolveAssetPath(relPath string, roots ...string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}

	localPath := filepath.Join("assets", relPath)
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	for _, root := range roots {
		if root == "" {
			continue
		}
		p := filepath.Join(root, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return localPath
}

// HasImageExtension reports whether path names a texture format the loader understands.
func HasImageExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// AssetName returns the base name of path without its extension.
func AssetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
