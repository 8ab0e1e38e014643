package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/bmp"

	"nova2d/internal/utils"
)

// DecodeImage decodes a texture from r. name only selects the decoder:
// .tex files use DecodeTex, everything else goes through image.Decode.
func DecodeImage(name string, r io.Reader) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tex") {
		return DecodeTex(r)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// DecodeImageBytes is DecodeImage over an in-memory file.
func DecodeImageBytes(name string, data []byte) (image.Image, error) {
	return DecodeImage(name, bytes.NewReader(data))
}

// LoadImage reads and decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	if !utils.HasImageExtension(path) {
		return nil, fmt.Errorf("%s: unsupported image extension", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".tex") {
		return DecodeTexFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImage(path, f)
}

// TexToPNG decodes a .tex file and writes it as PNG next to it, or into
// outDir when set. It returns the written path.
func TexToPNG(path, outDir string) (string, error) {
	pngPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	if outDir != "" {
		pngPath = filepath.Join(outDir, utils.AssetName(path)+".png")
	}

	img, err := DecodeTexFile(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(pngPath)
		return "", fmt.Errorf("encode %s: %w", pngPath, err)
	}
	return pngPath, f.Close()
}

// BulkConvertTextures converts every .tex under root to PNG and returns how
// many succeeded.
func BulkConvertTextures(root, outDir string) int {
	utils.Info("Starting bulk texture conversion in parallel...")
	var convertedCount int32
	var wg sync.WaitGroup

	// Limit concurrency to avoid RAM spikes
	const maxConcurrency = 10
	sem := make(chan struct{}, maxConcurrency)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			utils.Error("Failed to create %s: %v", outDir, err)
			return 0
		}
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".tex") {
			wg.Add(1)
			sem <- struct{}{}
			go func(p string) {
				defer wg.Done()
				defer func() { <-sem }()
				if _, err := TexToPNG(p, outDir); err != nil {
					utils.Error("Failed to convert %s: %v", p, err)
				} else {
					atomic.AddInt32(&convertedCount, 1)
				}
			}(path)
		}
		return nil
	})
	if err != nil {
		utils.Error("Error walking through directory: %v", err)
	}

	wg.Wait()
	utils.Info("Bulk conversion finished. Processed %d textures.", convertedCount)
	return int(convertedCount)
}
