package convert

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"

	"nova2d/internal/utils"
)

// Texture formats stored in the TEXV0005 header.
const (
	FormatRGBA8888 = 0
	FormatDXT5     = 4
	FormatDXT3     = 6
	FormatDXT1     = 7
	FormatRG88     = 8
	FormatR8       = 9
)

const (
	texMagic      = "TEXV0005"
	texInfoMagic  = "TEXI0001"
	containerV1   = "TEXB0001"
	containerV2   = "TEXB0002"
	containerV3   = "TEXB0003"
	maxMipPayload = 256 << 20
)

// texReader reads little endian fields and keeps the first error.
type texReader struct {
	r   io.Reader
	err error
}

func (t *texReader) u32() uint32 {
	if t.err != nil {
		return 0
	}
	var v uint32
	t.err = binary.Read(t.r, binary.LittleEndian, &v)
	return v
}

// magic reads an 8 byte tag followed by its NUL terminator.
func (t *texReader) magic() string {
	if t.err != nil {
		return ""
	}
	b := make([]byte, 9)
	if _, t.err = io.ReadFull(t.r, b); t.err != nil {
		return ""
	}
	return string(bytes.TrimRight(b, "\x00"))
}

func (t *texReader) bytes(n uint32) []byte {
	if t.err != nil {
		return nil
	}
	if n > maxMipPayload {
		t.err = fmt.Errorf("mip payload of %d bytes is too large", n)
		return nil
	}
	b := make([]byte, n)
	_, t.err = io.ReadFull(t.r, b)
	return b
}

// TexHeader is the fixed part of a .tex file.
type TexHeader struct {
	Format        uint32
	Flags         uint32
	TextureWidth  uint32
	TextureHeight uint32
	ImageWidth    uint32
	ImageHeight   uint32
	Container     string
}

// DecodeTex decodes the first mip of the first image of a .tex stream.
func DecodeTex(r io.Reader) (image.Image, error) {
	t := &texReader{r: bufio.NewReader(r)}

	if m := t.magic(); t.err == nil && m != texMagic {
		return nil, fmt.Errorf("invalid magic: %q", m)
	}
	if m := t.magic(); t.err == nil && m != texInfoMagic {
		return nil, fmt.Errorf("invalid info magic: %q", m)
	}

	h := TexHeader{
		Format:        t.u32(),
		Flags:         t.u32(),
		TextureWidth:  t.u32(),
		TextureHeight: t.u32(),
		ImageWidth:    t.u32(),
		ImageHeight:   t.u32(),
	}
	t.u32()
	h.Container = t.magic()
	imageCount := t.u32()
	if h.Container == containerV3 {
		t.u32()
	}
	if t.err != nil {
		return nil, fmt.Errorf("read header: %w", t.err)
	}

	switch h.Container {
	case containerV1, containerV2, containerV3:
	default:
		return nil, fmt.Errorf("unsupported container %q", h.Container)
	}
	if imageCount == 0 {
		return nil, fmt.Errorf("no image found in texture")
	}

	utils.Debug("    Format: %d, Container: %s, Size: %dx%d", h.Format, h.Container, h.ImageWidth, h.ImageHeight)

	mipmapCount := t.u32()
	if t.err == nil && mipmapCount == 0 {
		return nil, fmt.Errorf("no mipmaps in first image")
	}
	mW := t.u32()
	mH := t.u32()
	var isLZ4 bool
	var decompressedSize uint32
	if h.Container != containerV1 {
		isLZ4 = t.u32() == 1
		decompressedSize = t.u32()
	}
	data := t.bytes(t.u32())
	if t.err != nil {
		return nil, fmt.Errorf("read mip: %w", t.err)
	}

	if isLZ4 {
		utils.Debug("    Decompressing LZ4: %d -> %d", len(data), decompressedSize)
		if decompressedSize > maxMipPayload {
			return nil, fmt.Errorf("decompressed mip of %d bytes is too large", decompressedSize)
		}
		out := make([]byte, decompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		data = out[:n]
	}

	pix, err := decodePixels(h.Format, data, mW, mH)
	if err != nil {
		return nil, err
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: int(mW * 4),
		Rect:   image.Rect(0, 0, int(mW), int(mH)),
	}
	if h.ImageWidth > 0 && h.ImageHeight > 0 && (h.ImageWidth < mW || h.ImageHeight < mH) {
		return img.SubImage(image.Rect(0, 0, int(h.ImageWidth), int(h.ImageHeight))), nil
	}
	return img, nil
}

func decodePixels(format uint32, data []byte, w, h uint32) ([]byte, error) {
	blocks := ((w + 3) / 4) * ((h + 3) / 4)
	pixels := w * h
	size := uint32(len(data))

	switch {
	case format == FormatRGBA8888 && size == pixels*4:
		utils.Debug("    Type: RGBA")
		return data, nil

	case format == FormatDXT5 && size == blocks*16:
		utils.Debug("    Type: DXT5")
		return dxt.DecodeDXT5(data, uint(w), uint(h))

	case format == FormatDXT3 && size == blocks*16:
		utils.Debug("    Type: DXT3")
		return dxt.DecodeDXT3(data, uint(w), uint(h))

	case format == FormatDXT1 && size == blocks*8:
		utils.Debug("    Type: DXT1")
		return dxt.DecodeDXT1(data, uint(w), uint(h))

	case format == FormatR8 && size == pixels:
		utils.Debug("    Type: R8")
		pix := make([]byte, pixels*4)
		for i, v := range data {
			pix[i*4] = v
			pix[i*4+1] = v
			pix[i*4+2] = v
			pix[i*4+3] = 255
		}
		return pix, nil

	case format == FormatRG88 && size == pixels*2:
		utils.Debug("    Type: RG88")
		pix := make([]byte, pixels*4)
		for i := uint32(0); i < pixels; i++ {
			lum, alpha := data[i*2], data[i*2+1]
			pix[i*4] = lum
			pix[i*4+1] = lum
			pix[i*4+2] = lum
			pix[i*4+3] = alpha
		}
		return pix, nil
	}

	return nil, fmt.Errorf("unsupported format %d with size %d for %dx%d", format, size, w, h)
}

// DecodeTexFile opens and decodes a .tex file.
func DecodeTexFile(path string) (image.Image, error) {
	utils.Debug("Decoding texture: %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := DecodeTex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
