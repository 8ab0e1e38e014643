package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"nova2d/internal/utils"
)

const maxPkgString = 1 << 16

type FileEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Package is an opened PKGV asset archive: a version string, an entry table
// and the concatenated file data.
type Package struct {
	Version string
	Entries []FileEntry

	r         io.ReaderAt
	dataStart int64
	closer    io.Closer
}

func readPkgString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxPkgString {
		return "", fmt.Errorf("string of %d bytes is too long", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writePkgString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadPackage parses the package header from r.
func ReadPackage(r io.ReaderAt, size int64) (*Package, error) {
	sr := io.NewSectionReader(r, 0, size)

	version, err := readPkgString(sr)
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if !strings.HasPrefix(version, "PKGV") {
		return nil, fmt.Errorf("invalid package version %q", version)
	}
	utils.Debug("Unpacker: Package Version: %s", version)

	var fileCount uint32
	if err := binary.Read(sr, binary.LittleEndian, &fileCount); err != nil {
		return nil, fmt.Errorf("read file count: %w", err)
	}
	utils.Debug("Unpacker: File Count: %d", fileCount)

	entries := make([]FileEntry, 0, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPkgString(sr)
		if err != nil {
			return nil, fmt.Errorf("read entry %d: %w", i, err)
		}
		var offset, length uint32
		if err := binary.Read(sr, binary.LittleEndian, &offset); err != nil {
			return nil, fmt.Errorf("read entry %s: %w", name, err)
		}
		if err := binary.Read(sr, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("read entry %s: %w", name, err)
		}
		entries = append(entries, FileEntry{Name: name, Offset: offset, Size: length})
	}

	dataStart, _ := sr.Seek(0, io.SeekCurrent)
	for _, e := range entries {
		if dataStart+int64(e.Offset)+int64(e.Size) > size {
			return nil, fmt.Errorf("entry %s runs past end of package", e.Name)
		}
	}

	return &Package{Version: version, Entries: entries, r: r, dataStart: dataStart}, nil
}

// OpenPackage opens the package file at path. Close releases the file.
func OpenPackage(path string) (*Package, error) {
	utils.Debug("Unpacker: Opening package %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	pkg, err := ReadPackage(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pkg.closer = f
	return pkg, nil
}

func (p *Package) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Open returns a reader over the named entry.
func (p *Package) Open(name string) (io.Reader, error) {
	for _, e := range p.Entries {
		if e.Name == name {
			return io.NewSectionReader(p.r, p.dataStart+int64(e.Offset), int64(e.Size)), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
}

// ReadFile returns the contents of the named entry.
func (p *Package) ReadFile(name string) ([]byte, error) {
	r, err := p.Open(name)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Extract writes every entry below outputDir.
func (p *Package) Extract(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	root := filepath.Clean(outputDir) + string(os.PathSeparator)
	for i, entry := range p.Entries {
		if i%10 == 0 || i == len(p.Entries)-1 {
			utils.Debug("Unpacker: Extracting file %d/%d: %s", i+1, len(p.Entries), entry.Name)
		}
		destPath := filepath.Join(outputDir, entry.Name)
		if !strings.HasPrefix(destPath, root) {
			return fmt.Errorf("entry %s escapes %s", entry.Name, outputDir)
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		src, _ := p.Open(entry.Name)
		outF, err := os.Create(destPath)
		if err != nil {
			return err
		}
		_, err = io.Copy(outF, src)
		outF.Close()
		if err != nil {
			return err
		}
	}

	utils.Debug("Unpacker: Extraction completed successfully")
	return nil
}

// WritePackage writes files as a PKGV archive, entries sorted by name.
func WritePackage(w io.Writer, version string, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var header bytes.Buffer
	if err := writePkgString(&header, version); err != nil {
		return err
	}
	binary.Write(&header, binary.LittleEndian, uint32(len(names)))

	offset := uint32(0)
	for _, name := range names {
		writePkgString(&header, name)
		binary.Write(&header, binary.LittleEndian, offset)
		binary.Write(&header, binary.LittleEndian, uint32(len(files[name])))
		offset += uint32(len(files[name]))
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := w.Write(files[name]); err != nil {
			return err
		}
	}
	return nil
}
