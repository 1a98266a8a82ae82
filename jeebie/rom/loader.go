// Package rom reads cartridge and boot ROM images from disk, unpacking
// them from gzip, zip and 7z archives.
package rom

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

var (
	ErrEmptyArchive = errors.New("archive has no ROM")
	ErrTooLarge     = errors.New("image too large")
)

// maxSize bounds decompressed images, 8MiB being the largest cartridge.
const maxSize = 8 << 20

// romExtensions are preferred when picking a file out of an archive.
var romExtensions = []string{".gb", ".gbc", ".bin"}

// Load reads the file and decompresses it when its extension names an
// archive. Archives yield their first ROM file, or their first file when
// none has a ROM extension.
func Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		data, err = gunzip(data)
	case ".zip":
		data, err = unzip(data)
	case ".7z":
		data, err = un7z(data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", filename, err)
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readAll(r)
}

func unzip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	i, ok := pick(names)
	if !ok {
		return nil, ErrEmptyArchive
	}

	f, err := r.File[i].Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f)
}

func un7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
		if f.FileInfo().IsDir() {
			names[i] = ""
		}
	}
	i, ok := pick(names)
	if !ok {
		return nil, ErrEmptyArchive
	}

	f, err := r.File[i].Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f)
}

// pick returns the index of the first name with a ROM extension, or of the
// first regular file. Directories have an empty or slash terminated name.
func pick(names []string) (int, bool) {
	first := -1
	for i, name := range names {
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		for _, ext := range romExtensions {
			if strings.EqualFold(filepath.Ext(name), ext) {
				return i, true
			}
		}
		if first < 0 {
			first = i
		}
	}
	return first, first >= 0
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
