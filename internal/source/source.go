package source

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/ironsheep/lightpaint/internal/imaging"
)

var (
	// ErrSourceNotFound is returned when the source directory does not
	// exist, cannot be read, or is not a directory.
	ErrSourceNotFound = errors.New("source directory does not exist or is not accessible")

	// ErrNoImages is returned when the source directory holds no file with
	// an allowed extension.
	ErrNoImages = errors.New("no images found")
)

// DefaultExtensions lists the extensions accepted when none are configured.
// Matching is case-sensitive.
var DefaultExtensions = []string{"png", "jpg", "jpeg", "bmp", "tif", "tiff", "gif", "webp"}

// Dir is a single-pass sequence of the images in a directory. It decodes one
// file per call to Next.
type Dir struct {
	paths []string
	next  int
}

// Scan lists the images of dir whose extension is in exts, in lexical
// filename order. Subdirectories and hidden files are ignored. A nil or empty
// exts uses DefaultExtensions.
func Scan(dir string, exts []string) (*Dir, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, dir, err)
	}

	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.TrimPrefix(e, ".")] = true
	}

	d := &Dir{}
	for _, entry := range entries {
		name := entry.Name()

		// Ignore hidden files, otherwise we pick up things like ._IMG0001.JPG
		if name[0] == '.' {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if !allowed[Extension(name)] {
			continue
		}
		d.paths = append(d.paths, filepath.Join(dir, name))
	}

	if len(d.paths) == 0 {
		return nil, fmt.Errorf("%w in %s (extensions: %s)", ErrNoImages, dir, strings.Join(exts, ", "))
	}

	return d, nil
}

// Extension returns the part of name after the last ".", or "" when name has
// no extension.
func Extension(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

// Paths returns the files in the order they are decoded.
func (d *Dir) Paths() []string {
	return append([]string(nil), d.paths...)
}

// Len returns the number of files in the sequence.
func (d *Dir) Len() int {
	return len(d.paths)
}

// Next decodes the next file. It returns io.EOF after the last one.
func (d *Dir) Next() (image.Image, error) {
	if d.next >= len(d.paths) {
		return nil, io.EOF
	}
	path := d.paths[d.next]
	d.next++
	return imaging.Open(path)
}
