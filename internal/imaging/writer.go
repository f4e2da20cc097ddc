package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// jpegQuality is used when a result is written as JPEG. JPEG is lossy, so
// masks written that way no longer hold exact 0/255 values.
const jpegQuality = 100

// EncoderFor returns the encoder matching the extension of path.
func EncoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .bmp or .jpg)", filepath.Ext(path))
	}
}

// IsLossless reports whether writing to path preserves pixel values exactly.
func IsLossless(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		return true
	}
	return false
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64 encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
