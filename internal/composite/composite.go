package composite

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
)

// Source yields decoded images one at a time. Next returns io.EOF once the
// sequence is exhausted. A Source is read in a single forward pass.
type Source interface {
	Next() (image.Image, error)
}

// Classifier turns an image into a 0/255 mask of the same dimensions.
type Classifier interface {
	Classify(img image.Image) *image.Gray
}

// DimensionMismatchError is returned when an image does not have the size of
// the composite built so far.
type DimensionMismatchError struct {
	Index int         // zero-based position of the offending image
	Want  image.Point // composite width and height
	Got   image.Point // image width and height
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("image %d is %dx%d, expected %dx%d",
		e.Index, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// Compositor folds the masks of a sequence of images into one composite.
type Compositor struct {
	classifier Classifier
	logger     *log.Logger
}

// New returns a Compositor classifying with c. A nil logger discards output.
func New(c Classifier, logger *log.Logger) *Compositor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Compositor{
		classifier: c,
		logger:     logger,
	}
}

// Merge pulls every image from src, classifies each exactly once, and returns
// the per-pixel OR of the masks.
//
// The boolean result is false when src yielded no image at all; the composite
// is then nil and the classifier was never called. Images must all have the
// size of the first one, otherwise a *DimensionMismatchError is returned. Any
// error ends the run without a partial result.
func (c *Compositor) Merge(src Source) (*image.Gray, bool, error) {
	var composite *image.Gray

	for i := 0; ; i++ {
		img, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to read image %d: %w", i, err)
		}

		size := img.Bounds().Size()
		if composite != nil && size != composite.Rect.Size() {
			return nil, false, &DimensionMismatchError{Index: i, Want: composite.Rect.Size(), Got: size}
		}

		mask := c.classifier.Classify(img)
		if got := mask.Rect.Size(); got != size {
			return nil, false, &DimensionMismatchError{Index: i, Want: size, Got: got}
		}

		if composite == nil {
			composite = image.NewGray(image.Rect(0, 0, size.X, size.Y))
		}
		lit := Fold(composite, mask)
		c.logger.Printf("merged image %d (%dx%d), %d pixels lit", i, size.X, size.Y, lit)
	}

	if composite == nil {
		return nil, false, nil
	}
	return composite, true, nil
}

// Fold ORs mask into dst pixel by pixel and returns the number of lit pixels
// in dst afterwards. Both images must have the same size; their origins may
// differ.
func Fold(dst, mask *image.Gray) int {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	lit := 0
	for y := 0; y < h; y++ {
		do := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		mo := mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+y)
		d := dst.Pix[do : do+w]
		m := mask.Pix[mo : mo+w]
		for x := range d {
			if m[x] > d[x] {
				d[x] = m[x]
			}
			if d[x] != 0 {
				lit++
			}
		}
	}
	return lit
}

type sliceSource struct {
	images []image.Image
}

// Images returns a Source over an in-memory list of images.
func Images(imgs ...image.Image) Source {
	return &sliceSource{images: imgs}
}

func (s *sliceSource) Next() (image.Image, error) {
	if len(s.images) == 0 {
		return nil, io.EOF
	}
	img := s.images[0]
	s.images = s.images[1:]
	return img, nil
}
