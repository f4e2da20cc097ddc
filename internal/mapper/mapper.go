package mapper

import (
	"image"

	"github.com/disintegration/imaging"

	limg "github.com/ironsheep/lightpaint/internal/imaging"
)

const (
	// Lit is the mask value of a matching pixel.
	Lit uint8 = 255

	// Unlit is the mask value of a non-matching pixel.
	Unlit uint8 = 0

	// NoMatch marks a position without a matching pixel in Locate and
	// RowPoints results.
	NoMatch = -1
)

// Config holds the target color and tolerance of a Mapper.
type Config struct {
	// Target is the color to look for, in decoder channel order.
	Target limg.RGBColor `json:"target"`

	// Tolerance is the largest per-channel absolute difference that still
	// counts as a match. Zero requires an exact match; a negative tolerance
	// matches nothing.
	Tolerance int `json:"tolerance"`
}

// Mapper classifies the pixels of an image against a target color.
//
// A pixel matches when every channel is within Tolerance of the target
// (a Chebyshev distance bound, boundary inclusive). The configuration can be
// changed between calls; each call only depends on the image and the
// configuration at the time of the call.
//
// A Mapper is not safe for concurrent reconfiguration.
type Mapper struct {
	cfg Config
}

// New returns a Mapper using cfg.
func New(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// SetTargetColor replaces the target color.
func (m *Mapper) SetTargetColor(c limg.RGBColor) {
	m.cfg.Target = c
}

// SetTolerance replaces the tolerance. Negative values are accepted and make
// every comparison fail.
func (m *Mapper) SetTolerance(t int) {
	m.cfg.Tolerance = t
}

// Config returns the current configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}

// Matches reports whether the color (r, g, b) is within tolerance of the target.
func (m *Mapper) Matches(r, g, b uint8) bool {
	t := m.cfg.Tolerance
	return absDiff(r, m.cfg.Target.R) <= t &&
		absDiff(g, m.cfg.Target.G) <= t &&
		absDiff(b, m.cfg.Target.B) <= t
}

// Classify returns a mask of img: 255 where the pixel matches, 0 elsewhere.
//
// The mask has the dimensions of img with its origin moved to (0, 0). It is
// freshly allocated and owned by the caller.
func (m *Mapper) Classify(img image.Image) *image.Gray {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	mask := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		in := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := range out {
			i := x * 4
			if m.Matches(in[i], in[i+1], in[i+2]) {
				out[x] = Lit
			}
		}
	}

	return mask
}

// Locate returns one entry per pixel of img in row-major order: the linear
// index y*width+x for a matching pixel and NoMatch otherwise. The result
// always has width*height entries.
func (m *Mapper) Locate(img image.Image) []int {
	mask := m.Classify(img)
	points := make([]int, len(mask.Pix))
	for i, v := range mask.Pix {
		if v == Lit {
			points[i] = i
		} else {
			points[i] = NoMatch
		}
	}
	return points
}

// RowPoints returns one entry per row of img: the column of the leftmost
// matching pixel in that row, or NoMatch when the row has none.
func (m *Mapper) RowPoints(img image.Image) []int {
	mask := m.Classify(img)
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	points := make([]int, h)
	for y := 0; y < h; y++ {
		points[y] = NoMatch
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range row {
			if v == Lit {
				points[y] = x
				break
			}
		}
	}
	return points
}

// MatchCount returns the number of lit pixels in mask.
func MatchCount(mask *image.Gray) int {
	if mask == nil {
		return 0
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	n := 0
	for y := 0; y < h; y++ {
		off := mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+y)
		for _, v := range mask.Pix[off : off+w] {
			if v == Lit {
				n++
			}
		}
	}
	return n
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
