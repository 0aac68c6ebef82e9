package fontdata

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/surface"
)

// placeholders are tried in order for codepoints the face does not cover.
var placeholders = [...]rune{'\uFFFD', '?'}

// Source implements fontatlas.Rasterizer over a font.Face.
//
// Source is NOT safe for concurrent use, because font.Face is not.
type Source struct {
	face    font.Face
	size    int
	kerner  Kerner
	covers  func(r rune) bool
	metrics fontatlas.FontMetrics
}

// NewSource wraps face, whose nominal pixel size is size. Codepoints are
// considered covered whenever face.Glyph reports ok.
func NewSource(face font.Face, size int, opts ...Option) *Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSource(face, size, nil, o)
}

func newSource(face font.Face, size int, covers func(rune) bool, o options) *Source {
	m := face.Metrics()
	return &Source{
		face:   face,
		size:   size,
		kerner: o.kerner,
		covers: covers,
		metrics: fontatlas.FontMetrics{
			Size:    size,
			Height:  m.Height.Round(),
			Ascent:  m.Ascent.Round(),
			Descent: m.Descent.Round(),
		},
	}
}

// Metrics implements fontatlas.Rasterizer.
func (s *Source) Metrics() fontatlas.FontMetrics {
	return s.metrics
}

// Glyph implements fontatlas.Rasterizer. Uncovered codepoints fall back to
// U+FFFD, then '?', then an empty glyph half an em wide.
func (s *Source) Glyph(r rune) fontatlas.Bitmap {
	if bm, ok := s.render(r); ok {
		return bm
	}
	for _, p := range placeholders {
		if bm, ok := s.render(p); ok {
			fontatlas.Logger().Warn("fontdata: glyph missing, using placeholder",
				"codepoint", r, "placeholder", p)
			return bm
		}
	}
	fontatlas.Logger().Warn("fontdata: glyph missing, no placeholder", "codepoint", r)
	return fontatlas.Bitmap{Advance: s.size / 2}
}

// render rasterizes r with the pen at the origin.
func (s *Source) render(r rune) (fontatlas.Bitmap, bool) {
	if s.covers != nil && !s.covers(r) {
		return fontatlas.Bitmap{}, false
	}
	dr, mask, mp, advance, ok := s.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return fontatlas.Bitmap{}, false
	}

	w, h := dr.Dx(), dr.Dy()
	bm := fontatlas.Bitmap{
		Width:    w,
		Height:   h,
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		Advance:  advance.Round(),
	}
	if w > 0 && h > 0 && mask != nil {
		bm.Pix = coverage(mask, mp, w, h)
	} else {
		bm.Width, bm.Height = 0, 0
	}
	return bm, true
}

// coverage copies a w x h block of mask starting at mp into two-channel
// pixels: full intensity and the mask's alpha as coverage. The face reuses
// its mask between calls, so the block is always copied.
func coverage(mask image.Image, mp image.Point, w, h int) []byte {
	pix := make([]byte, w*h*surface.BytesPerPixel)

	if a, ok := mask.(*image.Alpha); ok {
		for y := range h {
			row := a.Pix[a.PixOffset(mp.X, mp.Y+y):]
			for x := range w {
				i := (y*w + x) * surface.BytesPerPixel
				pix[i] = 0xff
				pix[i+1] = row[x]
			}
		}
		return pix
	}

	for y := range h {
		for x := range w {
			_, _, _, al := mask.At(mp.X+x, mp.Y+y).RGBA()
			i := (y*w + x) * surface.BytesPerPixel
			pix[i] = 0xff
			pix[i+1] = byte(al >> 8)
		}
	}
	return pix
}

// Kerning implements fontatlas.Rasterizer. A zero left codepoint marks the
// start of a line and never kerns.
func (s *Source) Kerning(left, right rune) int {
	if left == 0 {
		return 0
	}
	if s.kerner != nil {
		return s.kerner.Kerning(left, right)
	}
	return s.face.Kern(left, right).Round()
}

// Close releases the underlying face.
func (s *Source) Close() error {
	return s.face.Close()
}
