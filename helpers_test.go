package fontatlas

import (
	"errors"
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/gogpu/fontatlas/surface"
)

// fakeRasterizer produces solid rectangular bitmaps. Each pixel's coverage
// byte is the low byte of the codepoint so tests can check that the right
// glyph landed at the right place.
type fakeRasterizer struct {
	metrics FontMetrics

	// sizes overrides the bitmap size per codepoint; others get defW x defH.
	sizes map[rune][2]int
	defW  int
	defH  int

	// advance overrides the advance per codepoint; default is the width.
	advance map[rune]int
	kerning map[[2]rune]int

	// badPix makes the given codepoint return a bitmap with too few bytes.
	badPix rune

	glyphCalls   map[rune]int
	kerningCalls map[[2]rune]int
	order        []rune
}

func newFakeRasterizer(size int) *fakeRasterizer {
	return &fakeRasterizer{
		metrics:      FontMetrics{Size: size, Height: size + size/4, Ascent: size, Descent: size / 4},
		sizes:        map[rune][2]int{' ': {0, 0}},
		defW:         10,
		defH:         20,
		advance:      map[rune]int{' ': 8},
		kerning:      map[[2]rune]int{},
		badPix:       -1,
		glyphCalls:   map[rune]int{},
		kerningCalls: map[[2]rune]int{},
	}
}

func (r *fakeRasterizer) Metrics() FontMetrics { return r.metrics }

func (r *fakeRasterizer) Glyph(c rune) Bitmap {
	r.glyphCalls[c]++
	r.order = append(r.order, c)

	w, h := r.defW, r.defH
	if sz, ok := r.sizes[c]; ok {
		w, h = sz[0], sz[1]
	}
	adv, ok := r.advance[c]
	if !ok {
		adv = w
	}

	pix := make([]byte, w*h*surface.BytesPerPixel)
	for i := 0; i < len(pix); i += 2 {
		pix[i] = byte(c)
		pix[i+1] = 0xff
	}
	if c == r.badPix && len(pix) > 0 {
		pix = pix[:len(pix)-1]
	}

	return Bitmap{Width: w, Height: h, BearingX: 0, BearingY: h, Advance: adv, Pix: pix}
}

func (r *fakeRasterizer) Kerning(left, right rune) int {
	k := [2]rune{left, right}
	r.kerningCalls[k]++
	return r.kerning[k]
}

// limitSurface wraps a Pixmap and refuses to grow past limit, like a GPU
// rejecting a texture allocation.
type limitSurface struct {
	*surface.Pixmap
	limit   int
	resizes [][2]int
}

var errOutOfMemory = errors.New("out of video memory")

func (s *limitSurface) Resize(w, h int) error {
	if s.limit > 0 && (w > s.limit || h > s.limit) {
		return errOutOfMemory
	}
	s.resizes = append(s.resizes, [2]int{w, h})
	return s.Pixmap.Resize(w, h)
}

// newTestFont creates a Font over a fresh Pixmap-backed limitSurface.
func newTestFont(t *testing.T, r *fakeRasterizer, opts ...Option) (*Font, *limitSurface) {
	t.Helper()
	pm, err := surface.NewPixmap(8, 8)
	if err != nil {
		t.Fatalf("NewPixmap failed: %v", err)
	}
	s := &limitSurface{Pixmap: pm}
	f, err := NewFont(r, s, opts...)
	if err != nil {
		t.Fatalf("NewFont failed: %v", err)
	}
	return f, s
}

// checkAtlasInvariants verifies containment, non-overlap and pixel content
// of every placed glyph.
func checkAtlasInvariants(t *testing.T, f *Font, s *limitSurface) {
	t.Helper()

	w, h := f.AtlasSize()
	if s.Width() != w || s.Height() != h {
		t.Fatalf("surface %dx%d does not match atlas %dx%d", s.Width(), s.Height(), w, h)
	}
	p := f.Padding()
	bounds := image.Rect(p, p, w-p, h-p)

	var placed []Glyph
	for g := range f.Glyphs() {
		if g.Empty() {
			continue
		}
		if !g.Rect().In(bounds) {
			t.Errorf("glyph %U rect %v outside %v", g.Codepoint, g.Rect(), bounds)
		}
		c0, c1 := s.At(g.X, g.Y)
		e0, e1 := s.At(g.X+g.Width-1, g.Y+g.Height-1)
		if c0 != byte(g.Codepoint) || c1 != 0xff || e0 != byte(g.Codepoint) || e1 != 0xff {
			t.Errorf("glyph %U: surface pixels (%d,%d)/(%d,%d) do not match bitmap",
				g.Codepoint, c0, c1, e0, e1)
		}
		placed = append(placed, g)
	}

	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if a.Rect().Inset(-p).Overlaps(b.Rect()) {
				t.Errorf("glyphs overlap (padding %d):\n%s", p, spew.Sdump(a.Rect(), b.Rect()))
			}
		}
	}
}
