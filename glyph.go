package fontatlas

import (
	"image"
	"iter"
)

// Glyph describes a cached glyph and its current place in the atlas.
type Glyph struct {
	// Codepoint is the Unicode scalar value the glyph was rasterized for.
	Codepoint rune

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// DX and DY offset the bitmap's top-left corner from the pen position
	// (Y up).
	DX int
	DY int

	// Advance is the horizontal pen advance in pixels.
	Advance int

	// X and Y are the bitmap origin in the atlas. They change whenever the
	// atlas grows and are meaningless for empty glyphs.
	X int
	Y int

	pix []byte
}

// Empty reports whether the glyph has no pixels. Empty glyphs (such as
// space) only advance the pen and never occupy atlas space.
func (g Glyph) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Rect returns the glyph's rectangle in atlas pixel coordinates.
func (g Glyph) Rect() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
}

// newGlyph converts a rasterizer bitmap into a cache entry.
func newGlyph(r rune, bm Bitmap) *Glyph {
	return &Glyph{
		Codepoint: r,
		Width:     bm.Width,
		Height:    bm.Height,
		DX:        bm.BearingX,
		DY:        bm.BearingY,
		Advance:   bm.Advance,
		pix:       bm.Pix,
	}
}

// Glyph returns the glyph for r, rasterizing and packing it on first use.
//
// A miss may grow the atlas, which moves every cached glyph. Values
// returned by earlier calls are stale after that and must be fetched
// again. The error is non-nil only when the atlas could not make room;
// it then matches ErrResourceExhausted or wraps a surface upload error,
// and r is not cached.
func (f *Font) Glyph(r rune) (Glyph, error) {
	g, err := f.glyph(r)
	if err != nil {
		return Glyph{}, err
	}
	return *g, nil
}

// glyph is Glyph without the copy.
func (f *Font) glyph(r rune) (*Glyph, error) {
	if f.stale {
		if err := f.restore(); err != nil {
			return nil, err
		}
	}

	if g, ok := f.glyphs.Get(r); ok {
		return g, nil
	}

	g := newGlyph(r, f.rasterizer.Glyph(r))
	f.glyphs.Set(r, g)

	if err := f.insert(g); err != nil {
		f.glyphs.Delete(r)
		Logger().Warn("fontatlas: glyph placement failed",
			"codepoint", r, "width", g.Width, "height", g.Height, "err", err)
		if rerr := f.restore(); rerr != nil {
			Logger().Warn("fontatlas: atlas left inconsistent", "err", rerr)
		}
		return nil, err
	}
	return g, nil
}

// Glyphs iterates over cached glyphs in cache order. The atlas must not be
// modified during iteration.
func (f *Font) Glyphs() iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for _, g := range f.glyphs.All() {
			if !yield(*g) {
				return
			}
		}
	}
}

// Cached reports whether r has already been rasterized. It does not count
// as a cache lookup.
func (f *Font) Cached(r rune) bool {
	return f.glyphs.Contains(r)
}

// GlyphCount returns the number of cached glyphs, empty ones included.
func (f *Font) GlyphCount() int {
	return f.glyphs.Len()
}
