package fontatlas

// FontMetrics holds font-level metrics in whole pixels.
type FontMetrics struct {
	// Size is the nominal pixel size of the font (pixels per em).
	Size int

	// Height is the recommended distance between baselines.
	Height int

	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent int

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent int
}

// Bitmap is a rasterized glyph as produced by a Rasterizer.
type Bitmap struct {
	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// BearingX and BearingY offset the bitmap's top-left corner from the pen
	// position. Y grows upwards, so BearingY is positive for glyphs that
	// rise above the baseline.
	BearingX int
	BearingY int

	// Advance is the horizontal pen advance in pixels.
	Advance int

	// Pix holds Width*Height pixels, two bytes each (coverage, secondary),
	// rows densely packed.
	Pix []byte
}

// Rasterizer produces glyph bitmaps and kerning for a font at a fixed size.
//
// Implementations never fail: codepoints without a glyph are substituted
// with a placeholder by the rasterizer itself.
type Rasterizer interface {
	// Metrics returns font-level metrics.
	Metrics() FontMetrics

	// Glyph rasterizes the glyph for r.
	Glyph(r rune) Bitmap

	// Kerning returns the horizontal adjustment in pixels between left and
	// right. A zero left codepoint means "start of line".
	Kerning(left, right rune) int
}

// Surface is the two-channel pixel store the atlas packs glyphs into.
// surface.Pixmap and surface.Texture implement it.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize reallocates storage. Previous contents are not preserved.
	Resize(width, height int) error

	// UploadRegion writes a w*h block of two-channel pixels at (x, y).
	UploadRegion(x, y, w, h int, pix []byte) error
}
