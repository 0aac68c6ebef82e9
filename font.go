package fontatlas

import (
	"github.com/gogpu/fontatlas/internal/cache"
)

// Font ties a Rasterizer to a Surface through a glyph cache, a kerning
// cache and a shelf-packed atlas.
//
// Font is NOT safe for concurrent use.
type Font struct {
	rasterizer Rasterizer
	surface    Surface
	metrics    FontMetrics
	config     fontConfig

	atlas   atlas
	glyphs  *cache.Map[rune, *Glyph]
	kerning *cache.Map[pairKey, int]

	// stale is set while cached glyph rectangles do not match the surface,
	// i.e. between a resize and the end of the repack that follows it.
	stale bool

	growths uint64
	repacks uint64
}

// Stats holds cache and atlas statistics.
type Stats struct {
	GlyphHits     uint64
	GlyphMisses   uint64
	KerningHits   uint64
	KerningMisses uint64

	// GlyphHitRate and KerningHitRate are hits / lookups in [0, 1],
	// or 0 before the first lookup.
	GlyphHitRate   float64
	KerningHitRate float64

	// Growths counts surface resizes after construction.
	Growths uint64

	// Repacks counts full re-placement passes over the glyph cache.
	Repacks uint64
}

// NewFont creates a Font drawing glyphs from r into s.
//
// The atlas starts at AtlasConfig.InitialSize and grows until its height is
// at least four times the font's nominal size, then s is resized to match.
// The resize happens even when s already has that size, which discards any
// previous contents.
// Returns *ConfigError for invalid options and *SurfaceError if the initial
// resize fails.
func NewFont(r Rasterizer, s Surface, opts ...Option) (*Font, error) {
	if r == nil {
		return nil, ErrNilRasterizer
	}
	if s == nil {
		return nil, ErrNilSurface
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.atlas.Validate(); err != nil {
		return nil, err
	}

	f := &Font{
		rasterizer: r,
		surface:    s,
		metrics:    r.Metrics(),
		config:     config,
		atlas:      newAtlas(config.atlas.InitialSize, config.atlas.Padding, config.atlas.MaxSize),
		glyphs:     cache.New[rune, *Glyph](128),
		kerning:    cache.New[pairKey, int](256),
	}

	for f.atlas.height < 4*f.metrics.Size {
		if !f.atlas.canGrow() {
			return nil, f.fullError(0)
		}
		f.atlas.grow()
	}

	// Always resize, even to the current size, so leftover pixels from a
	// previous user of s never show through the padding.
	if err := s.Resize(f.atlas.width, f.atlas.height); err != nil {
		return nil, &SurfaceError{Op: "resize", Width: f.atlas.width, Height: f.atlas.height, Err: err}
	}

	Logger().Debug("fontatlas: font created",
		"size", f.metrics.Size, "width", f.atlas.width, "height", f.atlas.height)
	return f, nil
}

// Size returns the nominal pixel size of the font.
func (f *Font) Size() int {
	return f.metrics.Size
}

// Height returns the font's line height in pixels.
func (f *Font) Height() int {
	return f.metrics.Height
}

// Ascent returns the distance from the baseline to the top of the font.
func (f *Font) Ascent() int {
	return f.metrics.Ascent
}

// Descent returns the distance from the baseline to the bottom of the font.
func (f *Font) Descent() int {
	return f.metrics.Descent
}

// Baseline returns the baseline offset from the top of a line, estimated
// as Height / 1.25.
func (f *Font) Baseline() int {
	return int(float64(f.metrics.Height) / 1.25)
}

// LineHeight returns the line spacing multiplier.
func (f *Font) LineHeight() float64 {
	return f.config.lineHeight
}

// SetLineHeight sets the line spacing multiplier.
func (f *Font) SetLineHeight(h float64) {
	f.config.lineHeight = h
}

// Align returns the horizontal alignment used by Layout.
func (f *Font) Align() Align {
	return f.config.align
}

// SetAlign sets the horizontal alignment used by Layout.
func (f *Font) SetAlign(a Align) {
	f.config.align = a
}

// VerticalAlign returns the vertical alignment used by Layout.
func (f *Font) VerticalAlign() VerticalAlign {
	return f.config.valign
}

// SetVerticalAlign sets the vertical alignment used by Layout.
func (f *Font) SetVerticalAlign(v VerticalAlign) {
	f.config.valign = v
}

// Wrap returns the wrap width, or 0 if wrapping is off.
func (f *Font) Wrap() float32 {
	return max(f.config.wrap, 0)
}

// SetWrap sets the wrap width. Zero or negative disables wrapping.
func (f *Font) SetWrap(width float32) {
	f.config.wrap = width
}

// AtlasSize returns the current atlas dimensions in pixels.
func (f *Font) AtlasSize() (width, height int) {
	return f.atlas.width, f.atlas.height
}

// Padding returns the gap kept between glyphs.
func (f *Font) Padding() int {
	return f.atlas.padding
}

// Surface returns the surface the atlas is packed into.
func (f *Font) Surface() Surface {
	return f.surface
}

// Stats returns cache and atlas statistics.
func (f *Font) Stats() Stats {
	gs := f.glyphs.Stats()
	ks := f.kerning.Stats()
	return Stats{
		GlyphHits:     gs.Hits,
		GlyphMisses:   gs.Misses,
		KerningHits:   ks.Hits,
		KerningMisses: ks.Misses,

		GlyphHitRate:   gs.HitRate(),
		KerningHitRate: ks.HitRate(),

		Growths: f.growths,
		Repacks: f.repacks,
	}
}

// Reset drops every cached glyph and kerning pair and zeroes the
// statistics. The atlas keeps its current size; the surface is resized in
// place to wipe it. If that resize fails the Font is left unchanged.
func (f *Font) Reset() error {
	if err := f.surface.Resize(f.atlas.width, f.atlas.height); err != nil {
		return &SurfaceError{Op: "resize", Width: f.atlas.width, Height: f.atlas.height, Err: err}
	}
	f.glyphs.Clear()
	f.kerning.Clear()
	f.atlas.reset()
	f.stale = false
	f.growths = 0
	f.repacks = 0

	Logger().Debug("fontatlas: font reset", "width", f.atlas.width, "height", f.atlas.height)
	return nil
}
