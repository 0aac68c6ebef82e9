package fontatlas

import "errors"

// atlas is the shelf packer cursor over a surface of width x height.
//
// Glyphs are laid out left to right on the current shelf. A glyph that
// does not fit horizontally opens a new shelf below the tallest glyph of
// the current one. The cursor always points at the next free position.
type atlas struct {
	x         int
	y         int
	rowHeight int
	padding   int
	width     int
	height    int
	maxSize   int
}

// newAtlas creates a packer over a size x size surface.
func newAtlas(size, padding, maxSize int) atlas {
	a := atlas{
		padding: padding,
		width:   size,
		height:  size,
		maxSize: maxSize,
	}
	a.reset()
	return a
}

// reset moves the cursor back to the top-left corner.
func (a *atlas) reset() {
	a.x = a.padding
	a.y = a.padding
	a.rowHeight = 0
}

// place reserves a w x h rectangle and returns its origin, or
// errNeedsGrowth when the current surface is too small.
func (a *atlas) place(w, h int) (x, y int, err error) {
	limitX := a.width - 2*a.padding
	limitY := a.height - 2*a.padding

	// Wider than an empty shelf: only a wider surface helps.
	if a.padding+w > limitX {
		return 0, 0, errNeedsGrowth
	}

	if a.x+w > limitX {
		a.x = a.padding
		a.y += a.rowHeight + a.padding
		a.rowHeight = 0
	}

	if a.y+h > limitY {
		return 0, 0, errNeedsGrowth
	}

	x, y = a.x, a.y
	a.x += w + a.padding
	a.rowHeight = max(a.rowHeight, h)
	return x, y, nil
}

// nextSize returns the dimensions after one growth step: the width doubles
// when the atlas is square, otherwise the height catches up.
func (a *atlas) nextSize() (w, h int) {
	if a.width == a.height {
		return a.width * 2, a.height
	}
	return a.width, a.height * 2
}

// canGrow reports whether one more growth step stays within maxSize.
func (a *atlas) canGrow() bool {
	w, h := a.nextSize()
	return w <= a.maxSize && h <= a.maxSize
}

// grow applies one growth step to the dimensions. It does not touch the
// cursor; callers reset and repack after the surface has been resized.
func (a *atlas) grow() {
	a.width, a.height = a.nextSize()
}

// fitsMax reports whether a w x h glyph could ever be placed in a
// maxSize x maxSize surface.
func (a *atlas) fitsMax(w, h int) bool {
	return w+3*a.padding <= a.maxSize && h+3*a.padding <= a.maxSize
}

// insert places a freshly cached glyph, growing and repacking the atlas
// when it does not fit. Empty glyphs are never placed.
func (f *Font) insert(g *Glyph) error {
	if g.Empty() {
		return nil
	}
	if !f.atlas.fitsMax(g.Width, g.Height) {
		return f.fullError(g.Codepoint)
	}

	x, y, err := f.atlas.place(g.Width, g.Height)
	if errors.Is(err, errNeedsGrowth) {
		// g is already cached, so the repack places it along with the rest.
		return f.expand(g.Codepoint)
	}
	if err != nil {
		return err
	}
	return f.upload(g, x, y)
}

// expand grows the surface until every cached glyph fits, re-placing all of
// them after each resize. A repack that runs out of room grows again and
// starts over; the loop ends because each step doubles a dimension and
// MaxSize bounds the total.
func (f *Font) expand(cause rune) error {
	for {
		if !f.atlas.canGrow() {
			return f.fullError(cause)
		}
		w, h := f.atlas.nextSize()
		if err := f.surface.Resize(w, h); err != nil {
			return &SurfaceError{Op: "resize", Width: w, Height: h, Err: err}
		}
		f.atlas.grow()
		f.growths++
		f.stale = true

		Logger().Debug("fontatlas: atlas grown",
			"width", w, "height", h, "glyphs", f.glyphs.Len(), "cause", cause)

		done, err := f.repack()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// repack resets the cursor and places every cached glyph again in cache
// order, uploading its pixels to the new position. It returns false if the
// surface filled up before all glyphs were placed.
func (f *Font) repack() (bool, error) {
	f.repacks++
	f.atlas.reset()

	for _, g := range f.glyphs.All() {
		if g.Empty() {
			continue
		}
		x, y, err := f.atlas.place(g.Width, g.Height)
		if errors.Is(err, errNeedsGrowth) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if err := f.upload(g, x, y); err != nil {
			return false, err
		}
	}
	f.stale = false
	return true, nil
}

// restore brings the atlas back to a consistent state after a failed
// insertion: everything still cached is repacked at the current size,
// growing if needed. It leaves stale set if that is not possible either.
func (f *Font) restore() error {
	if !f.stale {
		return nil
	}
	done, err := f.repack()
	if err != nil {
		return err
	}
	if done {
		return nil
	}
	return f.expand(0)
}

// upload records the glyph position and writes its pixels to the surface.
func (f *Font) upload(g *Glyph, x, y int) error {
	g.X = x
	g.Y = y
	if err := f.surface.UploadRegion(x, y, g.Width, g.Height, g.pix); err != nil {
		return &SurfaceError{Op: "upload", Width: g.Width, Height: g.Height, Err: err}
	}
	return nil
}

// fullError builds the error returned when MaxSize stops growth.
func (f *Font) fullError(cause rune) error {
	return &AtlasFullError{
		Codepoint: cause,
		Width:     f.atlas.width,
		Height:    f.atlas.height,
		MaxSize:   f.atlas.maxSize,
	}
}
