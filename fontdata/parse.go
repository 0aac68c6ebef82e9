package fontdata

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrInvalidSize is returned for a non-positive pixel size.
var ErrInvalidSize = errors.New("fontdata: size must be positive")

// ParseOpenType parses TrueType or OpenType data with
// golang.org/x/image/font/opentype and returns a Source rendering it at size
// pixels per em.
func ParseOpenType(data []byte, size int, opts ...Option) (*Source, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontdata: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: o.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("fontdata: failed to create face: %w", err)
	}

	var buf sfnt.Buffer
	covers := func(r rune) bool {
		idx, err := f.GlyphIndex(&buf, r)
		return err == nil && idx != 0
	}
	return newSource(face, size, covers, o), nil
}

// ParseTrueType parses TrueType data with github.com/golang/freetype and
// returns a Source rendering it at size pixels per em.
func ParseTrueType(data []byte, size int, opts ...Option) (*Source, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontdata: failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: o.hinting,
	})

	covers := func(r rune) bool {
		return f.Index(r) != 0
	}
	return newSource(face, size, covers, o), nil
}
