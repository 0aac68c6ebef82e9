package fontdata

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapingKerner derives pair kerning from HarfBuzz shaping with
// go-text/typesetting: the advance of the left glyph shaped next to the
// right one, minus its advance shaped alone. Pairs that shape into a
// ligature kern by 0.
//
// ShapingKerner is NOT safe for concurrent use.
type ShapingKerner struct {
	face   *gotext.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper
}

// NewShapingKerner parses data and returns a kerner for size pixels per em.
func NewShapingKerner(data []byte, size int) (*ShapingKerner, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontdata: failed to parse font: %w", err)
	}
	return &ShapingKerner{
		face: gotext.NewFace(face.Font),
		size: fixed.I(size),
	}, nil
}

// Kerning implements Kerner.
func (k *ShapingKerner) Kerning(left, right rune) int {
	if left == 0 || right == 0 {
		return 0
	}
	pair := k.shape([]rune{left, right})
	if len(pair) != 2 {
		return 0
	}
	single := k.shape([]rune{left})
	if len(single) != 1 {
		return 0
	}
	return (pair[0].Advance - single[0].Advance).Round()
}

func (k *ShapingKerner) shape(text []rune) []shaping.Glyph {
	out := k.shaper.Shape(shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      k.face,
		Size:      k.size,
		Script:    language.LookupScript(text[0]),
		Language:  language.NewLanguage("en"),
	})
	return out.Glyphs
}
