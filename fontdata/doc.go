// Package fontdata provides glyph rasterizers for fontatlas.
//
// Source adapts any golang.org/x/image/font.Face. ParseOpenType and
// ParseTrueType build one from raw font bytes with the x/image opentype
// and golang/freetype parsers respectively:
//
//	src, err := fontdata.ParseOpenType(goregular.TTF, 24)
//	if err != nil {
//	    return err
//	}
//	font, err := fontatlas.NewFont(src, pixmap)
//
// Kerning comes from the face's kern table by default. ShapingKerner
// derives it from HarfBuzz shaping instead, which also covers GPOS kerning:
//
//	k, err := fontdata.NewShapingKerner(goregular.TTF, 24)
//	src, err := fontdata.ParseOpenType(goregular.TTF, 24, fontdata.WithKerner(k))
package fontdata
