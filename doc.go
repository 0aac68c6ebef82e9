// Package fontatlas maintains a dynamic glyph atlas for GPU text rendering.
//
// A Font rasterizes glyphs on demand, packs them into a growable
// two-channel surface with a shelf packer, and caches glyph metrics and
// kerning pairs. When the surface runs out of room it doubles one dimension
// (alternating width and height to stay near-square), and every cached
// glyph is packed again into the larger surface.
//
// The package relies on two collaborators it does not implement:
//
//   - Rasterizer: produces glyph bitmaps, metrics and kerning
//     (see package fontdata for implementations over OpenType fonts)
//   - Surface: a resizable two-channel pixel store
//     (see package surface for CPU and GPU implementations)
//
// # Example usage
//
//	src, err := fontdata.ParseOpenType(goregular.TTF, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm, _ := surface.NewPixmap(128, 128)
//
//	font, err := fontatlas.NewFont(src, pm)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layout, err := font.Layout("Hello\nWorld")
//	if err != nil {
//	    log.Fatal(err) // resource exhaustion while growing the atlas
//	}
//	// layout.Vertices holds two triangles per visible glyph with texture
//	// coordinates normalized to the current atlas size.
//
// # Growth and stale coordinates
//
// Any call that can insert a glyph (Glyph, Layout, Width) may grow the
// atlas, which moves every glyph. Glyph values and texture coordinates
// obtained before such a call must be fetched again. Layout handles this
// itself by restarting when the atlas size changes mid-pass.
//
// # Thread Safety
//
// Font is NOT safe for concurrent use. A cache miss mutates the glyph
// cache, the packer and the surface; callers sharing a Font across
// goroutines must serialize access.
package fontatlas
