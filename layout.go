package fontatlas

import "fmt"

// Align specifies horizontal alignment of laid out lines relative to x = 0.
type Align uint8

const (
	// AlignLeft starts every line at x = 0.
	AlignLeft Align = iota

	// AlignRight ends every line at x = 0.
	AlignRight

	// AlignCenter centers every line around x = 0.
	AlignCenter
)

// String returns the name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignCenter:
		return "Center"
	default:
		return fmt.Sprintf("Align(%d)", a)
	}
}

// VerticalAlign specifies where a laid out block sits relative to y = 0.
type VerticalAlign uint8

const (
	// AlignTop puts the top of the first line at y = 0.
	AlignTop VerticalAlign = iota

	// AlignBottom puts the last line's baseline at y = 0.
	AlignBottom

	// AlignMiddle centers the block between those two.
	AlignMiddle
)

// String returns the name of the vertical alignment.
func (v VerticalAlign) String() string {
	switch v {
	case AlignTop:
		return "Top"
	case AlignBottom:
		return "Bottom"
	case AlignMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("VerticalAlign(%d)", v)
	}
}

// Vertex is one corner of a glyph quad: position (Y up) and texture
// coordinates normalized to the atlas size.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

// verticesPerGlyph is the number of vertices emitted per visible glyph
// (two triangles).
const verticesPerGlyph = 6

// Layout is the result of laying out a string.
type Layout struct {
	// Vertices holds two triangles per visible glyph.
	Vertices []Vertex

	// Lines is the number of lines, including empty ones.
	Lines int

	// Width is the pen extent of the widest line.
	Width float32

	// Height is the distance from the top of the first line down to the
	// last line's baseline, before vertical alignment.
	Height float32

	// AtlasWidth and AtlasHeight are the atlas dimensions the texture
	// coordinates were normalized with.
	AtlasWidth  int
	AtlasHeight int
}

// Layout lays out text and returns its vertices.
// See AppendLayout.
func (f *Font) Layout(text string) (Layout, error) {
	return f.AppendLayout(nil, text)
}

// AppendLayout lays out text, appending vertices to dst.
//
// The pen starts at (0, -Height()). Kerning is applied before each glyph,
// '\n' moves to the next line (Size() * LineHeight() lower) and every line
// is aligned once its extent is known. With a wrap width set, a glyph that
// would carry the pen past it moves the text after the line's last space
// down to a new line; a line without a space is never broken. The whole
// block is then shifted by 0, Height or Height/2 for AlignTop, AlignBottom
// and AlignMiddle. Invalid UTF-8 is passed to the rasterizer as U+FFFD.
//
// If a glyph fetch grows the atlas, texture coordinates computed so far are
// stale; the pass is then discarded and run again against the new size.
// Growth is monotonic, so this terminates.
func (f *Font) AppendLayout(dst []Vertex, text string) (Layout, error) {
	if f.config.normalize {
		text = f.config.form.String(text)
	}

	base := len(dst)
	for {
		l, restart, err := f.layoutPass(dst[:base], text)
		if err != nil {
			return Layout{}, err
		}
		if !restart {
			return l, nil
		}
		Logger().Debug("fontatlas: atlas grew during layout, restarting",
			"width", f.atlas.width, "height", f.atlas.height)
	}
}

// layoutPass runs one layout attempt. restart is true if the atlas size
// changed while it ran.
func (f *Font) layoutPass(dst []Vertex, text string) (l Layout, restart bool, err error) {
	aw, ah := f.atlas.width, f.atlas.height
	u, v := float32(aw), float32(ah)
	step := float32(float64(f.metrics.Size) * f.config.lineHeight)
	wrap := f.Wrap()

	var x float32
	y := -float32(f.metrics.Height)
	var previous rune
	first := len(dst)
	lineStart := len(dst)
	lines := 1
	var width float32

	// Last space on the current line: vertices after it start at
	// spaceIndex, the line ends at spaceX and the next word at wordX.
	spaceIndex := -1
	var spaceX, wordX float32

	for _, r := range text {
		if r == '\n' {
			f.alignLine(dst[lineStart:], x)
			width = max(width, x)
			lineStart = len(dst)
			spaceIndex = -1

			x = 0
			y -= step
			previous = 0
			lines++
			continue
		}

		x += float32(f.Kerning(previous, r))
		previous = r

		g, err := f.glyph(r)
		if err != nil {
			return Layout{}, false, err
		}

		if f.atlas.width != aw || f.atlas.height != ah {
			return Layout{}, true, nil
		}

		if wrap > 0 && r != ' ' && spaceIndex >= 0 && x+float32(g.Advance) > wrap {
			f.alignLine(dst[lineStart:spaceIndex], spaceX)
			width = max(width, spaceX)
			for i := spaceIndex; i < len(dst); i++ {
				dst[i].X -= wordX
				dst[i].Y -= step
			}
			lineStart = spaceIndex
			spaceIndex = -1

			x -= wordX
			y -= step
			lines++
		}

		if !g.Empty() {
			x1 := x + float32(g.DX)
			y1 := y + float32(g.DY)
			x2 := x1 + float32(g.Width)
			y2 := y1 - float32(g.Height)
			s1 := float32(g.X) / u
			t1 := float32(g.Y) / v
			s2 := float32(g.X+g.Width) / u
			t2 := float32(g.Y+g.Height) / v

			dst = append(dst,
				Vertex{X: x1, Y: y1, U: s1, V: t1},
				Vertex{X: x1, Y: y2, U: s1, V: t2},
				Vertex{X: x2, Y: y1, U: s2, V: t1},
				Vertex{X: x2, Y: y1, U: s2, V: t1},
				Vertex{X: x1, Y: y2, U: s1, V: t2},
				Vertex{X: x2, Y: y2, U: s2, V: t2},
			)
		}

		if r == ' ' {
			spaceIndex = len(dst)
			spaceX = x
			wordX = x + float32(g.Advance)
		}

		x += float32(g.Advance)
	}

	f.alignLine(dst[lineStart:], x)
	width = max(width, x)
	f.alignBlock(dst[first:], -y)

	return Layout{
		Vertices:    dst,
		Lines:       lines,
		Width:       width,
		Height:      -y,
		AtlasWidth:  aw,
		AtlasHeight: ah,
	}, false, nil
}

// alignLine shifts the vertices of one completed line according to the
// configured alignment. extent is the line's final pen x.
func (f *Font) alignLine(line []Vertex, extent float32) {
	var shift float32
	switch f.config.align {
	case AlignCenter:
		shift = extent / 2
	case AlignRight:
		shift = extent
	default:
		return
	}
	for i := range line {
		line[i].X -= shift
	}
}

// alignBlock shifts every vertex of a finished layout according to the
// configured vertical alignment. height is the block's Height.
func (f *Font) alignBlock(vs []Vertex, height float32) {
	var shift float32
	switch f.config.valign {
	case AlignBottom:
		shift = height
	case AlignMiddle:
		shift = height / 2
	default:
		return
	}
	for i := range vs {
		vs[i].Y += shift
	}
}

// Width returns the pen extent of the widest line of text, including
// kerning and wrapping. Like Layout it may insert glyphs and grow the atlas.
func (f *Font) Width(text string) (int, error) {
	if f.config.normalize {
		text = f.config.form.String(text)
	}
	wrap := f.Wrap()

	var width, x int
	var previous rune
	hasSpace := false
	var spaceX, wordX int
	for _, r := range text {
		if r == '\n' {
			width = max(width, x)
			x = 0
			previous = 0
			hasSpace = false
			continue
		}
		g, err := f.glyph(r)
		if err != nil {
			return 0, err
		}
		x += f.Kerning(previous, r)
		previous = r

		if wrap > 0 && r != ' ' && hasSpace && float32(x+g.Advance) > wrap {
			width = max(width, spaceX)
			x -= wordX
			hasSpace = false
		}
		if r == ' ' {
			hasSpace = true
			spaceX = x
			wordX = x + g.Advance
		}
		x += g.Advance
	}
	return max(width, x), nil
}
