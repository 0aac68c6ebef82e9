// Command atlasdemo lays out a string with a fontatlas Font and saves the
// resulting glyph atlas as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/fontdata"
	"github.com/gogpu/fontatlas/surface"
)

func main() {
	var (
		size     = flag.Int("size", 32, "font size in pixels")
		text     = flag.String("text", "The quick brown fox\njumps over the lazy dog", "text to lay out")
		fontPath = flag.String("font", "", "TrueType/OpenType file (default: Go Regular)")
		output   = flag.String("output", "atlas.png", "output file")
		freetype = flag.Bool("freetype", false, "rasterize with golang/freetype instead of x/image/opentype")
		shaping  = flag.Bool("shaping", false, "take kerning from HarfBuzz shaping")
		wrap     = flag.Float64("wrap", 0, "wrap lines wider than this many pixels (0 disables)")
		verbose  = flag.Bool("v", false, "log atlas growth")
	)
	flag.Parse()

	if *verbose {
		fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data := goregular.TTF
	if *fontPath != "" {
		var err error
		if data, err = os.ReadFile(*fontPath); err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}

	src, err := newSource(data, *size, *freetype, *shaping)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() {
		_ = src.Close()
	}()

	pm, err := surface.NewPixmap(8, 8)
	if err != nil {
		log.Fatalf("Failed to create pixmap: %v", err)
	}
	font, err := fontatlas.NewFont(src, pm,
		fontatlas.WithNormalization(norm.NFC),
		fontatlas.WithWrap(float32(*wrap)),
		fontatlas.WithVerticalAlign(fontatlas.AlignMiddle),
	)
	if err != nil {
		log.Fatalf("Failed to create font: %v", err)
	}

	layout, err := font.Layout(*text)
	if err != nil {
		log.Fatalf("Failed to lay out text: %v", err)
	}

	if err := savePNG(*output, pm); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	st := font.Stats()
	log.Printf("Atlas saved to %s (%dx%d, %d glyphs, %d growths)\n",
		*output, pm.Width(), pm.Height(), font.GlyphCount(), st.Growths)
	log.Printf("Layout: %d vertices, %d lines, %.0fx%.0f\n",
		len(layout.Vertices), layout.Lines, layout.Width, layout.Height)
	log.Printf("Caches: glyph hit rate %.0f%%, kerning hit rate %.0f%%\n",
		100*st.GlyphHitRate, 100*st.KerningHitRate)
}

func newSource(data []byte, size int, freetype, shaping bool) (*fontdata.Source, error) {
	var opts []fontdata.Option
	if shaping {
		k, err := fontdata.NewShapingKerner(data, size)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fontdata.WithKerner(k))
	}
	if freetype {
		return fontdata.ParseTrueType(data, size, opts...)
	}
	return fontdata.ParseOpenType(data, size, opts...)
}

func savePNG(path string, pm *surface.Pixmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pm.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
