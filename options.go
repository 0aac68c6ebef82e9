package fontatlas

import "golang.org/x/text/unicode/norm"

// Option configures Font creation.
// Use functional options to customize Font behavior.
//
// Example:
//
//	font, err := fontatlas.NewFont(src, pm,
//	    fontatlas.WithLineHeight(1.2),
//	    fontatlas.WithAlign(fontatlas.AlignLeft),
//	)
type Option func(*fontConfig)

// fontConfig holds optional configuration for Font creation.
type fontConfig struct {
	atlas      AtlasConfig
	lineHeight float64
	align      Align
	valign     VerticalAlign
	wrap       float32

	normalize bool
	form      norm.Form
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		atlas:      DefaultAtlasConfig(),
		lineHeight: 1,
		align:      AlignCenter,
	}
}

// WithAtlasConfig replaces the atlas configuration.
// The configuration is validated by NewFont.
func WithAtlasConfig(c AtlasConfig) Option {
	return func(o *fontConfig) {
		o.atlas = c
	}
}

// WithLineHeight sets the line spacing multiplier applied to the nominal
// font size on every line break. Default: 1.
func WithLineHeight(h float64) Option {
	return func(o *fontConfig) {
		o.lineHeight = h
	}
}

// WithAlign sets horizontal alignment of laid out lines. Default: AlignCenter.
func WithAlign(a Align) Option {
	return func(o *fontConfig) {
		o.align = a
	}
}

// WithVerticalAlign sets vertical placement of the laid out block.
// Default: AlignTop.
func WithVerticalAlign(v VerticalAlign) Option {
	return func(o *fontConfig) {
		o.valign = v
	}
}

// WithWrap sets the line width in pixels past which Layout breaks lines at
// the last space. Zero or negative disables wrapping. Default: 0.
func WithWrap(width float32) Option {
	return func(o *fontConfig) {
		o.wrap = width
	}
}

// WithNormalization normalizes text with the given Unicode form before
// layout. NFC folds combining sequences into precomposed codepoints so that
// fonts without mark positioning still find a glyph.
func WithNormalization(form norm.Form) Option {
	return func(o *fontConfig) {
		o.normalize = true
		o.form = form
	}
}
