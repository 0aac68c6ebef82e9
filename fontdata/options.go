package fontdata

import "golang.org/x/image/font"

// Kerner computes pair kerning in whole pixels.
type Kerner interface {
	Kerning(left, right rune) int
}

// Option configures a Source.
type Option func(*options)

type options struct {
	hinting font.Hinting
	kerner  Kerner
}

func defaultOptions() options {
	return options{hinting: font.HintingFull}
}

// WithHinting sets the hinting used by ParseOpenType and ParseTrueType.
// Default: font.HintingFull.
func WithHinting(h font.Hinting) Option {
	return func(o *options) {
		o.hinting = h
	}
}

// WithKerner replaces the face's kern table lookup.
func WithKerner(k Kerner) Option {
	return func(o *options) {
		o.kerner = k
	}
}
