// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Pixmap is a CPU surface storing two 8-bit channels per pixel.
//
// Example:
//
//	pm, _ := surface.NewPixmap(256, 256)
//	_ = pm.UploadRegion(1, 1, w, h, glyphPix)
//	img := pm.Image() // for inspection or PNG export
type Pixmap struct {
	width  int
	height int
	pix    []byte
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// Width returns the pixmap width.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the pixmap height.
func (p *Pixmap) Height() int {
	return p.height
}

// Resize allocates new zeroed storage. Previous pixels are discarded.
func (p *Pixmap) Resize(width, height int) error {
	if err := validateDimensions(width, height); err != nil {
		return err
	}
	p.width = width
	p.height = height
	p.pix = make([]byte, width*height*BytesPerPixel)
	return nil
}

// UploadRegion copies a w*h block of two-channel pixels to (x, y).
func (p *Pixmap) UploadRegion(x, y, w, h int, data []byte) error {
	if err := validateRegion(p.width, p.height, x, y, w, h, data); err != nil {
		return err
	}
	rowBytes := w * BytesPerPixel
	for row := 0; row < h; row++ {
		dst := ((y+row)*p.width + x) * BytesPerPixel
		src := row * rowBytes
		copy(p.pix[dst:dst+rowBytes], data[src:src+rowBytes])
	}
	return nil
}

// Pix returns the raw pixel buffer (row-major, BytesPerPixel per pixel).
// The slice aliases the pixmap storage until the next Resize.
func (p *Pixmap) Pix() []byte {
	return p.pix
}

// At returns both channels of the pixel at (x, y).
// Out-of-range coordinates return zeros.
func (p *Pixmap) At(x, y int) (c0, c1 byte) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0, 0
	}
	off := (y*p.width + x) * BytesPerPixel
	return p.pix[off], p.pix[off+1]
}

// Format returns gputypes.TextureFormatRG8Unorm.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRG8Unorm
}

// Image returns an NRGBA copy of the pixmap using the RRRG swizzle:
// coverage goes to red, green and blue; the secondary channel becomes alpha.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c0, c1 := p.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c0, G: c0, B: c0, A: c1})
		}
	}
	return img
}

// RGBA expands the whole pixmap to RGBA bytes using the RRRG swizzle.
func (p *Pixmap) RGBA() []byte {
	return expandRGBA(p.pix, p.width, 0, 0, p.width, p.height)
}

// regionRGBA expands a sub-rectangle to densely packed RGBA bytes.
func (p *Pixmap) regionRGBA(x, y, w, h int) []byte {
	return expandRGBA(p.pix, p.width, x, y, w, h)
}

// expandRGBA converts a region of a two-channel buffer with the given
// stride (in pixels) into RGBA.
func expandRGBA(pix []byte, stride, x, y, w, h int) []byte {
	out := make([]byte, w*h*4)
	i := 0
	for row := 0; row < h; row++ {
		off := ((y+row)*stride + x) * BytesPerPixel
		for col := 0; col < w; col++ {
			c0, c1 := pix[off], pix[off+1]
			out[i] = c0
			out[i+1] = c0
			out[i+2] = c0
			out[i+3] = c1
			i += 4
			off += BytesPerPixel
		}
	}
	return out
}

// Verify Pixmap implements the surface interfaces.
var _ Surface = (*Pixmap)(nil)
var _ FormatSurface = (*Pixmap)(nil)
