// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Texture is a GPU-backed surface.
//
// It keeps a CPU shadow Pixmap with the two-channel data and mirrors every
// upload into a gpucontext.Texture. The GPU side holds RGBA with the RRRG
// swizzle already applied, because gpucontext only creates RGBA textures.
//
// Resize creates a brand new GPU texture. The previous texture is destroyed
// if it exposes a Destroy method.
type Texture struct {
	creator gpucontext.TextureCreator
	tex     gpucontext.Texture
	shadow  *Pixmap
	closed  bool

	// Upload counters, useful for diagnostics.
	regionUploads int
	fullUploads   int
}

// destroyer is implemented by GPU textures that release resources explicitly.
type destroyer interface {
	Destroy()
}

// NewTexture creates a GPU-backed surface with the given dimensions.
func NewTexture(creator gpucontext.TextureCreator, width, height int) (*Texture, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	shadow, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	tex, err := creator.NewTextureFromRGBA(width, height, make([]byte, width*height*4))
	if err != nil {
		return nil, fmt.Errorf("surface: NewTextureFromRGBA %dx%d failed: %w", width, height, err)
	}
	return &Texture{
		creator: creator,
		tex:     tex,
		shadow:  shadow,
	}, nil
}

// Width returns the texture width.
func (t *Texture) Width() int {
	return t.shadow.Width()
}

// Height returns the texture height.
func (t *Texture) Height() int {
	return t.shadow.Height()
}

// Resize replaces the GPU texture with a new, cleared one.
// On failure the existing texture and shadow are left untouched.
func (t *Texture) Resize(width, height int) error {
	if t.closed {
		return ErrClosed
	}
	if err := validateDimensions(width, height); err != nil {
		return err
	}

	tex, err := t.creator.NewTextureFromRGBA(width, height, make([]byte, width*height*4))
	if err != nil {
		return fmt.Errorf("surface: NewTextureFromRGBA %dx%d failed: %w", width, height, err)
	}
	if err := t.shadow.Resize(width, height); err != nil {
		destroy(tex)
		return err
	}

	destroy(t.tex)
	t.tex = tex

	slogger().Debug("surface: texture resized", "width", width, "height", height)
	return nil
}

// UploadRegion writes two-channel pixels to the shadow and pushes them to
// the GPU, as a partial upload when the texture supports it.
func (t *Texture) UploadRegion(x, y, w, h int, data []byte) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.shadow.UploadRegion(x, y, w, h, data); err != nil {
		return err
	}

	if ru, ok := t.tex.(gpucontext.TextureRegionUpdater); ok {
		if err := ru.UpdateRegion(x, y, w, h, t.shadow.regionRGBA(x, y, w, h)); err != nil {
			return fmt.Errorf("surface: UpdateRegion failed: %w", err)
		}
		t.regionUploads++
		return nil
	}
	if u, ok := t.tex.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(t.shadow.RGBA()); err != nil {
			return fmt.Errorf("surface: UpdateData failed: %w", err)
		}
		t.fullUploads++
		return nil
	}
	return ErrNotUpdatable
}

// GPUTexture returns the current GPU texture. The value changes after every
// Resize, so callers should fetch it again before drawing.
func (t *Texture) GPUTexture() gpucontext.Texture {
	if t.closed {
		return nil
	}
	return t.tex
}

// Shadow returns the CPU copy of the texture contents.
func (t *Texture) Shadow() *Pixmap {
	return t.shadow
}

// Format returns gputypes.TextureFormatRGBA8Unorm, the layout of the GPU side.
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Close destroys the GPU texture. Close is idempotent.
func (t *Texture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	destroy(t.tex)
	t.tex = nil
	return nil
}

// destroy releases tex if it supports explicit destruction.
func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(destroyer); ok {
		d.Destroy()
	}
}

// Verify Texture implements the surface interfaces.
var _ Surface = (*Texture)(nil)
var _ FormatSurface = (*Texture)(nil)
