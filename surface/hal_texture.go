// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(js && wasm)

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// HALDevice is the part of hal.Device that HALTexture uses.
type HALDevice interface {
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(texture hal.Texture)
}

// HALQueue is the part of hal.Queue that HALTexture uses.
type HALQueue interface {
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error
}

// HALTexture is a surface stored directly in a native RG8Unorm texture.
//
// Unlike Texture it keeps no CPU copy: uploads go straight to the queue
// with the region origin, and the two channels land in the texture as is.
type HALTexture struct {
	device HALDevice
	queue  HALQueue
	tex    hal.Texture
	label  string
	width  int
	height int
	closed bool
}

// NewHALTexture creates a cleared width x height atlas texture on device.
func NewHALTexture(device HALDevice, queue HALQueue, width, height int) (*HALTexture, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	t := &HALTexture{device: device, queue: queue, label: "fontatlas"}
	tex, err := t.create(width, height)
	if err != nil {
		return nil, err
	}
	t.tex, t.width, t.height = tex, width, height
	return t, nil
}

// create allocates a texture and zeroes it so padding gaps sample as empty.
func (t *HALTexture) create(width, height int) (hal.Texture, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         t.label,
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRG8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("surface: CreateTexture %dx%d failed: %w", width, height, err)
	}
	if err := t.write(tex, 0, 0, width, height, make([]byte, width*height*BytesPerPixel)); err != nil {
		t.device.DestroyTexture(tex)
		return nil, err
	}
	return tex, nil
}

func (t *HALTexture) write(tex hal.Texture, x, y, w, h int, data []byte) error {
	err := t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture: tex,
			Origin:  hal.Origin3D{X: uint32(x), Y: uint32(y)},
			Aspect:  gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{BytesPerRow: uint32(w * BytesPerPixel), RowsPerImage: uint32(h)},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("surface: WriteTexture (%d,%d %dx%d) failed: %w", x, y, w, h, err)
	}
	return nil
}

// Width returns the texture width.
func (t *HALTexture) Width() int { return t.width }

// Height returns the texture height.
func (t *HALTexture) Height() int { return t.height }

// Resize creates a new cleared texture and destroys the old one.
// On failure the existing texture is kept.
func (t *HALTexture) Resize(width, height int) error {
	if t.closed {
		return ErrClosed
	}
	tex, err := t.create(width, height)
	if err != nil {
		return err
	}
	t.device.DestroyTexture(t.tex)
	t.tex, t.width, t.height = tex, width, height

	slogger().Debug("surface: hal texture resized", "width", width, "height", height)
	return nil
}

// UploadRegion writes two-channel pixels at (x, y).
func (t *HALTexture) UploadRegion(x, y, w, h int, data []byte) error {
	if t.closed {
		return ErrClosed
	}
	if err := validateRegion(t.width, t.height, x, y, w, h, data); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}
	return t.write(t.tex, x, y, w, h, data)
}

// HAL returns the current native texture. It changes after every Resize.
func (t *HALTexture) HAL() hal.Texture {
	if t.closed {
		return nil
	}
	return t.tex
}

// Format returns gputypes.TextureFormatRG8Unorm.
func (t *HALTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRG8Unorm
}

// Close destroys the native texture. Close is idempotent.
func (t *HALTexture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.device.DestroyTexture(t.tex)
	t.tex = nil
	return nil
}

var _ Surface = (*HALTexture)(nil)
var _ FormatSurface = (*HALTexture)(nil)
