// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// BytesPerPixel is the number of bytes per pixel in upload data:
// one coverage byte followed by one secondary byte.
const BytesPerPixel = 2

// MaxDimension is the largest width or height a surface accepts.
// It matches the common GPU 2D texture limit.
const MaxDimension = 16384

// Surface is a resizable two-channel pixel store.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize reallocates the backing storage at the new dimensions.
	// Existing content is discarded.
	Resize(width, height int) error

	// UploadRegion writes a w*h sub-rectangle at (x, y).
	// data must be exactly w * h * BytesPerPixel bytes, rows densely packed.
	UploadRegion(x, y, w, h int, data []byte) error
}

// FormatSurface is an optional interface reporting the GPU texture format
// that matches the surface's storage.
type FormatSurface interface {
	Surface

	// Format returns the texture format of the backing storage.
	Format() gputypes.TextureFormat
}

// validateDimensions checks a requested surface size.
func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > MaxDimension || height > MaxDimension {
		return ErrTooLarge
	}
	return nil
}

// validateRegion checks an upload against surface bounds and data length.
func validateRegion(sw, sh, x, y, w, h int, data []byte) error {
	if w < 0 || h < 0 || x < 0 || y < 0 || x+w > sw || y+h > sh {
		return ErrRegionOutOfBounds
	}
	if len(data) != w*h*BytesPerPixel {
		return ErrDataSize
	}
	return nil
}
