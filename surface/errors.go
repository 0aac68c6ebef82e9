// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Sentinel errors for surface package.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrTooLarge is returned when a dimension exceeds MaxDimension.
	ErrTooLarge = errors.New("surface: dimensions exceed maximum")

	// ErrRegionOutOfBounds is returned when an upload region is outside the surface.
	ErrRegionOutOfBounds = errors.New("surface: region is outside surface bounds")

	// ErrDataSize is returned when upload data does not match the region size.
	ErrDataSize = errors.New("surface: data size does not match region")

	// ErrClosed is returned when operating on a closed surface.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrNilCreator is returned when NewTexture receives a nil TextureCreator.
	ErrNilCreator = errors.New("surface: TextureCreator cannot be nil")

	// ErrNilDevice is returned when NewHALTexture receives a nil device or queue.
	ErrNilDevice = errors.New("surface: HAL device and queue cannot be nil")

	// ErrNotUpdatable is returned when the GPU texture accepts neither
	// region nor full uploads.
	ErrNotUpdatable = errors.New("surface: texture does not support uploads")
)
