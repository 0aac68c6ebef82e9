// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides two-channel pixel surfaces that back a glyph atlas.
//
// A surface stores two 8-bit channels per pixel: glyph coverage and a
// secondary channel (alpha, subpixel or sign data, depending on the
// rasterizer). The atlas only ever talks to a surface through four calls:
// Width, Height, Resize and UploadRegion.
//
// # Surface Types
//
//   - Pixmap: CPU memory, RG8 layout. Used directly for software rendering,
//     tests, and as the shadow copy of GPU surfaces.
//   - Texture: a GPU texture created through gpucontext.TextureCreator.
//     Pixels are expanded to RGBA with an RRRG swizzle on upload.
//   - HALTexture: a native RG8Unorm texture on a wgpu hal device. Regions
//     are written straight to the queue, with no CPU copy.
//
// # Resize Semantics
//
// Resize always allocates fresh storage. Previous contents are NOT kept;
// the owner is expected to upload every region again after a resize.
//
// # Usage
//
//	pm, err := surface.NewPixmap(128, 128)
//	if err != nil {
//	    return err
//	}
//	font, err := fontatlas.NewFont(src, pm)
//
// For GPU rendering, obtain a TextureCreator from the host application:
//
//	tex, err := surface.NewTexture(drawer.TextureCreator(), 128, 128)
//	font, err := fontatlas.NewFont(src, tex)
//	...
//	drawer.DrawTexture(tex.GPUTexture(), 0, 0)
package surface
