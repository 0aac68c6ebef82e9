// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(js && wasm)

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// mockHALTexture stands in for a native texture. Only identity matters.
type mockHALTexture struct {
	hal.Texture
	id int
}

// mockHALDevice records texture creation and destruction.
type mockHALDevice struct {
	failNext  bool
	created   []*hal.TextureDescriptor
	destroyed []hal.Texture
}

func (m *mockHALDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	m.created = append(m.created, desc)
	return &mockHALTexture{id: len(m.created)}, nil
}

func (m *mockHALDevice) DestroyTexture(texture hal.Texture) {
	m.destroyed = append(m.destroyed, texture)
}

type writeCall struct {
	dst    hal.ImageCopyTexture
	data   []byte
	layout hal.ImageDataLayout
	size   hal.Extent3D
}

// mockHALQueue records texture writes.
type mockHALQueue struct {
	fail   error
	writes []writeCall
}

func (m *mockHALQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	if m.fail != nil {
		return m.fail
	}
	m.writes = append(m.writes, writeCall{*dst, append([]byte(nil), data...), *layout, *size})
	return nil
}

func TestNewHALTexture(t *testing.T) {
	dev, q := &mockHALDevice{}, &mockHALQueue{}
	tex, err := NewHALTexture(dev, q, 32, 16)
	if err != nil {
		t.Fatalf("NewHALTexture failed: %v", err)
	}
	if tex.Width() != 32 || tex.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatRG8Unorm {
		t.Errorf("Format() = %v, want RG8Unorm", tex.Format())
	}
	if len(dev.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(dev.created))
	}
	desc := dev.created[0]
	if desc.Format != gputypes.TextureFormatRG8Unorm {
		t.Errorf("descriptor format = %v, want RG8Unorm", desc.Format)
	}
	if desc.Size.Width != 32 || desc.Size.Height != 16 || desc.Size.DepthOrArrayLayers != 1 {
		t.Errorf("descriptor size = %+v, want 32x16x1", desc.Size)
	}
	if desc.Usage&gputypes.TextureUsageCopyDst == 0 || desc.Usage&gputypes.TextureUsageTextureBinding == 0 {
		t.Errorf("descriptor usage = %v, want CopyDst|TextureBinding", desc.Usage)
	}

	// The new texture is cleared with one full write.
	if len(q.writes) != 1 {
		t.Fatalf("WriteTexture called %d times, want 1", len(q.writes))
	}
	cleared := q.writes[0]
	if len(cleared.data) != 32*16*2 || cleared.layout.BytesPerRow != 64 {
		t.Errorf("clear write = %d bytes, %d per row; want %d, 64", len(cleared.data), cleared.layout.BytesPerRow, 32*16*2)
	}
	for i, b := range cleared.data {
		if b != 0 {
			t.Fatalf("clear byte %d = %d, want 0", i, b)
		}
	}
}

func TestNewHALTextureErrors(t *testing.T) {
	if _, err := NewHALTexture(nil, &mockHALQueue{}, 8, 8); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil device error = %v, want ErrNilDevice", err)
	}
	if _, err := NewHALTexture(&mockHALDevice{}, nil, 8, 8); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil queue error = %v, want ErrNilDevice", err)
	}
	if _, err := NewHALTexture(&mockHALDevice{}, &mockHALQueue{}, 8, MaxDimension+1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized error = %v, want ErrTooLarge", err)
	}
	if _, err := NewHALTexture(&mockHALDevice{failNext: true}, &mockHALQueue{}, 8, 8); err == nil {
		t.Error("expected error when CreateTexture fails")
	}

	dev := &mockHALDevice{}
	if _, err := NewHALTexture(dev, &mockHALQueue{fail: errors.New("queue lost")}, 8, 8); err == nil {
		t.Fatal("expected error when the clear write fails")
	}
	if len(dev.destroyed) != 1 {
		t.Errorf("destroyed %d textures after failed clear, want 1", len(dev.destroyed))
	}
}

func TestHALTextureResize(t *testing.T) {
	dev := &mockHALDevice{}
	tex, _ := NewHALTexture(dev, &mockHALQueue{}, 8, 8)
	old := tex.HAL()

	if err := tex.Resize(16, 8); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if len(dev.created) != 2 {
		t.Fatalf("created %d textures, want 2", len(dev.created))
	}
	if dev.created[1].Size.Width != 16 || dev.created[1].Size.Height != 8 {
		t.Errorf("resized descriptor = %+v, want 16x8", dev.created[1].Size)
	}
	if len(dev.destroyed) != 1 || dev.destroyed[0] != old {
		t.Error("old texture was not destroyed")
	}
	if tex.HAL() == old {
		t.Error("HAL() still returns the old texture")
	}
	if tex.Width() != 16 || tex.Height() != 8 {
		t.Errorf("size = %dx%d, want 16x8", tex.Width(), tex.Height())
	}
}

func TestHALTextureResizeFailureKeepsState(t *testing.T) {
	dev := &mockHALDevice{}
	tex, _ := NewHALTexture(dev, &mockHALQueue{}, 8, 8)
	old := tex.HAL()

	dev.failNext = true
	if err := tex.Resize(16, 8); err == nil {
		t.Fatal("expected Resize error")
	}
	if tex.HAL() != old || len(dev.destroyed) != 0 {
		t.Error("texture replaced despite failure")
	}
	if tex.Width() != 8 {
		t.Errorf("Width() = %d after failed resize, want 8", tex.Width())
	}
	if err := tex.Resize(MaxDimension*2, 8); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized Resize error = %v, want ErrTooLarge", err)
	}
}

func TestHALTextureUploadRegion(t *testing.T) {
	q := &mockHALQueue{}
	tex, _ := NewHALTexture(&mockHALDevice{}, q, 8, 8)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if err := tex.UploadRegion(5, 2, 3, 2, data); err != nil {
		t.Fatalf("UploadRegion failed: %v", err)
	}
	if len(q.writes) != 2 {
		t.Fatalf("WriteTexture called %d times, want 2", len(q.writes))
	}
	w := q.writes[1]
	if w.dst.Texture != tex.HAL() {
		t.Error("write targets the wrong texture")
	}
	if w.dst.Origin.X != 5 || w.dst.Origin.Y != 2 || w.dst.Origin.Z != 0 {
		t.Errorf("origin = %+v, want (5,2,0)", w.dst.Origin)
	}
	if w.size.Width != 3 || w.size.Height != 2 || w.size.DepthOrArrayLayers != 1 {
		t.Errorf("size = %+v, want 3x2x1", w.size)
	}
	if w.layout.BytesPerRow != 6 || w.layout.RowsPerImage != 2 {
		t.Errorf("layout = %+v, want 6 bytes per row, 2 rows", w.layout)
	}
	if string(w.data) != string(data) {
		t.Errorf("data = %v, want %v", w.data, data)
	}
}

func TestHALTextureUploadValidates(t *testing.T) {
	q := &mockHALQueue{}
	tex, _ := NewHALTexture(&mockHALDevice{}, q, 4, 4)
	if err := tex.UploadRegion(3, 3, 2, 2, make([]byte, 8)); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("error = %v, want ErrRegionOutOfBounds", err)
	}
	if err := tex.UploadRegion(0, 0, 2, 2, make([]byte, 3)); !errors.Is(err, ErrDataSize) {
		t.Errorf("error = %v, want ErrDataSize", err)
	}
	if err := tex.UploadRegion(1, 1, 0, 0, nil); err != nil {
		t.Errorf("empty upload error = %v", err)
	}
	if len(q.writes) != 1 {
		t.Errorf("WriteTexture called %d times, want only the clear", len(q.writes))
	}

	q.fail = errors.New("queue lost")
	if err := tex.UploadRegion(0, 0, 1, 1, []byte{1, 2}); !errors.Is(err, q.fail) {
		t.Errorf("error = %v, want wrapped queue error", err)
	}
}

func TestHALTextureClose(t *testing.T) {
	dev := &mockHALDevice{}
	tex, _ := NewHALTexture(dev, &mockHALQueue{}, 4, 4)
	native := tex.HAL()

	if err := tex.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(dev.destroyed) != 1 || dev.destroyed[0] != native {
		t.Error("texture not destroyed on Close")
	}
	if err := tex.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	if len(dev.destroyed) != 1 {
		t.Error("second Close destroyed again")
	}
	if tex.HAL() != nil {
		t.Error("HAL() should be nil after Close")
	}
	if err := tex.Resize(8, 8); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize after Close error = %v, want ErrClosed", err)
	}
	if err := tex.UploadRegion(0, 0, 1, 1, []byte{0, 0}); !errors.Is(err, ErrClosed) {
		t.Errorf("UploadRegion after Close error = %v, want ErrClosed", err)
	}
}

func TestHALTextureNoopBackend(t *testing.T) {
	tex, err := NewHALTexture(&noop.Device{}, &noop.Queue{}, 64, 64)
	if err != nil {
		t.Fatalf("NewHALTexture failed: %v", err)
	}
	defer tex.Close()

	if err := tex.UploadRegion(10, 10, 2, 2, make([]byte, 8)); err != nil {
		t.Errorf("UploadRegion failed: %v", err)
	}
	if err := tex.Resize(128, 64); err != nil {
		t.Errorf("Resize failed: %v", err)
	}
	if tex.HAL() == nil {
		t.Error("HAL() = nil on open texture")
	}
}
