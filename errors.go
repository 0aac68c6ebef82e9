package fontatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontatlas package.
var (
	// ErrNilRasterizer is returned when NewFont receives a nil Rasterizer.
	ErrNilRasterizer = errors.New("fontatlas: rasterizer cannot be nil")

	// ErrNilSurface is returned when NewFont receives a nil Surface.
	ErrNilSurface = errors.New("fontatlas: surface cannot be nil")

	// ErrResourceExhausted matches every error caused by the atlas running
	// out of backing storage: surface resize failures and the MaxSize bound.
	ErrResourceExhausted = errors.New("fontatlas: resource exhausted")
)

// errNeedsGrowth signals that the packer cannot place a rectangle in the
// current surface. It never escapes the package.
var errNeedsGrowth = errors.New("fontatlas: atlas needs growth")

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontatlas: invalid config." + e.Field + ": " + e.Reason
}

// SurfaceError is returned when the surface rejects a resize or an upload.
// Resize failures match ErrResourceExhausted with errors.Is.
type SurfaceError struct {
	// Op is "resize" or "upload".
	Op     string
	Width  int
	Height int
	Err    error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("fontatlas: surface %s %dx%d failed: %v", e.Op, e.Width, e.Height, e.Err)
}

// Unwrap returns the error reported by the surface.
func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrResourceExhausted and the failed
// operation was a resize.
func (e *SurfaceError) Is(target error) bool {
	return target == ErrResourceExhausted && e.Op == "resize"
}

// AtlasFullError is returned when growing the atlas would exceed
// AtlasConfig.MaxSize. It matches ErrResourceExhausted with errors.Is.
type AtlasFullError struct {
	// Codepoint is the glyph whose insertion triggered the growth.
	Codepoint rune
	// Width and Height are the atlas dimensions at the time of failure.
	Width  int
	Height int
	// MaxSize is the configured upper bound for either dimension.
	MaxSize int
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("fontatlas: glyph %U does not fit: atlas %dx%d cannot grow past %d",
		e.Codepoint, e.Width, e.Height, e.MaxSize)
}

// Is reports whether target is ErrResourceExhausted.
func (e *AtlasFullError) Is(target error) bool {
	return target == ErrResourceExhausted
}
