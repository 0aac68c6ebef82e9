package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/surface"
)

// AtlasConfig holds atlas configuration.
type AtlasConfig struct {
	// InitialSize is the base width = height the atlas starts from before
	// initial sizing. Must be a power of 2. Default: 128
	InitialSize int

	// Padding is the gap kept between glyphs and around the atlas border.
	// Default: 1
	Padding int

	// MaxSize bounds both atlas dimensions. Growth past it fails with
	// *AtlasFullError. Must be a power of 2 no larger than
	// surface.MaxDimension. Default: 8192
	MaxSize int
}

// DefaultAtlasConfig returns default configuration.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{
		InitialSize: 128,
		Padding:     1,
		MaxSize:     8192,
	}
}

// Validate checks if the configuration is valid.
func (c *AtlasConfig) Validate() error {
	if c.InitialSize < 8 {
		return &ConfigError{Field: "InitialSize", Reason: "must be at least 8"}
	}
	if c.InitialSize&(c.InitialSize-1) != 0 {
		return &ConfigError{Field: "InitialSize", Reason: "must be power of 2"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.InitialSize/4 {
		return &ConfigError{Field: "Padding", Reason: "must be less than a quarter of InitialSize"}
	}
	if c.MaxSize < c.InitialSize {
		return &ConfigError{Field: "MaxSize", Reason: "must be at least InitialSize"}
	}
	if c.MaxSize&(c.MaxSize-1) != 0 {
		return &ConfigError{Field: "MaxSize", Reason: "must be power of 2"}
	}
	if c.MaxSize > surface.MaxDimension {
		return &ConfigError{Field: "MaxSize", Reason: fmt.Sprintf("must be at most %d", surface.MaxDimension)}
	}
	return nil
}
