// Package shader provides the WGSL program that draws fontatlas layouts.
//
// Vertices are fontatlas.Vertex values (position vec3, uv vec2) and the
// atlas is the RGBA texture kept by surface.Texture. Bindings in group 0:
//
//	0: uniform { transform: mat4x4<f32>, color: vec4<f32> }
//	1: atlas texture_2d<f32>
//	2: sampler
package shader

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

//go:embed atlas.wgsl
var atlasWGSL string

// Entry points in Source.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	uv       (vec2<f32>) = 8 bytes  (location 1)
const VertexStride = 20

// UniformSize is the byte size of the uniform buffer:
// transform (mat4x4<f32>) = 64 bytes + color (vec4<f32>) = 16 bytes.
const UniformSize = 80

// TextureFormat is the format of the atlas texture the shader samples.
const TextureFormat = gputypes.TextureFormatRGBA8Unorm

var (
	compileOnce sync.Once
	spirv       []byte
	compileErr  error
)

// Source returns the WGSL source.
func Source() string {
	return atlasWGSL
}

// Compile compiles Source to SPIR-V. The result is computed once and
// shared; callers must not modify it.
func Compile() ([]byte, error) {
	compileOnce.Do(func() {
		spirv, compileErr = naga.Compile(atlasWGSL)
		if compileErr != nil {
			compileErr = fmt.Errorf("shader: failed to compile atlas shader: %w", compileErr)
		}
	})
	return spirv, compileErr
}

// Words returns the compiled SPIR-V as little-endian 32-bit words.
func Words() ([]uint32, error) {
	b, err := Compile()
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words, nil
}
