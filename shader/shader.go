// Package shader holds the default SDF text shaders and their uniform
// contract.
//
// Both variants read the vertex layout produced by package quad
// (position, tex_coord, color at locations 0, 1 and 2) and bind a uniform
// buffer, the atlas texture and a filtering sampler in group 0.
package shader

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/sdftext/internal/cache"
	"github.com/gogpu/sdftext/internal/logging"
)

//go:embed sdf_text.wgsl
var fullSource string

//go:embed sdf_text_minimal.wgsl
var minimalSource string

// ErrCompile is returned when WGSL source fails to compile.
var ErrCompile = errors.New("shader: compile failed")

// Entry point names shared by both variants.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// FullSource returns the WGSL source of the full shader.
func FullSource() string { return fullSource }

// MinimalSource returns the WGSL source of the minimal shader.
func MinimalSource() string { return minimalSource }

// Program is a compiled shader ready to be turned into a shader module by
// the rendering backend.
type Program struct {
	Label  string
	Source string
	SPIRV  []uint32
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not a multiple of 4", ErrCompile, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// NewProgram compiles src into a labeled program.
func NewProgram(label, src string) (*Program, error) {
	words, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return &Program{Label: label, Source: src, SPIRV: words}, nil
}

var defaults = cache.New[bool, *Program]()

// Default returns the compiled default program, minimal or full. Each
// variant compiles once per process; a failed compile is logged and
// retried on the next call.
func Default(minimal bool) (*Program, error) {
	p, _, err := defaults.GetOrCreate(minimal, func() (*Program, error) {
		if minimal {
			return NewProgram("sdf_text_minimal", minimalSource)
		}
		return NewProgram("sdf_text", fullSource)
	})
	if err != nil {
		logging.Logger().Error("shader: default program unavailable", "minimal", minimal, "err", err)
		return nil, err
	}
	return p, nil
}

// BindGroupLayout returns the group 0 layout of the default shaders:
//
//	binding 0: SdfUniforms (uniform buffer, vertex+fragment)
//	binding 1: atlas texture (texture_2d, fragment)
//	binding 2: sampler (fragment)
func BindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    2,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}
