package shader

import (
	"encoding/binary"
	"math"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
)

// UniformSize is the size of the SdfUniforms buffer in bytes.
const UniformSize = 32

// DefaultGamma is the gamma applied when premultiplying.
const DefaultGamma = 2.2

// Uniforms are the values of the SdfUniforms buffer.
type Uniforms struct {
	// FgColor is the foreground color, multiplied with each vertex color.
	FgColor colorful.Color
	// Alpha is the foreground opacity, 0.0 to 1.0.
	Alpha float64
	// Premultiply selects premultiplied, gamma corrected output.
	Premultiply bool
	Gamma       float64
	// Viewport is the render target size in pixels.
	Viewport r2.Point
}

// NewUniforms returns uniforms for an opaque foreground color.
func NewUniforms(fg colorful.Color, premultiply bool, gamma float64, viewport r2.Point) Uniforms {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	return Uniforms{
		FgColor:     fg,
		Alpha:       1,
		Premultiply: premultiply,
		Gamma:       gamma,
		Viewport:    viewport,
	}
}

// Bytes encodes u with the WGSL uniform layout:
//
//	offset  0: fg_color    vec4<f32>
//	offset 16: premultiply f32
//	offset 20: gamma       f32
//	offset 24: viewport    vec2<f32>
func (u Uniforms) Bytes() []byte {
	fg := u.FgColor.Clamped()
	premultiply := float32(0)
	if u.Premultiply {
		premultiply = 1
	}
	vals := [8]float32{
		float32(fg.R), float32(fg.G), float32(fg.B), float32(clamp01(u.Alpha)),
		premultiply, float32(u.Gamma),
		float32(u.Viewport.X), float32(u.Viewport.Y),
	}

	buf := make([]byte, UniformSize)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
