package font

import (
	"fmt"
	"math"
)

// ReferenceSize is the em size of glyph space.
//
// Outlines are normalized to a 2048 units-per-em grid expressed in 26.6
// fixed point, so one em spans 2048/64 = 32 glyph-space units regardless
// of the source font's design grid. A glyph drawn at ReferenceSize points
// maps glyph space to pixels one to one.
const ReferenceSize = 32.0

// GlyphScale returns the factor that converts design units of a font with
// the given grid size into glyph space.
func GlyphScale(unitsPerEm int) float64 {
	if unitsPerEm <= 0 {
		return 0
	}
	return 2048.0 / float64(unitsPerEm) / 64.0
}

// Option configures Font creation.
type Option func(*fontConfig)

// fontConfig holds configuration for Font.
type fontConfig struct {
	name string
}

// WithName overrides the display name, which defaults to the face's full name.
func WithName(name string) Option {
	return func(c *fontConfig) {
		c.name = name
	}
}

// Font is a face at a point size.
//
// Font is immutable after creation and safe for concurrent use if the
// underlying Face is.
type Font struct {
	face    Face
	size    float64
	name    string
	metrics FaceMetrics
	scale   float64
}

// New creates a font handle for face at size points.
func New(face Face, size float64, opts ...Option) (*Font, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	cfg := fontConfig{name: face.FullName()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := face.Metrics()
	return &Font{
		face:    face,
		size:    size,
		name:    cfg.name,
		metrics: m,
		scale:   GlyphScale(face.UnitsPerEm()),
	}, nil
}

// Face returns the underlying face.
func (f *Font) Face() Face { return f.face }

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// Name returns the display name.
func (f *Font) Name() string { return f.name }

// GlyphScale returns the design unit to glyph space factor.
func (f *Font) GlyphScale() float64 { return f.scale }

// SizeScale returns Size / ReferenceSize, the factor from glyph space to
// pixels at this font's size.
func (f *Font) SizeScale() float64 { return f.size / ReferenceSize }

// Ascent returns the distance from baseline to ascender in glyph space.
func (f *Font) Ascent() float64 {
	return f.scale * math.Abs(float64(f.metrics.Ascender))
}

// Descent returns the distance from baseline to descender in glyph space,
// as a positive value.
func (f *Font) Descent() float64 {
	return f.scale * math.Abs(float64(f.metrics.Descender))
}

// Height returns the line height in glyph space.
func (f *Font) Height() float64 {
	return f.scale * float64(f.metrics.LineHeight)
}

// Leading returns the gap between lines in glyph space:
// Height - (Ascent + Descent).
func (f *Font) Leading() float64 {
	return f.Height() - (f.Ascent() + f.Descent())
}

// Glyph maps a code point to its glyph.
func (f *Font) Glyph(r rune) GlyphID {
	return f.face.CharIndex(r)
}

// Glyphs maps each code point of s to its glyph.
func (f *Font) Glyphs(s string) []GlyphID {
	glyphs := make([]GlyphID, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, f.face.CharIndex(r))
	}
	return glyphs
}

// Kerning returns the kerning between two code points in glyph space.
// Faces without kerning report zero.
func (f *Font) Kerning(left, right rune) float64 {
	k, ok := f.face.(Kerner)
	if !ok {
		return 0
	}
	v, err := k.Kerning(f.face.CharIndex(left), f.face.CharIndex(right))
	if err != nil {
		return 0
	}
	return v * f.scale
}

// WhitespaceWidth returns the advances of the space and tab characters in
// glyph space.
func (f *Font) WhitespaceWidth() (space, tab float64) {
	if x, _, err := f.face.GlyphAdvance(f.face.CharIndex(' ')); err == nil {
		space = x * f.scale
	}
	if x, _, err := f.face.GlyphAdvance(f.face.CharIndex('\t')); err == nil {
		tab = x * f.scale
	}
	return space, tab
}
