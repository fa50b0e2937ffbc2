package sdftext

import (
	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/outline"
	"github.com/gogpu/sdftext/quad"
	"github.com/gogpu/sdftext/shader"
)

// Errors returned by sdftext and its sub-packages. Test with errors.Is.
var (
	// ErrNotFound is returned when a font file or registry entry is missing.
	ErrNotFound = font.ErrNotFound

	// ErrInvalidGlyph is returned when a glyph outline cannot be decoded.
	ErrInvalidGlyph = outline.ErrInvalidGlyph

	// ErrArgumentMismatch is returned when per-glyph colors do not match
	// the glyph count.
	ErrArgumentMismatch = quad.ErrArgumentMismatch

	// ErrCompile is returned when a shader fails to compile.
	ErrCompile = shader.ErrCompile

	// ErrTileTooLarge is returned when one glyph tile exceeds the texture.
	ErrTileTooLarge = atlas.ErrTileTooLarge
)
