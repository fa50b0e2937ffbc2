package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrNotFound is returned when a font file or registry entry does not exist.
	ErrNotFound = errors.New("font: not found")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrInvalidSize is returned when a font size is not positive.
	ErrInvalidSize = errors.New("font: size must be positive")
)
