package outline

import (
	"errors"
	"fmt"

	"github.com/gogpu/sdftext/font"
)

// ErrInvalidGlyph is returned when a glyph cannot be loaded or its
// outline violates the point sequence rules.
var ErrInvalidGlyph = errors.New("outline: invalid glyph")

// DecodeError describes where outline decoding failed.
type DecodeError struct {
	Glyph   font.GlyphID
	Contour int
	// Point is the index into the outline's point list, or -1.
	Point  int
	State  State
	Reason string
	// Err is the underlying engine error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("outline: glyph %d contour %d", e.Glyph, e.Contour)
	if e.Point >= 0 {
		msg += fmt.Sprintf(" point %d (%s)", e.Point, e.State)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrInvalidGlyph and the underlying engine error.
func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidGlyph, e.Err}
	}
	return []error{ErrInvalidGlyph}
}
