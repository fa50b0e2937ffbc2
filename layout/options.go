package layout

import (
	"fmt"
	"math"
)

// Unbounded is the MaxWidth that disables wrapping.
const Unbounded = 1e6

// Alignment positions each line horizontally within MaxWidth.
type Alignment uint8

const (
	// AlignLeft starts every line at x = 0 (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines within MaxWidth.
	AlignCenter
	// AlignRight ends lines at MaxWidth.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// Options configures Layout.
type Options struct {
	// MaxWidth is the widest line in drawn pixels, that is after Scale.
	// Values at or above Unbounded, and zero, disable wrapping.
	MaxWidth float64

	// Scale is the draw scale applied to the finished quads. Layout only
	// uses it to compare line widths against MaxWidth.
	Scale float64

	// Leading is extra space between lines in glyph space.
	Leading float64

	// Align only applies when MaxWidth is bounded.
	Align Alignment
}

// DefaultOptions returns unbounded, left-aligned options at scale 1.
func DefaultOptions() Options {
	return Options{MaxWidth: Unbounded, Scale: 1}
}

// Bounded reports whether lines wrap.
func (o Options) Bounded() bool {
	return o.MaxWidth > 0 && o.MaxWidth < Unbounded
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.MaxWidth < 0 || math.IsNaN(o.MaxWidth) {
		return &OptionsError{Field: "MaxWidth", Reason: "must be non-negative"}
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return &OptionsError{Field: "Scale", Reason: "must be positive"}
	}
	if math.IsNaN(o.Leading) || math.IsInf(o.Leading, 0) {
		return &OptionsError{Field: "Leading", Reason: "must be finite"}
	}
	if o.Align > AlignRight {
		return &OptionsError{Field: "Align", Reason: "unknown alignment"}
	}
	return nil
}

// OptionsError reports an invalid layout option.
type OptionsError struct {
	Field  string
	Reason string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("layout: invalid options.%s: %s", e.Field, e.Reason)
}
