package quad

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sdftext/layout"
	"github.com/gogpu/sdftext/shader"
)

// DrawOptions configures layout, quad building and shading of one draw
// call. The With methods return a modified copy.
type DrawOptions struct {
	// ClipHorizontal and ClipVertical enable clipping against the fit
	// rectangle on each axis.
	ClipHorizontal bool
	ClipVertical   bool

	// PixelSnap floors the draw origin before glyphs are placed.
	PixelSnap bool

	// Ligate is passed through for callers that substitute ligature
	// glyphs themselves. Layout maps code points to glyphs one to one.
	Ligate bool

	// Scale multiplies glyph size and pen positions.
	Scale float64

	// Leading is extra space between lines in glyph space.
	Leading float64

	// Align positions wrapped lines.
	Align layout.Alignment

	// Premultiply and Gamma select the shader's alpha output.
	Premultiply bool
	Gamma       float64

	// UseMinimalShader selects the cheaper default shader.
	UseMinimalShader bool

	// Shader replaces the default program. It is owned by the caller.
	Shader *shader.Program
}

// DefaultDrawOptions returns the default options: clipping on both axes,
// pixel snapping, scale 1 and gamma 2.2.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		ClipHorizontal: true,
		ClipVertical:   true,
		PixelSnap:      true,
		Scale:          1,
		Gamma:          shader.DefaultGamma,
	}
}

// WithClipHorizontal returns a copy of o with ClipHorizontal set.
func (o DrawOptions) WithClipHorizontal(v bool) DrawOptions {
	o.ClipHorizontal = v
	return o
}

// WithClipVertical returns a copy of o with ClipVertical set.
func (o DrawOptions) WithClipVertical(v bool) DrawOptions {
	o.ClipVertical = v
	return o
}

// WithPixelSnap returns a copy of o with PixelSnap set.
func (o DrawOptions) WithPixelSnap(v bool) DrawOptions {
	o.PixelSnap = v
	return o
}

// WithLigate returns a copy of o with Ligate set.
func (o DrawOptions) WithLigate(v bool) DrawOptions {
	o.Ligate = v
	return o
}

// WithScale returns a copy of o with Scale set.
func (o DrawOptions) WithScale(v float64) DrawOptions {
	o.Scale = v
	return o
}

// WithLeading returns a copy of o with Leading set.
func (o DrawOptions) WithLeading(v float64) DrawOptions {
	o.Leading = v
	return o
}

// WithAlign returns a copy of o with Align set.
func (o DrawOptions) WithAlign(v layout.Alignment) DrawOptions {
	o.Align = v
	return o
}

// WithPremultiply returns a copy of o with Premultiply set.
func (o DrawOptions) WithPremultiply(v bool) DrawOptions {
	o.Premultiply = v
	return o
}

// WithGamma returns a copy of o with Gamma set.
func (o DrawOptions) WithGamma(v float64) DrawOptions {
	o.Gamma = v
	return o
}

// WithMinimalShader returns a copy of o with UseMinimalShader set.
func (o DrawOptions) WithMinimalShader(v bool) DrawOptions {
	o.UseMinimalShader = v
	return o
}

// WithShader returns a copy of o with Shader set.
func (o DrawOptions) WithShader(p *shader.Program) DrawOptions {
	o.Shader = p
	return o
}

// Validate checks the options.
func (o DrawOptions) Validate() error {
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return &OptionsError{Field: "Scale", Reason: "must be positive"}
	}
	if o.Gamma <= 0 || math.IsNaN(o.Gamma) {
		return &OptionsError{Field: "Gamma", Reason: "must be positive"}
	}
	if math.IsNaN(o.Leading) || math.IsInf(o.Leading, 0) {
		return &OptionsError{Field: "Leading", Reason: "must be finite"}
	}
	return nil
}

// LayoutOptions returns the layout options for a maximum line width in
// drawn pixels. Use layout.Unbounded to disable wrapping.
func (o DrawOptions) LayoutOptions(maxWidth float64) layout.Options {
	return layout.Options{
		MaxWidth: maxWidth,
		Scale:    o.Scale,
		Leading:  o.Leading,
		Align:    o.Align,
	}
}

// Program returns the caller's shader or the default one.
func (o DrawOptions) Program() (*shader.Program, error) {
	if o.Shader != nil {
		return o.Shader, nil
	}
	return shader.Default(o.UseMinimalShader)
}

// Uniforms returns the default shader uniforms for a foreground color
// and a render target size.
func (o DrawOptions) Uniforms(fg colorful.Color, viewport r2.Point) shader.Uniforms {
	return shader.NewUniforms(fg, o.Premultiply, o.Gamma, viewport)
}

// OptionsError reports an invalid draw option.
type OptionsError struct {
	Field  string
	Reason string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("quad: invalid options.%s: %s", e.Field, e.Reason)
}
