package sdftext

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/layout"
	"github.com/gogpu/sdftext/msdf"
	"github.com/gogpu/sdftext/quad"
	"github.com/gogpu/sdftext/shader"
)

// DefaultCharset returns the character set used when none is given:
// ASCII letters and digits, common punctuation, the letters of frequent
// ligatures and a few accented vowels.
func DefaultCharset() string {
	return "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890().?!,:;'\"&*=+-/\\@#_[]<>%^llflfiphridséáèà"
}

var defaultMetrics = layout.NewMetricsCache()

// Teardown releases the process-wide atlas and metrics caches. Text
// values already created keep working.
func Teardown() {
	atlas.Teardown()
	defaultMetrics.Teardown()
}

// Text draws strings of one font from a shared atlas.
type Text struct {
	font    *font.Font
	atlas   *atlas.Atlas
	metrics *layout.Metrics
	quads   *quad.Builder
}

// New returns a Text for f. The atlas for f's face, the format and the
// character set is built on first use and shared afterwards.
func New(f *font.Font, opts ...Option) (*Text, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := cfg.atlases.GetOrBuild(f.Face(), cfg.format, cfg.charset)
	if err != nil {
		return nil, fmt.Errorf("sdftext: %s: %w", f.Name(), err)
	}
	m := cfg.metrics.GetOrBuild(f.Face(), a.Charset(), a.Glyphs())

	return &Text{
		font:    f,
		atlas:   a,
		metrics: m,
		quads:   quad.NewBuilder(a, f.Size()),
	}, nil
}

// Font returns the font.
func (t *Text) Font() *font.Font { return t.font }

// Atlas returns the shared atlas.
func (t *Text) Atlas() *atlas.Atlas { return t.atlas }

// Metrics returns the glyph metrics table.
func (t *Text) Metrics() *layout.Metrics { return t.metrics }

// NumTextures returns the number of atlas textures.
func (t *Text) NumTextures() int { return len(t.atlas.Textures()) }

// Texture returns atlas texture i.
func (t *Text) Texture(i int) *atlas.Texture { return t.atlas.Textures()[i] }

// SdfScalePadding returns the scale and padding the atlas was generated
// with.
func (t *Text) SdfScalePadding() (msdf.Point, image.Point) {
	return t.atlas.SdfScale(), t.atlas.SdfPadding()
}

// Placements lays str out on unbounded lines.
func (t *Text) Placements(str string, opts quad.DrawOptions) (layout.Run, error) {
	return layout.Layout(str, t.font, t.metrics, opts.LayoutOptions(layout.Unbounded))
}

// PlacementsFit lays str out for drawing into fit. Lines are not wrapped;
// drawing clips them to fit instead.
func (t *Text) PlacementsFit(str string, fit r2.Rect, opts quad.DrawOptions) (layout.Run, error) {
	return t.Placements(str, opts)
}

// PlacementsWrapped lays str out wrapped to the width of fit.
func (t *Text) PlacementsWrapped(str string, fit r2.Rect, opts quad.DrawOptions) (layout.Run, error) {
	return layout.Layout(str, t.font, t.metrics, opts.LayoutOptions(fit.X.Length()))
}

// DrawGlyphs returns the batches drawing a laid out run at baseline.
func (t *Text) DrawGlyphs(run layout.Run, baseline r2.Point, opts quad.DrawOptions, colors []color.NRGBA) ([]quad.Batch, error) {
	return t.quads.Build(run, baseline, opts, colors)
}

// DrawString returns the batches drawing str on one line starting at
// baseline. Colors, if given, hold one color per drawn glyph.
func (t *Text) DrawString(str string, baseline r2.Point, opts quad.DrawOptions, colors []color.NRGBA) ([]quad.Batch, error) {
	run, err := t.Placements(str, opts)
	if err != nil {
		return nil, err
	}
	return t.quads.Build(run, baseline, opts, colors)
}

// DrawStringFit draws str inside fit, with the first line's top at the
// top-left corner of fit moved by offset. Glyphs are clipped to fit on
// the axes enabled in opts.
func (t *Text) DrawStringFit(str string, fit r2.Rect, offset r2.Point, opts quad.DrawOptions, colors []color.NRGBA) ([]quad.Batch, error) {
	run, err := t.PlacementsFit(str, fit, opts)
	if err != nil {
		return nil, err
	}
	return t.quads.BuildClipped(run, fit, t.firstBaseline(fit, offset, opts), opts, colors)
}

// DrawStringWrapped draws str wrapped to the width of fit, with the first
// line's top at the top-left corner of fit moved by offset. No clipping
// is applied.
func (t *Text) DrawStringWrapped(str string, fit r2.Rect, offset r2.Point, opts quad.DrawOptions, colors []color.NRGBA) ([]quad.Batch, error) {
	run, err := t.PlacementsWrapped(str, fit, opts)
	if err != nil {
		return nil, err
	}
	return t.quads.Build(run, t.firstBaseline(fit, offset, opts), opts, colors)
}

// firstBaseline returns the baseline of the first line of a box whose
// top-left corner is fit's plus offset.
func (t *Text) firstBaseline(fit r2.Rect, offset r2.Point, opts quad.DrawOptions) r2.Point {
	ascent := t.font.Ascent() * t.font.SizeScale() * opts.Scale
	return fit.Lo().Add(offset).Add(r2.Point{Y: ascent})
}

// MeasureString returns the drawn size of str on unbounded lines: the
// widest line by the height of all lines, after opts.Scale. An empty
// string measures zero.
func (t *Text) MeasureString(str string, opts quad.DrawOptions) (r2.Point, error) {
	run, err := t.Placements(str, opts)
	if err != nil {
		return r2.Point{}, err
	}
	return layout.Measure(run).Mul(opts.Scale), nil
}

// Instances returns one instance per glyph of str for instanced
// rendering, relative to the string's origin.
func (t *Text) Instances(str string, opts quad.DrawOptions, colors []color.NRGBA) ([]quad.Instance, error) {
	run, err := t.Placements(str, opts)
	if err != nil {
		return nil, err
	}
	return t.quads.Instances(run, opts, colors)
}

// Program returns the shader for opts: the caller's if set, otherwise
// the default one. A default shader that fails to compile is logged and
// reported, and draws using it should be skipped.
func (t *Text) Program(opts quad.DrawOptions) (*shader.Program, error) {
	return opts.Program()
}

// Uniforms returns the shader uniforms for drawing in fg onto a target of
// size viewport.
func (t *Text) Uniforms(opts quad.DrawOptions, fg colorful.Color, viewport r2.Point) shader.Uniforms {
	return opts.Uniforms(fg, viewport)
}
