// Package quad turns laid out glyph runs into textured quads.
//
// Each glyph becomes one rectangle sampling its atlas tile. The builder
// undoes the translate applied when the tile's distance field was
// generated, so the glyph outline lands on the pen position at the
// font's size. Quads are grouped into one Batch per atlas texture.
package quad

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/logging"
	"github.com/gogpu/sdftext/layout"
)

// ErrArgumentMismatch is returned when the number of colors differs from
// the number of placements.
var ErrArgumentMismatch = errors.New("quad: argument mismatch")

// Quad is one glyph rectangle.
type Quad struct {
	Glyph font.GlyphID

	// Index is the placement index in the source run.
	Index int

	// Texture is the atlas texture the glyph samples.
	Texture int

	// Pos is the destination rectangle in pixels, Y down.
	Pos r2.Rect

	// UV is the normalized texture region.
	UV r2.Rect

	Color    color.NRGBA
	HasColor bool
}

// Builder builds quads for one atlas at one font size.
type Builder struct {
	atlas    *atlas.Atlas
	fontSize float64
}

// NewBuilder creates a builder drawing glyphs of a at fontSize points.
func NewBuilder(a *atlas.Atlas, fontSize float64) *Builder {
	return &Builder{atlas: a, fontSize: fontSize}
}

// Quads returns one quad per placement of run that has an atlas tile,
// in placement order, with the run's origin at baseline.
func (b *Builder) Quads(run layout.Run, baseline r2.Point, opts DrawOptions, colors []color.NRGBA) ([]Quad, error) {
	if err := checkColors(run, colors); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.PixelSnap {
		baseline = r2.Point{X: math.Floor(baseline.X), Y: math.Floor(baseline.Y)}
	}

	textures := b.atlas.Textures()
	quads := make([]Quad, 0, len(run.Placements))
	for i, pl := range run.Placements {
		p, ok := b.atlas.Placement(pl.Glyph)
		if !ok {
			logging.Logger().Warn("quad: glyph not in atlas", "glyph", pl.Glyph)
			continue
		}
		tex := textures[p.Texture]
		q := Quad{
			Glyph:   pl.Glyph,
			Index:   i,
			Texture: p.Texture,
			Pos:     b.destRect(p, pl.Pen, baseline, opts.Scale),
			UV: r2.Rect{
				X: r1.Interval{
					Lo: float64(p.Region.Min.X) / float64(tex.Width),
					Hi: float64(p.Region.Max.X) / float64(tex.Width),
				},
				Y: r1.Interval{
					Lo: float64(p.Region.Min.Y) / float64(tex.Height),
					Hi: float64(p.Region.Max.Y) / float64(tex.Height),
				},
			},
		}
		if len(colors) != 0 {
			q.Color = colors[i]
			q.HasColor = true
		}
		quads = append(quads, q)
	}
	return quads, nil
}

// destRect places the tile of p for a glyph at pen.
//
// The tile is scaled, moved so its bottom-left corner sits on the origin,
// then shifted by the inverse of the generation translate
// sdfScale * (-padding.x, |origin.y| + padding.y) and by the glyph's
// horizontal bearing. The result is converted from distance field pixels
// to pixels at the font size and moved to the scaled pen position.
func (b *Builder) destRect(p atlas.Placement, pen, baseline r2.Point, scale float64) r2.Rect {
	sdf := b.atlas.SdfScale()
	pad := b.atlas.SdfPadding()
	size := p.Region.Size()
	w := float64(size.X) * scale
	h := float64(size.Y) * scale

	originScale := b.fontSize / font.ReferenceSize
	offX := scale*sdf.X*-float64(pad.X) + scale*originScale*p.OriginOffset.X
	offY := -h + scale*sdf.Y*(math.Abs(p.OriginOffset.Y)+float64(pad.Y))

	renderX := b.fontSize / (font.ReferenceSize * sdf.X)
	renderY := b.fontSize / (font.ReferenceSize * sdf.Y)

	x := offX*renderX + pen.X*scale + baseline.X
	y := offY*renderY + pen.Y*scale + baseline.Y
	return r2.Rect{
		X: r1.Interval{Lo: x, Hi: x + w*renderX},
		Y: r1.Interval{Lo: y, Hi: y + h*renderY},
	}
}

// Build returns the batches drawing run with its origin at baseline.
func (b *Builder) Build(run layout.Run, baseline r2.Point, opts DrawOptions, colors []color.NRGBA) ([]Batch, error) {
	quads, err := b.Quads(run, baseline, opts, colors)
	if err != nil {
		return nil, err
	}
	return Batches(quads), nil
}

// BuildClipped is Build with every quad clipped to clip on the axes
// enabled in opts. Quads with nothing left are dropped; the texture
// region of a partly clipped quad shrinks by the same fraction as its
// rectangle.
func (b *Builder) BuildClipped(run layout.Run, clip r2.Rect, baseline r2.Point, opts DrawOptions, colors []color.NRGBA) ([]Batch, error) {
	quads, err := b.Quads(run, baseline, opts, colors)
	if err != nil {
		return nil, err
	}
	kept := quads[:0]
	for _, q := range quads {
		if c, ok := Clip(q, clip, opts.ClipHorizontal, opts.ClipVertical); ok {
			kept = append(kept, c)
		}
	}
	return Batches(kept), nil
}

// Clip intersects q with clip on the enabled axes. It reports false when
// the intersection is empty.
func Clip(q Quad, clip r2.Rect, horizontal, vertical bool) (Quad, bool) {
	pos := q.Pos
	if horizontal {
		pos.X = pos.X.Intersection(clip.X)
	}
	if vertical {
		pos.Y = pos.Y.Intersection(clip.Y)
	}
	if pos.X.Length() <= 0 || pos.Y.Length() <= 0 {
		return q, false
	}

	q.UV = r2.Rect{
		X: rescale(q.UV.X, q.Pos.X, pos.X),
		Y: rescale(q.UV.Y, q.Pos.Y, pos.Y),
	}
	q.Pos = pos
	return q, true
}

// rescale maps the clipped part of dest onto the matching part of uv.
func rescale(uv, dest, clipped r1.Interval) r1.Interval {
	k := uv.Length() / dest.Length()
	lo := uv.Lo + (clipped.Lo-dest.Lo)*k
	return r1.Interval{Lo: lo, Hi: lo + clipped.Length()*k}
}

// Batches groups quads by texture in ascending texture order, keeping
// the quad order within each texture.
func Batches(quads []Quad) []Batch {
	byTexture := make(map[int]*Batch)
	for _, q := range quads {
		batch, ok := byTexture[q.Texture]
		if !ok {
			batch = &Batch{Texture: q.Texture}
			byTexture[q.Texture] = batch
		}
		batch.add(q)
	}

	batches := make([]Batch, 0, len(byTexture))
	for _, batch := range byTexture {
		batches = append(batches, *batch)
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].Texture < batches[j].Texture
	})
	return batches
}

// Instance is one glyph for instanced rendering: a rectangle at Pos of
// Size sampling TexCoords.
type Instance struct {
	Glyph     font.GlyphID
	Texture   int
	Pos       r2.Point
	Size      r2.Point
	TexCoords r2.Rect
	Color     color.NRGBA
}

// Instances returns one instance per glyph of run relative to the run
// origin, ordered by texture then placement.
func (b *Builder) Instances(run layout.Run, opts DrawOptions, colors []color.NRGBA) ([]Instance, error) {
	quads, err := b.Quads(run, r2.Point{}, opts, colors)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Texture < quads[j].Texture
	})

	out := make([]Instance, len(quads))
	for i, q := range quads {
		out[i] = Instance{
			Glyph:     q.Glyph,
			Texture:   q.Texture,
			Pos:       q.Pos.Lo(),
			Size:      q.Pos.Size(),
			TexCoords: q.UV,
			Color:     vertexColor(q),
		}
	}
	return out, nil
}

func checkColors(run layout.Run, colors []color.NRGBA) error {
	if len(colors) != 0 && len(colors) != len(run.Placements) {
		return fmt.Errorf("%w: %d colors for %d glyphs", ErrArgumentMismatch, len(colors), len(run.Placements))
	}
	return nil
}

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func vertexColor(q Quad) color.NRGBA {
	if q.HasColor {
		return q.Color
	}
	return white
}
