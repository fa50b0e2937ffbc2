package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sdftext"
	"github.com/gogpu/sdftext/layout"
	"github.com/gogpu/sdftext/quad"
)

type layoutCmd struct {
	FontFlags `embed:""`

	Text    string  `arg:"" name:"text" help:"Text to lay out"`
	Width   float64 `short:"w" help:"Wrap lines to this width in pixels (0 disables wrapping)"`
	Scale   float64 `default:"1" help:"Draw scale"`
	Leading float64 `help:"Extra space between lines in glyph units"`
	Align   string  `enum:"left,center,right" default:"left" help:"Line alignment of wrapped text"`
	Color   string  `default:"#ffffff" help:"Glyph color as #rrggbb"`
	X       float64 `help:"Baseline x of the first line"`
	Y       float64 `help:"Baseline y of the first line"`
}

type linePos struct {
	Text  string  `json:"text"`
	Width float64 `json:"width"`
	Y     float64 `json:"y"`
}

type glyphPos struct {
	Glyph uint32  `json:"glyph"`
	Rune  string  `json:"rune"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type quadPos struct {
	Pos [4]float32 `json:"pos"`
	UV  [4]float32 `json:"uv"`
}

type batchOut struct {
	Texture int       `json:"texture"`
	Quads   []quadPos `json:"quads"`
}

type layoutOut struct {
	Lines      []linePos  `json:"lines"`
	Placements []glyphPos `json:"placements"`
	Size       [2]float64 `json:"size"`
	Color      string     `json:"color"`
	Batches    []batchOut `json:"batches"`
}

func (c *layoutCmd) Run() error {
	txt, err := c.text()
	if err != nil {
		return err
	}
	out, err := c.layout(txt)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (c *layoutCmd) options() (quad.DrawOptions, error) {
	opts := quad.DefaultDrawOptions().
		WithScale(c.Scale).
		WithLeading(c.Leading)
	switch c.Align {
	case "", "left":
	case "center":
		opts = opts.WithAlign(layout.AlignCenter)
	case "right":
		opts = opts.WithAlign(layout.AlignRight)
	default:
		return opts, fmt.Errorf("unknown alignment %q", c.Align)
	}
	return opts, opts.Validate()
}

func (c *layoutCmd) layout(txt *sdftext.Text) (*layoutOut, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	fg, err := colorful.Hex(c.Color)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", c.Color, err)
	}

	run, err := c.run(txt, opts)
	if err != nil {
		return nil, err
	}

	r, g, b := fg.Clamped().RGB255()
	colors := make([]color.NRGBA, run.Len())
	for i := range colors {
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	batches, err := txt.DrawGlyphs(run, r2.Point{X: c.X, Y: c.Y}, opts, colors)
	if err != nil {
		return nil, err
	}

	size := layout.Measure(run).Mul(opts.Scale)
	out := &layoutOut{
		Size:  [2]float64{size.X, size.Y},
		Color: fg.Clamped().Hex(),
	}
	for _, l := range run.Lines {
		out.Lines = append(out.Lines, linePos{Text: l.Text, Width: l.Width, Y: l.Y})
	}
	for _, p := range run.Placements {
		out.Placements = append(out.Placements, glyphPos{
			Glyph: uint32(p.Glyph),
			Rune:  string(p.Rune),
			X:     p.Pen.X,
			Y:     p.Pen.Y,
		})
	}
	for _, b := range batches {
		bo := batchOut{Texture: b.Texture}
		for i := range b.Len() {
			tl, br := b.Vertices[4*i+1], b.Vertices[4*i+2]
			bo.Quads = append(bo.Quads, quadPos{
				Pos: [4]float32{tl.X, tl.Y, br.X, br.Y},
				UV:  [4]float32{tl.U, tl.V, br.U, br.V},
			})
		}
		out.Batches = append(out.Batches, bo)
	}
	return out, nil
}

func (c *layoutCmd) run(txt *sdftext.Text, opts quad.DrawOptions) (layout.Run, error) {
	if c.Width <= 0 {
		return txt.Placements(c.Text, opts)
	}
	fit := r2.RectFromPoints(r2.Point{X: c.X, Y: c.Y}, r2.Point{X: c.X + c.Width, Y: c.Y})
	return txt.PlacementsWrapped(c.Text, fit, opts)
}
