package outline

import (
	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/msdf"
)

// State is the decoder state: the kind of the last point consumed.
type State uint8

const (
	StateNone State = iota
	StateOnCurve
	StateQuadratic
	StateCubic
	StateCubic2
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateOnCurve:
		return "OnCurve"
	case StateQuadratic:
		return "Quadratic"
	case StateCubic:
		return "Cubic"
	case StateCubic2:
		return "Cubic2"
	default:
		return "Unknown"
	}
}

func stateFor(k font.PointKind) State {
	switch k {
	case font.PointOnCurve:
		return StateOnCurve
	case font.PointCubic:
		return StateCubic
	default:
		return StateQuadratic
	}
}

// Decode loads glyph g from face and converts it to a shape in glyph
// space. Glyphs without contours yield an empty shape.
func Decode(face font.Face, g font.GlyphID) (*msdf.Shape, error) {
	raw, err := face.GlyphOutline(g)
	if err != nil {
		return nil, &DecodeError{Glyph: g, Contour: -1, Point: -1, Reason: "load failed", Err: err}
	}
	shape, err := DecodeRaw(raw, face.UnitsPerEm())
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Glyph = g
		}
		return nil, err
	}
	return shape, nil
}

// DecodeRaw converts a raw outline in font units to a shape in glyph
// space. The returned error is a *DecodeError with a zero Glyph.
func DecodeRaw(raw font.RawOutline, unitsPerEm int) (*msdf.Shape, error) {
	if unitsPerEm <= 0 {
		return nil, &DecodeError{Contour: -1, Point: -1, Reason: "units per em must be positive"}
	}
	if len(raw.Tags) != len(raw.Points) {
		return nil, &DecodeError{Contour: -1, Point: -1, Reason: "tag count differs from point count"}
	}

	d := decoder{raw: raw, scale: font.GlyphScale(unitsPerEm)}
	shape := &msdf.Shape{}
	last := -1
	for i, end := range raw.ContourEnds {
		first := last + 1
		if end < first || end >= len(raw.Points) {
			return nil, &DecodeError{Contour: i, Point: -1, Reason: "contour end out of order or range"}
		}
		last = end
		if err := d.contour(shape.AddContour(), i, first, last); err != nil {
			return nil, err
		}
	}
	return shape, nil
}

type decoder struct {
	raw   font.RawOutline
	scale float64
}

func (d *decoder) point(i int) msdf.Point {
	p := d.raw.Points[i]
	return msdf.Point{X: p.X * d.scale, Y: p.Y * d.scale}
}

// contour decodes points first..last. The walk ends after it revisits the
// first on-curve point, which closes the contour.
func (d *decoder) contour(c *msdf.Contour, ci, first, last int) error {
	var (
		state    = StateNone
		start    msdf.Point
		ctrl     [2]msdf.Point
		firstOn  = -1
		finished bool
	)
	fail := func(index int, reason string) error {
		return &DecodeError{Contour: ci, Point: index, State: state, Reason: reason}
	}

	for index := first; !finished; index++ {
		if index > last {
			if firstOn < 0 {
				return fail(-1, "contour has no on-curve point")
			}
			index = first
		}
		if index == firstOn {
			finished = true
		}

		p := d.point(index)
		kind := stateFor(d.raw.Tags[index].Kind())

		switch state {
		case StateNone:
			if kind == StateOnCurve {
				firstOn = index
				start = p
				state = StateOnCurve
			}
		case StateOnCurve:
			if kind == StateOnCurve {
				c.AddEdge(msdf.NewLinearEdge(start, p))
				start = p
			} else {
				ctrl[0] = p
				state = kind
			}
		case StateQuadratic:
			switch kind {
			case StateCubic:
				return fail(index, "cubic point after quadratic point")
			case StateOnCurve:
				c.AddEdge(msdf.NewQuadraticEdge(start, ctrl[0], p))
				start = p
				state = StateOnCurve
			default:
				mid := ctrl[0].Midpoint(p)
				c.AddEdge(msdf.NewQuadraticEdge(start, ctrl[0], mid))
				start = mid
				ctrl[0] = p
			}
		case StateCubic:
			if kind != StateCubic {
				return fail(index, "cubic point must be followed by a cubic point")
			}
			ctrl[1] = p
			state = StateCubic2
		case StateCubic2:
			if kind == StateQuadratic {
				return fail(index, "quadratic point after cubic pair")
			}
			if kind == StateOnCurve {
				c.AddEdge(msdf.NewCubicEdge(start, ctrl[0], ctrl[1], p))
				start = p
			} else {
				mid := ctrl[1].Midpoint(p)
				c.AddEdge(msdf.NewCubicEdge(start, ctrl[0], ctrl[1], mid))
				start = mid
				ctrl[0] = p
			}
			state = kind
		}
	}
	return nil
}
