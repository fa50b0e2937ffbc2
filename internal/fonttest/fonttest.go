// Package fonttest provides a synthetic font.Face for tests.
package fonttest

import (
	"fmt"

	"github.com/gogpu/sdftext/font"
)

// Glyph indices of the default face.
const (
	GlyphNotdef font.GlyphID = 0
	GlyphA      font.GlyphID = 1 // triangle
	GlyphB      font.GlyphID = 2 // rectangle with a quadratic bowl
	GlyphSpace  font.GlyphID = 3 // empty
	GlyphC      font.GlyphID = 4 // cubic blob
	GlyphO      font.GlyphID = 5 // square with a square hole
	GlyphBroken font.GlyphID = 6 // contour without on-curve points
)

// Face is an in-memory font.Face with hand-written outlines.
type Face struct {
	FamilyName string
	StyleName  string
	UPEM       int
	Ascender   int
	Descender  int
	LineHeight int

	Chars    map[rune]font.GlyphID
	Outlines map[font.GlyphID]font.RawOutline
	Advances map[font.GlyphID]float64

	// OutlineCalls counts GlyphOutline invocations.
	OutlineCalls int
}

// New returns the default synthetic face: a 1024 units-per-em grid with
// glyphs for "A", "B", " ", "C", "O" and "X" (X maps to a broken outline).
func New() *Face {
	return &Face{
		FamilyName: "Test Sans",
		StyleName:  "Regular",
		UPEM:       1024,
		Ascender:   800,
		Descender:  -200,
		LineHeight: 1100,
		Chars: map[rune]font.GlyphID{
			'A': GlyphA,
			'B': GlyphB,
			' ': GlyphSpace,
			'C': GlyphC,
			'O': GlyphO,
			'X': GlyphBroken,
		},
		Outlines: map[font.GlyphID]font.RawOutline{
			GlyphA: Polygon(Pt(0, 0), Pt(512, 700), Pt(1024, 0)),
			GlyphB: {
				Points: []font.RawPoint{
					{X: 0, Y: 0}, {X: 0, Y: 700}, {X: 300, Y: 400},
					{X: 600, Y: 700}, {X: 600, Y: 0},
				},
				Tags: []font.Tag{
					font.TagOnCurve, font.TagOnCurve, font.TagQuadratic,
					font.TagOnCurve, font.TagOnCurve,
				},
				ContourEnds: []int{4},
			},
			GlyphC: {
				Points: []font.RawPoint{
					{X: 0, Y: 300}, {X: 0, Y: 700}, {X: 600, Y: 700},
					{X: 600, Y: 300}, {X: 600, Y: -100}, {X: 0, Y: -100},
				},
				Tags: []font.Tag{
					font.TagOnCurve, font.TagCubic, font.TagCubic,
					font.TagOnCurve, font.TagCubic, font.TagCubic,
				},
				ContourEnds: []int{5},
			},
			GlyphO: Concat(
				Polygon(Pt(0, 0), Pt(0, 700), Pt(700, 700), Pt(700, 0)),
				Polygon(Pt(200, 200), Pt(500, 200), Pt(500, 500), Pt(200, 500)),
			),
			GlyphBroken: {
				Points:      []font.RawPoint{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 200, Y: 0}},
				Tags:        []font.Tag{font.TagQuadratic, font.TagQuadratic, font.TagQuadratic},
				ContourEnds: []int{2},
			},
		},
		Advances: map[font.GlyphID]float64{
			GlyphNotdef: 500,
			GlyphA:      1024,
			GlyphB:      640,
			GlyphSpace:  256,
			GlyphC:      640,
			GlyphO:      768,
			GlyphBroken: 512,
		},
	}
}

// Pt returns a raw point.
func Pt(x, y float64) font.RawPoint {
	return font.RawPoint{X: x, Y: y}
}

// Polygon returns a single closed contour through on-curve points.
func Polygon(pts ...font.RawPoint) font.RawOutline {
	tags := make([]font.Tag, len(pts))
	for i := range tags {
		tags[i] = font.TagOnCurve
	}
	return font.RawOutline{
		Points:      append([]font.RawPoint(nil), pts...),
		Tags:        tags,
		ContourEnds: []int{len(pts) - 1},
	}
}

// Concat joins outlines into one multi-contour outline.
func Concat(outlines ...font.RawOutline) font.RawOutline {
	var out font.RawOutline
	for _, o := range outlines {
		base := len(out.Points)
		out.Points = append(out.Points, o.Points...)
		out.Tags = append(out.Tags, o.Tags...)
		for _, end := range o.ContourEnds {
			out.ContourEnds = append(out.ContourEnds, base+end)
		}
	}
	return out
}

// Family implements font.Face.
func (f *Face) Family() string { return f.FamilyName }

// Style implements font.Face.
func (f *Face) Style() string { return f.StyleName }

// FullName implements font.Face.
func (f *Face) FullName() string { return f.FamilyName + " " + f.StyleName }

// UnitsPerEm implements font.Face.
func (f *Face) UnitsPerEm() int { return f.UPEM }

// CharIndex implements font.Face.
func (f *Face) CharIndex(r rune) font.GlyphID { return f.Chars[r] }

// GlyphOutline implements font.Face.
func (f *Face) GlyphOutline(g font.GlyphID) (font.RawOutline, error) {
	f.OutlineCalls++
	o, ok := f.Outlines[g]
	if !ok {
		if g == GlyphNotdef || g == GlyphSpace {
			return font.RawOutline{}, nil
		}
		return font.RawOutline{}, fmt.Errorf("fonttest: no glyph %d", g)
	}
	return o, nil
}

// Metrics implements font.Face.
func (f *Face) Metrics() font.FaceMetrics {
	return font.FaceMetrics{
		UnitsPerEm: f.UPEM,
		Ascender:   f.Ascender,
		Descender:  f.Descender,
		LineHeight: f.LineHeight,
	}
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(g font.GlyphID) (x, y float64, err error) {
	adv, ok := f.Advances[g]
	if !ok {
		return 0, 0, fmt.Errorf("fonttest: no advance for glyph %d", g)
	}
	return adv, 0, nil
}
