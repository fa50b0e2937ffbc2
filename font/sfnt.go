package font

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTFace implements Face using golang.org/x/image/font/sfnt.
//
// All queries pass ppem equal to the design grid size, which makes the
// 26.6 values returned by sfnt equal to design units. SFNTFace is safe
// for concurrent use: every call allocates its own sfnt.Buffer.
type SFNTFace struct {
	font       *opentype.Font
	family     string
	style      string
	fullName   string
	unitsPerEm int
}

// Load parses TrueType or OpenType font data.
func Load(data []byte) (*SFNTFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	face := &SFNTFace{
		font:       f,
		unitsPerEm: int(f.UnitsPerEm()),
	}
	face.family = face.name(sfnt.NameIDFamily)
	face.style = face.name(sfnt.NameIDSubfamily)
	face.fullName = face.name(sfnt.NameIDFull)
	if face.fullName == "" {
		face.fullName = face.family
	}
	return face, nil
}

// LoadFile reads and parses a font file.
// A missing file yields an error wrapping ErrNotFound.
func LoadFile(path string) (*SFNTFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return Load(data)
}

func (f *SFNTFace) name(id sfnt.NameID) string {
	if s, err := f.font.Name(nil, id); err == nil {
		return s
	}
	return ""
}

// ppem returns the query size that maps 26.6 results onto design units.
func (f *SFNTFace) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.unitsPerEm)
}

// Family implements Face.
func (f *SFNTFace) Family() string { return f.family }

// Style implements Face.
func (f *SFNTFace) Style() string { return f.style }

// FullName implements Face.
func (f *SFNTFace) FullName() string { return f.fullName }

// UnitsPerEm implements Face.
func (f *SFNTFace) UnitsPerEm() int { return f.unitsPerEm }

// NumGlyphs returns the number of glyphs in the font.
func (f *SFNTFace) NumGlyphs() int { return f.font.NumGlyphs() }

// CharIndex implements Face.
func (f *SFNTFace) CharIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Metrics implements Face.
func (f *SFNTFace) Metrics() FaceMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.ppem(), xfont.HintingNone)
	if err != nil {
		return FaceMetrics{UnitsPerEm: f.unitsPerEm}
	}
	return FaceMetrics{
		UnitsPerEm: f.unitsPerEm,
		Ascender:   int(m.Ascent),
		Descender:  -int(m.Descent),
		LineHeight: int(m.Height),
	}
}

// GlyphAdvance implements Face.
func (f *SFNTFace) GlyphAdvance(g GlyphID) (x, y float64, err error) {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(g), f.ppem(), xfont.HintingNone)
	if err != nil {
		return 0, 0, fmt.Errorf("font: glyph %d advance: %w", g, err)
	}
	return float64(adv), 0, nil
}

// Kerning implements Kerner. Fonts without a kern table report zero.
func (f *SFNTFace) Kerning(left, right GlyphID) (float64, error) {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.ppem(), xfont.HintingNone)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("font: kerning %d/%d: %w", left, right, err)
	}
	return float64(k), nil
}

// GlyphOutline implements Face.
//
// sfnt resolves implicit on-curve points and reports Y down; the segments
// are turned back into a Y-up point/tag stream. The explicit closing point
// of a contour is dropped because contours close implicitly.
func (f *SFNTFace) GlyphOutline(g GlyphID) (RawOutline, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(g), f.ppem(), nil)
	if err != nil {
		return RawOutline{}, fmt.Errorf("font: glyph %d outline: %w", g, err)
	}

	var out RawOutline
	start := 0
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(out.Points) > start {
				out.closeContour(start)
			}
			start = len(out.Points)
			out.add(seg.Args[0], TagOnCurve)
		case sfnt.SegmentOpLineTo:
			out.add(seg.Args[0], TagOnCurve)
		case sfnt.SegmentOpQuadTo:
			out.add(seg.Args[0], TagQuadratic)
			out.add(seg.Args[1], TagOnCurve)
		case sfnt.SegmentOpCubeTo:
			out.add(seg.Args[0], TagCubic)
			out.add(seg.Args[1], TagCubic)
			out.add(seg.Args[2], TagOnCurve)
		}
	}
	if len(out.Points) > start {
		out.closeContour(start)
	}
	return out, nil
}

func (o *RawOutline) add(p fixed.Point26_6, tag Tag) {
	o.Points = append(o.Points, RawPoint{X: float64(p.X), Y: -float64(p.Y)})
	o.Tags = append(o.Tags, tag)
}

// closeContour ends the contour that begins at start.
func (o *RawOutline) closeContour(start int) {
	last := len(o.Points) - 1
	if last > start && o.Tags[last] == TagOnCurve && o.Points[last] == o.Points[start] {
		o.Points = o.Points[:last]
		o.Tags = o.Tags[:last]
		last--
	}
	o.ContourEnds = append(o.ContourEnds, last)
}
