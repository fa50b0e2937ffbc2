package font

// GlyphID is a glyph index local to one font resource.
// Zero is the .notdef glyph.
type GlyphID uint32

// Tag classifies an outline point. The bit layout follows FreeType:
// bit 0 set marks an on-curve point; otherwise bit 1 selects a cubic
// control point over a quadratic one.
type Tag uint8

// Tag values produced by the built-in engine.
const (
	TagQuadratic Tag = 0
	TagOnCurve   Tag = 1
	TagCubic     Tag = 2
)

// PointKind is the decoded meaning of a Tag.
type PointKind uint8

const (
	// PointOnCurve is a point the outline passes through.
	PointOnCurve PointKind = iota + 1

	// PointQuadratic is a quadratic Bezier control point.
	PointQuadratic

	// PointCubic is a cubic Bezier control point.
	PointCubic
)

// String returns a string representation of the point kind.
func (k PointKind) String() string {
	switch k {
	case PointOnCurve:
		return "OnCurve"
	case PointQuadratic:
		return "Quadratic"
	case PointCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Kind decodes the tag bits.
func (t Tag) Kind() PointKind {
	switch {
	case t&1 != 0:
		return PointOnCurve
	case t&2 != 0:
		return PointCubic
	default:
		return PointQuadratic
	}
}

// RawPoint is an outline point in font design units, Y up.
type RawPoint struct {
	X, Y float64
}

// RawOutline is a glyph outline as a flat point list.
// ContourEnds holds the index of the last point of each contour, so
// contour i spans ContourEnds[i-1]+1 through ContourEnds[i]. A contour is
// implicitly closed back to its first on-curve point.
type RawOutline struct {
	Points      []RawPoint
	Tags        []Tag
	ContourEnds []int
}

// IsEmpty reports whether the outline has no contours.
func (o RawOutline) IsEmpty() bool {
	return len(o.ContourEnds) == 0
}

// FaceMetrics holds face-wide metrics in font design units.
// Descender is negative for fonts that extend below the baseline.
type FaceMetrics struct {
	UnitsPerEm int
	Ascender   int
	Descender  int
	LineHeight int
}

// Face is the font engine contract.
//
// Implementations need not be safe for concurrent use unless documented.
type Face interface {
	// Family returns the family name, e.g. "Go".
	Family() string

	// Style returns the style (subfamily) name, e.g. "Regular".
	Style() string

	// FullName returns the full font name, e.g. "Go Regular".
	FullName() string

	// UnitsPerEm returns the design grid size.
	UnitsPerEm() int

	// CharIndex maps a code point to a glyph. Unmapped code points return 0.
	CharIndex(r rune) GlyphID

	// GlyphOutline returns the raw outline of a glyph in design units.
	GlyphOutline(g GlyphID) (RawOutline, error)

	// Metrics returns face metrics in design units.
	Metrics() FaceMetrics

	// GlyphAdvance returns the pen advance of a glyph in design units.
	GlyphAdvance(g GlyphID) (x, y float64, err error)
}

// Kerner is implemented by faces that carry pair kerning.
type Kerner interface {
	// Kerning returns the horizontal adjustment between two glyphs in
	// design units.
	Kerning(left, right GlyphID) (float64, error)
}
