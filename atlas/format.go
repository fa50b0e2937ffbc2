package atlas

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/sdftext/msdf"
)

// ErrTileTooLarge is returned when a single glyph tile does not fit into
// a texture of the requested size.
var ErrTileTooLarge = errors.New("atlas: tile larger than texture")

// FormatError represents an invalid Format field.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return "atlas: invalid format." + e.Field + ": " + e.Reason
}

// Format controls atlas generation.
type Format struct {
	// TextureWidth and TextureHeight are the size of every atlas texture
	// in pixels.
	TextureWidth  int
	TextureHeight int

	// SdfScale is the number of atlas pixels per glyph-space unit.
	SdfScale msdf.Point

	// SdfPadding is the empty margin, in glyph-space units, kept around
	// the largest glyph inside each tile.
	SdfPadding image.Point

	// SdfRange is the distance span, in glyph-space units, that maps onto
	// the full [0, 1] channel range.
	SdfRange float64

	// SdfAngle is the edge coloring corner threshold in radians.
	SdfAngle float64

	// TileSpacing is the gap in pixels between neighboring tiles.
	TileSpacing image.Point
}

// DefaultFormat returns the default atlas format: 1024x1024 textures,
// scale 2, padding 2, range 4 and a 3 radian corner angle.
func DefaultFormat() Format {
	return Format{
		TextureWidth:  1024,
		TextureHeight: 1024,
		SdfScale:      msdf.Point{X: 2, Y: 2},
		SdfPadding:    image.Pt(2, 2),
		SdfRange:      4,
		SdfAngle:      msdf.DefaultAngleThreshold,
		TileSpacing:   image.Pt(1, 1),
	}
}

// WithTextureSize returns a copy of f with the given texture size.
func (f Format) WithTextureSize(width, height int) Format {
	f.TextureWidth, f.TextureHeight = width, height
	return f
}

// WithSdfScale returns a copy of f with the given scale on both axes.
func (f Format) WithSdfScale(scale float64) Format {
	f.SdfScale = msdf.Point{X: scale, Y: scale}
	return f
}

// WithSdfPadding returns a copy of f with the given padding on both axes.
func (f Format) WithSdfPadding(padding int) Format {
	f.SdfPadding = image.Pt(padding, padding)
	return f
}

// WithSdfRange returns a copy of f with the given distance range.
func (f Format) WithSdfRange(r float64) Format {
	f.SdfRange = r
	return f
}

// WithSdfAngle returns a copy of f with the given corner threshold.
func (f Format) WithSdfAngle(angle float64) Format {
	f.SdfAngle = angle
	return f
}

// WithTileSpacing returns a copy of f with the given tile gap.
func (f Format) WithTileSpacing(x, y int) Format {
	f.TileSpacing = image.Pt(x, y)
	return f
}

// Validate checks if the format is usable.
func (f Format) Validate() error {
	switch {
	case f.TextureWidth <= 0:
		return &FormatError{Field: "TextureWidth", Reason: "must be positive"}
	case f.TextureHeight <= 0:
		return &FormatError{Field: "TextureHeight", Reason: "must be positive"}
	case !(f.SdfScale.X > 0) || !(f.SdfScale.Y > 0) || math.IsInf(f.SdfScale.X, 0) || math.IsInf(f.SdfScale.Y, 0):
		return &FormatError{Field: "SdfScale", Reason: "must be positive and finite"}
	case f.SdfPadding.X < 0 || f.SdfPadding.Y < 0:
		return &FormatError{Field: "SdfPadding", Reason: "must be non-negative"}
	case !(f.SdfRange > 0):
		return &FormatError{Field: "SdfRange", Reason: "must be positive"}
	case !(f.SdfAngle > 0):
		return &FormatError{Field: "SdfAngle", Reason: "must be positive"}
	case f.TileSpacing.X < 0 || f.TileSpacing.Y < 0:
		return &FormatError{Field: "TileSpacing", Reason: "must be non-negative"}
	}
	return nil
}

// TileSize returns the tile size in pixels for a glyph set whose largest
// bounding box is maxGlyph glyph-space units.
func (f Format) TileSize(maxGlyph msdf.Point) image.Point {
	return image.Pt(
		int(f.SdfScale.X*(maxGlyph.X+2*float64(f.SdfPadding.X))+0.5),
		int(f.SdfScale.Y*(maxGlyph.Y+2*float64(f.SdfPadding.Y))+0.5),
	)
}
