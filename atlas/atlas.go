package atlas

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/logging"
	"github.com/gogpu/sdftext/msdf"
	"github.com/gogpu/sdftext/outline"
)

// Placement locates one glyph tile.
type Placement struct {
	// Texture is the index of the texture holding the tile.
	Texture int

	// Region is the tile rectangle in texture pixels.
	Region image.Rectangle

	// OriginOffset is the lower-left corner (left, bottom) of the glyph's
	// bounding box in glyph space. The box always contains the origin, so
	// both components are zero or negative.
	OriginOffset msdf.Point
}

// Atlas is an immutable set of MSDF textures for one face and character
// set.
type Atlas struct {
	format   Format
	key      CacheKey
	textures []*Texture
	places   map[font.GlyphID]Placement
	glyphs   []font.GlyphID

	charToGlyph map[rune]font.GlyphID
	glyphToChar map[font.GlyphID]rune

	tile       image.Point
	maxGlyph   msdf.Point
	maxAscent  float64
	maxDescent float64
	warnings   []error
}

// scan is the result of the bounds pass over a character set.
type scan struct {
	runes       []rune
	glyphs      []font.GlyphID // ascending, unique
	charToGlyph map[rune]font.GlyphID
	glyphToChar map[font.GlyphID]rune
	shapes      map[font.GlyphID]*msdf.Shape
	origins     map[font.GlyphID]msdf.Point
	maxGlyph    msdf.Point
	maxAscent   float64
	maxDescent  float64
	warnings    []error
}

// scanCharset maps every rune to its glyph and measures the decoded
// outlines. Glyphs that fail to decode are recorded and left out of the
// measurements.
func scanCharset(face font.Face, charset string) *scan {
	s := &scan{
		runes:       NormalizeCharset(charset),
		charToGlyph: make(map[rune]font.GlyphID),
		glyphToChar: make(map[font.GlyphID]rune),
		shapes:      make(map[font.GlyphID]*msdf.Shape),
		origins:     make(map[font.GlyphID]msdf.Point),
	}
	failed := make(map[font.GlyphID]bool)
	for _, r := range s.runes {
		g := face.CharIndex(r)
		s.charToGlyph[r] = g
		s.glyphToChar[g] = r
		if _, ok := s.shapes[g]; ok || failed[g] {
			continue
		}
		shape, err := outline.Decode(face, g)
		if err != nil {
			failed[g] = true
			s.warnings = append(s.warnings, fmt.Errorf("char %q: %w", r, err))
			logging.Logger().Warn("atlas: skipping glyph", "char", string(r), "glyph", g, "err", err)
			continue
		}
		b := shape.Bounds()
		s.glyphs = append(s.glyphs, g)
		s.shapes[g] = shape
		s.origins[g] = msdf.Point{X: b.MinX, Y: b.MinY}
		s.maxGlyph.X = math.Max(s.maxGlyph.X, b.Width())
		s.maxGlyph.Y = math.Max(s.maxGlyph.Y, b.Height())
		s.maxAscent = math.Max(s.maxAscent, b.MaxY)
		s.maxDescent = math.Max(s.maxDescent, math.Abs(b.MinY))
	}
	slices.Sort(s.glyphs)
	return s
}

func (s *scan) key(face font.Face, format Format) CacheKey {
	tile := format.TileSize(s.maxGlyph)
	return CacheKey{
		Family:        face.Family(),
		Style:         face.Style(),
		Charset:       string(s.runes),
		TextureWidth:  format.TextureWidth,
		TextureHeight: format.TextureHeight,
		TileWidth:     tile.X,
		TileHeight:    tile.Y,
	}
}

// Build renders charset from face into a new atlas. It does not consult
// any cache. Glyphs that cannot be decoded are skipped and reported by
// Warnings.
func Build(face font.Face, format Format, charset string) (*Atlas, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return build(face, format, scanCharset(face, charset))
}

func build(face font.Face, format Format, s *scan) (*Atlas, error) {
	tile := format.TileSize(s.maxGlyph)
	grid := NewGridAllocator(format.TextureWidth, format.TextureHeight, tile, format.TileSpacing)
	if grid.Capacity() == 0 {
		return nil, fmt.Errorf("%w: tile %dx%d, texture %dx%d",
			ErrTileTooLarge, tile.X, tile.Y, format.TextureWidth, format.TextureHeight)
	}

	a := &Atlas{
		format:      format,
		key:         s.key(face, format),
		places:      make(map[font.GlyphID]Placement, len(s.glyphs)),
		charToGlyph: s.charToGlyph,
		glyphToChar: s.glyphToChar,
		tile:        tile,
		maxGlyph:    s.maxGlyph,
		maxAscent:   s.maxAscent,
		maxDescent:  s.maxDescent,
		warnings:    s.warnings,
	}

	bm := msdf.NewBitmap(tile.X, tile.Y)
	var tex *Texture
	for _, g := range s.glyphs {
		shape, ok := s.shapes[g]
		if !ok {
			continue
		}
		if tex == nil || grid.IsFull() {
			tex = newTexture(format.TextureWidth, format.TextureHeight)
			a.textures = append(a.textures, tex)
			grid.Reset()
		}
		pos, _ := grid.Allocate()

		origin := s.origins[g]
		shape.InverseYAxis = true
		shape.Normalize()
		msdf.ColorEdgesSimple(shape, format.SdfAngle, 0)
		translate := msdf.Point{
			X: float64(format.SdfPadding.X),
			Y: math.Abs(origin.Y) + float64(format.SdfPadding.Y),
		}
		if err := msdf.Generate(bm, shape, format.SdfRange, format.SdfScale, translate); err != nil {
			return nil, fmt.Errorf("atlas: glyph %d: %w", g, err)
		}
		tex.blit(pos, tile, bm.RGB8())

		a.places[g] = Placement{
			Texture:      len(a.textures) - 1,
			Region:       image.Rectangle{Min: pos, Max: pos.Add(tile)},
			OriginOffset: origin,
		}
		a.glyphs = append(a.glyphs, g)
	}

	logging.Logger().Debug("atlas: built",
		"family", a.key.Family, "style", a.key.Style,
		"glyphs", len(a.glyphs), "textures", len(a.textures),
		"tile", tile, "skipped", len(a.warnings))
	return a, nil
}

// Textures returns the atlas pages.
func (a *Atlas) Textures() []*Texture { return a.textures }

// Placement returns the tile of glyph g.
func (a *Atlas) Placement(g font.GlyphID) (Placement, bool) {
	p, ok := a.places[g]
	return p, ok
}

// CharToGlyph returns the glyph the atlas uses for r.
func (a *Atlas) CharToGlyph(r rune) (font.GlyphID, bool) {
	g, ok := a.charToGlyph[r]
	return g, ok
}

// GlyphToChar returns a character mapped to g. When several characters
// share a glyph the last one in the character set wins.
func (a *Atlas) GlyphToChar(g font.GlyphID) (rune, bool) {
	r, ok := a.glyphToChar[g]
	return r, ok
}

// Glyphs returns the placed glyphs in increasing order.
func (a *Atlas) Glyphs() []font.GlyphID { return slices.Clone(a.glyphs) }

// Charset returns the normalized character set.
func (a *Atlas) Charset() string { return a.key.Charset }

func (a *Atlas) Format() Format           { return a.format }
func (a *Atlas) SdfScale() msdf.Point     { return a.format.SdfScale }
func (a *Atlas) SdfPadding() image.Point  { return a.format.SdfPadding }
func (a *Atlas) TileSize() image.Point    { return a.tile }
func (a *Atlas) MaxGlyphSize() msdf.Point { return a.maxGlyph }
func (a *Atlas) Key() CacheKey            { return a.key }

// MaxAscent is the largest bounding box top over the glyph set, in glyph
// space.
func (a *Atlas) MaxAscent() float64 { return a.maxAscent }

// MaxDescent is the largest bounding box depth below the baseline.
func (a *Atlas) MaxDescent() float64 { return a.maxDescent }

// Warnings returns the per-glyph failures recovered during the build.
func (a *Atlas) Warnings() []error { return a.warnings }

// Err joins the warnings into one error, or returns nil.
func (a *Atlas) Err() error { return errors.Join(a.warnings...) }
