package layout

import (
	"slices"

	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/cache"
	"github.com/gogpu/sdftext/internal/logging"
	"github.com/gogpu/sdftext/msdf"
)

// Metrics maps glyphs to their advance in glyph space.
//
// Advances are measured at font.ReferenceSize; Layout converts them to
// the font's point size. Metrics is immutable after BuildMetrics.
type Metrics struct {
	advances map[font.GlyphID]msdf.Point
}

// BuildMetrics reads the advance of every glyph from face. Glyphs whose
// advance cannot be read are left out and later skipped by Layout.
func BuildMetrics(face font.Face, glyphs []font.GlyphID) *Metrics {
	scale := font.GlyphScale(face.UnitsPerEm())
	m := &Metrics{advances: make(map[font.GlyphID]msdf.Point, len(glyphs))}
	for _, g := range glyphs {
		x, y, err := face.GlyphAdvance(g)
		if err != nil {
			logging.Logger().Warn("layout: glyph advance unavailable", "glyph", g, "err", err)
			continue
		}
		m.advances[g] = msdf.Point{X: x * scale, Y: y * scale}
	}
	return m
}

// Advance returns the advance of g and whether g is known.
func (m *Metrics) Advance(g font.GlyphID) (msdf.Point, bool) {
	if m == nil {
		return msdf.Point{}, false
	}
	a, ok := m.advances[g]
	return a, ok
}

// Len returns the number of glyphs with a known advance.
func (m *Metrics) Len() int {
	if m == nil {
		return 0
	}
	return len(m.advances)
}

// Glyphs returns the known glyphs in ascending order.
func (m *Metrics) Glyphs() []font.GlyphID {
	if m == nil {
		return nil
	}
	out := make([]font.GlyphID, 0, len(m.advances))
	for g := range m.advances {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// MetricsKey identifies a metrics table: one per face and character set.
// Faces are identified by name, the same way atlases are.
type MetricsKey struct {
	Family   string
	Style    string
	FullName string
	Charset  string
}

// KeyFor returns the metrics key of face and charset.
func KeyFor(face font.Face, charset string) MetricsKey {
	return MetricsKey{
		Family:   face.Family(),
		Style:    face.Style(),
		FullName: face.FullName(),
		Charset:  charset,
	}
}

// MetricsCache shares metrics tables between texts built on the same face
// and character set. Entries are never evicted.
type MetricsCache struct {
	tables *cache.Registry[MetricsKey, *Metrics]
}

// NewMetricsCache creates an empty metrics cache.
func NewMetricsCache() *MetricsCache {
	return &MetricsCache{tables: cache.New[MetricsKey, *Metrics]()}
}

// GetOrBuild returns the cached table for face and charset, building it
// from glyphs on first use.
func (c *MetricsCache) GetOrBuild(face font.Face, charset string, glyphs []font.GlyphID) *Metrics {
	m, _, _ := c.tables.GetOrCreate(KeyFor(face, charset), func() (*Metrics, error) {
		return BuildMetrics(face, glyphs), nil
	})
	return m
}

// Len returns the number of cached tables.
func (c *MetricsCache) Len() int { return c.tables.Len() }

// Teardown drops every cached table.
func (c *MetricsCache) Teardown() { c.tables.Clear() }
