package font

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadGoRegular(t *testing.T) *SFNTFace {
	t.Helper()
	face, err := Load(goregular.TTF)
	if err != nil {
		t.Fatalf("Load(goregular) error = %v", err)
	}
	return face
}

func TestLoadNames(t *testing.T) {
	face := loadGoRegular(t)

	if got := face.Family(); got != "Go" {
		t.Errorf("Family() = %q, want %q", got, "Go")
	}
	if got := face.Style(); got != "Regular" {
		t.Errorf("Style() = %q, want %q", got, "Regular")
	}
	if face.FullName() == "" {
		t.Error("FullName() is empty")
	}
	if got := face.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}
	if face.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Load(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := Load([]byte("definitely not a font")); err == nil {
		t.Error("Load(garbage) should fail")
	}

	missing := filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := LoadFile(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCharIndex(t *testing.T) {
	face := loadGoRegular(t)

	if face.CharIndex('A') == 0 {
		t.Error("CharIndex('A') = 0, want a mapped glyph")
	}
	if face.CharIndex('A') == face.CharIndex('B') {
		t.Error("'A' and 'B' map to the same glyph")
	}
	if got := face.CharIndex(0x10FFFD); got != 0 {
		t.Errorf("CharIndex(private use) = %d, want 0", got)
	}
}

func TestMetrics(t *testing.T) {
	face := loadGoRegular(t)
	m := face.Metrics()

	if m.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", m.UnitsPerEm)
	}
	if m.Ascender <= 0 {
		t.Errorf("Ascender = %d, want > 0", m.Ascender)
	}
	if m.Descender >= 0 {
		t.Errorf("Descender = %d, want < 0", m.Descender)
	}
	if m.LineHeight < m.Ascender-m.Descender {
		t.Errorf("LineHeight = %d, want >= %d", m.LineHeight, m.Ascender-m.Descender)
	}
}

func TestGlyphAdvance(t *testing.T) {
	face := loadGoRegular(t)

	x, y, err := face.GlyphAdvance(face.CharIndex('M'))
	if err != nil {
		t.Fatalf("GlyphAdvance error = %v", err)
	}
	if x <= 0 || x > 2048 {
		t.Errorf("advance x = %v, want within (0, 2048]", x)
	}
	if y != 0 {
		t.Errorf("advance y = %v, want 0", y)
	}
}

func TestGlyphOutlineTagStream(t *testing.T) {
	face := loadGoRegular(t)

	for _, r := range "AOgQ8" {
		o, err := face.GlyphOutline(face.CharIndex(r))
		if err != nil {
			t.Fatalf("GlyphOutline(%q) error = %v", r, err)
		}
		if o.IsEmpty() {
			t.Fatalf("GlyphOutline(%q) is empty", r)
		}
		if len(o.Points) != len(o.Tags) {
			t.Fatalf("%q: %d points, %d tags", r, len(o.Points), len(o.Tags))
		}

		start := 0
		for i, end := range o.ContourEnds {
			if end < start || end >= len(o.Points) {
				t.Fatalf("%q contour %d: end %d out of range [%d, %d)", r, i, end, start, len(o.Points))
			}
			if o.Tags[start].Kind() != PointOnCurve {
				t.Errorf("%q contour %d starts with %v, want OnCurve", r, i, o.Tags[start].Kind())
			}
			if end > start && o.Tags[end].Kind() == PointOnCurve && o.Points[end] == o.Points[start] {
				t.Errorf("%q contour %d repeats its start point", r, i)
			}
			start = end + 1
		}
	}
}

func TestGlyphOutlineYUp(t *testing.T) {
	face := loadGoRegular(t)

	o, err := face.GlyphOutline(face.CharIndex('l'))
	if err != nil {
		t.Fatalf("GlyphOutline('l') error = %v", err)
	}
	maxY := 0.0
	for _, p := range o.Points {
		maxY = max(maxY, p.Y)
	}
	if maxY <= 0 {
		t.Errorf("max Y of 'l' = %v, want ascender above the baseline", maxY)
	}
}

func TestGlyphOutlineSpaceIsEmpty(t *testing.T) {
	face := loadGoRegular(t)

	o, err := face.GlyphOutline(face.CharIndex(' '))
	if err != nil {
		t.Fatalf("GlyphOutline(' ') error = %v", err)
	}
	if !o.IsEmpty() {
		t.Errorf("space outline has %d contours, want 0", len(o.ContourEnds))
	}
}

func TestKerningNoError(t *testing.T) {
	face := loadGoRegular(t)

	if _, err := face.Kerning(face.CharIndex('A'), face.CharIndex('V')); err != nil {
		t.Errorf("Kerning error = %v", err)
	}
}

func TestTagKind(t *testing.T) {
	tests := []struct {
		tag  Tag
		want PointKind
	}{
		{TagOnCurve, PointOnCurve},
		{TagQuadratic, PointQuadratic},
		{TagCubic, PointCubic},
		{TagOnCurve | TagCubic, PointOnCurve},
		{Tag(0x18), PointQuadratic}, // FreeType dropout bits are ignored
	}

	for _, tt := range tests {
		if got := tt.tag.Kind(); got != tt.want {
			t.Errorf("Tag(%#x).Kind() = %v, want %v", uint8(tt.tag), got, tt.want)
		}
	}
}
