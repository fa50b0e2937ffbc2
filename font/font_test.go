package font_test

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/fonttest"
)

func TestGlyphScale(t *testing.T) {
	tests := []struct {
		upem int
		want float64
	}{
		{2048, 1.0 / 64},
		{1024, 1.0 / 32},
		{1000, 2048.0 / 1000 / 64},
		{0, 0},
	}

	for _, tt := range tests {
		if got := font.GlyphScale(tt.upem); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GlyphScale(%d) = %v, want %v", tt.upem, got, tt.want)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -12, math.NaN(), math.Inf(1)} {
		if _, err := font.New(fonttest.New(), size); !errors.Is(err, font.ErrInvalidSize) {
			t.Errorf("New(size=%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	f, err := font.New(fonttest.New(), 24)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	// 1024 upem: glyph space = design units / 32.
	checks := []struct {
		name      string
		got, want float64
	}{
		{"Ascent", f.Ascent(), 25},
		{"Descent", f.Descent(), 6.25},
		{"Height", f.Height(), 34.375},
		{"Leading", f.Leading(), 3.125},
		{"SizeScale", f.SizeScale(), 0.75},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s() = %v, want %v", c.name, c.got, c.want)
		}
	}

	if got := f.Name(); got != "Test Sans Regular" {
		t.Errorf("Name() = %q, want %q", got, "Test Sans Regular")
	}
}

func TestFontWithName(t *testing.T) {
	f, err := font.New(fonttest.New(), 12, font.WithName("Custom"))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if f.Name() != "Custom" {
		t.Errorf("Name() = %q, want %q", f.Name(), "Custom")
	}
}

func TestFontGlyphs(t *testing.T) {
	f, _ := font.New(fonttest.New(), 12)

	got := f.Glyphs("AB Z")
	want := []font.GlyphID{fonttest.GlyphA, fonttest.GlyphB, fonttest.GlyphSpace, 0}
	if len(got) != len(want) {
		t.Fatalf("Glyphs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Glyphs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWhitespaceWidth(t *testing.T) {
	f, _ := font.New(fonttest.New(), 12)

	space, tab := f.WhitespaceWidth()
	if space != 8 {
		t.Errorf("space width = %v, want 8", space)
	}
	// Tab is unmapped and falls back to .notdef.
	if tab != 500.0/32 {
		t.Errorf("tab width = %v, want %v", tab, 500.0/32)
	}
}

func TestKerningWithoutKerner(t *testing.T) {
	f, _ := font.New(fonttest.New(), 12)
	if k := f.Kerning('A', 'B'); k != 0 {
		t.Errorf("Kerning() = %v, want 0 for a face without kerning", k)
	}
}

func TestKerningSFNT(t *testing.T) {
	face, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	f, _ := font.New(face, 16)
	if k := f.Kerning('A', 'V'); math.IsNaN(k) || math.IsInf(k, 0) {
		t.Errorf("Kerning('A', 'V') = %v", k)
	}
}
