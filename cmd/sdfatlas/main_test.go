package main

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/sdftext"
	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/fonttest"
	"github.com/gogpu/sdftext/layout"
)

func newText(t *testing.T) *sdftext.Text {
	t.Helper()
	f, err := font.New(fonttest.New(), 32)
	if err != nil {
		t.Fatalf("font.New() error = %v", err)
	}
	txt, err := sdftext.New(f,
		sdftext.WithCharset("AB"),
		sdftext.WithCache(atlas.NewCache()),
		sdftext.WithMetricsCache(layout.NewMetricsCache()),
	)
	if err != nil {
		t.Fatalf("sdftext.New() error = %v", err)
	}
	return txt
}

func TestLayoutOutput(t *testing.T) {
	txt := newText(t)
	c := &layoutCmd{Text: "AB", Scale: 1, Align: "left", Color: "#ff8000", X: 10, Y: 100}

	out, err := c.layout(txt)
	if err != nil {
		t.Fatalf("layout() error = %v", err)
	}

	wantPlacements := []glyphPos{
		{Glyph: uint32(fonttest.GlyphA), Rune: "A", X: 0, Y: 0},
		{Glyph: uint32(fonttest.GlyphB), Rune: "B", X: 32, Y: 0},
	}
	if diff := cmp.Diff(wantPlacements, out.Placements); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if out.Size != [2]float64{52, 31.25} {
		t.Errorf("size = %v, want [52 31.25]", out.Size)
	}
	if out.Color != "#ff8000" {
		t.Errorf("color = %q, want #ff8000", out.Color)
	}
	if len(out.Batches) != 1 || len(out.Batches[0].Quads) != 2 {
		t.Fatalf("batches = %+v, want one batch of 2 quads", out.Batches)
	}
	if got, want := out.Batches[0].Quads[0].Pos, [4]float32{8, 76, 44, 102}; got != want {
		t.Errorf("first quad = %v, want %v", got, want)
	}
}

func TestLayoutWrapped(t *testing.T) {
	txt := newText(t)
	c := &layoutCmd{Text: "A B A", Width: 70, Scale: 1, Align: "left", Color: "#ffffff"}

	out, err := c.layout(txt)
	if err != nil {
		t.Fatalf("layout() error = %v", err)
	}
	if len(out.Lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(out.Lines))
	}
	if out.Lines[1].Y != 31.25 {
		t.Errorf("second line y = %v, want 31.25", out.Lines[1].Y)
	}
}

func TestLayoutErrors(t *testing.T) {
	txt := newText(t)

	tests := []struct {
		name string
		cmd  layoutCmd
	}{
		{"bad color", layoutCmd{Text: "A", Scale: 1, Color: "orange"}},
		{"bad align", layoutCmd{Text: "A", Scale: 1, Align: "justify", Color: "#ffffff"}},
		{"zero scale", layoutCmd{Text: "A", Scale: 0, Color: "#ffffff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cmd.layout(txt); err == nil {
				t.Error("layout() error = nil, want an error")
			}
		})
	}
}

func TestFontFlagsFormat(t *testing.T) {
	f := FontFlags{TextureSize: 512, SdfScale: 3, SdfPadding: 4, SdfRange: 6, SdfAngle: 1.5, TileSpacing: 2}
	got := f.format()
	if got.TextureWidth != 512 || got.TextureHeight != 512 {
		t.Errorf("texture = %dx%d, want 512x512", got.TextureWidth, got.TextureHeight)
	}
	if got.SdfAngle != 1.5 {
		t.Errorf("SdfAngle = %v, want 1.5", got.SdfAngle)
	}
	if got.TileSpacing != image.Pt(2, 2) {
		t.Errorf("TileSpacing = %v, want (2,2)", got.TileSpacing)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	f.SdfAngle = 0
	if err := f.format().Validate(); err == nil {
		t.Error("Validate() with zero sdf angle = nil, want an error")
	}
}

func TestFontFlagsOpenMissing(t *testing.T) {
	f := FontFlags{Font: "does-not-exist.ttf", Size: 32}
	if _, err := f.open(); err == nil {
		t.Error("open() error = nil, want an error")
	}
}
