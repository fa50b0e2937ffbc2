package atlas

import (
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdftext/font"
	"github.com/gogpu/sdftext/internal/fonttest"
	"github.com/gogpu/sdftext/msdf"
	"github.com/gogpu/sdftext/outline"
)

func median(c [3]uint8) uint8 {
	return max(min(c[0], c[1]), min(max(c[0], c[1]), c[2]))
}

func texel(tex *Texture, x, y int) uint8 {
	c := tex.RGBAt(x, y)
	return median([3]uint8{c.R, c.G, c.B})
}

func TestBuildSmallCharset(t *testing.T) {
	face := fonttest.New()
	a, err := Build(face, DefaultFormat(), "AB")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if n := len(a.Textures()); n != 1 {
		t.Fatalf("len(Textures()) = %d, want 1", n)
	}
	want := []font.GlyphID{fonttest.GlyphA, fonttest.GlyphB, fonttest.GlyphSpace}
	if diff := cmp.Diff(want, a.Glyphs()); diff != "" {
		t.Errorf("Glyphs() mismatch (-want +got):\n%s", diff)
	}
	if got, want := a.TileSize(), image.Pt(72, 52); got != want {
		t.Errorf("TileSize() = %v, want %v", got, want)
	}
	if got, want := a.MaxGlyphSize(), (msdf.Point{X: 32, Y: 21.875}); got != want {
		t.Errorf("MaxGlyphSize() = %v, want %v", got, want)
	}
	if a.MaxAscent() != 21.875 || a.MaxDescent() != 0 {
		t.Errorf("MaxAscent/MaxDescent = %v/%v, want 21.875/0", a.MaxAscent(), a.MaxDescent())
	}

	wantMin := []image.Point{{0, 0}, {73, 0}, {146, 0}}
	var regions []image.Rectangle
	for i, g := range want {
		p, ok := a.Placement(g)
		if !ok {
			t.Fatalf("Placement(%d) missing", g)
		}
		if p.Texture != 0 || p.Region.Min != wantMin[i] || p.Region.Size() != a.TileSize() {
			t.Errorf("Placement(%d) = %+v, want texture 0 at %v", g, p, wantMin[i])
		}
		if !p.Region.In(image.Rect(0, 0, 1024, 1024)) {
			t.Errorf("Placement(%d) region %v outside texture", g, p.Region)
		}
		regions = append(regions, p.Region)
	}
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Overlaps(regions[j]) {
				t.Errorf("regions %v and %v overlap", regions[i], regions[j])
			}
		}
	}

	if g, ok := a.CharToGlyph('B'); !ok || g != fonttest.GlyphB {
		t.Errorf("CharToGlyph('B') = %d, %v", g, ok)
	}
	if r, ok := a.GlyphToChar(fonttest.GlyphSpace); !ok || r != ' ' {
		t.Errorf("GlyphToChar(space) = %q, %v", r, ok)
	}
	if a.Charset() != "AB " {
		t.Errorf("Charset() = %q, want %q", a.Charset(), "AB ")
	}
}

func TestBuildRendersGlyph(t *testing.T) {
	a, err := Build(fonttest.New(), DefaultFormat(), "A")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p, _ := a.Placement(fonttest.GlyphA)
	tex := a.Textures()[p.Texture]

	// Tile pixel (35, 28) samples glyph point (15.75, 9.75), inside the
	// triangle; the top-left pixel is above the apex.
	x, y := p.Region.Min.X, p.Region.Min.Y
	if m := texel(tex, x+35, y+28); m <= 128 {
		t.Errorf("inside texel median = %d, want > 128", m)
	}
	if m := texel(tex, x, y); m >= 128 {
		t.Errorf("outside texel median = %d, want < 128", m)
	}
	// Space has no outline: its tile is all outside.
	sp, _ := a.Placement(fonttest.GlyphSpace)
	if m := texel(tex, sp.Region.Min.X+10, sp.Region.Min.Y+10); m >= 128 {
		t.Errorf("space texel median = %d, want < 128", m)
	}
}

func TestBuildMultipleTextures(t *testing.T) {
	face := fonttest.New()
	format := DefaultFormat().WithTextureSize(150, 60) // 2 tiles per texture
	a, err := Build(face, format, "ABCO")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// Five glyphs including the appended space: ceil(5/2) textures.
	if n := len(a.Textures()); n != 3 {
		t.Fatalf("len(Textures()) = %d, want 3", n)
	}
	for i, g := range a.Glyphs() {
		p, _ := a.Placement(g)
		if p.Texture != i/2 {
			t.Errorf("glyph %d on texture %d, want %d", g, p.Texture, i/2)
		}
	}
}

func TestBuildSkipsBrokenGlyph(t *testing.T) {
	a, err := Build(fonttest.New(), DefaultFormat(), "XA")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := a.Placement(fonttest.GlyphBroken); ok {
		t.Error("broken glyph was placed")
	}
	if _, ok := a.Placement(fonttest.GlyphA); !ok {
		t.Error("glyph A missing")
	}
	if len(a.Warnings()) != 1 || !errors.Is(a.Err(), outline.ErrInvalidGlyph) {
		t.Errorf("Warnings() = %v, want one ErrInvalidGlyph", a.Warnings())
	}
	if pa, _ := a.Placement(fonttest.GlyphA); pa.Region.Min != image.Pt(0, 0) {
		t.Errorf("glyph A at %v, want origin", pa.Region.Min)
	}
}

func TestBuildBrokenGlyphTakesNoCell(t *testing.T) {
	// Z maps to glyph 0, which sorts before every good glyph.
	face := fonttest.New()
	face.Chars['Z'] = fonttest.GlyphNotdef
	face.Outlines[fonttest.GlyphNotdef] = face.Outlines[fonttest.GlyphBroken]

	tests := []struct {
		name    string
		charset string
	}{
		{"broken first", "ZA"},
		{"broken last", "AX"},
		{"broken between", "AZB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := DefaultFormat().WithTextureSize(150, 60)
			a, err := Build(face, format, tt.charset)
			if err != nil {
				t.Fatalf("Build(%q) error = %v", tt.charset, err)
			}
			if len(a.Warnings()) != 1 {
				t.Errorf("Warnings() = %v, want one", a.Warnings())
			}

			glyphs := a.Glyphs()
			capacity := NewGridAllocator(format.TextureWidth, format.TextureHeight, a.TileSize(), format.TileSpacing).Capacity()
			want := (len(glyphs) + capacity - 1) / capacity
			if n := len(a.Textures()); n != want {
				t.Errorf("len(Textures()) = %d, want %d for %d glyphs", n, want, len(glyphs))
			}

			first, ok := a.Placement(glyphs[0])
			if !ok {
				t.Fatalf("Placement(%d) missing", glyphs[0])
			}
			if first.Texture != 0 || first.Region.Min != image.Pt(0, 0) {
				t.Errorf("first glyph %d at texture %d %v, want texture 0 origin", glyphs[0], first.Texture, first.Region.Min)
			}
		})
	}
}

func TestBuildTileTooLarge(t *testing.T) {
	_, err := Build(fonttest.New(), DefaultFormat().WithTextureSize(50, 50), "A")
	if !errors.Is(err, ErrTileTooLarge) {
		t.Errorf("Build() error = %v, want ErrTileTooLarge", err)
	}
}

func TestBuildInvalidFormat(t *testing.T) {
	_, err := Build(fonttest.New(), DefaultFormat().WithSdfRange(-1), "A")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Errorf("Build() error = %v, want *FormatError", err)
	}
}

func TestKeyFor(t *testing.T) {
	face := fonttest.New()
	got := KeyFor(face, DefaultFormat(), "BA")
	want := CacheKey{
		Family:        "Test Sans",
		Style:         "Regular",
		Charset:       "BA ",
		TextureWidth:  1024,
		TextureHeight: 1024,
		TileWidth:     72,
		TileHeight:    52,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KeyFor() mismatch (-want +got):\n%s", diff)
	}
	a, err := Build(face, DefaultFormat(), "BA")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if a.Key() != got {
		t.Errorf("Key() = %+v, want %+v", a.Key(), got)
	}
}

func TestCacheReturnsSameAtlas(t *testing.T) {
	c := NewCache()
	face := fonttest.New()

	a1, err := c.GetOrBuild(face, DefaultFormat(), "AB")
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}
	a2, err := c.GetOrBuild(face, DefaultFormat(), "AB")
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}
	if a1 != a2 {
		t.Error("GetOrBuild() returned different atlases for equal requests")
	}
	if c.Builds() != 1 || c.Len() != 1 {
		t.Errorf("Builds() = %d, Len() = %d; want 1, 1", c.Builds(), c.Len())
	}

	a3, err := c.GetOrBuild(face, DefaultFormat(), "ABC")
	if err != nil {
		t.Fatalf("GetOrBuild() error = %v", err)
	}
	if a3 == a1 {
		t.Error("different charsets share an atlas")
	}
	if c.Builds() != 2 {
		t.Errorf("Builds() = %d, want 2", c.Builds())
	}

	c.Teardown()
	if c.Len() != 0 {
		t.Errorf("Len() after Teardown = %d, want 0", c.Len())
	}
	a4, _ := c.GetOrBuild(face, DefaultFormat(), "AB")
	if a4 == a1 {
		t.Error("Teardown() kept the old atlas")
	}
}

func TestCacheFailedBuildNotStored(t *testing.T) {
	c := NewCache()
	_, err := c.GetOrBuild(fonttest.New(), DefaultFormat().WithTextureSize(40, 40), "A")
	if !errors.Is(err, ErrTileTooLarge) {
		t.Fatalf("GetOrBuild() error = %v, want ErrTileTooLarge", err)
	}
	if c.Len() != 0 || c.Builds() != 0 {
		t.Errorf("Len() = %d, Builds() = %d after failure; want 0, 0", c.Len(), c.Builds())
	}
}

func TestCacheConcurrentBuildsOnce(t *testing.T) {
	face, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("font.Load() error = %v", err)
	}
	c := NewCache()
	const n = 8
	atlases := make([]*Atlas, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := c.GetOrBuild(face, DefaultFormat(), "ab")
			if err != nil {
				t.Errorf("GetOrBuild() error = %v", err)
				return
			}
			atlases[i] = a
		}(i)
	}
	wg.Wait()
	if c.Builds() != 1 {
		t.Errorf("Builds() = %d, want 1", c.Builds())
	}
	for i := 1; i < n; i++ {
		if atlases[i] != atlases[0] {
			t.Errorf("goroutine %d got a different atlas", i)
		}
	}
}

func TestTextureImage(t *testing.T) {
	tex := newTexture(2, 1)
	tex.blit(image.Pt(1, 0), image.Pt(1, 1), []byte{10, 20, 30})
	img := tex.Image()
	if got := img.RGBAAt(1, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("Image().RGBAAt(1, 0) = %v, want {10 20 30 255}", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 255 || got.R != 0 {
		t.Errorf("Image().RGBAAt(0, 0) = %v, want opaque black", got)
	}
}
