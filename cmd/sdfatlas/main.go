// Command sdfatlas builds multi-channel signed distance field atlases
// and lays out text against them.
//
// Usage:
//
//	sdfatlas build --font-dir /usr/share/fonts "DejaVu Sans" -o out/
//	sdfatlas fonts /usr/share/fonts
//	sdfatlas layout ./Go-Regular.ttf "Hello, World" --width 200 --color "#ff8800"
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/sdftext"
	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/font"
)

var cli struct {
	Verbose bool `short:"v" help:"Log atlas builds and skipped glyphs to stderr"`

	Build  buildCmd  `cmd:"" help:"Render the atlas textures of a font to PNG files"`
	Fonts  fontsCmd  `cmd:"" help:"List the fonts found under a directory"`
	Layout layoutCmd `cmd:"" help:"Print glyph placements and quads of a string as JSON"`
}

// FontFlags selects a font by file path or, with --font-dir, by name.
type FontFlags struct {
	Font    string  `arg:"" name:"font" help:"Font file, or font name when --font-dir is set"`
	FontDir string  `name:"font-dir" type:"existingdir" help:"Directory to search for the font by name"`
	Size    float64 `short:"s" default:"32" help:"Font size in points"`
	Charset string  `short:"c" help:"Characters to render (default: built-in set)"`

	TextureSize int     `name:"texture-size" default:"1024" help:"Atlas texture width and height"`
	SdfScale    float64 `name:"sdf-scale" default:"2" help:"Glyph space to texel scale"`
	SdfPadding  int     `name:"sdf-padding" default:"2" help:"Padding around each glyph in glyph units"`
	SdfRange    float64 `name:"sdf-range" default:"4" help:"Distance range in texels"`
	SdfAngle    float64 `name:"sdf-angle" default:"3" help:"Corner angle threshold in radians for edge coloring"`
	TileSpacing int     `name:"tile-spacing" default:"1" help:"Gap between atlas tiles in pixels"`
}

func (f *FontFlags) open() (*font.Font, error) {
	if f.FontDir == "" {
		face, err := font.LoadFile(f.Font)
		if err != nil {
			return nil, err
		}
		return font.New(face, f.Size)
	}

	reg := font.NewRegistry()
	if _, err := reg.ScanDir(f.FontDir); err != nil {
		return nil, fmt.Errorf("scan %s: %w", f.FontDir, err)
	}
	return reg.Open(f.Font, f.Size)
}

func (f *FontFlags) format() atlas.Format {
	return atlas.DefaultFormat().
		WithTextureSize(f.TextureSize, f.TextureSize).
		WithSdfScale(f.SdfScale).
		WithSdfPadding(f.SdfPadding).
		WithSdfRange(f.SdfRange).
		WithSdfAngle(f.SdfAngle).
		WithTileSpacing(f.TileSpacing, f.TileSpacing)
}

func (f *FontFlags) text() (*sdftext.Text, error) {
	fnt, err := f.open()
	if err != nil {
		return nil, err
	}
	opts := []sdftext.Option{sdftext.WithFormat(f.format())}
	if f.Charset != "" {
		opts = append(opts, sdftext.WithCharset(f.Charset))
	}
	return sdftext.New(fnt, opts...)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("sdfatlas"),
		kong.Description("Build MSDF glyph atlases and lay out text."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		sdftext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx.FatalIfErrorf(ctx.Run())
}
