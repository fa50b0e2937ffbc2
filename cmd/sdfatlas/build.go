package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

type buildCmd struct {
	FontFlags `embed:""`

	Output string `short:"o" type:"path" default:"." help:"Directory for the atlas_N.png files"`
}

func (c *buildCmd) Run() error {
	txt, err := c.text()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return err
	}

	for i := range txt.NumTextures() {
		path := filepath.Join(c.Output, fmt.Sprintf("atlas_%d.png", i))
		if err := writePNG(path, txt.Texture(i).Image()); err != nil {
			return err
		}
		fmt.Println(path)
	}

	a := txt.Atlas()
	tile := a.TileSize()
	fmt.Fprintf(os.Stderr, "%s: %d glyphs, %d textures, tile %dx%d\n",
		txt.Font().Name(), len(a.Glyphs()), txt.NumTextures(), tile.X, tile.Y)
	for _, w := range a.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
