package atlas

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Texture is one atlas page with packed 8-bit RGB pixels.
type Texture struct {
	Width, Height int

	// Pix holds Width*Height RGB triples, row-major, top row first.
	Pix []byte
}

func newTexture(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pix: make([]byte, width*height*3)}
}

// blit copies a packed RGB tile with its top-left corner at at.
func (t *Texture) blit(at image.Point, tile image.Point, rgb []byte) {
	rowBytes := tile.X * 3
	for y := 0; y < tile.Y; y++ {
		dst := ((at.Y+y)*t.Width + at.X) * 3
		copy(t.Pix[dst:dst+rowBytes], rgb[y*rowBytes:(y+1)*rowBytes])
	}
}

// RGBAt returns the pixel at (x, y).
func (t *Texture) RGBAt(x, y int) color.RGBA {
	i := (y*t.Width + x) * 3
	return color.RGBA{R: t.Pix[i], G: t.Pix[i+1], B: t.Pix[i+2], A: 0xff}
}

// Format returns the GPU texture format of RGBA().
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// RGBA returns the pixels expanded to opaque RGBA for upload.
func (t *Texture) RGBA() []byte {
	out := make([]byte, t.Width*t.Height*4)
	for i, j := 0, 0; i < len(t.Pix); i, j = i+3, j+4 {
		out[j], out[j+1], out[j+2], out[j+3] = t.Pix[i], t.Pix[i+1], t.Pix[i+2], 0xff
	}
	return out
}

// Image returns the texture as an opaque image, e.g. for PNG export.
func (t *Texture) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    t.RGBA(),
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}
