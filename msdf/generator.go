package msdf

import (
	"math"
)

// Bitmap is a three-channel float distance field. Pix holds Width*Height
// RGB triples in row-major order.
type Bitmap struct {
	Width, Height int
	Pix           []float32
}

// NewBitmap allocates a zeroed bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{Width: width, Height: height, Pix: make([]float32, width*height*3)}
}

// At returns the RGB triple at (x, y).
func (b *Bitmap) At(x, y int) [3]float32 {
	i := (y*b.Width + x) * 3
	return [3]float32{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Median returns the median of the three channels at (x, y), which is
// the reconstructed distance a shader samples.
func (b *Bitmap) Median(x, y int) float32 {
	p := b.At(x, y)
	return max(min(p[0], p[1]), min(max(p[0], p[1]), p[2]))
}

// RGB8 converts the bitmap to packed 8-bit RGB, clamping each channel
// to [0, 1] first.
func (b *Bitmap) RGB8() []byte {
	out := make([]byte, len(b.Pix))
	for i, v := range b.Pix {
		out[i] = byte(math.Round(float64(max(0, min(1, v))) * 255))
	}
	return out
}

type channelDistance struct {
	dist  SignedDistance
	edge  *Edge
	param float64
}

// Generate fills bitmap with the multi-channel distance field of shape.
// Pixel (x, y) samples shape space at ((x+.5, y+.5) / scale) - translate;
// each channel stores distance/rangeUnits + 0.5, where rangeUnits is
// the distance span in shape units. Edges must already be colored.
func Generate(bitmap *Bitmap, shape *Shape, rangeUnits float64, scale, translate Point) error {
	if bitmap == nil || bitmap.Width <= 0 || bitmap.Height <= 0 {
		return &ConfigError{Field: "Bitmap", Reason: "must have positive dimensions"}
	}
	if len(bitmap.Pix) < bitmap.Width*bitmap.Height*3 {
		return &ConfigError{Field: "Bitmap", Reason: "pixel buffer too small"}
	}
	if rangeUnits <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if scale.X <= 0 || scale.Y <= 0 {
		return &ConfigError{Field: "Scale", Reason: "must be positive"}
	}

	for y := 0; y < bitmap.Height; y++ {
		row := y
		if shape.InverseYAxis {
			row = bitmap.Height - 1 - y
		}
		for x := 0; x < bitmap.Width; x++ {
			p := Point{(float64(x) + 0.5) / scale.X, (float64(y) + 0.5) / scale.Y}.Sub(translate)
			r, g, b := nearestPerChannel(shape, p)
			i := (row*bitmap.Width + x) * 3
			bitmap.Pix[i] = float32(r/rangeUnits + 0.5)
			bitmap.Pix[i+1] = float32(g/rangeUnits + 0.5)
			bitmap.Pix[i+2] = float32(b/rangeUnits + 0.5)
		}
	}
	return nil
}

// nearestPerChannel returns the pseudo-distance from p to the nearest
// edge carrying each channel.
func nearestPerChannel(shape *Shape, p Point) (r, g, b float64) {
	ch := [3]channelDistance{{dist: Infinite()}, {dist: Infinite()}, {dist: Infinite()}}
	for _, c := range shape.Contours {
		for i := range c.Edges {
			e := &c.Edges[i]
			d, param := e.SignedDistance(p)
			for k, bit := range [3]EdgeColor{ColorRed, ColorGreen, ColorBlue} {
				if e.Color&bit != 0 && d.IsCloserThan(ch[k].dist) {
					ch[k] = channelDistance{dist: d, edge: e, param: param}
				}
			}
		}
	}
	var out [3]float64
	for k := range ch {
		if ch[k].edge != nil {
			ch[k].dist = ch[k].edge.PseudoDistance(ch[k].dist, p, ch[k].param)
		}
		out[k] = ch[k].dist.Distance
	}
	return out[0], out[1], out[2]
}
