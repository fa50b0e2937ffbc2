package msdf

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateSquare(t *testing.T) {
	var s Shape
	square(&s, 0, 0, 10, 10)
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	bm := NewBitmap(20, 20)
	if err := Generate(bm, &s, 4, Point{1, 1}, Point{4.5, 4.5}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Pixel (9, 9) samples the square center (5, 5).
	if got := bm.Median(9, 9); math.Abs(float64(got)-1.75) > 1e-5 {
		t.Errorf("Median(center) = %v, want 1.75", got)
	}
	// Pixel (0, 0) samples (-4, -4), outside the square.
	if got := bm.Median(0, 0); got >= 0.5 {
		t.Errorf("Median(outside) = %v, want < 0.5", got)
	}
	// Every channel is positive well inside a convex shape.
	for k, v := range bm.At(9, 9) {
		if v <= 0.5 {
			t.Errorf("channel %d at center = %v, want > 0.5", k, v)
		}
	}
}

func TestGenerateHole(t *testing.T) {
	var s Shape
	square(&s, 0, 0, 30, 30)
	hole(&s, 10, 10, 20, 20)
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	bm := NewBitmap(30, 30)
	if err := Generate(bm, &s, 4, Point{1, 1}, Point{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := bm.Median(14, 14); got >= 0.5 {
		t.Errorf("Median(hole) = %v, want < 0.5", got)
	}
	if got := bm.Median(4, 4); got <= 0.5 {
		t.Errorf("Median(ring) = %v, want > 0.5", got)
	}
}

func TestGenerateInverseYAxis(t *testing.T) {
	build := func(inverse bool) *Bitmap {
		var s Shape
		c := s.AddContour()
		c.AddEdge(NewLinearEdge(Point{0, 0}, Point{2, 12}))
		c.AddEdge(NewLinearEdge(Point{2, 12}, Point{10, 0}))
		c.AddEdge(NewLinearEdge(Point{10, 0}, Point{0, 0}))
		s.InverseYAxis = inverse
		ColorEdgesSimple(&s, DefaultAngleThreshold, 0)
		bm := NewBitmap(12, 14)
		if err := Generate(bm, &s, 4, Point{1, 1}, Point{1, 1}); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		return bm
	}
	up, down := build(false), build(true)
	for y := 0; y < up.Height; y++ {
		for x := 0; x < up.Width; x++ {
			if up.At(x, y) != down.At(x, down.Height-1-y) {
				t.Fatalf("row %d does not match flipped row %d at x=%d", y, down.Height-1-y, x)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	build := func() []byte {
		var s Shape
		c := s.AddContour()
		c.AddEdge(NewCubicEdge(Point{0, 0}, Point{-10, 10}, Point{10, 10}, Point{0, 0}))
		s.Normalize()
		ColorEdgesSimple(&s, DefaultAngleThreshold, 0)
		bm := NewBitmap(16, 16)
		if err := Generate(bm, &s, 4, Point{1, 1}, Point{8, 2}); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		return bm.RGB8()
	}
	a, b := build(), build()
	if string(a) != string(b) {
		t.Error("two generations of the same shape differ")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	var s Shape
	square(&s, 0, 0, 1, 1)
	tests := []struct {
		name  string
		bm    *Bitmap
		rng   float64
		scale Point
	}{
		{"nil bitmap", nil, 4, Point{1, 1}},
		{"zero size", &Bitmap{}, 4, Point{1, 1}},
		{"short buffer", &Bitmap{Width: 2, Height: 2, Pix: make([]float32, 3)}, 4, Point{1, 1}},
		{"zero range", NewBitmap(2, 2), 0, Point{1, 1}},
		{"zero scale", NewBitmap(2, 2), 4, Point{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Generate(tt.bm, &s, tt.rng, tt.scale, Point{})
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Generate() error = %v, want *ConfigError", err)
			}
		})
	}
}

func TestBitmapRGB8Clamps(t *testing.T) {
	bm := &Bitmap{Width: 1, Height: 1, Pix: []float32{-3, 0.5, 7}}
	got := bm.RGB8()
	want := []byte{0, 128, 255}
	if string(got) != string(want) {
		t.Errorf("RGB8() = %v, want %v", got, want)
	}
}
