package msdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func edgeColors(c *Contour) []EdgeColor {
	out := make([]EdgeColor, len(c.Edges))
	for i := range c.Edges {
		out[i] = c.Edges[i].Color
	}
	return out
}

func TestColorEdgesSimpleSquare(t *testing.T) {
	var s Shape
	square(&s, 0, 0, 10, 10)
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	got := edgeColors(s.Contours[0])
	want := []EdgeColor{ColorCyan, ColorMagenta, ColorYellow, ColorMagenta}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("square colors mismatch (-want +got):\n%s", diff)
	}
}

func TestColorEdgesSimpleCornersDiffer(t *testing.T) {
	for seed := uint64(0); seed < 16; seed++ {
		var s Shape
		c := s.AddContour()
		c.AddEdge(NewLinearEdge(Point{0, 0}, Point{5, 10}))
		c.AddEdge(NewLinearEdge(Point{5, 10}, Point{10, 0}))
		c.AddEdge(NewLinearEdge(Point{10, 0}, Point{0, 0}))
		ColorEdgesSimple(&s, DefaultAngleThreshold, seed)

		colors := edgeColors(c)
		for i := range colors {
			next := colors[(i+1)%len(colors)]
			if colors[i] == next {
				t.Errorf("seed %d: edges %d and %d share color %v", seed, i, (i+1)%len(colors), next)
			}
			if colors[i] == ColorWhite || colors[i] == ColorBlack {
				t.Errorf("seed %d: edge %d has color %v at a corner", seed, i, colors[i])
			}
		}
	}
}

func TestColorEdgesSimpleSmooth(t *testing.T) {
	// Two half-circles joined with continuous tangents.
	var s Shape
	c := s.AddContour()
	c.AddEdge(NewCubicEdge(Point{0, 0}, Point{0, 5.5}, Point{10, 5.5}, Point{10, 0}))
	c.AddEdge(NewCubicEdge(Point{10, 0}, Point{10, -5.5}, Point{0, -5.5}, Point{0, 0}))
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	for i, col := range edgeColors(c) {
		if col != ColorWhite {
			t.Errorf("edge %d color = %v, want White", i, col)
		}
	}
}

func TestColorEdgesSimpleTeardrop(t *testing.T) {
	var s Shape
	c := s.AddContour()
	c.AddEdge(NewCubicEdge(Point{0, 0}, Point{-10, 10}, Point{10, 10}, Point{0, 0}))
	s.Normalize()
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	got := edgeColors(c)
	want := []EdgeColor{ColorCyan, ColorWhite, ColorMagenta}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("teardrop colors mismatch (-want +got):\n%s", diff)
	}
}

func TestColorEdgesSimpleShortTeardrop(t *testing.T) {
	// A single edge with one corner is split in place.
	var s Shape
	c := s.AddContour()
	c.AddEdge(NewCubicEdge(Point{0, 0}, Point{-10, 10}, Point{10, 10}, Point{0, 0}))
	ColorEdgesSimple(&s, DefaultAngleThreshold, 0)

	got := edgeColors(c)
	want := []EdgeColor{ColorCyan, ColorWhite, ColorMagenta}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	if !s.Validate() {
		t.Error("split contour is not closed")
	}
}

func TestSwitchColor(t *testing.T) {
	tests := []struct {
		color, banned EdgeColor
		seed          uint64
		want          EdgeColor
		wantSeed      uint64
	}{
		{ColorWhite, ColorBlack, 0, ColorCyan, 0},
		{ColorWhite, ColorBlack, 1, ColorMagenta, 0},
		{ColorWhite, ColorBlack, 5, ColorYellow, 1},
		{ColorCyan, ColorBlack, 0, ColorMagenta, 0},
		{ColorCyan, ColorBlack, 1, ColorYellow, 0},
		{ColorYellow, ColorCyan, 0, ColorMagenta, 0},
	}
	for _, tt := range tests {
		seed := tt.seed
		got := switchColor(tt.color, &seed, tt.banned)
		if got != tt.want || seed != tt.wantSeed {
			t.Errorf("switchColor(%v, %d, %v) = %v, seed %d; want %v, seed %d",
				tt.color, tt.seed, tt.banned, got, seed, tt.want, tt.wantSeed)
		}
	}
}
