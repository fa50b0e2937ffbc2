package msdf

import (
	"math"
)

// Contour represents a closed contour of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	Edges []Edge
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}
	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// Winding returns the signed area of the polygon through the edge
// endpoints. Positive means counter-clockwise in a Y-up space.
func (c *Contour) Winding() float64 {
	var area float64
	for i := range c.Edges {
		area += c.Edges[i].StartPoint().Cross(c.Edges[i].EndPoint())
	}
	return area / 2
}

// Shape is a glyph outline expressed as closed contours in a Y-up
// space. Outer contours run clockwise so the interior has a positive
// distance.
type Shape struct {
	Contours []*Contour

	// InverseYAxis flips the row order of generated bitmaps so that row
	// zero is the top of the glyph.
	InverseYAxis bool
}

// AddContour appends an empty contour and returns it.
func (s *Shape) AddContour() *Contour {
	c := &Contour{}
	s.Contours = append(s.Contours, c)
	return c
}

// Bounds returns the bounding box of the shape, accumulated from an
// empty rectangle at the origin. The result therefore always contains
// (0, 0): Left and Bottom are never positive.
func (s *Shape) Bounds() Rect {
	var bounds Rect
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		bounds = bounds.Union(c.Bounds())
	}
	return bounds
}

// Normalize splits every single-edge contour into three edges, which
// edge coloring needs to place distinct colors around a lone curve.
func (s *Shape) Normalize() {
	for _, c := range s.Contours {
		if len(c.Edges) == 1 {
			parts := c.Edges[0].SplitInThirds()
			c.Edges = append(c.Edges[:0], parts[:]...)
		}
	}
}

// Validate reports whether every contour is closed and continuous.
func (s *Shape) Validate() bool {
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		prev := c.Edges[len(c.Edges)-1].EndPoint()
		for i := range c.Edges {
			if !samePoint(prev, c.Edges[i].StartPoint()) {
				return false
			}
			prev = c.Edges[i].EndPoint()
		}
	}
	return true
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) <= 1e-6 && math.Abs(a.Y-b.Y) <= 1e-6
}
