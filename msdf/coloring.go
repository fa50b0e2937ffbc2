package msdf

import (
	"math"
)

// DefaultAngleThreshold is the corner angle, in radians, below which a
// change of direction counts as a corner.
const DefaultAngleThreshold = 3.0

// ColorEdgesSimple assigns channel colors so that every corner sits
// between edges of different colors. angleThreshold is in radians; the
// seed drives the deterministic color sequence.
func ColorEdgesSimple(shape *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)
	var corners []int
	for _, c := range shape.Contours {
		corners = corners[:0]
		if len(c.Edges) > 0 {
			prevDir := c.Edges[len(c.Edges)-1].DirectionAt(1)
			for i := range c.Edges {
				if isCorner(prevDir.Normalized(), c.Edges[i].DirectionAt(0).Normalized(), crossThreshold) {
					corners = append(corners, i)
				}
				prevDir = c.Edges[i].DirectionAt(1)
			}
		}

		switch len(corners) {
		case 0:
			for i := range c.Edges {
				c.Edges[i].Color = ColorWhite
			}
		case 1:
			colorTeardrop(c, corners[0], &seed)
		default:
			colorSplines(c, corners, &seed)
		}
	}
}

func isCorner(a, b Point, crossThreshold float64) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}

// colorTeardrop handles a contour with a single corner: the edges are
// spread over three colors so that both sides of the corner differ.
func colorTeardrop(c *Contour, corner int, seed *uint64) {
	colors := [3]EdgeColor{ColorWhite, ColorWhite}
	colors[0] = switchColor(colors[0], seed, ColorBlack)
	colors[2] = switchColor(colors[0], seed, ColorBlack)

	m := len(c.Edges)
	if m >= 3 {
		for i := 0; i < m; i++ {
			k := int(3+2.875*float64(i)/float64(m-1)-1.4375+0.5) - 3
			c.Edges[(corner+i)%m].Color = colors[1+k]
		}
		return
	}

	// One or two edges: split into thirds to get enough segments.
	var parts [7]*Edge
	first := c.Edges[0].SplitInThirds()
	parts[0+3*corner], parts[1+3*corner], parts[2+3*corner] = &first[0], &first[1], &first[2]
	if m >= 2 {
		second := c.Edges[1].SplitInThirds()
		parts[3-3*corner], parts[4-3*corner], parts[5-3*corner] = &second[0], &second[1], &second[2]
		parts[0].Color, parts[1].Color = colors[0], colors[0]
		parts[2].Color, parts[3].Color = colors[1], colors[1]
		parts[4].Color, parts[5].Color = colors[2], colors[2]
	} else {
		parts[0].Color = colors[0]
		parts[1].Color = colors[1]
		parts[2].Color = colors[2]
	}
	edges := make([]Edge, 0, 6)
	for i := 0; parts[i] != nil; i++ {
		edges = append(edges, *parts[i])
	}
	c.Edges = edges
}

// colorSplines colors each run of edges between two corners with one
// color, switching at every corner. The last run avoids the first color.
func colorSplines(c *Contour, corners []int, seed *uint64) {
	m := len(c.Edges)
	spline := 0
	start := corners[0]
	color := switchColor(ColorWhite, seed, ColorBlack)
	initial := color
	for i := 0; i < m; i++ {
		index := (start + i) % m
		if spline+1 < len(corners) && corners[spline+1] == index {
			spline++
			banned := ColorBlack
			if spline == len(corners)-1 {
				banned = initial
			}
			color = switchColor(color, seed, banned)
		}
		c.Edges[index].Color = color
	}
}

// switchColor returns the next two-channel color after color, never
// sharing a single channel with banned.
func switchColor(color EdgeColor, seed *uint64, banned EdgeColor) EdgeColor {
	combined := color & banned
	if combined == ColorRed || combined == ColorGreen || combined == ColorBlue {
		return combined ^ ColorWhite
	}
	if color == ColorBlack || color == ColorWhite {
		start := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
		next := start[*seed%3]
		*seed /= 3
		return next
	}
	shifted := int(color) << (1 + (*seed & 1))
	*seed >>= 1
	return EdgeColor((shifted | shifted>>3) & int(ColorWhite))
}
