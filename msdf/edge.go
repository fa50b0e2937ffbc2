package msdf

import (
	"math"
)

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor is a set of RGB channels an edge contributes to.
type EdgeColor uint8

const (
	ColorBlack   EdgeColor = 0
	ColorRed     EdgeColor = 1
	ColorGreen   EdgeColor = 2
	ColorYellow  EdgeColor = 3
	ColorBlue    EdgeColor = 4
	ColorMagenta EdgeColor = 5
	ColorCyan    EdgeColor = 6
	ColorWhite   EdgeColor = 7
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// HasRed returns true if the color includes the red channel.
func (c EdgeColor) HasRed() bool { return c&ColorRed != 0 }

// HasGreen returns true if the color includes the green channel.
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }

// HasBlue returns true if the color includes the blue channel.
func (c EdgeColor) HasBlue() bool { return c&ColorBlue != 0 }

// Edge is a single linear, quadratic or cubic segment of a contour.
type Edge struct {
	Type EdgeType

	// Points holds the control points. Linear uses P0..P1, quadratic
	// P0..P2 and cubic P0..P3.
	Points [4]Point

	Color EdgeColor
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{Type: EdgeLinear, Points: [4]Point{start, end}, Color: ColorWhite}
}

// NewQuadraticEdge creates a new quadratic Bezier edge.
func NewQuadraticEdge(start, control, end Point) Edge {
	return Edge{Type: EdgeQuadratic, Points: [4]Point{start, control, end}, Color: ColorWhite}
}

// NewCubicEdge creates a new cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Point) Edge {
	return Edge{Type: EdgeCubic, Points: [4]Point{start, control1, control2, end}, Color: ColorWhite}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Point {
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Point {
	switch e.Type {
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[1]
	}
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	p := e.Points
	switch e.Type {
	case EdgeQuadratic:
		return p[0].Lerp(p[1], t).Lerp(p[1].Lerp(p[2], t), t)
	case EdgeCubic:
		p12 := p[1].Lerp(p[2], t)
		return p[0].Lerp(p[1], t).Lerp(p12, t).Lerp(p12.Lerp(p[2].Lerp(p[3], t), t), t)
	default:
		return p[0].Lerp(p[1], t)
	}
}

// DirectionAt returns the (unnormalized) tangent at parameter t. Degenerate
// control points fall back to the chord so the result is never zero for a
// non-degenerate edge.
func (e *Edge) DirectionAt(t float64) Point {
	p := e.Points
	switch e.Type {
	case EdgeQuadratic:
		d := p[1].Sub(p[0]).Lerp(p[2].Sub(p[1]), t)
		if d == (Point{}) {
			return p[2].Sub(p[0])
		}
		return d
	case EdgeCubic:
		d := p[1].Sub(p[0]).Lerp(p[2].Sub(p[1]), t).Lerp(p[2].Sub(p[1]).Lerp(p[3].Sub(p[2]), t), t)
		if d == (Point{}) {
			if t == 0 {
				return p[2].Sub(p[0])
			}
			if t == 1 {
				return p[3].Sub(p[1])
			}
		}
		return d
	default:
		return p[1].Sub(p[0])
	}
}

// SignedDistance returns the signed distance from p to the edge and the
// curve parameter of the nearest point. The parameter falls outside
// [0, 1] when the nearest point is an endpoint and p lies beyond it.
func (e *Edge) SignedDistance(p Point) (SignedDistance, float64) {
	switch e.Type {
	case EdgeQuadratic:
		return e.quadraticDistance(p)
	case EdgeCubic:
		return e.cubicDistance(p)
	default:
		return e.linearDistance(p)
	}
}

func (e *Edge) linearDistance(p Point) (SignedDistance, float64) {
	p0, p1 := e.Points[0], e.Points[1]
	aq := p.Sub(p0)
	ab := p1.Sub(p0)
	param := aq.Dot(ab) / ab.Dot(ab)
	if math.IsNaN(param) {
		param = 0
	}
	end := p0
	if param > 0.5 {
		end = p1
	}
	eq := end.Sub(p)
	endDist := eq.Length()
	if param > 0 && param < 1 {
		ortho := ab.Orthonormal().Dot(aq)
		if math.Abs(ortho) < endDist {
			return SignedDistance{Distance: ortho}, param
		}
	}
	return SignedDistance{
		Distance: nonZeroSign(aq.Cross(ab)) * endDist,
		Dot:      math.Abs(ab.Normalized().Dot(eq.Normalized())),
	}, param
}

func (e *Edge) quadraticDistance(p Point) (SignedDistance, float64) {
	p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
	qa := p0.Sub(p)
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)

	var roots [3]float64
	n := solveCubic(&roots, br.Dot(br), 3*ab.Dot(br), 2*ab.Dot(ab)+qa.Dot(br), qa.Dot(ab))

	dir := e.DirectionAt(0)
	minDist := nonZeroSign(dir.Cross(qa)) * qa.Length()
	param := -qa.Dot(dir) / dir.Dot(dir)

	dir = e.DirectionAt(1)
	bq := p2.Sub(p)
	if d := bq.Length(); d < math.Abs(minDist) {
		minDist = nonZeroSign(dir.Cross(bq)) * d
		param = p.Sub(p1).Dot(dir) / dir.Dot(dir)
	}

	for _, t := range roots[:n] {
		if t <= 0 || t >= 1 {
			continue
		}
		qe := qa.Add(ab.Mul(2 * t)).Add(br.Mul(t * t))
		if d := qe.Length(); d <= math.Abs(minDist) {
			minDist = nonZeroSign(ab.Add(br.Mul(t)).Cross(qe)) * d
			param = t
		}
	}
	return e.finishDistance(minDist, param, qa, bq), param
}

const (
	cubicSearchStarts = 4
	cubicSearchSteps  = 4
)

func (e *Edge) cubicDistance(p Point) (SignedDistance, float64) {
	p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
	qa := p0.Sub(p)
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)
	as := p3.Sub(p2).Sub(p2.Sub(p1)).Sub(br)

	dir := e.DirectionAt(0)
	minDist := nonZeroSign(dir.Cross(qa)) * qa.Length()
	param := -qa.Dot(dir) / dir.Dot(dir)

	dir = e.DirectionAt(1)
	bq := p3.Sub(p)
	if d := bq.Length(); d < math.Abs(minDist) {
		minDist = nonZeroSign(dir.Cross(bq)) * d
		param = 1 + p.Sub(p3).Dot(dir)/dir.Dot(dir)
	}

	at := func(t float64) Point {
		return qa.Add(ab.Mul(3 * t)).Add(br.Mul(3 * t * t)).Add(as.Mul(t * t * t))
	}
	for i := 0; i <= cubicSearchStarts; i++ {
		t := float64(i) / cubicSearchStarts
		qe := at(t)
		for range cubicSearchSteps {
			d1 := ab.Mul(3).Add(br.Mul(6 * t)).Add(as.Mul(3 * t * t))
			d2 := br.Mul(6).Add(as.Mul(6 * t))
			t -= qe.Dot(d1) / (d1.Dot(d1) + qe.Dot(d2))
			if t <= 0 || t >= 1 {
				break
			}
			qe = at(t)
			if d := qe.Length(); d < math.Abs(minDist) {
				minDist = nonZeroSign(e.DirectionAt(t).Cross(qe)) * d
				param = t
			}
		}
	}
	return e.finishDistance(minDist, param, qa, bq), param
}

// finishDistance attaches the endpoint tie-break to a curve distance.
// qa and bq point from the sample to the start and end points.
func (e *Edge) finishDistance(dist, param float64, qa, bq Point) SignedDistance {
	switch {
	case param >= 0 && param <= 1:
		return SignedDistance{Distance: dist}
	case param < 0.5:
		return SignedDistance{Distance: dist, Dot: math.Abs(e.DirectionAt(0).Normalized().Dot(qa.Normalized()))}
	default:
		return SignedDistance{Distance: dist, Dot: math.Abs(e.DirectionAt(1).Normalized().Dot(bq.Normalized()))}
	}
}

// PseudoDistance extends the edge past its endpoints along the end
// tangents. When p lies beyond an endpoint and the perpendicular
// distance to the extension is no larger than d, that distance replaces d.
func (e *Edge) PseudoDistance(d SignedDistance, p Point, param float64) SignedDistance {
	switch {
	case param < 0:
		dir := e.DirectionAt(0).Normalized()
		aq := p.Sub(e.StartPoint())
		if aq.Dot(dir) < 0 {
			if pd := aq.Cross(dir); math.Abs(pd) <= math.Abs(d.Distance) {
				return SignedDistance{Distance: pd}
			}
		}
	case param > 1:
		dir := e.DirectionAt(1).Normalized()
		bq := p.Sub(e.EndPoint())
		if bq.Dot(dir) > 0 {
			if pd := bq.Cross(dir); math.Abs(pd) <= math.Abs(d.Distance) {
				return SignedDistance{Distance: pd}
			}
		}
	}
	return d
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	p := e.Points
	r := Rect{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}.Include(e.EndPoint())
	switch e.Type {
	case EdgeQuadratic:
		bot := p[1].Sub(p[0]).Sub(p[2].Sub(p[1]))
		if bot.X != 0 {
			if t := (p[1].X - p[0].X) / bot.X; t > 0 && t < 1 {
				r = r.Include(e.PointAt(t))
			}
		}
		if bot.Y != 0 {
			if t := (p[1].Y - p[0].Y) / bot.Y; t > 0 && t < 1 {
				r = r.Include(e.PointAt(t))
			}
		}
	case EdgeCubic:
		a0 := p[1].Sub(p[0])
		a1 := p[2].Sub(p[1]).Sub(a0).Mul(2)
		a2 := p[3].Sub(p[2].Mul(3)).Add(p[1].Mul(3)).Sub(p[0])
		var roots [3]float64
		n := solveQuadratic(&roots, a2.X, a1.X, a0.X)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				r = r.Include(e.PointAt(t))
			}
		}
		n = solveQuadratic(&roots, a2.Y, a1.Y, a0.Y)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				r = r.Include(e.PointAt(t))
			}
		}
	}
	return r
}

// SplitInThirds splits the edge into three consecutive edges of the same
// type and color covering parameters [0,1/3], [1/3,2/3] and [2/3,1].
func (e *Edge) SplitInThirds() [3]Edge {
	p := e.Points
	a, b := e.PointAt(1.0/3), e.PointAt(2.0/3)
	var parts [3]Edge
	switch e.Type {
	case EdgeQuadratic:
		parts[0] = NewQuadraticEdge(p[0], p[0].Lerp(p[1], 1.0/3), a)
		parts[1] = NewQuadraticEdge(a, p[0].Lerp(p[1], 5.0/9).Lerp(p[1].Lerp(p[2], 4.0/9), 0.5), b)
		parts[2] = NewQuadraticEdge(b, p[1].Lerp(p[2], 2.0/3), p[2])
	case EdgeCubic:
		c1 := p[0]
		if p[0] != p[1] {
			c1 = p[0].Lerp(p[1], 1.0/3)
		}
		c6 := p[3]
		if p[2] != p[3] {
			c6 = p[2].Lerp(p[3], 2.0/3)
		}
		third := func(t float64, i int) Point {
			return p[i].Lerp(p[i+1], t)
		}
		parts[0] = NewCubicEdge(p[0], c1, third(1.0/3, 0).Lerp(third(1.0/3, 1), 1.0/3), a)
		parts[1] = NewCubicEdge(a,
			third(1.0/3, 0).Lerp(third(1.0/3, 1), 1.0/3).Lerp(third(1.0/3, 1).Lerp(third(1.0/3, 2), 1.0/3), 2.0/3),
			third(2.0/3, 0).Lerp(third(2.0/3, 1), 2.0/3).Lerp(third(2.0/3, 1).Lerp(third(2.0/3, 2), 2.0/3), 1.0/3),
			b)
		parts[2] = NewCubicEdge(b, third(2.0/3, 1).Lerp(third(2.0/3, 2), 2.0/3), c6, p[3])
	default:
		parts[0] = NewLinearEdge(p[0], a)
		parts[1] = NewLinearEdge(a, b)
		parts[2] = NewLinearEdge(b, p[1])
	}
	for i := range parts {
		parts[i].Color = e.Color
	}
	return parts
}

// solveQuadratic stores the real roots of a*x^2 + b*x + c = 0 in x and
// returns their count. A fully degenerate equation yields no roots.
func solveQuadratic(x *[3]float64, a, b, c float64) int {
	if a == 0 || math.Abs(b) > 1e12*math.Abs(a) {
		if b == 0 {
			return 0
		}
		x[0] = -c / b
		return 1
	}
	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		disc = math.Sqrt(disc)
		x[0] = (-b + disc) / (2 * a)
		x[1] = (-b - disc) / (2 * a)
		return 2
	case disc == 0:
		x[0] = -0.5 * b / a
		return 1
	default:
		return 0
	}
}

// solveCubicNormed solves x^3 + a*x^2 + b*x + c = 0.
func solveCubicNormed(x *[3]float64, a, b, c float64) int {
	a2 := a * a
	q := (a2 - 3*b) / 9
	r := (a*(2*a2-9*b) + 27*c) / 54
	r2 := r * r
	q3 := q * q * q
	a /= 3
	if r2 < q3 {
		t := math.Acos(max(-1, min(1, r/math.Sqrt(q3))))
		q = -2 * math.Sqrt(q)
		x[0] = q*math.Cos(t/3) - a
		x[1] = q*math.Cos((t+2*math.Pi)/3) - a
		x[2] = q*math.Cos((t-2*math.Pi)/3) - a
		return 3
	}
	u := math.Cbrt(math.Abs(r) + math.Sqrt(r2-q3))
	if r >= 0 {
		u = -u
	}
	v := 0.0
	if u != 0 {
		v = q / u
	}
	x[0] = u + v - a
	if u == v || math.Abs(u-v) < 1e-12*math.Abs(u+v) {
		x[1] = -0.5*(u+v) - a
		return 2
	}
	return 1
}

// solveCubic stores the real roots of a*x^3 + b*x^2 + c*x + d = 0 in x.
// Large b/a ratios are treated as quadratic to limit numerical error.
func solveCubic(x *[3]float64, a, b, c, d float64) int {
	if a != 0 {
		if bn := b / a; math.Abs(bn) < 1e6 {
			return solveCubicNormed(x, bn, c/a, d/a)
		}
	}
	return solveQuadratic(x, b, c, d)
}
