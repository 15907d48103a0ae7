package svgpath

import (
	"errors"
	"math"
	"sort"
)

// This file provides arc length queries on paths,
// independent of any document model.

var (
	// ErrOutOfRange is returned when querying a point outside [0, Length()].
	ErrOutOfRange = errors.New("distance out of path range")
	// ErrEmptyGeometry is returned when querying a path without any point.
	ErrEmptyGeometry = errors.New("empty path geometry")
	// ErrDegenerate is returned when the evaluation produced an invalid point.
	ErrDegenerate = errors.New("degenerate segment")
)

// Segment is one drawing command of a path, measured by arc length.
type Segment interface {
	// Length returns the arc length of the segment.
	Length() float64
	// PointAt returns the point at arc length `d` from the segment start.
	PointAt(d float64) (Point, error)
	// Bounds returns the exact bounding box of the segment.
	Bounds() Rect
}

type lineSegment struct {
	a, b   Point
	length float64
}

func newLineSegment(a, b Point) *lineSegment {
	return &lineSegment{a: a, b: b, length: math.Hypot(b.X-a.X, b.Y-a.Y)}
}

func (l *lineSegment) Length() float64 { return l.length }

func (l *lineSegment) PointAt(d float64) (Point, error) {
	if d < 0 || d > l.length {
		return Point{}, ErrOutOfRange
	}
	if l.length == 0 {
		return l.a, nil
	}
	return l.a.lerp(l.b, d/l.length), nil
}

func (l *lineSegment) Bounds() Rect { return EmptyRect().addPoint(l.a).addPoint(l.b) }

const cubicLUTSize = 24

// 5 points Gauss-Legendre quadrature on [-1, 1]
var (
	glAbscissae = [5]float64{0, -0.5384693101056831, 0.5384693101056831, -0.9061798459386640, 0.9061798459386640}
	glWeights   = [5]float64{0.5688888888888889, 0.4786286704993665, 0.4786286704993665, 0.2369268850561891, 0.2369268850561891}
)

type cubicSegment struct {
	p [4]Point
	// cumulative arc length at t = i / (len(lut)-1)
	lut [cubicLUTSize + 1]float64
}

func newCubicSegment(p0, p1, p2, p3 Point) *cubicSegment {
	c := &cubicSegment{p: [4]Point{p0, p1, p2, p3}}
	for i := 1; i <= cubicLUTSize; i++ {
		t0, t1 := float64(i-1)/cubicLUTSize, float64(i)/cubicLUTSize
		c.lut[i] = c.lut[i-1] + c.arcLength(t0, t1)
	}
	return c
}

// quadratic curves are elevated to cubic ones
func newQuadSegment(p0, p1, p2 Point) *cubicSegment {
	c1 := p0.add(p1.sub(p0).scale(2. / 3))
	c2 := p2.add(p1.sub(p2).scale(2. / 3))
	return newCubicSegment(p0, c1, c2, p2)
}

func (c *cubicSegment) evaluateCurve(t float64) Point {
	return Point{
		bezierSpline(c.p[0].X, c.p[1].X, c.p[2].X, c.p[3].X, t),
		bezierSpline(c.p[0].Y, c.p[1].Y, c.p[2].Y, c.p[3].Y, t),
	}
}

func (c *cubicSegment) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(c.p[0].X, c.p[1].X, c.p[2].X, c.p[3].X)
	aY, bY, cY := cubicDerivative(c.p[0].Y, c.p[1].Y, c.p[2].Y, c.p[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

// speed returns the norm of the derivative at t
func (c *cubicSegment) speed(t float64) float64 {
	aX, bX, cX := cubicDerivative(c.p[0].X, c.p[1].X, c.p[2].X, c.p[3].X)
	aY, bY, cY := cubicDerivative(c.p[0].Y, c.p[1].Y, c.p[2].Y, c.p[3].Y)
	return math.Hypot(aX*t*t+bX*t+cX, aY*t*t+bY*t+cY)
}

// arcLength integrates the speed between t0 and t1
func (c *cubicSegment) arcLength(t0, t1 float64) float64 {
	half, mid := (t1-t0)/2, (t1+t0)/2
	var sum float64
	for i, x := range glAbscissae {
		sum += glWeights[i] * c.speed(mid+half*x)
	}
	return sum * half
}

func (c *cubicSegment) Length() float64 { return c.lut[cubicLUTSize] }

func (c *cubicSegment) Bounds() Rect { return computeBoundingBox(c) }

// PointAt inverts the arc length function: the LUT brackets the
// parameter, which is then refined with Newton steps, falling back
// to bisection when a step leaves the bracket.
func (c *cubicSegment) PointAt(d float64) (Point, error) {
	length := c.Length()
	if d < 0 || d > length {
		return Point{}, ErrOutOfRange
	}
	if length == 0 {
		return c.p[0], nil
	}
	i := sort.SearchFloat64s(c.lut[:], d)
	if i == 0 {
		return c.p[0], nil
	}
	if i > cubicLUTSize {
		i = cubicLUTSize
	}
	t0, t1 := float64(i-1)/cubicLUTSize, float64(i)/cubicLUTSize
	base, span := c.lut[i-1], c.lut[i]-c.lut[i-1]
	if span == 0 {
		return c.evaluateCurve(t0), nil
	}
	lo, hi := t0, t1
	t := t0 + (t1-t0)*(d-base)/span
	tolerance := 1e-10 * math.Max(1, length)
	for iter := 0; iter < 20; iter++ {
		f := base + c.arcLength(t0, t) - d
		if math.Abs(f) <= tolerance {
			break
		}
		if f > 0 {
			hi = t
		} else {
			lo = t
		}
		next := (lo + hi) / 2
		if s := c.speed(t); s > 0 {
			if n := t - f/s; n > lo && n < hi {
				next = n
			}
		}
		t = next
	}
	pt := c.evaluateCurve(t)
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return Point{}, ErrDegenerate
	}
	return pt, nil
}

// Geometry measures a path by arc length. Subpaths are concatenated,
// without a connecting segment between them.
type Geometry struct {
	segments []Segment
	offsets  []float64 // arc length at the start of each segment
	length   float64
	start    Point
	hasPoint bool
}

// NewGeometry builds the arc length representation of `p`.
// Close operations contribute a straight segment back to the
// subpath start, when needed.
func NewGeometry(p Path) *Geometry {
	g := new(Geometry)
	var current, subpathStart Point
	add := func(s Segment) {
		g.segments = append(g.segments, s)
		g.offsets = append(g.offsets, g.length)
		g.length += s.Length()
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, subpathStart = Point(op), Point(op)
			if !g.hasPoint {
				g.start, g.hasPoint = current, true
			}
			continue
		case LineTo:
			add(newLineSegment(current, Point(op)))
			current = Point(op)
		case QuadTo:
			add(newQuadSegment(current, op[0], op[1]))
			current = op[1]
		case CubicTo:
			add(newCubicSegment(current, op[0], op[1], op[2]))
			current = op[2]
		case Close:
			if current != subpathStart {
				add(newLineSegment(current, subpathStart))
			}
			current = subpathStart
		}
		if !g.hasPoint {
			g.start, g.hasPoint = Point{}, true
		}
	}
	return g
}

// Length returns the total arc length.
func (g *Geometry) Length() float64 { return g.length }

// PointAt returns the point at arc length `d` from the start of the path.
func (g *Geometry) PointAt(d float64) (Point, error) {
	if !g.hasPoint {
		return Point{}, ErrEmptyGeometry
	}
	if d < 0 || d > g.length || math.IsNaN(d) {
		return Point{}, ErrOutOfRange
	}
	if len(g.segments) == 0 {
		return g.start, nil
	}
	// last segment starting at or before d
	i := sort.Search(len(g.offsets), func(i int) bool { return g.offsets[i] > d }) - 1
	if i < 0 {
		i = 0
	}
	local := d - g.offsets[i]
	if l := g.segments[i].Length(); local > l { // rounding at the end of the path
		local = l
	}
	return g.segments[i].PointAt(local)
}

// Bounds returns the exact bounding box of the path.
func (g *Geometry) Bounds() Rect {
	bbox := EmptyRect()
	if g.hasPoint {
		bbox = bbox.addPoint(g.start)
	}
	for _, s := range g.segments {
		bbox = bbox.Union(s.Bounds())
	}
	return bbox
}
