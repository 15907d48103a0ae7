// Implements an abstract representation of
// svg paths: parsing of path data, conversion to
// absolute, arc free commands, and arc length geometry.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Point is a location in user space.
type Point struct{ X, Y float64 }

func (p Point) add(q Point) Point             { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point             { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(f float64) Point         { return Point{p.X * f, p.Y * f} }
func (p Point) lerp(q Point, t float64) Point { return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t} }

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
	// returns the operation with its points mapped by `m`
	transform(m rasterx.Matrix2D) Operation
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

func trPoint(m rasterx.Matrix2D, p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

func (op MoveTo) transform(m rasterx.Matrix2D) Operation { return MoveTo(trPoint(m, Point(op))) }
func (op LineTo) transform(m rasterx.Matrix2D) Operation { return LineTo(trPoint(m, Point(op))) }
func (op QuadTo) transform(m rasterx.Matrix2D) Operation {
	return QuadTo{trPoint(m, op[0]), trPoint(m, op[1])}
}

func (op CubicTo) transform(m rasterx.Matrix2D) Operation {
	return CubicTo{trPoint(m, op[0]), trPoint(m, op[1]), trPoint(m, op[2])}
}
func (op Close) transform(rasterx.Matrix2D) Operation { return op }

// Path describes a sequence of basic SVG operations, which should not be nil
// Higher-level shapes may be reduced to a path.
type Path []Operation

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func formatPoints(cmd byte, points ...Point) string {
	var sb strings.Builder
	sb.WriteByte(cmd)
	for i, p := range points {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatNumber(p.X))
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(p.Y))
	}
	return sb.String()
}

// ToSVGPath returns a string representation of the path,
// using absolute commands only. The output is lossless: parsing
// it back yields the same path.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = formatPoints('M', Point(op))
		case LineTo:
			chunks[i] = formatPoints('L', Point(op))
		case QuadTo:
			chunks[i] = formatPoints('Q', op[0], op[1])
		case CubicTo:
			chunks[i] = formatPoints('C', op[0], op[1], op[2])
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// CurrentPoint returns the end point of the last operation,
// which is the start of the current subpath after a Close.
// It returns false for an empty path.
func (p Path) CurrentPoint() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	switch op := p[len(p)-1].(type) {
	case MoveTo:
		return Point(op), true
	case LineTo:
		return Point(op), true
	case QuadTo:
		return op[1], true
	case CubicTo:
		return op[2], true
	}
	return p.subpathStart(), true
}

// subpathStart returns the point of the last MoveTo.
func (p Path) subpathStart() Point {
	for i := len(p) - 1; i >= 0; i-- {
		if m, ok := p[i].(MoveTo); ok {
			return Point(m)
		}
	}
	return Point{}
}

// IsClosed returns true if the last operation is a Close.
func (p Path) IsClosed() bool {
	if len(p) == 0 {
		return false
	}
	return p[len(p)-1].command() == pathClose
}

// Transform returns a new path, with every point mapped by `m`.
func (p Path) Transform(m rasterx.Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.transform(m)
	}
	return out
}

// Subpaths splits the path at every MoveTo. Each returned path
// starts with a MoveTo; subpaths made of a lone MoveTo are dropped.
func (p Path) Subpaths() []Path {
	var (
		out     []Path
		current Path
	)
	flush := func() {
		if len(current) > 1 {
			out = append(out, current)
		}
		current = nil
	}
	for _, op := range p {
		if op.command() == pathMoveTo {
			flush()
		}
		current = append(current, op)
	}
	flush()
	return out
}
