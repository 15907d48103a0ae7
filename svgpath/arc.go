package svgpath

import "math"

// maxArcSpan is the largest parametric angle, in radians,
// covered by one cubic curve when approximating an arc.
const maxArcSpan = math.Pi / 8

// ellipse is an elliptical arc in center parameterization.
type ellipse struct {
	center   Point
	rx, ry   float64
	rot      float64 // x axis rotation, in radians
	sin, cos float64 // of rot
}

// at returns the point of parameter `eta`
func (e ellipse) at(eta float64) Point {
	a, b := e.rx*math.Cos(eta), e.ry*math.Sin(eta)
	return Point{e.center.X + a*e.cos - b*e.sin, e.center.Y + a*e.sin + b*e.cos}
}

// tangent returns the derivative with respect to `eta`
func (e ellipse) tangent(eta float64) Point {
	a, b := e.rx*math.Sin(eta), e.ry*math.Cos(eta)
	return Point{-a*e.cos - b*e.sin, -a*e.sin + b*e.cos}
}

// solveCenter locates the center of the ellipse going through
// `start` and `end`. When the radii are too small for such an ellipse
// to exist, they are scaled up, keeping their ratio.
func (e *ellipse) solveCenter(start, end Point, largeArc, sweep bool) {
	// work relative to start, with the ellipse axes aligned on the
	// coordinate axes and x scaled so that the ellipse is a circle of radius ry
	d := end.sub(start)
	d = Point{(d.X*e.cos + d.Y*e.sin) * e.ry / e.rx, -d.X*e.sin + d.Y*e.cos}
	mid := d.scale(0.5)
	midLenSq := mid.X*mid.X + mid.Y*mid.Y

	var h float64 // distance from mid to the center, relative to |mid|
	if e.ry*e.ry < midLenSq {
		r := math.Sqrt(midLenSq)
		if e.rx == e.ry {
			e.rx = r
		} else {
			e.rx *= r / e.ry
		}
		e.ry = r
	} else {
		h = math.Sqrt(e.ry*e.ry-midLenSq) / math.Sqrt(midLenSq)
	}
	c := Point{mid.X - mid.Y*h, mid.Y + mid.X*h}
	if largeArc == sweep {
		c = Point{mid.X + mid.Y*h, mid.Y - mid.X*h}
	}
	c.X *= e.rx / e.ry
	e.center = Point{c.X*e.cos - c.Y*e.sin + start.X, c.X*e.sin + c.Y*e.cos + start.Y}
}

// ArcTo adds an elliptical arc from the current point to `end`,
// following the SVG arc parameters (rotation in degrees).
// The arc is approximated by cubic Bézier curves, so that the path
// stays free of arcs.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, end Point) {
	start, ok := p.CurrentPoint()
	if !ok {
		p.Start(end)
		return
	}
	if start == end { // the arc is omitted
		return
	}
	e := ellipse{rx: math.Abs(rx), ry: math.Abs(ry), rot: rotation * math.Pi / 180}
	if e.rx == 0 || e.ry == 0 {
		p.Line(end)
		return
	}
	e.sin, e.cos = math.Sincos(e.rot)
	e.solveCenter(start, end, largeArc, sweep)
	p.appendArc(e, start, end, largeArc, sweep)
}

// appendArc approximates the arc of `e` from `start` to `end` with cubic
// curves, using the method of L. Maisonobe, "Drawing an elliptical arc
// using polylines, quadratic or cubic Bezier curves", 2003.
func (p *Path) appendArc(e ellipse, start, end Point, largeArc, sweep bool) {
	angleStart := math.Atan2(start.Y-e.center.Y, start.X-e.center.X) - e.rot
	angleEnd := math.Atan2(end.Y-e.center.Y, end.X-e.center.X) - e.rot
	etaStart := math.Atan2(math.Sin(angleStart)/e.ry, math.Cos(angleStart)/e.rx)
	etaEnd := math.Atan2(math.Sin(angleEnd)/e.ry, math.Cos(angleEnd)/e.rx)

	span := etaEnd - etaStart
	if (math.Abs(angleEnd-angleStart) > math.Pi) != largeArc {
		if span < 0 {
			span += 2 * math.Pi
		} else {
			span -= 2 * math.Pi
		}
	}
	// the center may be the middle of start and end
	if span < 0 && sweep {
		span += 2 * math.Pi
	} else if span >= 0 && !sweep {
		span -= 2 * math.Pi
	}

	n := int(math.Abs(span)/maxArcSpan) + 1
	step := span / float64(n)
	t := math.Tan(step / 2)
	alpha := math.Sin(step) * (math.Sqrt(4+3*t*t) - 1) / 3

	from, fromTangent := start, e.tangent(etaStart)
	for i := 1; i <= n; i++ {
		eta := etaStart + step*float64(i)
		to := end // exact, without rounding error
		if i < n {
			to = e.at(eta)
		}
		toTangent := e.tangent(eta)
		p.CubeBezier(from.add(fromTangent.scale(alpha)), to.sub(toTangent.scale(alpha)), to)
		from, fromTangent = to, toTangent
	}
}
