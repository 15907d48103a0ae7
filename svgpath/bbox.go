package svgpath

import "math"

// Rect is an axis aligned bounding box.
// The zero value is not empty: use EmptyRect.
type Rect struct{ Min, Max Point }

// EmptyRect returns a rectangle containing nothing,
// which is the identity for Union.
func EmptyRect() Rect {
	return Rect{Min: Point{math.Inf(1), math.Inf(1)}, Max: Point{math.Inf(-1), math.Inf(-1)}}
}

// IsEmpty returns true if the rectangle contains no point.
func (r Rect) IsEmpty() bool { return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y }

// Width returns 0 for empty rectangles.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns 0 for empty rectangles.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

func (r Rect) addPoint(p Point) Rect { return r.Union(Rect{p, p}) }

// extremum is implemented by the curves whose bounding box
// is computed from the parameters where a coordinate reaches an extremum
type extremum interface {
	criticalPoints() (tX, tY []float64) // in [0, 1] or not
	evaluateCurve(t float64) Point
}

func computeBoundingBox(curve extremum) Rect {
	tX, tY := curve.criticalPoints()
	bbox := EmptyRect()
	for _, t := range append(append(tX, 0, 1), tY...) {
		if t < 0 || t > 1 {
			continue
		}
		bbox = bbox.addPoint(curve.evaluateCurve(t))
	}
	return bbox
}

// bezierSpline evaluates one coordinate of a cubic curve, in the
// power basis: (p3-3p2+3p1-p0)t³ + (3p2-6p1+3p0)t² + (3p1-3p0)t + p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	a := p3 - 3*p2 + 3*p1 - p0
	b := 3*p2 - 6*p1 + 3*p0
	c := 3*p1 - 3*p0
	return ((a*t+b)*t+c)*t + p0
}

// cubicDerivative returns the coefficients of at² + bt + c,
// the derivative of bezierSpline
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// quadraticRoots returns the real roots of at² + bt + c,
// degrading to the linear case when a is zero.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	delta := b*b - 4*a*c
	switch {
	case delta < 0:
		return nil
	case delta == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(delta)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
