package svgicon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgpoly/svgstyle"
	"github.com/srwiley/rasterx"
)

var errParamMismatch = errors.New("param mismatch")

// readTransformAttr applies the transform function `k` with arguments
// `points` after `m1`, that is, in the coordinate system defined by `m1`.
func readTransformAttr(m1 rasterx.Matrix2D, k string, points []float64) (rasterx.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Mult(rotation(points[0]))
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Mult(rotation(points[0])).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.Mult(rasterx.Matrix2D{A: 1, C: math.Tan(points[0] * math.Pi / 180), D: 1})
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.Mult(rasterx.Matrix2D{A: 1, B: math.Tan(points[0] * math.Pi / 180), D: 1})
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// rotation returns the SVG rotate(deg) matrix
func rotation(deg float64) rasterx.Matrix2D {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return rasterx.Matrix2D{A: cos, B: sin, C: -sin, D: cos}
}

// parseTransform parses a transform list, like "translate(10,20) scale(2)".
// Functions are applied right to left: the last one is applied first
// to the element coordinates.
func parseTransform(v string) (rasterx.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := rasterx.Identity
	for i, t := range ts {
		t = strings.Trim(t, " ,\t\n\r")
		if len(t) == 0 {
			continue
		}
		if i == len(ts)-1 { // missing closing parenthesis
			return m1, fmt.Errorf("%w: %q", errParamMismatch, v)
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, fmt.Errorf("%w: %q", errParamMismatch, v) // badly formed transformation
		}
		points, err := svgstyle.ParseNumbers(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return m1, fmt.Errorf("%w: %q", err, t)
		}
	}
	return m1, nil
}
