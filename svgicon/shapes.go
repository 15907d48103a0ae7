package svgicon

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/benoitkugler/svgpoly/svgpath"
	"github.com/benoitkugler/svgpoly/svgstyle"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// shapeKind is the closed set of supported primitives
type shapeKind uint8

const (
	rectShape shapeKind = iota
	circleShape
	ellipseShape
	lineShape
	polylineShape
	polygonShape
	pathShape
)

var shapeKinds = map[string]shapeKind{
	"rect":     rectShape,
	"circle":   circleShape,
	"ellipse":  ellipseShape,
	"line":     lineShape,
	"polyline": polylineShape,
	"polygon":  polygonShape,
	"path":     pathShape,
}

// axis selects the reference of percentage lengths
type axis uint8

const (
	horizontal axis = iota
	vertical
	diagonal
)

// shapeAttrs reads the geometric attributes of one element
type shapeAttrs struct {
	tag   string
	attrs svgdom.Attributes
	vb    ViewBox
	opts  Options
}

func (sa shapeAttrs) reference(ax axis) float64 {
	switch ax {
	case horizontal:
		return sa.vb.W
	case vertical:
		return sa.vb.H
	default:
		return math.Hypot(sa.vb.W, sa.vb.H) / math.Sqrt2
	}
}

// length returns the parsed attribute `name`, or false if it is
// missing or invalid.
func (sa shapeAttrs) length(name string) (svgstyle.Length, bool) {
	v, ok := sa.attrs.Get(name)
	if !ok || v == "auto" {
		return svgstyle.Length{}, false
	}
	l, err := svgstyle.ParseLength(v)
	if err != nil {
		sa.opts.warn("ignoring invalid length", "tag", sa.tag, "attr", name, "value", v)
		return svgstyle.Length{}, false
	}
	return l, true
}

// get returns the attribute `name` in user units, or 0
func (sa shapeAttrs) get(name string, ax axis) float64 {
	l, ok := sa.length(name)
	if !ok {
		return 0
	}
	return l.Resolve(sa.reference(ax))
}

// radii resolves rx and ry, each one defaulting to the other,
// with percentages taken against `refX` and `refY`.
func (sa shapeAttrs) radii(refX, refY float64) (rx, ry float64) {
	lx, okX := sa.length("rx")
	ly, okY := sa.length("ry")
	if okX {
		rx = lx.Resolve(refX)
	}
	if okY {
		ry = ly.Resolve(refY)
	}
	if !okX {
		rx = ry
	}
	if !okY {
		ry = rx
	}
	return math.Max(rx, 0), math.Max(ry, 0)
}

func (sa shapeAttrs) points() []float64 {
	v := sa.attrs.Value("points")
	points, err := svgstyle.ParseNumbers(v)
	if err != nil {
		sa.opts.warn("invalid points, keeping the valid prefix", "tag", sa.tag, "err", err)
	}
	if len(points)%2 != 0 {
		points = points[:len(points)-1]
	}
	return points
}

// toPath builds the path of the shape, in its local coordinates.
// Shapes which are not rendered, like a zero sized rectangle,
// return an empty path.
func (k shapeKind) toPath(sa shapeAttrs) svgpath.Path {
	var p svgpath.Path
	switch k {
	case rectShape:
		x, y := sa.get("x", horizontal), sa.get("y", vertical)
		w, h := sa.get("width", horizontal), sa.get("height", vertical)
		if w <= 0 || h <= 0 {
			return nil
		}
		rx, ry := sa.radii(w, h)
		p.AddRect(x, y, w, h, rx, ry)
	case circleShape:
		r := sa.get("r", diagonal)
		if r <= 0 {
			return nil
		}
		p.AddEllipse(sa.get("cx", horizontal), sa.get("cy", vertical), r, r)
	case ellipseShape:
		rx, ry := sa.radii(sa.vb.W, sa.vb.H)
		if rx <= 0 || ry <= 0 {
			return nil
		}
		p.AddEllipse(sa.get("cx", horizontal), sa.get("cy", vertical), rx, ry)
	case lineShape:
		p.Start(svgpath.Point{X: sa.get("x1", horizontal), Y: sa.get("y1", vertical)})
		p.Line(svgpath.Point{X: sa.get("x2", horizontal), Y: sa.get("y2", vertical)})
	case polylineShape, polygonShape:
		p.AddPolyline(sa.points(), k == polygonShape)
	case pathShape:
		var err error
		p, err = svgpath.Parse(sa.attrs.Value("d"))
		if err != nil {
			sa.opts.warn("invalid path data, keeping the valid prefix", "err", err)
		}
	}
	return p
}

// normalizeShapes converts each shape to its single subpath
// descriptors, in document order. Unsupported elements are skipped,
// or reported as error in StrictErrorMode.
func normalizeShapes(shapes []resolvedShape, vb ViewBox, opts Options) ([]PathDescriptor, error) {
	var out []PathDescriptor
	for _, shape := range shapes {
		tag := shape.node.Tag
		kind, ok := shapeKinds[tag]
		if !ok {
			if opts.ErrorMode == StrictErrorMode {
				return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedElement, tag)
			}
			opts.warn("skipping unsupported element", "tag", tag)
			continue
		}
		path := kind.toPath(shapeAttrs{tag: tag, attrs: shape.attrs, vb: vb, opts: opts})
		for _, sub := range path.Subpaths() {
			out = append(out, PathDescriptor{
				D:         sub.ToSVGPath(),
				Transform: shape.transform,
				Attrs:     shape.attrs,
				Tag:       tag,
				path:      sub,
			})
		}
	}
	return out, nil
}

// compiled returns the path described by D
func (pd PathDescriptor) compiled() svgpath.Path {
	if pd.path != nil {
		return pd.path
	}
	p, _ := svgpath.Parse(pd.D) // D is produced by ToSVGPath
	return p
}
