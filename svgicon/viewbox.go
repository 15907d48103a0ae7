package svgicon

import (
	"math"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/benoitkugler/svgpoly/svgpath"
	"github.com/benoitkugler/svgpoly/svgstyle"
)

// degenerateViewBox is used for documents without any geometry
var degenerateViewBox = ViewBox{-1, -1, 1, 1}

// resolveViewBox returns, by priority:
//   - the viewBox attribute of the root, when valid
//   - (0, 0, width, height) when both are valid, non percentage lengths
//   - (0, 0, maxW, maxH), where maxW and maxH are the largest width and
//     height of the shapes bounding boxes, in user space
func resolveViewBox(root *svgdom.Node, shapes []resolvedShape, opts Options) (ViewBox, error) {
	if vb, ok := parseViewBoxAttr(root, opts); ok {
		return vb, nil
	}
	if vb, ok := viewBoxFromSize(root); ok {
		return vb, nil
	}
	return viewBoxFromGeometry(shapes, opts)
}

func parseViewBoxAttr(root *svgdom.Node, opts Options) (ViewBox, bool) {
	v, ok := root.Attrs.Get("viewBox")
	if !ok {
		return ViewBox{}, false
	}
	points, err := svgstyle.ParseNumbers(v)
	if err != nil || len(points) != 4 || points[2] <= 0 || points[3] <= 0 {
		opts.warn("ignoring invalid viewBox", "value", v)
		return ViewBox{}, false
	}
	return ViewBox{points[0], points[1], points[2], points[3]}, true
}

func viewBoxFromSize(root *svgdom.Node) (ViewBox, bool) {
	var size [2]float64
	for i, name := range [2]string{"width", "height"} {
		v, ok := root.Attrs.Get(name)
		if !ok {
			return ViewBox{}, false
		}
		l, err := svgstyle.ParseLength(v)
		if err != nil || l.IsPercent() {
			return ViewBox{}, false
		}
		size[i] = l.Resolve(0)
		if size[i] <= 0 {
			return ViewBox{}, false
		}
	}
	return ViewBox{0, 0, size[0], size[1]}, true
}

// viewBoxFromGeometry measures the shapes exactly, through their
// transformed geometry. Percentages can't be resolved at this point,
// and resolve to 0.
func viewBoxFromGeometry(shapes []resolvedShape, opts Options) (ViewBox, error) {
	if opts.ErrorMode == WarnErrorMode { // warnings are reported by the main pass
		opts.ErrorMode = IgnoreErrorMode
	}
	descriptors, err := normalizeShapes(shapes, ViewBox{}, opts)
	if err != nil {
		return ViewBox{}, err
	}
	var maxW, maxH float64
	for _, desc := range descriptors {
		bounds := svgpath.NewGeometry(desc.compiled().Transform(desc.Transform)).Bounds()
		maxW = math.Max(maxW, bounds.Width())
		maxH = math.Max(maxH, bounds.Height())
	}
	if maxW <= 0 && maxH <= 0 {
		return degenerateViewBox, nil
	}
	return ViewBox{0, 0, maxW, maxH}, nil
}
