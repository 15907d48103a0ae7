// Converts SVG documents into normalized, point sampled polylines
// with their resolved paint style.
//
// The conversion runs the following steps: the viewBox is resolved,
// transforms and paint attributes are cascaded from containers to
// shapes, each shape is reduced to arc free single subpath descriptors,
// which are sampled by arc length, mapped to the [-1, 1] frame,
// simplified and finally bound to their style.
package svgicon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/benoitkugler/svgpoly/svgpath"
	"github.com/srwiley/rasterx"
)

var (
	// ErrNotSVG is returned when the input does not look like an SVG document.
	ErrNotSVG = errors.New("input is not an svg document")
	// ErrInvalidMarkup is returned when the markup can't be parsed into an element tree.
	ErrInvalidMarkup = errors.New("invalid svg markup")
	// ErrUnsupportedElement is returned in StrictErrorMode only.
	ErrUnsupportedElement = errors.New("unsupported svg element")
)

// ViewBox is the user space window of a document.
type ViewBox struct{ X, Y, W, H float64 }

// Array returns [x, y, w, h].
func (vb ViewBox) Array() [4]float64 { return [4]float64{vb.X, vb.Y, vb.W, vb.H} }

// PathDescriptor is one absolute, arc free, single subpath path,
// with the transform and attributes resolved for its element.
type PathDescriptor struct {
	D         string
	Transform rasterx.Matrix2D
	Attrs     svgdom.Attributes
	Tag       string // element which produced the path

	path svgpath.Path // compiled D
}

// Closed returns true if the last command of D is a closepath.
func (pd PathDescriptor) Closed() bool {
	d := strings.TrimRight(pd.D, " \t\n\r\f")
	return strings.HasSuffix(d, "z") || strings.HasSuffix(d, "Z")
}

// SampledBuffer stores interleaved x, y coordinates.
type SampledBuffer []float64

// DrawerStyle is the resolved paint of a path.
// Empty colors and zero widths are unset.
type DrawerStyle struct {
	Fill      string  `json:"fill,omitempty"`
	Stroke    string  `json:"stroke,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
}

// ParsedPath is one output polyline.
type ParsedPath struct {
	Buffer SampledBuffer `json:"buffer"`
	Closed bool          `json:"closed"`
	Style  DrawerStyle   `json:"style"`
}

// ParsedResult is the outcome of a conversion.
// Buffers are in document order.
type ParsedResult struct {
	ViewBox [4]float64   `json:"viewBox"`
	Buffers []ParsedPath `json:"buffers"`
}

// Parse converts the SVG `markup`.
// Input failing the plausibility check is rejected with ErrNotSVG,
// before any parsing is attempted.
func Parse(markup string, opts Options) (*ParsedResult, error) {
	if !svgdom.IsPlausibleSVG(markup) {
		opts.logger().Warn("rejecting input: not an svg document", "length", len(markup))
		return nil, ErrNotSVG
	}
	root, err := svgdom.ParseString(markup)
	if err != nil {
		opts.logger().Error("parsing svg markup", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidMarkup, err)
	}
	return ParseDocument(root, opts)
}

// ParseReader reads the whole stream and converts it.
// Non UTF-8 documents are supported through their XML declaration.
func ParseReader(stream io.Reader, opts Options) (*ParsedResult, error) {
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts)
}

// ReadFile converts the named SVG file.
func ReadFile(name string, opts Options) (*ParsedResult, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts)
}

// ParseDocument converts an already parsed tree, which is not modified.
func ParseDocument(root *svgdom.Node, opts Options) (*ParsedResult, error) {
	if root == nil || root.Tag != "svg" {
		opts.logger().Warn("rejecting input: root element is not svg")
		return nil, ErrNotSVG
	}

	shapes := cascade(root, opts)
	vb, err := resolveViewBox(root, shapes, opts)
	if err != nil {
		return nil, err
	}
	descriptors, err := normalizeShapes(shapes, vb, opts)
	if err != nil {
		return nil, err
	}

	step := samplingStep(vb, opts.MinStep)
	tolerance := opts.tolerance()
	styles := newStyleResolver(vb, opts)
	out := &ParsedResult{ViewBox: vb.Array(), Buffers: []ParsedPath{}}
	for _, desc := range descriptors {
		closed := desc.Closed()
		raw := sample(desc, step, opts)
		buffer := simplify(normalize(raw, vb), tolerance, opts.RadialPrepass, closed)
		if len(buffer) < 4 {
			continue
		}
		out.Buffers = append(out.Buffers, ParsedPath{
			Buffer: buffer,
			Closed: closed,
			Style:  styles.resolve(desc.Attrs),
		})
	}
	return out, nil
}
