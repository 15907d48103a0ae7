package svgicon

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/benoitkugler/svgpoly/svgstyle"
)

// styleResolver resolves the paint of the path descriptors,
// for one document.
type styleResolver struct {
	opts Options
	// reference length for percentages and default widths
	diag float64
}

func newStyleResolver(vb ViewBox, opts Options) styleResolver {
	return styleResolver{opts: opts, diag: math.Sqrt(vb.W * vb.H)}
}

// elementStyle gives access to the three sources of a property:
// attribute, inline style declaration, fallback.
type elementStyle struct {
	attrs svgdom.Attributes
	decls svgstyle.Declarations
}

// lookup returns the raw value of the property `name`, or false
// if it is unset. A "none" attribute stops the lookup.
func (es elementStyle) lookup(name, fallback string) (string, bool) {
	if v, ok := es.attrs.Get(name); ok {
		v = strings.TrimSpace(v)
		if v == "none" {
			return "", false
		}
		return v, true
	}
	if v, ok := es.decls[svgstyle.CamelCase(name)]; ok {
		return v, true
	}
	return fallback, fallback != ""
}

func (sr styleResolver) resolve(attrs svgdom.Attributes) DrawerStyle {
	es := elementStyle{attrs: attrs}
	if style, ok := attrs.Get("style"); ok {
		decls, err := svgstyle.ParseDeclarations(style)
		if err != nil {
			sr.opts.warn("ignoring invalid style attribute", "value", style, "err", err)
		}
		es.decls = decls
	}

	var out DrawerStyle
	out.Fill = sr.color(es, "fill", sr.opts.Fallback.Fill)
	out.Stroke = sr.color(es, "stroke", sr.opts.Fallback.Stroke)
	width, explicit := sr.lineWidth(es)
	out.LineWidth = width
	if !explicit && out.Stroke != "" {
		out.LineWidth = DefaultLineWidthRatio * sr.diag
	}
	return out
}

// color returns the canonical color of the property `name`
// ("fill" or "stroke"), or an empty string.
func (sr styleResolver) color(es elementStyle, name, fallback string) string {
	raw, ok := es.lookup(name, fallback)
	if !ok {
		return ""
	}
	paint, err := svgstyle.ParsePaint(raw)
	if err != nil {
		sr.opts.warn("ignoring invalid paint", "property", name, "value", raw)
		return ""
	}
	var c svgstyle.Color
	switch paint.Kind {
	case svgstyle.PaintNone:
		return ""
	case svgstyle.PaintColor:
		c = paint.Color
	case svgstyle.PaintCurrentColor:
		c = sr.currentColor(es)
	}
	return c.WithAlpha(sr.opacity(es, name)).String()
}

// currentColor resolves the color property, defaulting to black.
func (sr styleResolver) currentColor(es elementStyle) svgstyle.Color {
	black := svgstyle.RGBA(0, 0, 0, 1)
	raw, ok := es.lookup("color", "")
	if !ok {
		return black
	}
	c, err := svgstyle.ParseColor(raw)
	if err != nil {
		sr.opts.warn("ignoring invalid color", "value", raw)
		return black
	}
	return c
}

// opacity returns the alpha factor of the property `name`, taken
// from, by priority: the style declaration {name}-opacity, the attribute
// {name}-opacity, the opacity attribute.
func (sr styleResolver) opacity(es elementStyle, name string) float64 {
	prop := name + "-opacity"
	var values []string
	if v, ok := es.decls[svgstyle.CamelCase(prop)]; ok {
		values = append(values, v)
	}
	if v, ok := es.attrs.Get(prop); ok {
		values = append(values, v)
	}
	if v, ok := es.attrs.Get("opacity"); ok {
		values = append(values, v)
	}
	for _, v := range values {
		o, err := svgstyle.ParseOpacity(v)
		if err != nil {
			sr.opts.warn("ignoring invalid opacity", "value", v)
			continue
		}
		return o
	}
	return 1
}

// lineWidth returns the stroke width in user units, and true if
// a valid width was given. Non-positive widths resolve to 0.
func (sr styleResolver) lineWidth(es elementStyle) (float64, bool) {
	raw, ok := es.lookup("stroke-width", sr.opts.Fallback.StrokeWidth)
	if !ok {
		return 0, false
	}
	l, err := svgstyle.ParseLength(raw)
	if err != nil {
		sr.opts.warn("ignoring invalid stroke width", "value", raw)
		return 0, false
	}
	return math.Max(l.Resolve(sr.diag), 0), true
}
