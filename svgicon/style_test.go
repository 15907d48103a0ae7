package svgicon

import (
	"testing"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/stretchr/testify/assert"
)

func attrs(kv ...string) svgdom.Attributes {
	var out svgdom.Attributes
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, svgdom.Attr{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestResolveStyle(t *testing.T) {
	sr := newStyleResolver(ViewBox{0, 0, 100, 100}, Options{ErrorMode: IgnoreErrorMode})

	for _, test := range []struct {
		attrs svgdom.Attributes
		exp   DrawerStyle
	}{
		{nil, DrawerStyle{}},
		{attrs("fill", "red"), DrawerStyle{Fill: "rgba(255, 0, 0, 1)"}},
		{attrs("fill", "none", "stroke", "none"), DrawerStyle{}},
		{attrs("fill", "#f008", "opacity", "0.5"), DrawerStyle{Fill: "rgba(255, 0, 0, 0.267)"}},
		// priority of the opacity sources
		{attrs("fill", "red", "fill-opacity", "0.5", "opacity", "0.2"), DrawerStyle{Fill: "rgba(255, 0, 0, 0.5)"}},
		{attrs("fill", "red", "opacity", "20%"), DrawerStyle{Fill: "rgba(255, 0, 0, 0.2)"}},
		{
			attrs("fill", "red", "fill-opacity", "0.5", "style", "fill-opacity: 0.3"),
			DrawerStyle{Fill: "rgba(255, 0, 0, 0.3)"},
		},
		{attrs("fill", "red", "fill-opacity", "2"), DrawerStyle{Fill: "rgba(255, 0, 0, 1)"}},
		{
			attrs("fill", "red", "stroke", "blue", "opacity", "0.2"),
			DrawerStyle{Fill: "rgba(255, 0, 0, 0.2)", Stroke: "rgba(0, 0, 255, 0.2)", LineWidth: 0.5},
		},
		// inline style
		{
			attrs("style", "fill: #00f; stroke: red; stroke-width: 4"),
			DrawerStyle{Fill: "rgba(0, 0, 255, 1)", Stroke: "rgba(255, 0, 0, 1)", LineWidth: 4},
		},
		{attrs("style", "fill: red !important; fill: blue"), DrawerStyle{Fill: "rgba(255, 0, 0, 1)"}},
		// attributes win, and none stops the lookup
		{attrs("fill", "green", "style", "fill: blue"), DrawerStyle{Fill: "rgba(0, 128, 0, 1)"}},
		{attrs("fill", "none", "style", "fill: blue"), DrawerStyle{}},
		// current color
		{attrs("fill", "currentColor", "color", "green"), DrawerStyle{Fill: "rgba(0, 128, 0, 1)"}},
		{attrs("fill", "currentColor"), DrawerStyle{Fill: "rgba(0, 0, 0, 1)"}},
		{attrs("fill", "currentcolor", "style", "color: #fff"), DrawerStyle{Fill: "rgba(255, 255, 255, 1)"}},
		// paint servers
		{attrs("fill", "url(#grad) #ff0000"), DrawerStyle{Fill: "rgba(255, 0, 0, 1)"}},
		{attrs("fill", "url(#grad)"), DrawerStyle{}},
		{attrs("fill", "hsl(120, 100%, 25%)"), DrawerStyle{Fill: "hsla(120, 100%, 25%, 1)"}},
		{attrs("fill", "hsla(120, 100%, 25%, 0.5)", "fill-opacity", "0.5"), DrawerStyle{Fill: "hsla(120, 100%, 25%, 0.25)"}},
		// invalid values are unset
		{attrs("fill", "rgb(1, 2)"), DrawerStyle{}},
		{attrs("fill", "red", "opacity", "half"), DrawerStyle{Fill: "rgba(255, 0, 0, 1)"}},
		// stroke widths
		{attrs("stroke", "black", "stroke-width", "5%"), DrawerStyle{Stroke: "rgba(0, 0, 0, 1)", LineWidth: 5}},
		{attrs("stroke", "black", "stroke-width", "-2"), DrawerStyle{Stroke: "rgba(0, 0, 0, 1)"}},
		// an explicit zero width is kept, the default only applies without width
		{attrs("stroke", "red", "stroke-width", "0"), DrawerStyle{Stroke: "rgba(255, 0, 0, 1)"}},
		{attrs("stroke", "red", "style", "stroke-width: 0"), DrawerStyle{Stroke: "rgba(255, 0, 0, 1)"}},
		{attrs("stroke", "red", "stroke-width", "thick"), DrawerStyle{Stroke: "rgba(255, 0, 0, 1)", LineWidth: 0.5}},
		{attrs("stroke", "black", "stroke-width", "1in"), DrawerStyle{Stroke: "rgba(0, 0, 0, 1)", LineWidth: 96}},
		{attrs("stroke-width", "3"), DrawerStyle{LineWidth: 3}},
	} {
		assert.Equal(t, test.exp, sr.resolve(test.attrs), test.attrs)
	}
}

func TestResolveStyleFallback(t *testing.T) {
	opts := Options{
		ErrorMode: IgnoreErrorMode,
		Fallback:  Fallback{Fill: "black", Stroke: "#0f0", StrokeWidth: "2"},
	}
	sr := newStyleResolver(ViewBox{0, 0, 400, 100}, opts)

	assert.Equal(t, DrawerStyle{Fill: "rgba(0, 0, 0, 1)", Stroke: "rgba(0, 255, 0, 1)", LineWidth: 2}, sr.resolve(nil))
	assert.Equal(t, DrawerStyle{Stroke: "rgba(0, 255, 0, 1)", LineWidth: 2}, sr.resolve(attrs("fill", "none")))
	assert.Equal(t, DrawerStyle{Fill: "rgba(0, 0, 255, 1)", LineWidth: 2}, sr.resolve(attrs("style", "fill: blue", "stroke", "none")))

	// default width, relative to sqrt(400 * 100)
	sr = newStyleResolver(ViewBox{0, 0, 400, 100}, Options{Fallback: Fallback{Stroke: "red"}})
	assert.Equal(t, DrawerStyle{Stroke: "rgba(255, 0, 0, 1)", LineWidth: 1}, sr.resolve(nil))
}
