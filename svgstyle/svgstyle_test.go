package svgstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected []float64
	}{
		{"0 0 200 200", []float64{0, 0, 200, 200}},
		{"0,0,200,200", []float64{0, 0, 200, 200}},
		{" 0, 0  ,1.5e2\n-3 ", []float64{0, 0, 150, -3}},
		{"1-2.5.5", []float64{1, -2.5, 0.5}},
		{"", nil},
	} {
		got, err := ParseNumbers(test.in)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, got, test.in)
	}
	_, err := ParseNumbers("0 0 a 1")
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = ParseNumber("12px")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseLength(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected float64
	}{
		{"12", 12},
		{" 12px ", 12},
		{"1in", 96},
		{"72pt", 96},
		{"2.54cm", 96},
		{"25.4mm", 96},
		{"1pc", 16},
		{"2em", 32},
		{"50%", 100},
		{"1E2", 100},
	} {
		l, err := ParseLength(test.in)
		require.NoError(t, err, test.in)
		assert.InDelta(t, test.expected, l.Resolve(200), 1e-9, test.in)
	}

	l, err := ParseLength("5%")
	require.NoError(t, err)
	assert.True(t, l.IsPercent())

	for _, in := range []string{"", "px", "12 apples", "auto"} {
		_, err := ParseLength(in)
		assert.ErrorIs(t, err, ErrInvalidLength, in)
	}
}

func TestParseOpacity(t *testing.T) {
	for in, expected := range map[string]float64{
		"0.5": 0.5,
		"50%": 0.5,
		"2":   1,
		"-1":  0,
	} {
		o, err := ParseOpacity(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, o)
	}
	_, err := ParseOpacity("half")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in, expected string
	}{
		{"#fff", "rgba(255, 255, 255, 1)"},
		{"#FF0000", "rgba(255, 0, 0, 1)"},
		{"#f008", "rgba(255, 0, 0, 0.533)"},
		{"#00ff0080", "rgba(0, 255, 0, 0.502)"},
		{"red", "rgba(255, 0, 0, 1)"},
		{"CornflowerBlue", "rgba(100, 149, 237, 1)"},
		{"transparent", "rgba(0, 0, 0, 0)"},
		{"rgb(10, 20, 30)", "rgba(10, 20, 30, 1)"},
		{"rgb(10 20 30 / 0.5)", "rgba(10, 20, 30, 0.5)"},
		{"rgba(10,20,30,0.25)", "rgba(10, 20, 30, 0.25)"},
		{"rgb(100%, 50%, 0%)", "rgba(255, 128, 0, 1)"},
		{"rgb(300, -5, 0)", "rgba(255, 0, 0, 1)"},
		{"hsl(120, 100%, 50%)", "hsla(120, 100%, 50%, 1)"},
		{"hsla(240deg, 50%, 25%, 0.3)", "hsla(240, 50%, 25%, 0.3)"},
		{"hsl(-120, 100%, 50%)", "hsla(240, 100%, 50%, 1)"},
	} {
		c, err := ParseColor(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.expected, c.String(), test.in)
	}

	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "hsl(a, 1%, 1%)", "notacolor", "rgb(1,2,3"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestHSLConversion(t *testing.T) {
	c, err := ParseColor("hsl(120, 100%, 50%)")
	require.NoError(t, err)
	assert.True(t, c.IsHSL())
	r, g, b := c.RGB255()
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
}

func TestWithAlpha(t *testing.T) {
	c := RGBA(0, 0, 0, 0.5)
	assert.Equal(t, 0.25, c.WithAlpha(0.5).Alpha)
	assert.Equal(t, 1., RGBA(0, 0, 0, 1).WithAlpha(3).Alpha)
	assert.Equal(t, 0.5, c.Alpha, "receiver is unchanged")
}

func TestParsePaint(t *testing.T) {
	p, err := ParsePaint("none")
	require.NoError(t, err)
	assert.Equal(t, PaintNone, p.Kind)

	p, err = ParsePaint("currentColor")
	require.NoError(t, err)
	assert.Equal(t, PaintCurrentColor, p.Kind)

	p, err = ParsePaint("url(#grad)")
	require.NoError(t, err)
	assert.Equal(t, PaintNone, p.Kind)

	p, err = ParsePaint("url(#grad) #00f")
	require.NoError(t, err)
	assert.Equal(t, PaintColor, p.Kind)
	assert.Equal(t, "rgba(0, 0, 255, 1)", p.Color.String())

	_, err = ParsePaint("url(#grad")
	assert.Error(t, err)
	_, err = ParsePaint("blurple")
	assert.Error(t, err)
}

func TestParseDeclarations(t *testing.T) {
	decls, err := ParseDeclarations("fill: red; stroke-width:2px;Stroke-Opacity: .5")
	require.NoError(t, err)
	assert.Equal(t, Declarations{"fill": "red", "strokeWidth": "2px", "strokeOpacity": ".5"}, decls)

	decls, err = ParseDeclarations("fill: red !important; fill: blue")
	require.NoError(t, err)
	assert.Equal(t, "red", decls["fill"])

	decls, err = ParseDeclarations("  ")
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "fill", CamelCase("fill"))
	assert.Equal(t, "strokeWidth", CamelCase("stroke-width"))
	assert.Equal(t, "strokeDashoffset", CamelCase("stroke-dashoffset"))
	assert.Equal(t, "webkitTextStroke", CamelCase("-webkit-text-stroke"))
}
