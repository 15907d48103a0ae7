package svgstyle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a parsed CSS color, with its alpha channel.
// Colors given in the HSL notation remember their components,
// so that they serialize back to hsla().
type Color struct {
	rgb   colorful.Color
	Alpha float64

	isHSL   bool
	h, s, l float64 // degrees, [0,1], [0,1]
}

// RGBA returns a color from 8 bits components and an alpha in [0,1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{rgb: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, Alpha: alpha}
}

// HSLA returns a color from its hue in degrees, saturation and
// lightness in [0,1], and alpha in [0,1].
func HSLA(h, s, l, alpha float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, l = clamp(s, 0, 1), clamp(l, 0, 1)
	return Color{rgb: colorful.Hsl(h, s, l), Alpha: alpha, isHSL: true, h: h, s: s, l: l}
}

// Transparent is the transparent black.
var Transparent = RGBA(0, 0, 0, 0)

// RGB255 returns the 8 bits channels, without alpha.
func (c Color) RGB255() (r, g, b uint8) { return c.rgb.Clamped().RGB255() }

// IsHSL returns true if the color was given in the HSL notation.
func (c Color) IsHSL() bool { return c.isHSL }

// WithAlpha returns a copy of the color with alpha multiplied by `f`,
// clamped to [0,1].
func (c Color) WithAlpha(f float64) Color {
	c.Alpha = clamp(c.Alpha*f, 0, 1)
	return c
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(clamp(a, 0, 1)*1000)/1000, 'f', -1, 64)
}

// String returns the canonical serialization, either
// rgba(r, g, b, a) or hsla(h, s%, l%, a).
func (c Color) String() string {
	if c.isHSL {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)",
			int(math.Round(c.h))%360, int(math.Round(c.s*100)), int(math.Round(c.l*100)), formatAlpha(c.Alpha))
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.Alpha))
}

// ParseColor parses a CSS color: hexadecimal notations (#rgb, #rgba,
// #rrggbb, #rrggbbaa), rgb(), rgba(), hsl(), hsla(), the SVG color
// keywords and "transparent".
// "currentColor" and "none" are not colors: see ParsePaint.
func ParseColor(v string) (Color, error) {
	v = strings.TrimSpace(v)
	lv := strings.ToLower(v)
	switch {
	case strings.HasPrefix(lv, "#"):
		return parseHex(lv)
	case strings.HasPrefix(lv, "rgb"):
		args, ok := functionArgs(lv, "rgb", "rgba")
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		return parseRGBArgs(args)
	case strings.HasPrefix(lv, "hsl"):
		args, ok := functionArgs(lv, "hsl", "hsla")
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		return parseHSLArgs(args)
	case lv == "transparent":
		return Transparent, nil
	}
	if named, ok := colornames.Map[lv]; ok {
		return RGBA(named.R, named.G, named.B, float64(named.A)/255), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
}

func parseHex(v string) (Color, error) {
	hex := v
	alpha := 1.
	switch len(v) {
	case 5: // #rgba
		hex = v[:4]
		a, err := strconv.ParseUint(v[4:5], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = float64(a*17) / 255
	case 9: // #rrggbbaa
		hex = v[:7]
		a, err := strconv.ParseUint(v[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = float64(a) / 255
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
	}
	return Color{rgb: c, Alpha: alpha}, nil
}

// functionArgs returns the arguments of `name(args)`,
// split on commas, whitespace and slashes.
func functionArgs(v string, names ...string) ([]string, bool) {
	open := strings.IndexByte(v, '(')
	if open == -1 || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	fn := strings.TrimSpace(v[:open])
	for _, name := range names {
		if fn == name {
			args := strings.FieldsFunc(v[open+1:len(v)-1], func(r rune) bool {
				return r == ',' || r == '/' || r == ' ' || r == '\t' || r == '\n'
			})
			return args, true
		}
	}
	return nil, false
}

// parseChannel reads a number in [0, 255] or a percentage
func parseChannel(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		f, err := ParseNumber(strings.TrimSuffix(s, "%"))
		return clamp(f/100, 0, 1), err
	}
	f, err := ParseNumber(s)
	return clamp(f/255, 0, 1), err
}

func parseAlphaArg(args []string) (float64, error) {
	if len(args) == 3 {
		return 1, nil
	}
	return ParseOpacity(args[3])
}

func parseRGBArgs(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: expected 3 or 4 components, got %d", ErrInvalidColor, len(args))
	}
	var rgb [3]float64
	for i := range rgb {
		var err error
		if rgb[i], err = parseChannel(args[i]); err != nil {
			return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
		}
	}
	alpha, err := parseAlphaArg(args)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
	}
	return Color{rgb: colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, Alpha: alpha}, nil
}

func parseHSLArgs(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: expected 3 or 4 components, got %d", ErrInvalidColor, len(args))
	}
	h, err := ParseNumber(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
	}
	var sl [2]float64
	for i := range sl {
		f, err := ParseNumber(strings.TrimSuffix(args[i+1], "%"))
		if err != nil {
			return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
		}
		sl[i] = f / 100
	}
	alpha, err := parseAlphaArg(args)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err)
	}
	return HSLA(h, sl[0], sl[1], alpha), nil
}

// PaintKind distinguishes the values of the fill and stroke properties.
type PaintKind uint8

const (
	// PaintNone is "none", or a paint server reference without fallback.
	PaintNone PaintKind = iota
	PaintColor
	// PaintCurrentColor defers to the "color" property.
	PaintCurrentColor
)

// Paint is the value of a fill or stroke property.
type Paint struct {
	Kind  PaintKind
	Color Color // valid for PaintColor
}

// ParsePaint parses a fill or stroke value. Paint servers are not
// supported: "url(#id) fallback" resolves to its fallback, and
// to PaintNone when there is none.
func ParsePaint(v string) (Paint, error) {
	v = strings.TrimSpace(v)
	lv := strings.ToLower(v)
	if strings.HasPrefix(lv, "url(") {
		end := strings.IndexByte(v, ')')
		if end == -1 {
			return Paint{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		fallback := strings.TrimSpace(v[end+1:])
		if fallback == "" {
			return Paint{Kind: PaintNone}, nil
		}
		return ParsePaint(fallback)
	}
	switch lv {
	case "none":
		return Paint{Kind: PaintNone}, nil
	case "currentcolor":
		return Paint{Kind: PaintCurrentColor}, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Kind: PaintColor, Color: c}, nil
}
