// Package svgstyle implements the value syntaxes found in SVG
// presentation attributes: numbers, lengths, opacities, colors
// and inline style declarations.
package svgstyle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidColor  = errors.New("invalid color")
)

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t' || b == '\f'
}

// ParseNumbers reads a list of numbers separated by
// whitespace and/or commas, as used by viewBox, points or
// transform arguments. Numbers may also follow each other
// without separator when unambiguous, like "1-2.5.5".
func ParseNumbers(s string) ([]float64, error) {
	data := []byte(s)
	var out []float64
	for i := 0; i < len(data); {
		if isSeparator(data[i]) {
			i++
			continue
		}
		f, n := strconv.ParseFloat(data[i:])
		if n == 0 {
			return out, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		out = append(out, f)
		i += n
	}
	return out, nil
}

// ParseNumber parses a single number, surrounding whitespace allowed.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f, nil
}

// ParseOpacity accepts a number or a percentage,
// and clamps the result to [0, 1].
func ParseOpacity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	d := 1.
	if strings.HasSuffix(s, "%") {
		d = 100
		s = strings.TrimSuffix(s, "%")
	}
	f, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp(f/d, 0, 1), nil
}

func clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}
