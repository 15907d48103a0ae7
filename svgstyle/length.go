package svgstyle

import (
	"fmt"
	"strings"
)

// Unit is the unit of an SVG length.
type Unit uint8

const (
	UnitNone Unit = iota // user units
	UnitPx
	UnitPt
	UnitPc
	UnitMm
	UnitCm
	UnitIn
	UnitEm
	UnitEx
	UnitPercent
)

// FontSize is the font size used to resolve em and ex units,
// in user units.
const FontSize = 16

var unitNames = [...]struct {
	suffix string
	unit   Unit
}{
	{"%", UnitPercent},
	{"px", UnitPx},
	{"pt", UnitPt},
	{"pc", UnitPc},
	{"mm", UnitMm},
	{"cm", UnitCm},
	{"in", UnitIn},
	{"em", UnitEm},
	{"ex", UnitEx},
}

// user units per unit, at 96 dpi
var unitFactors = [...]float64{
	UnitNone: 1,
	UnitPx:   1,
	UnitPt:   96. / 72,
	UnitPc:   16,
	UnitMm:   96 / 25.4,
	UnitCm:   96 / 2.54,
	UnitIn:   96,
	UnitEm:   FontSize,
	UnitEx:   FontSize / 2,
}

// Length is a number with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// ParseLength parses an SVG length, like "12", "1.5mm" or "50%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	number, unit := s, UnitNone
	lower := strings.ToLower(s)
	for _, u := range unitNames {
		if strings.HasSuffix(lower, u.suffix) {
			number, unit = s[:len(s)-len(u.suffix)], u.unit
			break
		}
	}
	f, err := ParseNumber(number)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return Length{Value: f, Unit: unit}, nil
}

// IsPercent returns true for percentage lengths.
func (l Length) IsPercent() bool { return l.Unit == UnitPercent }

// Resolve converts the length to user units, using `reference`
// as the 100% value for percentages.
func (l Length) Resolve(reference float64) float64 {
	if l.Unit == UnitPercent {
		return l.Value * reference / 100
	}
	return l.Value * unitFactors[l.Unit]
}
