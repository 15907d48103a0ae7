package svgicon

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	orbsimplify "github.com/paulmach/orb/simplify"
)

// simplify reduces the buffer with the Douglas-Peucker algorithm.
// The polyline is always handled as a ring: when it is not already
// closed, its first point is appended before the reduction, and
// removed afterwards. The first point is preserved, and so is the last
// one for open paths.
func simplify(buf SampledBuffer, tolerance float64, radial, closed bool) SampledBuffer {
	n := len(buf) / 2
	if n <= 2 {
		return append(SampledBuffer(nil), buf[:2*n]...)
	}
	ls := make(orb.LineString, n, n+1)
	for i := range ls {
		ls[i] = orb.Point{buf[2*i], buf[2*i+1]}
	}
	first, last := ls[0], ls[n-1]
	ring := first != last
	if ring {
		ls = append(ls, ls[0])
	}
	if radial {
		ls = orbsimplify.Radial(planar.Distance, tolerance).LineString(ls)
	}
	ls = orbsimplify.DouglasPeucker(tolerance).LineString(ls)
	if ring {
		ls = ls[:len(ls)-1]
		if !closed && ls[len(ls)-1] != last {
			ls = append(ls, last)
		}
	}

	out := make(SampledBuffer, 0, 2*len(ls))
	for _, p := range ls {
		out = append(out, p[0], p[1])
	}
	return out
}
