package svgicon

import (
	"math"

	"github.com/benoitkugler/svgpoly/svgpath"
)

const (
	minStepExponent = -3
	maxStepExponent = 6
	// samples per unit of the viewBox order of magnitude
	subdivisions = 100
)

// samplingStep returns the arc length between two samples, derived
// from the order of magnitude of the largest viewBox dimension,
// so that the density of points is roughly the same for every document.
func samplingStep(vb ViewBox, minStep float64) float64 {
	exp := minStepExponent
	if size := math.Max(vb.W, vb.H); size > 0 {
		exp = int(math.Floor(math.Log10(size)))
	}
	if exp < minStepExponent {
		exp = minStepExponent
	} else if exp > maxStepExponent {
		exp = maxStepExponent
	}
	step := math.Pow10(exp) / subdivisions
	if step < minStep {
		step = minStep
	}
	return step
}

// sample walks the transformed path by arc length, every `step`.
// Open paths also get their end point, while on closed paths
// a last sample closer than step/2 to the start is dropped.
// Positions which can't be evaluated are skipped.
func sample(desc PathDescriptor, step float64, opts Options) SampledBuffer {
	geom := svgpath.NewGeometry(desc.compiled().Transform(desc.Transform))
	length := geom.Length()
	if length == 0 || step <= 0 {
		return nil
	}
	out := make(SampledBuffer, 0, 2*int(math.Min(length/step, 1<<16))+4)
	var skipped int
	for i := 0; ; i++ {
		d := float64(i) * step
		if d >= length {
			break
		}
		pt, err := geom.PointAt(d)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, pt.X, pt.Y)
	}
	if skipped != 0 {
		opts.warn("skipped invalid samples", "tag", desc.Tag, "count", skipped)
	}

	closed := desc.Closed()
	if !closed {
		if end, err := geom.PointAt(length); err == nil {
			out = append(out, end.X, end.Y)
		}
	} else if n := len(out); n >= 4 {
		if math.Hypot(out[n-2]-out[0], out[n-1]-out[1]) < step/2 {
			out = out[:n-2]
		}
	}
	return out
}

// normalize maps the viewBox to a square centered on the origin,
// whose larger side spans [-1, 1].
func normalize(raw SampledBuffer, vb ViewBox) SampledBuffer {
	r := 2 / math.Max(vb.W, vb.H)
	cx, cy := vb.X+vb.W/2, vb.Y+vb.H/2
	out := make(SampledBuffer, len(raw))
	for i := 0; i+1 < len(raw); i += 2 {
		out[i] = r * (raw[i] - cx)
		out[i+1] = r * (raw[i+1] - cy)
	}
	return out
}
