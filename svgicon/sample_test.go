package svgicon

import (
	"math"
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
)

func TestSamplingStep(t *testing.T) {
	for _, test := range []struct {
		vb      ViewBox
		minStep float64
		exp     float64
	}{
		{ViewBox{0, 0, 100, 50}, 0, 1},
		{ViewBox{0, 0, 400, 300}, 0, 1},
		{ViewBox{0, 0, 20, 2000}, 0, 10},
		{ViewBox{-1, -1, 2, 2}, 0, 0.01},
		{ViewBox{0, 0, 0.5, 0.5}, 0, 0.001},
		{ViewBox{0, 0, 1e-6, 1e-6}, 0, 1e-5}, // clamped
		{ViewBox{0, 0, 0, 0}, 0, 1e-5},
		{ViewBox{0, 0, 1e9, 1}, 0, 1e4}, // clamped
		{ViewBox{0, 0, 100, 100}, 5, 5},
		{ViewBox{0, 0, 100, 100}, 0.5, 1},
	} {
		assert.InEpsilon(t, test.exp, samplingStep(test.vb, test.minStep), 1e-9, test.vb)
	}
}

func assertBuffer(t *testing.T, expected, got SampledBuffer) {
	t.Helper()
	if !assert.Len(t, got, len(expected)) {
		return
	}
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], 1e-9, i)
	}
}

func descriptor(d string) PathDescriptor {
	return PathDescriptor{D: d, Transform: rasterx.Identity, Tag: "path"}
}

func TestSampleClosed(t *testing.T) {
	square := descriptor("M0 0 L10 0 L10 10 L0 10 Z")

	buf := sample(square, 1, Options{})
	assert.Len(t, buf, 2*40)
	assert.Equal(t, 0., buf[0])
	assert.Equal(t, 0., buf[1])
	// the last sample is 1 unit away from the start: kept
	assert.InDelta(t, 0, buf[78], 1e-9)
	assert.InDelta(t, 1, buf[79], 1e-9)

	// with step 3, the sample at 39 is too close to the start
	buf = sample(square, 3, Options{})
	assert.Len(t, buf, 2*13)
	assert.InDelta(t, 0, buf[24], 1e-9)
	assert.InDelta(t, 4, buf[25], 1e-9)
}

func TestSampleOpen(t *testing.T) {
	line := descriptor("M0 0 L10 0")

	assertBuffer(t, SampledBuffer{0, 0, 3, 0, 6, 0, 9, 0, 10, 0}, sample(line, 3, Options{}))
	assertBuffer(t, SampledBuffer{0, 0, 10, 0}, sample(line, 10, Options{}))
	assertBuffer(t, SampledBuffer{0, 0, 10, 0}, sample(line, 50, Options{}))

	assert.Empty(t, sample(descriptor("M5 5"), 1, Options{}))
	assert.Empty(t, sample(line, 0, Options{}))
}

func TestSampleTransformed(t *testing.T) {
	line := descriptor("M0 0 L10 0")
	line.Transform = rasterx.Identity.Translate(1, 2).Scale(2, 2)

	assertBuffer(t, SampledBuffer{1, 2, 6, 2, 11, 2, 16, 2, 21, 2}, sample(line, 5, Options{}))
}

func TestSampleCurve(t *testing.T) {
	circle := descriptor("M10 0 A10 10 0 0 1 -10 0 A10 10 0 0 1 10 0 Z")
	buf := sample(circle, 0.1, Options{})
	n := len(buf) / 2
	assert.InDelta(t, 20*math.Pi/0.1, float64(n), 2)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 10, math.Hypot(buf[2*i], buf[2*i+1]), 1e-2)
	}
}

func TestNormalize(t *testing.T) {
	raw := SampledBuffer{0, 0, 200, 100, 100, 50}

	assertBuffer(t, SampledBuffer{-1, -0.5, 1, 0.5, 0, 0}, normalize(raw, ViewBox{0, 0, 200, 100}))
	// the input is not modified
	assert.Equal(t, SampledBuffer{0, 0, 200, 100, 100, 50}, raw)

	assertBuffer(t, SampledBuffer{-1, -1, 1, 0}, normalize(SampledBuffer{-10, -10, 10, 0}, ViewBox{-10, -10, 20, 20}))
}
