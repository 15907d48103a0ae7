package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeometry(t *testing.T, d string) *Geometry {
	p, err := Parse(d)
	require.NoError(t, err)
	return NewGeometry(p)
}

func TestLineGeometry(t *testing.T) {
	g := mustGeometry(t, "M0 0 L3 4 L3 10")
	assert.Equal(t, 11., g.Length())

	pt, err := g.PointAt(0)
	require.NoError(t, err)
	assert.Equal(t, Point{0, 0}, pt)

	pt, err = g.PointAt(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pt.X, 1e-12)
	assert.InDelta(t, 2, pt.Y, 1e-12)

	pt, err = g.PointAt(5)
	require.NoError(t, err)
	assert.Equal(t, Point{3, 4}, pt)

	pt, err = g.PointAt(11)
	require.NoError(t, err)
	assert.Equal(t, Point{3, 10}, pt)

	_, err = g.PointAt(11.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.PointAt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestClosedGeometry(t *testing.T) {
	g := mustGeometry(t, "M50 50 L150 50 L150 150 L50 150 Z")
	assert.Equal(t, 400., g.Length())

	pt, err := g.PointAt(350)
	require.NoError(t, err)
	assert.Equal(t, Point{50, 100}, pt)

	// already closed: no extra segment
	g = mustGeometry(t, "M0 0 L10 0 L0 0 Z")
	assert.Equal(t, 20., g.Length())
}

func TestEmptyGeometry(t *testing.T) {
	g := NewGeometry(nil)
	assert.Equal(t, 0., g.Length())
	_, err := g.PointAt(0)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
	assert.True(t, g.Bounds().IsEmpty())

	g = mustGeometry(t, "M3 4")
	pt, err := g.PointAt(0)
	require.NoError(t, err)
	assert.Equal(t, Point{3, 4}, pt)
}

func TestCubicGeometry(t *testing.T) {
	// a straight cubic with uneven parametrization
	g := mustGeometry(t, "M0 0 C1 0 2 0 10 0")
	assert.InDelta(t, 10, g.Length(), 1e-9)
	for _, d := range []float64{0, 1, 2.5, 5, 7.77, 10} {
		pt, err := g.PointAt(d)
		require.NoError(t, err)
		assert.InDelta(t, d, pt.X, 1e-6)
		assert.InDelta(t, 0, pt.Y, 1e-12)
	}

	// quadratic curves are measured too
	g = mustGeometry(t, "M0 0 Q5 0 10 0")
	assert.InDelta(t, 10, g.Length(), 1e-9)

	// degenerate curve
	g = mustGeometry(t, "M1 1 C1 1 1 1 1 1")
	assert.Equal(t, 0., g.Length())
	pt, err := g.PointAt(0)
	require.NoError(t, err)
	assert.Equal(t, Point{1, 1}, pt)
}

func TestCubicArcLengthMonotonic(t *testing.T) {
	g := mustGeometry(t, "M0 0 C0 100 100 -100 100 0")
	var prev Point
	for d := 0.; d < g.Length(); d += 1 {
		pt, err := g.PointAt(d)
		require.NoError(t, err)
		if d > 0 {
			// consecutive samples are one unit apart along the curve,
			// so the chord is at most one unit
			chord := math.Hypot(pt.X-prev.X, pt.Y-prev.Y)
			assert.LessOrEqual(t, chord, 1+1e-6)
			assert.Greater(t, chord, 0.5)
		}
		prev = pt
	}
}

func TestBounds(t *testing.T) {
	g := mustGeometry(t, "M0 0 C0 10 10 10 10 0")
	b := g.Bounds()
	assert.InDelta(t, 0, b.Min.Y, 1e-12)
	assert.InDelta(t, 7.5, b.Max.Y, 1e-12)
	assert.InDelta(t, 10, b.Width(), 1e-12)

	g = mustGeometry(t, "M10 10 L20 5 M-5 0 L0 0")
	b = g.Bounds()
	assert.Equal(t, Rect{Point{-5, 0}, Point{20, 10}}, b)

	assert.Equal(t, 0., EmptyRect().Width())
	assert.Equal(t, 0., EmptyRect().Height())
}

func TestQuadraticRoots(t *testing.T) {
	assert.Nil(t, quadraticRoots(0, 0, 1))
	assert.Equal(t, []float64{2}, quadraticRoots(0, 1, -2))
	assert.Nil(t, quadraticRoots(1, 0, 1))
	assert.Equal(t, []float64{1}, quadraticRoots(1, -2, 1))
	assert.ElementsMatch(t, []float64{1, -1}, quadraticRoots(1, 0, -1))
}
