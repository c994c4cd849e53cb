package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fdDerivative is a central-difference check helper for panel derivatives.
func fdDerivative(f func(float64) Point, t float64) Point {
	const h = 1.e-6
	return f(t + h).Sub(f(t - h)).Mul(0.5 / h)
}

func TestLinePanel(t *testing.T) {
	var (
		p0 = Point{X: 0, Y: 0}
		p1 = Point{X: 2, Y: 1}
	)
	l, err := NewLine(p0, p1)
	require.NoError(t, err)

	assert.InDelta(t, 0., l.Eval(-1).Distance(p0), 1.e-15)
	assert.InDelta(t, 0., l.Eval(1).Distance(p1), 1.e-15)
	assert.InDelta(t, 1., l.Eval(0).X, 1.e-15)
	assert.InDelta(t, 0.5, l.Eval(0).Y, 1.e-15)

	d := l.Derivative(0.3)
	assert.InDelta(t, 1., d.X, 1.e-15)
	assert.InDelta(t, 0.5, d.Y, 1.e-15)
	assert.InDelta(t, 0., l.DoubleDerivative(0.).Hypot(), 1.e-15)

	_, err = NewLine(p0, p0)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
}

func TestLineSplit(t *testing.T) {
	l, err := NewLine(Point{X: -1, Y: 0}, Point{X: 3, Y: 2})
	require.NoError(t, err)
	parts, err := l.Split(4)
	require.NoError(t, err)
	require.Len(t, parts, 4)

	assert.InDelta(t, 0., parts[0].Eval(-1).Distance(l.Eval(-1)), 1.e-14)
	assert.InDelta(t, 0., parts[3].Eval(1).Distance(l.Eval(1)), 1.e-14)
	for i := 0; i+1 < len(parts); i++ {
		gap := parts[i].Eval(1).Distance(parts[i+1].Eval(-1))
		assert.InDelta(t, 0., gap, 1.e-14, "panel %d", i)
	}

	_, err = l.Split(0)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
}

func TestCircularArc(t *testing.T) {
	c, err := NewCircularArc(Point{X: 1, Y: -1}, 2., 0., math.Pi/2.)
	require.NoError(t, err)

	assert.InDelta(t, 3., c.Eval(-1).X, 1.e-14)
	assert.InDelta(t, -1., c.Eval(-1).Y, 1.e-14)
	assert.InDelta(t, 1., c.Eval(1).X, 1.e-14)
	assert.InDelta(t, 1., c.Eval(1).Y, 1.e-14)

	for _, tt := range []float64{-0.9, -0.25, 0., 0.5, 0.99} {
		fd := fdDerivative(c.Eval, tt)
		assert.InDelta(t, fd.X, c.Derivative(tt).X, 1.e-8)
		assert.InDelta(t, fd.Y, c.Derivative(tt).Y, 1.e-8)
		fd2 := fdDerivative(c.Derivative, tt)
		assert.InDelta(t, fd2.X, c.DoubleDerivative(tt).X, 1.e-8)
		assert.InDelta(t, fd2.Y, c.DoubleDerivative(tt).Y, 1.e-8)
	}

	_, err = NewCircularArc(Point{}, 0., 0., 1.)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
	_, err = NewCircularArc(Point{}, 1., 1., 1.)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
}

func TestCircleSplitClosesChain(t *testing.T) {
	c, err := NewCircle(Point{}, 1.5)
	require.NoError(t, err)
	parts, err := c.Split(8)
	require.NoError(t, err)
	require.Len(t, parts, 8)

	for i := range parts {
		next := parts[(i+1)%len(parts)]
		gap := parts[i].Eval(1).Distance(next.Eval(-1))
		assert.InDelta(t, 0., gap, 1.e-13, "panel %d", i)
		// equal angular sweep, equal chord
		chord := parts[i].Eval(-1).Distance(parts[i].Eval(1))
		assert.InDelta(t, 2.*1.5*math.Sin(math.Pi/8.), chord, 1.e-13)
	}
}

func TestGenericPanel(t *testing.T) {
	// ellipse quadrant
	var (
		f = func(t float64) Point {
			phi := math.Pi / 4. * (t + 1.)
			return Point{X: 3. * math.Cos(phi), Y: 1.5 * math.Sin(phi)}
		}
		df = func(t float64) Point {
			phi := math.Pi / 4. * (t + 1.)
			return Point{
				X: -3. * math.Sin(phi) * math.Pi / 4.,
				Y: 1.5 * math.Cos(phi) * math.Pi / 4.,
			}
		}
	)
	g, err := NewGeneric(f, df, nil)
	require.NoError(t, err)

	assert.InDelta(t, 3., g.Eval(-1).X, 1.e-14)
	assert.InDelta(t, 1.5, g.Eval(1).Y, 1.e-14)

	// finite-difference second derivative against the analytic one
	for _, tt := range []float64{-0.7, 0., 0.4} {
		phi := math.Pi / 4. * (tt + 1.)
		s := math.Pi / 4. * math.Pi / 4.
		assert.InDelta(t, -3.*math.Cos(phi)*s, g.DoubleDerivative(tt).X, 1.e-6)
		assert.InDelta(t, -1.5*math.Sin(phi)*s, g.DoubleDerivative(tt).Y, 1.e-6)
	}

	parts, err := g.Split(3)
	require.NoError(t, err)
	for i := 0; i+1 < len(parts); i++ {
		gap := parts[i].Eval(1).Distance(parts[i+1].Eval(-1))
		assert.InDelta(t, 0., gap, 1.e-13)
	}
	assert.InDelta(t, 0., parts[0].Eval(-1).Distance(g.Eval(-1)), 1.e-13)
	assert.InDelta(t, 0., parts[2].Eval(1).Distance(g.Eval(1)), 1.e-13)

	// constant map has a vanishing derivative everywhere
	_, err = NewGeneric(
		func(float64) Point { return Point{X: 1, Y: 1} },
		func(float64) Point { return Point{} },
		nil)
	assert.ErrorIs(t, err, ErrDegenerateCurve)

	_, err = NewGeneric(nil, nil, nil)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
}

func TestIntersect(t *testing.T) {
	a, err := NewLine(Point{X: -1, Y: 0}, Point{X: 1, Y: 0})
	require.NoError(t, err)
	b, err := NewLine(Point{X: 0, Y: -1}, Point{X: 0, Y: 1})
	require.NoError(t, err)
	assert.True(t, Intersect(a, b, 16))

	c, err := NewLine(Point{X: -1, Y: 2}, Point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.False(t, Intersect(a, c, 16))

	// concentric circles never touch
	outer, err := NewCircle(Point{}, 2.)
	require.NoError(t, err)
	inner, err := NewCircle(Point{}, 1.)
	require.NoError(t, err)
	assert.False(t, Intersect(outer, inner, 32))

	crossing, err := NewCircle(Point{X: 1.5, Y: 0}, 1.)
	require.NoError(t, err)
	assert.True(t, Intersect(outer, crossing, 64))
}

func TestPointOperations(t *testing.T) {
	var (
		p = Point{X: 3, Y: 4}
		q = Point{X: 1, Y: -2}
	)
	assert.InDelta(t, 5., p.Hypot(), 1.e-15)
	assert.InDelta(t, -5., p.Dot(q), 1.e-15)
	assert.InDelta(t, -10., p.Cross(q), 1.e-15)
	assert.InDelta(t, math.Hypot(2., 6.), p.Distance(q), 1.e-15)
	assert.Equal(t, Point{X: 4, Y: 2}, p.Add(q))
	assert.Equal(t, Point{X: 2, Y: 6}, p.Sub(q))
	assert.Equal(t, Point{X: 6, Y: 8}, p.Mul(2.))
}
