package curve

import "fmt"

// Line is a straight panel between two physical vertices, parametrized
// affinely over [-1,1].
type Line struct {
	p0, p1 Point
}

var _ Panel = Line{}

// NewLine constructs a straight panel from p0 = gamma(-1) to p1 = gamma(1).
func NewLine(p0, p1 Point) (Line, error) {
	if p0.Distance(p1) < 1.e-14 {
		return Line{}, fmt.Errorf("line endpoints coincide at (%v,%v): %w", p0.X, p0.Y, ErrDegenerateCurve)
	}
	return Line{p0: p0, p1: p1}, nil
}

func (l Line) Eval(t float64) Point {
	return l.p0.Add(l.p1.Sub(l.p0).Mul(0.5 * (t + 1.)))
}

func (l Line) Derivative(t float64) Point {
	return l.p1.Sub(l.p0).Mul(0.5)
}

func (l Line) DoubleDerivative(t float64) Point {
	return Point{}
}

func (l Line) Split(n int) (panels []Panel, err error) {
	if n < 1 {
		return nil, fmt.Errorf("split into %d panels: %w", n, ErrDegenerateCurve)
	}
	panels = make([]Panel, n)
	for i := 0; i < n; i++ {
		a := l.Eval(-1. + 2.*float64(i)/float64(n))
		b := l.Eval(-1. + 2.*float64(i+1)/float64(n))
		sub, e := NewLine(a, b)
		if e != nil {
			return nil, e
		}
		panels[i] = sub
	}
	return
}
