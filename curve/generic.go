package curve

import "fmt"

// Generic is a panel defined by an arbitrary differentiable parametrization
// gamma and its derivative, both over [-1,1]. When the second derivative is
// not supplied it is approximated by a central difference of the first.
type Generic struct {
	f, df, ddf func(t float64) Point
	// affine reparametrization a + b*t of the underlying function's
	// parameter, used by Split
	a, b float64
}

var _ Panel = Generic{}

const fdStep = 1.e-6

// NewGeneric constructs a panel from a parametrization and its derivative.
// ddf may be nil.
func NewGeneric(f, df, ddf func(t float64) Point) (Generic, error) {
	if f == nil || df == nil {
		return Generic{}, fmt.Errorf("nil parametrization: %w", ErrDegenerateCurve)
	}
	g := Generic{f: f, df: df, ddf: ddf, a: 0, b: 1}
	if err := checkRegular(g); err != nil {
		return Generic{}, err
	}
	return g, nil
}

func (g Generic) Eval(t float64) Point {
	return g.f(g.a + g.b*t)
}

func (g Generic) Derivative(t float64) Point {
	return g.df(g.a + g.b*t).Mul(g.b)
}

func (g Generic) DoubleDerivative(t float64) Point {
	u := g.a + g.b*t
	if g.ddf != nil {
		return g.ddf(u).Mul(g.b * g.b)
	}
	fwd := g.df(u + fdStep)
	bwd := g.df(u - fdStep)
	return fwd.Sub(bwd).Mul(g.b * g.b / (2. * fdStep))
}

func (g Generic) Split(n int) (panels []Panel, err error) {
	if n < 1 {
		return nil, fmt.Errorf("split into %d panels: %w", n, ErrDegenerateCurve)
	}
	panels = make([]Panel, n)
	for i := 0; i < n; i++ {
		// sub-panel i covers [lo,hi] of the current parametrization
		var (
			lo = -1. + 2.*float64(i)/float64(n)
			hi = -1. + 2.*float64(i+1)/float64(n)
		)
		sub := Generic{
			f: g.f, df: g.df, ddf: g.ddf,
			a: g.a + g.b*0.5*(lo+hi),
			b: g.b * 0.5 * (hi - lo),
		}
		if err = checkRegular(sub); err != nil {
			return nil, err
		}
		panels[i] = sub
	}
	return
}
