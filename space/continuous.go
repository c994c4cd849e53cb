package space

import (
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// continuousP1 is the space S^0_1 of continuous piecewise linear functions:
// one dof per mesh vertex. Shape function 0 peaks at the right panel vertex
// gamma(1), shape function 1 at the left vertex gamma(-1).
type continuousP1 struct{}

var _ BEMSpace = continuousP1{}

func (continuousP1) NumRefShapeFunctions() int { return 2 }

func (continuousP1) ShapeFunction(q int, t float64) float64 {
	if q == 0 {
		return 0.5 * (t + 1.)
	}
	return 0.5 * (1. - t)
}

func (continuousP1) ShapeFunctionDot(q int, t float64) float64 {
	if q == 0 {
		return 0.5
	}
	return -0.5
}

func (continuousP1) GetSpaceDim(numpanels int) int { return numpanels }

func (s continuousP1) LocGlobMap(q, n, N int) (int, error) {
	if err := checkIndices(q, 2, n, N); err != nil {
		return 0, err
	}
	if q == 0 {
		// right vertex, shared with the next panel in the chain
		return (n + 1) % N, nil
	}
	return n, nil
}

func (s continuousP1) LocGlobMap2(q, n int, msh *mesh.ParametrizedMesh) (int, error) {
	return splitDispatch(s, q, n, msh)
}

// Interpolate fills coefficient i with the field value at vertex i.
func (s continuousP1) Interpolate(f func(x, y float64) float64, msh *mesh.ParametrizedMesh) (utils.Vector, error) {
	var (
		N      = msh.GetNumPanels()
		coeffs = utils.NewVector(s.GetSpaceDim(N))
	)
	for n := 0; n < N; n++ {
		g, err := s.LocGlobMap2(1, n, msh)
		if err != nil {
			return utils.Vector{}, err
		}
		pt := msh.GetPanel(n).Eval(-1)
		coeffs.SetVec(g, f(pt.X, pt.Y))
	}
	return coeffs, nil
}

// continuousP2 is the space S^0_2: vertex dofs plus one quadratic bubble dof
// per panel.
type continuousP2 struct{}

var _ BEMSpace = continuousP2{}

func (continuousP2) NumRefShapeFunctions() int { return 3 }

func (continuousP2) ShapeFunction(q int, t float64) float64 {
	switch q {
	case 0:
		return 0.5 * (t + 1.)
	case 1:
		return 0.5 * (1. - t)
	}
	return 1. - t*t
}

func (continuousP2) ShapeFunctionDot(q int, t float64) float64 {
	switch q {
	case 0:
		return 0.5
	case 1:
		return -0.5
	}
	return -2. * t
}

func (continuousP2) GetSpaceDim(numpanels int) int { return 2 * numpanels }

func (s continuousP2) LocGlobMap(q, n, N int) (int, error) {
	if err := checkIndices(q, 3, n, N); err != nil {
		return 0, err
	}
	switch q {
	case 0:
		return (n + 1) % N, nil
	case 1:
		return n, nil
	}
	// bubble dofs follow the N vertex dofs
	return N + n, nil
}

func (s continuousP2) LocGlobMap2(q, n int, msh *mesh.ParametrizedMesh) (int, error) {
	return splitDispatch(s, q, n, msh)
}

// Interpolate fills vertex dofs with vertex values and bubble dofs with the
// midpoint defect f(mid) - (f(left)+f(right))/2, the fixed combination that
// makes the interpolant exact for panelwise quadratics.
func (s continuousP2) Interpolate(f func(x, y float64) float64, msh *mesh.ParametrizedMesh) (utils.Vector, error) {
	var (
		N      = msh.GetNumPanels()
		coeffs = utils.NewVector(s.GetSpaceDim(N))
	)
	for n := 0; n < N; n++ {
		var (
			p     = msh.GetPanel(n)
			left  = p.Eval(-1)
			right = p.Eval(1)
			mid   = p.Eval(0)
		)
		gv, err := s.LocGlobMap2(1, n, msh)
		if err != nil {
			return utils.Vector{}, err
		}
		gb, err := s.LocGlobMap2(2, n, msh)
		if err != nil {
			return utils.Vector{}, err
		}
		coeffs.SetVec(gv, f(left.X, left.Y))
		coeffs.SetVec(gb, f(mid.X, mid.Y)-0.5*(f(left.X, left.Y)+f(right.X, right.Y)))
	}
	return coeffs, nil
}
