package space

import (
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// discontinuousP0 is the space S^-1_0 of panelwise constants.
type discontinuousP0 struct{}

var _ BEMSpace = discontinuousP0{}

func (discontinuousP0) NumRefShapeFunctions() int { return 1 }

func (discontinuousP0) ShapeFunction(q int, t float64) float64 { return 1. }

func (discontinuousP0) ShapeFunctionDot(q int, t float64) float64 { return 0. }

func (discontinuousP0) GetSpaceDim(numpanels int) int { return numpanels }

func (discontinuousP0) LocGlobMap(q, n, N int) (int, error) {
	if err := checkIndices(q, 1, n, N); err != nil {
		return 0, err
	}
	return n, nil
}

// Dofs are per panel, so the map is independent of the mesh split.
func (s discontinuousP0) LocGlobMap2(q, n int, msh *mesh.ParametrizedMesh) (int, error) {
	return s.LocGlobMap(q, n, msh.GetNumPanels())
}

// Interpolate fills coefficient n with the field value at the panel
// midpoint gamma_n(0).
func (s discontinuousP0) Interpolate(f func(x, y float64) float64, msh *mesh.ParametrizedMesh) (utils.Vector, error) {
	var (
		N      = msh.GetNumPanels()
		coeffs = utils.NewVector(N)
	)
	for n := 0; n < N; n++ {
		pt := msh.GetPanel(n).Eval(0)
		coeffs.SetVec(n, f(pt.X, pt.Y))
	}
	return coeffs, nil
}

// discontinuousP1 is the space S^-1_1 of panelwise linear functions with no
// continuity constraint: a mean dof block followed by a slope dof block.
type discontinuousP1 struct{}

var _ BEMSpace = discontinuousP1{}

func (discontinuousP1) NumRefShapeFunctions() int { return 2 }

func (discontinuousP1) ShapeFunction(q int, t float64) float64 {
	if q == 0 {
		return 0.5
	}
	return 0.5 * t
}

func (discontinuousP1) ShapeFunctionDot(q int, t float64) float64 {
	if q == 0 {
		return 0.
	}
	return 0.5
}

func (discontinuousP1) GetSpaceDim(numpanels int) int { return 2 * numpanels }

func (discontinuousP1) LocGlobMap(q, n, N int) (int, error) {
	if err := checkIndices(q, 2, n, N); err != nil {
		return 0, err
	}
	if q == 0 {
		return n, nil
	}
	return N + n, nil
}

// Dofs are per panel, so the map is independent of the mesh split.
func (s discontinuousP1) LocGlobMap2(q, n int, msh *mesh.ParametrizedMesh) (int, error) {
	return s.LocGlobMap(q, n, msh.GetNumPanels())
}

// Interpolate fills the mean block with f(right)+f(left) and the slope block
// with f(right)-f(left), the fixed combination that reproduces panelwise
// linear fields exactly at panel endpoints.
func (s discontinuousP1) Interpolate(f func(x, y float64) float64, msh *mesh.ParametrizedMesh) (utils.Vector, error) {
	var (
		N      = msh.GetNumPanels()
		coeffs = utils.NewVector(2 * N)
	)
	for n := 0; n < N; n++ {
		var (
			p     = msh.GetPanel(n)
			left  = p.Eval(-1)
			right = p.Eval(1)
			fl    = f(left.X, left.Y)
			fr    = f(right.X, right.Y)
		)
		coeffs.SetVec(n, fr+fl)
		coeffs.SetVec(N+n, fr-fl)
	}
	return coeffs, nil
}
