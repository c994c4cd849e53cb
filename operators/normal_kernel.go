package operators

import (
	"math"

	"github.com/piyushplcr7/2DParametricBEM/curve"
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/quadrature"
	"github.com/piyushplcr7/2DParametricBEM/space"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// normalKernel evaluates the full kernel of a normal-derivative operator at
// parameters (s,t), including both Jacobian-type factors (the normal on one
// side replaces that side's Jacobian through n |gamma'| = (gamma')^perp).
// Implementations carry the regularized diagonal limit for coinciding pairs,
// so the singular point is never evaluated directly.
type normalKernel func(s, t float64) float64

// outwardConormal returns n(t) |gamma'(t)|, the outward normal scaled by the
// Jacobian, for a counterclockwise oriented boundary.
func outwardConormal(p curve.Panel, t float64) curve.Point {
	d := p.Derivative(t)
	return curve.Point{X: d.Y, Y: -d.X}
}

// doubleLayerKernel is the Galerkin kernel of the double layer operator,
//
//	k(x,y) = (x-y).n(y) / (2 pi |x-y|^2),
//
// with x on the test panel and y on the trial panel, times the test Jacobian
// (the trial Jacobian is absorbed into the conormal). On a coinciding pair
// the kernel has a removable singularity with limit
// (d^2 gamma / dt^2).n(t) / (4 pi |gamma'(t)|^2).
func doubleLayerKernel(pi, pj curve.Panel, rel mesh.PairRelation) normalKernel {
	return func(s, t float64) float64 {
		if rel == mesh.Coinciding && math.Abs(s-t) < diagTol {
			var (
				cn = outwardConormal(pj, t)
				dj = pj.Derivative(t).Hypot()
			)
			return pj.DoubleDerivative(t).Dot(cn) / (4. * math.Pi * dj * dj) * pi.Derivative(s).Hypot()
		}
		var (
			d  = pi.Eval(s).Sub(pj.Eval(t))
			r2 = d.Dot(d)
		)
		return d.Dot(outwardConormal(pj, t)) / (2. * math.Pi * r2) * pi.Derivative(s).Hypot()
	}
}

// adjointDoubleLayerKernel mirrors doubleLayerKernel with the normal taken
// on the test panel:
//
//	k'(x,y) = (y-x).n(x) / (2 pi |x-y|^2).
func adjointDoubleLayerKernel(pi, pj curve.Panel, rel mesh.PairRelation) normalKernel {
	return func(s, t float64) float64 {
		if rel == mesh.Coinciding && math.Abs(s-t) < diagTol {
			var (
				cn = outwardConormal(pi, s)
				di = pi.Derivative(s).Hypot()
			)
			return pi.DoubleDerivative(s).Dot(cn) / (4. * math.Pi * di * di) * pj.Derivative(t).Hypot()
		}
		var (
			d  = pj.Eval(t).Sub(pi.Eval(s))
			r2 = d.Dot(d)
		)
		return d.Dot(outwardConormal(pi, s)) / (2. * math.Pi * r2) * pj.Derivative(t).Hypot()
	}
}

// normalKernelInteraction computes the local matrix of a double layer or
// adjoint double layer pairing. Disjoint and coinciding pairs use the tensor
// Gauss rule (the coinciding kernel is bounded, with the diagonal handled by
// the regularized limit inside the kernel). Adjacent pairs meet at a corner
// where the kernel grows like 1/r; polar coordinates around the shared
// vertex supply the Jacobian r that cancels the growth.
func normalKernelInteraction(pi, pj curve.Panel, rel mesh.PairRelation, kern normalKernel, test, trial space.BEMSpace, order int) (utils.Matrix, error) {
	if rel == mesh.Adjacent {
		return normalKernelAdjacent(pi, pj, kern, test, trial, order)
	}
	g, err := quadrature.GaussRule(order)
	if err != nil {
		return utils.Matrix{}, err
	}
	var (
		qTest  = test.NumRefShapeFunctions()
		qTrial = trial.NumRefShapeFunctions()
		L      = utils.NewMatrix(qTest, qTrial)
		gx     = g.X.RawVector().Data
		gw     = g.W.RawVector().Data
	)
	for a, s := range gx {
		for b, t := range gx {
			wab := gw[a] * gw[b] * kern(s, t)
			for q := 0; q < qTest; q++ {
				tf := test.ShapeFunction(q, s)
				for l := 0; l < qTrial; l++ {
					L.AddAt(q, l, wab*tf*trial.ShapeFunction(l, t))
				}
			}
		}
	}
	return L, nil
}

func normalKernelAdjacent(pi, pj curve.Panel, kern normalKernel, test, trial space.BEMSpace, order int) (utils.Matrix, error) {
	g, err := quadrature.GaussRule(order)
	if err != nil {
		return utils.Matrix{}, err
	}
	var (
		qTest     = test.NumRefShapeFunctions()
		qTrial    = trial.NumRefShapeFunctions()
		L         = utils.NewMatrix(qTest, qTrial)
		gx        = g.X.RawVector().Data
		gw        = g.W.RawVector().Data
		sOf, tOf  = sharedVertexCoords(pi, pj)
		phiBounds = [3]float64{0., 0.25 * math.Pi, 0.5 * math.Pi}
	)
	for seg := 0; seg < 2; seg++ {
		var (
			lo   = phiBounds[seg]
			hi   = phiBounds[seg+1]
			jphi = 0.5 * (hi - lo)
		)
		for c, xc := range gx {
			var (
				phi  = 0.5*(lo+hi) + xc*jphi
				wphi = gw[c] * jphi
				R    float64
			)
			if seg == 0 {
				R = 2. / math.Cos(phi)
			} else {
				R = 2. / math.Sin(phi)
			}
			jr := 0.5 * R
			for a, xa := range gx {
				var (
					r = jr * (xa + 1.)
					s = sOf(r * math.Cos(phi))
					t = tOf(r * math.Sin(phi))
					w = wphi * gw[a] * jr * r * kern(s, t)
				)
				for q := 0; q < qTest; q++ {
					tf := test.ShapeFunction(q, s)
					for l := 0; l < qTrial; l++ {
						L.AddAt(q, l, w*tf*trial.ShapeFunction(l, t))
					}
				}
			}
		}
	}
	return L, nil
}
