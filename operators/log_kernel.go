package operators

import (
	"math"

	"github.com/piyushplcr7/2DParametricBEM/curve"
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/quadrature"
	"github.com/piyushplcr7/2DParametricBEM/space"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// diagTol is the parameter-distance threshold below which the regularized
// diagonal limit replaces a kernel ratio evaluation.
const diagTol = 1.e-10

// logIntegrand bundles the non-kernel factors of a log-kernel pairing. For
// the single layer these are basis times Jacobian on each side; for the
// hypersingular operator (after integration by parts) the reference basis
// derivatives with no Jacobian factors.
type logIntegrand struct {
	qTest, qTrial int
	testFn        func(q int, s float64) float64
	trialFn       func(q int, t float64) float64
}

// singleLayerIntegrand pairs basis functions weighted by the panel
// Jacobians.
func singleLayerIntegrand(pi, pj curve.Panel, test, trial space.BEMSpace) logIntegrand {
	return logIntegrand{
		qTest:  test.NumRefShapeFunctions(),
		qTrial: trial.NumRefShapeFunctions(),
		testFn: func(q int, s float64) float64 {
			return test.ShapeFunction(q, s) * pi.Derivative(s).Hypot()
		},
		trialFn: func(q int, t float64) float64 {
			return trial.ShapeFunction(q, t) * pj.Derivative(t).Hypot()
		},
	}
}

// hypersingularIntegrand realizes the principal-value sense of the
// hypersingular operator through the integration-by-parts identity
//
//	<W phi, psi> = -(1/2pi) Int Int log|x-y| psi'(s) phi'(t) ds dt
//
// which moves one derivative onto each basis function; the arc-length
// derivative Jacobians cancel the integration Jacobians exactly, so the
// reference derivatives appear bare and the machinery of the single layer
// applies unchanged.
func hypersingularIntegrand(test, trial space.BEMSpace) logIntegrand {
	return logIntegrand{
		qTest:   test.NumRefShapeFunctions(),
		qTrial:  trial.NumRefShapeFunctions(),
		testFn:  test.ShapeFunctionDot,
		trialFn: trial.ShapeFunctionDot,
	}
}

// logKernelInteraction computes the local matrix of a pairing with kernel
// -(1/2pi) log|gamma_i(s) - gamma_j(t)| against the given integrand factors.
func logKernelInteraction(pi, pj curve.Panel, rel mesh.PairRelation, fns logIntegrand, order int) (utils.Matrix, error) {
	switch rel {
	case mesh.Coinciding:
		return logKernelCoinciding(pi, fns, order)
	case mesh.Adjacent:
		return logKernelAdjacent(pi, pj, fns, order)
	}
	return logKernelGeneral(pi, pj, fns, order)
}

// logKernelGeneral handles disjoint pairs: the kernel is smooth on the whole
// parameter square and a tensor Gauss rule applies directly.
func logKernelGeneral(pi, pj curve.Panel, fns logIntegrand, order int) (utils.Matrix, error) {
	g, err := quadrature.GaussRule(order)
	if err != nil {
		return utils.Matrix{}, err
	}
	var (
		L  = utils.NewMatrix(fns.qTest, fns.qTrial)
		gx = g.X.RawVector().Data
		gw = g.W.RawVector().Data
	)
	for a, s := range gx {
		for b, t := range gx {
			kv := -0.5 / math.Pi * math.Log(pi.Eval(s).Distance(pj.Eval(t)))
			wab := gw[a] * gw[b] * kv
			for q := 0; q < fns.qTest; q++ {
				tf := fns.testFn(q, s)
				for l := 0; l < fns.qTrial; l++ {
					L.AddAt(q, l, wab*tf*fns.trialFn(l, t))
				}
			}
		}
	}
	return L, nil
}

// logKernelCoinciding handles an identical pair through the splitting
//
//	log|gamma(s)-gamma(t)| = log(|gamma(s)-gamma(t)| / |s-t|) + log|s-t|
//
// The ratio term is smooth (diagonal limit log|gamma'|) and integrated by a
// tensor Gauss rule. The log|s-t| term is folded onto w = s-t:
//
//	Int_0^2 log(w) G(w) dw,  G(w) = Int_{w-1}^1 F(s,s-w) + F(s-w,s) ds
//
// with the inner integral smooth (Gauss) and the outer handled by the
// log-weighted rule on (0,2).
func logKernelCoinciding(p curve.Panel, fns logIntegrand, order int) (utils.Matrix, error) {
	g, err := quadrature.GaussRule(order)
	if err != nil {
		return utils.Matrix{}, err
	}
	lr, err := quadrature.LogWeightRule(logOrder(order), 2.)
	if err != nil {
		return utils.Matrix{}, err
	}
	var (
		L  = utils.NewMatrix(fns.qTest, fns.qTrial)
		gx = g.X.RawVector().Data
		gw = g.W.RawVector().Data
		lx = lr.X.RawVector().Data
		lw = lr.W.RawVector().Data
	)
	// smooth ratio part
	for a, s := range gx {
		for b, t := range gx {
			var kv float64
			if math.Abs(s-t) < diagTol {
				// removable singularity: the ratio tends to |gamma'(t)|
				kv = math.Log(p.Derivative(t).Hypot())
			} else {
				kv = math.Log(p.Eval(s).Distance(p.Eval(t)) / math.Abs(s-t))
			}
			wab := gw[a] * gw[b] * kv
			for q := 0; q < fns.qTest; q++ {
				tf := fns.testFn(q, s)
				for l := 0; l < fns.qTrial; l++ {
					L.AddAt(q, l, wab*tf*fns.trialFn(l, t))
				}
			}
		}
	}
	// log-singular part
	for m, w := range lx {
		half := 0.5 * (2. - w)
		for a, x := range gx {
			var (
				s   = 0.5*w + x*half // s in (w-1, 1)
				t   = s - w
				wgt = lw[m] * gw[a] * half
			)
			for q := 0; q < fns.qTest; q++ {
				for l := 0; l < fns.qTrial; l++ {
					L.AddAt(q, l, wgt*(fns.testFn(q, s)*fns.trialFn(l, t)+
						fns.testFn(q, t)*fns.trialFn(l, s)))
				}
			}
		}
	}
	return L.Scale(-0.5 / math.Pi), nil
}

// logKernelAdjacent handles pairs sharing one vertex. Both parameters are
// reoriented so the shared vertex sits at local coordinate 0 with domains
// (0,2), then polar coordinates u = r cos(phi), v = r sin(phi) are applied
// with the phi range split at pi/4:
//
//	log|gamma_i - gamma_j| = log(|gamma_i - gamma_j| / r) + log(r)
//
// The ratio term is smooth along each phi ray (Gauss in r); the log(r) term
// uses the log-weighted rule on (0, R(phi)).
func logKernelAdjacent(pi, pj curve.Panel, fns logIntegrand, order int) (utils.Matrix, error) {
	g, err := quadrature.GaussRule(order)
	if err != nil {
		return utils.Matrix{}, err
	}
	var (
		L         = utils.NewMatrix(fns.qTest, fns.qTrial)
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
			// smooth ratio part, Gauss in r over (0,R)
			jr := 0.5 * R
			for a, xa := range gx {
				var (
					r = jr * (xa + 1.)
					s = sOf(r * math.Cos(phi))
					t = tOf(r * math.Sin(phi))
					D = pi.Eval(s).Distance(pj.Eval(t))
					w = wphi * gw[a] * jr * r * math.Log(D/r)
				)
				for q := 0; q < fns.qTest; q++ {
					tf := fns.testFn(q, s)
					for l := 0; l < fns.qTrial; l++ {
						L.AddAt(q, l, w*tf*fns.trialFn(l, t))
					}
				}
			}
			// log(r) part via the log-weighted rule on (0,R)
			lr, err := quadrature.LogWeightRule(logOrder(order), R)
			if err != nil {
				return utils.Matrix{}, err
			}
			var (
				lx = lr.X.RawVector().Data
				lw = lr.W.RawVector().Data
			)
			for m, r := range lx {
				var (
					s = sOf(r * math.Cos(phi))
					t = tOf(r * math.Sin(phi))
					w = wphi * lw[m] * r
				)
				for q := 0; q < fns.qTest; q++ {
					tf := fns.testFn(q, s)
					for l := 0; l < fns.qTrial; l++ {
						L.AddAt(q, l, w*tf*fns.trialFn(l, t))
					}
				}
			}
		}
	}
	return L.Scale(-0.5 / math.Pi), nil
}

// sharedVertexCoords determines which endpoints of the two panels coincide
// and returns the maps from corner-based coordinates u, v in (0,2) back to
// the panels' reference parameters, with the shared vertex at u = v = 0.
func sharedVertexCoords(pi, pj curve.Panel) (sOf, tOf func(float64) float64) {
	var (
		iEnds = [2]curve.Point{pi.Eval(-1), pi.Eval(1)}
		jEnds = [2]curve.Point{pj.Eval(-1), pj.Eval(1)}
		best  = math.Inf(1)
		flipI bool
		flipJ bool
	)
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			if d := iEnds[a].Distance(jEnds[b]); d < best {
				best = d
				flipI = a == 1
				flipJ = b == 1
			}
		}
	}
	sOf = func(u float64) float64 {
		if flipI {
			return 1. - u
		}
		return u - 1.
	}
	tOf = func(v float64) float64 {
		if flipJ {
			return 1. - v
		}
		return v - 1.
	}
	return
}

// logOrder clamps the requested order into the tabulated range of the
// log-weighted rule.
func logOrder(order int) int {
	if order > quadrature.MaxLogWeightOrder {
		return quadrature.MaxLogWeightOrder
	}
	if order < 1 {
		return 1
	}
	return order
}
