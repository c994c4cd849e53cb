package operators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyushplcr7/2DParametricBEM/curve"
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/space"
)

// For a straight panel of length L the single layer self-interaction of the
// constant basis function has the closed form -L^2/(8 pi)(4 log L - 6).
func TestSingleLayerCoincidingStraightPanel(t *testing.T) {
	d0, err := space.NewDiscontinuousSpace(0)
	require.NoError(t, err)
	for _, L := range []float64{0.5, 1., 2.} {
		p, err := curve.NewLine(curve.Point{}, curve.Point{X: L})
		require.NoError(t, err)
		M, err := logKernelInteraction(p, p, mesh.Coinciding, singleLayerIntegrand(p, p, d0, d0), 12)
		require.NoError(t, err)
		exact := -L * L / (8. * math.Pi) * (4.*math.Log(L) - 6.)
		assert.InDelta(t, exact, M.At(0, 0), 1.e-10, "L = %v", L)
	}
}

func TestSingleLayerAdjacentPairs(t *testing.T) {
	d0, err := space.NewDiscontinuousSpace(0)
	require.NoError(t, err)

	entry := func(pi, pj curve.Panel) float64 {
		M, err := logKernelInteraction(pi, pj, mesh.Adjacent, singleLayerIntegrand(pi, pj, d0, d0), 12)
		require.NoError(t, err)
		return M.At(0, 0)
	}

	// collinear unit segments share the vertex (1,0); the closed form of the
	// physical double integral is (3/2 - 2 log 2)/(2 pi)
	p1, err := curve.NewLine(curve.Point{}, curve.Point{X: 1})
	require.NoError(t, err)
	p2, err := curve.NewLine(curve.Point{X: 1}, curve.Point{X: 2})
	require.NoError(t, err)
	assert.InDelta(t, (1.5-2.*math.Ln2)/(2.*math.Pi), entry(p1, p2), 1.e-10)

	// perpendicular unit segments sharing the origin, one ending and one
	// starting there; reference value from overkill graded quadrature
	q1, err := curve.NewLine(curve.Point{X: 1}, curve.Point{})
	require.NoError(t, err)
	q2, err := curve.NewLine(curve.Point{}, curve.Point{Y: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.058573514600, entry(q1, q2), 1.e-9)

	// consecutive eighth arcs of the unit circle
	a1, err := curve.NewCircularArc(curve.Point{}, 1., 0., math.Pi/4.)
	require.NoError(t, err)
	a2, err := curve.NewCircularArc(curve.Point{}, 1., math.Pi/4., math.Pi/2.)
	require.NoError(t, err)
	assert.InDelta(t, 0.037849808333, entry(a1, a2), 1.e-8)
}

func TestSingleLayerCircle(t *testing.T) {
	var (
		msh   = circleMesh(t, 1., 8)
		c1, _ = space.NewContinuousSpace(1)
	)
	V, err := SingleLayerMatrix(msh, c1, c1, 10)
	require.NoError(t, err)

	assert.Less(t, symmetryDefect(V), 1.e-12)

	// the unit circle has logarithmic capacity one, so constants lie in the
	// kernel of V and every row sums to zero
	rows := V.SumRows()
	assert.Less(t, rows.MaxAbs(), 1.e-12)

	// circulant structure: all diagonal entries agree and are positive
	d00 := V.At(0, 0)
	assert.Greater(t, d00, 0.)
	for i := 1; i < 8; i++ {
		assert.InDelta(t, d00, V.At(i, i), 1.e-12)
	}

	// positive semidefinite with the constants as null space
	assert.Greater(t, minEigSym(t, V), -1.e-8)
}

// A modest order suffices for the structural properties: symmetry is exact
// by construction of the pair strategies, while the null-space defect is
// bounded by the quadrature error.
func TestSingleLayerCircleLowOrder(t *testing.T) {
	var (
		msh   = circleMesh(t, 1., 8)
		c1, _ = space.NewContinuousSpace(1)
	)
	V, err := SingleLayerMatrix(msh, c1, c1, 5)
	require.NoError(t, err)
	assert.Less(t, symmetryDefect(V), 1.e-12)
	assert.Less(t, V.SumRows().MaxAbs(), 1.e-3)
	assert.Greater(t, minEigSym(t, V), -1.e-4)
}

// The trace of u(x,y) = x on the unit circle has the exact energy
// <V u, u> = pi/2; the Galerkin value converges at second order in the
// mesh width.
func TestSingleLayerBilinearFormConvergence(t *testing.T) {
	c1, err := space.NewContinuousSpace(1)
	require.NoError(t, err)
	f := func(x, y float64) float64 { return x }

	energy := func(n int) float64 {
		msh := circleMesh(t, 1., n)
		V, err := SingleLayerMatrix(msh, c1, c1, 10)
		require.NoError(t, err)
		c, err := c1.Interpolate(f, msh)
		require.NoError(t, err)
		return c.Dot(V.MulVec(c))
	}

	var (
		exact = 0.5 * math.Pi
		err8  = math.Abs(energy(8) - exact)
		err16 = math.Abs(energy(16) - exact)
		err32 = math.Abs(energy(32) - exact)
	)
	assert.Less(t, err16, err8)
	assert.Less(t, err32, err16)
	assert.Greater(t, err8/err16, 2.5)
	assert.Greater(t, err16/err32, 2.5)
	assert.Less(t, err32, 2.e-2)
}
