// Package quadrature provides the point/weight rules used by the boundary
// integral operator assembly: standard Gauss-Legendre rules on [-1,1] and a
// logarithm-weighted rule for integrands with a log singularity.
package quadrature

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/piyushplcr7/2DParametricBEM/utils"
)

var (
	// ErrUnsupportedOrder is returned when a requested order is outside the
	// supported or tabulated range.
	ErrUnsupportedOrder = errors.New("quadrature: unsupported quadrature order")
	// ErrNonConvergence is returned when the Newton iteration for the
	// Legendre roots fails to stabilize within the iteration cap.
	ErrNonConvergence = errors.New("quadrature: root iteration did not converge")
)

const (
	maxGaussOrder = 512
	rootTol       = 1.e-15
	maxNewtonIter = 100
)

// Rule is an immutable quadrature rule: N nodes X with weights W satisfying
// sum W_k f(X_k) ~ int f. Dim tags the rule dimension (1 for all rules
// produced here; tensor products are formed on the fly by the assembler).
// Callers must treat X and W as read-only.
type Rule struct {
	Dim int
	N   int
	X   utils.Vector
	W   utils.Vector
}

var (
	gaussCacheMtx sync.Mutex
	gaussCache    = make(map[int]Rule)
)

// GaussRule returns the n-point Gauss-Legendre rule on [-1,1], exact for
// polynomials up to degree 2n-1. Rules are cached per order.
func GaussRule(n int) (Rule, error) {
	if n < 1 || n > maxGaussOrder {
		return Rule{}, fmt.Errorf("GaussRule: order %d: %w", n, ErrUnsupportedOrder)
	}
	gaussCacheMtx.Lock()
	defer gaussCacheMtx.Unlock()
	if r, ok := gaussCache[n]; ok {
		return r, nil
	}
	r, err := gauleg(n)
	if err != nil {
		return Rule{}, err
	}
	gaussCache[n] = r
	return r, nil
}

// gauleg computes the Gauss-Legendre nodes by Newton iteration on the roots
// of the Legendre polynomial P_n, with the closed-form weight
// 2 / ((1-z^2) P'_n(z)^2). Roots come in mirrored pairs around the interval
// midpoint, so only the first half is iterated.
func gauleg(n int) (r Rule, err error) {
	var (
		x = make([]float64, n)
		w = make([]float64, n)
		m = (n + 1) / 2
	)
	for i := 0; i < m; i++ {
		// cosine initial guess for the i-th root
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var (
			p1, dp1 float64
			iter    int
		)
		for {
			p1 = 1.
			p2 := 0.
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2.*float64(j)-1.)*z*p2 - (float64(j)-1.)*p3) / float64(j)
			}
			dp1 = float64(n) * (z*p1 - p2) / (z*z - 1.)
			z1 := z
			z = z1 - p1/dp1
			if math.Abs(z-z1) <= rootTol {
				break
			}
			iter++
			if iter > maxNewtonIter {
				err = fmt.Errorf("gauleg: order %d root %d: %w", n, i, ErrNonConvergence)
				return
			}
		}
		x[i] = -z
		x[n-1-i] = z
		wi := 2. / ((1. - z*z) * dp1 * dp1)
		w[i] = wi
		w[n-1-i] = wi
	}
	r = Rule{
		Dim: 1,
		N:   n,
		X:   utils.NewVector(n, x),
		W:   utils.NewVector(n, w),
	}
	return
}
