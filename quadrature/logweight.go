package quadrature

import (
	"fmt"
	"math"
	"sync"

	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// MaxLogWeightOrder is the largest tabulated order for the log-weighted rule.
const MaxLogWeightOrder = 16

var (
	logCacheMtx sync.Mutex
	logCache    = make(map[int]Rule)
)

// LogWeightRule returns a rule for integrals of the form
//
//	int_0^a f(x) log(x) dx
//
// built from the fixed node/weight table for the weight -log(x) on (0,1)
// combined with a standard Gauss rule carrying the log(a) interval term:
//
//	int_0^a f log x dx = -a int_0^1 f(au)(-log u) du + a log(a) int_0^1 f(au) du
//
// The returned rule has 2n points with signed weights. Orders outside the
// tabulated range 1..16 fail with ErrUnsupportedOrder, as does a degenerate
// interval a <= 0.
func LogWeightRule(n int, a float64) (Rule, error) {
	if n < 1 || n > MaxLogWeightOrder {
		return Rule{}, fmt.Errorf("LogWeightRule: order %d: %w", n, ErrUnsupportedOrder)
	}
	if !(a > 0) {
		return Rule{}, fmt.Errorf("LogWeightRule: interval length %v: %w", a, ErrUnsupportedOrder)
	}
	base, err := logWeightBase(n)
	if err != nil {
		return Rule{}, err
	}
	gauss, err := GaussRule(n)
	if err != nil {
		return Rule{}, err
	}
	var (
		x   = make([]float64, 2*n)
		w   = make([]float64, 2*n)
		lna = math.Log(a)
		bX  = base.X.RawVector().Data
		bW  = base.W.RawVector().Data
		gX  = gauss.X.RawVector().Data
		gW  = gauss.W.RawVector().Data
	)
	for i := 0; i < n; i++ {
		x[i] = a * bX[i]
		w[i] = -a * bW[i]
	}
	for j := 0; j < n; j++ {
		x[n+j] = a * 0.5 * (gX[j] + 1.)
		w[n+j] = a * lna * 0.5 * gW[j]
	}
	return Rule{
		Dim: 1,
		N:   2 * n,
		X:   utils.NewVector(2*n, x),
		W:   utils.NewVector(2*n, w),
	}, nil
}

// logWeightBase returns the tabulated n-point rule for int_0^1 f(x)(-log x) dx.
func logWeightBase(n int) (Rule, error) {
	logCacheMtx.Lock()
	defer logCacheMtx.Unlock()
	if r, ok := logCache[n]; ok {
		return r, nil
	}
	xs, ok := logWeightNodes[n]
	if !ok {
		return Rule{}, fmt.Errorf("logWeightBase: order %d: %w", n, ErrUnsupportedOrder)
	}
	ws := logWeightWeights[n]
	r := Rule{
		Dim: 1,
		N:   n,
		X:   utils.NewVector(n, xs),
		W:   utils.NewVector(n, ws),
	}
	logCache[n] = r
	return r, nil
}
