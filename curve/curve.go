// Package curve provides the parametrized panels a boundary mesh is built
// from. Every panel maps the reference parameter t in [-1,1] to a physical
// point in the plane and exposes first and second parameter derivatives.
package curve

import (
	"errors"
	"fmt"
)

// ErrDegenerateCurve is returned when a curve construction produces a
// zero-length arc or an irregular parametrization (vanishing derivative).
var ErrDegenerateCurve = errors.New("curve: degenerate curve")

// regularization samples used to reject parametrizations with a vanishing
// derivative somewhere on [-1,1]
const regularitySamples = 17

// Panel is one parametrized arc segment of a discretized boundary.
// Implementations are immutable once constructed.
type Panel interface {
	// Eval maps the reference parameter t in [-1,1] to a physical point.
	Eval(t float64) Point
	// Derivative returns the tangent vector d gamma / dt.
	Derivative(t float64) Point
	// DoubleDerivative returns d^2 gamma / dt^2, needed where curvature
	// enters (coinciding-panel double-layer limits).
	DoubleDerivative(t float64) Point
	// Split subdivides the parameter domain into n equal parts and returns
	// the sub-panels, each reparametrized over [-1,1] and ordered so the end
	// point of one is the start point of the next.
	Split(n int) ([]Panel, error)
}

// checkRegular samples the derivative over [-1,1] and rejects
// parametrizations that are not regular.
func checkRegular(p Panel) error {
	for i := 0; i < regularitySamples; i++ {
		t := -1. + 2.*float64(i)/float64(regularitySamples-1)
		if p.Derivative(t).Hypot() < 1.e-14 {
			return fmt.Errorf("zero derivative at t = %v: %w", t, ErrDegenerateCurve)
		}
	}
	return nil
}

// Intersect reports whether two panels intersect, using a polyline
// approximation of each panel with the given number of samples per panel.
// Shared endpoints of chained panels count as intersections, so the test is
// meant for panels of distinct boundary components.
func Intersect(a, b Panel, samples int) bool {
	if samples < 2 {
		samples = 8
	}
	ptsA := samplePolyline(a, samples)
	ptsB := samplePolyline(b, samples)
	for i := 0; i+1 < len(ptsA); i++ {
		for j := 0; j+1 < len(ptsB); j++ {
			if segmentsCross(ptsA[i], ptsA[i+1], ptsB[j], ptsB[j+1]) {
				return true
			}
		}
	}
	return false
}

func samplePolyline(p Panel, samples int) (pts []Point) {
	pts = make([]Point, samples)
	for i := range pts {
		t := -1. + 2.*float64(i)/float64(samples-1)
		pts[i] = p.Eval(t)
	}
	return
}

// segmentsCross tests proper and touching intersection of segments ab and cd.
func segmentsCross(a, b, c, d Point) bool {
	d1 := b.Sub(a).Cross(c.Sub(a))
	d2 := b.Sub(a).Cross(d.Sub(a))
	d3 := d.Sub(c).Cross(a.Sub(c))
	d4 := d.Sub(c).Cross(b.Sub(c))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return onSegment(a, b, c) || onSegment(a, b, d) ||
		onSegment(c, d, a) || onSegment(c, d, b)
}

func onSegment(a, b, p Point) bool {
	if b.Sub(a).Cross(p.Sub(a)) != 0 {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}
