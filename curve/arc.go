package curve

import (
	"fmt"
	"math"
)

// CircularArc is a circular-arc panel, parametrized by mapping [-1,1]
// affinely onto the angle range [phi0, phi1].
type CircularArc struct {
	center     Point
	radius     float64
	phi0, phi1 float64
}

var _ Panel = CircularArc{}

// NewCircularArc constructs an arc of the circle with the given center and
// radius sweeping from angle phi0 at t=-1 to phi1 at t=1. A positive sweep
// traverses the circle counterclockwise.
func NewCircularArc(center Point, radius, phi0, phi1 float64) (CircularArc, error) {
	if radius <= 0 {
		return CircularArc{}, fmt.Errorf("arc radius %v: %w", radius, ErrDegenerateCurve)
	}
	if math.Abs(phi1-phi0) < 1.e-14 {
		return CircularArc{}, fmt.Errorf("arc sweep is empty: %w", ErrDegenerateCurve)
	}
	return CircularArc{center: center, radius: radius, phi0: phi0, phi1: phi1}, nil
}

// NewCircle is the closed full-circle convenience, counterclockwise from
// angle 0. Meant to be split into panels before meshing.
func NewCircle(center Point, radius float64) (CircularArc, error) {
	return NewCircularArc(center, radius, 0, 2*math.Pi)
}

func (c CircularArc) angle(t float64) float64 {
	return c.phi0 + 0.5*(t+1.)*(c.phi1-c.phi0)
}

func (c CircularArc) Eval(t float64) Point {
	phi := c.angle(t)
	return Point{
		X: c.center.X + c.radius*math.Cos(phi),
		Y: c.center.Y + c.radius*math.Sin(phi),
	}
}

func (c CircularArc) Derivative(t float64) Point {
	var (
		phi  = c.angle(t)
		dphi = 0.5 * (c.phi1 - c.phi0)
	)
	return Point{
		X: -c.radius * math.Sin(phi) * dphi,
		Y: c.radius * math.Cos(phi) * dphi,
	}
}

func (c CircularArc) DoubleDerivative(t float64) Point {
	var (
		phi  = c.angle(t)
		dphi = 0.5 * (c.phi1 - c.phi0)
	)
	return Point{
		X: -c.radius * math.Cos(phi) * dphi * dphi,
		Y: -c.radius * math.Sin(phi) * dphi * dphi,
	}
}

func (c CircularArc) Split(n int) (panels []Panel, err error) {
	if n < 1 {
		return nil, fmt.Errorf("split into %d panels: %w", n, ErrDegenerateCurve)
	}
	panels = make([]Panel, n)
	for i := 0; i < n; i++ {
		a := c.phi0 + (c.phi1-c.phi0)*float64(i)/float64(n)
		b := c.phi0 + (c.phi1-c.phi0)*float64(i+1)/float64(n)
		sub, e := NewCircularArc(c.center, c.radius, a, b)
		if e != nil {
			return nil, e
		}
		panels[i] = sub
	}
	return
}
