package curve

import "math"

// Point is a point or vector in the plane.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(a float64) Point {
	return Point{a * p.X, a * p.Y}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the z component of the cross product of the two vectors.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Hypot()
}
