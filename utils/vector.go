package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a dense gonum column vector. Quadrature nodes and weights and
// interpolation coefficient vectors are carried in this form.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	if len(dataO) != 0 {
		V = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		V = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)          { return v.V.Dims() }
func (v Vector) At(i, j int) float64       { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix             { return v.V.T() }
func (v Vector) AtVec(i int) float64       { return v.V.AtVec(i) }
func (v Vector) SetVec(i int, val float64) { v.V.SetVec(i, val) }
func (v Vector) RawVector() blas64.Vector  { return v.V.RawVector() }
func (v Vector) Len() int                  { return v.V.Len() }

func (v Vector) Copy() (R Vector) {
	var (
		data  = v.V.RawVector().Data
		dataR = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewVector(len(dataR), dataR)
	return
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Set(val float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Dot(a Vector) (d float64) {
	return mat.Dot(v.V, a.V)
}

func (v Vector) Sub(a Vector) Vector {
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) MaxAbs() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		if val < 0 {
			val = -val
		}
		if val > max {
			max = val
		}
	}
	return
}
