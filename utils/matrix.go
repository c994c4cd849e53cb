package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a thin chainable wrapper around a dense gonum matrix. Galerkin
// matrices and local interaction matrices are carried in this form.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

// AddAt accumulates val into cell (i,j). Scatter of local panel contributions
// into the global matrix is always additive, never an overwrite.
func (m Matrix) AddAt(i, j int, val float64) Matrix {
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Scale(a float64) Matrix {
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

// Add accumulates A into the receiver elementwise.
func (m Matrix) Add(A Matrix) Matrix {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		panic(fmt.Errorf("dimension mismatch in Add: %dx%d vs %dx%d", nr, nc, nrA, ncA))
	}
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		panic(fmt.Errorf("dimension mismatch in Subtract: %dx%d vs %dx%d", nr, nc, nrA, ncA))
	}
	m.M.Sub(m.M, A.M)
	return m
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// MulVec applies the matrix to a coefficient vector.
func (m Matrix) MulVec(v Vector) (R Vector) {
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

// MaxAbs returns the largest absolute entry, used for symmetry checks.
func (m Matrix) MaxAbs() (max float64) {
	var (
		data = m.M.RawMatrix().Data
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

// FrobNorm returns the Frobenius norm.
func (m Matrix) FrobNorm() float64 {
	return mat.Norm(m.M, 2)
}

func (m Matrix) SumRows() (V Vector) {
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nr)
	for i := 0; i < nr; i++ {
		var sum float64
		for j := 0; j < nc; j++ {
			sum += m.M.At(i, j)
		}
		V.V.SetVec(i, sum)
	}
	return
}

func (m Matrix) Print(label string) {
	fmt.Printf("%s = \n%v\n", label, mat.Formatted(m.M, mat.Squeeze()))
}
