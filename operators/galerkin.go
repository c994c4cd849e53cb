package operators

import (
	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/space"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// SingleLayerMatrix assembles the Galerkin matrix of the weakly singular
// single layer operator with kernel -(1/2pi) log|x-y|.
func SingleLayerMatrix(msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order int) (utils.Matrix, error) {
	return GalerkinMatrix(SingleLayer, msh, trial, test, order)
}

// DoubleLayerMatrix assembles the Galerkin matrix of the double layer
// operator, normal on the trial side.
func DoubleLayerMatrix(msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order int) (utils.Matrix, error) {
	return GalerkinMatrix(DoubleLayer, msh, trial, test, order)
}

// AdjointDoubleLayerMatrix assembles the Galerkin matrix of the adjoint
// double layer operator, normal on the test side.
func AdjointDoubleLayerMatrix(msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order int) (utils.Matrix, error) {
	return GalerkinMatrix(AdjointDoubleLayer, msh, trial, test, order)
}

// HypersingularMatrix assembles the Galerkin matrix of the hypersingular
// operator in its integrated-by-parts form. Trial and test spaces should be
// continuous across panel boundaries for the bilinear form to be meaningful.
func HypersingularMatrix(msh *mesh.ParametrizedMesh, sp space.BEMSpace, order int) (utils.Matrix, error) {
	return GalerkinMatrix(Hypersingular, msh, sp, sp, order)
}
