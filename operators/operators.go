// Package operators assembles the global Galerkin matrices of the four
// boundary integral operators of the 2-D Laplace equation: single layer,
// double layer, adjoint double layer and hypersingular. Per panel pair the
// assembly classifies the relationship (disjoint, adjacent, coinciding) and
// picks the matching integration strategy; the analytic decompositions used
// for the singular cases are fixed per kernel and documented at the
// strategy implementations.
package operators

import (
	"fmt"
	"sync"

	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/space"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

// KernelFamily selects one of the four boundary integral operators.
type KernelFamily int

const (
	SingleLayer KernelFamily = iota
	DoubleLayer
	AdjointDoubleLayer
	Hypersingular
)

func (k KernelFamily) String() string {
	switch k {
	case SingleLayer:
		return "single layer"
	case DoubleLayer:
		return "double layer"
	case AdjointDoubleLayer:
		return "adjoint double layer"
	case Hypersingular:
		return "hypersingular"
	}
	return fmt.Sprintf("KernelFamily(%d)", int(k))
}

// GalerkinMatrix assembles the dense Galerkin matrix of the chosen operator
// for the given trial and test spaces on the mesh. The result has dimensions
// test dim x trial dim with row/column order fixed by the spaces'
// LocGlobMap2. order selects the Gauss order used on smooth panel pairs and
// the order of the log-weighted rule on singular ones.
func GalerkinMatrix(kernel KernelFamily, msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order int) (utils.Matrix, error) {
	var (
		N = msh.GetNumPanels()
		M = utils.NewMatrix(test.GetSpaceDim(N), trial.GetSpaceDim(N))
	)
	if err := assembleRange(M, kernel, msh, trial, test, order, 0, N); err != nil {
		return utils.Matrix{}, err
	}
	return M, nil
}

// GalerkinMatrixParallel assembles the same matrix with the test-panel loop
// split across np workers. Each worker accumulates into its own full-size
// partial matrix; partials are merged in worker order at the end, so the
// result is deterministic and identical to the serial assembly up to
// floating point associativity of the final merge.
func GalerkinMatrixParallel(kernel KernelFamily, msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order, np int) (utils.Matrix, error) {
	var (
		N  = msh.GetNumPanels()
		pm = utils.NewPartitionMap(np, N)
		nw = pm.ParallelDegree
	)
	var (
		partials = make([]utils.Matrix, nw)
		errs     = make([]error, nw)
		wg       sync.WaitGroup
	)
	for n := 0; n < nw; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(n)
			partials[n] = utils.NewMatrix(test.GetSpaceDim(N), trial.GetSpaceDim(N))
			errs[n] = assembleRange(partials[n], kernel, msh, trial, test, order, iMin, iMax)
		}(n)
	}
	wg.Wait()
	M := utils.NewMatrix(test.GetSpaceDim(N), trial.GetSpaceDim(N))
	for n := 0; n < nw; n++ {
		if errs[n] != nil {
			return utils.Matrix{}, errs[n]
		}
		M.Add(partials[n])
	}
	return M, nil
}

// assembleRange accumulates the contributions of test panels [iMin,iMax)
// against all trial panels into M.
func assembleRange(M utils.Matrix, kernel KernelFamily, msh *mesh.ParametrizedMesh, trial, test space.BEMSpace, order, iMin, iMax int) error {
	var (
		N = msh.GetNumPanels()
	)
	for i := iMin; i < iMax; i++ {
		for j := 0; j < N; j++ {
			L, err := interactionMatrix(kernel, msh, i, j, trial, test, order)
			if err != nil {
				return fmt.Errorf("%v operator, panels (%d,%d): %w", kernel, i, j, err)
			}
			if err = scatter(M, L, msh, i, j, trial, test); err != nil {
				return err
			}
		}
	}
	return nil
}

// scatter adds the local interaction matrix into the global matrix through
// the local-to-global maps of both spaces. Accumulation is additive: panel
// pairs sharing dofs write to the same global cell.
func scatter(M, L utils.Matrix, msh *mesh.ParametrizedMesh, i, j int, trial, test space.BEMSpace) error {
	var (
		qTest  = test.NumRefShapeFunctions()
		qTrial = trial.NumRefShapeFunctions()
	)
	for q := 0; q < qTest; q++ {
		row, err := test.LocGlobMap2(q, i, msh)
		if err != nil {
			return err
		}
		for l := 0; l < qTrial; l++ {
			col, err := trial.LocGlobMap2(l, j, msh)
			if err != nil {
				return err
			}
			M.AddAt(row, col, L.At(q, l))
		}
	}
	return nil
}

// interactionMatrix computes the local matrix of one panel pair, dispatching
// on kernel family and pair relationship.
func interactionMatrix(kernel KernelFamily, msh *mesh.ParametrizedMesh, i, j int, trial, test space.BEMSpace, order int) (utils.Matrix, error) {
	var (
		rel = msh.Relation(i, j)
		pi  = msh.GetPanel(i)
		pj  = msh.GetPanel(j)
	)
	switch kernel {
	case SingleLayer:
		return logKernelInteraction(pi, pj, rel, singleLayerIntegrand(pi, pj, test, trial), order)
	case Hypersingular:
		return logKernelInteraction(pi, pj, rel, hypersingularIntegrand(test, trial), order)
	case DoubleLayer:
		return normalKernelInteraction(pi, pj, rel, doubleLayerKernel(pi, pj, rel), test, trial, order)
	case AdjointDoubleLayer:
		return normalKernelInteraction(pi, pj, rel, adjointDoubleLayerKernel(pi, pj, rel), test, trial, order)
	}
	return utils.Matrix{}, fmt.Errorf("unknown kernel family %d", int(kernel))
}
