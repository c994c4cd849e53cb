// Package space implements the trial/test function spaces of the Galerkin
// discretization: piecewise polynomial spaces on the boundary mesh, either
// continuous across panel boundaries or fully discontinuous. Each supported
// (continuity, degree) pair is a distinct variant with its own hand-derived
// reference basis table and local-to-global rule; the formulas are data
// contracts and are reproduced exactly.
package space

import (
	"errors"
	"fmt"

	"github.com/piyushplcr7/2DParametricBEM/mesh"
	"github.com/piyushplcr7/2DParametricBEM/utils"
)

var (
	// ErrIndexOutOfRange signals local/panel indices outside the space's
	// reference-function count or the mesh's panel count. This is a bug in
	// the caller, not a recoverable runtime condition.
	ErrIndexOutOfRange = errors.New("space: panel/shape-function index out of range")
	// ErrUnsupportedDegree is returned when constructing a space variant
	// that has no hand-derived specialization.
	ErrUnsupportedDegree = errors.New("space: unsupported space degree")
)

// RefShapeFunction is a reference shape function (or derivative) on [-1,1].
type RefShapeFunction func(t float64) float64

// BEMSpace is the capability set shared by all space variants.
type BEMSpace interface {
	// NumRefShapeFunctions returns the per-panel shape function count q.
	NumRefShapeFunctions() int
	// ShapeFunction evaluates reference shape function q at t in [-1,1].
	ShapeFunction(q int, t float64) float64
	// ShapeFunctionDot evaluates the derivative of shape function q.
	ShapeFunctionDot(q int, t float64) float64
	// GetSpaceDim returns the global degree-of-freedom count for a mesh of
	// numpanels panels.
	GetSpaceDim(numpanels int) int
	// LocGlobMap maps (local shape index q, panel n) to a global dof for a
	// single closed component of N panels.
	LocGlobMap(q, n, N int) (int, error)
	// LocGlobMap2 is the annular-aware map: it dispatches per component
	// using the mesh's split index. For split == 0 it agrees with
	// LocGlobMap.
	LocGlobMap2(q, n int, msh *mesh.ParametrizedMesh) (int, error)
	// Interpolate projects a continuous scalar field on the plane onto the
	// space, returning a coefficient vector of length GetSpaceDim.
	Interpolate(f func(x, y float64) float64, msh *mesh.ParametrizedMesh) (utils.Vector, error)
}

// NewContinuousSpace returns the continuous space S^0_p. Supported degrees
// are p = 1 and p = 2.
func NewContinuousSpace(p int) (BEMSpace, error) {
	switch p {
	case 1:
		return continuousP1{}, nil
	case 2:
		return continuousP2{}, nil
	}
	return nil, fmt.Errorf("continuous space degree %d: %w", p, ErrUnsupportedDegree)
}

// NewDiscontinuousSpace returns the discontinuous space S^-1_p. Supported
// degrees are p = 0 and p = 1.
func NewDiscontinuousSpace(p int) (BEMSpace, error) {
	switch p {
	case 0:
		return discontinuousP0{}, nil
	case 1:
		return discontinuousP1{}, nil
	}
	return nil, fmt.Errorf("discontinuous space degree %d: %w", p, ErrUnsupportedDegree)
}

func checkIndices(q, qmax, n, N int) error {
	if q < 0 || q >= qmax || n < 0 || n >= N {
		return fmt.Errorf("q %d (of %d), panel %d (of %d): %w", q, qmax, n, N, ErrIndexOutOfRange)
	}
	return nil
}

// splitDispatch implements the annular composition rule shared by the
// continuous spaces: panels of the first component map through that
// component's own chain, panels of the second are offset by the first
// component's dof count.
func splitDispatch(s BEMSpace, q, n int, msh *mesh.ParametrizedMesh) (int, error) {
	var (
		split = msh.GetSplit()
		N     = msh.GetNumPanels()
	)
	if split == 0 {
		return s.LocGlobMap(q, n, N)
	}
	if n < 0 || n >= N {
		return 0, fmt.Errorf("panel %d (of %d): %w", n, N, ErrIndexOutOfRange)
	}
	if n < split {
		return s.LocGlobMap(q, n, split)
	}
	g, err := s.LocGlobMap(q, n-split, N-split)
	if err != nil {
		return 0, err
	}
	return g + s.GetSpaceDim(split), nil
}
