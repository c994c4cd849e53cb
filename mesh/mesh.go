// Package mesh holds the panel discretization of one or two closed boundary
// components and the panel-pair relationship queries the operator assembly
// classifies integration strategies with.
package mesh

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/piyushplcr7/2DParametricBEM/curve"
)

// ErrDiscontinuousMesh is returned when the panel chain of a component does
// not close up endpoint-to-startpoint within tolerance, or when the two
// components of an annular mesh intersect.
var ErrDiscontinuousMesh = errors.New("mesh: discontinuous panel chain")

// PairRelation classifies an ordered pair of panels for the assembler.
type PairRelation int

const (
	Disjoint PairRelation = iota
	Adjacent              // exactly one shared physical vertex
	Coinciding
)

func (r PairRelation) String() string {
	switch r {
	case Adjacent:
		return "adjacent"
	case Coinciding:
		return "coinciding"
	}
	return "disjoint"
}

// ParametrizedMesh is an ordered sequence of panels covering one closed
// boundary component, or two for an annular domain. Panels are ordered so
// that gamma_i(1) == gamma_{i+1}(-1) within a component, wrapping modulo the
// component size. Vertex i is gamma_i(-1). Read-only after construction.
type ParametrizedMesh struct {
	panels []curve.Panel
	// index of the first panel of the second boundary component, 0 when the
	// domain is simply connected
	split int
	// adj(i,j) counts physical vertices shared by panels i and j
	adj *sparse.CSR
}

// NewMesh builds a simply-connected mesh from a closed chain of panels.
func NewMesh(panels []curve.Panel) (*ParametrizedMesh, error) {
	return newMesh(panels, 0)
}

// NewAnnularMesh builds a two-component mesh: first the outer boundary chain,
// then the inner one. The split index marks where the second component
// begins. The components must not cross each other.
func NewAnnularMesh(first, second []curve.Panel) (*ParametrizedMesh, error) {
	panels := make([]curve.Panel, 0, len(first)+len(second))
	panels = append(panels, first...)
	panels = append(panels, second...)
	m, err := newMesh(panels, len(first))
	if err != nil {
		return nil, err
	}
	for _, pa := range first {
		for _, pb := range second {
			if curve.Intersect(pa, pb, 16) {
				return nil, fmt.Errorf("boundary components intersect: %w", ErrDiscontinuousMesh)
			}
		}
	}
	return m, nil
}

func newMesh(panels []curve.Panel, split int) (*ParametrizedMesh, error) {
	var (
		N = len(panels)
	)
	if N == 0 || (split != 0 && (split < 1 || split >= N)) {
		return nil, fmt.Errorf("invalid panel partition (numpanels %d, split %d): %w", N, split, ErrDiscontinuousMesh)
	}
	m := &ParametrizedMesh{panels: panels, split: split}
	if err := m.validateChain(); err != nil {
		return nil, err
	}
	m.adj = buildAdjacency(N, split, m.nextIndex)
	return m, nil
}

// validateChain checks endpoint-to-startpoint continuity per component.
func (m *ParametrizedMesh) validateChain() error {
	var scale float64
	for _, p := range m.panels {
		if c := p.Eval(1).Distance(p.Eval(-1)); c > scale {
			scale = c
		}
	}
	tol := 1.e-10 * max(scale, 1.)
	for i, p := range m.panels {
		next := m.panels[m.nextIndex(i)]
		if gap := p.Eval(1).Distance(next.Eval(-1)); gap > tol {
			return fmt.Errorf("gap %.3e between panels %d and %d: %w", gap, i, m.nextIndex(i), ErrDiscontinuousMesh)
		}
	}
	return nil
}

// nextIndex is the successor panel within the component of panel i.
func (m *ParametrizedMesh) nextIndex(i int) int {
	var (
		N = len(m.panels)
	)
	if m.split == 0 {
		return (i + 1) % N
	}
	if i < m.split {
		return (i + 1) % m.split
	}
	return m.split + (i-m.split+1)%(N-m.split)
}

// buildAdjacency forms the panel-to-vertex incidence matrix and multiplies it
// against its transpose; entry (i,j) then counts the vertices panels i and j
// share. Cross-component pairs never share a vertex by construction.
func buildAdjacency(N, split int, next func(int) int) *sparse.CSR {
	PToV := sparse.NewDOK(N, N)
	for i := 0; i < N; i++ {
		PToV.Set(i, i, 1)
		PToV.Set(i, next(i), 1)
	}
	incidence := PToV.ToCSR()
	adj := sparse.NewCSR(N, N, nil, nil, nil)
	adj.Mul(incidence, incidence.T())
	return adj
}

func (m *ParametrizedMesh) GetNumPanels() int {
	return len(m.panels)
}

func (m *ParametrizedMesh) GetSplit() int {
	return m.split
}

// GetPanels returns the ordered panel sequence. The slice is shared; panels
// themselves are immutable.
func (m *ParametrizedMesh) GetPanels() []curve.Panel {
	return m.panels
}

func (m *ParametrizedMesh) GetPanel(i int) curve.Panel {
	return m.panels[i%len(m.panels)]
}

// GetVertex returns vertex i = gamma_i(-1), wrapping modulo the panel count.
func (m *ParametrizedMesh) GetVertex(i int) curve.Point {
	return m.panels[i%len(m.panels)].Eval(-1)
}

// Relation classifies the ordered panel pair (i,j).
func (m *ParametrizedMesh) Relation(i, j int) PairRelation {
	if i == j {
		return Coinciding
	}
	if m.adj.At(i, j) > 0 {
		return Adjacent
	}
	return Disjoint
}
