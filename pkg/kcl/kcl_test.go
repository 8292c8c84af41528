package kcl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edp1096/xbarsolve/pkg/grid"
	"github.com/edp1096/xbarsolve/pkg/kcl"
)

type denseStamper struct {
	g [][]float64
}

func newDenseStamper(size int) *denseStamper {
	g := make([][]float64, size)
	for i := range g {
		g[i] = make([]float64, size)
	}
	return &denseStamper{g: g}
}

func (d *denseStamper) AddElement(i, j int, value float64) {
	d.g[i][j] += value
}

func TestAssembleFullSystemIsSymmetric(t *testing.T) {
	shape := grid.New(2, 3)
	resistances := []float64{10, 20, 30, 40, 50, 60}
	ri := kcl.Interconnect{Word: 0.1, Bit: 0.1}

	sys := newDenseStamper(2 * shape.Size())
	kcl.Assemble(sys, shape, resistances, ri)

	for i := range sys.g {
		for j := range sys.g {
			assert.InDelta(t, sys.g[i][j], sys.g[j][i], 1e-12, "G[%d][%d] != G[%d][%d]", i, j, j, i)
		}
	}
}

func TestAssembleRowSumsAreConductanceToGround(t *testing.T) {
	// Every row of G sums to the conductance that row's node has to a
	// fixed-voltage rail (the stimulus column for leftmost WL nodes, or
	// ground for the bottommost BL nodes), not zero -- this isn't a
	// floating Laplacian.
	shape := grid.New(1, 3)
	resistances := []float64{10, 20, 30}
	ri := kcl.Interconnect{Word: 0.1, Bit: 0.1}

	sys := newDenseStamper(2 * shape.Size())
	kcl.Assemble(sys, shape, resistances, ri)

	wlRow0 := shape.WLIndex(0, 0)
	sum := 0.0
	for _, v := range sys.g[wlRow0] {
		sum += v
	}
	assert.InDelta(t, 1.0/ri.Word, sum, 1e-9)
}

func TestAssembleReducedWordLineOnly(t *testing.T) {
	shape := grid.New(2, 2)
	resistances := []float64{10, 20, 30, 40}
	ri := kcl.Interconnect{Word: 0.1, Bit: 0}

	sys := newDenseStamper(shape.Size())
	kcl.Assemble(sys, shape, resistances, ri)

	for i := range sys.g {
		for j := range sys.g {
			assert.InDelta(t, sys.g[i][j], sys.g[j][i], 1e-12)
		}
	}
	assert.NotEqual(t, 0.0, sys.g[0][0])
}
