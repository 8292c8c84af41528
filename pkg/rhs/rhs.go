// Package rhs fills the right-hand-side current-injection matrix I_src
// for one or more applied-voltage stimuli.
package rhs

import (
	"github.com/edp1096/xbarsolve/pkg/grid"
)

// Stamper accumulates additively into a dense multi-column RHS. It is
// satisfied by *matrix.System without this package importing it.
type Stamper interface {
	AddRHS(i, col int, value float64)
}

// Interconnect mirrors kcl.Interconnect; duplicated here (rather than
// imported) so this package has no dependency on pkg/kcl — both are
// leaves off pkg/grid.
type Interconnect struct {
	Word, Bit float64
}

// Build fills I_src. appliedVoltages is m x p (row i, column k). When
// ri.Word > 0, only the leftmost WL node of each row receives current;
// when ri.Word == 0, the WL half is omitted from the solve entirely and
// every device's BL-side node is driven directly from the (now known)
// applied voltage.
func Build(sys Stamper, shape grid.Shape, resistances []float64, appliedVoltages [][]float64, ri Interconnect) {
	m, n := shape.Rows, shape.Cols
	p := 0
	if m > 0 {
		p = len(appliedVoltages[0])
	}

	if ri.Word > 0 {
		for i := 0; i < m; i++ {
			row := shape.DeviceIndex(i, 0)
			for k := 0; k < p; k++ {
				sys.AddRHS(row, k, appliedVoltages[i][k]/ri.Word)
			}
		}
		return
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			row := shape.DeviceIndex(i, j)
			r := resistances[row]
			for k := 0; k < p; k++ {
				sys.AddRHS(row, k, appliedVoltages[i][k]/r)
			}
		}
	}
}
