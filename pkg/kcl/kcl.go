// Package kcl assembles the sparse nodal-admittance matrix G by
// applying Kirchhoff's current law at every wordline and bitline node
// of a crossbar array, stamping each device's conductance additively
// into G the way an MNA matrix is built one element at a time.
package kcl

import (
	"github.com/edp1096/xbarsolve/pkg/grid"
)

// Interconnect holds the two independent interconnect resistances.
// Either may be zero (short) or +Inf (open); a zero value disables the
// corresponding pass in Assemble, and the caller sizes the stamper for
// the resulting reduced system.
type Interconnect struct {
	Word, Bit float64
}

// Stamper accumulates additively into a sparse admittance matrix. It is
// satisfied by *matrix.System without this package importing it.
type Stamper interface {
	AddElement(i, j int, value float64)
}

// Assemble fills G by walking every WL node (when ri.Word > 0) and
// every BL node (when ri.Bit > 0). resistances is the row-major m*n
// device-resistance grid; shape.Size() == len(resistances).
//
// When only one pass runs, the stamper is expected to be sized to the
// reduced mn system and node indices collapse to grid.Shape.DeviceIndex
// (the sole active node family); the caller (pkg/crossbar) is
// responsible for constructing a System of the right size for the
// active path.
func Assemble(sys Stamper, shape grid.Shape, resistances []float64, ri Interconnect) {
	m, n := shape.Rows, shape.Cols
	wlActive := ri.Word > 0
	blActive := ri.Bit > 0

	wlIndex := func(i, j int) int { return shape.DeviceIndex(i, j) }
	blIndex := func(i, j int) int { return shape.DeviceIndex(i, j) }
	if wlActive && blActive {
		blIndex = func(i, j int) int { return shape.BLIndex(i, j) }
	}

	if wlActive {
		gw := 1.0 / ri.Word
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				gd := 1.0 / resistances[shape.DeviceIndex(i, j)]
				self := wlIndex(i, j)

				neighbors := 0
				if j > 0 {
					neighbors++
				}
				if j < n-1 {
					neighbors++
				}
				stimulus := 0
				if j == 0 {
					stimulus = 1
				}
				sys.AddElement(self, self, float64(neighbors+stimulus)*gw+gd)

				if j > 0 {
					sys.AddElement(self, wlIndex(i, j-1), -gw)
				}
				if j < n-1 {
					sys.AddElement(self, wlIndex(i, j+1), -gw)
				}
				if blActive {
					sys.AddElement(self, blIndex(i, j), -gd)
				}
			}
		}
	}

	if blActive {
		gb := 1.0 / ri.Bit
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				gd := 1.0 / resistances[shape.DeviceIndex(i, j)]
				self := blIndex(i, j)

				neighbors := 0
				if i > 0 {
					neighbors++
				}
				if i < m-1 {
					neighbors++
				}
				ground := 0
				if i == m-1 {
					ground = 1
				}
				sys.AddElement(self, self, float64(neighbors+ground)*gb+gd)

				if i > 0 {
					sys.AddElement(self, blIndex(i-1, j), -gb)
				}
				if i < m-1 {
					sys.AddElement(self, blIndex(i+1, j), -gb)
				}
				if wlActive {
					sys.AddElement(self, wlIndex(i, j), -gd)
				}
			}
		}
	}
}
