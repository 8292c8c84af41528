package extract

import (
	"github.com/edp1096/xbarsolve/pkg/grid"
)

// Interconnect mirrors kcl.Interconnect; duplicated (rather than
// imported) so pkg/extract stays a leaf off pkg/grid like pkg/kcl and
// pkg/rhs do.
type Interconnect struct {
	Word, Bit float64
}

// NodeVoltages gives the extractor read access to the solved (or, in a
// reduced/degenerate path, already-known) wordline and bitline node
// potentials, so Voltages/Currents below implement the extraction
// formulas once regardless of which state-machine path produced them.
type NodeVoltages struct {
	WL func(i, j, k int) float64
	BL func(i, j, k int) float64
}

// Voltages materializes the m x n x p wordline- and bitline-potential
// arrays from v.
func Voltages(shape grid.Shape, p int, v NodeVoltages) (wl, bl *Array3) {
	wl = NewArray3(shape.Rows, shape.Cols, p)
	bl = NewArray3(shape.Rows, shape.Cols, p)
	for i := 0; i < shape.Rows; i++ {
		for j := 0; j < shape.Cols; j++ {
			for k := 0; k < p; k++ {
				wl.Set(i, j, k, v.WL(i, j, k))
				bl.Set(i, j, k, v.BL(i, j, k))
			}
		}
	}
	return wl, bl
}

// Currents derives the three branch-current arrays (device, word_line,
// bit_line) and leaves the p x n output array to OutputMatrix.
func Currents(shape grid.Shape, resistances []float64, appliedVoltages [][]float64, p int, ri Interconnect, v NodeVoltages) (device, wordLine, bitLine *Array3) {
	m, n := shape.Rows, shape.Cols

	device = NewArray3(m, n, p)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			r := resistances[shape.DeviceIndex(i, j)]
			for k := 0; k < p; k++ {
				device.Set(i, j, k, (v.WL(i, j, k)-v.BL(i, j, k))/r)
			}
		}
	}

	wordLine = NewArray3(m, n, p)
	if ri.Word > 0 {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < p; k++ {
					var left float64
					if j == 0 {
						left = appliedVoltages[i][k]
					} else {
						left = v.WL(i, j-1, k)
					}
					wordLine.Set(i, j, k, (left-v.WL(i, j, k))/ri.Word)
				}
			}
		}
	} else {
		for i := 0; i < m; i++ {
			for k := 0; k < p; k++ {
				acc := 0.0
				for j := n - 1; j >= 0; j-- {
					acc += device.At(i, j, k)
					wordLine.Set(i, j, k, acc)
				}
			}
		}
	}

	bitLine = NewArray3(m, n, p)
	if ri.Bit > 0 {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < p; k++ {
					if i < m-1 {
						bitLine.Set(i, j, k, (v.BL(i, j, k)-v.BL(i+1, j, k))/ri.Bit)
					} else {
						bitLine.Set(i, j, k, v.BL(i, j, k)/ri.Bit)
					}
				}
			}
		}
	} else {
		for j := 0; j < n; j++ {
			for k := 0; k < p; k++ {
				acc := 0.0
				for i := 0; i < m; i++ {
					acc += device.At(i, j, k)
					bitLine.Set(i, j, k, acc)
				}
			}
		}
	}

	return device, wordLine, bitLine
}

// Ideal computes the r_word == r_bit == 0 fast path directly: output =
// V_app^T * (1/R), element-wise reciprocated and broadcast, without
// constructing or solving any matrix system at all.
func Ideal(shape grid.Shape, resistances []float64, appliedVoltages [][]float64) (device, wordLine, bitLine *Array3) {
	m, n := shape.Rows, shape.Cols
	p := len(appliedVoltages[0])

	device = NewArray3(m, n, p)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			r := resistances[shape.DeviceIndex(i, j)]
			for k := 0; k < p; k++ {
				device.Set(i, j, k, appliedVoltages[i][k]/r)
			}
		}
	}

	wordLine = NewArray3(m, n, p)
	for i := 0; i < m; i++ {
		for k := 0; k < p; k++ {
			acc := 0.0
			for j := n - 1; j >= 0; j-- {
				acc += device.At(i, j, k)
				wordLine.Set(i, j, k, acc)
			}
		}
	}

	bitLine = NewArray3(m, n, p)
	for j := 0; j < n; j++ {
		for k := 0; k < p; k++ {
			acc := 0.0
			for i := 0; i < m; i++ {
				acc += device.At(i, j, k)
				bitLine.Set(i, j, k, acc)
			}
		}
	}

	return device, wordLine, bitLine
}
