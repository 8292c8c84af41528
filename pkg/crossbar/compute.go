// Package crossbar is the public entry point of the core: it assembles
// the sparse nodal-admittance system for a resistive crossbar array,
// solves it, and extracts node voltages and branch currents, following
// a five-path state machine keyed on whether the interconnect
// resistances are finite, zero, or infinite.
package crossbar

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/edp1096/xbarsolve/pkg/extract"
	"github.com/edp1096/xbarsolve/pkg/grid"
	"github.com/edp1096/xbarsolve/pkg/kcl"
	"github.com/edp1096/xbarsolve/pkg/matrix"
	"github.com/edp1096/xbarsolve/pkg/rhs"
	"github.com/edp1096/xbarsolve/pkg/solve"
)

// ComputeOptions is the entire configuration surface of Compute -- no
// environment variables, no persisted state.
type ComputeOptions struct {
	// AppliedVoltages is m x p: column k is one independent stimulus.
	AppliedVoltages [][]float64
	// Resistances is m x n; math.Inf(1) denotes an open device.
	Resistances [][]float64
	// Word and Bit are r_word and r_bit; either may be 0 or +Inf.
	Word, Bit float64

	ReturnNodeVoltages bool
	ReturnAllCurrents  bool
}

// Compute solves for the node voltages and branch currents of the
// crossbar described by opts.
func Compute(opts ComputeOptions) (Solution, error) {
	m, n, p, resistancesFlat, err := validate(opts)
	if err != nil {
		return Solution{}, err
	}
	shape := grid.New(m, n)

	switch {
	case math.IsInf(opts.Word, 1) && math.IsInf(opts.Bit, 1):
		return computeInsulating(shape, p, opts.ReturnAllCurrents), nil
	case opts.Word == 0 && opts.Bit == 0:
		return computeIdeal(shape, resistancesFlat, opts), nil
	default:
		return computeGeneral(shape, resistancesFlat, opts)
	}
}

func validate(opts ComputeOptions) (m, n, p int, resistancesFlat []float64, err error) {
	m = len(opts.Resistances)
	if m == 0 || len(opts.Resistances[0]) == 0 {
		return 0, 0, 0, nil, fmt.Errorf("%w: resistances must have at least one row and column", ErrShapeMismatch)
	}
	n = len(opts.Resistances[0])

	if len(opts.AppliedVoltages) != m {
		return 0, 0, 0, nil, fmt.Errorf("%w: applied voltages has %d rows, resistances has %d", ErrShapeMismatch, len(opts.AppliedVoltages), m)
	}
	if len(opts.AppliedVoltages[0]) == 0 {
		return 0, 0, 0, nil, fmt.Errorf("%w: applied voltages must have at least one column", ErrShapeMismatch)
	}
	p = len(opts.AppliedVoltages[0])

	resistancesFlat = make([]float64, m*n)
	for i, row := range opts.Resistances {
		if len(row) != n {
			return 0, 0, 0, nil, fmt.Errorf("%w: resistances row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), n)
		}
		for j, r := range row {
			switch {
			case math.IsNaN(r) || r < 0:
				return 0, 0, 0, nil, fmt.Errorf("%w: resistances[%d][%d] = %g", ErrDomain, i, j, r)
			case r == 0:
				return 0, 0, 0, nil, fmt.Errorf("%w: resistances[%d][%d]", ErrZeroResistance, i, j)
			}
			resistancesFlat[shape2(n, i, j)] = r
		}
	}

	for i, row := range opts.AppliedVoltages {
		if len(row) != p {
			return 0, 0, 0, nil, fmt.Errorf("%w: applied voltages row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), p)
		}
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, 0, nil, fmt.Errorf("%w: applied voltages[%d][%d] = %v", ErrDomain, i, k, v)
			}
		}
	}

	if opts.Word < 0 || math.IsNaN(opts.Word) || opts.Bit < 0 || math.IsNaN(opts.Bit) {
		return 0, 0, 0, nil, fmt.Errorf("%w: interconnect resistances must be non-negative", ErrDomain)
	}

	return m, n, p, resistancesFlat, nil
}

func shape2(cols, i, j int) int { return i*cols + j }

func computeInsulating(shape grid.Shape, p int, returnAllCurrents bool) Solution {
	glog.Warningf("crossbar: node voltages undefined (both interconnect resistances infinite)")

	device := extract.NewArray3(shape.Rows, shape.Cols, p)
	wordLine := extract.NewArray3(shape.Rows, shape.Cols, p)
	bitLine := extract.NewArray3(shape.Rows, shape.Cols, p)
	output := extract.OutputMatrix(bitLine)

	currents := Currents{Output: output}
	if returnAllCurrents {
		currents.Device = arrayFrom(device)
		currents.WordLine = arrayFrom(wordLine)
		currents.BitLine = arrayFrom(bitLine)
	}

	return Solution{Currents: currents}
}

func computeIdeal(shape grid.Shape, resistancesFlat []float64, opts ComputeOptions) Solution {
	device, wordLine, bitLine := extract.Ideal(shape, resistancesFlat, opts.AppliedVoltages)
	output := extract.OutputMatrix(bitLine)

	currents := Currents{Output: output}
	if opts.ReturnAllCurrents {
		currents.Device = arrayFrom(device)
		currents.WordLine = arrayFrom(wordLine)
		currents.BitLine = arrayFrom(bitLine)
	}

	var voltages Voltages
	if opts.ReturnNodeVoltages {
		p := len(opts.AppliedVoltages[0])
		wl, bl := extract.Voltages(shape, p, extract.NodeVoltages{
			WL: func(i, j, k int) float64 { return opts.AppliedVoltages[i][k] },
			BL: func(i, j, k int) float64 { return 0 },
		})
		voltages = Voltages{WordLine: arrayFrom(wl), BitLine: arrayFrom(bl)}
	}

	return Solution{Currents: currents, Voltages: voltages}
}

func computeGeneral(shape grid.Shape, resistancesFlat []float64, opts ComputeOptions) (Solution, error) {
	m, n := shape.Rows, shape.Cols
	p := len(opts.AppliedVoltages[0])

	wlActive := opts.Word > 0
	blActive := opts.Bit > 0

	size := 0
	switch {
	case wlActive && blActive:
		size = 2 * m * n
	default:
		size = m * n
	}

	sys, err := matrix.New(size, p)
	if err != nil {
		return Solution{}, err
	}
	defer sys.Destroy()

	ri := kcl.Interconnect{Word: opts.Word, Bit: opts.Bit}
	kcl.Assemble(sys, shape, resistancesFlat, ri)
	rhs.Build(sys, shape, resistancesFlat, opts.AppliedVoltages, rhs.Interconnect(ri))

	solutions, err := solve.Solve(sys)
	if err != nil {
		return Solution{}, fmt.Errorf("crossbar: %w", err)
	}

	var lookup extract.NodeVoltages
	switch {
	case wlActive && blActive:
		lookup = extract.NodeVoltages{
			WL: func(i, j, k int) float64 { return solutions[k][shape.WLIndex(i, j)] },
			BL: func(i, j, k int) float64 { return solutions[k][shape.BLIndex(i, j)] },
		}
	case blActive: // opts.Word == 0: WL half omitted, known == applied voltage
		lookup = extract.NodeVoltages{
			WL: func(i, j, k int) float64 { return opts.AppliedVoltages[i][k] },
			BL: func(i, j, k int) float64 { return solutions[k][shape.DeviceIndex(i, j)] },
		}
	default: // wlActive, opts.Bit == 0: BL half omitted, known == ground
		lookup = extract.NodeVoltages{
			WL: func(i, j, k int) float64 { return solutions[k][shape.DeviceIndex(i, j)] },
			BL: func(i, j, k int) float64 { return 0 },
		}
	}

	eri := extract.Interconnect{Word: opts.Word, Bit: opts.Bit}
	device, wordLine, bitLine := extract.Currents(shape, resistancesFlat, opts.AppliedVoltages, p, eri, lookup)
	output := extract.OutputMatrix(bitLine)

	currents := Currents{Output: output}
	if opts.ReturnAllCurrents {
		currents.Device = arrayFrom(device)
		currents.WordLine = arrayFrom(wordLine)
		currents.BitLine = arrayFrom(bitLine)
	}

	var voltages Voltages
	if opts.ReturnNodeVoltages {
		wl, bl := extract.Voltages(shape, p, lookup)
		voltages = Voltages{WordLine: arrayFrom(wl), BitLine: arrayFrom(bl)}
	}

	return Solution{Currents: currents, Voltages: voltages}, nil
}
