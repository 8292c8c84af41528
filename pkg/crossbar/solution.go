package crossbar

import "github.com/edp1096/xbarsolve/pkg/extract"

// Array is one squeezable branch-current or node-voltage array. Exactly
// one of Matrix (p == 1) or Cube (p > 1) is populated.
type Array struct {
	Squeezed bool
	Matrix   [][]float64
	Cube     [][][]float64
}

func arrayFrom(a *extract.Array3) *Array {
	if a == nil {
		return nil
	}
	if a.Stimuli == 1 {
		return &Array{Squeezed: true, Matrix: a.ToMatrix()}
	}
	return &Array{Cube: a.ToCube()}
}

// Currents holds the four branch-current arrays. Output is always
// populated; Device, WordLine, and BitLine are nil unless
// ComputeOptions.ReturnAllCurrents is set. In the insulating-
// interconnect case they are all-zero rather than undefined.
type Currents struct {
	Output   [][]float64 // p x n, always populated
	Device   *Array
	WordLine *Array
	BitLine  *Array
}

// Voltages holds the two node-voltage arrays. Both are nil when
// ComputeOptions.ReturnNodeVoltages is false, and unconditionally nil
// in the insulating-interconnect case, where node voltages are
// undefined.
type Voltages struct {
	WordLine *Array
	BitLine  *Array
}

// Solution is Compute's return value, aggregating Currents and
// Voltages.
type Solution struct {
	Currents Currents
	Voltages Voltages
}
