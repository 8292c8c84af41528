// Package extract reconstructs node-voltage and branch-current arrays
// from a solved nodal-voltage vector (or, in the degenerate cases, from
// the applied voltages directly).
package extract

// Array3 is a dense m x n x p array, always stored rank-3 internally;
// the p == 1 squeeze happens only at the pkg/crossbar API boundary,
// via ToMatrix/ToCube below.
type Array3 struct {
	Rows, Cols, Stimuli int
	Data                []float64 // row-major: (i*Cols+j)*Stimuli + k
}

// NewArray3 allocates a zeroed m x n x p array.
func NewArray3(rows, cols, stimuli int) *Array3 {
	return &Array3{
		Rows:    rows,
		Cols:    cols,
		Stimuli: stimuli,
		Data:    make([]float64, rows*cols*stimuli),
	}
}

func (a *Array3) offset(i, j, k int) int {
	return (i*a.Cols+j)*a.Stimuli + k
}

// At returns the value at (i,j,k).
func (a *Array3) At(i, j, k int) float64 {
	return a.Data[a.offset(i, j, k)]
}

// Set stores value at (i,j,k).
func (a *Array3) Set(i, j, k int, value float64) {
	a.Data[a.offset(i, j, k)] = value
}

// ToMatrix squeezes the stimulus axis away, for the p == 1 case. It
// reads stimulus 0 only and does not check Stimuli; callers check
// Stimuli == 1 before calling.
func (a *Array3) ToMatrix() [][]float64 {
	out := make([][]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		out[i] = make([]float64, a.Cols)
		for j := 0; j < a.Cols; j++ {
			out[i][j] = a.At(i, j, 0)
		}
	}
	return out
}

// ToCube returns the full m x n x p array as nested slices, for p > 1.
func (a *Array3) ToCube() [][][]float64 {
	out := make([][][]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		out[i] = make([][]float64, a.Cols)
		for j := 0; j < a.Cols; j++ {
			out[i][j] = make([]float64, a.Stimuli)
			for k := 0; k < a.Stimuli; k++ {
				out[i][j][k] = a.At(i, j, k)
			}
		}
	}
	return out
}

// OutputMatrix builds the p x n output-current array from bit_line's
// bottom row.
func OutputMatrix(bitLine *Array3) [][]float64 {
	m := bitLine.Rows
	n := bitLine.Cols
	p := bitLine.Stimuli
	out := make([][]float64, p)
	for k := 0; k < p; k++ {
		out[k] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[k][j] = bitLine.At(m-1, j, k)
		}
	}
	return out
}
