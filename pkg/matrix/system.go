// Package matrix wraps the sparse admittance system G*v = i that the
// KCL assembler and RHS builder fill in, and that pkg/solve factors and
// solves, via github.com/edp1096/sparse with a dense multi-column RHS
// (one column per independent stimulus) instead of a single
// circuit-equation vector.
package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// System is a real, symmetric sparse admittance matrix G sized n x n,
// together with a dense n x p right-hand side I_src. It is built once
// per solve (coordinate accumulation via AddElement), factored once,
// and solved once per RHS column.
type System struct {
	Size int // n
	Cols int // p

	mat    *sparse.Matrix
	config *sparse.Configuration

	rhs [][]float64 // p columns, each of length Size+1 (1-based)

	// coo mirrors the sparse matrix's accumulated coefficients in a
	// plain coordinate map, kept alongside the library's own CSR/CSC
	// form only long enough for the post-solve residual check in
	// pkg/solve; it is not consulted by Solve itself.
	coo map[[2]int]float64
}

// New allocates a System for an n x n admittance matrix with p RHS
// columns. Panics are never used here; allocation failure from the
// underlying library is returned as an error from New itself.
func New(size, cols int) (*System, error) {
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      false,
		ModifiedNodal:  false,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("matrix: creating %dx%d sparse system: %w", size, size, err)
	}

	rhs := make([][]float64, cols)
	for k := range rhs {
		rhs[k] = make([]float64, size+1) // 1-based indexing
	}

	return &System{
		Size:   size,
		Cols:   cols,
		mat:    mat,
		config: config,
		rhs:    rhs,
		coo:    make(map[[2]int]float64),
	}, nil
}

// AddElement accumulates value into G[i,j] (0-based indices). Additive:
// repeated calls at the same (i,j) sum, matching the KCL assembler's
// "additive accumulation" requirement.
func (s *System) AddElement(i, j int, value float64) {
	s.mat.GetElement(int64(i+1), int64(j+1)).Real += value
	s.coo[[2]int{i, j}] += value
}

// Entry is one nonzero coefficient of G, as returned by NonzeroRows.
type Entry struct {
	Col   int
	Value float64
}

// NonzeroRows returns, for each row that has at least one accumulated
// coefficient, the (column, value) pairs in that row. Used only by
// pkg/solve's residual check.
func (s *System) NonzeroRows() map[int][]Entry {
	rows := make(map[int][]Entry)
	for rc, v := range s.coo {
		row, col := rc[0], rc[1]
		rows[row] = append(rows[row], Entry{Col: col, Value: v})
	}
	return rows
}

// AddRHS accumulates value into I_src[i, col] (0-based row, 0-based
// column).
func (s *System) AddRHS(i, col int, value float64) {
	s.rhs[col][i+1] += value
}

// RHSColumn returns the 1-based RHS vector for column col, suitable for
// passing straight to the underlying sparse solver.
func (s *System) RHSColumn(col int) []float64 {
	return s.rhs[col]
}

// RHSValue returns I_src[i, col] (0-based row, 0-based column).
func (s *System) RHSValue(i, col int) float64 {
	return s.rhs[col][i+1]
}

// Diag returns the current value of G[i,i] (0-based), or 0 if nothing
// was ever accumulated there.
func (s *System) Diag(i int) float64 {
	d := s.mat.Diags[i+1]
	if d == nil {
		return 0
	}
	return d.Real
}

// Element returns the current value of G[i,j] (0-based), for residual
// checks and symmetry tests.
func (s *System) Element(i, j int) float64 {
	return s.mat.GetElement(int64(i+1), int64(j+1)).Real
}

// Solve factors G once and solves G*v = I_src for every RHS column,
// reusing the factorization across columns. Returns the p solution
// vectors, each of length Size (0-based, the 1-based slack entry
// stripped).
func (s *System) Solve() ([][]float64, error) {
	if err := s.mat.Factor(); err != nil {
		return nil, fmt.Errorf("matrix: factoring %dx%d system: %w", s.Size, s.Size, err)
	}

	solutions := make([][]float64, s.Cols)
	for col := 0; col < s.Cols; col++ {
		sol, err := s.mat.Solve(s.rhs[col])
		if err != nil {
			return nil, fmt.Errorf("matrix: solving column %d: %w", col, err)
		}
		solutions[col] = sol[1 : s.Size+1]
	}
	return solutions, nil
}

// Destroy releases the underlying sparse matrix's native resources.
func (s *System) Destroy() {
	if s.mat != nil {
		s.mat.Destroy()
	}
}
