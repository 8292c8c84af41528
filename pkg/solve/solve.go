// Package solve factors the sparse admittance system and solves it for
// every stimulus column, reusing the factorization, then verifies the
// result against a residual tolerance.
package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/xbarsolve/internal/consts"
	"github.com/edp1096/xbarsolve/pkg/matrix"
)

// ErrNonConvergent is returned when the solved v fails the residual
// tolerance check. This should not occur for a well-posed, diagonally
// dominant admittance system, but it is checked on every call rather
// than assumed.
var ErrNonConvergent = fmt.Errorf("solve: residual exceeds tolerance")

// Solve factors G once (via sys.Solve, which itself calls Factor once)
// and solves for every RHS column, then checks
// ||G v - I_src||_inf <= tol * (||G||_inf ||v||_inf + ||I_src||_inf).
func Solve(sys *matrix.System) ([][]float64, error) {
	solutions, err := sys.Solve()
	if err != nil {
		return nil, err
	}

	rows := sys.NonzeroRows()
	gInf := 0.0
	for _, entries := range rows {
		sum := 0.0
		for _, e := range entries {
			sum += math.Abs(e.Value)
		}
		gInf = math.Max(gInf, sum)
	}

	for col, v := range solutions {
		vInf := floats.Norm(v, math.Inf(1))

		iInf := 0.0
		residInf := 0.0
		for i := 0; i < sys.Size; i++ {
			iVal := sys.RHSValue(i, col)
			iInf = math.Max(iInf, math.Abs(iVal))

			gv := 0.0
			for _, e := range rows[i] {
				gv += e.Value * v[e.Col]
			}
			residInf = math.Max(residInf, math.Abs(gv-iVal))
		}

		tol := consts.SolveTolerance * (gInf*vInf + iInf)
		if residInf > tol {
			return nil, fmt.Errorf("%w: column %d residual %g exceeds tolerance %g", ErrNonConvergent, col, residInf, tol)
		}
	}

	return solutions, nil
}
