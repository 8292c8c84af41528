// Package consts holds the core's numeric tolerances.
package consts

const (
	// SolveTolerance is the epsilon in the solver's residual check:
	// ||G v - I_src||_inf <= SolveTolerance * (||G||_inf ||v||_inf + ||I_src||_inf).
	SolveTolerance = 1e-9

	// KCLTolerance is the per-node Kirchhoff-conservation tolerance,
	// expressed as a fraction of the largest branch current magnitude
	// in a solution.
	KCLTolerance = 1e-9
)
