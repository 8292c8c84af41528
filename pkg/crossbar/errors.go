package crossbar

import (
	"errors"

	"github.com/edp1096/xbarsolve/pkg/solve"
)

// Sentinel errors for Compute's preconditions. Following the pack's
// convention (e.g. katalvlaran-lvlath's gridgraph.ErrEmptyGrid,
// flow.ErrSourceNotFound) these are plain errors.New sentinels rather
// than a custom error-code enum -- callers use errors.Is.
var (
	// ErrShapeMismatch: AppliedVoltages rows != Resistances rows, or
	// either input is ragged.
	ErrShapeMismatch = errors.New("crossbar: applied voltages and resistances have mismatched shapes")

	// ErrDomain: a non-finite applied voltage, a negative resistance,
	// or a NaN anywhere in the inputs.
	ErrDomain = errors.New("crossbar: input value outside its valid domain")

	// ErrZeroResistance: a device resistance of exactly zero, which
	// would short a node to another and make G singular.
	ErrZeroResistance = errors.New("crossbar: device resistance must not be zero")

	// ErrNonConvergent: the sparse solve failed to meet the residual
	// tolerance. Re-exported from pkg/solve so callers only need to
	// import pkg/crossbar to check it.
	ErrNonConvergent = solve.ErrNonConvergent
)
