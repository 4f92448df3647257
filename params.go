package bekk

import "fmt"

// Model identifiers for the estimated specification.
const (
	ModelStandard = "standard"
	ModelSpatial  = "spatial"
)

// Parameter restriction identifiers.
const (
	RestrictionFull     = "full"
	RestrictionDiagonal = "diagonal"
	RestrictionScalar   = "scalar"
)

// ParamSet is an estimated parameter set produced by the estimation routine.
// Results only stores and renders it; the concrete type is owned by the
// estimation subsystem.
type ParamSet interface {
	fmt.Stringer

	// Penalty returns the additive constraint penalty (e.g. for
	// stationarity) evaluated at the parameter set. Results uses it to
	// report the log-likelihood with the penalty term added back.
	Penalty() float64
}

// OptimizeResult is a copy of the final optimizer state, owned by the
// external optimizer.
type OptimizeResult struct {
	// X is the final parameter vector.
	X []float64

	// Fun is the final penalized objective value (negative log-likelihood
	// plus penalty).
	Fun float64

	// Iterations is the iteration count, nil when the optimizer does not
	// report one.
	Iterations *int

	// Success reports whether the optimizer converged.
	Success bool

	// Message is the optimizer's termination message.
	Message string
}
