// Package bekk holds estimation results for BEKK-type multivariate
// volatility models and derives portfolio-level diagnostics from them:
// portfolio weights, realized and model-implied portfolio variance, and
// their ratio. Estimation itself is external; this package only consumes
// its outputs.
package bekk

import (
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Results holds the outputs of a completed BEKK estimation.
//
// The estimation routine populates every field at construction; no
// validation is performed, and fields may be left zero for partial results.
// The object is never mutated afterwards, so all methods are safe for
// concurrent readers.
type Results struct {
	// Innov are the return innovations, one row of length N per
	// observation (T rows).
	Innov [][]float64

	// HVar are the filtered conditional covariance matrices, one
	// symmetric positive semi-definite N×N matrix per observation.
	HVar [][][]float64

	// VarTarget is the N×N unconditional covariance estimate used for
	// variance targeting.
	VarTarget [][]float64

	// Model is the estimated specification, ModelStandard or ModelSpatial.
	Model string

	// Restriction is the parameter restriction, one of RestrictionFull,
	// RestrictionDiagonal, RestrictionScalar.
	Restriction string

	// UseTarget reports whether variance targeting was used.
	UseTarget bool

	// CFree reports whether the C matrix was left free.
	CFree bool

	// Method is the optimization method label.
	Method string

	// TimeDelta is the elapsed estimation time.
	TimeDelta time.Duration

	// ParamStart and ParamFinal are the starting and estimated parameter
	// sets, owned by the estimation subsystem.
	ParamStart ParamSet
	ParamFinal ParamSet

	// OptOut is the final optimizer state.
	OptOut *OptimizeResult
}

// String renders the estimation summary. The layout is fixed: downstream
// reporting parses it line by line.
func (r *Results) String() string {
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(rule)
	fmt.Fprintf(&b, "\nModel: %s", r.Model)
	fmt.Fprintf(&b, "\nRestriction: %s", r.Restriction)
	fmt.Fprintf(&b, "\nUse target: %v", r.UseTarget)
	fmt.Fprintf(&b, "\nMatrix C is free: %v", r.CFree)
	fmt.Fprintf(&b, "\nNumber of parameters: %d", len(r.OptOut.X))
	if r.OptOut.Iterations != nil {
		fmt.Fprintf(&b, "\nIterations = %d", *r.OptOut.Iterations)
	} else {
		b.WriteString("\nIterations = NA")
	}
	fmt.Fprintf(&b, "\nOptimization method = %s", r.Method)
	fmt.Fprintf(&b, "\nOptimization time = %s", formatDuration(r.TimeDelta))
	fmt.Fprintf(&b, "\n\nFinal parameters:%s", r.ParamFinal)
	fmt.Fprintf(&b, "\nVariance target:\n%v\n", mat.Formatted(denseFromRows(r.VarTarget)))
	fmt.Fprintf(&b, "\nFinal log-likelihood (with penalty) = %.2f\n", -r.OptOut.Fun)
	fmt.Fprintf(&b, "Final log-likelihood = %.2f\n", -r.OptOut.Fun+r.ParamFinal.Penalty())
	b.WriteString(rule)
	return b.String()
}

// denseFromRows copies a row-major [][]float64 into a gonum matrix.
func denseFromRows(rows [][]float64) *mat.Dense {
	n := len(rows)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, len(rows[0]), nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
