package bekk

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WeightKind selects a portfolio weighting scheme.
type WeightKind int

const (
	// WeightEqual assigns every asset the weight 1/N.
	WeightEqual WeightKind = iota

	// WeightMinVar assigns minimum-variance weights under the filtered
	// covariance of each observation, ignoring expected returns.
	WeightMinVar
)

// String returns the kind's wire label.
func (k WeightKind) String() string {
	switch k {
	case WeightEqual:
		return "equal"
	case WeightMinVar:
		return "minvar"
	default:
		return fmt.Sprintf("WeightKind(%d)", int(k))
	}
}

// ParseWeightKind maps a kind label to its WeightKind. Unknown labels are
// rejected; there is no fallback scheme.
func ParseWeightKind(s string) (WeightKind, error) {
	switch s {
	case "equal":
		return WeightEqual, nil
	case "minvar":
		return WeightMinVar, nil
	default:
		return 0, fmt.Errorf("unsupported weight kind %q", s)
	}
}

// Weights returns the T×N portfolio weight matrix for the given scheme.
func (r *Results) Weights(kind WeightKind) ([][]float64, error) {
	switch kind {
	case WeightEqual:
		return r.weightsEqual(), nil
	case WeightMinVar:
		return r.weightsMinVar()
	default:
		return nil, fmt.Errorf("unsupported weight kind %v", kind)
	}
}

// weightsEqual assigns 1/N to every asset in every observation.
func (r *Results) weightsEqual() [][]float64 {
	out := make([][]float64, len(r.Innov))
	for t, innov := range r.Innov {
		row := make([]float64, len(innov))
		for i := range row {
			row[i] = 1.0 / float64(len(innov))
		}
		out[t] = row
	}
	return out
}

// weightsMinVar computes closed-form minimum-variance weights for each
// observation: solve H_t·x = 1 and normalize x by its sum. A singular
// covariance matrix fails the solve and the error is propagated.
func (r *Results) weightsMinVar() ([][]float64, error) {
	nstocks := 0
	if len(r.Innov) > 0 {
		nstocks = len(r.Innov[0])
	}

	ones := mat.NewVecDense(nstocks, nil)
	for i := 0; i < nstocks; i++ {
		ones.SetVec(i, 1)
	}

	out := make([][]float64, len(r.HVar))
	for t, hvar := range r.HVar {
		var x mat.VecDense
		if err := x.SolveVec(denseFromRows(hvar), ones); err != nil {
			return nil, fmt.Errorf("minimum variance weights at observation %d: %w", t, err)
		}

		row := make([]float64, nstocks)
		for i := range row {
			row[i] = x.AtVec(i)
		}
		floats.Scale(1/floats.Sum(row), row)
		out[t] = row
	}
	return out, nil
}
