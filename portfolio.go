package bekk

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RealizedVariance returns the realized portfolio variance proxy for each
// observation: the weighted sum of raw innovations, Σ_i innov_t,i · w_t,i.
// This is deliberately not a squared quantity; the surrounding analysis
// uses the raw weighted sum as its realized proxy.
func (r *Results) RealizedVariance(kind WeightKind) ([]float64, error) {
	weights, err := r.Weights(kind)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(r.Innov))
	for t, innov := range r.Innov {
		out[t] = floats.Dot(innov, weights[t])
	}
	return out, nil
}

// ExpectedVariance returns the model-implied portfolio variance for each
// observation, the quadratic form w_t'·H_t·w_t.
func (r *Results) ExpectedVariance(kind WeightKind) ([]float64, error) {
	weights, err := r.Weights(kind)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(r.HVar))
	for t, hvar := range r.HVar {
		w := mat.NewVecDense(len(weights[t]), weights[t])
		out[t] = mat.Inner(w, denseFromRows(hvar), w)
	}
	return out, nil
}

// MeanVariance returns the arithmetic mean of ExpectedVariance over all
// observations.
func (r *Results) MeanVariance(kind WeightKind) (float64, error) {
	evar, err := r.ExpectedVariance(kind)
	if err != nil {
		return 0, err
	}
	return stat.Mean(evar, nil), nil
}

// LossVarianceRatio returns RealizedVariance/ExpectedVariance − 1 for each
// observation. A zero expected variance is not guarded against; the division
// follows IEEE semantics and yields ±Inf or NaN.
func (r *Results) LossVarianceRatio(kind WeightKind) ([]float64, error) {
	rvar, err := r.RealizedVariance(kind)
	if err != nil {
		return nil, err
	}
	evar, err := r.ExpectedVariance(kind)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(rvar))
	for t := range out {
		out[t] = rvar[t]/evar[t] - 1
	}
	return out, nil
}
