package bekk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WeightKind
		wantErr bool
	}{
		{name: "equal", input: "equal", want: WeightEqual},
		{name: "minvar", input: "minvar", want: WeightMinVar},
		{name: "unknown", input: "bogus", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Equal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeightKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightsEqual(t *testing.T) {
	tests := []struct {
		name    string
		nobs    int
		nstocks int
	}{
		{name: "single observation", nobs: 1, nstocks: 2},
		{name: "many observations", nobs: 50, nstocks: 3},
		{name: "single asset", nobs: 10, nstocks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Results{Innov: constantInnov(tt.nobs, tt.nstocks)}

			weights, err := res.Weights(WeightEqual)
			require.NoError(t, err)
			require.Len(t, weights, tt.nobs)

			for _, row := range weights {
				require.Len(t, row, tt.nstocks)
				for _, w := range row {
					assert.Equal(t, 1.0/float64(tt.nstocks), w)
				}
			}
		})
	}
}

func TestWeightsMinVarSumToOne(t *testing.T) {
	hvar := [][]float64{
		{0.04, 0.01, 0.005},
		{0.01, 0.03, 0.008},
		{0.005, 0.008, 0.025},
	}
	res := &Results{
		Innov: constantInnov(4, 3),
		HVar:  [][][]float64{hvar, hvar, hvar, hvar},
	}

	weights, err := res.Weights(WeightMinVar)
	require.NoError(t, err)
	require.Len(t, weights, 4)

	for _, row := range weights {
		sum := 0.0
		for _, w := range row {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "minvar weights should sum to 1")
	}
}

func TestWeightsMinVarScaledIdentity(t *testing.T) {
	// H = 2I: minimum variance weights coincide with equal weights.
	res := &Results{
		Innov: [][]float64{{1.0, 2.0}},
		HVar:  [][][]float64{{{2.0, 0.0}, {0.0, 2.0}}},
	}

	weights, err := res.Weights(WeightMinVar)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.InDelta(t, 0.5, weights[0][0], 1e-12)
	assert.InDelta(t, 0.5, weights[0][1], 1e-12)
}

func TestWeightsMinVarSingular(t *testing.T) {
	// Rank-deficient covariance: the linear solve must fail.
	res := &Results{
		Innov: constantInnov(1, 2),
		HVar:  [][][]float64{{{1.0, 1.0}, {1.0, 1.0}}},
	}

	_, err := res.Weights(WeightMinVar)
	assert.Error(t, err)
}

func TestWeightsUnknownKind(t *testing.T) {
	res := &Results{Innov: constantInnov(1, 2)}

	_, err := res.Weights(WeightKind(42))
	assert.Error(t, err)
}

// constantInnov builds a nobs×nstocks innovation panel with all entries 1.
func constantInnov(nobs, nstocks int) [][]float64 {
	innov := make([][]float64, nobs)
	for t := range innov {
		row := make([]float64, nstocks)
		for i := range row {
			row[i] = 1.0
		}
		innov[t] = row
	}
	return innov
}
