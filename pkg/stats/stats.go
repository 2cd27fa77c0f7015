package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the mean and population variance of a sample.
type Summary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Flatten concatenates the groups in order.
func Flatten(groups [][]float64) []float64 {
	return slices.Concat(groups...)
}

// MeanVariance summarizes every value across groups. Group boundaries do not
// matter, only the flattened values.
func MeanVariance(groups [][]float64) (Summary, error) {
	values := Flatten(groups)
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	return Summary{Mean: mean, Variance: variance}, nil
}
