// Package stats summarizes nested numeric lists.
//
// MeanVariance flattens the groups and reports the mean and the population
// variance (divisor n, not n-1):
//
//	s, err := stats.MeanVariance([][]float64{{1, 2, 3}, {4, 5, 6}})
//	// s.Mean == 3.5, s.Variance ≈ 2.9167
package stats
