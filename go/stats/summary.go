package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	N      int
	EWMA   float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P90    float64
	P99    float64
}

// Summarize computes the EWMA of samples (in their given order) along with
// order-independent descriptive statistics. samples is not modified.
func Summarize(samples []float64, alpha float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	s := Summary{
		N:    len(samples),
		EWMA: ExpWeightedAvgSlice(samples, alpha),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(samples, nil)
	if len(samples) == 1 || math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	s.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return s
}
