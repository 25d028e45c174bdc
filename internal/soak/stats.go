package soak

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stats summarizes a sample.
type Stats struct {
	N        int
	Mean     float64
	StdDev   float64
	CI95Low  float64
	CI95High float64
}

func computeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		return Stats{N: 1, Mean: mean, CI95Low: mean, CI95High: mean}
	}
	low, high := ci95(mean, std, len(values))
	return Stats{N: len(values), Mean: mean, StdDev: std, CI95Low: low, CI95High: high}
}

// ci95 is the two-tailed 95% interval of the mean from a t-distribution.
func ci95(mean, stdDev float64, n int) (float64, float64) {
	se := stdDev / math.Sqrt(float64(n))
	t := distuv.StudentsT{Nu: float64(n - 1), Mu: 0, Sigma: 1}
	margin := t.Quantile(0.975) * se
	return mean - margin, mean + margin
}
