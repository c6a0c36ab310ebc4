package stats

import (
	"math"
	"sort"
)

// Summary holds the five descriptive statistics for one numeric column.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Compute returns the descriptive statistics of values. An empty input
// yields NaN for every field; that is a normal result, not a failure.
// The input slice is not mutated: sorting happens on a copy.
//
// StdDev is the population standard deviation (divide by n), so a
// single-value input yields 0 rather than NaN.
func Compute(values []float64) Summary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Median: nan, StdDev: nan, Min: nan, Max: nan}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2.0
	} else {
		median = sorted[n/2]
	}

	var sumsq float64
	for _, v := range values {
		d := v - mean
		sumsq += d * d
	}

	return Summary{
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(sumsq / float64(n)),
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

// ComputeAll computes one Summary per column.
func ComputeAll(columns [][]float64) []Summary {
	out := make([]Summary, len(columns))
	for i, col := range columns {
		out[i] = Compute(col)
	}
	return out
}
