package core

import (
	"math"
	"slices"
)

// mean returns the arithmetic mean. Infinite inputs propagate.
func mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// median returns the middle value of a sorted copy of data.
// The input slice is left untouched.
func median(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// sampleStd returns the standard deviation with N-1 denominator.
// It is NaN for fewer than two values, and NaN whenever an input is infinite.
func sampleStd(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}
	m := mean(data)
	varianceSum := 0.0
	for _, v := range data {
		varianceSum += (v - m) * (v - m)
	}
	return math.Sqrt(varianceSum / float64(len(data)-1))
}

// minMax returns the smallest and largest non-NaN values.
// Both are NaN when no such value exists.
func minMax(data []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}
