package core

import (
	"math"

	"github.com/huangsam/samplerate/schema"
)

// Compare measures how far apart the mean rates of two streams are.
//
// The difference is symmetric. IsSimilar uses an ordinary <= comparison, so a NaN mean
// in either stream always yields IsSimilar == false.
func Compare(a, b schema.SamplingStats, thresholdHz float64) schema.ComparisonResult {
	diff := math.Abs(a.MeanRateHz - b.MeanRateHz)
	return schema.ComparisonResult{
		A:                a,
		B:                b,
		RateDifferenceHz: diff,
		ThresholdHz:      thresholdHz,
		IsSimilar:        diff <= thresholdHz,
		Level:            ClassifySimilarity(diff),
	}
}

// ClassifySimilarity maps a rate difference onto the fixed three-tier verdict.
func ClassifySimilarity(diffHz float64) schema.SimilarityLevel {
	switch {
	case diffHz < schema.VerySimilarHz:
		return schema.VerySimilar
	case diffHz < schema.DefaultThresholdHz:
		return schema.ModeratelySimilar
	default:
		return schema.Significant
	}
}
