package core

import (
	"errors"
	"time"

	"github.com/huangsam/samplerate/schema"
)

// Analyze computes sampling rate statistics for timestamps in the order given.
//
// Intervals are not sorted, filtered or clamped: a repeated timestamp becomes an infinite
// rate and a step backwards becomes a negative rate, and both flow into the aggregates.
// Fewer than two timestamps yields a *schema.InsufficientDataError.
func Analyze(timestamps []time.Time, label string) (schema.SamplingStats, error) {
	if len(timestamps) < 2 {
		return schema.SamplingStats{}, &schema.InsufficientDataError{Label: label, Count: len(timestamps)}
	}

	intervals, rates := IntervalsAndRates(timestamps)
	minRate, maxRate := minMax(rates)

	return schema.SamplingStats{
		Label:               label,
		SampleCount:         len(timestamps),
		DurationSeconds:     timestamps[len(timestamps)-1].Sub(timestamps[0]).Seconds(),
		MeanRateHz:          mean(rates),
		MedianRateHz:        median(rates),
		StdRateHz:           sampleStd(rates),
		MinRateHz:           minRate,
		MaxRateHz:           maxRate,
		MeanIntervalSeconds: mean(intervals),
	}, nil
}

// AnalyzeValues converts raw values to timestamps and analyzes them.
// The length check runs first, so a short series reports insufficient data even if
// its only value is malformed. No statistics are computed if any value fails to parse.
func AnalyzeValues(values []string, label string, unit schema.EpochUnit) (schema.SamplingStats, error) {
	timestamps, err := parseSeries(values, label, unit)
	if err != nil {
		return schema.SamplingStats{}, err
	}
	return Analyze(timestamps, label)
}

// parseSeries checks the length of values and converts them to timestamps.
func parseSeries(values []string, label string, unit schema.EpochUnit) ([]time.Time, error) {
	if len(values) < 2 {
		return nil, &schema.InsufficientDataError{Label: label, Count: len(values)}
	}
	timestamps, err := ParseTimestamps(values, unit)
	if err != nil {
		return nil, withLabel(err, label)
	}
	return timestamps, nil
}

// IntervalsAndRates returns the adjacent differences in seconds and their reciprocals.
// Both slices have len(timestamps)-1 entries.
func IntervalsAndRates(timestamps []time.Time) (intervals, rates []float64) {
	if len(timestamps) < 2 {
		return []float64{}, []float64{}
	}
	intervals = make([]float64, len(timestamps)-1)
	rates = make([]float64, len(timestamps)-1)
	for i := 1; i < len(timestamps); i++ {
		interval := timestamps[i].Sub(timestamps[i-1]).Seconds()
		intervals[i-1] = interval
		rates[i-1] = 1.0 / interval
	}
	return intervals, rates
}

// FirstDecrease returns the index of the first timestamp earlier than its predecessor, or -1.
func FirstDecrease(timestamps []time.Time) int {
	for i := 1; i < len(timestamps); i++ {
		if timestamps[i].Before(timestamps[i-1]) {
			return i
		}
	}
	return -1
}

// withLabel attaches the stream label to a parse error.
func withLabel(err error, label string) error {
	var pe *schema.ParseError
	if errors.As(err, &pe) {
		pe.Label = label
	}
	return err
}
