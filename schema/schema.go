// Package schema has configs, models and global variables for all parts of samplerate.
package schema

// Column holds the raw values of a single column extracted by a loader.
// Values are kept as text so that timestamp conversion happens in one place.
type Column struct {
	Name   string   `json:"name"`   // Header name of the column in the source table
	Values []string `json:"values"` // Raw cell values in row order
}

// SamplingStats describes the instantaneous sampling rate of one stream.
// Rates are derived per interval as 1 / (t[i] - t[i-1]) and then aggregated.
// A record is created once per analysis and never mutated afterwards.
type SamplingStats struct {
	Label               string  `json:"label"`                 // Caller-supplied stream name (e.g. "Eye Data")
	SampleCount         int     `json:"sample_count"`          // Number of timestamps in the input
	DurationSeconds     float64 `json:"duration_seconds"`      // Last timestamp minus first timestamp
	MeanRateHz          float64 `json:"mean_rate_hz"`          // Arithmetic mean of per-interval rates
	MedianRateHz        float64 `json:"median_rate_hz"`        // Median of per-interval rates
	StdRateHz           float64 `json:"std_rate_hz"`           // Sample standard deviation (ddof=1) of rates
	MinRateHz           float64 `json:"min_rate_hz"`           // Smallest per-interval rate
	MaxRateHz           float64 `json:"max_rate_hz"`           // Largest per-interval rate
	MeanIntervalSeconds float64 `json:"mean_interval_seconds"` // Mean time between adjacent samples
}

// ComparisonResult holds the outcome of comparing two streams by mean rate.
// A and B keep the order in which the streams were given.
type ComparisonResult struct {
	A                SamplingStats   `json:"a"`
	B                SamplingStats   `json:"b"`
	RateDifferenceHz float64         `json:"rate_difference_hz"` // |A.MeanRateHz - B.MeanRateHz|
	ThresholdHz      float64         `json:"threshold_hz"`       // Threshold used for IsSimilar
	IsSimilar        bool            `json:"is_similar"`         // RateDifferenceHz <= ThresholdHz
	Level            SimilarityLevel `json:"level"`              // Fixed three-tier verdict
}

// HistogramBin is a single equal-width bucket of rates in Hz.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// RateHistogram is the distribution of finite per-interval rates.
// Rates that are infinite or NaN cannot be placed in a bucket and are counted in NonFinite.
type RateHistogram struct {
	Bins      []HistogramBin `json:"bins"`
	NonFinite int            `json:"non_finite"`
}

// Total returns the number of rates represented by the histogram.
func (h RateHistogram) Total() int {
	total := h.NonFinite
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// MaxCount returns the count of the fullest bin.
func (h RateHistogram) MaxCount() int {
	maxCount := 0
	for _, b := range h.Bins {
		maxCount = max(maxCount, b.Count)
	}
	return maxCount
}

// StreamReport is everything known about one analyzed stream.
type StreamReport struct {
	Source    string         `json:"source"`              // File the stream was loaded from
	Column    string         `json:"column"`              // Column holding the timestamps
	Stats     SamplingStats  `json:"stats"`               // Rate statistics
	Histogram *RateHistogram `json:"histogram,omitempty"` // Rate distribution, when requested
}

// AnalysisReport is the unit handed to reporters.
// Comparison is set only when exactly two streams were analyzed together.
type AnalysisReport struct {
	Streams    []StreamReport    `json:"streams"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
}
