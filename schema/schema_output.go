package schema

import "fmt"

// StatsRow is a single labelled metric used by the table writer.
type StatsRow struct {
	Metric     string
	Unit       string
	ExtraDigit int // Digits added to the display precision for small magnitudes
	Value      func(SamplingStats) float64
}

// StatsRows lists the metrics of a SamplingStats in display order.
// Sample count is rendered separately since it is an integer.
var StatsRows = []StatsRow{
	{"Mean Rate", "Hz", 0, func(s SamplingStats) float64 { return s.MeanRateHz }},
	{"Median Rate", "Hz", 0, func(s SamplingStats) float64 { return s.MedianRateHz }},
	{"Std Dev", "Hz", 0, func(s SamplingStats) float64 { return s.StdRateHz }},
	{"Min Rate", "Hz", 0, func(s SamplingStats) float64 { return s.MinRateHz }},
	{"Max Rate", "Hz", 0, func(s SamplingStats) float64 { return s.MaxRateHz }},
	{"Mean Interval", "s", 2, func(s SamplingStats) float64 { return s.MeanIntervalSeconds }},
	{"Duration", "s", 0, func(s SamplingStats) float64 { return s.DurationSeconds }},
}

// Title returns the display title of the row, including its unit.
func (r StatsRow) Title() string {
	return fmt.Sprintf("%s (%s)", r.Metric, r.Unit)
}

// GetSimilarityMessage returns the human readable verdict for a similarity level.
func GetSimilarityMessage(level SimilarityLevel) string {
	switch level {
	case VerySimilar:
		return fmt.Sprintf("Sampling rates are very similar (< %.0f Hz difference)", VerySimilarHz)
	case ModeratelySimilar:
		return fmt.Sprintf("Sampling rates are moderately different (%.0f-%.0f Hz difference)", VerySimilarHz, DefaultThresholdHz)
	default:
		return fmt.Sprintf("Sampling rates are significantly different (> %.0f Hz difference)", DefaultThresholdHz)
	}
}
