package outwriter

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/huangsam/samplerate/schema"
)

// jsonFloat encodes non-finite values as the strings "NaN", "+Inf" and "-Inf",
// which encoding/json refuses to emit as numbers.
type jsonFloat float64

// MarshalJSON implements json.Marshaler.
func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	default:
		return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
	}
}

type jsonStats struct {
	Label               string    `json:"label"`
	SampleCount         int       `json:"sample_count"`
	DurationSeconds     jsonFloat `json:"duration_seconds"`
	MeanRateHz          jsonFloat `json:"mean_rate_hz"`
	MedianRateHz        jsonFloat `json:"median_rate_hz"`
	StdRateHz           jsonFloat `json:"std_rate_hz"`
	MinRateHz           jsonFloat `json:"min_rate_hz"`
	MaxRateHz           jsonFloat `json:"max_rate_hz"`
	MeanIntervalSeconds jsonFloat `json:"mean_interval_seconds"`
}

type jsonBin struct {
	Lower jsonFloat `json:"lower"`
	Upper jsonFloat `json:"upper"`
	Count int       `json:"count"`
}

type jsonHistogram struct {
	Bins      []jsonBin `json:"bins"`
	NonFinite int       `json:"non_finite"`
}

type jsonStream struct {
	Source    string         `json:"source"`
	Column    string         `json:"column"`
	Stats     jsonStats      `json:"stats"`
	Histogram *jsonHistogram `json:"histogram,omitempty"`
}

type jsonComparison struct {
	A                string                 `json:"a"`
	B                string                 `json:"b"`
	RateDifferenceHz jsonFloat              `json:"rate_difference_hz"`
	ThresholdHz      jsonFloat              `json:"threshold_hz"`
	IsSimilar        bool                   `json:"is_similar"`
	Level            schema.SimilarityLevel `json:"level"`
	Message          string                 `json:"message"`
}

type jsonReport struct {
	Streams    []jsonStream    `json:"streams"`
	Comparison *jsonComparison `json:"comparison,omitempty"`
}

// newJSONStats converts SamplingStats field by field.
func newJSONStats(s schema.SamplingStats) jsonStats {
	return jsonStats{
		Label:               s.Label,
		SampleCount:         s.SampleCount,
		DurationSeconds:     jsonFloat(s.DurationSeconds),
		MeanRateHz:          jsonFloat(s.MeanRateHz),
		MedianRateHz:        jsonFloat(s.MedianRateHz),
		StdRateHz:           jsonFloat(s.StdRateHz),
		MinRateHz:           jsonFloat(s.MinRateHz),
		MaxRateHz:           jsonFloat(s.MaxRateHz),
		MeanIntervalSeconds: jsonFloat(s.MeanIntervalSeconds),
	}
}

// newJSONReport builds the JSON view of a report.
// Comparison streams are referenced by label since they are listed in Streams already.
func newJSONReport(report schema.AnalysisReport) jsonReport {
	out := jsonReport{Streams: make([]jsonStream, 0, len(report.Streams))}
	for _, s := range report.Streams {
		js := jsonStream{Source: s.Source, Column: s.Column, Stats: newJSONStats(s.Stats)}
		if s.Histogram != nil {
			jh := &jsonHistogram{Bins: make([]jsonBin, 0, len(s.Histogram.Bins)), NonFinite: s.Histogram.NonFinite}
			for _, b := range s.Histogram.Bins {
				jh.Bins = append(jh.Bins, jsonBin{Lower: jsonFloat(b.Lower), Upper: jsonFloat(b.Upper), Count: b.Count})
			}
			js.Histogram = jh
		}
		out.Streams = append(out.Streams, js)
	}
	if c := report.Comparison; c != nil {
		out.Comparison = &jsonComparison{
			A:                c.A.Label,
			B:                c.B.Label,
			RateDifferenceHz: jsonFloat(c.RateDifferenceHz),
			ThresholdHz:      jsonFloat(c.ThresholdHz),
			IsSimilar:        c.IsSimilar,
			Level:            c.Level,
			Message:          schema.GetSimilarityMessage(c.Level),
		}
	}
	return out
}

// MarshalReportJSON returns the indented JSON form of a report.
func MarshalReportJSON(report schema.AnalysisReport) ([]byte, error) {
	return json.MarshalIndent(newJSONReport(report), "", "  ")
}

// writeJSONReport marshals the report to JSON and writes it.
func writeJSONReport(w io.Writer, report schema.AnalysisReport) error {
	return writeJSON(w, newJSONReport(report))
}
