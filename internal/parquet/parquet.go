// Package parquet provides data structures and functions for exporting sampling rate
// reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/samplerate/schema"
	"github.com/parquet-go/parquet-go"
)

// SamplingStatsRecord is one analyzed stream, flattened for columnar export.
// Comparison columns are null when the report holds a single stream.
type SamplingStatsRecord struct {
	// AnalysisTime is when the report was produced (stored as TIMESTAMP with nanosecond precision)
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// Label is the caller-chosen stream name
	Label string `parquet:"label,snappy"`

	// Source is the file the stream was loaded from
	Source string `parquet:"source,snappy"`

	// Column is the name of the timestamp column
	Column string `parquet:"column,snappy"`

	SampleCount         int64   `parquet:"sample_count,snappy"`
	DurationSeconds     float64 `parquet:"duration_seconds,snappy"`
	MeanRateHz          float64 `parquet:"mean_rate_hz,snappy"`
	MedianRateHz        float64 `parquet:"median_rate_hz,snappy"`
	StdRateHz           float64 `parquet:"std_rate_hz,snappy"`
	MinRateHz           float64 `parquet:"min_rate_hz,snappy"`
	MaxRateHz           float64 `parquet:"max_rate_hz,snappy"`
	MeanIntervalSeconds float64 `parquet:"mean_interval_seconds,snappy"`

	// RateDifferenceHz is the absolute mean rate difference of the compared streams (nullable)
	RateDifferenceHz *float64 `parquet:"rate_difference_hz,optional,snappy"`

	// ThresholdHz is the similarity threshold used (nullable)
	ThresholdHz *float64 `parquet:"threshold_hz,optional,snappy"`

	// IsSimilar is whether the difference is within the threshold (nullable)
	IsSimilar *bool `parquet:"is_similar,optional,snappy"`

	// SimilarityLevel is the three-tier verdict (nullable)
	SimilarityLevel *string `parquet:"similarity_level,optional,snappy"`
}

// NewSamplingStatsRecords flattens a report into one record per stream.
func NewSamplingStatsRecords(report schema.AnalysisReport, analysisTime time.Time) []SamplingStatsRecord {
	records := make([]SamplingStatsRecord, 0, len(report.Streams))
	for _, s := range report.Streams {
		r := SamplingStatsRecord{
			AnalysisTime:        analysisTime,
			Label:               s.Stats.Label,
			Source:              s.Source,
			Column:              s.Column,
			SampleCount:         int64(s.Stats.SampleCount),
			DurationSeconds:     s.Stats.DurationSeconds,
			MeanRateHz:          s.Stats.MeanRateHz,
			MedianRateHz:        s.Stats.MedianRateHz,
			StdRateHz:           s.Stats.StdRateHz,
			MinRateHz:           s.Stats.MinRateHz,
			MaxRateHz:           s.Stats.MaxRateHz,
			MeanIntervalSeconds: s.Stats.MeanIntervalSeconds,
		}
		if c := report.Comparison; c != nil {
			diff, threshold, similar, level := c.RateDifferenceHz, c.ThresholdHz, c.IsSimilar, string(c.Level)
			r.RateDifferenceHz = &diff
			r.ThresholdHz = &threshold
			r.IsSimilar = &similar
			r.SimilarityLevel = &level
		}
		records = append(records, r)
	}
	return records
}

// WriteSamplingStats writes records to w as a Parquet file.
func WriteSamplingStats(w io.Writer, data []SamplingStatsRecord) error {
	// The schema is automatically derived from the SamplingStatsRecord struct tags
	writer := parquet.NewGenericWriter[SamplingStatsRecord](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
