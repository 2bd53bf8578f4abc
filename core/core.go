// Package core has core logic for sampling rate analysis and comparison.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/internal/outwriter"
	"github.com/huangsam/samplerate/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) error

// ExecuteAnalyze analyzes a single stream and prints the report.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) error {
	start := time.Now()
	report, err := GetSingleReport(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return outwriter.PrintReport(report, cfg, time.Since(start))
}

// ExecuteCompare analyzes the eye and body streams, compares them and prints the report.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) error {
	start := time.Now()
	report, err := GetComparisonReport(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return outwriter.PrintReport(report, cfg, time.Since(start))
}

// GetSingleReport analyzes cfg.Single without printing the result.
func GetSingleReport(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) (schema.AnalysisReport, error) {
	if cfg.Single.Path == "" {
		return schema.AnalysisReport{}, errors.New("a file to analyze is required")
	}
	stream, err := analyzeStream(ctx, cfg, loader, cfg.Single)
	if err != nil {
		return schema.AnalysisReport{}, err
	}
	return schema.AnalysisReport{Streams: []schema.StreamReport{stream}}, nil
}

// GetComparisonReport analyzes cfg.Eye and cfg.Body and compares them without printing.
// The streams are analyzed one after the other; a failure in either aborts the comparison.
func GetComparisonReport(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) (schema.AnalysisReport, error) {
	if !cfg.CompareMode {
		return schema.AnalysisReport{}, errors.New("eye and body files must be provided")
	}
	eye, err := analyzeStream(ctx, cfg, loader, cfg.Eye)
	if err != nil {
		return schema.AnalysisReport{}, err
	}
	body, err := analyzeStream(ctx, cfg, loader, cfg.Body)
	if err != nil {
		return schema.AnalysisReport{}, err
	}
	comparison := Compare(eye.Stats, body.Stats, cfg.ThresholdHz)
	return schema.AnalysisReport{
		Streams:    []schema.StreamReport{eye, body},
		Comparison: &comparison,
	}, nil
}

// analyzeStream loads, parses and analyzes one stream.
func analyzeStream(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader, stream contract.StreamConfig) (schema.StreamReport, error) {
	if err := ctx.Err(); err != nil {
		return schema.StreamReport{}, err
	}
	logStreamHeader(ctx, cfg, stream)

	col, err := loader.LoadColumn(ctx, stream.Path, stream.Column)
	if err != nil {
		return schema.StreamReport{}, fmt.Errorf("cannot load %s: %w", stream.Label, err)
	}
	logStreamLoaded(ctx, cfg, col)

	timestamps, err := parseSeries(col.Values, stream.Label, cfg.EpochUnit)
	if err != nil {
		return schema.StreamReport{}, err
	}
	if cfg.CheckMonotonic {
		if i := FirstDecrease(timestamps); i >= 0 {
			contract.LogWarn(stream.Label, fmt.Errorf("timestamps decrease at row %d (%s after %s); rates will include negative values",
				i+1, timestamps[i].Format(time.RFC3339Nano), timestamps[i-1].Format(time.RFC3339Nano)))
		}
	}

	stats, err := Analyze(timestamps, stream.Label)
	if err != nil {
		return schema.StreamReport{}, err
	}
	report := schema.StreamReport{Source: stream.Path, Column: col.Name, Stats: stats}
	if cfg.Bins > 0 {
		_, rates := IntervalsAndRates(timestamps)
		hist := BuildHistogram(rates, cfg.Bins)
		report.Histogram = &hist
	}
	return report, nil
}

// logStreamHeader prints which stream is about to be analyzed.
// Headers go to stderr so that csv and json on stdout stay machine readable.
func logStreamHeader(ctx context.Context, cfg *contract.Config, stream contract.StreamConfig) {
	if shouldSuppressHeader(ctx) {
		return
	}
	column := stream.Column
	if column == "" {
		column = "first column"
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s%s: %s (%s)\n", emoji(cfg, "🔎 "), stream.Label, stream.Path, column)
}

// logStreamLoaded prints the size of the loaded column.
func logStreamLoaded(ctx context.Context, cfg *contract.Config, col schema.Column) {
	if shouldSuppressHeader(ctx) {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%sLoaded %d samples from '%s'\n", emoji(cfg, "📥 "), len(col.Values), col.Name)
}

// emoji returns s when emojis are enabled.
func emoji(cfg *contract.Config, s string) string {
	if cfg.UseEmojis {
		return s
	}
	return ""
}
