// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/internal/parquet"
	"github.com/huangsam/samplerate/schema"
)

// PrintReport writes the report to cfg.OutputFile, or stdout when no file is set.
func PrintReport(report schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteReport(w, report, cfg, duration)
	}, fmt.Sprintf("Wrote %s report", cfg.Output))
}

// WriteReport outputs the report, dispatching based on the output format configured.
// Values are rendered as computed; nothing is rounded away except by the display precision.
func WriteReport(w io.Writer, report schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONReport(w, report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVReport(w, report, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		records := parquet.NewSamplingStatsRecords(report, time.Now().UTC())
		if err := parquet.WriteSamplingStats(w, records); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeReportTable(w, report, cfg, fmtFloat, intFmt, duration)
	}
	return nil
}
