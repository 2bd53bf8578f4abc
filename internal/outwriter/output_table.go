package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeReportTable writes a metric-by-stream table, the comparison verdict and any histograms.
func writeReportTable(writer io.Writer, report schema.AnalysisReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	if err := writeStatsTable(writer, report, cfg, intFmt); err != nil {
		return err
	}
	if report.Comparison != nil {
		if err := writeComparisonSummary(writer, *report.Comparison, cfg, fmtFloat); err != nil {
			return err
		}
	}
	for _, s := range report.Streams {
		if s.Histogram == nil {
			continue
		}
		if err := writeHistogram(writer, s.Stats.Label, *s.Histogram, cfg, fmtFloat); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Analysis completed in %v for %d stream(s)\n", duration, len(report.Streams))
	return err
}

// writeStatsTable renders one column per stream so streams can be read side by side.
func writeStatsTable(writer io.Writer, report schema.AnalysisReport, cfg *contract.Config, intFmt string) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers ---
	headers := []string{"Metric"}
	for _, s := range report.Streams {
		headers = append(headers, s.Stats.Label)
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var data [][]string
	row := []string{"Column"}
	for _, s := range report.Streams {
		row = append(row, s.Column)
	}
	data = append(data, row)

	row = []string{"Total Samples"}
	for _, s := range report.Streams {
		row = append(row, fmt.Sprintf(intFmt, s.Stats.SampleCount))
	}
	data = append(data, row)

	for _, sr := range schema.StatsRows {
		row = []string{sr.Title()}
		for _, s := range report.Streams {
			row = append(row, fmt.Sprintf("%.*f", cfg.Precision+sr.ExtraDigit, sr.Value(s.Stats)))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeComparisonSummary prints the rate difference and the verdict lines.
func writeComparisonSummary(writer io.Writer, c schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	label := contract.GetPlainLabel(c.Level)
	verdict := schema.GetSimilarityMessage(c.Level)
	if cfg.UseColors {
		label = contract.GetColorLabel(c.Level)
		verdict = levelColor(c.Level).Sprint(verdict)
	}

	withinThreshold := "no"
	if c.IsSimilar {
		withinThreshold = "yes"
	}

	if _, err := fmt.Fprintf(writer, "\nRate difference (%s vs %s): %s Hz [%s]\n", c.A.Label, c.B.Label, fmtFloat(c.RateDifferenceHz), label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%s %s\n", contract.GetSimilarityIcon(c.Level), verdict); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Within threshold of %s Hz: %s\n\n", fmtFloat(c.ThresholdHz), withinThreshold)
	return err
}

// levelColor returns the console color of a similarity level.
func levelColor(level schema.SimilarityLevel) *color.Color {
	switch level {
	case schema.VerySimilar:
		return contract.VerySimilarColor
	case schema.ModeratelySimilar:
		return contract.ModerateColor
	default:
		return contract.SignificantColor
	}
}
