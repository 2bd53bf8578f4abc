package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/samplerate/schema"
)

// writeCSVReport writes one row per stream. Comparison columns are empty for a single stream.
func writeCSVReport(w io.Writer, report schema.AnalysisReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"label",
		"source",
		"column",
		"sample_count",
		"duration_seconds",
		"mean_rate_hz",
		"median_rate_hz",
		"std_rate_hz",
		"min_rate_hz",
		"max_rate_hz",
		"mean_interval_seconds",
		"rate_difference_hz",
		"threshold_hz",
		"is_similar",
		"level",
	}
	comparison := []string{"", "", "", ""}
	if c := report.Comparison; c != nil {
		comparison = []string{
			fmtFloat(c.RateDifferenceHz),
			fmtFloat(c.ThresholdHz),
			strconv.FormatBool(c.IsSimilar),
			string(c.Level),
		}
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range report.Streams {
			row := []string{
				s.Stats.Label,
				s.Source,
				s.Column,
				fmt.Sprintf(intFmt, s.Stats.SampleCount),
				fmtFloat(s.Stats.DurationSeconds),
				fmtFloat(s.Stats.MeanRateHz),
				fmtFloat(s.Stats.MedianRateHz),
				fmtFloat(s.Stats.StdRateHz),
				fmtFloat(s.Stats.MinRateHz),
				fmtFloat(s.Stats.MaxRateHz),
				fmtFloat(s.Stats.MeanIntervalSeconds),
			}
			row = append(row, comparison...)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
