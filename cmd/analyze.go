package cmd

import (
	"github.com/huangsam/samplerate/core"
	"github.com/huangsam/samplerate/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd reports the sampling rate of a single stream.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <csv-file>",
	Short: "Report the sampling rate statistics of one stream.",
	Long: `Read a timestamp column from a CSV file and report its sampling rate.

Each pair of consecutive timestamps yields an interval and an instantaneous
rate (1 / interval). The report shows:
- Total samples and recording duration
- Mean, median, standard deviation, min and max rate in Hz
- Mean interval in seconds
- Optionally, a histogram of the rate distribution (--bins)

Timestamps may be ISO-8601 text or numeric epochs. Numeric epochs are read as
seconds unless --epoch-unit says otherwise; 'auto' detects nanoseconds.

Examples:
  # Analyze the first column
  samplerate analyze body.csv

  # Analyze a named column with a histogram
  samplerate analyze eye.csv --column gaze_capture_time --bins 20

  # Export the statistics as JSON
  samplerate analyze eye.csv --output json --output-file eye.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, seriesLoader); err != nil {
			contract.LogFatal("Cannot run sampling rate analysis", err)
		}
	},
}
