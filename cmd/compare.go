package cmd

import (
	"github.com/huangsam/samplerate/core"
	"github.com/huangsam/samplerate/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd analyzes an eye-tracking and a body-tracking stream and compares them.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the sampling rates of an eye-tracking and a body-tracking stream.",
	Long: `Analyze two recordings and decide whether their mean sampling rates match.

The rate difference is the absolute difference of the two mean rates. The
streams are considered similar when the difference is within --threshold Hz.
The verdict is graded as:
- very similar   (< 1 Hz difference)
- moderate       (1-5 Hz difference)
- significant    (> 5 Hz difference)

Examples:
  # Compare with the default columns
  samplerate compare --eye-file eye.csv --body-file body.csv

  # Use a stricter threshold and custom labels
  samplerate compare --eye-file eye.csv --body-file body.csv --threshold 1 \
    --eye-label "Gaze" --body-label "Skeleton"

  # Write the comparison as parquet
  samplerate compare --eye-file eye.csv --body-file body.csv --output parquet --output-file rates.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		checkCompareAndExecute(core.ExecuteCompare)
	},
}

// checkCompareAndExecute runs the given compare executor and exits on failure.
// The executor itself rejects a config without both streams.
func checkCompareAndExecute(executeFunc core.ExecutorFunc) {
	if err := executeFunc(rootCtx, cfg, seriesLoader); err != nil {
		contract.LogFatal("Cannot run comparison", err)
	}
}
