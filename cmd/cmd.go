// Package cmd defines the command-line interface for samplerate.
package cmd

import (
	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("threshold", schema.DefaultThresholdHz, "Maximum mean rate difference in Hz still considered similar")
	rootCmd.PersistentFlags().String("epoch-unit", string(schema.AutoUnit), "Unit of numeric timestamps: auto or s or ms or us or ns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("bins", contract.DefaultBins, "Histogram bins of the rate distribution in text output (0 = off)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("check-monotonic", false, "Warn when timestamps step backwards")
	rootCmd.PersistentFlags().String("color", "auto", "Enable colored labels in output (auto/yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in progress headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().String("column", "", "Timestamp column name (default: first column)")
	analyzeCmd.Flags().String("label", contract.DefaultLabel, "Display name of the stream")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("eye-file", "", "CSV file of the eye-tracking stream")
	compareCmd.Flags().String("eye-column", schema.DefaultEyeColumn, "Timestamp column of the eye-tracking stream")
	compareCmd.Flags().String("eye-label", schema.DefaultEyeLabel, "Display name of the eye-tracking stream")
	compareCmd.Flags().String("body-file", "", "CSV file of the body-tracking stream")
	compareCmd.Flags().String("body-column", schema.DefaultBodyColumn, "Timestamp column of the body-tracking stream (default: first column)")
	compareCmd.Flags().String("body-label", schema.DefaultBodyLabel, "Display name of the body-tracking stream")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}
}
