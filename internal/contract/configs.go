package contract

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/samplerate/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 6
	DefaultBins      = 0
	MaxBins          = 200
	DefaultLabel     = "Stream"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// StreamConfig locates one stream of timestamps.
type StreamConfig struct {
	Path   string // File to load
	Column string // Column name; empty selects the first column
	Label  string // Display name used in reports and errors
}

// Config holds the runtime configuration for the analysis.
// This struct is the "final, validated" config.
type Config struct {
	Single StreamConfig // Stream for the analyze command
	Eye    StreamConfig // First stream of the compare command
	Body   StreamConfig // Second stream of the compare command

	CompareMode    bool             // True when both eye and body files are set
	ThresholdHz    float64          // Maximum mean rate difference still considered similar
	EpochUnit      schema.EpochUnit // Unit of numeric timestamps
	CheckMonotonic bool             // Warn when a series steps backwards in time

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Bins       int // Histogram bins in text output (0 = off)
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	FilePathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Threshold      float64 `mapstructure:"threshold"`
	EpochUnit      string  `mapstructure:"epoch-unit"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Precision      int     `mapstructure:"precision"`
	Bins           int     `mapstructure:"bins"`
	Width          int     `mapstructure:"width"`
	CheckMonotonic bool    `mapstructure:"check-monotonic"`
	Emoji          string  `mapstructure:"emoji"`
	Color          string  `mapstructure:"color"`

	// --- Fields from analyzeCmd.Flags() ---
	Column string `mapstructure:"column"`
	Label  string `mapstructure:"label"`

	// --- Fields from compareCmd.Flags() ---
	EyeFile    string `mapstructure:"eye-file"`
	EyeColumn  string `mapstructure:"eye-column"`
	EyeLabel   string `mapstructure:"eye-label"`
	BodyFile   string `mapstructure:"body-file"`
	BodyColumn string `mapstructure:"body-column"`
	BodyLabel  string `mapstructure:"body-label"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSingleMode(cfg, input); err != nil {
		return err
	}
	if err := processCompareMode(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-stream fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.CheckMonotonic = input.CheckMonotonic
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseColorMode(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Threshold Validation ---
	if math.IsNaN(input.Threshold) || math.IsInf(input.Threshold, 0) || input.Threshold < 0 {
		return fmt.Errorf("threshold must be a finite value >= 0 (received %v)", input.Threshold)
	}
	cfg.ThresholdHz = input.Threshold

	// --- 2. Epoch Unit Validation ---
	cfg.EpochUnit = schema.EpochUnit(strings.ToLower(strings.TrimSpace(input.EpochUnit)))
	if cfg.EpochUnit == "" {
		cfg.EpochUnit = schema.AutoUnit
	}
	if _, ok := schema.ValidEpochUnits[cfg.EpochUnit]; !ok {
		return fmt.Errorf("invalid epoch unit '%s'. must be auto, s, ms, us, ns", input.EpochUnit)
	}

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 4. Histogram Validation ---
	if input.Bins < 0 || input.Bins > MaxBins {
		return fmt.Errorf("bins must be between 0 and %d (received %d)", MaxBins, input.Bins)
	}
	cfg.Bins = input.Bins

	return nil
}

// processSingleMode handles the stream of the analyze command.
func processSingleMode(cfg *Config, input *ConfigRawInput) error {
	cfg.Single = StreamConfig{
		Path:   strings.TrimSpace(input.FilePathStr),
		Column: strings.TrimSpace(input.Column),
		Label:  strings.TrimSpace(input.Label),
	}
	if cfg.Single.Label == "" {
		cfg.Single.Label = DefaultLabel
	}
	return nil
}

// processCompareMode handles the eye and body streams of the compare command.
func processCompareMode(cfg *Config, input *ConfigRawInput) error {
	cfg.Eye = StreamConfig{
		Path:   strings.TrimSpace(input.EyeFile),
		Column: strings.TrimSpace(input.EyeColumn),
		Label:  strings.TrimSpace(input.EyeLabel),
	}
	cfg.Body = StreamConfig{
		Path:   strings.TrimSpace(input.BodyFile),
		Column: strings.TrimSpace(input.BodyColumn),
		Label:  strings.TrimSpace(input.BodyLabel),
	}
	if cfg.Eye.Label == "" {
		cfg.Eye.Label = schema.DefaultEyeLabel
	}
	if cfg.Body.Label == "" {
		cfg.Body.Label = schema.DefaultBodyLabel
	}

	if cfg.Eye.Path == "" && cfg.Body.Path == "" {
		cfg.CompareMode = false
		return nil
	}
	cfg.CompareMode = true

	if cfg.Eye.Path == "" {
		return fmt.Errorf("must specify --eye-file when running the compare command")
	}
	if cfg.Body.Path == "" {
		return fmt.Errorf("must specify --body-file when running the compare command")
	}
	if cfg.Eye.Label == cfg.Body.Label {
		return fmt.Errorf("eye and body labels must differ (both are %q)", cfg.Eye.Label)
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
