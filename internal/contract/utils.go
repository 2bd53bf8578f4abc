package contract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/samplerate/schema"
	"golang.org/x/term"
)

// Exit codes that let operators tell failure kinds apart.
const (
	ExitGeneric          = 1
	ExitParseError       = 2
	ExitInsufficientData = 3
)

// Color variables for console output.
var (
	VerySimilarColor = color.New(color.FgGreen, color.Bold) // VerySimilarColor marks rates that agree.
	ModerateColor    = color.New(color.FgYellow)            // ModerateColor represents standard caution, not bold.
	SignificantColor = color.New(color.FgRed, color.Bold)   // SignificantColor represents standard danger.
)

// GetPlainLabel returns the plain verdict text for a similarity level.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(level schema.SimilarityLevel) string {
	switch level {
	case schema.VerySimilar:
		return "Very similar"
	case schema.ModeratelySimilar:
		return "Moderate"
	default:
		return "Significant"
	}
}

// GetColorLabel returns a colored verdict for console output (table).
func GetColorLabel(level schema.SimilarityLevel) string {
	text := GetPlainLabel(level)

	switch level {
	case schema.VerySimilar:
		return VerySimilarColor.Sprint(text)
	case schema.ModeratelySimilar:
		return ModerateColor.Sprint(text)
	default:
		return SignificantColor.Sprint(text)
	}
}

// GetSimilarityIcon returns the marker printed in front of the verdict line.
func GetSimilarityIcon(level schema.SimilarityLevel) string {
	switch level {
	case schema.VerySimilar:
		return "✓"
	case schema.ModeratelySimilar:
		return "⚠"
	default:
		return "✗"
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case errors.Is(err, schema.ErrParse):
		return ExitParseError
	case errors.Is(err, schema.ErrInsufficientData):
		return ExitInsufficientData
	default:
		return ExitGeneric
	}
}

// LogFatal logs an error and exits the program with a code derived from err.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(ExitCode(err))
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseColorMode is ParseBoolString plus "auto", which enables colors only
// when stdout is a terminal.
func ParseColorMode(s string) (bool, error) {
	if strings.EqualFold(s, "auto") {
		return IsTerminal(os.Stdout), nil
	}
	return ParseBoolString(s)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, the override when positive,
// or 80 when it cannot be detected.
func TerminalWidth(override int) int {
	if override > 0 {
		return override
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return width
}
