package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrParse            = errors.New("timestamp parse error")
	ErrInsufficientData = errors.New("insufficient data")
)

// ParseError reports a value that cannot be interpreted as a point in time.
// Analysis of the stream stops at the first such value.
type ParseError struct {
	Label string // Stream the value belongs to
	Index int    // Zero-based position in the series
	Value string // Offending raw value
	Err   error  // Underlying conversion error
}

func (e *ParseError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("cannot parse timestamp %q at index %d: %v", e.Value, e.Index, e.Err)
	}
	return fmt.Sprintf("%s: cannot parse timestamp %q at index %d: %v", e.Label, e.Value, e.Index, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// InsufficientDataError reports a series too short to form a single interval.
type InsufficientDataError struct {
	Label string
	Count int
}

func (e *InsufficientDataError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("need at least 2 timestamps, got %d", e.Count)
	}
	return fmt.Sprintf("%s: need at least 2 timestamps, got %d", e.Label, e.Count)
}

// Is matches ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }
