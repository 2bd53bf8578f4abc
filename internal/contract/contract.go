// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/samplerate/schema"
)

// SeriesLoader extracts a single column of raw values from a tabular source.
// This allows the analysis executors to be tested without real files.
type SeriesLoader interface {
	// LoadColumn returns the values of the named column in row order.
	// An empty column name selects the first column of the table.
	LoadColumn(ctx context.Context, path string, column string) (schema.Column, error)
}
