// Package loader extracts timestamp columns from tabular files.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/schema"
)

// ctxCheckEvery is how many rows are read between cancellation checks.
const ctxCheckEvery = 4096

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\uFEFF"

// ErrNoHeader is returned for a file without a header row.
var ErrNoHeader = errors.New("missing header row")

// CSVLoader reads columns from comma-separated files with a header row.
type CSVLoader struct{}

var _ contract.SeriesLoader = &CSVLoader{} // Compile-time check

// NewCSVLoader creates a new CSV loader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// LoadColumn implements the SeriesLoader interface.
func (l *CSVLoader) LoadColumn(ctx context.Context, path string, column string) (schema.Column, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.Column{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	col, err := ReadColumn(ctx, file, column)
	if err != nil {
		return schema.Column{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return col, nil
}

// ReadColumn reads the named column from CSV data. An empty name selects the first column.
// Rows too short to hold the column are rejected.
func ReadColumn(ctx context.Context, r io.Reader, column string) (schema.Column, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return schema.Column{}, ErrNoHeader
	}
	if err != nil {
		return schema.Column{}, fmt.Errorf("failed to read header: %w", err)
	}
	header = cleanHeader(header)

	idx, err := columnIndex(header, column)
	if err != nil {
		return schema.Column{}, err
	}

	col := schema.Column{Name: header[idx], Values: []string{}}
	for row := 1; ; row++ {
		if row%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return schema.Column{}, err
			}
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.Column{}, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if idx >= len(record) {
			return schema.Column{}, fmt.Errorf("row %d has %d fields, column %q is field %d", row, len(record), col.Name, idx+1)
		}
		col.Values = append(col.Values, record[idx])
	}
	return col, nil
}

// cleanHeader copies the header, trimming whitespace and a leading byte order mark.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// columnIndex finds the position of column in header.
func columnIndex(header []string, column string) (int, error) {
	if len(header) == 0 {
		return 0, ErrNoHeader
	}
	if column == "" {
		return 0, nil
	}
	for i, h := range header {
		if h == column {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found. available columns: %s", column, strings.Join(header, ", "))
}
