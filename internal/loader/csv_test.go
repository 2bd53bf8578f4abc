package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eyeCSV = `frame,gaze_capture_time,x,y
1,1700000000.000,0.1,0.2
2,1700000000.005,0.1,0.3
3,1700000000.010,0.2,0.3
`

func TestReadColumn(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		column     string
		wantName   string
		wantValues []string
		wantErr    string
	}{
		{
			name:       "named column",
			data:       eyeCSV,
			column:     "gaze_capture_time",
			wantName:   "gaze_capture_time",
			wantValues: []string{"1700000000.000", "1700000000.005", "1700000000.010"},
		},
		{
			name:       "empty name selects first column",
			data:       "time,joint\n0.00,hip\n0.01,hip\n",
			column:     "",
			wantName:   "time",
			wantValues: []string{"0.00", "0.01"},
		},
		{
			name:       "byte order mark and padded header",
			data:       "\uFEFFtime , joint\n1,a\n2,b\n",
			column:     "time",
			wantName:   "time",
			wantValues: []string{"1", "2"},
		},
		{
			name:       "header only",
			data:       "time\n",
			column:     "time",
			wantName:   "time",
			wantValues: []string{},
		},
		{
			name:       "values are kept verbatim",
			data:       "time\n2024-01-01T00:00:00Z\nnot a time\n",
			column:     "time",
			wantName:   "time",
			wantValues: []string{"2024-01-01T00:00:00Z", "not a time"},
		},
		{
			name:    "missing column lists available columns",
			data:    eyeCSV,
			column:  "timestamp",
			wantErr: "available columns: frame, gaze_capture_time, x, y",
		},
		{
			name:    "short row",
			data:    "a,b\n1,2\n3\n",
			column:  "b",
			wantErr: "row 2 has 1 fields",
		},
		{
			name:    "empty input",
			data:    "",
			wantErr: ErrNoHeader.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := ReadColumn(context.Background(), strings.NewReader(tt.data), tt.column)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, col.Name)
			assert.Equal(t, tt.wantValues, col.Values)
		})
	}
}

func TestReadColumnCanceled(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("time\n")
	for i := range ctxCheckEvery + 10 {
		sb.WriteString(strings.Repeat("1", 1+i%3))
		sb.WriteString("\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadColumn(ctx, strings.NewReader(sb.String()), "time")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVLoaderLoadColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eye.csv")
	require.NoError(t, os.WriteFile(path, []byte(eyeCSV), 0o600))

	l := NewCSVLoader()
	col, err := l.LoadColumn(context.Background(), path, "gaze_capture_time")
	require.NoError(t, err)
	assert.Len(t, col.Values, 3)

	_, err = l.LoadColumn(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")

	_, err = l.LoadColumn(context.Background(), path, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
