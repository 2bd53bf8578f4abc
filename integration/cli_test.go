//go:build basic

package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCSV writes a header and evenly spaced epoch seconds at rateHz.
func writeCSV(t *testing.T, dir, name, column string, samples int, rateHz float64) string {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s,value\n", column)
	for i := range samples {
		fmt.Fprintf(&sb, "%.6f,%d\n", 1_000+float64(i)/rateHz, i)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

// runSamplerate runs the binary and returns stdout, stderr and the exit code.
func runSamplerate(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(getSamplerateBinary(), args...)
	cmd.Dir = t.TempDir() // Keep any local config file out of the way
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), stderr.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	default:
		t.Fatalf("failed to run samplerate: %v", err)
		return "", "", -1
	}
}

func TestCompareJSON(t *testing.T) {
	dir := t.TempDir()
	eye := writeCSV(t, dir, "eye.csv", "gaze_capture_time", 400, 200)
	body := writeCSV(t, dir, "body.csv", "time", 200, 100)

	stdout, stderr, code := runSamplerate(t, "compare", "--eye-file", eye, "--body-file", body, "--output", "json")
	require.Equal(t, 0, code, stderr)

	var payload struct {
		Streams []struct {
			Stats struct {
				Label      string  `json:"label"`
				MeanRateHz float64 `json:"mean_rate_hz"`
			} `json:"stats"`
		} `json:"streams"`
		Comparison struct {
			RateDifferenceHz float64 `json:"rate_difference_hz"`
			IsSimilar        bool    `json:"is_similar"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload), stdout)
	require.Len(t, payload.Streams, 2)
	assert.Equal(t, "Eye Data", payload.Streams[0].Stats.Label)
	assert.InDelta(t, 200, payload.Streams[0].Stats.MeanRateHz, 0.01)
	assert.InDelta(t, 100, payload.Streams[1].Stats.MeanRateHz, 0.01)
	assert.InDelta(t, 100, payload.Comparison.RateDifferenceHz, 0.02)
	assert.False(t, payload.Comparison.IsSimilar)
}

func TestAnalyzeText(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "body.csv", "time", 100, 50)

	stdout, stderr, code := runSamplerate(t, "analyze", path, "--bins", "5")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Mean Rate (Hz)")
	assert.Contains(t, stdout, "50.00")
	assert.Contains(t, stdout, "Sampling Rate Distribution (Hz)")
	assert.Contains(t, stdout, "Analysis completed in")
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("time\n1\n2\nnot-a-time\n"), 0o600))
	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("time\n1\n"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{name: "parse error", args: []string{"analyze", bad}, code: 2, msg: "not-a-time"},
		{name: "insufficient data", args: []string{"analyze", short}, code: 3, msg: "need at least 2 timestamps"},
		{name: "missing column", args: []string{"analyze", short, "--column", "nope"}, code: 1, msg: "available columns: time"},
		{name: "missing body file", args: []string{"compare", "--eye-file", short}, code: 1, msg: "--body-file"},
		{name: "compare without files", args: []string{"compare"}, code: 1, msg: "eye and body files must be provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runSamplerate(t, tt.args...)
			assert.Equal(t, tt.code, code, stderr)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}
