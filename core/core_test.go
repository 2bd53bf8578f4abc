package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	eyeColumn  = schema.Column{Name: schema.DefaultEyeColumn, Values: []string{"0", "0.005", "0.010", "0.015", "0.020"}}
	bodyColumn = schema.Column{Name: "time", Values: []string{"0", "0.01", "0.02", "0.03"}}
)

func newTestConfig() *contract.Config {
	return &contract.Config{
		Single: contract.StreamConfig{Path: "eye.csv", Column: "ts", Label: "Eye"},
		Eye:    contract.StreamConfig{Path: "eye.csv", Column: schema.DefaultEyeColumn, Label: schema.DefaultEyeLabel},
		Body:   contract.StreamConfig{Path: "body.csv", Column: "", Label: schema.DefaultBodyLabel},

		ThresholdHz: schema.DefaultThresholdHz,
		EpochUnit:   schema.AutoUnit,
		Output:      schema.TextOut,
		Precision:   contract.DefaultPrecision,
	}
}

func quietContext() context.Context {
	return WithSuppressHeader(context.Background())
}

func TestGetSingleReport(t *testing.T) {
	loader := &contract.MockSeriesLoader{}
	loader.On("LoadColumn", mock.Anything, "eye.csv", "ts").Return(eyeColumn, nil)

	cfg := newTestConfig()
	cfg.Bins = 4
	report, err := GetSingleReport(quietContext(), cfg, loader)
	require.NoError(t, err)

	require.Len(t, report.Streams, 1)
	assert.Nil(t, report.Comparison)
	s := report.Streams[0]
	assert.Equal(t, "eye.csv", s.Source)
	assert.Equal(t, schema.DefaultEyeColumn, s.Column)
	assert.Equal(t, "Eye", s.Stats.Label)
	assert.Equal(t, 5, s.Stats.SampleCount)
	assert.InDelta(t, 200.0, s.Stats.MeanRateHz, 1e-6)
	require.NotNil(t, s.Histogram)
	assert.Equal(t, 4, s.Histogram.Total())
	loader.AssertExpectations(t)
}

func TestGetSingleReportErrors(t *testing.T) {
	errMissing := errors.New("no such file")

	t.Run("missing path", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Single.Path = ""
		_, err := GetSingleReport(quietContext(), cfg, &contract.MockSeriesLoader{})
		assert.Error(t, err)
	})

	t.Run("loader failure", func(t *testing.T) {
		loader := &contract.MockSeriesLoader{}
		loader.On("LoadColumn", mock.Anything, "eye.csv", "ts").Return(schema.Column{}, errMissing)
		_, err := GetSingleReport(quietContext(), newTestConfig(), loader)
		require.Error(t, err)
		assert.ErrorIs(t, err, errMissing)
		assert.Contains(t, err.Error(), "cannot load Eye")
	})

	t.Run("parse error carries label", func(t *testing.T) {
		loader := &contract.MockSeriesLoader{}
		loader.On("LoadColumn", mock.Anything, "eye.csv", "ts").
			Return(schema.Column{Name: "ts", Values: []string{"0", "x"}}, nil)
		_, err := GetSingleReport(quietContext(), newTestConfig(), loader)
		var pe *schema.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "Eye", pe.Label)
		assert.Equal(t, contract.ExitParseError, contract.ExitCode(err))
	})

	t.Run("canceled context skips loading", func(t *testing.T) {
		loader := &contract.MockSeriesLoader{}
		ctx, cancel := context.WithCancel(quietContext())
		cancel()
		_, err := GetSingleReport(ctx, newTestConfig(), loader)
		assert.ErrorIs(t, err, context.Canceled)
		loader.AssertNotCalled(t, "LoadColumn", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetComparisonReport(t *testing.T) {
	loader := &contract.MockSeriesLoader{}
	loader.On("LoadColumn", mock.Anything, "eye.csv", schema.DefaultEyeColumn).Return(eyeColumn, nil)
	loader.On("LoadColumn", mock.Anything, "body.csv", "").Return(bodyColumn, nil)

	cfg := newTestConfig()
	cfg.CompareMode = true
	report, err := GetComparisonReport(quietContext(), cfg, loader)
	require.NoError(t, err)

	require.Len(t, report.Streams, 2)
	require.NotNil(t, report.Comparison)
	c := report.Comparison
	assert.Equal(t, schema.DefaultEyeLabel, c.A.Label)
	assert.Equal(t, schema.DefaultBodyLabel, c.B.Label)
	assert.InDelta(t, 100.0, c.RateDifferenceHz, 1e-6)
	assert.False(t, c.IsSimilar)
	assert.Equal(t, schema.Significant, c.Level)
	assert.Nil(t, report.Streams[0].Histogram, "no histogram unless bins are requested")
	loader.AssertExpectations(t)
}

func TestGetComparisonReportErrors(t *testing.T) {
	t.Run("compare mode off", func(t *testing.T) {
		loader := &contract.MockSeriesLoader{}
		_, err := GetComparisonReport(quietContext(), newTestConfig(), loader)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "eye and body files must be provided")
		assert.Equal(t, contract.ExitGeneric, contract.ExitCode(err))
		loader.AssertNotCalled(t, "LoadColumn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("short body stream aborts comparison", func(t *testing.T) {
		loader := &contract.MockSeriesLoader{}
		loader.On("LoadColumn", mock.Anything, "eye.csv", schema.DefaultEyeColumn).Return(eyeColumn, nil)
		loader.On("LoadColumn", mock.Anything, "body.csv", "").Return(schema.Column{Name: "time", Values: []string{"0"}}, nil)

		cfg := newTestConfig()
		cfg.CompareMode = true
		_, err := GetComparisonReport(quietContext(), cfg, loader)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrInsufficientData)
		assert.Contains(t, err.Error(), schema.DefaultBodyLabel)
		assert.Equal(t, contract.ExitInsufficientData, contract.ExitCode(err))
	})
}

func TestExecuteCompareWritesJSON(t *testing.T) {
	loader := &contract.MockSeriesLoader{}
	loader.On("LoadColumn", mock.Anything, "eye.csv", schema.DefaultEyeColumn).Return(eyeColumn, nil)
	loader.On("LoadColumn", mock.Anything, "body.csv", "").Return(bodyColumn, nil)

	cfg := newTestConfig()
	cfg.CompareMode = true
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, ExecuteCompare(quietContext(), cfg, loader))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload, "streams")
	assert.Contains(t, payload, "comparison")
}

func TestExecuteAnalyzeWritesCSV(t *testing.T) {
	loader := &contract.MockSeriesLoader{}
	loader.On("LoadColumn", mock.Anything, "eye.csv", "ts").Return(eyeColumn, nil)

	cfg := newTestConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, ExecuteAnalyze(quietContext(), cfg, loader))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "label,source,column,sample_count")
	assert.Contains(t, string(data), "Eye,eye.csv,gaze_capture_time,5")
}
