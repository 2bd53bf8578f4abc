package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/huangsam/samplerate/core"
	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/internal/outwriter"
	"github.com/huangsam/samplerate/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.SeriesLoader
}

func (h *toolHandler) handleAnalyzeSamplingRate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Single = contract.StreamConfig{
		Path:   request.GetString("file_path", ""),
		Column: request.GetString("column", ""),
		Label:  request.GetString("label", contract.DefaultLabel),
	}
	if cfg.Single.Path == "" {
		return mcp.NewToolResultError("file_path is required"), nil
	}
	if err := applyCommonArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bins := request.GetInt("bins", 0)
	if bins < 0 || bins > contract.MaxBins {
		return mcp.NewToolResultError(fmt.Sprintf("bins must be between 0 and %d", contract.MaxBins)), nil
	}
	cfg.Bins = bins

	report, err := core.GetSingleReport(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	return reportResult(report)
}

func (h *toolHandler) handleCompareSamplingRates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Eye = contract.StreamConfig{
		Path:   request.GetString("eye_file", ""),
		Column: request.GetString("eye_column", schema.DefaultEyeColumn),
		Label:  schema.DefaultEyeLabel,
	}
	cfg.Body = contract.StreamConfig{
		Path:   request.GetString("body_file", ""),
		Column: request.GetString("body_column", schema.DefaultBodyColumn),
		Label:  schema.DefaultBodyLabel,
	}
	if cfg.Eye.Path == "" || cfg.Body.Path == "" {
		return mcp.NewToolResultError("eye_file and body_file are required"), nil
	}
	cfg.CompareMode = true
	cfg.Bins = 0

	threshold := request.GetFloat("threshold", schema.DefaultThresholdHz)
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return mcp.NewToolResultError("threshold must be a finite value >= 0"), nil
	}
	cfg.ThresholdHz = threshold
	if err := applyCommonArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.GetComparisonReport(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return reportResult(report)
}

// applyCommonArgs reads arguments shared by all tools.
func applyCommonArgs(cfg *contract.Config, request mcp.CallToolRequest) error {
	unit := schema.EpochUnit(request.GetString("epoch_unit", string(schema.AutoUnit)))
	if _, ok := schema.ValidEpochUnits[unit]; !ok {
		return fmt.Errorf("invalid epoch_unit '%s'. must be auto, s, ms, us, ns", unit)
	}
	cfg.EpochUnit = unit
	cfg.CheckMonotonic = false
	return nil
}

// reportResult encodes a report as the JSON text of a tool result.
func reportResult(report schema.AnalysisReport) (*mcp.CallToolResult, error) {
	jsonData, err := outwriter.MarshalReportJSON(report)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
