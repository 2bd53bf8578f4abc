// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the samplerate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.SeriesLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Sampling Rate Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: analyze_sampling_rate ---
	s.AddTool(mcp.NewTool("analyze_sampling_rate",
		mcp.WithDescription("Compute sampling rate statistics (mean, median, std, min, max in Hz) from a timestamp column of a CSV file."),
		mcp.WithString("file_path", mcp.Description("Path to the CSV file."), mcp.Required()),
		mcp.WithString("column", mcp.Description("Timestamp column name. Defaults to the first column.")),
		mcp.WithString("label", mcp.Description("Display name of the stream.")),
		mcp.WithString("epoch_unit", mcp.Description("Unit of numeric timestamps. Defaults to 'auto'."), mcp.Enum("auto", "s", "ms", "us", "ns")),
		mcp.WithNumber("bins", mcp.Description("Number of histogram bins for the rate distribution (0 disables).")),
	), h.handleAnalyzeSamplingRate)

	// --- 2. Tool: compare_sampling_rates ---
	s.AddTool(mcp.NewTool("compare_sampling_rates",
		mcp.WithDescription("Compare the mean sampling rates of an eye-tracking and a body-tracking CSV file."),
		mcp.WithString("eye_file", mcp.Description("Path to the eye-tracking CSV file."), mcp.Required()),
		mcp.WithString("body_file", mcp.Description("Path to the body-tracking CSV file."), mcp.Required()),
		mcp.WithString("eye_column", mcp.Description("Eye timestamp column. Defaults to 'gaze_capture_time'.")),
		mcp.WithString("body_column", mcp.Description("Body timestamp column. Defaults to the first column.")),
		mcp.WithNumber("threshold", mcp.Description("Maximum mean rate difference in Hz still considered similar. Defaults to 5.")),
		mcp.WithString("epoch_unit", mcp.Description("Unit of numeric timestamps. Defaults to 'auto'."), mcp.Enum("auto", "s", "ms", "us", "ns")),
	), h.handleCompareSamplingRates)

	return s
}

// StartMCPServer starts the samplerate MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.SeriesLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
