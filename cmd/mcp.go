package cmd

import (
	"github.com/huangsam/samplerate/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the samplerate MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze and compare sampling rates via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Tool handlers suppress the progress headers themselves since
		// stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, seriesLoader)
	},
}
