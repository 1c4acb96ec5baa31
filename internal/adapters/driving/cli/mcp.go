package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opskit/runbooks/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for serving runbooks over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the runbook corpus.

The server speaks JSON-RPC over stdio by default, which is what Claude
Desktop and most MCP clients expect. Pass --port (or set mcp.port in
the config file) to serve streamable HTTP instead, e.g. for the MCP
Inspector or remote access.

Examples:
  # Stdio mode (default)
  runbooks mcp serve

  # HTTP mode on port 8080
  runbooks mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "kubernetes-runbooks": {
        "command": "/path/to/runbooks",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// The flag wins; the config file fills in when the flag is absent.
	if port == 0 && configStore != nil {
		port = configStore.GetInt(cfgKeyMCPPort)
	}

	ports := &mcp.Ports{
		Runbooks: runbookService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
