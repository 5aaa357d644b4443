package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the markdown converter and the navigation guard as MCP tools
(render_markdown, check_navigation) over Standard Input/Output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		app.Logger.Info("Starting surveyshell MCP Server (Stdio)...")
		if err := app.MCPServer().ServeStdio(); err != nil {
			app.Logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
