package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/mdsite/internal/config"
)

func newMCPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp <markdown-dir>",
		Short: "Serve build, list, render and search tools over MCP stdio",
		Long: `mcp runs a Model Context Protocol server on stdin/stdout that exposes the
site generator as tools, so an MCP-compatible harness can build the site,
inspect its index, preview single documents and search their sources.`,
		Example: `mdsite mcp ./docs`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0], configPath)
			if err != nil {
				return err
			}

			h, err := newHandlers(cfg)
			if err != nil {
				return err
			}

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "mdsite",
				Version: version,
			}, nil)
			registerTools(server, h)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default <markdown-dir>/"+config.FileName+")")
	return cmd
}
