package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	mcpadapter "github.com/wajahatiqbal22/env-config-validator/internal/adapters/mcp"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/dotenv"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/process"
	"github.com/wajahatiqbal22/env-config-validator/pkg/ports"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the validator as an MCP server over stdio, so AI agents can check
environments and inspect the schema as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")

		var sources []ports.Source
		for _, path := range envFiles {
			sources = append(sources, dotenv.NewSource(path))
		}
		sources = append(sources, process.NewSource())

		engine, err := envvalidator.New(schemaPath, envvalidator.WithSources(sources...))
		if err != nil {
			log.Fatalf("Error loading schema: %v", err)
		}

		// Stdout carries JSON-RPC; keep every log on Stderr.
		log.SetOutput(os.Stderr)
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)

		slog.Info("Starting MCP server (stdio)", "schema", schemaPath)
		srv := mcpadapter.NewServer(engine)
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
