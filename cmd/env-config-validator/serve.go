package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	httpadapter "github.com/wajahatiqbal22/env-config-validator/internal/adapters/http"
	"github.com/wajahatiqbal22/env-config-validator/internal/logging"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/dotenv"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/process"
	"github.com/wajahatiqbal22/env-config-validator/pkg/ports"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation HTTP server",
	Long: `Serves the loaded schema over a JSON API: POST /v1/validate runs a
validation (against the server environment or an environment supplied in
the request body), GET /v1/schema returns the schema, and /metrics exposes
Prometheus counters.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")
		debug, _ := cmd.Flags().GetBool("debug")
		port, _ := cmd.Flags().GetString("port")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		var sources []ports.Source
		for _, path := range envFiles {
			sources = append(sources, dotenv.NewSource(path))
		}
		sources = append(sources, process.NewSource())

		engine, err := envvalidator.New(schemaPath,
			envvalidator.WithSources(sources...),
			envvalidator.WithLogger(logger),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schema: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpadapter.NewHandler(engine, logger),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting validation server", "addr", srv.Addr, "schema", schemaPath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("Starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "err", err)
				}
			}
			logger.Info("Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
